package pkg

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError(t *testing.T) {
	t.Run("simple error has no cause", func(t *testing.T) {
		err := NewDomainErrorSimple("CLIENT_NOT_FOUND", "Client not found", http.StatusNotFound)
		assert.Equal(t, "CLIENT_NOT_FOUND: Client not found", err.Error())
		assert.Nil(t, errors.Unwrap(err))
	})

	t.Run("domain error unwraps cause", func(t *testing.T) {
		cause := errors.New("db")
		err := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)
		assert.ErrorIs(t, err, cause)
		assert.Equal(t, http.StatusInternalServerError, err.HTTPStatus)
	})

	t.Run("details do not leak into the original", func(t *testing.T) {
		base := NewDomainErrorSimple("CLIENT_HAS_DEPENDENCIES", "Client has dependencies", http.StatusConflict)
		withDetails := base.WithDetails(map[string]int{"budgets": 2})

		assert.Nil(t, base.ToHTTPError().Details)
		assert.Equal(t, map[string]int{"budgets": 2}, withDetails.ToHTTPError().Details)
		assert.Equal(t, "CLIENT_HAS_DEPENDENCIES", withDetails.ToHTTPError().Code)
	})
}
