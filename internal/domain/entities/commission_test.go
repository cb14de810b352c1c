package entities

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommissionIDForBudget(t *testing.T) {
	a := CommissionIDForBudget("b-1")
	assert.Equal(t, a, CommissionIDForBudget("b-1"))
	assert.NotEqual(t, a, CommissionIDForBudget("b-2"))

	parsed, err := uuid.Parse(a)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(5), parsed.Version())
}
