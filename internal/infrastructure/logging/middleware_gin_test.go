package logging

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"orcasys/internal/requestctx"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGinMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var gotActor, gotRequestID string
	r := gin.New()
	r.Use(GinMiddleware())
	r.GET("/api/ping", func(c *gin.Context) {
		gotActor = requestctx.ActorFromContext(c.Request.Context())
		gotRequestID = requestctx.RequestIDFromContext(c.Request.Context())
		c.Status(http.StatusOK)
	})

	t.Run("propagates provided ids", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
		req.Header.Set("X-Request-Id", "req-42")
		req.Header.Set(ActorHeader, "joana")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "req-42", w.Header().Get("X-Request-Id"))
		assert.Equal(t, "req-42", gotRequestID)
		assert.Equal(t, "joana", gotActor)
	})

	t.Run("generates request id and default actor", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.NotEmpty(t, w.Header().Get("X-Request-Id"))
		assert.Equal(t, requestctx.DefaultActor, gotActor)
	})
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, err := New(Config{Level: "loud"})
	assert.Error(t, err)
}
