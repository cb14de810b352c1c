package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	registerRoutes(r.Group(PathAPI), Handlers{})

	registered := map[string]bool{}
	for _, route := range r.Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	for _, want := range []string{
		"POST /api/clients",
		"DELETE /api/clients/:id",
		"GET /api/clients/:id/dependencies",
		"POST /api/clients/bulk-delete",
		"POST /api/clients/import",
		"POST /api/clients/export",
		"GET /api/price-table/categories",
		"POST /api/canvas-colors/initialize",
		"PATCH /api/budgets/:id/status",
		"POST /api/budgets/:id/duplicate",
		"GET /api/budgets/:id/history",
		"GET /api/budget-types",
		"GET /api/commissions/summary",
		"PATCH /api/commissions/:id/pay",
		"GET /api/statistics/budgets",
		"GET /api/audit-logs",
	} {
		assert.True(t, registered[want], "missing route %s", want)
	}
}

func TestPing(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	addPingRoutes(r.Group(PathAPI))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/ping", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"pong"}`, w.Body.String())
}

func TestCorsConfig(t *testing.T) {
	cfg := corsConfig([]string{"http://localhost:3000"})
	assert.False(t, cfg.AllowAllOrigins)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.AllowOrigins)
	require.NoError(t, cfg.Validate())

	cfg = corsConfig([]string{"*"})
	assert.True(t, cfg.AllowAllOrigins)
	assert.Empty(t, cfg.AllowOrigins)
}
