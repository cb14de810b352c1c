package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestDomainCounters(t *testing.T) {
	m := New(prometheus.NewRegistry(), Config{ServiceName: "test", Environment: "test"})

	m.BudgetCreated("TROCA")
	m.BudgetCreated("TROCA")
	m.BudgetStatusChanged("", "DRAFT")
	m.CommissionCreated()
	m.ClientDeletion("blocked")
	m.ClientsImported(3)
	m.ClientsImported(0)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.budgetsCreated.WithLabelValues("TROCA")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.statusChanges.WithLabelValues("none", "DRAFT")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.commissions))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.clientDeletions.WithLabelValues("blocked")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.clientsImported))
}

func TestNilMetricsAreSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.BudgetCreated("TROCA")
		m.CommissionCreated()
		m.ClientDeletion("deleted")
	})
}

func TestGinMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := New(prometheus.NewRegistry(), Config{})

	r := gin.New()
	r.Use(GinMiddleware(m))
	r.GET("/api/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/ping", nil))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("/api/ping", http.MethodGet, "200")))
}
