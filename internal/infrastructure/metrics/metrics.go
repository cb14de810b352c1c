package metrics

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// Config configures metric labels.
type Config struct {
	ServiceName string
	Environment string
}

// Metrics exposes application-level instruments backed by Prometheus.
type Metrics struct {
	httpRequests    *prometheus.CounterVec
	httpDuration    *prometheus.HistogramVec
	budgetsCreated  *prometheus.CounterVec
	statusChanges   *prometheus.CounterVec
	commissions     prometheus.Counter
	clientDeletions *prometheus.CounterVec
	clientsImported prometheus.Counter
}

// New registers the instruments on registerer. A nil registerer uses the
// Prometheus default registry.
func New(registerer prometheus.Registerer, cfg Config) *Metrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	serviceName := strings.TrimSpace(cfg.ServiceName)
	if serviceName == "" {
		serviceName = "orcasys"
	}
	environment := strings.TrimSpace(cfg.Environment)
	if environment == "" {
		environment = "unknown"
	}
	constLabels := prometheus.Labels{"service": serviceName, "env": environment}

	m := &Metrics{
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "orcasys_http_requests_total",
			Help:        "HTTP requests by route, method and status.",
			ConstLabels: constLabels,
		}, []string{"route", "method", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "orcasys_http_request_duration_seconds",
			Help:        "HTTP request latency.",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"route", "method"}),
		budgetsCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "orcasys_budgets_created_total",
			Help:        "Budgets created by budget type.",
			ConstLabels: constLabels,
		}, []string{"budget_type"}),
		statusChanges: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "orcasys_budget_status_changes_total",
			Help:        "Budget status transitions.",
			ConstLabels: constLabels,
		}, []string{"from", "to"}),
		commissions: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "orcasys_commissions_created_total",
			Help:        "Commissions derived from approved budgets.",
			ConstLabels: constLabels,
		}),
		clientDeletions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "orcasys_client_deletions_total",
			Help:        "Client deletion attempts by outcome.",
			ConstLabels: constLabels,
		}, []string{"outcome"}),
		clientsImported: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "orcasys_clients_imported_total",
			Help:        "Clients created through CSV import.",
			ConstLabels: constLabels,
		}),
	}

	registerer.MustRegister(
		m.httpRequests,
		m.httpDuration,
		m.budgetsCreated,
		m.statusChanges,
		m.commissions,
		m.clientDeletions,
		m.clientsImported,
	)
	return m
}

func (m *Metrics) BudgetCreated(budgetType string) {
	if m == nil {
		return
	}
	m.budgetsCreated.WithLabelValues(budgetType).Inc()
}

func (m *Metrics) BudgetStatusChanged(from, to string) {
	if m == nil {
		return
	}
	if from == "" {
		from = "none"
	}
	m.statusChanges.WithLabelValues(from, to).Inc()
}

func (m *Metrics) CommissionCreated() {
	if m == nil {
		return
	}
	m.commissions.Inc()
}

func (m *Metrics) ClientDeletion(outcome string) {
	if m == nil {
		return
	}
	m.clientDeletions.WithLabelValues(outcome).Inc()
}

func (m *Metrics) ClientsImported(count int) {
	if m == nil || count <= 0 {
		return
	}
	m.clientsImported.Add(float64(count))
}

// GinMiddleware records request counts and latency per route.
func GinMiddleware(m *Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		if m == nil {
			c.Next()
			return
		}
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unknown"
		}
		method := c.Request.Method
		m.httpRequests.WithLabelValues(route, method, strconv.Itoa(c.Writer.Status())).Inc()
		m.httpDuration.WithLabelValues(route, method).Observe(time.Since(start).Seconds())
	}
}
