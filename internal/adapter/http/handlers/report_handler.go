package handlers

import (
	"net/http"

	response "orcasys/internal/adapter/http/dto/response"
	"orcasys/internal/usecase"

	"github.com/gin-gonic/gin"
)

// ReportHandler serves the read-only dashboard and audit endpoints.
type ReportHandler struct {
	statistics usecase.IStatisticsUseCase
	audit      usecase.IAuditLogUseCase
}

func NewReportHandler(statistics usecase.IStatisticsUseCase, audit usecase.IAuditLogUseCase) *ReportHandler {
	return &ReportHandler{statistics: statistics, audit: audit}
}

// BudgetStatistics godoc
// @Summary Budget counts per status and revenue of the current month
// @Tags statistics
// @Produce json
// @Success 200 {object} usecase.BudgetStatistics
// @Router /statistics/budgets [get]
func (h *ReportHandler) BudgetStatistics(c *gin.Context) {
	stats, err := h.statistics.Budgets(c.Request.Context())
	if err != nil {
		respondError(c, "statistics.budgets", err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// ListAuditLogs godoc
// @Summary List audit entries, newest first
// @Tags audit
// @Produce json
// @Param action query string false "action filter"
// @Success 200 {array} entities.AuditLog
// @Router /audit-logs [get]
func (h *ReportHandler) ListAuditLogs(c *gin.Context) {
	logs, err := h.audit.List(c.Request.Context(), c.Query("action"))
	if err != nil {
		respondError(c, "audit.list", err)
		return
	}
	c.JSON(http.StatusOK, response.NonNil(logs))
}
