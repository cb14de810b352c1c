package handlers

import (
	"net/http"

	request "orcasys/internal/adapter/http/dto/request"
	response "orcasys/internal/adapter/http/dto/response"
	"orcasys/internal/usecase"

	"github.com/gin-gonic/gin"
)

type CommissionHandler struct {
	usecase usecase.ICommissionUseCase
}

func NewCommissionHandler(uc usecase.ICommissionUseCase) *CommissionHandler {
	return &CommissionHandler{usecase: uc}
}

// CreateCommission godoc
// @Summary Create the commission of an approved budget
// @Tags commissions
// @Accept json
// @Produce json
// @Param payload body request.CreateCommissionRequest true "budget and optional percentage"
// @Success 201 {object} entities.Commission
// @Failure 400 {object} pkg.HTTPError
// @Router /commissions [post]
func (h *CommissionHandler) CreateCommission(c *gin.Context) {
	var payload request.CreateCommissionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c)
		return
	}

	commission, err := h.usecase.CreateForBudget(c.Request.Context(), payload.BudgetID, payload.CommissionPercentage)
	if err != nil {
		respondError(c, "commission.create", err)
		return
	}
	c.JSON(http.StatusCreated, commission)
}

// ListCommissions godoc
// @Summary List commissions
// @Tags commissions
// @Produce json
// @Param seller_id query string false "seller filter"
// @Param status query string false "PENDING, CALCULATED or PAID"
// @Param start_date query string false "RFC3339 lower bound"
// @Param end_date query string false "RFC3339 upper bound"
// @Success 200 {array} entities.Commission
// @Router /commissions [get]
func (h *CommissionHandler) ListCommissions(c *gin.Context) {
	var query request.CommissionListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondInvalidPayload(c)
		return
	}
	filter, err := query.ToFilter()
	if err != nil {
		respondError(c, "commission.list", err)
		return
	}

	commissions, err := h.usecase.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, "commission.list", err)
		return
	}
	c.JSON(http.StatusOK, response.NonNil(commissions))
}

func (h *CommissionHandler) CommissionSummary(c *gin.Context) {
	var query request.CommissionListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondInvalidPayload(c)
		return
	}
	filter, err := query.ToFilter()
	if err != nil {
		respondError(c, "commission.summary", err)
		return
	}

	summary, err := h.usecase.Summary(c.Request.Context(), filter)
	if err != nil {
		respondError(c, "commission.summary", err)
		return
	}
	summary.Sellers = response.NonNil(summary.Sellers)
	c.JSON(http.StatusOK, summary)
}

func (h *CommissionHandler) MarkCommissionPaid(c *gin.Context) {
	commission, err := h.usecase.MarkPaid(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "commission.mark_paid", err)
		return
	}
	c.JSON(http.StatusOK, commission)
}
