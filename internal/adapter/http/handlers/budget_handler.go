package handlers

import (
	"net/http"

	request "orcasys/internal/adapter/http/dto/request"
	response "orcasys/internal/adapter/http/dto/response"
	"orcasys/internal/usecase"

	"github.com/gin-gonic/gin"
)

type BudgetHandler struct {
	usecase usecase.IBudgetUseCase
}

func NewBudgetHandler(uc usecase.IBudgetUseCase) *BudgetHandler {
	return &BudgetHandler{usecase: uc}
}

// CreateBudget godoc
// @Summary Create a budget
// @Description Totals are computed from the items and the discount. Creating an approved budget with a seller also creates its commission.
// @Tags budgets
// @Accept json
// @Produce json
// @Param payload body request.CreateBudgetRequest true "budget"
// @Success 201 {object} response.BudgetResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 404 {object} pkg.HTTPError
// @Router /budgets [post]
func (h *BudgetHandler) CreateBudget(c *gin.Context) {
	var payload request.CreateBudgetRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c)
		return
	}
	in, err := payload.ToInput()
	if err != nil {
		respondError(c, "budget.create", err)
		return
	}

	budget, err := h.usecase.Create(c.Request.Context(), in)
	if err != nil {
		respondError(c, "budget.create", err)
		return
	}
	c.JSON(http.StatusCreated, response.FromBudget(budget))
}

// ListBudgets godoc
// @Summary List budgets, newest first
// @Tags budgets
// @Produce json
// @Param client_id query string false "client filter"
// @Param seller_id query string false "seller filter"
// @Param status query string false "status filter"
// @Success 200 {array} response.BudgetResponse
// @Router /budgets [get]
func (h *BudgetHandler) ListBudgets(c *gin.Context) {
	var query request.BudgetListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondInvalidPayload(c)
		return
	}

	budgets, err := h.usecase.List(c.Request.Context(), query.ToFilter())
	if err != nil {
		respondError(c, "budget.list", err)
		return
	}
	c.JSON(http.StatusOK, response.FromBudgets(budgets))
}

func (h *BudgetHandler) GetBudget(c *gin.Context) {
	budget, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "budget.get", err)
		return
	}
	c.JSON(http.StatusOK, response.FromBudget(budget))
}

// UpdateBudget godoc
// @Summary Update a budget
// @Description Sending items replaces all lines. Totals are recomputed.
// @Tags budgets
// @Accept json
// @Produce json
// @Param id path string true "budget id"
// @Param payload body request.UpdateBudgetRequest true "fields to change"
// @Success 200 {object} response.BudgetResponse
// @Router /budgets/{id} [put]
func (h *BudgetHandler) UpdateBudget(c *gin.Context) {
	var payload request.UpdateBudgetRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c)
		return
	}

	budget, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToPatch())
	if err != nil {
		respondError(c, "budget.update", err)
		return
	}
	c.JSON(http.StatusOK, response.FromBudget(budget))
}

func (h *BudgetHandler) UpdateBudgetStatus(c *gin.Context) {
	var payload request.UpdateBudgetStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c)
		return
	}

	budget, err := h.usecase.UpdateStatus(c.Request.Context(), c.Param("id"), payload.ToStatus())
	if err != nil {
		respondError(c, "budget.update_status", err)
		return
	}
	c.JSON(http.StatusOK, response.FromBudget(budget))
}

func (h *BudgetHandler) DuplicateBudget(c *gin.Context) {
	budget, err := h.usecase.Duplicate(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "budget.duplicate", err)
		return
	}
	c.JSON(http.StatusCreated, response.FromBudget(budget))
}

func (h *BudgetHandler) DeleteBudget(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, "budget.delete", err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Orçamento excluído com sucesso"})
}

func (h *BudgetHandler) BudgetHistory(c *gin.Context) {
	entries, err := h.usecase.History(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "budget.history", err)
		return
	}
	c.JSON(http.StatusOK, response.NonNil(entries))
}

// BudgetTypes godoc
// @Summary List the supported budget types
// @Tags budgets
// @Produce json
// @Success 200 {object} response.BudgetTypesResponse
// @Router /budget-types [get]
func (h *BudgetHandler) BudgetTypes(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromBudgetTypes(h.usecase.Types()))
}
