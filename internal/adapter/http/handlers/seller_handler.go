package handlers

import (
	"net/http"

	request "orcasys/internal/adapter/http/dto/request"
	response "orcasys/internal/adapter/http/dto/response"
	"orcasys/internal/usecase"

	"github.com/gin-gonic/gin"
)

type SellerHandler struct {
	usecase usecase.ISellerUseCase
}

func NewSellerHandler(uc usecase.ISellerUseCase) *SellerHandler {
	return &SellerHandler{usecase: uc}
}

// CreateSeller godoc
// @Summary Create a seller
// @Tags sellers
// @Accept json
// @Produce json
// @Param payload body request.CreateSellerRequest true "seller"
// @Success 201 {object} entities.Seller
// @Router /sellers [post]
func (h *SellerHandler) CreateSeller(c *gin.Context) {
	var payload request.CreateSellerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c)
		return
	}

	seller, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		respondError(c, "seller.create", err)
		return
	}
	c.JSON(http.StatusCreated, seller)
}

func (h *SellerHandler) ListSellers(c *gin.Context) {
	sellers, err := h.usecase.List(c.Request.Context())
	if err != nil {
		respondError(c, "seller.list", err)
		return
	}
	c.JSON(http.StatusOK, response.NonNil(sellers))
}

func (h *SellerHandler) GetSeller(c *gin.Context) {
	seller, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "seller.get", err)
		return
	}
	c.JSON(http.StatusOK, seller)
}

func (h *SellerHandler) UpdateSeller(c *gin.Context) {
	var payload request.UpdateSellerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c)
		return
	}

	seller, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToPatch())
	if err != nil {
		respondError(c, "seller.update", err)
		return
	}
	c.JSON(http.StatusOK, seller)
}

// DeleteSeller deactivates the seller; its budgets keep the reference.
func (h *SellerHandler) DeleteSeller(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, "seller.delete", err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Vendedor desativado com sucesso"})
}
