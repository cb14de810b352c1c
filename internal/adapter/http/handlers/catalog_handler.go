package handlers

import (
	"net/http"

	request "orcasys/internal/adapter/http/dto/request"
	response "orcasys/internal/adapter/http/dto/response"
	"orcasys/internal/usecase"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the price table and the canvas color palette.
type CatalogHandler struct {
	prices usecase.IPriceTableUseCase
	colors usecase.ICanvasColorUseCase
}

func NewCatalogHandler(prices usecase.IPriceTableUseCase, colors usecase.ICanvasColorUseCase) *CatalogHandler {
	return &CatalogHandler{prices: prices, colors: colors}
}

// CreatePriceItem godoc
// @Summary Create a price table item
// @Tags price-table
// @Accept json
// @Produce json
// @Param payload body request.CreatePriceItemRequest true "item"
// @Success 201 {object} entities.PriceTableItem
// @Failure 409 {object} pkg.HTTPError
// @Router /price-table [post]
func (h *CatalogHandler) CreatePriceItem(c *gin.Context) {
	var payload request.CreatePriceItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c)
		return
	}

	item, err := h.prices.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		respondError(c, "price_table.create", err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

// ListPriceItems godoc
// @Summary List active price table items
// @Tags price-table
// @Produce json
// @Param category query string false "category filter"
// @Success 200 {array} entities.PriceTableItem
// @Router /price-table [get]
func (h *CatalogHandler) ListPriceItems(c *gin.Context) {
	items, err := h.prices.List(c.Request.Context(), c.Query("category"))
	if err != nil {
		respondError(c, "price_table.list", err)
		return
	}
	c.JSON(http.StatusOK, response.NonNil(items))
}

func (h *CatalogHandler) ListCategories(c *gin.Context) {
	categories, err := h.prices.Categories(c.Request.Context())
	if err != nil {
		respondError(c, "price_table.categories", err)
		return
	}
	c.JSON(http.StatusOK, response.CategoriesResponse{Categories: response.NonNil(categories)})
}

func (h *CatalogHandler) GetPriceItem(c *gin.Context) {
	item, err := h.prices.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "price_table.get", err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *CatalogHandler) UpdatePriceItem(c *gin.Context) {
	var payload request.UpdatePriceItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c)
		return
	}

	item, err := h.prices.Update(c.Request.Context(), c.Param("id"), payload.ToPatch())
	if err != nil {
		respondError(c, "price_table.update", err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *CatalogHandler) DeletePriceItem(c *gin.Context) {
	if err := h.prices.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, "price_table.delete", err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Item removido com sucesso"})
}

func (h *CatalogHandler) CreateCanvasColor(c *gin.Context) {
	var payload request.CreateCanvasColorRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c)
		return
	}

	color, err := h.colors.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		respondError(c, "canvas_color.create", err)
		return
	}
	c.JSON(http.StatusCreated, color)
}

func (h *CatalogHandler) ListCanvasColors(c *gin.Context) {
	colors, err := h.colors.List(c.Request.Context())
	if err != nil {
		respondError(c, "canvas_color.list", err)
		return
	}
	c.JSON(http.StatusOK, response.NonNil(colors))
}

func (h *CatalogHandler) UpdateCanvasColor(c *gin.Context) {
	var payload request.UpdateCanvasColorRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c)
		return
	}

	color, err := h.colors.Update(c.Request.Context(), c.Param("id"), payload.ToPatch())
	if err != nil {
		respondError(c, "canvas_color.update", err)
		return
	}
	c.JSON(http.StatusOK, color)
}

func (h *CatalogHandler) DeleteCanvasColor(c *gin.Context) {
	if err := h.colors.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, "canvas_color.delete", err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Cor removida com sucesso"})
}

// InitializeCanvasColors seeds the default palette when it is empty.
func (h *CatalogHandler) InitializeCanvasColors(c *gin.Context) {
	colors, err := h.colors.Initialize(c.Request.Context())
	if err != nil {
		respondError(c, "canvas_color.initialize", err)
		return
	}
	c.JSON(http.StatusOK, response.NonNil(colors))
}
