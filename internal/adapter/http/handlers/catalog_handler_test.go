package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"orcasys/internal/adapter/http/handlers/mocks"
	"orcasys/internal/domain/entities"
	"orcasys/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestCatalogHandler_PriceTable(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("create duplicate code", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		prices := mocks.NewMockIPriceTableUseCase(ctrl)
		h := NewCatalogHandler(prices, mocks.NewMockICanvasColorUseCase(ctrl))

		r := gin.New()
		r.POST("/api/price-table", h.CreatePriceItem)

		prices.EXPECT().Create(gomock.Any(), usecase.PriceItemInput{Code: "LN01", Name: "Lona", Unit: "m2", UnitPrice: 45, Category: "LONAS"}).Return(entities.PriceTableItem{}, usecase.ErrPriceItemDuplicate)

		req := httptest.NewRequest(http.MethodPost, "/api/price-table", bytes.NewBufferString(`{"code":"LN01","name":"Lona","unit":"m2","unit_price":45,"category":"LONAS"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("list by category", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		prices := mocks.NewMockIPriceTableUseCase(ctrl)
		h := NewCatalogHandler(prices, mocks.NewMockICanvasColorUseCase(ctrl))

		r := gin.New()
		r.GET("/api/price-table", h.ListPriceItems)

		prices.EXPECT().List(gomock.Any(), "LONAS").Return([]entities.PriceTableItem{{ID: "p-1"}}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/price-table?category=LONAS", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("categories", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		prices := mocks.NewMockIPriceTableUseCase(ctrl)
		h := NewCatalogHandler(prices, mocks.NewMockICanvasColorUseCase(ctrl))

		r := gin.New()
		r.GET("/api/price-table/categories", h.ListCategories)

		prices.EXPECT().Categories(gomock.Any()).Return([]string{"ADESIVOS", "LONAS"}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/price-table/categories", nil))

		var body struct {
			Categories []string `json:"categories"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body.Categories) != 2 {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("delete store failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		prices := mocks.NewMockIPriceTableUseCase(ctrl)
		h := NewCatalogHandler(prices, mocks.NewMockICanvasColorUseCase(ctrl))

		r := gin.New()
		r.DELETE("/api/price-table/:id", h.DeletePriceItem)

		prices.EXPECT().Delete(gomock.Any(), "p-1").Return(errors.New("dynamo down"))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/price-table/p-1", nil))

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestCatalogHandler_CanvasColors(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid hex", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		colors := mocks.NewMockICanvasColorUseCase(ctrl)
		h := NewCatalogHandler(mocks.NewMockIPriceTableUseCase(ctrl), colors)

		r := gin.New()
		r.POST("/api/canvas-colors", h.CreateCanvasColor)

		colors.EXPECT().Create(gomock.Any(), usecase.CanvasColorInput{Name: "ROSA", HexCode: "pink"}).Return(entities.CanvasColor{}, &usecase.ValidationError{Field: "hex_code", Reason: "must look like #RRGGBB"})

		req := httptest.NewRequest(http.MethodPost, "/api/canvas-colors", bytes.NewBufferString(`{"name":"ROSA","hex_code":"pink"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("initialize on seeded palette", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		colors := mocks.NewMockICanvasColorUseCase(ctrl)
		h := NewCatalogHandler(mocks.NewMockIPriceTableUseCase(ctrl), colors)

		r := gin.New()
		r.POST("/api/canvas-colors/initialize", h.InitializeCanvasColors)

		colors.EXPECT().Initialize(gomock.Any()).Return(nil, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/canvas-colors/initialize", nil))

		if w.Code != http.StatusOK || w.Body.String() != "[]" {
			t.Fatalf("expected 200 with [], got %d %s", w.Code, w.Body.String())
		}
	})
}
