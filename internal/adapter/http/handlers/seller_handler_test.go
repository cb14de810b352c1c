package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"orcasys/internal/adapter/http/handlers/mocks"
	"orcasys/internal/domain/entities"
	"orcasys/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestSellerHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("create missing name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISellerUseCase(ctrl)
		h := NewSellerHandler(uc)

		r := gin.New()
		r.POST("/api/sellers", h.CreateSeller)

		req := httptest.NewRequest(http.MethodPost, "/api/sellers", bytes.NewBufferString(`{"commission_percentage":5}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("create success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISellerUseCase(ctrl)
		h := NewSellerHandler(uc)

		r := gin.New()
		r.POST("/api/sellers", h.CreateSeller)

		uc.EXPECT().Create(gomock.Any(), usecase.SellerInput{Name: "Ana", CommissionPercentage: 5}).Return(entities.Seller{ID: "s-1", Name: "Ana", Active: true}, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/sellers", bytes.NewBufferString(`{"name":"Ana","commission_percentage":5}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("delete unknown", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISellerUseCase(ctrl)
		h := NewSellerHandler(uc)

		r := gin.New()
		r.DELETE("/api/sellers/:id", h.DeleteSeller)

		uc.EXPECT().Delete(gomock.Any(), "s-404").Return(usecase.ErrSellerNotFound)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/sellers/s-404", nil))

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
