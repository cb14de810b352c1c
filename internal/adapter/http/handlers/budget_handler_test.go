package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"orcasys/internal/adapter/http/handlers/mocks"
	"orcasys/internal/domain/entities"
	"orcasys/internal/usecase"
	"orcasys/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestBudgetHandler_CreateBudget(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		h := NewBudgetHandler(uc)

		r := gin.New()
		r.POST("/api/budgets", h.CreateBudget)

		req := httptest.NewRequest(http.MethodPost, "/api/budgets", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("discount out of range", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		h := NewBudgetHandler(uc)

		r := gin.New()
		r.POST("/api/budgets", h.CreateBudget)

		req := httptest.NewRequest(http.MethodPost, "/api/budgets", bytes.NewBufferString(`{"client_id":"c-1","budget_type":"TROCA","discount_type":"percentage","discount_percentage":150}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body struct {
			Details fieldDetails `json:"details"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body.Details.Field != "discount_percentage" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("client not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		h := NewBudgetHandler(uc)

		r := gin.New()
		r.POST("/api/budgets", h.CreateBudget)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Budget{}, usecase.ErrClientNotFound)

		req := httptest.NewRequest(http.MethodPost, "/api/budgets", bytes.NewBufferString(`{"client_id":"c-9","budget_type":"TROCA"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		h := NewBudgetHandler(uc)

		r := gin.New()
		r.POST("/api/budgets", h.CreateBudget)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, in usecase.BudgetInput) (entities.Budget, error) {
			if in.Discount != entities.FixedDiscount(50) || len(in.Items) != 1 {
				t.Fatalf("unexpected input: %+v", in)
			}
			return entities.Budget{
				ID:             "b-1",
				ClientID:       "c-1",
				BudgetType:     entities.BudgetTypeTroca,
				Subtotal:       200,
				Discount:       in.Discount,
				DiscountAmount: 50,
				Total:          150,
				Status:         entities.BudgetStatusDraft,
			}, nil
		})

		req := httptest.NewRequest(http.MethodPost, "/api/budgets", bytes.NewBufferString(`{"client_id":"c-1","budget_type":"TROCA","discount_type":"fixed","discount_percentage":50,"items":[{"item_name":"Lona","quantity":2,"unit_price":100}]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["discount_type"] != "fixed" || body["total"] != 150.0 {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestBudgetHandler_ListBudgets(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIBudgetUseCase(ctrl)
	h := NewBudgetHandler(uc)

	r := gin.New()
	r.GET("/api/budgets", h.ListBudgets)

	uc.EXPECT().List(gomock.Any(), interfaces.BudgetFilter{ClientID: "c-1", Status: entities.BudgetStatusApproved}).Return([]entities.Budget{{ID: "b-1"}}, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/budgets?client_id=c-1&status=approved", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body []map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if len(body) != 1 || body[0]["id"] != "b-1" {
		t.Fatalf("unexpected response body: %s", w.Body.String())
	}
}

func TestBudgetHandler_UpdateBudgetStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		h := NewBudgetHandler(uc)

		r := gin.New()
		r.PATCH("/api/budgets/:id/status", h.UpdateBudgetStatus)

		req := httptest.NewRequest(http.MethodPatch, "/api/budgets/b-1/status", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		h := NewBudgetHandler(uc)

		r := gin.New()
		r.PATCH("/api/budgets/:id/status", h.UpdateBudgetStatus)

		uc.EXPECT().UpdateStatus(gomock.Any(), "b-1", entities.BudgetStatusApproved).Return(entities.Budget{ID: "b-1", Status: entities.BudgetStatusApproved}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/api/budgets/b-1/status", bytes.NewBufferString(`{"status":"approved"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestBudgetHandler_DuplicateAndHistory(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIBudgetUseCase(ctrl)
	h := NewBudgetHandler(uc)

	r := gin.New()
	r.POST("/api/budgets/:id/duplicate", h.DuplicateBudget)
	r.GET("/api/budgets/:id/history", h.BudgetHistory)

	uc.EXPECT().Duplicate(gomock.Any(), "b-1").Return(entities.Budget{ID: "b-2", OriginalBudgetID: "b-1"}, nil)
	uc.EXPECT().History(gomock.Any(), "b-404").Return(nil, usecase.ErrBudgetNotFound)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/budgets/b-1/duplicate", nil))
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/budgets/b-404/history", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestBudgetHandler_BudgetTypes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIBudgetUseCase(ctrl)
	h := NewBudgetHandler(uc)

	r := gin.New()
	r.GET("/api/budget-types", h.BudgetTypes)

	uc.EXPECT().Types().Return(entities.BudgetTypes())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/budget-types", nil))

	var body struct {
		Types []string `json:"types"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if w.Code != http.StatusOK || len(body.Types) != 5 {
		t.Fatalf("unexpected response: %d %s", w.Code, w.Body.String())
	}
}
