package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"orcasys/internal/domain/entities"
	"orcasys/internal/usecase/interfaces"
	mock_interfaces "orcasys/internal/usecase/interfaces/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCommissionUseCase_Derive(t *testing.T) {
	approved := entities.Budget{ID: "b-1", SellerID: "s-1", ClientName: "Acme", Total: 1000, Status: entities.BudgetStatusApproved}

	t.Run("requires seller", func(t *testing.T) {
		uc := NewCommissionUseCase(nil, nil, nil, nil)
		b := approved
		b.SellerID = ""
		_, err := uc.Derive(context.Background(), b, nil)
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("requires approved", func(t *testing.T) {
		uc := NewCommissionUseCase(nil, nil, nil, nil)
		b := approved
		b.Status = entities.BudgetStatusSent
		_, err := uc.Derive(context.Background(), b, nil)
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("idempotent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICommissionRepository(ctrl)
		uc := NewCommissionUseCase(repo, nil, nil, nil)

		existing := entities.Commission{ID: "cm-1", BudgetID: "b-1", CommissionAmount: 50}
		repo.EXPECT().GetByID(gomock.Any(), entities.CommissionIDForBudget("b-1")).Return(existing, nil)

		got, err := uc.Derive(context.Background(), approved, nil)
		require.NoError(t, err)
		assert.Equal(t, existing, got)
	})

	t.Run("seller not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICommissionRepository(ctrl)
		sellers := mock_interfaces.NewMockISellerRepository(ctrl)
		uc := NewCommissionUseCase(repo, sellers, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), entities.CommissionIDForBudget("b-1")).Return(entities.Commission{}, nil)
		sellers.EXPECT().GetByID(gomock.Any(), "s-1").Return(entities.Seller{}, nil)

		_, err := uc.Derive(context.Background(), approved, nil)
		assert.ErrorIs(t, err, ErrSellerNotFound)
	})

	t.Run("override percentage", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICommissionRepository(ctrl)
		sellers := mock_interfaces.NewMockISellerRepository(ctrl)
		metrics := mock_interfaces.NewMockIMetrics(ctrl)
		uc := NewCommissionUseCase(repo, sellers, nil, metrics)

		repo.EXPECT().GetByID(gomock.Any(), entities.CommissionIDForBudget("b-1")).Return(entities.Commission{}, nil)
		sellers.EXPECT().GetByID(gomock.Any(), "s-1").Return(entities.Seller{ID: "s-1", Name: "Ana", CommissionPercentage: 5}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.Commission) (entities.Commission, bool, error) { return c, true, nil },
		)
		metrics.EXPECT().CommissionCreated()

		pct := 8.0
		got, err := uc.Derive(context.Background(), approved, &pct)
		require.NoError(t, err)
		assert.Equal(t, 8.0, got.CommissionPercentage)
		assert.Equal(t, 80.0, got.CommissionAmount)
		assert.Equal(t, "Ana", got.SellerName)
		assert.Equal(t, "Acme", got.ClientName)
		assert.Equal(t, entities.CommissionIDForBudget("b-1"), got.ID)
	})

	t.Run("lost insert returns the stored commission", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICommissionRepository(ctrl)
		sellers := mock_interfaces.NewMockISellerRepository(ctrl)
		metrics := mock_interfaces.NewMockIMetrics(ctrl)
		uc := NewCommissionUseCase(repo, sellers, nil, metrics)

		id := entities.CommissionIDForBudget("b-1")
		stored := entities.Commission{ID: id, BudgetID: "b-1", CommissionAmount: 50, Status: entities.CommissionStatusCalculated}
		repo.EXPECT().GetByID(gomock.Any(), id).Return(entities.Commission{}, nil)
		sellers.EXPECT().GetByID(gomock.Any(), "s-1").Return(entities.Seller{ID: "s-1", Name: "Ana", CommissionPercentage: 5}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.Commission) (entities.Commission, bool, error) {
				assert.Equal(t, id, c.ID)
				return stored, false, nil
			},
		)

		got, err := uc.Derive(context.Background(), approved, nil)
		require.NoError(t, err)
		assert.Equal(t, stored, got)
	})

	t.Run("store error on insert", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICommissionRepository(ctrl)
		sellers := mock_interfaces.NewMockISellerRepository(ctrl)
		uc := NewCommissionUseCase(repo, sellers, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(entities.Commission{}, nil)
		sellers.EXPECT().GetByID(gomock.Any(), "s-1").Return(entities.Seller{ID: "s-1", CommissionPercentage: 5}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Commission{}, false, errors.New("throttled"))

		_, err := uc.Derive(context.Background(), approved, nil)
		require.Error(t, err)
	})

	t.Run("override out of range", func(t *testing.T) {
		uc := NewCommissionUseCase(nil, nil, nil, nil)
		pct := 101.0
		_, err := uc.Derive(context.Background(), approved, &pct)
		assert.ErrorIs(t, err, ErrValidation)
	})
}

func TestCommissionUseCase_CreateForBudget(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	budgets := mock_interfaces.NewMockIBudgetRepository(ctrl)
	uc := NewCommissionUseCase(nil, nil, budgets, nil)

	budgets.EXPECT().GetByID(gomock.Any(), "b-1").Return(entities.Budget{}, nil)

	_, err := uc.CreateForBudget(context.Background(), "b-1", nil)
	assert.ErrorIs(t, err, ErrBudgetNotFound)
}

func TestCommissionUseCase_Summary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockICommissionRepository(ctrl)
	uc := NewCommissionUseCase(repo, nil, nil, nil)

	now := time.Now().UTC()
	filter := interfaces.CommissionFilter{SellerID: ""}
	repo.EXPECT().List(gomock.Any(), filter).Return([]entities.Commission{
		{SellerID: "s-1", SellerName: "Ana", BudgetTotal: 1000, CommissionAmount: 50, CreatedAt: now},
		{SellerID: "s-2", SellerName: "Bia", BudgetTotal: 4000, CommissionAmount: 400, CreatedAt: now.Add(-time.Hour)},
		{SellerID: "s-1", SellerName: "Ana", BudgetTotal: 500, CommissionAmount: 25, CreatedAt: now.Add(-2 * time.Hour)},
	}, nil)

	s, err := uc.Summary(context.Background(), filter)
	require.NoError(t, err)
	assert.Equal(t, 3, s.TotalCommissionCount)
	assert.Equal(t, 475.0, s.TotalCommissionAmount)
	assert.Equal(t, 5500.0, s.TotalSalesAmount)
	require.Len(t, s.Sellers, 2)
	assert.Equal(t, "s-2", s.Sellers[0].SellerID)
	assert.Equal(t, 2, s.Sellers[1].CommissionCount)
	assert.Equal(t, 75.0, s.Sellers[1].TotalCommission)
}

func TestCommissionUseCase_MarkPaid(t *testing.T) {
	t.Run("already paid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICommissionRepository(ctrl)
		uc := NewCommissionUseCase(repo, nil, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "cm-1").Return(entities.Commission{ID: "cm-1", Status: entities.CommissionStatusPaid}, nil)

		_, err := uc.MarkPaid(context.Background(), "cm-1")
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICommissionRepository(ctrl)
		uc := NewCommissionUseCase(repo, nil, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "cm-1").Return(entities.Commission{ID: "cm-1", Status: entities.CommissionStatusCalculated}, nil)
		repo.EXPECT().MarkPaid(gomock.Any(), "cm-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, id string, at time.Time) (entities.Commission, error) {
				return entities.Commission{ID: id, Status: entities.CommissionStatusPaid, PaidAt: &at}, nil
			},
		)

		got, err := uc.MarkPaid(context.Background(), "cm-1")
		require.NoError(t, err)
		assert.Equal(t, entities.CommissionStatusPaid, got.Status)
		assert.NotNil(t, got.PaidAt)
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICommissionRepository(ctrl)
		uc := NewCommissionUseCase(repo, nil, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "cm-1").Return(entities.Commission{}, errors.New("db"))

		_, err := uc.MarkPaid(context.Background(), "cm-1")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}
