package usecase

import (
	"context"
	"errors"
	"testing"

	"orcasys/internal/domain/entities"
	"orcasys/internal/domain/pricing"
	"orcasys/internal/requestctx"
	"orcasys/internal/usecase/interfaces"
	mock_interfaces "orcasys/internal/usecase/interfaces/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type budgetMocks struct {
	budgets     *mock_interfaces.MockIBudgetRepository
	clients     *mock_interfaces.MockIClientRepository
	sellers     *mock_interfaces.MockISellerRepository
	history     *mock_interfaces.MockIBudgetHistoryRepository
	commissions *mock_interfaces.MockICommissionRepository
}

func newBudgetUseCaseWithMocks(t *testing.T) (*BudgetUseCase, budgetMocks) {
	ctrl := gomock.NewController(t)
	m := budgetMocks{
		budgets:     mock_interfaces.NewMockIBudgetRepository(ctrl),
		clients:     mock_interfaces.NewMockIClientRepository(ctrl),
		sellers:     mock_interfaces.NewMockISellerRepository(ctrl),
		history:     mock_interfaces.NewMockIBudgetHistoryRepository(ctrl),
		commissions: mock_interfaces.NewMockICommissionRepository(ctrl),
	}
	uc := NewBudgetUseCase(m.budgets, m.clients, m.sellers, m.history, m.commissions, nil)
	return uc, m
}

func echoBudget(_ context.Context, b entities.Budget) (entities.Budget, error) { return b, nil }

func TestBudgetUseCase_Create(t *testing.T) {
	t.Run("unknown budget type", func(t *testing.T) {
		uc, _ := newBudgetUseCaseWithMocks(t)
		_, err := uc.Create(context.Background(), BudgetInput{ClientID: "c-1", BudgetType: "PINTURA"})
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("percentage discount above 100", func(t *testing.T) {
		uc, _ := newBudgetUseCaseWithMocks(t)
		_, err := uc.Create(context.Background(), BudgetInput{
			ClientID:   "c-1",
			BudgetType: entities.BudgetTypeTroca,
			Discount:   entities.PercentageDiscount(150),
		})
		var vErr *ValidationError
		require.True(t, errors.As(err, &vErr))
		assert.Equal(t, "discount_percentage", vErr.Field)
	})

	t.Run("negative item quantity names the item", func(t *testing.T) {
		uc, _ := newBudgetUseCaseWithMocks(t)
		_, err := uc.Create(context.Background(), BudgetInput{
			ClientID:   "c-1",
			BudgetType: entities.BudgetTypeTroca,
			Items:      []pricing.ItemInput{{Quantity: 1, UnitPrice: 1}, {Quantity: -2, UnitPrice: 1}},
		})
		var vErr *ValidationError
		require.True(t, errors.As(err, &vErr))
		assert.Equal(t, "items[1].quantity", vErr.Field)
	})

	t.Run("client not found", func(t *testing.T) {
		uc, m := newBudgetUseCaseWithMocks(t)
		m.clients.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Client{}, nil)

		_, err := uc.Create(context.Background(), BudgetInput{ClientID: "c-1", BudgetType: entities.BudgetTypeTroca})
		assert.ErrorIs(t, err, ErrClientNotFound)
	})

	t.Run("seller not found", func(t *testing.T) {
		uc, m := newBudgetUseCaseWithMocks(t)
		m.clients.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Client{ID: "c-1", Name: "Acme"}, nil)
		m.sellers.EXPECT().GetByID(gomock.Any(), "s-1").Return(entities.Seller{}, nil)

		_, err := uc.Create(context.Background(), BudgetInput{ClientID: "c-1", SellerID: "s-1", BudgetType: entities.BudgetTypeTroca})
		assert.ErrorIs(t, err, ErrSellerNotFound)
	})

	t.Run("draft with totals and snapshots", func(t *testing.T) {
		uc, m := newBudgetUseCaseWithMocks(t)
		ctx := requestctx.WithActor(context.Background(), "joana")

		m.clients.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Client{ID: "c-1", Name: "Acme"}, nil)
		m.sellers.EXPECT().GetByID(gomock.Any(), "s-1").Return(entities.Seller{ID: "s-1", Name: "Ana", Active: true, CommissionPercentage: 5}, nil)
		m.budgets.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(echoBudget)
		m.history.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, h entities.BudgetHistory) error {
				assert.Equal(t, entities.HistoryActionCreated, h.Action)
				assert.Equal(t, "joana", h.ChangedBy)
				return nil
			},
		)

		discount := 10.0
		b, err := uc.Create(ctx, BudgetInput{
			ClientID:   "c-1",
			SellerID:   "s-1",
			BudgetType: entities.BudgetTypePlotagem,
			Items: []pricing.ItemInput{
				{ItemID: "i-1", Quantity: 2, UnitPrice: 50},
				{ItemID: "i-2", Quantity: 1, UnitPrice: 100, ItemDiscountPercentage: &discount},
			},
			Discount: entities.FixedDiscount(40),
		})
		require.NoError(t, err)
		assert.Equal(t, entities.BudgetStatusDraft, b.Status)
		assert.Equal(t, 1, b.Version)
		assert.Equal(t, entities.DefaultValidityDays, b.ValidityDays)
		assert.Equal(t, "Acme", b.ClientName)
		assert.Equal(t, "Ana", b.SellerName)
		assert.Equal(t, "joana", b.CreatedBy)
		assert.Equal(t, 190.0, b.Subtotal)
		assert.Equal(t, 40.0, b.DiscountAmount)
		assert.Equal(t, 150.0, b.Total)
	})

	t.Run("approved with seller derives commission", func(t *testing.T) {
		uc, m := newBudgetUseCaseWithMocks(t)

		seller := entities.Seller{ID: "s-1", Name: "Ana", Active: true, CommissionPercentage: 5}
		m.clients.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Client{ID: "c-1", Name: "Acme"}, nil)
		m.sellers.EXPECT().GetByID(gomock.Any(), "s-1").Return(seller, nil).Times(2)
		m.budgets.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(echoBudget)
		m.history.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)
		m.commissions.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(entities.Commission{}, nil)
		m.commissions.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.Commission) (entities.Commission, bool, error) {
				assert.Equal(t, 50.0, c.CommissionAmount)
				assert.Equal(t, entities.CommissionStatusCalculated, c.Status)
				return c, true, nil
			},
		)

		_, err := uc.Create(context.Background(), BudgetInput{
			ClientID:   "c-1",
			SellerID:   "s-1",
			BudgetType: entities.BudgetTypeTroca,
			Items:      []pricing.ItemInput{{Quantity: 1, UnitPrice: 1000}},
			Status:     entities.BudgetStatusApproved,
		})
		require.NoError(t, err)
	})
}

func TestBudgetUseCase_Update(t *testing.T) {
	finalPrice := 80.0
	stored := entities.Budget{
		ID:         "b-1",
		ClientID:   "c-1",
		ClientName: "Acme",
		SellerID:   "s-1",
		SellerName: "Ana",
		BudgetType: entities.BudgetTypeTroca,
		Items: []entities.BudgetItem{
			{ItemID: "i-1", Quantity: 1, UnitPrice: 100, Subtotal: 100, FinalPrice: &finalPrice},
		},
		Discount:     entities.PercentageDiscount(0),
		Subtotal:     80,
		Total:        80,
		ValidityDays: 30,
		Status:       entities.BudgetStatusDraft,
		Version:      3,
	}

	t.Run("not found", func(t *testing.T) {
		uc, m := newBudgetUseCaseWithMocks(t)
		m.budgets.EXPECT().GetByID(gomock.Any(), "b-9").Return(entities.Budget{}, nil)

		_, err := uc.Update(context.Background(), "b-9", BudgetPatch{})
		assert.ErrorIs(t, err, ErrBudgetNotFound)
	})

	t.Run("discount only keeps items and recomputes", func(t *testing.T) {
		uc, m := newBudgetUseCaseWithMocks(t)
		m.budgets.EXPECT().GetByID(gomock.Any(), "b-1").Return(stored, nil)
		m.budgets.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(echoBudget)
		m.history.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)

		kind := entities.DiscountFixed
		value := 30.0
		b, err := uc.Update(context.Background(), "b-1", BudgetPatch{DiscountKind: &kind, DiscountValue: &value})
		require.NoError(t, err)
		require.Len(t, b.Items, 1)
		assert.Equal(t, 80.0, b.Subtotal)
		assert.Equal(t, 30.0, b.DiscountAmount)
		assert.Equal(t, 50.0, b.Total)
		assert.Equal(t, 4, b.Version)
		assert.Equal(t, "Acme", b.ClientName)
	})

	t.Run("new items replace old ones", func(t *testing.T) {
		uc, m := newBudgetUseCaseWithMocks(t)
		m.budgets.EXPECT().GetByID(gomock.Any(), "b-1").Return(stored, nil)
		m.budgets.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(echoBudget)
		m.history.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)

		b, err := uc.Update(context.Background(), "b-1", BudgetPatch{Items: []pricing.ItemInput{{Quantity: 3, UnitPrice: 10}}})
		require.NoError(t, err)
		assert.Equal(t, 30.0, b.Total)
	})

	t.Run("removing seller clears snapshot", func(t *testing.T) {
		uc, m := newBudgetUseCaseWithMocks(t)
		m.budgets.EXPECT().GetByID(gomock.Any(), "b-1").Return(stored, nil)
		m.budgets.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(echoBudget)
		m.history.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)

		b, err := uc.Update(context.Background(), "b-1", BudgetPatch{SellerID: strPtr("")})
		require.NoError(t, err)
		assert.False(t, b.HasSeller())
		assert.Empty(t, b.SellerName)
	})

	t.Run("editing an approved budget derives no commission", func(t *testing.T) {
		approved := stored
		approved.Status = entities.BudgetStatusApproved

		uc, m := newBudgetUseCaseWithMocks(t)
		m.budgets.EXPECT().GetByID(gomock.Any(), "b-1").Return(approved, nil)
		m.budgets.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(echoBudget)
		m.history.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, h entities.BudgetHistory) error {
				assert.Equal(t, entities.HistoryActionUpdated, h.Action)
				return nil
			},
		)
		m.commissions.EXPECT().GetByID(gomock.Any(), gomock.Any()).Times(0)
		m.commissions.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

		b, err := uc.Update(context.Background(), "b-1", BudgetPatch{Observations: strPtr("entregar na loja")})
		require.NoError(t, err)
		assert.Equal(t, entities.BudgetStatusApproved, b.Status)
		assert.Equal(t, "entregar na loja", b.Observations)
		assert.Equal(t, 4, b.Version)
	})
}

func TestBudgetUseCase_UpdateStatus(t *testing.T) {
	stored := entities.Budget{
		ID:         "b-1",
		ClientName: "Acme",
		SellerID:   "s-1",
		BudgetType: entities.BudgetTypeTroca,
		Discount:   entities.PercentageDiscount(0),
		Items:      []entities.BudgetItem{{Subtotal: 200}},
		Status:     entities.BudgetStatusSent,
		Version:    1,
	}

	t.Run("into approved creates one commission", func(t *testing.T) {
		uc, m := newBudgetUseCaseWithMocks(t)
		m.budgets.EXPECT().GetByID(gomock.Any(), "b-1").Return(stored, nil)
		m.budgets.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(echoBudget)
		m.history.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, h entities.BudgetHistory) error {
				assert.Equal(t, entities.HistoryActionStatusChanged, h.Action)
				assert.Equal(t, 2, h.Version)
				return nil
			},
		)
		m.commissions.EXPECT().GetByID(gomock.Any(), entities.CommissionIDForBudget("b-1")).Return(entities.Commission{}, nil)
		m.sellers.EXPECT().GetByID(gomock.Any(), "s-1").Return(entities.Seller{ID: "s-1", Name: "Ana", CommissionPercentage: 10}, nil)
		m.commissions.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.Commission) (entities.Commission, bool, error) {
				assert.Equal(t, 20.0, c.CommissionAmount)
				assert.Equal(t, "b-1", c.BudgetID)
				return c, true, nil
			},
		).Times(1)

		b, err := uc.UpdateStatus(context.Background(), "b-1", entities.BudgetStatusApproved)
		require.NoError(t, err)
		assert.Equal(t, entities.BudgetStatusApproved, b.Status)
	})

	t.Run("already approved does nothing more", func(t *testing.T) {
		approved := stored
		approved.Status = entities.BudgetStatusApproved

		uc, m := newBudgetUseCaseWithMocks(t)
		m.budgets.EXPECT().GetByID(gomock.Any(), "b-1").Return(approved, nil)
		m.budgets.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(echoBudget)
		m.history.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)

		_, err := uc.UpdateStatus(context.Background(), "b-1", entities.BudgetStatusApproved)
		require.NoError(t, err)
	})

	t.Run("unknown status", func(t *testing.T) {
		uc, m := newBudgetUseCaseWithMocks(t)
		m.budgets.EXPECT().GetByID(gomock.Any(), "b-1").Return(stored, nil)

		_, err := uc.UpdateStatus(context.Background(), "b-1", "ARCHIVED")
		assert.ErrorIs(t, err, ErrValidation)
	})
}

func TestBudgetUseCase_Duplicate(t *testing.T) {
	uc, m := newBudgetUseCaseWithMocks(t)
	src := entities.Budget{
		ID:         "b-1",
		BudgetType: entities.BudgetTypeTroca,
		Items:      []entities.BudgetItem{{Subtotal: 100}},
		Discount:   entities.PercentageDiscount(10),
		Status:     entities.BudgetStatusApproved,
		Version:    7,
		SellerID:   "s-1",
	}
	m.budgets.EXPECT().GetByID(gomock.Any(), "b-1").Return(src, nil)
	m.budgets.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(echoBudget)
	m.history.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)

	dup, err := uc.Duplicate(context.Background(), "b-1")
	require.NoError(t, err)
	assert.NotEqual(t, "b-1", dup.ID)
	assert.Equal(t, entities.BudgetStatusDraft, dup.Status)
	assert.Equal(t, 1, dup.Version)
	assert.Equal(t, "b-1", dup.OriginalBudgetID)
	assert.Equal(t, 90.0, dup.Total)
}

func TestBudgetUseCase_Delete(t *testing.T) {
	t.Run("cascades", func(t *testing.T) {
		uc, m := newBudgetUseCaseWithMocks(t)
		m.budgets.EXPECT().GetByID(gomock.Any(), "b-1").Return(entities.Budget{ID: "b-1"}, nil)
		gomock.InOrder(
			m.commissions.EXPECT().DeleteByBudgetID(gomock.Any(), "b-1").Return(1, nil),
			m.history.EXPECT().DeleteByBudgetID(gomock.Any(), "b-1").Return(3, nil),
			m.budgets.EXPECT().Delete(gomock.Any(), "b-1").Return(nil),
		)

		require.NoError(t, uc.Delete(context.Background(), "b-1"))
	})

	t.Run("store failure propagates", func(t *testing.T) {
		uc, m := newBudgetUseCaseWithMocks(t)
		m.budgets.EXPECT().GetByID(gomock.Any(), "b-1").Return(entities.Budget{ID: "b-1"}, nil)
		m.commissions.EXPECT().DeleteByBudgetID(gomock.Any(), "b-1").Return(0, errors.New("db"))

		err := uc.Delete(context.Background(), "b-1")
		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrNotFound)
	})
}

func TestBudgetUseCase_List(t *testing.T) {
	uc, _ := newBudgetUseCaseWithMocks(t)
	_, err := uc.List(context.Background(), interfaces.BudgetFilter{Status: "bogus"})
	assert.ErrorIs(t, err, ErrValidation)
}
