package usecase

import (
	"context"
	"errors"
	"testing"

	"orcasys/internal/domain/entities"
	mock_interfaces "orcasys/internal/usecase/interfaces/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSellerUseCase_Create(t *testing.T) {
	t.Run("percentage out of range", func(t *testing.T) {
		uc := NewSellerUseCase(nil)
		for _, pct := range []float64{-1, 100.5} {
			_, err := uc.Create(context.Background(), SellerInput{Name: "Ana", CommissionPercentage: pct})
			if !errors.Is(err, ErrValidation) {
				t.Fatalf("expected ErrValidation for %v, got %v", pct, err)
			}
		}
	})

	t.Run("success is active", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISellerRepository(ctrl)
		uc := NewSellerUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s entities.Seller) (entities.Seller, error) { return s, nil },
		)

		s, err := uc.Create(context.Background(), SellerInput{Name: "Ana", CommissionPercentage: 5})
		require.NoError(t, err)
		assert.True(t, s.Active)
		assert.NotEmpty(t, s.ID)
	})
}

func TestSellerUseCase_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockISellerRepository(ctrl)
	uc := NewSellerUseCase(repo)

	repo.EXPECT().GetByID(gomock.Any(), "s-1").Return(entities.Seller{ID: "s-1", Name: "Ana", CommissionPercentage: 5, Active: true}, nil)
	repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, s entities.Seller) (entities.Seller, error) { return s, nil },
	)

	pct := 7.5
	s, err := uc.Update(context.Background(), "s-1", SellerPatch{CommissionPercentage: &pct})
	require.NoError(t, err)
	assert.Equal(t, 7.5, s.CommissionPercentage)
	assert.Equal(t, "Ana", s.Name)
}

func TestSellerUseCase_Delete(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISellerRepository(ctrl)
		uc := NewSellerUseCase(repo)

		repo.EXPECT().Deactivate(gomock.Any(), "s-9").Return(entities.Seller{}, nil)

		assert.ErrorIs(t, uc.Delete(context.Background(), "s-9"), ErrSellerNotFound)
	})

	t.Run("soft delete", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISellerRepository(ctrl)
		uc := NewSellerUseCase(repo)

		repo.EXPECT().Deactivate(gomock.Any(), "s-1").Return(entities.Seller{ID: "s-1"}, nil)

		assert.NoError(t, uc.Delete(context.Background(), " s-1 "))
	})
}
