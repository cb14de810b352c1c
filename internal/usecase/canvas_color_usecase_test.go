package usecase

import (
	"context"
	"testing"

	"orcasys/internal/domain/entities"
	mock_interfaces "orcasys/internal/usecase/interfaces/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCanvasColorUseCase_Create(t *testing.T) {
	t.Run("bad hex", func(t *testing.T) {
		uc := NewCanvasColorUseCase(nil)
		_, err := uc.Create(context.Background(), CanvasColorInput{Name: "azul", HexCode: "blue"})
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("duplicate name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICanvasColorRepository(ctrl)
		uc := NewCanvasColorUseCase(repo)

		repo.EXPECT().FindActiveByName(gomock.Any(), "AZUL").Return(entities.CanvasColor{ID: "c-1", Name: "AZUL"}, nil)

		_, err := uc.Create(context.Background(), CanvasColorInput{Name: " azul ", HexCode: "#0000ff"})
		assert.ErrorIs(t, err, ErrCanvasColorDuplicate)
	})
}

func TestCanvasColorUseCase_Initialize(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockICanvasColorRepository(ctrl)
	uc := NewCanvasColorUseCase(repo)

	repo.EXPECT().FindActiveByName(gomock.Any(), "BRANCA").Return(entities.CanvasColor{ID: "existing", Name: "BRANCA"}, nil)
	repo.EXPECT().FindActiveByName(gomock.Any(), gomock.Any()).Return(entities.CanvasColor{}, nil).AnyTimes()
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, c entities.CanvasColor) (entities.CanvasColor, error) { return c, nil },
	).Times(len(entities.DefaultCanvasColors) - 1)

	created, err := uc.Initialize(context.Background())
	require.NoError(t, err)
	assert.Len(t, created, len(entities.DefaultCanvasColors)-1)
	for _, c := range created {
		assert.NotEqual(t, "BRANCA", c.Name)
	}
}
