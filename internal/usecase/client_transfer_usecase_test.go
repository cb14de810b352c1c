package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"orcasys/internal/domain/entities"
	mock_interfaces "orcasys/internal/usecase/interfaces/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type transferMocks struct {
	repo    *mock_interfaces.MockIClientRepository
	audit   *mock_interfaces.MockIAuditLogRepository
	metrics *mock_interfaces.MockIMetrics
	decoder *mock_interfaces.MockISheetDecoder
	csv     *mock_interfaces.MockISheetEncoder
}

func newClientTransferUseCaseWithMocks(t *testing.T) (*ClientTransferUseCase, transferMocks) {
	ctrl := gomock.NewController(t)
	m := transferMocks{
		repo:    mock_interfaces.NewMockIClientRepository(ctrl),
		audit:   mock_interfaces.NewMockIAuditLogRepository(ctrl),
		metrics: mock_interfaces.NewMockIMetrics(ctrl),
		decoder: mock_interfaces.NewMockISheetDecoder(ctrl),
		csv:     mock_interfaces.NewMockISheetEncoder(ctrl),
	}
	m.csv.EXPECT().Format().Return("csv").AnyTimes()
	uc := NewClientTransferUseCase(m.repo, m.audit, m.metrics, m.decoder, m.csv)
	uc.now = func() time.Time { return time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC) }
	return uc, m
}

func TestClientTransferUseCase_Import(t *testing.T) {
	t.Run("rejects non csv", func(t *testing.T) {
		uc, _ := newClientTransferUseCaseWithMocks(t)
		_, err := uc.Import(context.Background(), "clients.xlsx", 10, strings.NewReader(""))
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("rejects oversized", func(t *testing.T) {
		uc, _ := newClientTransferUseCaseWithMocks(t)
		_, err := uc.Import(context.Background(), "clients.csv", MaxImportSize+1, strings.NewReader(""))
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("header only imports nothing", func(t *testing.T) {
		uc, m := newClientTransferUseCaseWithMocks(t)
		m.decoder.EXPECT().Decode(gomock.Any()).Return([]string{"nome", "telefone"}, nil, nil)

		res, err := uc.Import(context.Background(), "clients.csv", 20, strings.NewReader(""))
		require.NoError(t, err)
		assert.False(t, res.Success)
		assert.Zero(t, res.ImportedCount)
		assert.NotEmpty(t, res.Warnings)
	})

	t.Run("missing required column", func(t *testing.T) {
		uc, m := newClientTransferUseCaseWithMocks(t)
		m.decoder.EXPECT().Decode(gomock.Any()).Return([]string{"nome", "email"}, [][]string{{"Acme", "a@b.com"}}, nil)

		_, err := uc.Import(context.Background(), "clients.csv", 20, strings.NewReader(""))
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("row validation and duplicates", func(t *testing.T) {
		uc, m := newClientTransferUseCaseWithMocks(t)
		m.decoder.EXPECT().Decode(gomock.Any()).Return(
			[]string{"Nome", "Telefone", "E-mail", "Observações"},
			[][]string{
				{"=Acme", "1111", "acme@example.com", "@SUM(A1)"},
				{"", "2222", "", ""},
				{"Beta", "3333", "not-an-email", ""},
				{"Acme", "4444", "", ""},
				{"Gama", "5555", "", ""},
				{"", "", "", ""},
			}, nil)

		m.repo.EXPECT().FindByName(gomock.Any(), "Acme").Return(nil, nil)
		m.repo.EXPECT().FindByPhone(gomock.Any(), "1111").Return(nil, nil)
		m.repo.EXPECT().FindByName(gomock.Any(), "Gama").Return([]entities.Client{{ID: "existing"}}, nil)

		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, c entities.Client) (entities.Client, error) {
			assert.Equal(t, "Acme", c.Name)
			assert.Equal(t, "Acme", c.ContactName)
			assert.Equal(t, "SUM(A1)", c.Observations)
			return c, nil
		})
		m.metrics.EXPECT().ClientsImported(1)
		m.audit.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)

		res, err := uc.Import(context.Background(), "clients.csv", 100, strings.NewReader(""))
		require.NoError(t, err)
		assert.Equal(t, 5, res.TotalProcessed)
		assert.Equal(t, 1, res.ImportedCount)
		assert.False(t, res.Success)
		require.Len(t, res.Errors, 4)
		assert.Equal(t, ImportRowError{Row: 3, Field: "name", Message: "must not be empty"}, res.Errors[0])
		assert.Equal(t, "email", res.Errors[1].Field)
		assert.Equal(t, 5, res.Errors[2].Row)
		assert.Equal(t, "name", res.Errors[2].Field)
		assert.Equal(t, 6, res.Errors[3].Row)
	})

	t.Run("decode error", func(t *testing.T) {
		uc, m := newClientTransferUseCaseWithMocks(t)
		m.decoder.EXPECT().Decode(gomock.Any()).Return(nil, nil, errors.New("bad quote"))

		_, err := uc.Import(context.Background(), "clients.CSV", 100, strings.NewReader(""))
		assert.ErrorIs(t, err, ErrValidation)
	})
}

func TestClientTransferUseCase_Export(t *testing.T) {
	t.Run("selected fields with dates", func(t *testing.T) {
		uc, m := newClientTransferUseCaseWithMocks(t)
		created := time.Date(2024, 12, 31, 10, 30, 0, 0, time.UTC)
		m.repo.EXPECT().List(gomock.Any()).Return([]entities.Client{
			{Name: "beta", Phone: "2", CreatedAt: created, UpdatedAt: created},
			{Name: "Acme", Phone: "1", CreatedAt: created, UpdatedAt: created},
		}, nil)
		m.csv.EXPECT().Encode(
			[]string{"Nome", "Telefone", "Data de Cadastro", "Última Atualização"},
			[][]string{
				{"Acme", "1", "31/12/2024 10:30", "31/12/2024 10:30"},
				{"beta", "2", "31/12/2024 10:30", "31/12/2024 10:30"},
			},
		).Return([]byte("data"), nil)
		m.csv.EXPECT().Extension().Return("csv")
		m.csv.EXPECT().ContentType().Return("text/csv; charset=utf-8")

		f, err := uc.Export(context.Background(), ExportOptions{
			Fields:       []string{"name", "phone"},
			IncludeDates: true,
			DateFormat:   "%d/%m/%Y %H:%M",
		})
		require.NoError(t, err)
		assert.Equal(t, "clientes_export_20250102_030405.csv", f.Filename)
		assert.Equal(t, []byte("data"), f.Data)
	})

	t.Run("unknown field", func(t *testing.T) {
		uc, _ := newClientTransferUseCaseWithMocks(t)
		_, err := uc.Export(context.Background(), ExportOptions{Fields: []string{"password"}})
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("unknown format", func(t *testing.T) {
		uc, _ := newClientTransferUseCaseWithMocks(t)
		_, err := uc.Export(context.Background(), ExportOptions{Format: "pdf"})
		assert.ErrorIs(t, err, ErrValidation)
	})
}

func TestStrftimeLayout(t *testing.T) {
	layout, err := StrftimeLayout("%Y-%m-%d %H:%M:%S (%y) 100%%")
	require.NoError(t, err)
	assert.Equal(t, "2006-01-02 15:04:05 (06) 100%", layout)

	_, err = StrftimeLayout("%A")
	assert.ErrorIs(t, err, ErrValidation)
}
