package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"orcasys/internal/domain/entities"
	mock_interfaces "orcasys/internal/usecase/interfaces/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type deletionMocks struct {
	clients     *mock_interfaces.MockIClientRepository
	budgets     *mock_interfaces.MockIBudgetRepository
	commissions *mock_interfaces.MockICommissionRepository
	history     *mock_interfaces.MockIBudgetHistoryRepository
	audit       *mock_interfaces.MockIAuditLogRepository
	metrics     *mock_interfaces.MockIMetrics
}

func newClientDeletionUseCaseWithMocks(t *testing.T) (*ClientDeletionUseCase, deletionMocks) {
	ctrl := gomock.NewController(t)
	m := deletionMocks{
		clients:     mock_interfaces.NewMockIClientRepository(ctrl),
		budgets:     mock_interfaces.NewMockIBudgetRepository(ctrl),
		commissions: mock_interfaces.NewMockICommissionRepository(ctrl),
		history:     mock_interfaces.NewMockIBudgetHistoryRepository(ctrl),
		audit:       mock_interfaces.NewMockIAuditLogRepository(ctrl),
		metrics:     mock_interfaces.NewMockIMetrics(ctrl),
	}
	uc := NewClientDeletionUseCase(m.clients, m.budgets, m.commissions, m.history, m.audit, m.metrics)
	return uc, m
}

func clientBudgets() []entities.Budget {
	return []entities.Budget{
		{ID: "b-1", ClientID: "c-1", Status: entities.BudgetStatusApproved, Total: 100},
		{ID: "b-2", ClientID: "c-1", Status: entities.BudgetStatusApproved, Total: 50},
		{ID: "b-3", ClientID: "c-1", Status: entities.BudgetStatusDraft, Total: 999},
	}
}

func TestBuildDependencyReport(t *testing.T) {
	budgets := append(clientBudgets(), entities.Budget{ID: "b-4", Status: entities.BudgetStatusRejected, Total: 10})
	r := BuildDependencyReport(entities.Client{ID: "c-1", Name: "Acme"}, budgets)

	assert.True(t, r.HasDependencies)
	assert.Equal(t, 4, r.Budgets)
	assert.Equal(t, 2, r.ApprovedBudgets)
	assert.Equal(t, 1, r.PendingBudgets)
	assert.InDelta(t, 150.0, r.TotalBudgetValue, 1e-9)
	assert.Equal(t, []string{
		"2 orçamentos aprovados (Total: R$ 150.00)",
		"1 orçamentos pendentes",
		"1 orçamentos rejeitados",
	}, r.Details)
	require.Len(t, r.BudgetBreakdown, 4)
	assert.Equal(t, "b-4", r.BudgetBreakdown[3].BudgetID)

	empty := BuildDependencyReport(entities.Client{ID: "c-2"}, nil)
	assert.False(t, empty.HasDependencies)
	assert.Empty(t, empty.Details)
}

func TestClientDeletionUseCase_CheckDependencies(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		uc, m := newClientDeletionUseCaseWithMocks(t)
		m.clients.EXPECT().GetByID(gomock.Any(), "c-9").Return(entities.Client{}, nil)

		_, err := uc.CheckDependencies(context.Background(), "c-9")
		assert.ErrorIs(t, err, ErrClientNotFound)
	})

	t.Run("report", func(t *testing.T) {
		uc, m := newClientDeletionUseCaseWithMocks(t)
		m.clients.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Client{ID: "c-1", Name: "Acme"}, nil)
		m.budgets.EXPECT().ListByClientID(gomock.Any(), "c-1").Return(clientBudgets(), nil)

		r, err := uc.CheckDependencies(context.Background(), "c-1")
		require.NoError(t, err)
		assert.Equal(t, 3, r.Budgets)
		assert.Equal(t, 150.0, r.TotalBudgetValue)
	})
}

func TestClientDeletionUseCase_CheckDependenciesBatch(t *testing.T) {
	uc, m := newClientDeletionUseCaseWithMocks(t)
	m.clients.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Client{ID: "c-1", Name: "Acme"}, nil)
	m.clients.EXPECT().GetByID(gomock.Any(), "c-2").Return(entities.Client{ID: "c-2", Name: "Beta"}, nil)
	m.clients.EXPECT().GetByID(gomock.Any(), "c-3").Return(entities.Client{}, nil)
	m.budgets.EXPECT().ListByClientID(gomock.Any(), "c-1").Return(clientBudgets(), nil)
	m.budgets.EXPECT().ListByClientID(gomock.Any(), "c-2").Return(nil, nil)

	r, err := uc.CheckDependenciesBatch(context.Background(), []string{"c-1", "c-2", "c-3"})
	require.NoError(t, err)
	assert.Equal(t, 3, r.TotalClients)
	assert.Equal(t, 1, r.ClientsWithDependencies)
	assert.Equal(t, 3, r.TotalBudgets)
	assert.Equal(t, 2, r.TotalApprovedBudgets)
	assert.Equal(t, []string{"c-3"}, r.NotFound)
	require.Len(t, r.Details, 1)

	_, err = uc.CheckDependenciesBatch(context.Background(), nil)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestClientDeletionUseCase_DeleteClient(t *testing.T) {
	t.Run("no dependencies", func(t *testing.T) {
		uc, m := newClientDeletionUseCaseWithMocks(t)
		m.clients.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Client{ID: "c-1", Name: "Acme"}, nil)
		m.budgets.EXPECT().ListByClientID(gomock.Any(), "c-1").Return(nil, nil)
		m.clients.EXPECT().Delete(gomock.Any(), "c-1").Return(nil)
		m.metrics.EXPECT().ClientDeletion("deleted")
		m.audit.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, l entities.AuditLog) error {
			assert.Equal(t, entities.AuditActionClientDelete, l.Action)
			assert.Equal(t, []string{"c-1"}, l.ResourceIDs)
			assert.Equal(t, "system", l.Actor)
			return nil
		})

		res, err := uc.DeleteClient(context.Background(), "c-1", false)
		require.NoError(t, err)
		assert.Equal(t, 0, res.BudgetsDeleted)
		assert.Equal(t, "Acme", res.ClientName)
	})

	t.Run("blocked without force", func(t *testing.T) {
		uc, m := newClientDeletionUseCaseWithMocks(t)
		m.clients.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Client{ID: "c-1", Name: "Acme"}, nil)
		m.budgets.EXPECT().ListByClientID(gomock.Any(), "c-1").Return(clientBudgets(), nil)
		m.metrics.EXPECT().ClientDeletion("blocked")
		m.audit.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, l entities.AuditLog) error {
			assert.Equal(t, entities.AuditActionClientDeleteBlocked, l.Action)
			return nil
		})

		_, err := uc.DeleteClient(context.Background(), "c-1", false)
		var blocked *DependencyBlockedError
		require.ErrorAs(t, err, &blocked)
		assert.Equal(t, 2, blocked.Report.ApprovedBudgets)
		assert.Equal(t, 150.0, blocked.Report.TotalBudgetValue)
	})

	t.Run("force cascades budgets before client", func(t *testing.T) {
		uc, m := newClientDeletionUseCaseWithMocks(t)
		m.clients.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Client{ID: "c-1", Name: "Acme"}, nil)
		m.budgets.EXPECT().ListByClientID(gomock.Any(), "c-1").Return(clientBudgets(), nil)

		var calls []any
		for _, id := range []string{"b-1", "b-2", "b-3"} {
			calls = append(calls,
				m.commissions.EXPECT().DeleteByBudgetID(gomock.Any(), id).Return(1, nil),
				m.history.EXPECT().DeleteByBudgetID(gomock.Any(), id).Return(2, nil),
				m.budgets.EXPECT().Delete(gomock.Any(), id).Return(nil),
			)
		}
		calls = append(calls, m.clients.EXPECT().Delete(gomock.Any(), "c-1").Return(nil))
		gomock.InOrder(calls...)

		m.metrics.EXPECT().ClientDeletion("deleted")
		m.audit.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, l entities.AuditLog) error {
			assert.Equal(t, entities.AuditActionClientForceDelete, l.Action)
			assert.Equal(t, 3, l.Details["budgets_deleted"])
			return nil
		})

		res, err := uc.DeleteClient(context.Background(), "c-1", true)
		require.NoError(t, err)
		assert.Equal(t, 3, res.BudgetsDeleted)
	})

	t.Run("not found", func(t *testing.T) {
		uc, m := newClientDeletionUseCaseWithMocks(t)
		m.clients.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Client{}, nil)
		m.metrics.EXPECT().ClientDeletion("not_found")

		_, err := uc.DeleteClient(context.Background(), "c-1", true)
		assert.ErrorIs(t, err, ErrClientNotFound)
		var blocked *DependencyBlockedError
		assert.False(t, errors.As(err, &blocked))
	})

	t.Run("store error propagates", func(t *testing.T) {
		uc, m := newClientDeletionUseCaseWithMocks(t)
		m.clients.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Client{ID: "c-1"}, nil)
		m.budgets.EXPECT().ListByClientID(gomock.Any(), "c-1").Return(nil, nil)
		m.clients.EXPECT().Delete(gomock.Any(), "c-1").Return(errors.New("boom"))
		m.metrics.EXPECT().ClientDeletion("error")

		_, err := uc.DeleteClient(context.Background(), "c-1", false)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "boom")
	})

	t.Run("audit failure does not fail deletion", func(t *testing.T) {
		uc, m := newClientDeletionUseCaseWithMocks(t)
		m.clients.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Client{ID: "c-1"}, nil)
		m.budgets.EXPECT().ListByClientID(gomock.Any(), "c-1").Return(nil, nil)
		m.clients.EXPECT().Delete(gomock.Any(), "c-1").Return(nil)
		m.metrics.EXPECT().ClientDeletion("deleted")
		m.audit.EXPECT().Append(gomock.Any(), gomock.Any()).Return(errors.New("audit down"))

		_, err := uc.DeleteClient(context.Background(), "c-1", false)
		assert.NoError(t, err)
	})
}

func TestClientDeletionUseCase_BulkDeleteClients(t *testing.T) {
	t.Run("rejects empty and oversized batches", func(t *testing.T) {
		uc, _ := newClientDeletionUseCaseWithMocks(t)

		_, err := uc.BulkDeleteClients(context.Background(), nil, false)
		assert.ErrorIs(t, err, ErrValidation)

		ids := make([]string, MaxBulkDelete+1)
		for i := range ids {
			ids[i] = fmt.Sprintf("c-%d", i)
		}
		_, err = uc.BulkDeleteClients(context.Background(), ids, false)
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("partial failure", func(t *testing.T) {
		uc, m := newClientDeletionUseCaseWithMocks(t)

		// c-1 deletes cleanly
		m.clients.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Client{ID: "c-1", Name: "Acme"}, nil)
		m.budgets.EXPECT().ListByClientID(gomock.Any(), "c-1").Return(nil, nil)
		m.clients.EXPECT().Delete(gomock.Any(), "c-1").Return(nil)
		// c-2 is missing
		m.clients.EXPECT().GetByID(gomock.Any(), "c-2").Return(entities.Client{}, nil)
		// c-3 has budgets
		m.clients.EXPECT().GetByID(gomock.Any(), "c-3").Return(entities.Client{ID: "c-3", Name: "Gama"}, nil)
		m.budgets.EXPECT().ListByClientID(gomock.Any(), "c-3").Return([]entities.Budget{{ID: "b-9", Status: entities.BudgetStatusSent}}, nil)
		// c-4 fails in the store
		m.clients.EXPECT().GetByID(gomock.Any(), "c-4").Return(entities.Client{}, errors.New("timeout"))

		m.metrics.EXPECT().ClientDeletion(gomock.Any()).Times(4)

		var actions []string
		m.audit.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, l entities.AuditLog) error {
			actions = append(actions, l.Action)
			return nil
		}).Times(2)

		res, err := uc.BulkDeleteClients(context.Background(), []string{"c-1", "c-2", "c-3", "c-4"}, false)
		require.NoError(t, err)

		assert.True(t, res.Success)
		assert.Equal(t, 4, res.TotalRequested)
		assert.Equal(t, 1, res.DeletedCount)
		assert.Equal(t, 2, res.SkippedCount)
		require.Len(t, res.Results, 4)
		assert.Equal(t, OutcomeDeleted, res.Results[0].Outcome)
		assert.Equal(t, OutcomeNotFound, res.Results[1].Outcome)
		assert.Equal(t, OutcomeBlocked, res.Results[2].Outcome)
		assert.Equal(t, OutcomeError, res.Results[3].Outcome)
		require.Len(t, res.Errors, 1)
		assert.Equal(t, "c-4", res.Errors[0].ClientID)
		require.Len(t, res.DependenciesFound, 1)
		assert.Equal(t, "c-3", res.DependenciesFound[0].ClientID)
		assert.Len(t, res.Warnings, 1)
		assert.Equal(t, []string{entities.AuditActionBulkDelete, entities.AuditActionBulkDeleteSummary}, actions)
	})

	t.Run("all skipped is not success", func(t *testing.T) {
		uc, m := newClientDeletionUseCaseWithMocks(t)
		m.clients.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Client{}, nil)
		m.metrics.EXPECT().ClientDeletion("not_found")
		m.audit.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)

		res, err := uc.BulkDeleteClients(context.Background(), []string{"c-1"}, true)
		require.NoError(t, err)
		assert.False(t, res.Success)
		assert.Empty(t, res.Errors)
		assert.Equal(t, 1, res.SkippedCount)
	})
}
