package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"orcasys/internal/domain/entities"
	"orcasys/internal/infrastructure/logging"
	"orcasys/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// MaxBulkDelete bounds the number of ids accepted by one bulk deletion.
const MaxBulkDelete = 100

type DeletionOutcome string

const (
	OutcomeDeleted  DeletionOutcome = "deleted"
	OutcomeNotFound DeletionOutcome = "not_found"
	OutcomeBlocked  DeletionOutcome = "blocked"
	OutcomeError    DeletionOutcome = "error"
)

type DeletionResult struct {
	ClientID       string `json:"client_id"`
	ClientName     string `json:"client_name"`
	BudgetsDeleted int    `json:"budgets_deleted"`
	Message        string `json:"message"`
}

type BulkDeletionItem struct {
	ClientID       string          `json:"client_id"`
	Outcome        DeletionOutcome `json:"outcome"`
	Message        string          `json:"message"`
	BudgetsDeleted int             `json:"budgets_deleted"`
}

type BulkDeletionError struct {
	ClientID string `json:"client_id"`
	Message  string `json:"message"`
}

type BulkDeletionResult struct {
	Success           bool                        `json:"success"`
	TotalRequested    int                         `json:"total_requested"`
	DeletedCount      int                         `json:"deleted_count"`
	SkippedCount      int                         `json:"skipped_count"`
	Results           []BulkDeletionItem          `json:"results"`
	Errors            []BulkDeletionError         `json:"errors"`
	Warnings          []string                    `json:"warnings"`
	DependenciesFound []entities.DependencyReport `json:"dependencies_found"`
}

// DependencyBatchReport aggregates the dependency reports of several clients.
type DependencyBatchReport struct {
	TotalClients            int                         `json:"total_clients"`
	ClientsWithDependencies int                         `json:"clients_with_dependencies"`
	TotalBudgets            int                         `json:"total_budgets"`
	TotalApprovedBudgets    int                         `json:"total_approved_budgets"`
	TotalBudgetValue        float64                     `json:"total_budget_value"`
	Details                 []entities.DependencyReport `json:"details"`
	NotFound                []string                    `json:"not_found"`
}

type IClientDeletionUseCase interface {
	CheckDependencies(ctx context.Context, clientID string) (entities.DependencyReport, error)
	CheckDependenciesBatch(ctx context.Context, clientIDs []string) (DependencyBatchReport, error)
	DeleteClient(ctx context.Context, clientID string, force bool) (DeletionResult, error)
	BulkDeleteClients(ctx context.Context, clientIDs []string, force bool) (BulkDeletionResult, error)
}

type ClientDeletionUseCase struct {
	clients interfaces.IClientRepository
	budgets interfaces.IBudgetRepository
	audit   interfaces.IAuditLogRepository
	metrics interfaces.IMetrics
	cascade budgetCascade
}

var _ IClientDeletionUseCase = (*ClientDeletionUseCase)(nil)

func NewClientDeletionUseCase(
	clients interfaces.IClientRepository,
	budgets interfaces.IBudgetRepository,
	commissions interfaces.ICommissionRepository,
	history interfaces.IBudgetHistoryRepository,
	audit interfaces.IAuditLogRepository,
	metrics interfaces.IMetrics,
) *ClientDeletionUseCase {
	return &ClientDeletionUseCase{
		clients: clients,
		budgets: budgets,
		audit:   audit,
		metrics: orNopMetrics(metrics),
		cascade: budgetCascade{budgets: budgets, commissions: commissions, history: history},
	}
}

func (u *ClientDeletionUseCase) CheckDependencies(ctx context.Context, clientID string) (entities.DependencyReport, error) {
	client, err := u.findClient(ctx, clientID)
	if err != nil {
		return entities.DependencyReport{}, err
	}
	report, _, err := u.dependencies(ctx, client)
	return report, err
}

func (u *ClientDeletionUseCase) CheckDependenciesBatch(ctx context.Context, clientIDs []string) (DependencyBatchReport, error) {
	if len(clientIDs) == 0 {
		return DependencyBatchReport{}, invalid("client_ids", "must not be empty")
	}
	if len(clientIDs) > MaxBulkDelete {
		return DependencyBatchReport{}, invalid("client_ids", fmt.Sprintf("at most %d ids per request", MaxBulkDelete))
	}

	out := DependencyBatchReport{
		TotalClients: len(clientIDs),
		Details:      []entities.DependencyReport{},
		NotFound:     []string{},
	}
	for _, id := range clientIDs {
		client, err := u.findClient(ctx, id)
		if err != nil {
			if isNotFound(err) {
				out.NotFound = append(out.NotFound, id)
				continue
			}
			return DependencyBatchReport{}, err
		}
		report, _, err := u.dependencies(ctx, client)
		if err != nil {
			return DependencyBatchReport{}, err
		}
		if !report.HasDependencies {
			continue
		}
		out.ClientsWithDependencies++
		out.TotalBudgets += report.Budgets
		out.TotalApprovedBudgets += report.ApprovedBudgets
		out.TotalBudgetValue += report.TotalBudgetValue
		out.Details = append(out.Details, report)
	}
	return out, nil
}

// DeleteClient removes a client. When budgets reference it, the call is
// refused with a DependencyBlockedError unless force is set, in which case
// the budgets and everything hanging off them are removed first.
func (u *ClientDeletionUseCase) DeleteClient(ctx context.Context, clientID string, force bool) (DeletionResult, error) {
	res, report, err := u.deleteOne(ctx, clientID, force)
	switch {
	case err == nil:
		u.metrics.ClientDeletion(string(OutcomeDeleted))
		recordAudit(ctx, u.audit, deleteAction(force, report), []string{res.ClientID}, deletionDetails(res, force, report))
	case isBlocked(err):
		u.metrics.ClientDeletion(string(OutcomeBlocked))
		recordAudit(ctx, u.audit, entities.AuditActionClientDeleteBlocked, []string{report.ClientID}, map[string]any{
			"client_name":  report.ClientName,
			"force":        force,
			"dependencies": report,
		})
	case isNotFound(err):
		u.metrics.ClientDeletion(string(OutcomeNotFound))
	default:
		u.metrics.ClientDeletion(string(OutcomeError))
	}
	return res, err
}

// BulkDeleteClients deletes each id in turn. A failure on one id is
// recorded in the result and does not stop the batch.
func (u *ClientDeletionUseCase) BulkDeleteClients(ctx context.Context, clientIDs []string, force bool) (BulkDeletionResult, error) {
	if len(clientIDs) == 0 {
		return BulkDeletionResult{}, invalid("client_ids", "must not be empty")
	}
	if len(clientIDs) > MaxBulkDelete {
		return BulkDeletionResult{}, invalid("client_ids", fmt.Sprintf("at most %d ids per request", MaxBulkDelete))
	}

	log := logging.FromContext(ctx)
	out := BulkDeletionResult{
		TotalRequested:    len(clientIDs),
		Results:           make([]BulkDeletionItem, 0, len(clientIDs)),
		Errors:            []BulkDeletionError{},
		Warnings:          []string{},
		DependenciesFound: []entities.DependencyReport{},
	}
	deletedIDs := []string{}

	for _, id := range clientIDs {
		res, report, err := u.deleteOne(ctx, id, force)
		item := BulkDeletionItem{ClientID: id}
		switch {
		case err == nil:
			item.Outcome = OutcomeDeleted
			item.Message = res.Message
			item.BudgetsDeleted = res.BudgetsDeleted
			out.DeletedCount++
			deletedIDs = append(deletedIDs, id)
			recordAudit(ctx, u.audit, entities.AuditActionBulkDelete, []string{id}, deletionDetails(res, force, report))
		case isNotFound(err):
			item.Outcome = OutcomeNotFound
			item.Message = "cliente não encontrado"
			out.SkippedCount++
			out.Warnings = append(out.Warnings, fmt.Sprintf("Cliente %s não encontrado", id))
		case isBlocked(err):
			item.Outcome = OutcomeBlocked
			item.Message = fmt.Sprintf("cliente possui %d orçamentos vinculados", report.Budgets)
			out.SkippedCount++
			out.DependenciesFound = append(out.DependenciesFound, report)
		default:
			item.Outcome = OutcomeError
			item.Message = err.Error()
			out.Errors = append(out.Errors, BulkDeletionError{ClientID: id, Message: err.Error()})
			log.Error("client.bulk_delete.item_failed", zap.String("client_id", id), zap.Error(err))
		}
		u.metrics.ClientDeletion(string(item.Outcome))
		out.Results = append(out.Results, item)
	}

	out.Success = out.DeletedCount > 0
	recordAudit(ctx, u.audit, entities.AuditActionBulkDeleteSummary, deletedIDs, map[string]any{
		"force":           force,
		"total_requested": out.TotalRequested,
		"deleted_count":   out.DeletedCount,
		"skipped_count":   out.SkippedCount,
		"error_count":     len(out.Errors),
	})
	log.Info("client.bulk_delete",
		zap.Int("requested", out.TotalRequested),
		zap.Int("deleted", out.DeletedCount),
		zap.Int("skipped", out.SkippedCount),
		zap.Int("errors", len(out.Errors)),
		zap.Bool("force", force),
	)
	return out, nil
}

// deleteOne runs a single deletion and returns the dependency report it
// was based on, so callers can audit or surface it.
func (u *ClientDeletionUseCase) deleteOne(ctx context.Context, clientID string, force bool) (DeletionResult, entities.DependencyReport, error) {
	client, err := u.findClient(ctx, clientID)
	if err != nil {
		return DeletionResult{}, entities.DependencyReport{}, err
	}
	report, budgets, err := u.dependencies(ctx, client)
	if err != nil {
		return DeletionResult{}, entities.DependencyReport{}, err
	}

	log := logging.FromContext(ctx)
	if report.HasDependencies && !force {
		log.Warn("client.delete.blocked",
			zap.String("client_id", client.ID),
			zap.Int("budgets", report.Budgets),
			zap.Float64("total_budget_value", report.TotalBudgetValue),
		)
		return DeletionResult{}, report, &DependencyBlockedError{Report: report}
	}

	for _, b := range budgets {
		if err := u.cascade.deleteBudget(ctx, b.ID); err != nil {
			return DeletionResult{}, report, err
		}
	}
	if err := u.clients.Delete(ctx, client.ID); err != nil {
		return DeletionResult{}, report, fmt.Errorf("delete client %s: %w", client.ID, err)
	}

	res := DeletionResult{
		ClientID:       client.ID,
		ClientName:     client.Name,
		BudgetsDeleted: len(budgets),
		Message:        "Cliente excluído com sucesso",
	}
	if len(budgets) > 0 {
		res.Message = fmt.Sprintf("Cliente excluído com sucesso junto com %d orçamentos", len(budgets))
	}
	log.Info("client.delete",
		zap.String("client_id", client.ID),
		zap.Int("budgets_deleted", res.BudgetsDeleted),
		zap.Bool("force", force),
	)
	return res, report, nil
}

func (u *ClientDeletionUseCase) findClient(ctx context.Context, clientID string) (entities.Client, error) {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return entities.Client{}, invalid("client_id", "must not be empty")
	}
	c, err := u.clients.GetByID(ctx, clientID)
	if err != nil {
		return entities.Client{}, err
	}
	if c.ID == "" {
		return entities.Client{}, ErrClientNotFound
	}
	return c, nil
}

func (u *ClientDeletionUseCase) dependencies(ctx context.Context, client entities.Client) (entities.DependencyReport, []entities.Budget, error) {
	budgets, err := u.budgets.ListByClientID(ctx, client.ID)
	if err != nil {
		return entities.DependencyReport{}, nil, fmt.Errorf("list budgets of client %s: %w", client.ID, err)
	}
	return BuildDependencyReport(client, budgets), budgets, nil
}

// BuildDependencyReport classifies the budgets of a client. Only approved
// budgets count toward TotalBudgetValue.
func BuildDependencyReport(client entities.Client, budgets []entities.Budget) entities.DependencyReport {
	r := entities.DependencyReport{
		ClientID:        client.ID,
		ClientName:      client.Name,
		HasDependencies: len(budgets) > 0,
		Budgets:         len(budgets),
		Details:         []string{},
		BudgetBreakdown: make([]entities.BudgetBreakdown, 0, len(budgets)),
	}
	for _, b := range budgets {
		switch {
		case b.Status == entities.BudgetStatusApproved:
			r.ApprovedBudgets++
			r.TotalBudgetValue += b.Total
		case b.Status.Pending():
			r.PendingBudgets++
		}
		r.BudgetBreakdown = append(r.BudgetBreakdown, entities.BudgetBreakdown{BudgetID: b.ID, Status: b.Status, Total: b.Total})
	}
	if r.ApprovedBudgets > 0 {
		r.Details = append(r.Details, fmt.Sprintf("%d orçamentos aprovados (Total: R$ %.2f)", r.ApprovedBudgets, r.TotalBudgetValue))
	}
	if r.PendingBudgets > 0 {
		r.Details = append(r.Details, fmt.Sprintf("%d orçamentos pendentes", r.PendingBudgets))
	}
	if rejected := r.Budgets - r.ApprovedBudgets - r.PendingBudgets; rejected > 0 {
		r.Details = append(r.Details, fmt.Sprintf("%d orçamentos rejeitados", rejected))
	}
	return r
}

func deleteAction(force bool, report entities.DependencyReport) string {
	if force && report.HasDependencies {
		return entities.AuditActionClientForceDelete
	}
	return entities.AuditActionClientDelete
}

func deletionDetails(res DeletionResult, force bool, report entities.DependencyReport) map[string]any {
	return map[string]any{
		"client_name":     res.ClientName,
		"force":           force,
		"budgets_deleted": res.BudgetsDeleted,
		"dependencies":    report,
	}
}

func isNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func isBlocked(err error) bool {
	var blocked *DependencyBlockedError
	return errors.As(err, &blocked)
}
