package usecase

import (
	"context"
	"sort"
	"strings"
	"time"

	"orcasys/internal/domain/entities"
	"orcasys/internal/infrastructure/logging"
	"orcasys/internal/requestctx"
	"orcasys/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type IAuditLogUseCase interface {
	List(ctx context.Context, action string) ([]entities.AuditLog, error)
}

type AuditLogUseCase struct {
	repo interfaces.IAuditLogRepository
}

var _ IAuditLogUseCase = (*AuditLogUseCase)(nil)

func NewAuditLogUseCase(repo interfaces.IAuditLogRepository) *AuditLogUseCase {
	return &AuditLogUseCase{repo: repo}
}

// List returns audit entries newest first, optionally narrowed to one action.
func (u *AuditLogUseCase) List(ctx context.Context, action string) ([]entities.AuditLog, error) {
	logs, err := u.repo.List(ctx, strings.TrimSpace(action))
	if err != nil {
		return nil, err
	}
	sort.Slice(logs, func(i, j int) bool { return logs[i].CreatedAt.After(logs[j].CreatedAt) })
	return logs, nil
}

// recordAudit appends an audit entry for the acting user. A failed write is
// logged and does not fail the operation being audited.
func recordAudit(ctx context.Context, repo interfaces.IAuditLogRepository, action string, ids []string, details map[string]any) {
	entry := entities.AuditLog{
		ID:           uuid.NewString(),
		Actor:        requestctx.ActorFromContext(ctx),
		Action:       action,
		ResourceType: entities.AuditResourceClient,
		ResourceIDs:  ids,
		Details:      details,
		CreatedAt:    time.Now().UTC(),
	}
	if err := repo.Append(ctx, entry); err != nil {
		logging.FromContext(ctx).Error("audit.append_failed",
			zap.String("action", action),
			zap.Strings("resource_ids", ids),
			zap.Error(err),
		)
	}
}
