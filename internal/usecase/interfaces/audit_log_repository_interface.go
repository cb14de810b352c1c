package interfaces

import (
	"context"

	"orcasys/internal/domain/entities"
)

type IAuditLogRepository interface {
	Append(ctx context.Context, l entities.AuditLog) error
	List(ctx context.Context, action string) ([]entities.AuditLog, error)
}
