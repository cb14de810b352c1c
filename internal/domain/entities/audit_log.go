package entities

import "time"

const (
	AuditActionClientDelete        = "client_delete"
	AuditActionClientForceDelete   = "client_force_delete"
	AuditActionClientDeleteBlocked = "client_delete_blocked"
	AuditActionBulkDelete          = "bulk_client_delete"
	AuditActionBulkDeleteSummary   = "bulk_client_delete_summary"
	AuditActionClientImport        = "client_import"

	AuditResourceClient = "client"
)

// AuditLog is an append-only record of a sensitive operation.
type AuditLog struct {
	ID           string         `json:"id"`
	Actor        string         `json:"actor"`
	Action       string         `json:"action"`
	ResourceType string         `json:"resource_type"`
	ResourceIDs  []string       `json:"resource_ids"`
	Details      map[string]any `json:"details,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
}
