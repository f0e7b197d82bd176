package repository

import (
	"context"
	"encoding/json"
	"time"
)

// AuditLogEntry fila de system_logs.
type AuditLogEntry struct {
	ID        string
	Action    string
	TableName string
	RecordID  string
	NewData   json.RawMessage
	UserID    string
	CreatedAt time.Time
}

// AuditLogRepository escritura del registro de auditoría.
type AuditLogRepository interface {
	Create(ctx context.Context, entry *AuditLogEntry) error
}
