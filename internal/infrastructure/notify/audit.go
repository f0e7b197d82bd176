package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ipda-secretaria/secretaria-api/internal/application/ports"
	"github.com/ipda-secretaria/secretaria-api/internal/domain/repository"
)

// tablas de system_logs.table_name por tipo de registro.
var auditTables = map[string]string{
	ports.TypeMember:    "membros",
	ports.TypeChurch:    "churches",
	ports.TypeInventory: "inventory_items",
}

// AuditLogger escribe cada evento en system_logs.
type AuditLogger struct {
	repo repository.AuditLogRepository
	now  func() time.Time
}

// NewAuditLogger construye el destino de auditoría.
func NewAuditLogger(repo repository.AuditLogRepository) *AuditLogger {
	return &AuditLogger{repo: repo, now: time.Now}
}

// Notify registra el evento con el actor del contexto.
func (a *AuditLogger) Notify(ctx context.Context, e ports.Event) error {
	data, err := json.Marshal(e.Data)
	if err != nil {
		return fmt.Errorf("audit: serializar datos: %w", err)
	}
	var ref struct {
		ID string `json:"id"`
	}
	_ = json.Unmarshal(data, &ref)

	table := auditTables[e.Type]
	if table == "" {
		table = e.Type
	}
	return a.repo.Create(ctx, &repository.AuditLogEntry{
		ID:        uuid.New().String(),
		Action:    e.Action,
		TableName: table,
		RecordID:  ref.ID,
		NewData:   data,
		UserID:    ports.ActorFromContext(ctx),
		CreatedAt: a.now(),
	})
}
