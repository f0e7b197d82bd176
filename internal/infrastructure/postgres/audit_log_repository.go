package postgres

import (
	"context"
	"fmt"

	"github.com/ipda-secretaria/secretaria-api/internal/domain/repository"
)

var _ repository.AuditLogRepository = (*AuditLogRepo)(nil)

// AuditLogRepo escribe en system_logs.
type AuditLogRepo struct {
	q Querier
}

// NewAuditLogRepository construye el repositorio.
func NewAuditLogRepository(q Querier) *AuditLogRepo {
	return &AuditLogRepo{q: q}
}

// Create inserta una entrada de auditoría.
func (r *AuditLogRepo) Create(ctx context.Context, e *repository.AuditLogEntry) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO system_logs (id, action, table_name, record_id, new_data, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		e.ID, e.Action, e.TableName, e.RecordID, []byte(e.NewData), nullString(e.UserID), e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert system log: %w", err)
	}
	return nil
}
