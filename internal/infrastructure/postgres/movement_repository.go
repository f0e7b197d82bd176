package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/ipda-secretaria/secretaria-api/internal/domain/entity"
	"github.com/ipda-secretaria/secretaria-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo persistencia append-only de inventory_movements.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el repositorio (pool o tx).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create inserta un movimiento. No hay Update ni Delete.
func (r *MovementRepo) Create(ctx context.Context, m *entity.Movement) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO inventory_movements (id, item_id, nome_item, tipo_movimentacao, quantidade, data_movimentacao,
			origem, destino, igreja_origem_id, nome_igreja_origem, igreja_destino_id, nome_igreja_destino,
			transferencia_id, responsavel, observacoes, valor_unitario, valor_total, usuario_responsavel, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`,
		m.ID, m.ItemID, m.ItemName, m.Kind, m.Quantity, m.Date,
		m.Origin, m.Destination, nullString(m.OriginChurchID), m.OriginChurchName,
		nullString(m.DestinationChurchID), m.DestinationChurchName, nullString(m.TransferID),
		m.Responsible, m.Notes, m.UnitPrice, m.TotalValue, m.RecordedBy, m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

// List devuelve movimientos por fecha de movimiento descendente, con filtros opcionales.
func (r *MovementRepo) List(ctx context.Context, f repository.MovementFilter) ([]*entity.Movement, error) {
	var (
		where []string
		args  []any
	)
	if f.ItemID != "" {
		id, ok := parseID(f.ItemID)
		if !ok {
			return nil, nil
		}
		args = append(args, id)
		where = append(where, fmt.Sprintf("item_id = $%d", len(args)))
	}
	if f.Kind != "" {
		args = append(args, f.Kind)
		where = append(where, fmt.Sprintf("tipo_movimentacao = $%d", len(args)))
	}
	query := `
		SELECT id, COALESCE(item_id::text, ''), nome_item, tipo_movimentacao, quantidade, data_movimentacao,
			COALESCE(origem, ''), COALESCE(destino, ''),
			COALESCE(igreja_origem_id::text, ''), COALESCE(nome_igreja_origem, ''),
			COALESCE(igreja_destino_id::text, ''), COALESCE(nome_igreja_destino, ''),
			COALESCE(transferencia_id::text, ''), COALESCE(responsavel, ''), COALESCE(observacoes, ''),
			valor_unitario, valor_total, COALESCE(usuario_responsavel, ''), created_at
		FROM inventory_movements`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY data_movimentacao DESC, created_at DESC"
	if f.Limit > 0 {
		args = append(args, f.Limit, f.Offset)
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)-1, len(args))
	}

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()

	var list []*entity.Movement
	for rows.Next() {
		var m entity.Movement
		if err := rows.Scan(&m.ID, &m.ItemID, &m.ItemName, &m.Kind, &m.Quantity, &m.Date,
			&m.Origin, &m.Destination, &m.OriginChurchID, &m.OriginChurchName,
			&m.DestinationChurchID, &m.DestinationChurchName, &m.TransferID, &m.Responsible, &m.Notes,
			&m.UnitPrice, &m.TotalValue, &m.RecordedBy, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
