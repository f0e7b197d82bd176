package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/ipda-secretaria/secretaria-api/internal/domain"
	"github.com/ipda-secretaria/secretaria-api/internal/domain/entity"
	"github.com/ipda-secretaria/secretaria-api/internal/domain/repository"
)

var _ repository.TransferRepository = (*TransferRepo)(nil)

// TransferRepo persistencia de inventory_transfers.
type TransferRepo struct {
	q Querier
}

// NewTransferRepository construye el repositorio (pool o tx).
func NewTransferRepository(q Querier) *TransferRepo {
	return &TransferRepo{q: q}
}

const transferColumns = `id, COALESCE(item_id::text, ''), nome_item, quantidade,
	igreja_origem_id, nome_igreja_origem, igreja_destino_id, nome_igreja_destino,
	data_transferencia, COALESCE(responsavel_transferencia, ''), COALESCE(observacoes, ''), status,
	valor_unitario, valor_total, created_at, updated_at`

func scanTransfer(row pgx.Row) (*entity.Transfer, error) {
	var t entity.Transfer
	err := row.Scan(&t.ID, &t.ItemID, &t.ItemName, &t.Quantity,
		&t.OriginChurchID, &t.OriginChurchName, &t.DestinationChurchID, &t.DestinationChurchName,
		&t.Date, &t.Responsible, &t.Notes, &t.Status, &t.UnitPrice, &t.TotalValue, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Create inserta la transferencia.
func (r *TransferRepo) Create(ctx context.Context, t *entity.Transfer) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO inventory_transfers (id, item_id, nome_item, quantidade, igreja_origem_id, nome_igreja_origem,
			igreja_destino_id, nome_igreja_destino, data_transferencia, responsavel_transferencia, observacoes,
			status, valor_unitario, valor_total, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`,
		t.ID, t.ItemID, t.ItemName, t.Quantity, t.OriginChurchID, t.OriginChurchName,
		t.DestinationChurchID, t.DestinationChurchName, t.Date, t.Responsible, t.Notes,
		t.Status, t.UnitPrice, t.TotalValue, t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert transfer: %w", err)
	}
	return nil
}

// GetByID obtiene una transferencia por ID.
func (r *TransferRepo) GetByID(ctx context.Context, id string) (*entity.Transfer, error) {
	id, ok := parseID(id)
	if !ok {
		return nil, nil
	}
	t, err := scanTransfer(r.q.QueryRow(ctx, `SELECT `+transferColumns+` FROM inventory_transfers WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transfer: %w", err)
	}
	return t, nil
}

// UpdateStatus cambia el estado (único campo mutable).
func (r *TransferRepo) UpdateStatus(ctx context.Context, id, status string, at time.Time) error {
	id, ok := parseID(id)
	if !ok {
		return domain.ErrNotFound
	}
	cmd, err := r.q.Exec(ctx,
		`UPDATE inventory_transfers SET status = $2, updated_at = $3 WHERE id = $1`, id, status, at)
	if err != nil {
		return fmt.Errorf("update transfer status: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List transferencias de la más reciente a la más antigua.
func (r *TransferRepo) List(ctx context.Context, limit, offset int) ([]*entity.Transfer, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := r.q.Query(ctx, `SELECT `+transferColumns+` FROM inventory_transfers
		ORDER BY data_transferencia DESC, created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list transfers: %w", err)
	}
	defer rows.Close()

	var list []*entity.Transfer
	for rows.Next() {
		t, err := scanTransfer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan transfer: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}
