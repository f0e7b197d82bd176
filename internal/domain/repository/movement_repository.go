package repository

import (
	"context"

	"github.com/ipda-secretaria/secretaria-api/internal/domain/entity"
)

// MovementFilter filtros opcionales para listar movimientos.
type MovementFilter struct {
	ItemID string
	Kind   string
	Limit  int
	Offset int
}

// MovementRepository log append-only de movimientos: solo inserción y lectura.
type MovementRepository interface {
	Create(ctx context.Context, movement *entity.Movement) error
	// List ordena por fecha de movimiento descendente.
	List(ctx context.Context, filter MovementFilter) ([]*entity.Movement, error)
}
