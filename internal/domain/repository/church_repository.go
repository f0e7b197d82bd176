package repository

import (
	"context"

	"github.com/ipda-secretaria/secretaria-api/internal/domain/entity"
)

// ChurchRepository define el puerto de persistencia para Church (DIP).
type ChurchRepository interface {
	Create(ctx context.Context, church *entity.Church) error
	GetByID(ctx context.Context, id string) (*entity.Church, error)
	Update(ctx context.Context, church *entity.Church) error
	Delete(ctx context.Context, id string) error
	// List devuelve todas las igrejas ordenadas por nombre.
	List(ctx context.Context) ([]*entity.Church, error)
}
