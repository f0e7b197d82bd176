package repository

import (
	"context"

	"github.com/ipda-secretaria/secretaria-api/internal/domain/entity"
)

// MemberRepository define el puerto de persistencia para Member (DIP).
type MemberRepository interface {
	Create(ctx context.Context, member *entity.Member) error
	GetByID(ctx context.Context, id string) (*entity.Member, error)
	Update(ctx context.Context, member *entity.Member) error
	Delete(ctx context.Context, id string) error
	// List devuelve todos los miembros ordenados por nombre.
	List(ctx context.Context) ([]*entity.Member, error)
}
