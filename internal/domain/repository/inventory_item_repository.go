package repository

import (
	"context"

	"github.com/ipda-secretaria/secretaria-api/internal/domain/entity"
)

// InventoryItemRepository define el puerto de persistencia para los ítems del depósito (DIP).
// GetByID devuelve (nil, nil) si no existe.
type InventoryItemRepository interface {
	Create(ctx context.Context, item *entity.InventoryItem) error
	GetByID(ctx context.Context, id string) (*entity.InventoryItem, error)
	// GetForUpdate bloquea la fila del ítem hasta el fin de la transacción (SELECT FOR UPDATE).
	GetForUpdate(ctx context.Context, id string) (*entity.InventoryItem, error)
	Update(ctx context.Context, item *entity.InventoryItem) error
	// UpdateStock fija la cantidad en stock (usado por el libro de stock).
	UpdateStock(ctx context.Context, id string, stock int) error
	Delete(ctx context.Context, id string) error
	// List devuelve todos los ítems en orden de alta (created_at ascendente).
	List(ctx context.Context) ([]*entity.InventoryItem, error)
}
