package repository

import (
	"context"
	"time"

	"github.com/ipda-secretaria/secretaria-api/internal/domain/entity"
)

// TransferRepository log de transferencias entre igrejas. El único campo mutable es el estado.
type TransferRepository interface {
	Create(ctx context.Context, transfer *entity.Transfer) error
	GetByID(ctx context.Context, id string) (*entity.Transfer, error)
	UpdateStatus(ctx context.Context, id, status string, at time.Time) error
	// List ordena por fecha de transferencia descendente.
	List(ctx context.Context, limit, offset int) ([]*entity.Transfer, error)
}
