package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ipda-secretaria/secretaria-api/internal/application/dto"
	"github.com/ipda-secretaria/secretaria-api/internal/application/ports"
	"github.com/ipda-secretaria/secretaria-api/internal/domain"
	"github.com/ipda-secretaria/secretaria-api/internal/domain/entity"
	"github.com/ipda-secretaria/secretaria-api/internal/domain/repository"
	"github.com/ipda-secretaria/secretaria-api/pkg/logger"
	"github.com/ipda-secretaria/secretaria-api/pkg/textutil"
)

// ItemUseCase catálogo del depósito. El stock solo cambia por el libro de stock;
// aquí se fija el stock inicial al dar de alta.
type ItemUseCase struct {
	repo     repository.InventoryItemRepository
	notifier ports.Notifier
	log      *logger.Logger
	pageSize int
}

// NewItemUseCase construye el caso de uso. notifier puede ser nil.
func NewItemUseCase(repo repository.InventoryItemRepository, notifier ports.Notifier, log *logger.Logger, pageSize int) *ItemUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &ItemUseCase{repo: repo, notifier: notifier, log: log.Component("items"), pageSize: pageSize}
}

// Create da de alta un ítem.
func (uc *ItemUseCase) Create(ctx context.Context, in dto.CreateItemRequest) (*dto.ItemResponse, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Code = strings.TrimSpace(in.Code)
	if in.Unit == "" {
		in.Unit = entity.UnitUnidade
	}
	if err := validateItem(in.Name, in.Code, in.Category, in.Unit, in.UnitPrice, in.MinimumStock); err != nil {
		return nil, err
	}
	if in.Stock < 0 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	item := &entity.InventoryItem{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Category:     in.Category,
		Code:         in.Code,
		Description:  in.Description,
		Unit:         in.Unit,
		UnitPrice:    in.UnitPrice,
		Stock:        in.Stock,
		MinimumStock: in.MinimumStock,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	out := dto.ItemFromEntity(item)
	uc.notify(ctx, ports.ActionCreate, out)
	return &out, nil
}

// GetByID obtiene un ítem.
func (uc *ItemUseCase) GetByID(ctx context.Context, id string) (*dto.ItemResponse, error) {
	item, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrUnknownItem
	}
	out := dto.ItemFromEntity(item)
	return &out, nil
}

// Update modifica los datos descriptivos. El stock no se edita.
func (uc *ItemUseCase) Update(ctx context.Context, id string, in dto.UpdateItemRequest) (*dto.ItemResponse, error) {
	item, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrUnknownItem
	}
	if in.Name != nil {
		item.Name = strings.TrimSpace(*in.Name)
	}
	if in.Category != nil {
		item.Category = *in.Category
	}
	if in.Code != nil {
		item.Code = strings.TrimSpace(*in.Code)
	}
	if in.Description != nil {
		item.Description = *in.Description
	}
	if in.Unit != nil {
		item.Unit = *in.Unit
	}
	if in.UnitPrice != nil {
		item.UnitPrice = *in.UnitPrice
	}
	if in.MinimumStock != nil {
		item.MinimumStock = *in.MinimumStock
	}
	if err := validateItem(item.Name, item.Code, item.Category, item.Unit, item.UnitPrice, item.MinimumStock); err != nil {
		return nil, err
	}
	item.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, item); err != nil {
		return nil, err
	}
	out := dto.ItemFromEntity(item)
	uc.notify(ctx, ports.ActionUpdate, out)
	return &out, nil
}

// Delete elimina el ítem. El historial de movimientos conserva la referencia.
func (uc *ItemUseCase) Delete(ctx context.Context, id string) error {
	item, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrUnknownItem
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.notify(ctx, ports.ActionDelete, dto.ItemFromEntity(item))
	return nil
}

// List filtra por q (sin distinguir mayúsculas ni acentos en nombre, código, descripción y
// categoría) y devuelve el prefijo visible de la página pedida.
func (uc *ItemUseCase) List(ctx context.Context, req dto.RevealRequest) (*dto.ItemListResponse, error) {
	all, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	filtered := SearchItems(all, req.Query)
	visible, page := window(filtered, req.Page, uc.pageSize)
	return &dto.ItemListResponse{Items: dto.ItemsFromEntities(visible), Page: page}, nil
}

// SearchItems filtra ítems por texto libre. Query vacía devuelve la lista completa.
func SearchItems(items []*entity.InventoryItem, query string) []*entity.InventoryItem {
	if strings.TrimSpace(query) == "" {
		return items
	}
	out := make([]*entity.InventoryItem, 0, len(items))
	for _, it := range items {
		if textutil.ContainsFold(query, it.Name, it.Code, it.Description, it.Category) {
			out = append(out, it)
		}
	}
	return out
}

func validateItem(name, code, category, unit string, price decimal.Decimal, minimum int) error {
	switch {
	case name == "", code == "":
		return domain.ErrInvalidInput
	case !entity.IsValidCategory(category), !entity.IsValidUnit(unit):
		return domain.ErrInvalidInput
	case price.IsNegative(), minimum < 0:
		return domain.ErrInvalidInput
	}
	return nil
}

func (uc *ItemUseCase) notify(ctx context.Context, action string, data dto.ItemResponse) {
	if err := ports.NotifyBestEffort(ctx, uc.notifier, action, ports.TypeInventory, data); err != nil {
		uc.log.Warn().Err(err).Str("action", action).Str("item_id", data.ID).Msg("notificación falló")
	}
}
