// Package ledger mantiene el stock de los ítems del depósito junto con el historial
// append-only de movimientos y transferencias entre igrejas.
package ledger

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ipda-secretaria/secretaria-api/internal/application/dto"
	"github.com/ipda-secretaria/secretaria-api/internal/application/ports"
	"github.com/ipda-secretaria/secretaria-api/internal/domain"
	"github.com/ipda-secretaria/secretaria-api/internal/domain/entity"
	"github.com/ipda-secretaria/secretaria-api/internal/domain/inventory"
	"github.com/ipda-secretaria/secretaria-api/internal/domain/repository"
	"github.com/ipda-secretaria/secretaria-api/pkg/logger"
	"github.com/shopspring/decimal"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Si fn devuelve error se hace Rollback; si no, Commit.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		items repository.InventoryItemRepository,
		movements repository.MovementRepository,
		transfers repository.TransferRepository,
	) error) error
}

// Config colaboradores opcionales del libro de stock.
type Config struct {
	// TransferInitialStatus estado con que nace una transferencia; vacío = enviado.
	TransferInitialStatus string
	Notifier              ports.Notifier
	// Cache se invalida después de cada escritura confirmada sobre el stock.
	Cache  ports.Invalidator
	Logger *logger.Logger
}

// Ledger libro de stock. Toda escritura (verificación de stock, actualización y registro del
// movimiento) corre en una única transacción con la fila del ítem bloqueada.
type Ledger struct {
	txRunner       TxRunner
	itemRepo       repository.InventoryItemRepository
	movementRepo   repository.MovementRepository
	transferRepo   repository.TransferRepository
	churchRepo     repository.ChurchRepository
	notifier       ports.Notifier
	cache          ports.Invalidator
	log            *logger.Logger
	transferStatus string
	now            func() time.Time
}

// New construye el libro de stock. itemRepo, movementRepo y transferRepo se usan para lecturas
// fuera de transacción; las escrituras usan los repositorios que entrega txRunner.
func New(
	txRunner TxRunner,
	itemRepo repository.InventoryItemRepository,
	movementRepo repository.MovementRepository,
	transferRepo repository.TransferRepository,
	churchRepo repository.ChurchRepository,
	cfg Config,
) (*Ledger, error) {
	status := cfg.TransferInitialStatus
	if status == "" {
		status = entity.TransferSent
	}
	if status != entity.TransferPending && status != entity.TransferSent {
		return nil, fmt.Errorf("estado inicial de transferencia inválido: %q", status)
	}
	log := cfg.Logger
	if log == nil {
		log = logger.Nop()
	}
	return &Ledger{
		txRunner:       txRunner,
		itemRepo:       itemRepo,
		movementRepo:   movementRepo,
		transferRepo:   transferRepo,
		churchRepo:     churchRepo,
		notifier:       cfg.Notifier,
		cache:          cfg.Cache,
		log:            log.Component("ledger"),
		transferStatus: status,
		now:            time.Now,
	}, nil
}

// EntryInput datos de una entrada de mercadería.
type EntryInput struct {
	ItemID      string
	Quantity    int
	Origin      string
	Responsible string
	Notes       string
	Date        time.Time // cero = ahora
	Actor       string
}

// ExitInput datos de una salida de mercadería.
type ExitInput struct {
	ItemID      string
	Quantity    int
	Destination string
	Responsible string
	Notes       string
	Date        time.Time
	Actor       string
}

// TransferInput datos de una transferencia entre igrejas.
type TransferInput struct {
	ItemID              string
	Quantity            int
	OriginChurchID      string
	DestinationChurchID string
	Responsible         string
	Notes               string
	Date                time.Time
	Actor               string
}

// RecordEntry registra una entrada: stock += quantity.
func (l *Ledger) RecordEntry(ctx context.Context, in EntryInput) (*entity.Movement, error) {
	if err := inventory.CheckQuantity(in.Quantity); err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.ItemID) == "" {
		return nil, domain.ErrInvalidInput
	}
	now := l.now()
	var (
		mov     *entity.Movement
		updated *entity.InventoryItem
	)
	err := l.txRunner.Run(ctx, func(
		items repository.InventoryItemRepository,
		movements repository.MovementRepository,
		_ repository.TransferRepository,
	) error {
		item, err := lockItem(ctx, items, in.ItemID)
		if err != nil {
			return err
		}
		item.Stock = inventory.ApplyDelta(item.Stock, in.Quantity)
		if err := items.UpdateStock(ctx, item.ID, item.Stock); err != nil {
			return fmt.Errorf("actualizar stock: %w", err)
		}
		mov = newMovement(item, entity.MovementEntry, in.Quantity, dateOr(in.Date, now), now)
		mov.Origin = in.Origin
		mov.Responsible = in.Responsible
		mov.Notes = in.Notes
		mov.RecordedBy = in.Actor
		if err := movements.Create(ctx, mov); err != nil {
			return fmt.Errorf("registrar movimiento: %w", err)
		}
		updated = item
		return nil
	})
	if err != nil {
		return nil, err
	}
	l.afterWrite(ctx, updated)
	return mov, nil
}

// RecordExit registra una salida. Si quantity supera el stock devuelve ErrInsufficientStock
// sin modificar nada.
func (l *Ledger) RecordExit(ctx context.Context, in ExitInput) (*entity.Movement, error) {
	if err := inventory.CheckQuantity(in.Quantity); err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.ItemID) == "" {
		return nil, domain.ErrInvalidInput
	}
	now := l.now()
	var (
		mov     *entity.Movement
		updated *entity.InventoryItem
	)
	err := l.txRunner.Run(ctx, func(
		items repository.InventoryItemRepository,
		movements repository.MovementRepository,
		_ repository.TransferRepository,
	) error {
		item, err := lockItem(ctx, items, in.ItemID)
		if err != nil {
			return err
		}
		if err := inventory.CheckAvailable(item, in.Quantity); err != nil {
			return err
		}
		item.Stock = inventory.ApplyDelta(item.Stock, -in.Quantity)
		if err := items.UpdateStock(ctx, item.ID, item.Stock); err != nil {
			return fmt.Errorf("actualizar stock: %w", err)
		}
		mov = newMovement(item, entity.MovementExit, in.Quantity, dateOr(in.Date, now), now)
		mov.Destination = in.Destination
		mov.Responsible = in.Responsible
		mov.Notes = in.Notes
		mov.RecordedBy = in.Actor
		if err := movements.Create(ctx, mov); err != nil {
			return fmt.Errorf("registrar movimiento: %w", err)
		}
		updated = item
		return nil
	})
	if err != nil {
		return nil, err
	}
	l.afterWrite(ctx, updated)
	return mov, nil
}

// RecordTransfer registra una transferencia entre igrejas: descuenta del stock del depósito y
// escribe el Transfer y su Movement de tipo transferencia en la misma transacción.
// El stock del destino no se incrementa (las igrejas no llevan stock propio).
func (l *Ledger) RecordTransfer(ctx context.Context, in TransferInput) (*entity.Transfer, error) {
	if err := inventory.CheckQuantity(in.Quantity); err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.ItemID) == "" || in.OriginChurchID == "" || in.DestinationChurchID == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.OriginChurchID == in.DestinationChurchID {
		return nil, domain.ErrInvalidInput
	}
	origin, err := l.churchRepo.GetByID(ctx, in.OriginChurchID)
	if err != nil {
		return nil, fmt.Errorf("buscar igreja de origem: %w", err)
	}
	dest, err := l.churchRepo.GetByID(ctx, in.DestinationChurchID)
	if err != nil {
		return nil, fmt.Errorf("buscar igreja de destino: %w", err)
	}
	if origin == nil || dest == nil {
		return nil, domain.ErrUnknownChurch
	}

	now := l.now()
	date := dateOr(in.Date, now)
	var (
		tr      *entity.Transfer
		updated *entity.InventoryItem
	)
	err = l.txRunner.Run(ctx, func(
		items repository.InventoryItemRepository,
		movements repository.MovementRepository,
		transfers repository.TransferRepository,
	) error {
		item, err := lockItem(ctx, items, in.ItemID)
		if err != nil {
			return err
		}
		if err := inventory.CheckAvailable(item, in.Quantity); err != nil {
			return err
		}
		item.Stock = inventory.ApplyDelta(item.Stock, -in.Quantity)
		if err := items.UpdateStock(ctx, item.ID, item.Stock); err != nil {
			return fmt.Errorf("actualizar stock: %w", err)
		}
		tr = &entity.Transfer{
			ID:                    uuid.New().String(),
			ItemID:                item.ID,
			ItemName:              item.Name,
			Quantity:              in.Quantity,
			OriginChurchID:        origin.ID,
			OriginChurchName:      origin.Name,
			DestinationChurchID:   dest.ID,
			DestinationChurchName: dest.Name,
			Date:                  date,
			Responsible:           in.Responsible,
			Notes:                 in.Notes,
			Status:                l.transferStatus,
			UnitPrice:             item.UnitPrice,
			TotalValue:            inventory.TotalValue(item.UnitPrice, in.Quantity),
			CreatedAt:             now,
			UpdatedAt:             now,
		}
		if err := transfers.Create(ctx, tr); err != nil {
			return fmt.Errorf("registrar transferencia: %w", err)
		}
		mov := newMovement(item, entity.MovementTransfer, in.Quantity, date, now)
		mov.TransferID = tr.ID
		mov.OriginChurchID = origin.ID
		mov.OriginChurchName = origin.Name
		mov.DestinationChurchID = dest.ID
		mov.DestinationChurchName = dest.Name
		mov.Responsible = in.Responsible
		mov.Notes = in.Notes
		mov.RecordedBy = in.Actor
		if err := movements.Create(ctx, mov); err != nil {
			return fmt.Errorf("registrar movimiento: %w", err)
		}
		updated = item
		return nil
	})
	if err != nil {
		return nil, err
	}
	l.afterWrite(ctx, updated)
	return tr, nil
}

// UpdateItemStock primitiva de bajo nivel: stock = max(0, stock + delta). No registra movimiento.
func (l *Ledger) UpdateItemStock(ctx context.Context, itemID string, delta int) (*entity.InventoryItem, error) {
	var updated *entity.InventoryItem
	err := l.txRunner.Run(ctx, func(
		items repository.InventoryItemRepository,
		_ repository.MovementRepository,
		_ repository.TransferRepository,
	) error {
		item, err := lockItem(ctx, items, itemID)
		if err != nil {
			return err
		}
		item.Stock = inventory.ApplyDelta(item.Stock, delta)
		if err := items.UpdateStock(ctx, item.ID, item.Stock); err != nil {
			return fmt.Errorf("actualizar stock: %w", err)
		}
		updated = item
		return nil
	})
	if err != nil {
		return nil, err
	}
	l.afterWrite(ctx, updated)
	return updated, nil
}

// UpdateTransferStatus cambia el estado de una transferencia. No afecta el stock.
func (l *Ledger) UpdateTransferStatus(ctx context.Context, transferID, status string) (*entity.Transfer, error) {
	if !entity.IsValidTransferStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	var tr *entity.Transfer
	err := l.txRunner.Run(ctx, func(
		_ repository.InventoryItemRepository,
		_ repository.MovementRepository,
		transfers repository.TransferRepository,
	) error {
		current, err := transfers.GetByID(ctx, transferID)
		if err != nil {
			return fmt.Errorf("buscar transferencia: %w", err)
		}
		if current == nil {
			return domain.ErrNotFound
		}
		if !current.CanTransition(status) {
			return domain.ErrInvalidTransition
		}
		now := l.now()
		if err := transfers.UpdateStatus(ctx, current.ID, status, now); err != nil {
			return fmt.Errorf("actualizar estado: %w", err)
		}
		current.Status = status
		current.UpdatedAt = now
		tr = current
		return nil
	})
	if err != nil {
		return nil, err
	}
	return tr, nil
}

// GetTotalStockValue suma precio unitario × cantidad de todos los ítems.
func (l *Ledger) GetTotalStockValue(ctx context.Context) (decimal.Decimal, error) {
	items, err := l.itemRepo.List(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	return inventory.TotalStockValue(items), nil
}

// GetTotalItemTypes cantidad de ítems con stock disponible.
func (l *Ledger) GetTotalItemTypes(ctx context.Context) (int, error) {
	items, err := l.itemRepo.List(ctx)
	if err != nil {
		return 0, err
	}
	return inventory.TotalItemTypes(items), nil
}

// GetLowStockItems ítems con stock > 0 más cercanos a su mínimo. limit <= 0 usa 5.
func (l *Ledger) GetLowStockItems(ctx context.Context, limit int) ([]*entity.InventoryItem, error) {
	items, err := l.itemRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return inventory.LowStock(items, limit), nil
}

// GetRecentMovements últimos movimientos por fecha de movimiento. limit <= 0 usa 5.
func (l *Ledger) GetRecentMovements(ctx context.Context, limit int) ([]*entity.Movement, error) {
	if limit <= 0 {
		limit = inventory.DefaultRecentMovementLimit
	}
	movs, err := l.movementRepo.List(ctx, repository.MovementFilter{Limit: limit})
	if err != nil {
		return nil, err
	}
	return inventory.RecentMovements(movs, limit), nil
}

// ListMovements lista movimientos, del más reciente al más antiguo.
func (l *Ledger) ListMovements(ctx context.Context, filter repository.MovementFilter) ([]*entity.Movement, error) {
	if filter.Kind != "" && filter.Kind != entity.MovementEntry &&
		filter.Kind != entity.MovementExit && filter.Kind != entity.MovementTransfer {
		return nil, domain.ErrInvalidInput
	}
	return l.movementRepo.List(ctx, filter)
}

// ListTransfers lista transferencias, de la más reciente a la más antigua.
func (l *Ledger) ListTransfers(ctx context.Context, limit, offset int) ([]*entity.Transfer, error) {
	return l.transferRepo.List(ctx, limit, offset)
}

// lockItem bloquea la fila del ítem (SELECT FOR UPDATE) o devuelve ErrUnknownItem.
func lockItem(ctx context.Context, items repository.InventoryItemRepository, id string) (*entity.InventoryItem, error) {
	item, err := items.GetForUpdate(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("bloquear ítem: %w", err)
	}
	if item == nil {
		return nil, domain.ErrUnknownItem
	}
	return item, nil
}

func newMovement(item *entity.InventoryItem, kind string, qty int, date, now time.Time) *entity.Movement {
	return &entity.Movement{
		ID:         uuid.New().String(),
		ItemID:     item.ID,
		ItemName:   item.Name,
		Kind:       kind,
		Quantity:   qty,
		Date:       date,
		UnitPrice:  item.UnitPrice,
		TotalValue: inventory.TotalValue(item.UnitPrice, qty),
		CreatedAt:  now,
	}
}

func dateOr(d, now time.Time) time.Time {
	if d.IsZero() {
		return now
	}
	return d
}

// afterWrite corre fuera de la transacción, con la escritura ya confirmada.
func (l *Ledger) afterWrite(ctx context.Context, item *entity.InventoryItem) {
	if l.cache != nil {
		l.cache.Invalidate()
	}
	if item == nil {
		return
	}
	if err := ports.NotifyBestEffort(ctx, l.notifier, ports.ActionUpdate, ports.TypeInventory, dto.ItemFromEntity(item)); err != nil {
		l.log.Warn().Err(err).Str("item_id", item.ID).Msg("notificación de stock falló")
	}
}
