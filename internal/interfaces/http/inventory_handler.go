package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/ipda-secretaria/secretaria-api/internal/application/dto"
	"github.com/ipda-secretaria/secretaria-api/internal/application/ledger"
	"github.com/ipda-secretaria/secretaria-api/internal/application/ports"
	"github.com/ipda-secretaria/secretaria-api/internal/domain/entity"
	"github.com/ipda-secretaria/secretaria-api/internal/domain/repository"
)

type stockLedger interface {
	RecordEntry(ctx context.Context, in ledger.EntryInput) (*entity.Movement, error)
	RecordExit(ctx context.Context, in ledger.ExitInput) (*entity.Movement, error)
	RecordTransfer(ctx context.Context, in ledger.TransferInput) (*entity.Transfer, error)
	UpdateItemStock(ctx context.Context, itemID string, delta int) (*entity.InventoryItem, error)
	UpdateTransferStatus(ctx context.Context, transferID, status string) (*entity.Transfer, error)
	GetTotalStockValue(ctx context.Context) (decimal.Decimal, error)
	GetTotalItemTypes(ctx context.Context) (int, error)
	GetLowStockItems(ctx context.Context, limit int) ([]*entity.InventoryItem, error)
	GetRecentMovements(ctx context.Context, limit int) ([]*entity.Movement, error)
	ListMovements(ctx context.Context, filter repository.MovementFilter) ([]*entity.Movement, error)
	ListTransfers(ctx context.Context, limit, offset int) ([]*entity.Transfer, error)
}

// InventoryHandler maneja entradas, salidas y transferencias del depósito (protegido).
type InventoryHandler struct {
	ledger stockLedger
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(l stockLedger) *InventoryHandler {
	return &InventoryHandler{ledger: l}
}

// RecordEntry godoc
// @Summary      Registrar entrada de mercadoria
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.EntryRequest  true  "item_id, quantidade, origem, responsavel"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventory/entries [post]
func (h *InventoryHandler) RecordEntry(c *fiber.Ctx) error {
	var in dto.EntryRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	ctx := c.UserContext()
	mov, err := h.ledger.RecordEntry(ctx, ledger.EntryInput{
		ItemID:      in.ItemID,
		Quantity:    in.Quantity,
		Origin:      in.Origin,
		Responsible: in.Responsible,
		Notes:       in.Notes,
		Date:        timeOrZero(in.Date),
		Actor:       ports.ActorFromContext(ctx),
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MovementFromEntity(mov))
}

// RecordExit godoc
// @Summary      Registrar saída de mercadoria
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ExitRequest  true  "item_id, quantidade, destino, responsavel"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/exits [post]
func (h *InventoryHandler) RecordExit(c *fiber.Ctx) error {
	var in dto.ExitRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	ctx := c.UserContext()
	mov, err := h.ledger.RecordExit(ctx, ledger.ExitInput{
		ItemID:      in.ItemID,
		Quantity:    in.Quantity,
		Destination: in.Destination,
		Responsible: in.Responsible,
		Notes:       in.Notes,
		Date:        timeOrZero(in.Date),
		Actor:       ports.ActorFromContext(ctx),
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MovementFromEntity(mov))
}

// RecordTransfer godoc
// @Summary      Transferir mercadoria entre igrejas
// @Description  Descuenta el stock del depósito y registra la transferencia con su movimiento correlacionado.
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TransferRequest  true  "item_id, quantidade, igreja_origem_id, igreja_destino_id"
// @Success      201   {object}  dto.TransferResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/transfers [post]
func (h *InventoryHandler) RecordTransfer(c *fiber.Ctx) error {
	var in dto.TransferRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	ctx := c.UserContext()
	tr, err := h.ledger.RecordTransfer(ctx, ledger.TransferInput{
		ItemID:              in.ItemID,
		Quantity:            in.Quantity,
		OriginChurchID:      in.OriginChurchID,
		DestinationChurchID: in.DestinationChurchID,
		Responsible:         in.Responsible,
		Notes:               in.Notes,
		Date:                timeOrZero(in.Date),
		Actor:               ports.ActorFromContext(ctx),
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.TransferFromEntity(tr))
}

// UpdateTransferStatus godoc
// @Summary      Cambiar estado de una transferencia
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                     true  "ID de la transferencia"
// @Param        body  body  dto.TransferStatusRequest  true  "pendente | enviado | recebido | cancelado"
// @Success      200   {object}  dto.TransferResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/transfers/{id}/status [patch]
func (h *InventoryHandler) UpdateTransferStatus(c *fiber.Ctx) error {
	var in dto.TransferStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	tr, err := h.ledger.UpdateTransferStatus(c.UserContext(), c.Params("id"), in.Status)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.TransferFromEntity(tr))
}

// AdjustStock godoc
// @Summary      Ajuste manual de stock
// @Description  stock = max(0, stock + delta). No registra movimiento.
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "ID del ítem"
// @Param        body  body  dto.StockAdjustRequest  true  "delta"
// @Success      200   {object}  dto.ItemResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventory/items/{id}/stock [patch]
func (h *InventoryHandler) AdjustStock(c *fiber.Ctx) error {
	var in dto.StockAdjustRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	item, err := h.ledger.UpdateItemStock(c.UserContext(), c.Params("id"), in.Delta)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.ItemFromEntity(item))
}

// ListMovements godoc
// @Summary      Historial de movimientos
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        item_id  query  string  false  "Filtrar por ítem"
// @Param        tipo     query  string  false  "entrada | saida | transferencia"
// @Param        limit    query  int     false  "Máximo (defecto 20, tope 100)"
// @Param        offset   query  int     false  "Desplazamiento"
// @Success      200  {object}  map[string]interface{}
// @Router       /api/inventory/movements [get]
func (h *InventoryHandler) ListMovements(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return invalidQuery(c)
	}
	page.DefaultPage()
	movs, err := h.ledger.ListMovements(c.UserContext(), repository.MovementFilter{
		ItemID: c.Query("item_id"),
		Kind:   c.Query("tipo"),
		Limit:  page.Limit,
		Offset: page.Offset,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{
		"items": dto.MovementsFromEntities(movs),
		"page":  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	})
}

// ListTransfers godoc
// @Summary      Historial de transferencias
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Máximo (defecto 20, tope 100)"
// @Param        offset  query  int  false  "Desplazamiento"
// @Success      200  {object}  map[string]interface{}
// @Router       /api/inventory/transfers [get]
func (h *InventoryHandler) ListTransfers(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return invalidQuery(c)
	}
	page.DefaultPage()
	list, err := h.ledger.ListTransfers(c.UserContext(), page.Limit, page.Offset)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{
		"items": dto.TransfersFromEntities(list),
		"page":  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	})
}

// GetStats godoc
// @Summary      Indicadores del depósito
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        low     query  int  false  "Ítems con stock bajo (defecto 5)"
// @Param        recent  query  int  false  "Movimientos recientes (defecto 5)"
// @Success      200  {object}  dto.InventoryStatsDTO
// @Router       /api/inventory/stats [get]
func (h *InventoryHandler) GetStats(c *fiber.Ctx) error {
	ctx := c.UserContext()
	value, err := h.ledger.GetTotalStockValue(ctx)
	if err != nil {
		return writeError(c, err)
	}
	types, err := h.ledger.GetTotalItemTypes(ctx)
	if err != nil {
		return writeError(c, err)
	}
	low, err := h.ledger.GetLowStockItems(ctx, c.QueryInt("low", 5))
	if err != nil {
		return writeError(c, err)
	}
	recent, err := h.ledger.GetRecentMovements(ctx, c.QueryInt("recent", 5))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.InventoryStatsDTO{
		TotalValue:      value.Round(2),
		TotalItemTypes:  types,
		RecentMovements: dto.MovementsFromEntities(recent),
		LowStock:        dto.ItemsFromEntities(low),
	})
}

func timeOrZero(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}
