package dto

import (
	"time"

	"github.com/ipda-secretaria/secretaria-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// CreateItemRequest body para POST /api/inventory/items.
type CreateItemRequest struct {
	Name         string          `json:"nome"`
	Category     string          `json:"categoria"`
	Code         string          `json:"codigo"`
	Description  string          `json:"descricao"`
	Unit         string          `json:"unidade_medida"`
	UnitPrice    decimal.Decimal `json:"valor_unitario"`
	Stock        int             `json:"quantidade_estoque"`
	MinimumStock int             `json:"estoque_minimo"`
}

// UpdateItemRequest body para PUT /api/inventory/items/:id. Campos nil no se modifican.
// El stock no se edita aquí: solo a través de entradas, salidas y transferencias.
type UpdateItemRequest struct {
	Name         *string          `json:"nome"`
	Category     *string          `json:"categoria"`
	Code         *string          `json:"codigo"`
	Description  *string          `json:"descricao"`
	Unit         *string          `json:"unidade_medida"`
	UnitPrice    *decimal.Decimal `json:"valor_unitario"`
	MinimumStock *int             `json:"estoque_minimo"`
}

// ItemResponse salida de un ítem del depósito.
type ItemResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"nome"`
	Category     string          `json:"categoria"`
	Code         string          `json:"codigo"`
	Description  string          `json:"descricao"`
	Unit         string          `json:"unidade_medida"`
	UnitPrice    decimal.Decimal `json:"valor_unitario"`
	Stock        int             `json:"quantidade_estoque"`
	MinimumStock int             `json:"estoque_minimo"`
	StockValue   decimal.Decimal `json:"valor_estoque"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// ItemListResponse prefijo visible de la lista de ítems.
type ItemListResponse struct {
	Items []ItemResponse `json:"items"`
	Page  RevealPage     `json:"page"`
}

// EntryRequest body para POST /api/inventory/entries.
type EntryRequest struct {
	ItemID      string     `json:"item_id"`
	Quantity    int        `json:"quantidade"`
	Origin      string     `json:"origem"`
	Responsible string     `json:"responsavel"`
	Notes       string     `json:"observacoes"`
	Date        *time.Time `json:"data,omitempty"`
}

// ExitRequest body para POST /api/inventory/exits.
type ExitRequest struct {
	ItemID      string     `json:"item_id"`
	Quantity    int        `json:"quantidade"`
	Destination string     `json:"destino"`
	Responsible string     `json:"responsavel"`
	Notes       string     `json:"observacoes"`
	Date        *time.Time `json:"data,omitempty"`
}

// TransferRequest body para POST /api/inventory/transfers.
type TransferRequest struct {
	ItemID              string     `json:"item_id"`
	Quantity            int        `json:"quantidade"`
	OriginChurchID      string     `json:"igreja_origem_id"`
	DestinationChurchID string     `json:"igreja_destino_id"`
	Responsible         string     `json:"responsavel"`
	Notes               string     `json:"observacoes"`
	Date                *time.Time `json:"data,omitempty"`
}

// TransferStatusRequest body para PATCH /api/inventory/transfers/:id/status.
type TransferStatusRequest struct {
	Status string `json:"status"`
}

// StockAdjustRequest body para PATCH /api/inventory/items/:id/stock.
type StockAdjustRequest struct {
	Delta int `json:"delta"`
}

// MovementResponse salida de un movimiento.
type MovementResponse struct {
	ID                    string          `json:"id"`
	ItemID                string          `json:"item_id"`
	ItemName              string          `json:"item_nome"`
	Kind                  string          `json:"tipo"`
	Quantity              int             `json:"quantidade"`
	Date                  time.Time       `json:"data_movimentacao"`
	Origin                string          `json:"origem,omitempty"`
	Destination           string          `json:"destino,omitempty"`
	OriginChurchID        string          `json:"igreja_origem_id,omitempty"`
	OriginChurchName      string          `json:"igreja_origem,omitempty"`
	DestinationChurchID   string          `json:"igreja_destino_id,omitempty"`
	DestinationChurchName string          `json:"igreja_destino,omitempty"`
	TransferID            string          `json:"transferencia_id,omitempty"`
	Responsible           string          `json:"responsavel"`
	Notes                 string          `json:"observacoes"`
	UnitPrice             decimal.Decimal `json:"valor_unitario"`
	TotalValue            decimal.Decimal `json:"valor_total"`
	RecordedBy            string          `json:"usuario_responsavel"`
	CreatedAt             time.Time       `json:"created_at"`
}

// TransferResponse salida de una transferencia.
type TransferResponse struct {
	ID                    string          `json:"id"`
	ItemID                string          `json:"item_id"`
	ItemName              string          `json:"item_nome"`
	Quantity              int             `json:"quantidade"`
	OriginChurchID        string          `json:"igreja_origem_id"`
	OriginChurchName      string          `json:"igreja_origem"`
	DestinationChurchID   string          `json:"igreja_destino_id"`
	DestinationChurchName string          `json:"igreja_destino"`
	Date                  time.Time       `json:"data_transferencia"`
	Responsible           string          `json:"responsavel"`
	Notes                 string          `json:"observacoes"`
	Status                string          `json:"status"`
	UnitPrice             decimal.Decimal `json:"valor_unitario"`
	TotalValue            decimal.Decimal `json:"valor_total"`
	CreatedAt             time.Time       `json:"created_at"`
	UpdatedAt             time.Time       `json:"updated_at"`
}

// ItemFromEntity convierte la entidad a su representación HTTP.
func ItemFromEntity(it *entity.InventoryItem) ItemResponse {
	return ItemResponse{
		ID:           it.ID,
		Name:         it.Name,
		Category:     it.Category,
		Code:         it.Code,
		Description:  it.Description,
		Unit:         it.Unit,
		UnitPrice:    it.UnitPrice,
		Stock:        it.Stock,
		MinimumStock: it.EffectiveMinimum(),
		StockValue:   it.StockValue(),
		CreatedAt:    it.CreatedAt,
		UpdatedAt:    it.UpdatedAt,
	}
}

// ItemsFromEntities convierte una lista de ítems.
func ItemsFromEntities(items []*entity.InventoryItem) []ItemResponse {
	out := make([]ItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, ItemFromEntity(it))
	}
	return out
}

// MovementFromEntity convierte un movimiento.
func MovementFromEntity(m *entity.Movement) MovementResponse {
	return MovementResponse{
		ID:                    m.ID,
		ItemID:                m.ItemID,
		ItemName:              m.ItemName,
		Kind:                  m.Kind,
		Quantity:              m.Quantity,
		Date:                  m.Date,
		Origin:                m.Origin,
		Destination:           m.Destination,
		OriginChurchID:        m.OriginChurchID,
		OriginChurchName:      m.OriginChurchName,
		DestinationChurchID:   m.DestinationChurchID,
		DestinationChurchName: m.DestinationChurchName,
		TransferID:            m.TransferID,
		Responsible:           m.Responsible,
		Notes:                 m.Notes,
		UnitPrice:             m.UnitPrice,
		TotalValue:            m.TotalValue,
		RecordedBy:            m.RecordedBy,
		CreatedAt:             m.CreatedAt,
	}
}

// MovementsFromEntities convierte una lista de movimientos.
func MovementsFromEntities(movs []*entity.Movement) []MovementResponse {
	out := make([]MovementResponse, 0, len(movs))
	for _, m := range movs {
		out = append(out, MovementFromEntity(m))
	}
	return out
}

// TransferFromEntity convierte una transferencia.
func TransferFromEntity(t *entity.Transfer) TransferResponse {
	return TransferResponse{
		ID:                    t.ID,
		ItemID:                t.ItemID,
		ItemName:              t.ItemName,
		Quantity:              t.Quantity,
		OriginChurchID:        t.OriginChurchID,
		OriginChurchName:      t.OriginChurchName,
		DestinationChurchID:   t.DestinationChurchID,
		DestinationChurchName: t.DestinationChurchName,
		Date:                  t.Date,
		Responsible:           t.Responsible,
		Notes:                 t.Notes,
		Status:                t.Status,
		UnitPrice:             t.UnitPrice,
		TotalValue:            t.TotalValue,
		CreatedAt:             t.CreatedAt,
		UpdatedAt:             t.UpdatedAt,
	}
}

// TransfersFromEntities convierte una lista de transferencias.
func TransfersFromEntities(ts []*entity.Transfer) []TransferResponse {
	out := make([]TransferResponse, 0, len(ts))
	for _, t := range ts {
		out = append(out, TransferFromEntity(t))
	}
	return out
}
