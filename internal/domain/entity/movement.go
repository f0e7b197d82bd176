package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimentação (valores persistidos).
const (
	MovementEntry    = "entrada"
	MovementExit     = "saida"
	MovementTransfer = "transferencia"
)

// Movement registro append-only de un cambio de stock. El tipo no cambia después de escrito.
// ItemName y UnitPrice son copias tomadas en el momento de la escritura.
type Movement struct {
	ID                    string
	ItemID                string
	ItemName              string
	Kind                  string
	Quantity              int // siempre > 0; el tipo define el sentido
	Date                  time.Time
	Origin                string // entradas
	Destination           string // salidas
	OriginChurchID        string // transferencias
	DestinationChurchID   string
	OriginChurchName      string
	DestinationChurchName string
	TransferID            string // transferencias: id del Transfer correlacionado
	Responsible           string
	Notes                 string
	UnitPrice             decimal.Decimal
	TotalValue            decimal.Decimal
	RecordedBy            string
	CreatedAt             time.Time
}

// StockDelta efecto con signo del movimiento sobre el stock del ítem.
func (m *Movement) StockDelta() int {
	if m.Kind == MovementEntry {
		return m.Quantity
	}
	return -m.Quantity
}
