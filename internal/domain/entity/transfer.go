package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una transferencia entre igrejas.
const (
	TransferPending   = "pendente"
	TransferSent      = "enviado"
	TransferReceived  = "recebido"
	TransferCancelled = "cancelado"
)

// Transfer registro de mercadería enviada de una igreja a otra.
// Siempre se escribe junto con un Movement de tipo transferencia.
type Transfer struct {
	ID                    string
	ItemID                string
	ItemName              string
	Quantity              int
	OriginChurchID        string
	OriginChurchName      string
	DestinationChurchID   string
	DestinationChurchName string
	Date                  time.Time
	Responsible           string
	Notes                 string
	Status                string
	UnitPrice             decimal.Decimal
	TotalValue            decimal.Decimal
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// IsValidTransferStatus indica si el estado es uno de los cuatro admitidos.
func IsValidTransferStatus(s string) bool {
	switch s {
	case TransferPending, TransferSent, TransferReceived, TransferCancelled:
		return true
	}
	return false
}

// CanTransition valida el cambio manual de estado: recebido y cancelado son finales.
func (t *Transfer) CanTransition(to string) bool {
	if !IsValidTransferStatus(to) || t.Status == to {
		return false
	}
	switch t.Status {
	case TransferReceived, TransferCancelled:
		return false
	case TransferSent:
		return to != TransferPending
	}
	return true
}
