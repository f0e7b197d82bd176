package ports

import (
	"context"

	"github.com/ipda-secretaria/secretaria-api/internal/application/dto"
)

// CEPLookup puerto de salida para consultar códigos postales.
// Devuelve domain.ErrInvalidInput si el CEP no tiene 8 dígitos y domain.ErrNotFound si no existe.
type CEPLookup interface {
	Lookup(ctx context.Context, cep string) (*dto.CEPAddressDTO, error)
}
