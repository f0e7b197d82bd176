package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrConflict          = errors.New("conflicto con el estado actual")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrInsufficientStock = errors.New("estoque insuficiente para esta operação")
	ErrUnknownItem       = errors.New("item de inventario no encontrado")
	ErrUnknownChurch     = errors.New("igreja no encontrada")
	ErrUnknownMember     = errors.New("miembro no encontrado")
	ErrInvalidTransition = errors.New("transición de estado no permitida")
)

// IsUnknown agrupa los errores de referencia inexistente (se responden como 404).
func IsUnknown(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrUnknownItem) ||
		errors.Is(err, ErrUnknownChurch) ||
		errors.Is(err, ErrUnknownMember)
}
