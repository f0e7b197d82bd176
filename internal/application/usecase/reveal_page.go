package usecase

import (
	"github.com/ipda-secretaria/secretaria-api/internal/application/dto"
	"github.com/ipda-secretaria/secretaria-api/internal/domain/reveal"
)

// DefaultPageSize tamaño de página de los listados con revelado incremental.
const DefaultPageSize = 20

// window aplica el revelado incremental a una lista ya filtrada.
func window[T any](source []T, page, pageSize int) ([]T, dto.RevealPage) {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if page < 1 {
		page = 1
	}
	visible, hasMore := reveal.Window(source, page, pageSize)
	return visible, dto.RevealPage{
		Page:     page,
		PageSize: pageSize,
		Visible:  len(visible),
		Total:    len(source),
		HasMore:  hasMore,
	}
}
