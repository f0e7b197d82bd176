// Package cache contiene decoradores de repositorio que guardan en memoria el resultado de List
// y lo descartan en cada escritura.
package cache

import (
	"context"
	"sync"
)

// Snapshot copia en memoria de una lista completa. Get carga una vez y devuelve la copia hasta
// el siguiente Invalidate. Una carga que empezó antes de un Invalidate no se guarda.
type Snapshot[T any] struct {
	mu    sync.Mutex
	data  []T
	valid bool
	gen   uint64
	loads int
}

// Get devuelve la copia vigente o la carga con load.
func (s *Snapshot[T]) Get(ctx context.Context, load func(context.Context) ([]T, error)) ([]T, error) {
	s.mu.Lock()
	if s.valid {
		out := s.data[:len(s.data):len(s.data)]
		s.mu.Unlock()
		return out, nil
	}
	gen := s.gen
	s.mu.Unlock()

	data, err := load(ctx)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loads++
	if s.gen == gen {
		s.data = data
		s.valid = true
	}
	return data[:len(data):len(data)], nil
}

// Invalidate descarta la copia; la próxima lectura vuelve a la base.
func (s *Snapshot[T]) Invalidate() {
	s.mu.Lock()
	s.valid = false
	s.data = nil
	s.gen++
	s.mu.Unlock()
}

// Loads cantidad de cargas realizadas (útil en tests y logs de depuración).
func (s *Snapshot[T]) Loads() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loads
}
