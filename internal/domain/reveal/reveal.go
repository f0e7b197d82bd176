// Package reveal expone un prefijo creciente de una lista (scroll infinito) sin volver a
// consultar ni reordenar la fuente.
//
// Los listados HTTP usan Window: el cliente manda ?page= y el servidor no guarda estado entre
// requests. Reveal es la versión con estado (página actual, carga en curso, pausa) para un
// consumidor de larga vida que avanza página a página sobre la misma fuente.
package reveal

import (
	"sync"
	"time"
)

// DefaultDelay pausa constante antes de avanzar de página. Es un ritmo de UX, no una espera de red.
const DefaultDelay = 300 * time.Millisecond

// Option configura un Reveal.
type Option func(*options)

type options struct {
	delay time.Duration
}

// WithDelay cambia la pausa de LoadMore (0 = avanzar en cuanto corre el timer).
func WithDelay(d time.Duration) Option {
	return func(o *options) {
		if d >= 0 {
			o.delay = d
		}
	}
}

// Reveal mantiene la página actual sobre una fuente. Visible es siempre source[0:min(page*size, len)].
// Del lado del servidor se usa Window.
type Reveal[T any] struct {
	mu       sync.Mutex
	source   []T
	pageSize int
	page     int
	busy     bool
	gen      uint64 // invalida cargas pendientes tras Reset
	delay    time.Duration
}

// New crea un Reveal en la página 1. pageSize < 1 se trata como 1.
func New[T any](source []T, pageSize int, opts ...Option) *Reveal[T] {
	o := options{delay: DefaultDelay}
	for _, fn := range opts {
		fn(&o)
	}
	if pageSize < 1 {
		pageSize = 1
	}
	return &Reveal[T]{source: source, pageSize: pageSize, page: 1, delay: o.delay}
}

// Visible devuelve el prefijo visible. La capacidad se limita para que un append del
// consumidor no pise la fuente.
func (r *Reveal[T]) Visible() []T {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := r.visibleLen()
	return r.source[:n:n]
}

// HasMore indica si quedan elementos por mostrar.
func (r *Reveal[T]) HasMore() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.visibleLen() < len(r.source)
}

// Busy indica si hay una carga en curso.
func (r *Reveal[T]) Busy() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.busy
}

// Page página actual (empieza en 1).
func (r *Reveal[T]) Page() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.page
}

// LoadMore avanza una página tras la pausa configurada. No hace nada si no quedan elementos
// o si ya hay una carga en curso. El canal devuelto se cierra cuando la llamada termina su efecto.
func (r *Reveal[T]) LoadMore() <-chan struct{} {
	done := make(chan struct{})

	r.mu.Lock()
	if r.busy || r.visibleLen() >= len(r.source) {
		r.mu.Unlock()
		close(done)
		return done
	}
	r.busy = true
	gen := r.gen
	r.mu.Unlock()

	time.AfterFunc(r.delay, func() {
		defer close(done)
		r.mu.Lock()
		defer r.mu.Unlock()
		if r.gen != gen {
			return
		}
		r.page++
		r.busy = false
	})
	return done
}

// Reset vuelve a la página 1 y limpia el estado de carga.
func (r *Reveal[T]) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reset()
}

// SetSource reemplaza la fuente; si cambia la longitud (nueva búsqueda) vuelve a la página 1.
func (r *Reveal[T]) SetSource(source []T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	changed := len(source) != len(r.source)
	r.source = source
	if changed {
		r.reset()
	}
}

func (r *Reveal[T]) reset() {
	r.page = 1
	r.busy = false
	r.gen++
}

func (r *Reveal[T]) visibleLen() int {
	n := r.page * r.pageSize
	if n > len(r.source) {
		return len(r.source)
	}
	return n
}

// Window calcula sin estado el prefijo visible para una página dada (listados HTTP con ?page=).
// page < 1 se trata como 1.
func Window[T any](source []T, page, pageSize int) (visible []T, hasMore bool) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 1
	}
	n := len(source)
	if page <= n/pageSize+1 && page*pageSize < n {
		n = page * pageSize
	}
	return source[:n:n], n < len(source)
}
