package reveal_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ipda-secretaria/secretaria-api/internal/domain/reveal"
)

func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func wait(t *testing.T, ch <-chan struct{}) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(2 * time.Second):
		t.Fatal("LoadMore no terminó")
	}
}

func TestReveal_PaginasSobre45Elementos(t *testing.T) {
	r := reveal.New(seq(45), 20, reveal.WithDelay(0))

	assert.Len(t, r.Visible(), 20)
	assert.True(t, r.HasMore())

	wait(t, r.LoadMore())
	assert.Len(t, r.Visible(), 40)
	assert.True(t, r.HasMore())

	wait(t, r.LoadMore())
	assert.Len(t, r.Visible(), 45)
	assert.False(t, r.HasMore())
	assert.Equal(t, 3, r.Page())

	wait(t, r.LoadMore())
	assert.Len(t, r.Visible(), 45)
	assert.Equal(t, 3, r.Page(), "sin más elementos LoadMore no avanza")
}

func TestReveal_VisibleEsPrefijo(t *testing.T) {
	src := seq(30)
	r := reveal.New(src, 15, reveal.WithDelay(0))
	wait(t, r.LoadMore())

	assert.Equal(t, src, r.Visible())

	vis := reveal.New(src, 15).Visible()
	_ = append(vis, 999)
	assert.Equal(t, 15, src[15], "append sobre el prefijo no pisa la fuente")
}

func TestReveal_IgnoraMientrasCarga(t *testing.T) {
	r := reveal.New(seq(100), 10, reveal.WithDelay(50*time.Millisecond))

	first := r.LoadMore()
	assert.True(t, r.Busy())

	second := r.LoadMore()
	wait(t, second)
	assert.Equal(t, 1, r.Page(), "la segunda llamada es no-op mientras busy")

	wait(t, first)
	assert.False(t, r.Busy())
	assert.Equal(t, 2, r.Page())
}

func TestReveal_SetSourceReiniciaSiCambiaLongitud(t *testing.T) {
	r := reveal.New(seq(45), 20, reveal.WithDelay(0))
	wait(t, r.LoadMore())
	require.Len(t, r.Visible(), 40)

	r.SetSource(seq(12))
	assert.Equal(t, 1, r.Page())
	assert.Len(t, r.Visible(), 12)
	assert.False(t, r.HasMore())

	r.SetSource(seq(50))
	assert.Len(t, r.Visible(), 20)
}

func TestReveal_SetSourceMismaLongitudConservaPagina(t *testing.T) {
	r := reveal.New(seq(45), 20, reveal.WithDelay(0))
	wait(t, r.LoadMore())

	r.SetSource(seq(45))
	assert.Equal(t, 2, r.Page())
}

func TestReveal_ResetDescartaCargaPendiente(t *testing.T) {
	r := reveal.New(seq(100), 10, reveal.WithDelay(30*time.Millisecond))
	pending := r.LoadMore()

	r.Reset()
	assert.False(t, r.Busy())

	wait(t, pending)
	assert.Equal(t, 1, r.Page())
}

func TestWindow(t *testing.T) {
	src := seq(45)

	vis, more := reveal.Window(src, 1, 20)
	assert.Len(t, vis, 20)
	assert.True(t, more)

	vis, more = reveal.Window(src, 3, 20)
	assert.Len(t, vis, 45)
	assert.False(t, more)

	vis, _ = reveal.Window(src, 0, 20)
	assert.Len(t, vis, 20)

	vis, more = reveal.Window(src, 1<<40, 20)
	assert.Len(t, vis, 45)
	assert.False(t, more)

	vis, more = reveal.Window([]int{}, 1, 20)
	assert.Empty(t, vis)
	assert.False(t, more)
}
