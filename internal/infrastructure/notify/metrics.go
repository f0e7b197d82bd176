package notify

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/ipda-secretaria/secretaria-api/internal/application/ports"
)

var (
	sendTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "secretaria_notify_send_total",
			Help: "Notificaciones enviadas por destino y resultado.",
		},
		[]string{"sink", "status"},
	)
	sendDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "secretaria_notify_send_duration_seconds",
			Help:    "Duración del envío de notificaciones por destino.",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"sink"},
	)
)

// instrumented cuenta éxitos y fallos de un destino.
type instrumented struct {
	name  string
	inner ports.Notifier
}

// Instrument envuelve un destino con los contadores Prometheus.
func Instrument(name string, n ports.Notifier) ports.Notifier {
	return &instrumented{name: name, inner: n}
}

func (i *instrumented) Notify(ctx context.Context, e ports.Event) error {
	start := time.Now()
	err := i.inner.Notify(ctx, e)
	sendDuration.WithLabelValues(i.name).Observe(time.Since(start).Seconds())
	status := "sent"
	if err != nil {
		status = "failed"
	}
	sendTotal.WithLabelValues(i.name, status).Inc()
	return err
}
