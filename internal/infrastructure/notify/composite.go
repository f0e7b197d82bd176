package notify

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ipda-secretaria/secretaria-api/internal/application/ports"
	"github.com/ipda-secretaria/secretaria-api/internal/domain/repository"
	"github.com/ipda-secretaria/secretaria-api/pkg/config"
)

// Nop descarta los eventos.
type Nop struct{}

func (Nop) Notify(context.Context, ports.Event) error { return nil }

// Multi reparte el evento a todos los destinos; un fallo no impide los demás.
type Multi []ports.Notifier

// Notify devuelve la unión de los errores de cada destino.
func (m Multi) Notify(ctx context.Context, e ports.Event) error {
	var errs []error
	for _, n := range m {
		if err := n.Notify(ctx, e); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// FromConfig arma el notifier según NOTIFY_SINKS. El io.Closer libera los recursos de los
// destinos (writer de Kafka) y siempre es no nil.
func FromConfig(cfg config.NotifyConfig, auditRepo repository.AuditLogRepository) (ports.Notifier, io.Closer, error) {
	meta := Meta{Source: cfg.Source, Version: cfg.Version}
	var (
		sinks   Multi
		closers closerList
	)
	for _, name := range cfg.Sinks {
		switch name = strings.ToLower(strings.TrimSpace(name)); name {
		case "webhook":
			w, err := NewWebhookSender(WebhookConfig{URL: cfg.WebhookURL, Timeout: cfg.WebhookTimeout, Meta: meta})
			if err != nil {
				return nil, closers, err
			}
			sinks = append(sinks, Instrument(name, w))
		case "kafka":
			k, err := NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic, meta)
			if err != nil {
				return nil, closers, err
			}
			closers = append(closers, k)
			sinks = append(sinks, Instrument(name, k))
		case "audit":
			if auditRepo == nil {
				return nil, closers, fmt.Errorf("sink audit requiere repositorio de auditoría")
			}
			sinks = append(sinks, Instrument(name, NewAuditLogger(auditRepo)))
		case "none", "":
		default:
			return nil, closers, fmt.Errorf("sink de notificación desconocido: %q", name)
		}
	}
	switch len(sinks) {
	case 0:
		return Nop{}, closers, nil
	case 1:
		return sinks[0], closers, nil
	}
	return sinks, closers, nil
}

type closerList []io.Closer

func (c closerList) Close() error {
	var errs []error
	for _, cl := range c {
		if err := cl.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
