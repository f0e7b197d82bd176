package notify

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/ipda-secretaria/secretaria-api/internal/application/ports"
)

const (
	defaultWebhookTimeout = 10 * time.Second
	userAgent             = "secretaria-ipda/2"
)

// WebhookSender POST del envelope a una URL (n8n u otro automatizador). Sin reintentos.
type WebhookSender struct {
	client *resty.Client
	url    string
	meta   Meta
	now    func() time.Time
}

// WebhookConfig configuración del destino webhook.
type WebhookConfig struct {
	URL     string
	Timeout time.Duration
	Meta    Meta
}

// NewWebhookSender valida la URL y construye el cliente HTTP.
func NewWebhookSender(cfg WebhookConfig) (*WebhookSender, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("webhook URL es obligatoria")
	}
	u, err := url.Parse(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("webhook URL inválida: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("webhook URL debe usar http o https, recibido %q", u.Scheme)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("webhook URL sin host")
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultWebhookTimeout
	}
	client := resty.New().
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("User-Agent", userAgent)
	return &WebhookSender{client: client, url: cfg.URL, meta: cfg.Meta, now: time.Now}, nil
}

// Notify envía el evento. Una respuesta fuera de 2xx es un error.
func (w *WebhookSender) Notify(ctx context.Context, e ports.Event) error {
	resp, err := w.client.R().
		SetContext(ctx).
		SetBody(NewEnvelope(e, w.meta, w.now())).
		Post(w.url)
	if err != nil {
		return fmt.Errorf("webhook %s/%s: %w", e.Type, e.Action, err)
	}
	if !resp.IsSuccess() {
		return fmt.Errorf("webhook %s/%s: status %d", e.Type, e.Action, resp.StatusCode())
	}
	return nil
}
