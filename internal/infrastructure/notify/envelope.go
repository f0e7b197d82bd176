// Package notify implementa los destinos de notificación de cambios (webhook, Kafka, auditoría).
// Todos son best-effort: quien los usa registra el error y sigue.
package notify

import (
	"time"

	"github.com/ipda-secretaria/secretaria-api/internal/application/ports"
)

// Valores por defecto del envelope.
const (
	DefaultSource  = "secretaria-igreja-sistema"
	DefaultVersion = "2.0"
)

// Envelope cuerpo JSON enviado a los consumidores externos.
type Envelope struct {
	Action    string `json:"action"`
	Type      string `json:"type"`
	Data      any    `json:"data"`
	Timestamp string `json:"timestamp"`
	Source    string `json:"source"`
	Version   string `json:"version"`
}

// Meta identifica al emisor en cada envelope.
type Meta struct {
	Source  string
	Version string
}

func (m Meta) withDefaults() Meta {
	if m.Source == "" {
		m.Source = DefaultSource
	}
	if m.Version == "" {
		m.Version = DefaultVersion
	}
	return m
}

// NewEnvelope arma el envelope de un evento con timestamp RFC3339 en UTC.
func NewEnvelope(e ports.Event, meta Meta, now time.Time) Envelope {
	meta = meta.withDefaults()
	return Envelope{
		Action:    e.Action,
		Type:      e.Type,
		Data:      e.Data,
		Timestamp: now.UTC().Format(time.RFC3339Nano),
		Source:    meta.Source,
		Version:   meta.Version,
	}
}
