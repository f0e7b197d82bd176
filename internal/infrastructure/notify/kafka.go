package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/ipda-secretaria/secretaria-api/internal/application/ports"
)

const kafkaPublishTimeout = 5 * time.Second

// messageWriter lo cumple *kafka.Writer.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher publica el envelope en un topic; la clave es el tipo de registro para que
// los cambios de un mismo tipo conserven el orden dentro de la partición.
type KafkaPublisher struct {
	writer messageWriter
	meta   Meta
	now    func() time.Time
}

// NewKafkaPublisher crea el writer hacia los brokers indicados.
func NewKafkaPublisher(brokers []string, topic string, meta Meta) (*KafkaPublisher, error) {
	if len(brokers) == 0 || topic == "" {
		return nil, fmt.Errorf("kafka: brokers y topic son obligatorios")
	}
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		BatchSize:    50,
		BatchTimeout: 10 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
		Compression:  kafka.Snappy,
	}
	return newKafkaPublisher(writer, meta), nil
}

func newKafkaPublisher(w messageWriter, meta Meta) *KafkaPublisher {
	return &KafkaPublisher{writer: w, meta: meta, now: time.Now}
}

// Notify publica el evento.
func (p *KafkaPublisher) Notify(ctx context.Context, e ports.Event) error {
	now := p.now()
	payload, err := json.Marshal(NewEnvelope(e, p.meta, now))
	if err != nil {
		return fmt.Errorf("kafka: serializar evento: %w", err)
	}
	msg := kafka.Message{
		Key:   []byte(e.Type),
		Value: payload,
		Time:  now,
		Headers: []kafka.Header{
			{Key: "event-action", Value: []byte(e.Action)},
			{Key: "event-type", Value: []byte(e.Type)},
		},
	}

	ctx, cancel := context.WithTimeout(ctx, kafkaPublishTimeout)
	defer cancel()
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("kafka: publicar %s/%s: %w", e.Type, e.Action, err)
	}
	return nil
}

// Close cierra el writer.
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
