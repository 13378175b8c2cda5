package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/Gunvolt24/food_orders/internal/domain"
	"github.com/Gunvolt24/food_orders/internal/ports"
	"github.com/Gunvolt24/food_orders/pkg/ctxmeta"
	"github.com/Gunvolt24/food_orders/pkg/metrics"
	"github.com/segmentio/kafka-go"
)

const (
	headerRequestID = "X-Request-ID"
	headerEventType = "event-type"
)

var _ ports.EventPublisher = (*Publisher)(nil)

// writer - минимальный контракт над kafka.Writer.
type writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Publisher - отправка событий о заказах в топик сервиса доставки.
type Publisher struct {
	writer    writer
	topic     string
	log       ports.Logger
	closeOnce sync.Once
}

func NewPublisher(cfg *PublisherConfig, log ports.Logger) *Publisher {
	return &Publisher{writer: cfg.Writer(), topic: cfg.Topic, log: log}
}

// Publish - событие в JSON; ключ - id заказа.
func (p *Publisher) Publish(ctx context.Context, event domain.OrderEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal %s event: %w", event.Type, err)
	}

	msg := kafka.Message{
		Key:   []byte(event.OrderID.String()),
		Value: payload,
		Time:  event.OccurredAt,
		Headers: []kafka.Header{
			{Key: headerEventType, Value: []byte(event.Type)},
		},
	}
	if rid, ok := ctxmeta.RequestIDFromContext(ctx); ok {
		msg.Headers = append(msg.Headers, kafka.Header{Key: headerRequestID, Value: []byte(rid)})
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		metrics.OrderEventsFailed.WithLabelValues(string(event.Type)).Inc()
		return fmt.Errorf("publish %s event order_id=%s: %w", event.Type, event.OrderID, err)
	}

	metrics.OrderEventsPublished.WithLabelValues(string(event.Type)).Inc()
	p.log.Infof(ctx, "order event published type=%s order_id=%s topic=%s", event.Type, event.OrderID, p.topic)
	return nil
}

func (p *Publisher) Close() (retErr error) {
	p.closeOnce.Do(func() {
		retErr = p.writer.Close()
	})
	return retErr
}
