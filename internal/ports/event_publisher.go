package ports

import (
	"context"

	"github.com/Gunvolt24/food_orders/internal/domain"
)

// EventPublisher - отправка событий о заказах сервису доставки.
type EventPublisher interface {
	Publish(ctx context.Context, event domain.OrderEvent) error
	Close() error
}
