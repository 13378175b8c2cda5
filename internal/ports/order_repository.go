package ports

import (
	"context"

	"github.com/Gunvolt24/food_orders/internal/domain"
	"github.com/google/uuid"
)

// OrderLookup - доступ к заказу только на чтение (нужен конвейеру валидации).
// (nil, nil), если заказа нет.
type OrderLookup interface {
	FindOrder(ctx context.Context, id uuid.UUID) (*domain.Order, error)
}

// OrderRepository - хранилище заказов.
type OrderRepository interface {
	OrderLookup

	// Create - сохранить новый заказ вместе со строками блюд.
	Create(ctx context.Context, order *domain.Order) error

	// Update - сохранить изменения, если в хранилище та же версия, что в order.Version.
	// При успехе order.Version увеличивается; иначе domain.ErrVersionConflict.
	Update(ctx context.Context, order *domain.Order) error

	// Delete - удалить заказ; false, если удалять было нечего.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)

	List(ctx context.Context, filter domain.OrderFilter) ([]*domain.Order, error)

	// LastN - последние n заказов по времени изменения (для прогрева кэша).
	LastN(ctx context.Context, n int) ([]*domain.Order, error)
}
