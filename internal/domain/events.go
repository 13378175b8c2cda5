package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderEventType - тип события о заказе для внешних потребителей (сервис доставки).
type OrderEventType string

const (
	OrderCreated       OrderEventType = "order_created"
	OrderDishesChanged OrderEventType = "order_dishes_changed"
	OrderStatusChanged OrderEventType = "order_status_changed"
	OrderDeleted       OrderEventType = "order_deleted"
)

// OrderEvent - снимок заказа на момент события.
type OrderEvent struct {
	Type       OrderEventType  `json:"type"`
	OrderID    uuid.UUID       `json:"order_id"`
	CustomerID uuid.UUID       `json:"customer_id"`
	VendorID   uuid.UUID       `json:"vendor_id"`
	Status     Status          `json:"status"`
	TotalPrice decimal.Decimal `json:"total_price"`
	OccurredAt time.Time       `json:"occurred_at"`
}

// NewOrderEvent - событие typ по текущему состоянию заказа.
func NewOrderEvent(typ OrderEventType, o *Order, at time.Time) OrderEvent {
	return OrderEvent{
		Type:       typ,
		OrderID:    o.ID,
		CustomerID: o.CustomerID,
		VendorID:   o.VendorID,
		Status:     o.Status,
		TotalPrice: o.TotalPrice,
		OccurredAt: at.UTC(),
	}
}
