package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	// ErrVersionConflict - заказ был изменён параллельным запросом (оптимистическая блокировка).
	ErrVersionConflict = errors.New("order was modified concurrently")

	// ErrInvalidDeliveryEvent - событие от сервиса доставки невалидно и не может быть применено.
	ErrInvalidDeliveryEvent = errors.New("invalid delivery event")
)

// Address - адрес доставки заказа.
type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	Zip     string `json:"zip"`
	Country string `json:"country"`
	Notes   string `json:"notes,omitempty"`
}

// DishLine - одна единица блюда в заказе (количество N = N строк).
type DishLine struct {
	DishID    uuid.UUID       `json:"dish_id"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// Order - заказ клиента у одного вендора.
// TotalPrice - производное поле, всегда равно сумме UnitPrice по DishLines.
type Order struct {
	ID         uuid.UUID       `json:"id"`
	CustomerID uuid.UUID       `json:"customer_id"`
	VendorID   uuid.UUID       `json:"vendor_id"`
	DishLines  []DishLine      `json:"dish_lines"`
	TotalPrice decimal.Decimal `json:"total_price"`
	Status     Status          `json:"status"`
	Address    Address         `json:"address"`
	Version    int64           `json:"version"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// Clone - глубокая копия заказа (строки блюд копируются).
func (o *Order) Clone() *Order {
	if o == nil {
		return nil
	}
	c := *o
	if o.DishLines != nil {
		c.DishLines = append([]DishLine(nil), o.DishLines...)
	}
	return &c
}

// QuantityOf - сколько единиц блюда dishID сейчас в заказе.
func (o *Order) QuantityOf(dishID uuid.UUID) int {
	n := 0
	for _, line := range o.DishLines {
		if line.DishID == dishID {
			n++
		}
	}
	return n
}

// OrderFilter - параметры выборки списка заказов.
// Нулевые CustomerID/VendorID не ограничивают выборку.
type OrderFilter struct {
	CustomerID uuid.UUID
	VendorID   uuid.UUID
	Limit      int
	Offset     int
}

// CreateOrderRequest - тело запроса на создание заказа.
type CreateOrderRequest struct {
	VendorID uuid.UUID `json:"vendor_id"`
	Address  *Address  `json:"address"`
}

// DishQuantityRequest - тело запроса на добавление блюда или изменение его количества.
type DishQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// UpdateStatusRequest - тело запроса на смену статуса заказа.
type UpdateStatusRequest struct {
	Status Status `json:"status"`
}

// DeliveryStatusEvent - сообщение сервиса доставки об изменении статуса заказа.
type DeliveryStatusEvent struct {
	OrderID uuid.UUID `json:"order_id"`
	Status  Status    `json:"status"`
}
