package validate

import (
	"context"

	"github.com/Gunvolt24/food_orders/internal/domain"
	"github.com/Gunvolt24/food_orders/internal/ports"
	"github.com/google/uuid"
)

// Context - данные одного запроса, которые проходят через конвейер.
// Создаётся на запрос и после него выбрасывается; между горутинами не разделяется.
// uuid.Nil в OrderID/DishID означает "не относится к операции".
type Context struct {
	ActorID uuid.UUID
	Role    domain.Role
	OrderID uuid.UUID
	DishID  uuid.UUID

	DishQuantity *domain.DishQuantityRequest
	CreateOrder  *domain.CreateOrderRequest
	UpdateStatus *domain.UpdateStatusRequest
	DishRequest  *domain.DishRequest

	// загруженные в рамках этого запроса ресурсы
	order *domain.Order
	dish  *domain.Dish
}

// NewContext - контекст для действующего пользователя.
func NewContext(actor domain.Actor) *Context {
	return &Context{ActorID: actor.ID, Role: actor.Role}
}

// LoadedOrder - заказ, прочитанный шагами конвейера (nil, если не читался).
func (c *Context) LoadedOrder() *domain.Order { return c.order }

// LoadedDish - блюдо, прочитанное шагами конвейера (nil, если не читалось).
func (c *Context) LoadedDish() *domain.Dish { return c.dish }

// loadOrder - читает заказ OrderID не более одного раза за запрос.
// (nil, nil), если заказа нет.
func (c *Context) loadOrder(ctx context.Context, orders ports.OrderLookup) (*domain.Order, error) {
	if c.order != nil && c.order.ID == c.OrderID {
		return c.order, nil
	}
	o, err := orders.FindOrder(ctx, c.OrderID)
	if err != nil {
		return nil, err
	}
	c.order = o
	return o, nil
}

// loadDish - читает блюдо DishID не более одного раза за запрос.
func (c *Context) loadDish(ctx context.Context, dishes ports.DishLookup) (*domain.Dish, error) {
	if c.dish != nil && c.dish.ID == c.DishID {
		return c.dish, nil
	}
	d, err := dishes.FindDish(ctx, c.DishID)
	if err != nil {
		return nil, err
	}
	c.dish = d
	return d, nil
}
