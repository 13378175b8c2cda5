package ports

import (
	"context"

	"github.com/Gunvolt24/food_orders/internal/domain"
	"github.com/google/uuid"
)

// OrderService - операции над заказами, доступные транспорту.
// Каждый метод прогоняет запрос через свой конвейер валидации до любых изменений.
type OrderService interface {
	CreateOrder(ctx context.Context, actor domain.Actor, req *domain.CreateOrderRequest) (*domain.Order, error)
	GetOrder(ctx context.Context, actor domain.Actor, orderID uuid.UUID) (*domain.Order, error)
	ListOrders(ctx context.Context, actor domain.Actor, limit, offset int) ([]*domain.Order, error)
	DeleteOrder(ctx context.Context, actor domain.Actor, orderID uuid.UUID) error

	AddDish(ctx context.Context, actor domain.Actor, orderID, dishID uuid.UUID, req *domain.DishQuantityRequest) (*domain.Order, error)
	SetDishQuantity(ctx context.Context, actor domain.Actor, orderID, dishID uuid.UUID, req *domain.DishQuantityRequest) (*domain.Order, error)
	RemoveDish(ctx context.Context, actor domain.Actor, orderID, dishID uuid.UUID) (*domain.Order, error)
	UpdateStatus(ctx context.Context, actor domain.Actor, orderID uuid.UUID, req *domain.UpdateStatusRequest) (*domain.Order, error)
}

// DishService - каталог блюд.
type DishService interface {
	CreateDish(ctx context.Context, actor domain.Actor, req *domain.DishRequest) (*domain.Dish, error)
	GetDish(ctx context.Context, actor domain.Actor, dishID uuid.UUID) (*domain.Dish, error)
	ListVendorDishes(ctx context.Context, actor domain.Actor, vendorID uuid.UUID) ([]*domain.Dish, error)
	UpdateDish(ctx context.Context, actor domain.Actor, dishID uuid.UUID, req *domain.DishRequest) (*domain.Dish, error)
	DeleteDish(ctx context.Context, actor domain.Actor, dishID uuid.UUID) error
}
