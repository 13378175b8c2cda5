package ports

import (
	"context"

	"github.com/Gunvolt24/food_orders/internal/domain"
	"github.com/google/uuid"
)

// DishLookup - доступ к блюду только на чтение. (nil, nil), если блюда нет.
type DishLookup interface {
	FindDish(ctx context.Context, id uuid.UUID) (*domain.Dish, error)
}

// DishRepository - каталог блюд вендоров.
type DishRepository interface {
	DishLookup

	Create(ctx context.Context, dish *domain.Dish) error
	// Update - false, если блюда нет.
	Update(ctx context.Context, dish *domain.Dish) (bool, error)
	// Delete - false, если блюда нет.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	ListByVendor(ctx context.Context, vendorID uuid.UUID) ([]*domain.Dish, error)
}
