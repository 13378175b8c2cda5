//go:build integration

package testutil

import (
	"fmt"
	"time"

	"github.com/Gunvolt24/food_orders/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MakeDish - блюдо вендора с ценой price.
func MakeDish(vendorID uuid.UUID, price string) domain.Dish {
	return domain.Dish{
		ID:          uuid.New(),
		VendorID:    vendorID,
		Name:        "Dish " + uuid.NewString()[:8],
		Description: "test dish",
		UnitPrice:   decimal.RequireFromString(price),
		CreatedAt:   time.Now().UTC().Truncate(time.Microsecond),
	}
}

// MakeOrder - новый pending-заказ без строк.
func MakeOrder(opts ...func(*domain.Order)) domain.Order {
	now := time.Now().UTC().Truncate(time.Microsecond)

	o := domain.Order{
		ID:         uuid.New(),
		CustomerID: uuid.New(),
		VendorID:   uuid.New(),
		DishLines:  []domain.DishLine{},
		TotalPrice: decimal.Zero,
		Status:     domain.StatusPending,
		Address: domain.Address{
			Street:  "Main st 1",
			City:    "Metropolis",
			Zip:     "000000",
			Country: "NA",
		},
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
	}

	for _, fn := range opts {
		fn(&o)
	}
	return o
}

func WithCustomer(id uuid.UUID) func(*domain.Order) {
	return func(o *domain.Order) { o.CustomerID = id }
}

func WithVendor(id uuid.UUID) func(*domain.Order) {
	return func(o *domain.Order) { o.VendorID = id }
}

func WithStatus(st domain.Status) func(*domain.Order) {
	return func(o *domain.Order) { o.Status = st }
}

// WithDishes - n разных блюд вендора заказа по одной единице.
func WithDishes(n int) func(*domain.Order) {
	return func(o *domain.Order) {
		for i := 0; i < n; i++ {
			o.AddDish(MakeDish(o.VendorID, fmt.Sprintf("%d.50", i+1)), 1)
		}
	}
}
