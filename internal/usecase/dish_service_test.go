package usecase_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Gunvolt24/food_orders/internal/domain"
	"github.com/Gunvolt24/food_orders/internal/ports/mocks"
	"github.com/Gunvolt24/food_orders/internal/usecase"
	"github.com/Gunvolt24/food_orders/pkg/validate"
)

type dishDeps struct {
	orderDeps
	dishRepo *mocks.MockDishRepository
	dishSvc  *usecase.DishService
}

func newDishDeps(t *testing.T) dishDeps {
	t.Helper()
	ctrl := gomock.NewController(t)
	d := dishDeps{
		orderDeps: orderDeps{
			roles: mocks.NewMockRoleChecker(ctrl),
			users: mocks.NewMockExistenceChecker(ctrl),
		},
		dishRepo: mocks.NewMockDishRepository(ctrl),
	}
	pipes := usecase.NewDishPipelines(d.dishRepo, d.roles, d.users)
	d.dishSvc = usecase.NewDishService(d.dishRepo, pipes, noopLogger{})
	return d
}

func TestCreateDish(t *testing.T) {
	t.Run("vendor adds dish to own menu", func(t *testing.T) {
		d := newDishDeps(t)
		actor := vendor()
		d.verified(actor)
		d.dishRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		got, err := d.dishSvc.CreateDish(context.Background(), actor, &domain.DishRequest{
			Name:      "  Borscht ",
			UnitPrice: decimal.RequireFromString("4.50"),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.VendorID != actor.ID || got.Name != "Borscht" || got.ID == uuid.Nil {
			t.Fatalf("unexpected dish: %+v", got)
		}
	})

	t.Run("customer is not allowed", func(t *testing.T) {
		d := newDishDeps(t)
		actor := customer()
		d.verified(actor)

		_, err := d.dishSvc.CreateDish(context.Background(), actor, &domain.DishRequest{Name: "x", UnitPrice: decimal.NewFromInt(1)})
		wantKind(t, err, validate.KindUnauthorized)
	})

	// цена должна помещаться в NUMERIC(12, 2) без округления, иначе до хранилища не доходим
	for name, price := range map[string]string{
		"negative price":     "-1",
		"price out of range": "1000000000000",
		"sub-cent price":     "10.005",
	} {
		t.Run(name, func(t *testing.T) {
			d := newDishDeps(t)

			_, err := d.dishSvc.CreateDish(context.Background(), vendor(),
				&domain.DishRequest{Name: "x", UnitPrice: decimal.RequireFromString(price)})
			wantKind(t, err, validate.KindBadRequest)
		})
	}
}

// Каталог общий: вендор может посмотреть блюдо другого вендора.
func TestGetDish_ForeignVendorCanRead(t *testing.T) {
	d := newDishDeps(t)
	actor := vendor()
	dish := &domain.Dish{ID: uuid.New(), VendorID: uuid.New(), Name: "Pho"}

	d.dishRepo.EXPECT().FindDish(gomock.Any(), dish.ID).Return(dish, nil)
	d.verified(actor)

	got, err := d.dishSvc.GetDish(context.Background(), actor, dish.ID)
	if err != nil || got.ID != dish.ID {
		t.Fatalf("unexpected result: %+v, %v", got, err)
	}
}

func TestGetDish_Missing(t *testing.T) {
	d := newDishDeps(t)
	dishID := uuid.New()
	d.dishRepo.EXPECT().FindDish(gomock.Any(), dishID).Return(nil, nil)

	_, err := d.dishSvc.GetDish(context.Background(), customer(), dishID)
	wantKind(t, err, validate.KindNotFound)
}

func TestUpdateDish(t *testing.T) {
	req := &domain.DishRequest{Name: "Pho bo", UnitPrice: decimal.NewFromInt(7)}

	t.Run("foreign vendor", func(t *testing.T) {
		d := newDishDeps(t)
		actor := vendor()
		dish := &domain.Dish{ID: uuid.New(), VendorID: uuid.New()}

		d.dishRepo.EXPECT().FindDish(gomock.Any(), dish.ID).Return(dish, nil)
		d.verified(actor)

		_, err := d.dishSvc.UpdateDish(context.Background(), actor, dish.ID, req)
		wantKind(t, err, validate.KindUnauthorized)
	})

	t.Run("deleted meanwhile", func(t *testing.T) {
		d := newDishDeps(t)
		actor := vendor()
		dish := &domain.Dish{ID: uuid.New(), VendorID: actor.ID}

		d.dishRepo.EXPECT().FindDish(gomock.Any(), dish.ID).Return(dish, nil)
		d.verified(actor)
		d.dishRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(false, nil)

		_, err := d.dishSvc.UpdateDish(context.Background(), actor, dish.ID, req)
		wantKind(t, err, validate.KindNotFound)
	})

	t.Run("owner", func(t *testing.T) {
		d := newDishDeps(t)
		actor := vendor()
		dish := &domain.Dish{ID: uuid.New(), VendorID: actor.ID, Name: "Pho", UnitPrice: decimal.NewFromInt(5)}

		d.dishRepo.EXPECT().FindDish(gomock.Any(), dish.ID).Return(dish, nil)
		d.verified(actor)
		d.dishRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(true, nil)

		got, err := d.dishSvc.UpdateDish(context.Background(), actor, dish.ID, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Name != "Pho bo" || !got.UnitPrice.Equal(decimal.NewFromInt(7)) {
			t.Fatalf("unexpected dish: %+v", got)
		}
		if dish.Name != "Pho" {
			t.Fatalf("loaded dish must not be mutated")
		}
	})
}

func TestDeleteDish_Admin(t *testing.T) {
	d := newDishDeps(t)
	actor := admin()
	dish := &domain.Dish{ID: uuid.New(), VendorID: uuid.New()}

	d.dishRepo.EXPECT().FindDish(gomock.Any(), dish.ID).Return(dish, nil)
	d.verified(actor)
	d.dishRepo.EXPECT().Delete(gomock.Any(), dish.ID).Return(true, nil)

	if err := d.dishSvc.DeleteDish(context.Background(), actor, dish.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestListVendorDishes(t *testing.T) {
	t.Run("vendor id required", func(t *testing.T) {
		d := newDishDeps(t)
		actor := customer()
		d.verified(actor)

		_, err := d.dishSvc.ListVendorDishes(context.Background(), actor, uuid.Nil)
		wantKind(t, err, validate.KindBadRequest)
	})

	t.Run("menu", func(t *testing.T) {
		d := newDishDeps(t)
		actor, vendorID := customer(), uuid.New()
		d.verified(actor)
		d.dishRepo.EXPECT().ListByVendor(gomock.Any(), vendorID).Return([]*domain.Dish{{ID: uuid.New(), VendorID: vendorID}}, nil)

		got, err := d.dishSvc.ListVendorDishes(context.Background(), actor, vendorID)
		if err != nil || len(got) != 1 {
			t.Fatalf("unexpected result: %v, %v", got, err)
		}
	})
}
