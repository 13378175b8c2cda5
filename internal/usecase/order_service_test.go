package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Gunvolt24/food_orders/internal/domain"
	"github.com/Gunvolt24/food_orders/internal/ports/mocks"
	"github.com/Gunvolt24/food_orders/internal/usecase"
	"github.com/Gunvolt24/food_orders/pkg/validate"
)

type noopLogger struct{}

func (noopLogger) Infof(context.Context, string, ...any)  {}
func (noopLogger) Warnf(context.Context, string, ...any)  {}
func (noopLogger) Errorf(context.Context, string, ...any) {}

type orderDeps struct {
	repo   *mocks.MockOrderRepository
	dishes *mocks.MockDishLookup
	roles  *mocks.MockRoleChecker
	users  *mocks.MockExistenceChecker
	cache  *mocks.MockOrderCache
	events *mocks.MockEventPublisher
	svc    *usecase.OrderService
}

func newOrderDeps(t *testing.T) orderDeps {
	t.Helper()
	ctrl := gomock.NewController(t)
	d := orderDeps{
		repo:   mocks.NewMockOrderRepository(ctrl),
		dishes: mocks.NewMockDishLookup(ctrl),
		roles:  mocks.NewMockRoleChecker(ctrl),
		users:  mocks.NewMockExistenceChecker(ctrl),
		cache:  mocks.NewMockOrderCache(ctrl),
		events: mocks.NewMockEventPublisher(ctrl),
	}
	reads := usecase.NewCachedOrderLookup(d.repo, d.cache, noopLogger{})
	pipes := usecase.NewOrderPipelines(d.repo, reads, d.dishes, d.roles, d.users)
	d.svc = usecase.NewOrderService(d.repo, d.cache, d.events, pipes, noopLogger{})
	return d
}

// verified - пользователь подтверждён в своей роли сервисом пользователей.
func (d orderDeps) verified(actor domain.Actor) {
	switch actor.Role {
	case domain.RoleCustomer:
		d.roles.EXPECT().IsCustomer(gomock.Any(), actor.ID).Return(true, nil)
		d.users.EXPECT().CustomerExists(gomock.Any(), actor.ID).Return(true, nil)
	case domain.RoleVendor:
		d.roles.EXPECT().IsVendor(gomock.Any(), actor.ID).Return(true, nil)
		d.users.EXPECT().VendorExists(gomock.Any(), actor.ID).Return(true, nil)
	case domain.RoleAdmin:
		d.roles.EXPECT().IsAdmin(gomock.Any(), actor.ID).Return(true, nil)
		d.users.EXPECT().AdminExists(gomock.Any(), actor.ID).Return(true, nil)
	}
}

// persisted - Update успешен и поднимает версию; затем кэш и событие typ.
func (d orderDeps) persisted(t *testing.T, typ domain.OrderEventType, check func(o *domain.Order)) {
	t.Helper()
	gomock.InOrder(
		d.repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, o *domain.Order) error {
			if check != nil {
				check(o)
			}
			o.Version++
			return nil
		}),
		d.cache.EXPECT().Set(gomock.Any(), gomock.Any()).Return(nil),
		d.events.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, ev domain.OrderEvent) error {
			if ev.Type != typ {
				t.Errorf("event type: want %s, got %s", typ, ev.Type)
			}
			return nil
		}),
	)
}

func customer() domain.Actor { return domain.Actor{ID: uuid.New(), Role: domain.RoleCustomer} }
func vendor() domain.Actor   { return domain.Actor{ID: uuid.New(), Role: domain.RoleVendor} }
func admin() domain.Actor    { return domain.Actor{ID: uuid.New(), Role: domain.RoleAdmin} }

func pendingOrder(customerID, vendorID uuid.UUID) *domain.Order {
	return &domain.Order{
		ID:         uuid.New(),
		CustomerID: customerID,
		VendorID:   vendorID,
		DishLines:  []domain.DishLine{},
		TotalPrice: decimal.Zero,
		Status:     domain.StatusPending,
		Version:    1,
	}
}

func wantKind(t *testing.T, err error, kind validate.Kind) {
	t.Helper()
	f, ok := validate.AsFailure(err)
	if !ok {
		t.Fatalf("want *validate.Failure(%s), got %v", kind, err)
	}
	if f.Kind != kind {
		t.Fatalf("want kind %s, got %s (%v)", kind, f.Kind, err)
	}
}

func TestCreateOrder_OK(t *testing.T) {
	d := newOrderDeps(t)
	actor, vendorID := customer(), uuid.New()

	d.users.EXPECT().VendorExists(gomock.Any(), vendorID).Return(true, nil)
	d.verified(actor)
	d.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	d.cache.EXPECT().Set(gomock.Any(), gomock.Any()).Return(nil)
	d.events.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

	req := &domain.CreateOrderRequest{VendorID: vendorID, Address: &domain.Address{Street: "Main st 1", City: "Metropolis"}}
	got, err := d.svc.CreateOrder(context.Background(), actor, req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.CustomerID != actor.ID || got.VendorID != vendorID || got.Status != domain.StatusPending {
		t.Fatalf("unexpected order: %+v", got)
	}
	if len(got.DishLines) != 0 || !got.TotalPrice.IsZero() || got.Version != 1 {
		t.Fatalf("new order must be empty, got lines=%d total=%s version=%d", len(got.DishLines), got.TotalPrice, got.Version)
	}
}

// Вендор проходит проверку роли, но создание заказа разрешено только клиентам.
func TestCreateOrder_VendorNotAllowed(t *testing.T) {
	d := newOrderDeps(t)
	actor, vendorID := vendor(), uuid.New()

	d.users.EXPECT().VendorExists(gomock.Any(), vendorID).Return(true, nil)
	d.verified(actor)

	req := &domain.CreateOrderRequest{VendorID: vendorID, Address: &domain.Address{Street: "s", City: "c"}}
	_, err := d.svc.CreateOrder(context.Background(), actor, req)
	wantKind(t, err, validate.KindUnauthorized)
}

func TestCreateOrder_MissingAddressIsBadRequest(t *testing.T) {
	d := newOrderDeps(t)

	_, err := d.svc.CreateOrder(context.Background(), customer(), &domain.CreateOrderRequest{VendorID: uuid.New()})
	wantKind(t, err, validate.KindBadRequest)
}

func TestAddDish_ThreeOfTen(t *testing.T) {
	d := newOrderDeps(t)
	actor := customer()
	order := pendingOrder(actor.ID, uuid.New())
	dish := &domain.Dish{ID: uuid.New(), VendorID: order.VendorID, UnitPrice: decimal.NewFromInt(10)}

	d.repo.EXPECT().FindOrder(gomock.Any(), order.ID).Return(order, nil).Times(1)
	d.dishes.EXPECT().FindDish(gomock.Any(), dish.ID).Return(dish, nil).Times(1)
	d.verified(actor)
	d.persisted(t, domain.OrderDishesChanged, func(o *domain.Order) {
		if o.Version != 1 {
			t.Errorf("update must carry the read version, got %d", o.Version)
		}
	})

	got, err := d.svc.AddDish(context.Background(), actor, order.ID, dish.ID, &domain.DishQuantityRequest{Quantity: 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.QuantityOf(dish.ID) != 3 || !got.TotalPrice.Equal(decimal.RequireFromString("30.0")) {
		t.Fatalf("want 3 lines / 30.0, got %d / %s", got.QuantityOf(dish.ID), got.TotalPrice)
	}
	if got.Version != 2 {
		t.Fatalf("want version 2, got %d", got.Version)
	}
	if len(order.DishLines) != 0 {
		t.Fatalf("loaded order must not be mutated in place")
	}
}

func TestAddDish_BusinessRules(t *testing.T) {
	tests := []struct {
		name     string
		status   domain.Status
		foreign  bool
		existing int
		price    decimal.Decimal
		quantity int
	}{
		{"order already accepted", domain.StatusAccepted, false, 0, decimal.NewFromInt(1), 1},
		{"dish of another vendor", domain.StatusPending, true, 0, decimal.NewFromInt(1), 1},
		{"order is full", domain.StatusPending, false, domain.MaxOrderLines, decimal.NewFromInt(1), 1},
		{"total above storage range", domain.StatusPending, false, 0, domain.MaxAmount, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newOrderDeps(t)
			actor := customer()
			order := pendingOrder(actor.ID, uuid.New())
			order.Status = tt.status
			dish := &domain.Dish{ID: uuid.New(), VendorID: order.VendorID, UnitPrice: tt.price}
			if tt.foreign {
				dish.VendorID = uuid.New()
			}
			order.AddDish(domain.Dish{ID: uuid.New(), VendorID: order.VendorID, UnitPrice: decimal.NewFromInt(1)}, tt.existing)

			d.repo.EXPECT().FindOrder(gomock.Any(), order.ID).Return(order, nil)
			d.dishes.EXPECT().FindDish(gomock.Any(), dish.ID).Return(dish, nil)
			d.verified(actor)
			// Update не ожидается: до хранилища запрос не доходит

			_, err := d.svc.AddDish(context.Background(), actor, order.ID, dish.ID, &domain.DishQuantityRequest{Quantity: tt.quantity})
			wantKind(t, err, validate.KindBadRequest)
			if len(order.DishLines) != tt.existing {
				t.Fatalf("loaded order must stay untouched, got %d lines", len(order.DishLines))
			}
		})
	}
}

// Количество сверх лимита отсекается конвейером до загрузки строк в заказ.
func TestAddDish_QuantityAboveLimit(t *testing.T) {
	d := newOrderDeps(t)
	actor := customer()
	order := pendingOrder(actor.ID, uuid.New())
	dish := &domain.Dish{ID: uuid.New(), VendorID: order.VendorID, UnitPrice: decimal.NewFromInt(10)}

	d.repo.EXPECT().FindOrder(gomock.Any(), order.ID).Return(order, nil)
	d.dishes.EXPECT().FindDish(gomock.Any(), dish.ID).Return(dish, nil)

	_, err := d.svc.AddDish(context.Background(), actor, order.ID, dish.ID, &domain.DishQuantityRequest{Quantity: 1 << 30})
	wantKind(t, err, validate.KindBadRequest)
}

// Заказ не найден: конвейер останавливается до проверки роли и любых изменений.
func TestAddDish_UnknownOrderStopsPipeline(t *testing.T) {
	d := newOrderDeps(t)
	orderID := uuid.New()

	d.repo.EXPECT().FindOrder(gomock.Any(), orderID).Return(nil, nil)

	_, err := d.svc.AddDish(context.Background(), customer(), orderID, uuid.New(), &domain.DishQuantityRequest{Quantity: 1})
	wantKind(t, err, validate.KindNotFound)
}

func TestSetDishQuantity_ZeroRemovesDish(t *testing.T) {
	d := newOrderDeps(t)
	actor := customer()
	order := pendingOrder(actor.ID, uuid.New())
	dish := &domain.Dish{ID: uuid.New(), VendorID: order.VendorID, UnitPrice: decimal.NewFromInt(4)}
	other := domain.Dish{ID: uuid.New(), VendorID: order.VendorID, UnitPrice: decimal.NewFromInt(1)}
	order.AddDish(*dish, 2)
	order.AddDish(other, 1)

	d.repo.EXPECT().FindOrder(gomock.Any(), order.ID).Return(order, nil)
	d.dishes.EXPECT().FindDish(gomock.Any(), dish.ID).Return(dish, nil)
	d.verified(actor)
	d.persisted(t, domain.OrderDishesChanged, nil)

	got, err := d.svc.SetDishQuantity(context.Background(), actor, order.ID, dish.ID, &domain.DishQuantityRequest{Quantity: 0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.QuantityOf(dish.ID) != 0 || got.QuantityOf(other.ID) != 1 || !got.TotalPrice.Equal(decimal.NewFromInt(1)) {
		t.Fatalf("unexpected order after set 0: %+v", got)
	}
}

func TestSetDishQuantity_NegativeIsBadRequest(t *testing.T) {
	d := newOrderDeps(t)
	actor := customer()
	order := pendingOrder(actor.ID, uuid.New())
	dish := &domain.Dish{ID: uuid.New(), VendorID: order.VendorID}

	d.repo.EXPECT().FindOrder(gomock.Any(), order.ID).Return(order, nil)
	d.dishes.EXPECT().FindDish(gomock.Any(), dish.ID).Return(dish, nil)

	_, err := d.svc.SetDishQuantity(context.Background(), actor, order.ID, dish.ID, &domain.DishQuantityRequest{Quantity: -1})
	wantKind(t, err, validate.KindBadRequest)
}

func TestRemoveDish_VersionConflict(t *testing.T) {
	d := newOrderDeps(t)
	actor := customer()
	order := pendingOrder(actor.ID, uuid.New())
	dish := &domain.Dish{ID: uuid.New(), VendorID: order.VendorID, UnitPrice: decimal.NewFromInt(2)}
	order.AddDish(*dish, 1)

	d.repo.EXPECT().FindOrder(gomock.Any(), order.ID).Return(order, nil)
	d.dishes.EXPECT().FindDish(gomock.Any(), dish.ID).Return(dish, nil)
	d.verified(actor)
	d.repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(domain.ErrVersionConflict)
	d.cache.EXPECT().Evict(gomock.Any(), order.ID)
	// событие не публикуется

	_, err := d.svc.RemoveDish(context.Background(), actor, order.ID, dish.ID)
	if !errors.Is(err, domain.ErrVersionConflict) {
		t.Fatalf("want version conflict, got %v", err)
	}
}

func TestRemoveDish_PublishFailureIsNotFatal(t *testing.T) {
	d := newOrderDeps(t)
	actor := customer()
	order := pendingOrder(actor.ID, uuid.New())
	dish := &domain.Dish{ID: uuid.New(), VendorID: order.VendorID, UnitPrice: decimal.NewFromInt(2)}
	order.AddDish(*dish, 2)

	d.repo.EXPECT().FindOrder(gomock.Any(), order.ID).Return(order, nil)
	d.dishes.EXPECT().FindDish(gomock.Any(), dish.ID).Return(dish, nil)
	d.verified(actor)
	d.repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
	d.cache.EXPECT().Set(gomock.Any(), gomock.Any()).Return(errors.New("cache full"))
	d.events.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

	got, err := d.svc.RemoveDish(context.Background(), actor, order.ID, dish.ID)
	if err != nil {
		t.Fatalf("persisted change must succeed, got %v", err)
	}
	if len(got.DishLines) != 0 || !got.TotalPrice.IsZero() {
		t.Fatalf("dish must be removed, got %+v", got)
	}
}

func TestGetOrder_CacheHit(t *testing.T) {
	d := newOrderDeps(t)
	actor := customer()
	order := pendingOrder(actor.ID, uuid.New())

	d.cache.EXPECT().Get(gomock.Any(), order.ID).Return(order, true)
	d.verified(actor)

	got, err := d.svc.GetOrder(context.Background(), actor, order.ID)
	if err != nil || got == nil || got.ID != order.ID {
		t.Fatalf("expected hit, got err=%v order=%+v", err, got)
	}
}

func TestGetOrder_CacheMiss_FetchAndCache(t *testing.T) {
	d := newOrderDeps(t)
	actor := vendor()
	order := pendingOrder(uuid.New(), actor.ID)

	gomock.InOrder(
		d.cache.EXPECT().Get(gomock.Any(), order.ID).Return(nil, false),
		d.repo.EXPECT().FindOrder(gomock.Any(), order.ID).Return(order, nil),
		d.cache.EXPECT().Set(gomock.Any(), order).Return(nil),
	)
	d.verified(actor)

	got, err := d.svc.GetOrder(context.Background(), actor, order.ID)
	if err != nil || got.ID != order.ID {
		t.Fatalf("expected miss+fetch, got err=%v order=%+v", err, got)
	}
}

func TestGetOrder_ForeignCustomerUnauthorized(t *testing.T) {
	d := newOrderDeps(t)
	actor := customer()
	order := pendingOrder(uuid.New(), uuid.New())

	d.cache.EXPECT().Get(gomock.Any(), order.ID).Return(order, true)
	d.verified(actor)

	_, err := d.svc.GetOrder(context.Background(), actor, order.ID)
	wantKind(t, err, validate.KindUnauthorized)
}

func TestListOrders_FilterByRole(t *testing.T) {
	tests := []struct {
		name  string
		actor domain.Actor
		want  func(a domain.Actor) domain.OrderFilter
	}{
		{"customer sees own", customer(), func(a domain.Actor) domain.OrderFilter {
			return domain.OrderFilter{CustomerID: a.ID, Limit: 20, Offset: 5}
		}},
		{"vendor sees own", vendor(), func(a domain.Actor) domain.OrderFilter {
			return domain.OrderFilter{VendorID: a.ID, Limit: 20, Offset: 5}
		}},
		{"admin sees all", admin(), func(domain.Actor) domain.OrderFilter {
			return domain.OrderFilter{Limit: 20, Offset: 5}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newOrderDeps(t)
			d.verified(tt.actor)
			d.repo.EXPECT().List(gomock.Any(), tt.want(tt.actor)).Return([]*domain.Order{}, nil)

			if _, err := d.svc.ListOrders(context.Background(), tt.actor, 20, 5); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestDeleteOrder(t *testing.T) {
	t.Run("customer cannot cancel accepted order", func(t *testing.T) {
		d := newOrderDeps(t)
		actor := customer()
		order := pendingOrder(actor.ID, uuid.New())
		order.Status = domain.StatusAccepted

		d.repo.EXPECT().FindOrder(gomock.Any(), order.ID).Return(order, nil)
		d.verified(actor)

		wantKind(t, d.svc.DeleteOrder(context.Background(), actor, order.ID), validate.KindBadRequest)
	})

	t.Run("admin deletes any order", func(t *testing.T) {
		d := newOrderDeps(t)
		actor := admin()
		order := pendingOrder(uuid.New(), uuid.New())
		order.Status = domain.StatusPreparing

		d.repo.EXPECT().FindOrder(gomock.Any(), order.ID).Return(order, nil)
		d.verified(actor)
		d.repo.EXPECT().Delete(gomock.Any(), order.ID).Return(true, nil)
		d.cache.EXPECT().Delete(gomock.Any(), order.ID)
		d.events.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, ev domain.OrderEvent) error {
			if ev.Type != domain.OrderDeleted || ev.OrderID != order.ID {
				t.Errorf("unexpected event %+v", ev)
			}
			return nil
		})

		if err := d.svc.DeleteOrder(context.Background(), actor, order.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("vendor is not allowed", func(t *testing.T) {
		d := newOrderDeps(t)
		actor := vendor()
		order := pendingOrder(uuid.New(), actor.ID)

		d.repo.EXPECT().FindOrder(gomock.Any(), order.ID).Return(order, nil)
		d.verified(actor)

		wantKind(t, d.svc.DeleteOrder(context.Background(), actor, order.ID), validate.KindUnauthorized)
	})
}

func TestUpdateStatus(t *testing.T) {
	t.Run("owner vendor accepts", func(t *testing.T) {
		d := newOrderDeps(t)
		actor := vendor()
		order := pendingOrder(uuid.New(), actor.ID)

		d.repo.EXPECT().FindOrder(gomock.Any(), order.ID).Return(order, nil)
		d.verified(actor)
		d.persisted(t, domain.OrderStatusChanged, func(o *domain.Order) {
			if o.Status != domain.StatusAccepted {
				t.Errorf("want accepted, got %s", o.Status)
			}
		})

		got, err := d.svc.UpdateStatus(context.Background(), actor, order.ID, &domain.UpdateStatusRequest{Status: domain.StatusAccepted})
		if err != nil || got.Status != domain.StatusAccepted {
			t.Fatalf("unexpected result: %+v, %v", got, err)
		}
	})

	t.Run("same status is a no-op", func(t *testing.T) {
		d := newOrderDeps(t)
		actor := admin()
		order := pendingOrder(uuid.New(), uuid.New())

		d.repo.EXPECT().FindOrder(gomock.Any(), order.ID).Return(order, nil)
		d.verified(actor)

		if _, err := d.svc.UpdateStatus(context.Background(), actor, order.ID, &domain.UpdateStatusRequest{Status: domain.StatusPending}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("final status cannot change", func(t *testing.T) {
		d := newOrderDeps(t)
		actor := admin()
		order := pendingOrder(uuid.New(), uuid.New())
		order.Status = domain.StatusDelivered

		d.repo.EXPECT().FindOrder(gomock.Any(), order.ID).Return(order, nil)
		d.verified(actor)

		_, err := d.svc.UpdateStatus(context.Background(), actor, order.ID, &domain.UpdateStatusRequest{Status: domain.StatusPreparing})
		wantKind(t, err, validate.KindBadRequest)
	})

	t.Run("missing status", func(t *testing.T) {
		d := newOrderDeps(t)
		order := pendingOrder(uuid.New(), uuid.New())

		d.repo.EXPECT().FindOrder(gomock.Any(), order.ID).Return(order, nil)

		_, err := d.svc.UpdateStatus(context.Background(), admin(), order.ID, &domain.UpdateStatusRequest{})
		wantKind(t, err, validate.KindBadRequest)
	})
}

func TestApplyDeliveryStatus(t *testing.T) {
	orderID := uuid.New()
	raw := []byte(`{"order_id":"` + orderID.String() + `","status":"on_transit"}`)

	t.Run("invalid json is skipped", func(t *testing.T) {
		d := newOrderDeps(t)
		err := d.svc.ApplyDeliveryStatus(context.Background(), []byte("{"))
		if !errors.Is(err, domain.ErrInvalidDeliveryEvent) {
			t.Fatalf("want ErrInvalidDeliveryEvent, got %v", err)
		}
	})

	t.Run("kitchen status is rejected", func(t *testing.T) {
		d := newOrderDeps(t)
		err := d.svc.ApplyDeliveryStatus(context.Background(), []byte(`{"order_id":"`+orderID.String()+`","status":"accepted"}`))
		if !errors.Is(err, domain.ErrInvalidDeliveryEvent) {
			t.Fatalf("want ErrInvalidDeliveryEvent, got %v", err)
		}
	})

	t.Run("unknown order is skipped", func(t *testing.T) {
		d := newOrderDeps(t)
		d.repo.EXPECT().FindOrder(gomock.Any(), orderID).Return(nil, nil)

		if err := d.svc.ApplyDeliveryStatus(context.Background(), raw); !errors.Is(err, domain.ErrInvalidDeliveryEvent) {
			t.Fatalf("want ErrInvalidDeliveryEvent, got %v", err)
		}
	})

	t.Run("storage failure is temporary", func(t *testing.T) {
		d := newOrderDeps(t)
		d.repo.EXPECT().FindOrder(gomock.Any(), orderID).Return(nil, errors.New("db down"))

		err := d.svc.ApplyDeliveryStatus(context.Background(), raw)
		if err == nil || errors.Is(err, domain.ErrInvalidDeliveryEvent) {
			t.Fatalf("want temporary error, got %v", err)
		}
	})

	t.Run("applied", func(t *testing.T) {
		d := newOrderDeps(t)
		order := pendingOrder(uuid.New(), uuid.New())
		order.ID = orderID
		order.Status = domain.StatusGivenToCourier

		d.repo.EXPECT().FindOrder(gomock.Any(), orderID).Return(order, nil)
		d.persisted(t, domain.OrderStatusChanged, func(o *domain.Order) {
			if o.Status != domain.StatusOnTransit {
				t.Errorf("want on_transit, got %s", o.Status)
			}
		})

		if err := d.svc.ApplyDeliveryStatus(context.Background(), raw); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("redelivered message is a no-op", func(t *testing.T) {
		d := newOrderDeps(t)
		order := pendingOrder(uuid.New(), uuid.New())
		order.ID = orderID
		order.Status = domain.StatusOnTransit

		d.repo.EXPECT().FindOrder(gomock.Any(), orderID).Return(order, nil)

		if err := d.svc.ApplyDeliveryStatus(context.Background(), raw); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestWarmUpCache(t *testing.T) {
	d := newOrderDeps(t)
	list := []*domain.Order{pendingOrder(uuid.New(), uuid.New())}

	gomock.InOrder(
		d.repo.EXPECT().LastN(gomock.Any(), 10).Return(list, nil),
		d.cache.EXPECT().WarmUp(gomock.Any(), list).Return(nil),
	)

	if err := d.svc.WarmUpCache(context.Background(), 10); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := d.svc.WarmUpCache(context.Background(), 0); err != nil {
		t.Fatalf("n=0 must be skipped, got %v", err)
	}
}

func TestWarmUpCache_RepoError(t *testing.T) {
	d := newOrderDeps(t)
	d.repo.EXPECT().LastN(gomock.Any(), 5).Return(nil, errors.New("db down"))

	if err := d.svc.WarmUpCache(context.Background(), 5); err == nil {
		t.Fatalf("want repo error")
	}
}
