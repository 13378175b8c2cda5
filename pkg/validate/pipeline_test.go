package validate_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Gunvolt24/food_orders/internal/domain"
	"github.com/Gunvolt24/food_orders/internal/ports/mocks"
	"github.com/Gunvolt24/food_orders/pkg/metrics"
	"github.com/Gunvolt24/food_orders/pkg/validate"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func countingStep(calls *int, err error) validate.Step {
	return validate.StepFunc(func(context.Context, *validate.Context) error {
		*calls++
		return err
	})
}

func TestPipeline_StopsAtFirstFailure(t *testing.T) {
	var first, second int
	p := validate.NewPipeline("stop_test",
		countingStep(&first, &validate.Failure{Kind: validate.KindBadRequest, Field: validate.FieldUser}),
		countingStep(&second, nil),
	)

	err := p.Run(context.Background(), &validate.Context{})

	wantKind(t, err, validate.KindBadRequest)
	if first != 1 || second != 0 {
		t.Fatalf("want only first step to run, got first=%d second=%d", first, second)
	}
}

func TestPipeline_RunsAllStepsInOrder(t *testing.T) {
	var order []int
	step := func(n int) validate.Step {
		return validate.StepFunc(func(context.Context, *validate.Context) error {
			order = append(order, n)
			return nil
		})
	}

	p := validate.NewPipeline("order_test", step(1), step(2), step(3))
	if err := p.Run(context.Background(), &validate.Context{}); err != nil {
		t.Fatalf("unexpected failure: %v", err)
	}
	if len(order) != 3 || order[0] != 1 || order[1] != 2 || order[2] != 3 {
		t.Fatalf("steps ran out of order: %v", order)
	}
}

func TestPipeline_UntypedErrorBecomesUpstream(t *testing.T) {
	cause := errors.New("boom")
	var calls int
	p := validate.NewPipeline("untyped_test", countingStep(&calls, cause))

	err := p.Run(context.Background(), &validate.Context{})

	wantKind(t, err, validate.KindUpstream)
	if !errors.Is(err, cause) {
		t.Fatalf("cause must be preserved: %v", err)
	}
}

func TestPipeline_CancellationBetweenSteps(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	var second int
	first := validate.StepFunc(func(context.Context, *validate.Context) error {
		cancel()
		return nil
	})
	p := validate.NewPipeline("cancel_test", first, countingStep(&second, nil))

	err := p.Run(ctx, &validate.Context{})

	wantKind(t, err, validate.KindUpstream)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("want context.Canceled cause, got %v", err)
	}
	if second != 0 {
		t.Fatalf("second step must not run after cancellation")
	}
}

func TestPipeline_CountsFailuresByKind(t *testing.T) {
	metrics.MustRegister()
	counter := metrics.ValidationFailures.WithLabelValues("metrics_test", "not_found")
	before := testutil.ToFloat64(counter)

	var calls int
	p := validate.NewPipeline("metrics_test", countingStep(&calls, &validate.Failure{Kind: validate.KindNotFound}))
	_ = p.Run(context.Background(), &validate.Context{})

	if got := testutil.ToFloat64(counter); got != before+1 {
		t.Fatalf("want %v, got %v", before+1, got)
	}
}

// Данные, затем авторизация: заказ читается один раз за запрос и доступен вызывающему.
func TestPipeline_DataThenAuthorization_LoadsOrderOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	roles := mocks.NewMockRoleChecker(ctrl)
	users := mocks.NewMockExistenceChecker(ctrl)
	orders := mocks.NewMockOrderLookup(ctrl)
	dishes := mocks.NewMockDishLookup(ctrl)

	actor, orderID, dishID := uuid.New(), uuid.New(), uuid.New()
	order := &domain.Order{ID: orderID, CustomerID: actor, Status: domain.StatusPending}
	dish := &domain.Dish{ID: dishID, VendorID: uuid.New()}

	orders.EXPECT().FindOrder(gomock.Any(), orderID).Return(order, nil).Times(1)
	dishes.EXPECT().FindDish(gomock.Any(), dishID).Return(dish, nil).Times(1)
	roles.EXPECT().IsCustomer(gomock.Any(), actor).Return(true, nil)
	users.EXPECT().CustomerExists(gomock.Any(), actor).Return(true, nil)

	p := validate.NewPipeline("add_dish_test",
		validate.NewDataValidator(orders, dishes, users,
			validate.FieldUser, validate.FieldOrder, validate.FieldDish, validate.FieldDishQuantityRequest),
		validate.NewAuthorizationValidator(roles, users, orders, dishes),
		validate.AllowRoles(domain.RoleCustomer),
	)

	vc := validate.NewContext(domain.Actor{ID: actor, Role: domain.RoleCustomer})
	vc.OrderID, vc.DishID = orderID, dishID
	vc.DishQuantity = &domain.DishQuantityRequest{Quantity: 2}

	if err := p.Run(context.Background(), vc); err != nil {
		t.Fatalf("unexpected failure: %v", err)
	}
	if vc.LoadedOrder() != order || vc.LoadedDish() != dish {
		t.Fatalf("loaded resources must be exposed to the caller")
	}
}

func TestFailure_ErrorText(t *testing.T) {
	f := &validate.Failure{Kind: validate.KindNotFound, Field: validate.FieldDish, Reason: "dish x does not exist"}
	if got, want := f.Error(), "not found: dish: dish x does not exist"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
