package validate

import (
	"context"
	"errors"
	"fmt"

	"github.com/Gunvolt24/food_orders/internal/domain"
	"github.com/Gunvolt24/food_orders/internal/ports"
	"github.com/google/uuid"
)

var _ Step = (*AuthorizationValidator)(nil)

// AuthorizationValidator - проверка заявленной роли и владения ресурсами.
// Ставится после DataValidator: ресурсы по id к этому моменту уже проверены.
//
// Порядок для каждой роли: принадлежность к роли (UNAUTHORIZED),
// затем наличие записи роли (NOT_FOUND), затем владение (UNAUTHORIZED).
type AuthorizationValidator struct {
	roles  ports.RoleChecker
	users  ports.ExistenceChecker
	orders ports.OrderLookup
	dishes ports.DishLookup
}

func NewAuthorizationValidator(
	roles ports.RoleChecker,
	users ports.ExistenceChecker,
	orders ports.OrderLookup,
	dishes ports.DishLookup,
) *AuthorizationValidator {
	return &AuthorizationValidator{roles: roles, users: users, orders: orders, dishes: dishes}
}

func (v *AuthorizationValidator) Handle(ctx context.Context, vc *Context) error {
	switch vc.Role {
	case domain.RoleCustomer:
		return v.customer(ctx, vc)
	case domain.RoleVendor:
		return v.vendor(ctx, vc)
	case domain.RoleAdmin:
		return v.membership(ctx, vc.ActorID, domain.RoleAdmin, v.roles.IsAdmin, v.users.AdminExists)
	default:
		return &Failure{Kind: KindUnrecognized, Reason: fmt.Sprintf("role %d is not recognized", uint8(vc.Role))}
	}
}

// RoleOnly - та же проверка роли без владения ресурсами (чтение общего каталога).
func (v *AuthorizationValidator) RoleOnly() Step {
	return StepFunc(func(ctx context.Context, vc *Context) error {
		return v.Handle(ctx, &Context{ActorID: vc.ActorID, Role: vc.Role})
	})
}

func (v *AuthorizationValidator) customer(ctx context.Context, vc *Context) error {
	if err := v.membership(ctx, vc.ActorID, domain.RoleCustomer, v.roles.IsCustomer, v.users.CustomerExists); err != nil {
		return err
	}
	if vc.OrderID == uuid.Nil {
		return nil
	}
	order, err := v.order(ctx, vc)
	if err != nil {
		return err
	}
	if order.CustomerID != vc.ActorID {
		return unauthorized("order belongs to another customer")
	}
	return nil
}

// vendor - владение заказом и блюдом проверяется независимо: при двух id
// отказ по любому из них даёт UNAUTHORIZED, причины объединяются.
func (v *AuthorizationValidator) vendor(ctx context.Context, vc *Context) error {
	if err := v.membership(ctx, vc.ActorID, domain.RoleVendor, v.roles.IsVendor, v.users.VendorExists); err != nil {
		return err
	}

	var denied []error
	if vc.OrderID != uuid.Nil {
		order, err := v.order(ctx, vc)
		if err != nil {
			return err
		}
		if order.VendorID != vc.ActorID {
			denied = append(denied, errors.New("order belongs to another vendor"))
		}
	}
	if vc.DishID != uuid.Nil {
		dish, err := v.dish(ctx, vc)
		if err != nil {
			return err
		}
		if dish.VendorID != vc.ActorID {
			denied = append(denied, errors.New("dish belongs to another vendor"))
		}
	}
	if len(denied) > 0 {
		return &Failure{Kind: KindUnauthorized, Reason: "ownership check", Err: errors.Join(denied...)}
	}
	return nil
}

type userPredicate func(ctx context.Context, userID uuid.UUID) (bool, error)

func (v *AuthorizationValidator) membership(
	ctx context.Context,
	actorID uuid.UUID,
	role domain.Role,
	isRole, exists userPredicate,
) error {
	ok, err := isRole(ctx, actorID)
	if err != nil {
		return upstream(role.String()+" role check", err)
	}
	if !ok {
		return unauthorized("actor is not registered as " + role.String())
	}

	ok, err = exists(ctx, actorID)
	if err != nil {
		return upstream(role.String()+" existence check", err)
	}
	if !ok {
		return notFound(FieldUser, role.String()+" "+actorID.String()+" does not exist")
	}
	return nil
}

func (v *AuthorizationValidator) order(ctx context.Context, vc *Context) (*domain.Order, error) {
	order, err := vc.loadOrder(ctx, v.orders)
	if err != nil {
		return nil, &Failure{Kind: KindUpstream, Field: FieldOrder, Reason: "order lookup", Err: err}
	}
	if order == nil {
		return nil, notFound(FieldOrder, "order "+vc.OrderID.String()+" does not exist")
	}
	return order, nil
}

func (v *AuthorizationValidator) dish(ctx context.Context, vc *Context) (*domain.Dish, error) {
	dish, err := vc.loadDish(ctx, v.dishes)
	if err != nil {
		return nil, &Failure{Kind: KindUpstream, Field: FieldDish, Reason: "dish lookup", Err: err}
	}
	if dish == nil {
		return nil, notFound(FieldDish, "dish "+vc.DishID.String()+" does not exist")
	}
	return dish, nil
}
