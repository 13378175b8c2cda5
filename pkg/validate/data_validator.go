package validate

import (
	"context"
	"fmt"
	"strings"

	"github.com/Gunvolt24/food_orders/internal/domain"
	"github.com/Gunvolt24/food_orders/internal/ports"
	"github.com/google/uuid"
)

var _ Step = (*DataValidator)(nil)

// DataValidator - проверки формы запроса и существования ресурсов, без учёта того, кто спрашивает.
// Поля, не входящие в набор, не читаются вовсе.
type DataValidator struct {
	fields FieldSet
	orders ports.OrderLookup
	dishes ports.DishLookup
	users  ports.ExistenceChecker
}

// NewDataValidator - шаг, проверяющий поля fields. users нужен только для FieldCreateOrderRequest.
func NewDataValidator(
	orders ports.OrderLookup,
	dishes ports.DishLookup,
	users ports.ExistenceChecker,
	fields ...Field,
) *DataValidator {
	return &DataValidator{
		fields: Fields(fields...),
		orders: orders,
		dishes: dishes,
		users:  users,
	}
}

func (v *DataValidator) Fields() FieldSet { return v.fields }

// Handle - проверки идут в фиксированном порядке, первая неудачная возвращается.
func (v *DataValidator) Handle(ctx context.Context, vc *Context) error {
	if v.fields.Has(FieldUser) && vc.ActorID == uuid.Nil {
		return badRequest(FieldUser, "actor id is required")
	}
	if v.fields.Has(FieldOrder) {
		if err := v.checkOrder(ctx, vc); err != nil {
			return err
		}
	}
	if v.fields.Has(FieldDish) {
		if err := v.checkDish(ctx, vc); err != nil {
			return err
		}
	}
	if v.fields.Has(FieldDishQuantityRequest) {
		if err := checkDishQuantity(vc); err != nil {
			return err
		}
	}
	if v.fields.Has(FieldCreateOrderRequest) {
		if err := v.checkCreateOrder(ctx, vc); err != nil {
			return err
		}
	}
	if v.fields.Has(FieldUpdateStatusRequest) {
		if vc.UpdateStatus == nil {
			return badRequest(FieldUpdateStatusRequest, "payload is required")
		}
		if vc.UpdateStatus.Status == "" {
			return badRequest(FieldUpdateStatusRequest, "status is required")
		}
	}
	if v.fields.Has(FieldDishRequest) {
		if err := checkDishRequest(vc); err != nil {
			return err
		}
	}
	return nil
}

func (v *DataValidator) checkOrder(ctx context.Context, vc *Context) error {
	if vc.OrderID == uuid.Nil {
		return badRequest(FieldOrder, "order id is required")
	}
	order, err := vc.loadOrder(ctx, v.orders)
	if err != nil {
		return &Failure{Kind: KindUpstream, Field: FieldOrder, Reason: "order lookup", Err: err}
	}
	if order == nil {
		return notFound(FieldOrder, "order "+vc.OrderID.String()+" does not exist")
	}
	return nil
}

func (v *DataValidator) checkDish(ctx context.Context, vc *Context) error {
	if vc.DishID == uuid.Nil {
		return badRequest(FieldDish, "dish id is required")
	}
	dish, err := vc.loadDish(ctx, v.dishes)
	if err != nil {
		return &Failure{Kind: KindUpstream, Field: FieldDish, Reason: "dish lookup", Err: err}
	}
	if dish == nil {
		return notFound(FieldDish, "dish "+vc.DishID.String()+" does not exist")
	}
	return nil
}

// checkDishQuantity - 0 допустим, его трактует вызывающая сторона (как удаление).
func checkDishQuantity(vc *Context) error {
	if vc.DishQuantity == nil {
		return badRequest(FieldDishQuantityRequest, "payload is required")
	}
	if vc.DishQuantity.Quantity < 0 {
		return badRequest(FieldDishQuantityRequest, "quantity must not be negative")
	}
	if vc.DishQuantity.Quantity > domain.MaxDishQuantity {
		return badRequest(FieldDishQuantityRequest, fmt.Sprintf("quantity must not exceed %d", domain.MaxDishQuantity))
	}
	return nil
}

func (v *DataValidator) checkCreateOrder(ctx context.Context, vc *Context) error {
	req := vc.CreateOrder
	if req == nil {
		return badRequest(FieldCreateOrderRequest, "payload is required")
	}
	if req.Address == nil {
		return badRequest(FieldCreateOrderRequest, "delivery address is required")
	}
	if strings.TrimSpace(req.Address.Street) == "" || strings.TrimSpace(req.Address.City) == "" {
		return badRequest(FieldCreateOrderRequest, "delivery address must have street and city")
	}
	if req.VendorID == uuid.Nil {
		return badRequest(FieldCreateOrderRequest, "vendor id is required")
	}
	exists, err := v.users.VendorExists(ctx, req.VendorID)
	if err != nil {
		return &Failure{Kind: KindUpstream, Field: FieldCreateOrderRequest, Reason: "vendor lookup", Err: err}
	}
	if !exists {
		return notFound(FieldCreateOrderRequest, "vendor "+req.VendorID.String()+" does not exist")
	}
	return nil
}

func checkDishRequest(vc *Context) error {
	req := vc.DishRequest
	if req == nil {
		return badRequest(FieldDishRequest, "payload is required")
	}
	if strings.TrimSpace(req.Name) == "" {
		return badRequest(FieldDishRequest, "name is required")
	}
	if req.UnitPrice.IsNegative() {
		return badRequest(FieldDishRequest, "unit price must not be negative")
	}
	if !domain.AmountFits(req.UnitPrice) {
		return badRequest(FieldDishRequest, "unit price must be at most "+domain.MaxAmount.StringFixed(domain.PriceScale)+" with at most 2 decimal places")
	}
	return nil
}
