package usecase

import (
	"github.com/Gunvolt24/food_orders/internal/domain"
	"github.com/Gunvolt24/food_orders/internal/ports"
	"github.com/Gunvolt24/food_orders/pkg/validate"
)

// OrderPipelines - конвейеры валидации эндпоинтов заказов.
// Собираются один раз при старте и разделяются всеми запросами.
type OrderPipelines struct {
	Create          *validate.Pipeline
	Get             *validate.Pipeline
	List            *validate.Pipeline
	Delete          *validate.Pipeline
	AddDish         *validate.Pipeline
	SetDishQuantity *validate.Pipeline
	RemoveDish      *validate.Pipeline
	UpdateStatus    *validate.Pipeline
}

// NewOrderPipelines - orders читается свежим для изменяющих операций,
// reads - для чтения заказа (может идти через кэш).
func NewOrderPipelines(
	orders ports.OrderLookup,
	reads ports.OrderLookup,
	dishes ports.DishLookup,
	roles ports.RoleChecker,
	users ports.ExistenceChecker,
) *OrderPipelines {
	auth := validate.NewAuthorizationValidator(roles, users, orders, dishes)
	data := func(fields ...validate.Field) *validate.DataValidator {
		return validate.NewDataValidator(orders, dishes, users, fields...)
	}

	customers := validate.AllowRoles(domain.RoleCustomer)

	return &OrderPipelines{
		Create: validate.NewPipeline("create_order",
			data(validate.FieldUser, validate.FieldCreateOrderRequest), auth, customers),
		Get: validate.NewPipeline("get_order",
			validate.NewDataValidator(reads, dishes, users, validate.FieldUser, validate.FieldOrder),
			validate.NewAuthorizationValidator(roles, users, reads, dishes)),
		List: validate.NewPipeline("list_orders",
			data(validate.FieldUser), auth),
		Delete: validate.NewPipeline("delete_order",
			data(validate.FieldUser, validate.FieldOrder), auth,
			validate.AllowRoles(domain.RoleCustomer, domain.RoleAdmin)),
		AddDish: validate.NewPipeline("add_dish",
			data(validate.FieldUser, validate.FieldOrder, validate.FieldDish, validate.FieldDishQuantityRequest),
			auth, customers),
		SetDishQuantity: validate.NewPipeline("set_dish_quantity",
			data(validate.FieldUser, validate.FieldOrder, validate.FieldDish, validate.FieldDishQuantityRequest),
			auth, customers),
		RemoveDish: validate.NewPipeline("remove_dish",
			data(validate.FieldUser, validate.FieldOrder, validate.FieldDish), auth, customers),
		UpdateStatus: validate.NewPipeline("update_status",
			data(validate.FieldUser, validate.FieldOrder, validate.FieldUpdateStatusRequest), auth,
			validate.AllowRoles(domain.RoleVendor, domain.RoleAdmin)),
	}
}

// DishPipelines - конвейеры каталога блюд.
type DishPipelines struct {
	Create *validate.Pipeline
	Get    *validate.Pipeline
	List   *validate.Pipeline
	Update *validate.Pipeline
	Delete *validate.Pipeline
}

func NewDishPipelines(
	dishes ports.DishLookup,
	roles ports.RoleChecker,
	users ports.ExistenceChecker,
) *DishPipelines {
	// заказов у эндпоинтов каталога нет
	var orders ports.OrderLookup = noOrders{}

	auth := validate.NewAuthorizationValidator(roles, users, orders, dishes)
	data := func(fields ...validate.Field) *validate.DataValidator {
		return validate.NewDataValidator(orders, dishes, users, fields...)
	}
	vendors := validate.AllowRoles(domain.RoleVendor)

	return &DishPipelines{
		Create: validate.NewPipeline("create_dish",
			data(validate.FieldUser, validate.FieldDishRequest), auth, vendors),
		Get: validate.NewPipeline("get_dish",
			data(validate.FieldUser, validate.FieldDish), auth.RoleOnly()),
		List: validate.NewPipeline("list_dishes",
			data(validate.FieldUser), auth.RoleOnly()),
		Update: validate.NewPipeline("update_dish",
			data(validate.FieldUser, validate.FieldDish, validate.FieldDishRequest), auth, vendors),
		Delete: validate.NewPipeline("delete_dish",
			data(validate.FieldUser, validate.FieldDish), auth,
			validate.AllowRoles(domain.RoleVendor, domain.RoleAdmin)),
	}
}
