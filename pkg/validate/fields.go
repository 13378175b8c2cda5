package validate

// Field - поле запроса, которое проверяет DataValidator.
type Field uint8

const (
	FieldUser Field = iota + 1
	FieldOrder
	FieldDish
	FieldDishQuantityRequest
	FieldCreateOrderRequest
	FieldUpdateStatusRequest
	FieldDishRequest
)

func (f Field) String() string {
	switch f {
	case FieldUser:
		return "user"
	case FieldOrder:
		return "order"
	case FieldDish:
		return "dish"
	case FieldDishQuantityRequest:
		return "dish_quantity_request"
	case FieldCreateOrderRequest:
		return "create_order_request"
	case FieldUpdateStatusRequest:
		return "update_status_request"
	case FieldDishRequest:
		return "dish_request"
	default:
		return "unknown"
	}
}

// FieldSet - неизменяемый набор полей, задаётся при сборке конвейера.
type FieldSet uint32

// Fields - собрать набор из перечисленных полей.
func Fields(fields ...Field) FieldSet {
	var s FieldSet
	for _, f := range fields {
		s |= 1 << f
	}
	return s
}

func (s FieldSet) Has(f Field) bool { return s&(1<<f) != 0 }

func (s FieldSet) Empty() bool { return s == 0 }
