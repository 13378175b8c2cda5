package domain

import "github.com/shopspring/decimal"

// Границы значений, которые принимает сервис. Цены и суммы хранятся в NUMERIC(12, 2).
const (
	// MaxDishQuantity - сколько единиц одного блюда можно добавить или задать за запрос.
	MaxDishQuantity = 100

	// MaxOrderLines - сколько строк блюд может быть в одном заказе.
	MaxOrderLines = 500

	// PriceScale - знаков после запятой в цене.
	PriceScale = 2
)

// MaxAmount - наибольшая цена или сумма заказа, 9999999999.99.
var MaxAmount = decimal.New(999999999999, -PriceScale)

// AmountFits - сумма неотрицательна, не больше MaxAmount и не мельче копейки.
func AmountFits(d decimal.Decimal) bool {
	return !d.IsNegative() && d.LessThanOrEqual(MaxAmount) && d.Equal(d.Truncate(PriceScale))
}
