package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Мутации строк заказа. Вызываются только после успешного прохождения
// конвейера валидации; после каждой мутации итоговая цена пересчитывается целиком.

// AddDish - добавляет n единиц блюда в конец заказа. n <= 0 ничего не добавляет.
func (o *Order) AddDish(dish Dish, n int) {
	for i := 0; i < n; i++ {
		o.DishLines = append(o.DishLines, DishLine{DishID: dish.ID, UnitPrice: dish.UnitPrice})
	}
	o.RecomputeTotalPrice()
}

// RemoveDish - удаляет все строки с блюдом dishID.
func (o *Order) RemoveDish(dishID uuid.UUID) {
	kept := o.DishLines[:0]
	for _, line := range o.DishLines {
		if line.DishID != dishID {
			kept = append(kept, line)
		}
	}
	// хвост обнуляем, чтобы не держать ссылки в базовом массиве
	for i := len(kept); i < len(o.DishLines); i++ {
		o.DishLines[i] = DishLine{}
	}
	o.DishLines = kept
	o.RecomputeTotalPrice()
}

// SetDishQuantity - заменяет все строки блюда ровно на n новых (n = 0 - полное удаление).
func (o *Order) SetDishQuantity(dish Dish, n int) {
	o.RemoveDish(dish.ID)
	o.AddDish(dish, n)
}

// RecomputeTotalPrice - пересчёт итоговой цены по текущим строкам.
func (o *Order) RecomputeTotalPrice() {
	total := decimal.Zero
	for _, line := range o.DishLines {
		total = total.Add(line.UnitPrice)
	}
	o.TotalPrice = total
}
