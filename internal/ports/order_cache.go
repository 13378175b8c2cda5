package ports

import (
	"context"

	"github.com/Gunvolt24/food_orders/internal/domain"
	"github.com/google/uuid"
)

// OrderCache - кэш заказов для пути чтения.
// Требования к реализации: потокобезопасность; доступ по ключу O(1); возврат копий.
type OrderCache interface {
	// Get - (order, true) при попадании, (nil, false) при промахе или истечении TTL.
	Get(ctx context.Context, id uuid.UUID) (*domain.Order, bool)

	Set(ctx context.Context, order *domain.Order) error

	// Delete - заказ удалён из хранилища: запись убирается, и Set того же id
	// какое-то время игнорируется (чтение, начатое до удаления, не вернёт заказ в кэш).
	Delete(ctx context.Context, id uuid.UUID)

	// Evict - запись устарела (конфликт версий); следующий Set её восполнит.
	Evict(ctx context.Context, id uuid.UUID)

	// WarmUp - массовая загрузка (при старте); поддерживает отмену ctx.
	WarmUp(ctx context.Context, orders []*domain.Order) error
}
