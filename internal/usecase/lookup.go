package usecase

import (
	"context"

	"github.com/Gunvolt24/food_orders/internal/domain"
	"github.com/Gunvolt24/food_orders/internal/ports"
	"github.com/google/uuid"
)

var _ ports.OrderLookup = (*CachedOrderLookup)(nil)

// CachedOrderLookup - чтение заказа сначала из кэша, при промахе из хранилища
// с записью в кэш. Только для операций чтения.
type CachedOrderLookup struct {
	repo  ports.OrderLookup
	cache ports.OrderCache
	log   ports.Logger
}

func NewCachedOrderLookup(repo ports.OrderLookup, cache ports.OrderCache, log ports.Logger) *CachedOrderLookup {
	return &CachedOrderLookup{repo: repo, cache: cache, log: log}
}

func (l *CachedOrderLookup) FindOrder(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	if order, found := l.cache.Get(ctx, id); found {
		l.log.Infof(ctx, "cache hit for order=%s", id)
		return order, nil
	}
	l.log.Infof(ctx, "cache miss for order=%s", id)

	order, err := l.repo.FindOrder(ctx, id)
	if err != nil {
		l.log.Errorf(ctx, "repo.FindOrder failed order=%s err=%v", id, err)
		return nil, err
	}
	if order != nil {
		if setErr := l.cache.Set(ctx, order); setErr != nil {
			l.log.Warnf(ctx, "cache.Set failed order=%s err=%v", id, setErr)
		}
	}
	return order, nil
}

// noOrders - заглушка для конвейеров без поля ORDER.
type noOrders struct{}

func (noOrders) FindOrder(context.Context, uuid.UUID) (*domain.Order, error) { return nil, nil }
