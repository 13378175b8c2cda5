package memory

import (
	"container/list"
	"context"
	"sync"
	"time"

	"github.com/Gunvolt24/food_orders/internal/domain"
	"github.com/Gunvolt24/food_orders/internal/ports"
	"github.com/Gunvolt24/food_orders/pkg/metrics"
	"github.com/google/uuid"
)

var _ ports.OrderCache = (*LRUCacheTTL)(nil)

// defaultTombstoneTTL - окно для удалённых заказов, если у кэша нет TTL.
const defaultTombstoneTTL = 5 * time.Minute

type entry struct {
	id        uuid.UUID
	order     *domain.Order
	expiresAt time.Time
}

// LRUCacheTTL - LRU-кэш заказов с TTL (ttl <= 0 - без истечения).
// Хранит и отдаёт копии; более старая версия заказа не перетирает более новую.
type LRUCacheTTL struct {
	capacity int
	ttl      time.Duration
	now      func() time.Time

	ll    *list.List
	index map[uuid.UUID]*list.Element

	// удалённые заказы: id -> до какого момента игнорировать Set
	tombstones   map[uuid.UUID]time.Time
	tombstoneTTL time.Duration

	mu sync.Mutex
}

func NewLRUCacheTTL(capacity int, ttl time.Duration) *LRUCacheTTL {
	if capacity <= 0 {
		capacity = 1
	}
	tombstoneTTL := ttl
	if tombstoneTTL <= 0 {
		tombstoneTTL = defaultTombstoneTTL
	}
	return &LRUCacheTTL{
		capacity:     capacity,
		ttl:          ttl,
		now:          time.Now,
		ll:           list.New(),
		index:        make(map[uuid.UUID]*list.Element),
		tombstones:   make(map[uuid.UUID]time.Time),
		tombstoneTTL: tombstoneTTL,
	}
}

func (c *LRUCacheTTL) Get(_ context.Context, id uuid.UUID) (*domain.Order, bool) {
	now := c.now()

	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.index[id]
	if !ok {
		metrics.CacheOps.WithLabelValues("miss").Inc()
		return nil, false
	}
	ent := elem.Value.(*entry)
	if c.isExpired(ent, now) {
		metrics.CacheOps.WithLabelValues("expired").Inc()
		c.removeElement(elem)
		return nil, false
	}
	c.ll.MoveToFront(elem)
	ent.expiresAt = c.expiryFrom(now)

	metrics.CacheOps.WithLabelValues("hit").Inc()
	return ent.order.Clone(), true
}

func (c *LRUCacheTTL) Set(_ context.Context, order *domain.Order) error {
	if order == nil || order.ID == uuid.Nil {
		return nil
	}
	now := c.now()

	c.mu.Lock()
	defer c.mu.Unlock()

	if until, ok := c.tombstones[order.ID]; ok {
		if now.Before(until) {
			metrics.CacheOps.WithLabelValues("tombstoned").Inc()
			return nil
		}
		delete(c.tombstones, order.ID)
	}

	if elem, ok := c.index[order.ID]; ok {
		ent := elem.Value.(*entry)
		if ent.order.Version > order.Version {
			return nil
		}
		ent.order = order.Clone()
		ent.expiresAt = c.expiryFrom(now)
		c.ll.MoveToFront(elem)
		return nil
	}

	c.pruneExpiredFromBack(now)

	c.index[order.ID] = c.ll.PushFront(&entry{
		id:        order.ID,
		order:     order.Clone(),
		expiresAt: c.expiryFrom(now),
	})
	metrics.CacheSize.Set(float64(len(c.index)))

	if c.ll.Len() > c.capacity {
		c.evictLRU()
	}
	return nil
}

// Delete - удаление заказа насовсем, с tombstone против запоздалых Set.
func (c *LRUCacheTTL) Delete(_ context.Context, id uuid.UUID) {
	now := c.now()

	c.mu.Lock()
	defer c.mu.Unlock()

	c.pruneTombstones(now)
	c.tombstones[id] = now.Add(c.tombstoneTTL)

	if elem, ok := c.index[id]; ok {
		c.removeElement(elem)
		metrics.CacheOps.WithLabelValues("deleted").Inc()
	}
}

// Evict - сброс устаревшей записи; заказ можно положить снова сразу.
func (c *LRUCacheTTL) Evict(_ context.Context, id uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.index[id]; ok {
		c.removeElement(elem)
		metrics.CacheOps.WithLabelValues("evicted").Inc()
	}
}

// WarmUp - загрузка пачки заказов; прерывается при отмене ctx.
func (c *LRUCacheTTL) WarmUp(ctx context.Context, orders []*domain.Order) error {
	for _, order := range orders {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := c.Set(ctx, order); err != nil {
			return err
		}
	}
	return nil
}

func (c *LRUCacheTTL) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ll.Len()
}
