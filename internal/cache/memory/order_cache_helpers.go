package memory

import (
	"container/list"
	"time"

	"github.com/Gunvolt24/food_orders/pkg/metrics"
)

// Вызываются под c.mu.

// evictLRU - удаляет наименее используемый элемент.
func (c *LRUCacheTTL) evictLRU() {
	if back := c.ll.Back(); back != nil {
		c.removeElement(back)
		metrics.CacheOps.WithLabelValues("evicted").Inc()
	}
}

// removeElement - удаляет элемент из списка и индекса, обновляет размер.
func (c *LRUCacheTTL) removeElement(elem *list.Element) {
	if ent, ok := elem.Value.(*entry); ok {
		delete(c.index, ent.id)
	}
	c.ll.Remove(elem)
	metrics.CacheSize.Set(float64(len(c.index)))
}

func (c *LRUCacheTTL) isExpired(ent *entry, now time.Time) bool {
	if c.ttl <= 0 {
		return false
	}
	return now.After(ent.expiresAt)
}

func (c *LRUCacheTTL) expiryFrom(now time.Time) time.Time {
	if c.ttl <= 0 {
		return time.Time{}
	}
	return now.Add(c.ttl)
}

// pruneExpiredFromBack - снимает просроченные элементы с хвоста до первого живого.
func (c *LRUCacheTTL) pruneExpiredFromBack(now time.Time) {
	if c.ttl <= 0 {
		return
	}
	for back := c.ll.Back(); back != nil; back = c.ll.Back() {
		ent, ok := back.Value.(*entry)
		if ok && !now.After(ent.expiresAt) {
			return
		}
		c.removeElement(back)
		metrics.CacheOps.WithLabelValues("expired").Inc()
	}
}

// pruneTombstones - снимает истёкшие tombstone.
func (c *LRUCacheTTL) pruneTombstones(now time.Time) {
	for id, until := range c.tombstones {
		if !now.Before(until) {
			delete(c.tombstones, id)
		}
	}
}
