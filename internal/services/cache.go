package services

import "sync"

// listCache caches one owner-scoped entity list per user. Mutations
// invalidate the owner's entry so the next read is a fresh fetch; a
// reader never observes a stale list beyond one invalidation cycle.
type listCache[T any] struct {
	mu      sync.RWMutex
	byOwner map[string][]T
}

func newListCache[T any]() *listCache[T] {
	return &listCache[T]{byOwner: make(map[string][]T)}
}

func (c *listCache[T]) get(ownerID string) ([]T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	items, ok := c.byOwner[ownerID]
	return items, ok
}

func (c *listCache[T]) set(ownerID string, items []T) {
	c.mu.Lock()
	c.byOwner[ownerID] = items
	c.mu.Unlock()
}

func (c *listCache[T]) invalidate(ownerID string) {
	c.mu.Lock()
	delete(c.byOwner, ownerID)
	c.mu.Unlock()
}
