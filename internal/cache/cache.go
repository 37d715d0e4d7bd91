// Package cache is the client-side query cache: keyed snapshots of fetched
// collections and entities, invalidated after mutations so the next read
// reflects the server's authoritative state. Values are copied on both write
// and read, so a snapshot captured before an optimistic update is immune to
// later cache writes.
package cache

import (
	"strings"
	"sync"
)

// Key identifies one cached query, scoped as resource:parent-or-entity-id.
type Key string

// ListKey builds the key for a parent-scoped collection.
func ListKey(resource, parentID string) Key {
	return Key(resource + ":" + parentID)
}

// EntityKey builds the key for a single entity.
func EntityKey(resource, id string) Key {
	return Key(resource + ":" + id)
}

// Cache is a mutex-guarded snapshot store. Reads and writes are not
// transactional across keys; the optimistic snapshot/rollback pattern in the
// entry service is the only protection against lost updates, and it covers a
// single mutation's own key.
type Cache struct {
	mu    sync.RWMutex
	items map[Key]any
}

// New creates an empty cache.
func New() *Cache {
	return &Cache{items: make(map[Key]any)}
}

// Invalidate drops the given keys.
func (c *Cache) Invalidate(keys ...Key) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range keys {
		delete(c.items, k)
	}
}

// InvalidateResource drops every key belonging to a resource.
func (c *Cache) InvalidateResource(resource string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	prefix := resource + ":"
	for k := range c.items {
		if strings.HasPrefix(string(k), prefix) {
			delete(c.items, k)
		}
	}
}

// Clear drops everything.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make(map[Key]any)
}

func (c *Cache) get(k Key) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.items[k]
	return v, ok
}

func (c *Cache) set(k Key, v any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[k] = v
}

// GetList returns a copy of the cached collection under k, if present. The
// returned slice is the caller's to keep: later cache writes do not reach it.
func GetList[T any](c *Cache, k Key) ([]T, bool) {
	v, ok := c.get(k)
	if !ok {
		return nil, false
	}
	list, ok := v.([]T)
	if !ok {
		return nil, false
	}
	out := make([]T, len(list))
	copy(out, list)
	return out, true
}

// SetList stores a copy of the collection under k.
func SetList[T any](c *Cache, k Key, list []T) {
	stored := make([]T, len(list))
	copy(stored, list)
	c.set(k, stored)
}

// GetEntity returns the cached entity under k, if present and of type T.
func GetEntity[T any](c *Cache, k Key) (T, bool) {
	var zero T
	v, ok := c.get(k)
	if !ok {
		return zero, false
	}
	entity, ok := v.(T)
	if !ok {
		return zero, false
	}
	return entity, true
}

// SetEntity stores an entity under k.
func SetEntity[T any](c *Cache, k Key, entity T) {
	c.set(k, entity)
}
