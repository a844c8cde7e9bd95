package store

import (
	"errors"
	"sync"
)

var ErrNotFound = errors.New("record not found")

// Collection is an ordered, insertion-preserving record set guarded for
// concurrent handlers. Reads hand out copies; writes go through Append or Update.
type Collection[T any] struct {
	mu    sync.RWMutex
	items []T
	id    func(T) string
}

func NewCollection[T any](id func(T) string, seed ...T) *Collection[T] {
	items := make([]T, len(seed))
	copy(items, seed)
	return &Collection[T]{items: items, id: id}
}

func (c *Collection[T]) All() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Collection[T]) Get(id string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, item := range c.items {
		if c.id(item) == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

func (c *Collection[T]) Append(v T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = append(c.items, v)
}

// Update applies fn to the stored record under the write lock. If fn fails
// the record is left unchanged.
func (c *Collection[T]) Update(id string, fn func(*T) error) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.id(c.items[i]) != id {
			continue
		}
		updated := c.items[i]
		if err := fn(&updated); err != nil {
			var zero T
			return zero, err
		}
		c.items[i] = updated
		return updated, nil
	}
	var zero T
	return zero, ErrNotFound
}

func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.items)
}
