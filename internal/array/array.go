// Package array holds the single ordered list of strings served under /list.
package array

import (
	"context"
	"errors"
	"sync"
)

// ErrEmptyCollection is returned by MinMax on an empty list.
var ErrEmptyCollection = errors.New("array: list is empty")

// Snapshot is a copy of the list with its derived length.
// Len is encoded as a JSON string.
type Snapshot struct {
	Len   int      `json:"len,string"`
	Array []string `json:"array"`
}

// Extremes holds the byte-wise smallest and largest elements.
type Extremes struct {
	Min string `json:"min"`
	Max string `json:"max"`
}

// Store is the set of list operations served over HTTP.
type Store interface {
	Get(ctx context.Context) Snapshot
	Replace(ctx context.Context, items []string) Snapshot
	MinMax(ctx context.Context) (Extremes, error)
	Len() int
}

// Collection is a mutex-guarded list of strings.
type Collection struct {
	mu    sync.RWMutex
	items []string
}

var _ Store = (*Collection)(nil)

// NewCollection creates a collection holding a copy of initial.
func NewCollection(initial []string) *Collection {
	return &Collection{items: clone(initial)}
}

// Get returns a copy of the list. Len is computed on every call.
func (c *Collection) Get(_ context.Context) Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return snapshot(c.items)
}

// Replace swaps in a copy of items. A nil slice empties the list.
func (c *Collection) Replace(_ context.Context, items []string) Snapshot {
	next := clone(items)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = next
	return snapshot(c.items)
}

// MinMax compares elements as raw strings, so "10" sorts before "9".
func (c *Collection) MinMax(_ context.Context) (Extremes, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if len(c.items) == 0 {
		return Extremes{}, ErrEmptyCollection
	}

	ext := Extremes{Min: c.items[0], Max: c.items[0]}
	for _, s := range c.items[1:] {
		if s < ext.Min {
			ext.Min = s
		}
		if s > ext.Max {
			ext.Max = s
		}
	}
	return ext, nil
}

// Len returns the current number of elements.
func (c *Collection) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

func snapshot(items []string) Snapshot {
	return Snapshot{Len: len(items), Array: clone(items)}
}

// clone copies s, mapping nil to an empty slice so it encodes as [].
func clone(s []string) []string {
	out := make([]string, len(s))
	copy(out, s)
	return out
}
