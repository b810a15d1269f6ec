package property

import (
	"context"
	"fmt"
	"sync"
)

// Logger defines the logging interface used by the Collection.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
}

type noopLogger struct{}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}

// Store is the set of listing operations served over HTTP.
type Store interface {
	List(ctx context.Context, opts ListOptions) ([]Property, error)
	Get(ctx context.Context, id int) (Property, error)
	Create(ctx context.Context, f Fields) (Property, error)
	Update(ctx context.Context, id int, p Patch) (Property, error)
	Delete(ctx context.Context, id int) error
	Stats(ctx context.Context) (Stats, error)
	Count() int
}

// Collection is an in-memory, insertion-ordered set of listings.
//
// All public methods are thread-safe.
type Collection struct {
	mu     sync.RWMutex
	items  []Property
	lastID int // highest id ever issued
	logger Logger
}

var _ Store = (*Collection)(nil)

// NewCollection creates an empty collection. The first id issued is 1.
func NewCollection() *Collection {
	return &Collection{logger: noopLogger{}}
}

// SetLogger sets the logger for the collection.
func (c *Collection) SetLogger(logger Logger) {
	if logger != nil {
		c.logger = logger
	}
}

// Seed creates each listing in order. It stops at the first invalid one.
func (c *Collection) Seed(ctx context.Context, samples []Fields) error {
	for i, f := range samples {
		if _, err := c.Create(ctx, f); err != nil {
			return fmt.Errorf("seeding property %d: %w", i, err)
		}
	}
	c.logger.Info("property collection seeded", "count", len(samples))
	return nil
}

// Count returns the number of stored listings.
func (c *Collection) Count() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// List returns a copy of the listings, sorted per opts.
// The stored order is never changed.
func (c *Collection) List(_ context.Context, opts ListOptions) ([]Property, error) {
	c.mu.RLock()
	items := make([]Property, len(c.items))
	copy(items, c.items)
	c.mu.RUnlock()

	sortListings(items, opts)
	return items, nil
}

// Get returns the listing with id, or ErrNotFound.
func (c *Collection) Get(_ context.Context, id int) (Property, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	i := c.indexOf(id)
	if i < 0 {
		return Property{}, notFound(id)
	}
	return c.items[i], nil
}

// Create validates f, assigns the next id and appends the listing.
func (c *Collection) Create(_ context.Context, f Fields) (Property, error) {
	p, err := NewProperty(f)
	if err != nil {
		return Property{}, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	p.ID = c.nextID()
	c.lastID = p.ID
	c.items = append(c.items, p)

	c.logger.Debug("property created", "id", p.ID)
	return p, nil
}

// Update merges patch onto the listing with id. The merged listing is
// validated before it replaces the stored one; on error nothing changes.
func (c *Collection) Update(_ context.Context, id int, patch Patch) (Property, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(id)
	if i < 0 {
		return Property{}, notFound(id)
	}

	merged := patch.apply(c.items[i])
	merged.ID = id
	if err := merged.Validate(); err != nil {
		return Property{}, err
	}
	c.items[i] = merged

	c.logger.Debug("property updated", "id", id, "fields", patch.Changed())
	return merged, nil
}

// Delete removes the listing with id, or returns ErrNotFound.
func (c *Collection) Delete(_ context.Context, id int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(id)
	if i < 0 {
		return notFound(id)
	}
	c.items = append(c.items[:i], c.items[i+1:]...)

	c.logger.Debug("property deleted", "id", id)
	return nil
}

// Stats aggregates the numeric fields, or returns ErrEmptyCollection.
func (c *Collection) Stats(_ context.Context) (Stats, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if len(c.items) == 0 {
		return nil, ErrEmptyCollection
	}
	return computeStats(c.items), nil
}

// nextID is one above both the largest live id and the largest id ever
// issued. Callers hold the write lock.
func (c *Collection) nextID() int {
	highest := c.lastID
	for _, p := range c.items {
		if p.ID > highest {
			highest = p.ID
		}
	}
	return highest + 1
}

// indexOf returns the slice index of id, or -1. Callers hold a lock.
func (c *Collection) indexOf(id int) int {
	for i := range c.items {
		if c.items[i].ID == id {
			return i
		}
	}
	return -1
}
