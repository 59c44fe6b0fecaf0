package romset

import (
	"fmt"
	"maps"
	"sync"

	"github.com/romweave/romcheck/pkg/errors"
)

// Catalog is a concurrent safe, insertion-ordered collection of ROM sets.
// All iteration surfaces (Names, List, ForEach) observe the order sets were
// first added, which keeps everything derived from a catalog stable across
// runs of the same input.
type Catalog struct {
	mu    sync.RWMutex
	sets  map[string]*Set
	order []string
}

// CatalogOption defines a function that configures a Catalog instance.
type CatalogOption func(*Catalog)

// WithCapacity sets the initial capacity of the catalog.
func WithCapacity(capacity int) CatalogOption {
	return func(c *Catalog) {
		c.sets = make(map[string]*Set, capacity)
		c.order = make([]string, 0, capacity)
	}
}

// NewCatalog creates a new empty catalog with optional configuration.
func NewCatalog(opts ...CatalogOption) *Catalog {
	c := &Catalog{
		sets: make(map[string]*Set),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Get returns a set by name and whether it exists.
func (c *Catalog) Get(name string) (*Set, bool) {
	c.mu.RLock()
	set, ok := c.sets[name]
	c.mu.RUnlock()
	return set, ok
}

// Set upserts a set by name. A replaced set keeps its original position.
// Returns an error if set is nil or unnamed.
func (c *Catalog) Set(set *Set) error {
	if set == nil {
		return fmt.Errorf("set cannot be nil")
	}
	if set.Name == "" {
		return fmt.Errorf("set name cannot be empty")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.sets[set.Name]; !exists {
		c.order = append(c.order, set.Name)
	}
	c.sets[set.Name] = set
	return nil
}

// Add adds a set, returning an error if it already exists.
func (c *Catalog) Add(set *Set) error {
	if set == nil {
		return fmt.Errorf("set cannot be nil")
	}
	if set.Name == "" {
		return fmt.Errorf("set name cannot be empty")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.sets[set.Name]; exists {
		return fmt.Errorf("set %s: %w", set.Name, errors.ErrAlreadyExists)
	}

	c.sets[set.Name] = set
	c.order = append(c.order, set.Name)
	return nil
}

// Delete removes a set by name. Returns an error if the set doesn't exist.
func (c *Catalog) Delete(name string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.sets[name]; !exists {
		return fmt.Errorf("set %s: %w", name, errors.ErrNotFound)
	}

	delete(c.sets, name)
	for i, n := range c.order {
		if n == name {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return nil
}

// Exists checks if a set exists without returning it.
func (c *Catalog) Exists(name string) bool {
	c.mu.RLock()
	_, exists := c.sets[name]
	c.mu.RUnlock()
	return exists
}

// Len returns the number of sets.
func (c *Catalog) Len() int {
	c.mu.RLock()
	length := len(c.sets)
	c.mu.RUnlock()
	return length
}

// Names returns the set names in insertion order.
func (c *Catalog) Names() []string {
	c.mu.RLock()
	names := make([]string, len(c.order))
	copy(names, c.order)
	c.mu.RUnlock()
	return names
}

// List returns all sets in insertion order.
func (c *Catalog) List() []*Set {
	c.mu.RLock()
	sets := make([]*Set, 0, len(c.order))
	for _, name := range c.order {
		sets = append(sets, c.sets[name])
	}
	c.mu.RUnlock()
	return sets
}

// Map returns a copy of the name to set mapping. The sets themselves are shared.
func (c *Catalog) Map() map[string]*Set {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result := make(map[string]*Set, len(c.sets))
	maps.Copy(result, c.sets)
	return result
}

// ForEach applies a function to each set in insertion order.
// If the function returns false, iteration stops early.
func (c *Catalog) ForEach(fn func(name string, set *Set) bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, name := range c.order {
		if !fn(name, c.sets[name]) {
			break
		}
	}
}

// Copy returns a deep copy of the catalog. Mutating the copy, its sets, or
// their digest maps never affects the original.
func (c *Catalog) Copy() *Catalog {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := &Catalog{
		sets:  make(map[string]*Set, len(c.sets)),
		order: make([]string, len(c.order)),
	}
	copy(out.order, c.order)
	for name, set := range c.sets {
		out.sets[name] = set.Clone()
	}
	return out
}

// Clear removes all sets.
func (c *Catalog) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for k := range c.sets {
		delete(c.sets, k)
	}
	c.order = c.order[:0]
}
