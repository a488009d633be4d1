package catalog

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/blaisecz/nutrition-tracker/internal/domain"
)

// MemoryCatalog is an in-process catalog. It is safe for concurrent use.
type MemoryCatalog struct {
	mu    sync.RWMutex
	foods map[string]domain.FoodCandidate
}

// NewMemoryCatalog returns a catalog holding foods. Later entries replace
// earlier ones with the same case-insensitive name.
func NewMemoryCatalog(foods ...domain.FoodCandidate) *MemoryCatalog {
	c := &MemoryCatalog{foods: make(map[string]domain.FoodCandidate, len(foods))}
	for _, f := range foods {
		c.Put(f)
	}
	return c
}

// Put adds or replaces a food.
func (c *MemoryCatalog) Put(food domain.FoodCandidate) {
	if food.ServingSize <= 0 {
		food.ServingSize = domain.DefaultServingSize
	}
	c.mu.Lock()
	c.foods[domain.FoodKey(food.Name)] = food
	c.mu.Unlock()
}

func (c *MemoryCatalog) Lookup(ctx context.Context, name string) (domain.FoodCandidate, error) {
	c.mu.RLock()
	food, ok := c.foods[domain.FoodKey(name)]
	c.mu.RUnlock()
	if !ok {
		return domain.FoodCandidate{}, fmt.Errorf("%w: food %q", domain.ErrNotFound, name)
	}
	return food, nil
}

func (c *MemoryCatalog) Fallback(name string) domain.FoodCandidate {
	return FallbackCandidate(name)
}

// List returns foods sorted by name.
func (c *MemoryCatalog) List(ctx context.Context) ([]domain.FoodCandidate, error) {
	c.mu.RLock()
	out := make([]domain.FoodCandidate, 0, len(c.foods))
	for _, f := range c.foods {
		out = append(out, f)
	}
	c.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		return domain.FoodKey(out[i].Name) < domain.FoodKey(out[j].Name)
	})
	return out, nil
}

// Len returns the number of foods.
func (c *MemoryCatalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.foods)
}
