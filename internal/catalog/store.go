package catalog

import (
	"context"

	"github.com/blaisecz/nutrition-tracker/internal/domain"
)

// FoodStore is the persistence the store-backed catalog reads from.
type FoodStore interface {
	GetByName(ctx context.Context, name string) (*domain.FoodItem, error)
	List(ctx context.Context) ([]domain.FoodItem, error)
}

// StoreCatalog serves the catalog from a FoodStore, typically the foods
// table populated by the seeder.
type StoreCatalog struct {
	store FoodStore
}

func NewStoreCatalog(store FoodStore) *StoreCatalog {
	return &StoreCatalog{store: store}
}

func (c *StoreCatalog) Lookup(ctx context.Context, name string) (domain.FoodCandidate, error) {
	item, err := c.store.GetByName(ctx, name)
	if err != nil {
		return domain.FoodCandidate{}, err
	}
	return item.ToCandidate(), nil
}

func (c *StoreCatalog) Fallback(name string) domain.FoodCandidate {
	return FallbackCandidate(name)
}

func (c *StoreCatalog) List(ctx context.Context) ([]domain.FoodCandidate, error) {
	items, err := c.store.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]domain.FoodCandidate, 0, len(items))
	for i := range items {
		out = append(out, items[i].ToCandidate())
	}
	return out, nil
}
