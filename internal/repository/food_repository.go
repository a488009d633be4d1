package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/blaisecz/nutrition-tracker/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FoodRepository persists the nutrient catalog. It satisfies
// catalog.FoodStore.
type FoodRepository interface {
	GetByName(ctx context.Context, name string) (*domain.FoodItem, error)
	List(ctx context.Context) ([]domain.FoodItem, error)
	Upsert(ctx context.Context, item *domain.FoodItem) error
	Count(ctx context.Context) (int64, error)
}

type foodRepository struct {
	db *gorm.DB
}

func NewFoodRepository(db *gorm.DB) FoodRepository {
	return &foodRepository{db: db}
}

func (r *foodRepository) GetByName(ctx context.Context, name string) (*domain.FoodItem, error) {
	var item domain.FoodItem
	err := r.db.WithContext(ctx).First(&item, "name_key = ?", domain.FoodKey(name)).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: food %q", domain.ErrNotFound, name)
		}
		return nil, err
	}
	return &item, nil
}

func (r *foodRepository) List(ctx context.Context) ([]domain.FoodItem, error) {
	var items []domain.FoodItem
	if err := r.db.WithContext(ctx).Order("name_key ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Upsert inserts item or replaces the nutrients of the food with the same
// normalized name.
func (r *foodRepository) Upsert(ctx context.Context, item *domain.FoodItem) error {
	item.NameKey = domain.FoodKey(item.Name)
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "name_key"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"name", "calories", "carbohydrates", "sugars", "protein", "fat",
			"saturated_fat", "cholesterol", "sodium", "fiber", "serving_size", "source",
		}),
	}).Create(item).Error
}

func (r *foodRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.FoodItem{}).Count(&count).Error
	return count, err
}
