package repository

import (
	"context"
	"errors"
	"time"

	"github.com/blaisecz/nutrition-tracker/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// gormAggregateStore persists aggregates in PostgreSQL. Update holds a row
// lock on the aggregate for the whole read-modify-write.
type gormAggregateStore struct {
	db *gorm.DB
}

func NewGormAggregateStore(db *gorm.DB) AggregateStore {
	return &gormAggregateStore{db: db}
}

func orderMeals(db *gorm.DB) *gorm.DB {
	return db.Order("id ASC")
}

func (s *gormAggregateStore) Load(ctx context.Context, userID uuid.UUID, date string) (*domain.DailyAggregate, error) {
	var agg domain.DailyAggregate
	err := s.db.WithContext(ctx).
		Preload("Meals", orderMeals).
		Where("user_id = ? AND date = ?", userID, date).
		First(&agg).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &agg, nil
}

func (s *gormAggregateStore) Save(ctx context.Context, agg *domain.DailyAggregate) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing domain.DailyAggregate
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ? AND date = ?", agg.UserID, agg.Date).
			First(&existing).Error
		switch {
		case err == nil:
			agg.ID = existing.ID
		case errors.Is(err, gorm.ErrRecordNotFound):
			if agg.ID == uuid.Nil {
				agg.ID = uuid.New()
			}
		default:
			return err
		}

		if err := tx.Where("aggregate_id = ?", agg.ID).Delete(&domain.MealRecord{}).Error; err != nil {
			return err
		}
		if err := tx.Omit(clause.Associations).Save(agg).Error; err != nil {
			return err
		}
		return insertMeals(tx, agg.ID, agg.Meals)
	})
}

func (s *gormAggregateStore) Update(ctx context.Context, userID uuid.UUID, date string, fn MutateFunc) (*domain.DailyAggregate, error) {
	var result *domain.DailyAggregate

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		fresh := domain.NewDailyAggregate(userID, date, time.Now().UTC())
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).
			Omit(clause.Associations).
			Create(fresh).Error; err != nil {
			return err
		}

		var current domain.DailyAggregate
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ? AND date = ?", userID, date).
			First(&current).Error; err != nil {
			return err
		}
		if err := tx.Scopes(orderMeals).Where("aggregate_id = ?", current.ID).Find(&current.Meals).Error; err != nil {
			return err
		}

		working := current.Clone()
		if err := fn(working); err != nil {
			return err
		}

		removed, added := diffMeals(current.Meals, working.Meals)
		if len(removed) > 0 {
			if err := tx.Where("aggregate_id = ? AND id IN ?", current.ID, removed).
				Delete(&domain.MealRecord{}).Error; err != nil {
				return err
			}
		}
		if err := insertMeals(tx, current.ID, added); err != nil {
			return err
		}
		if err := tx.Omit(clause.Associations).Save(working).Error; err != nil {
			return err
		}

		result = working
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *gormAggregateStore) Delete(ctx context.Context, userID uuid.UUID, date string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ids := tx.Model(&domain.DailyAggregate{}).Select("id").Where("user_id = ? AND date = ?", userID, date)
		if err := tx.Where("aggregate_id IN (?)", ids).Delete(&domain.MealRecord{}).Error; err != nil {
			return err
		}
		return tx.Where("user_id = ? AND date = ?", userID, date).Delete(&domain.DailyAggregate{}).Error
	})
}

func (s *gormAggregateStore) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ids := tx.Model(&domain.DailyAggregate{}).Select("id").Where("user_id = ?", userID)
		if err := tx.Where("aggregate_id IN (?)", ids).Delete(&domain.MealRecord{}).Error; err != nil {
			return err
		}
		return tx.Where("user_id = ?", userID).Delete(&domain.DailyAggregate{}).Error
	})
}

func (s *gormAggregateStore) ListDates(ctx context.Context, userID uuid.UUID) ([]string, error) {
	var dates []string
	err := s.db.WithContext(ctx).
		Model(&domain.DailyAggregate{}).
		Where("user_id = ?", userID).
		Order("date DESC").
		Pluck("date", &dates).Error
	return dates, err
}

func insertMeals(tx *gorm.DB, aggregateID uuid.UUID, meals []domain.MealRecord) error {
	if len(meals) == 0 {
		return nil
	}
	rows := make([]domain.MealRecord, len(meals))
	for i, m := range meals {
		m.AggregateID = aggregateID
		rows[i] = m
	}
	return tx.Create(&rows).Error
}

// diffMeals returns ids present only in before and meals present only in after.
func diffMeals(before, after []domain.MealRecord) (removed []int, added []domain.MealRecord) {
	inAfter := make(map[int]struct{}, len(after))
	for _, m := range after {
		inAfter[m.ID] = struct{}{}
	}
	inBefore := make(map[int]struct{}, len(before))
	for _, m := range before {
		inBefore[m.ID] = struct{}{}
		if _, ok := inAfter[m.ID]; !ok {
			removed = append(removed, m.ID)
		}
	}
	for _, m := range after {
		if _, ok := inBefore[m.ID]; !ok {
			added = append(added, m)
		}
	}
	return removed, added
}
