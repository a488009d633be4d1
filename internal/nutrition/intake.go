package nutrition

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/blaisecz/nutrition-tracker/internal/domain"
)

// Accumulator is the only component that mutates a DailyAggregate's meals
// and totals. Callers persist the aggregate afterwards.
type Accumulator struct {
	now func() time.Time
}

// NewAccumulator returns an Accumulator stamping records with now.
// A nil clock uses the wall clock in UTC.
func NewAccumulator(now func() time.Time) *Accumulator {
	if now == nil {
		now = func() time.Time { return time.Now().UTC() }
	}
	return &Accumulator{now: now}
}

// AddMeal appends a meal with the next id and adds its nutrients to the
// totals. The aggregate is unchanged on error.
func (a *Accumulator) AddMeal(agg *domain.DailyAggregate, foodName string, nutrients domain.NutrientVector, confidence *float64) (domain.MealRecord, error) {
	name := strings.TrimSpace(foodName)
	if name == "" {
		return domain.MealRecord{}, fmt.Errorf("%w: food_name is required", domain.ErrInvalidInput)
	}
	if err := nutrients.Validate(); err != nil {
		return domain.MealRecord{}, err
	}
	if confidence != nil {
		c := *confidence
		if math.IsNaN(c) || c < 0 || c > 1 {
			return domain.MealRecord{}, fmt.Errorf("%w: confidence_score must be in [0,1]", domain.ErrInvalidInput)
		}
		confidence = &c
	}

	if agg.NextMealID < 1 {
		agg.NextMealID = nextIDFromMeals(agg.Meals)
	}

	now := a.now()
	meal := domain.MealRecord{
		AggregateID:     agg.ID,
		ID:              agg.NextMealID,
		FoodName:        name,
		Nutrients:       nutrients,
		ConfidenceScore: confidence,
		LoggedAt:        now,
	}

	agg.NextMealID++
	agg.Meals = append(agg.Meals, meal)
	agg.Totals = agg.Totals.Add(nutrients)
	agg.UpdatedAt = now
	return meal, nil
}

// RemoveMeal removes the live meal with id and rebuilds the totals from
// the remaining meals, clamped at zero. It reports false, without changes,
// when no such meal exists.
func (a *Accumulator) RemoveMeal(agg *domain.DailyAggregate, id int) bool {
	idx := -1
	for i := range agg.Meals {
		if agg.Meals[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false
	}

	agg.Meals = append(agg.Meals[:idx:idx], agg.Meals[idx+1:]...)
	Recompute(agg)
	agg.Totals = agg.Totals.ClampNonNegative()
	agg.UpdatedAt = a.now()
	return true
}

// Totals returns a copy of the aggregate's totals.
func Totals(agg *domain.DailyAggregate) domain.NutrientVector {
	if agg == nil {
		return domain.NutrientVector{}
	}
	return agg.Totals
}

// Recompute rebuilds totals from the live meals and repairs NextMealID.
func Recompute(agg *domain.DailyAggregate) {
	var sum domain.NutrientVector
	for _, m := range agg.Meals {
		sum = sum.Add(m.Nutrients)
	}
	agg.Totals = sum

	if next := nextIDFromMeals(agg.Meals); agg.NextMealID < next {
		agg.NextMealID = next
	}
}

// RecentFoodNames returns distinct food names of the last limit meals,
// newest first. Names are compared case-insensitively.
func RecentFoodNames(agg *domain.DailyAggregate, limit int) []string {
	if agg == nil || limit <= 0 {
		return nil
	}

	seen := make(map[string]struct{})
	var names []string
	for i, n := len(agg.Meals)-1, 0; i >= 0 && n < limit; i, n = i-1, n+1 {
		name := agg.Meals[i].FoodName
		key := domain.FoodKey(name)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		names = append(names, name)
	}
	return names
}

func nextIDFromMeals(meals []domain.MealRecord) int {
	next := 1
	for _, m := range meals {
		if m.ID >= next {
			next = m.ID + 1
		}
	}
	return next
}
