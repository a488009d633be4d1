// Package seed loads the food catalog files into the foods table and
// creates demo profiles with one logged day each. Safe to run multiple
// times.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/blaisecz/nutrition-tracker/internal/catalog"
	"github.com/blaisecz/nutrition-tracker/internal/domain"
	"github.com/blaisecz/nutrition-tracker/internal/nutrition"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// FoodWriter is the part of the food repository the seeder needs.
type FoodWriter interface {
	Upsert(ctx context.Context, item *domain.FoodItem) error
}

// ProfileWriter is the part of the profile repository the seeder needs.
type ProfileWriter interface {
	Exists(ctx context.Context, userID uuid.UUID) (bool, error)
	Create(ctx context.Context, profile *domain.Profile) error
}

// DayWriter is the part of the aggregate store the seeder needs.
type DayWriter interface {
	Save(ctx context.Context, agg *domain.DailyAggregate) error
}

// demoPortions are the serving multiples of the demo day's meals.
var demoPortions = []float64{1, 1.5, 0.5}

// DemoProfiles are created by Run when missing.
var DemoProfiles = []domain.Profile{
	{
		UserID:        uuid.MustParse("11111111-1111-1111-1111-111111111111"),
		Age:           30,
		HeightCM:      170,
		WeightKG:      70,
		Gender:        domain.GenderMale,
		ActivityLevel: domain.ActivityModerate,
		Goal:          domain.GoalMaintain,
	},
	{
		UserID:        uuid.MustParse("22222222-2222-2222-2222-222222222222"),
		Age:           42,
		HeightCM:      165,
		WeightKG:      68,
		Gender:        domain.GenderFemale,
		ActivityLevel: domain.ActivityLow,
		Goal:          domain.GoalLose,
	},
	{
		UserID:        uuid.MustParse("33333333-3333-3333-3333-333333333333"),
		Age:           24,
		HeightCM:      182,
		WeightKG:      77,
		Gender:        domain.GenderMale,
		ActivityLevel: domain.ActivityHigh,
		Goal:          domain.GoalGain,
	},
}

// Run upserts every food found in dir and creates the demo profiles.
// Each newly created profile gets yesterday's intake logged from the
// first catalog foods. days may be nil to skip intake.
func Run(ctx context.Context, foods FoodWriter, profiles ProfileWriter, days DayWriter, dir string, logger *zap.Logger) error {
	candidates, err := upsertCatalog(ctx, foods, dir, logger)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	created, seededDays := 0, 0
	for _, p := range DemoProfiles {
		ok, err := createProfile(ctx, profiles, p)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		created++

		if days == nil || len(candidates) == 0 {
			continue
		}
		if err := seedDay(ctx, days, p.UserID, candidates, now); err != nil {
			return err
		}
		seededDays++
	}

	logger.Info("seed completed",
		zap.Int("foods", len(candidates)),
		zap.Int("profiles_created", created),
		zap.Int("days_seeded", seededDays),
	)
	return nil
}

// Catalog loads the catalog files in dir and upserts them. It returns the
// number of foods written.
func Catalog(ctx context.Context, foods FoodWriter, dir string, logger *zap.Logger) (int, error) {
	candidates, err := upsertCatalog(ctx, foods, dir, logger)
	return len(candidates), err
}

func upsertCatalog(ctx context.Context, foods FoodWriter, dir string, logger *zap.Logger) ([]domain.FoodCandidate, error) {
	candidates, err := catalog.LoadDir(dir, logger)
	if err != nil {
		return nil, err
	}

	for _, c := range candidates {
		item := &domain.FoodItem{
			ID:          uuid.New(),
			Name:        c.Name,
			NameKey:     domain.FoodKey(c.Name),
			Nutrients:   c.Nutrients,
			ServingSize: c.ServingSize,
			Source:      dir,
		}
		if err := foods.Upsert(ctx, item); err != nil {
			return nil, fmt.Errorf("failed to upsert food %q: %w", c.Name, err)
		}
	}
	return candidates, nil
}

func seedDay(ctx context.Context, days DayWriter, userID uuid.UUID, candidates []domain.FoodCandidate, now time.Time) error {
	logged := now.AddDate(0, 0, -1)
	agg := domain.NewDailyAggregate(userID, domain.DateKey(logged), logged)
	acc := nutrition.NewAccumulator(func() time.Time { return logged })
	for i, portion := range demoPortions {
		if i >= len(candidates) {
			break
		}
		c := candidates[i]
		if _, err := acc.AddMeal(agg, c.Name, c.Nutrients.Scale(portion), nil); err != nil {
			return fmt.Errorf("failed to log demo meal %q: %w", c.Name, err)
		}
	}

	if err := days.Save(ctx, agg); err != nil {
		return fmt.Errorf("failed to save demo day for %s: %w", userID, err)
	}
	return nil
}

func createProfile(ctx context.Context, profiles ProfileWriter, p domain.Profile) (bool, error) {
	exists, err := profiles.Exists(ctx, p.UserID)
	if err != nil {
		return false, fmt.Errorf("failed to check profile %s: %w", p.UserID, err)
	}
	if exists {
		return false, nil
	}

	if err := nutrition.Derive(&p); err != nil {
		return false, fmt.Errorf("failed to derive profile %s: %w", p.UserID, err)
	}
	if err := profiles.Create(ctx, &p); err != nil {
		return false, fmt.Errorf("failed to create profile %s: %w", p.UserID, err)
	}
	return true, nil
}
