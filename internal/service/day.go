package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/blaisecz/nutrition-tracker/internal/domain"
	"github.com/blaisecz/nutrition-tracker/internal/nutrition"
	"github.com/blaisecz/nutrition-tracker/internal/repository"
	"github.com/google/uuid"
)

// Clock returns the current time. Services use UTC calendar dates.
type Clock func() time.Time

func systemClock() time.Time {
	return time.Now().UTC()
}

// resolveDate validates date, defaulting to today.
func resolveDate(date string, now Clock) (string, error) {
	date = strings.TrimSpace(date)
	if date == "" {
		return domain.DateKey(now()), nil
	}
	return domain.ParseDateKey(date)
}

// day is everything a read-only analysis of one date needs.
type day struct {
	date      string
	profile   *domain.Profile
	aggregate *domain.DailyAggregate
	report    domain.GapReport
}

// loadDay reads the profile and the aggregate for date and analyzes them.
// A missing profile yields an empty report unless requireProfile is set.
func loadDay(
	ctx context.Context,
	profiles repository.ProfileRepository,
	aggregates repository.AggregateStore,
	userID uuid.UUID,
	date string,
	requireProfile bool,
) (*day, error) {
	profile, err := profiles.GetByUserID(ctx, userID)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		if requireProfile {
			return nil, domain.ErrProfileRequired
		}
		profile = nil
	case err != nil:
		return nil, err
	}

	agg, err := aggregates.Load(ctx, userID, date)
	if err != nil {
		return nil, err
	}

	var targets domain.NutrientVector
	if profile != nil {
		targets = profile.Targets
	}

	return &day{
		date:      date,
		profile:   profile,
		aggregate: agg,
		report:    nutrition.Analyze(nutrition.Totals(agg), targets),
	}, nil
}
