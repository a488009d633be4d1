package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/blaisecz/nutrition-tracker/internal/catalog"
	"github.com/blaisecz/nutrition-tracker/internal/domain"
	"github.com/blaisecz/nutrition-tracker/internal/metrics"
	"github.com/blaisecz/nutrition-tracker/internal/nutrition"
	"github.com/blaisecz/nutrition-tracker/internal/repository"
	"github.com/blaisecz/nutrition-tracker/internal/telemetry"
	"github.com/blaisecz/nutrition-tracker/pkg/pagination"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// IntakeService records meals into daily aggregates.
type IntakeService interface {
	// LogMeal adds a meal to the day's aggregate. Nutrients come from the
	// request when given, otherwise from the catalog with fallback.
	LogMeal(ctx context.Context, userID uuid.UUID, req *domain.LogMealRequest) (*domain.LogMealResponse, error)
	// RemoveMeal deletes a live meal; unknown ids are ErrNotFound.
	RemoveMeal(ctx context.Context, userID uuid.UUID, date string, mealID int) (*domain.DailyIntakeResponse, error)
	GetDaily(ctx context.Context, userID uuid.UUID, date string) (*domain.DailyIntakeResponse, error)
	// History lists up to limit meals across days, newest first.
	History(ctx context.Context, userID uuid.UUID, limit int) (*domain.MealHistoryResponse, error)
	ResetDay(ctx context.Context, userID uuid.UUID, date string) error
}

type intakeService struct {
	aggregates  repository.AggregateStore
	profiles    repository.ProfileRepository
	catalog     catalog.NutrientCatalog
	accumulator *nutrition.Accumulator
	now         Clock
	logger      *zap.Logger
}

func NewIntakeService(
	aggregates repository.AggregateStore,
	profiles repository.ProfileRepository,
	foods catalog.NutrientCatalog,
	now Clock,
	logger *zap.Logger,
) IntakeService {
	if now == nil {
		now = systemClock
	}
	return &intakeService{
		aggregates:  aggregates,
		profiles:    profiles,
		catalog:     foods,
		accumulator: nutrition.NewAccumulator(now),
		now:         now,
		logger:      logger.Named("intake"),
	}
}

func (s *intakeService) LogMeal(ctx context.Context, userID uuid.UUID, req *domain.LogMealRequest) (*domain.LogMealResponse, error) {
	ctx, span := telemetry.Tracer("intake").Start(ctx, "IntakeService.LogMeal",
		trace.WithAttributes(
			attribute.String("user.id", userID.String()),
			attribute.String("food.name", req.FoodName),
		))
	defer span.End()

	date, err := resolveDate(req.Date, s.now)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.FoodName)
	if name == "" {
		return nil, fmt.Errorf("%w: food_name is required", domain.ErrInvalidInput)
	}

	var nutrients domain.NutrientVector
	source := metrics.SourceExplicit
	if len(req.Nutrients) > 0 {
		nutrients, err = domain.ParseNutrientMap(req.Nutrients)
		if err != nil {
			return nil, err
		}
	} else {
		food, err := catalog.Resolve(ctx, s.catalog, name, s.logger)
		if err != nil {
			telemetry.RecordError(span, err)
			return nil, fmt.Errorf("catalog lookup: %w", err)
		}
		nutrients = food.Nutrients
		source = metrics.SourceCatalog
		if food.IsFallback {
			source = metrics.SourceFallback
			metrics.CatalogFallbacks.Inc()
		} else if food.Name != "" {
			name = food.Name
		}
	}

	var meal domain.MealRecord
	agg, err := s.aggregates.Update(ctx, userID, date, func(agg *domain.DailyAggregate) error {
		m, err := s.accumulator.AddMeal(agg, name, nutrients, req.ConfidenceScore)
		if err != nil {
			return err
		}
		meal = m
		return nil
	})
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	metrics.MealsLogged.WithLabelValues(source).Inc()

	resp := &domain.LogMealResponse{
		Meal:          meal,
		Date:          date,
		CurrentTotals: agg.Totals,
		UsedFallback:  source == metrics.SourceFallback,
	}

	profile, err := s.profiles.GetByUserID(ctx, userID)
	switch {
	case err == nil:
		report := nutrition.Analyze(agg.Totals, profile.Targets)
		resp.Analysis = &report
	case !errors.Is(err, domain.ErrNotFound):
		// The meal is stored; a failed analysis only drops the preview.
		s.logger.Warn("analysis after meal log failed", zap.String("user_id", userID.String()), zap.Error(err))
	}

	span.SetAttributes(attribute.String("meal.source", source), attribute.Int("meal.id", meal.ID))
	s.logger.Info("meal logged",
		zap.String("user_id", userID.String()),
		zap.String("date", date),
		zap.Int("meal_id", meal.ID),
		zap.String("food_name", meal.FoodName),
		zap.String("source", source),
	)
	return resp, nil
}

func (s *intakeService) RemoveMeal(ctx context.Context, userID uuid.UUID, date string, mealID int) (*domain.DailyIntakeResponse, error) {
	ctx, span := telemetry.Tracer("intake").Start(ctx, "IntakeService.RemoveMeal",
		trace.WithAttributes(
			attribute.String("user.id", userID.String()),
			attribute.Int("meal.id", mealID),
		))
	defer span.End()

	date, err := resolveDate(date, s.now)
	if err != nil {
		return nil, err
	}

	existing, err := s.aggregates.Load(ctx, userID, date)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, fmt.Errorf("%w: no meals logged on %s", domain.ErrNotFound, date)
	}

	agg, err := s.aggregates.Update(ctx, userID, date, func(agg *domain.DailyAggregate) error {
		if !s.accumulator.RemoveMeal(agg, mealID) {
			return fmt.Errorf("%w: meal %d", domain.ErrNotFound, mealID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	metrics.MealsRemoved.Inc()

	s.logger.Info("meal removed", zap.String("user_id", userID.String()), zap.String("date", date), zap.Int("meal_id", mealID))
	resp := domain.ToDailyIntakeResponse(date, agg)
	return &resp, nil
}

func (s *intakeService) GetDaily(ctx context.Context, userID uuid.UUID, date string) (*domain.DailyIntakeResponse, error) {
	date, err := resolveDate(date, s.now)
	if err != nil {
		return nil, err
	}

	agg, err := s.aggregates.Load(ctx, userID, date)
	if err != nil {
		return nil, err
	}
	resp := domain.ToDailyIntakeResponse(date, agg)
	return &resp, nil
}

func (s *intakeService) History(ctx context.Context, userID uuid.UUID, limit int) (*domain.MealHistoryResponse, error) {
	limit = pagination.NormalizeLimit(limit)

	dates, err := s.aggregates.ListDates(ctx, userID)
	if err != nil {
		return nil, err
	}

	items := make([]domain.MealHistoryItem, 0, limit)
	for _, date := range dates {
		if len(items) >= limit {
			break
		}
		agg, err := s.aggregates.Load(ctx, userID, date)
		if err != nil {
			return nil, err
		}
		if agg == nil {
			continue
		}
		for i := len(agg.Meals) - 1; i >= 0 && len(items) < limit; i-- {
			items = append(items, domain.MealHistoryItem{Date: date, Meal: agg.Meals[i]})
		}
	}

	return &domain.MealHistoryResponse{Data: items, Total: len(items)}, nil
}

func (s *intakeService) ResetDay(ctx context.Context, userID uuid.UUID, date string) error {
	date, err := resolveDate(date, s.now)
	if err != nil {
		return err
	}
	if err := s.aggregates.Delete(ctx, userID, date); err != nil {
		return err
	}
	s.logger.Info("day reset", zap.String("user_id", userID.String()), zap.String("date", date))
	return nil
}
