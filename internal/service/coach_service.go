package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/blaisecz/nutrition-tracker/internal/domain"
	"github.com/blaisecz/nutrition-tracker/internal/langfuse"
	"github.com/blaisecz/nutrition-tracker/internal/llm"
	"github.com/blaisecz/nutrition-tracker/internal/metrics"
	"github.com/blaisecz/nutrition-tracker/internal/nutrition"
	"github.com/blaisecz/nutrition-tracker/internal/repository"
	"github.com/blaisecz/nutrition-tracker/internal/telemetry"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const coachTraceName = "nutrition-coach"

// CoachService narrates a day's analysis through the LLM coach.
type CoachService interface {
	Advise(ctx context.Context, userID uuid.UUID, date string) (*domain.CoachResponse, error)
	// Rate attaches a user rating to a previous answer's trace.
	Rate(ctx context.Context, userID uuid.UUID, req *domain.CoachRatingRequest) error
}

type coachService struct {
	profiles   repository.ProfileRepository
	aggregates repository.AggregateStore
	coach      llm.Coach
	tracing    langfuse.Client
	now        Clock
	logger     *zap.Logger
}

func NewCoachService(
	profiles repository.ProfileRepository,
	aggregates repository.AggregateStore,
	coach llm.Coach,
	tracing langfuse.Client,
	now Clock,
	logger *zap.Logger,
) CoachService {
	if now == nil {
		now = systemClock
	}
	return &coachService{
		profiles:   profiles,
		aggregates: aggregates,
		coach:      coach,
		tracing:    tracing,
		now:        now,
		logger:     logger.Named("coach"),
	}
}

func (s *coachService) Advise(ctx context.Context, userID uuid.UUID, date string) (*domain.CoachResponse, error) {
	ctx, span := telemetry.Tracer("coach").Start(ctx, "CoachService.Advise",
		trace.WithAttributes(attribute.String("user.id", userID.String())))
	defer span.End()

	if s.coach == nil {
		metrics.CoachRequests.WithLabelValues(metrics.OutcomeUnavailable).Inc()
		return nil, llm.ErrUnavailable
	}

	date, err := resolveDate(date, s.now)
	if err != nil {
		return nil, err
	}

	d, err := loadDay(ctx, s.profiles, s.aggregates, userID, date, true)
	if err != nil {
		return nil, err
	}

	meals := []string{}
	if d.aggregate != nil {
		for _, m := range d.aggregate.Meals {
			meals = append(meals, m.FoodName)
		}
	}

	summary := nutrition.Summarize(d.report)
	input := &domain.CoachContext{
		Profile:    d.profile.ToResponse(),
		Date:       date,
		Summary:    summary,
		Priorities: nutrition.Priorities(d.report),
		Current:    d.report.Current,
		Targets:    d.report.Targets,
		MealsToday: meals,
	}
	telemetry.SetInput(span, input)

	out, err := s.coach.Advise(ctx, input)
	if err != nil {
		telemetry.RecordError(span, err)
		outcome := metrics.OutcomeError
		if errors.Is(err, llm.ErrUnavailable) {
			outcome = metrics.OutcomeUnavailable
		}
		metrics.CoachRequests.WithLabelValues(outcome).Inc()
		s.logger.Warn("coach request failed", zap.String("user_id", userID.String()), zap.Error(err))
		return nil, err
	}
	telemetry.SetOutput(span, out)
	metrics.CoachRequests.WithLabelValues(metrics.OutcomeOK).Inc()

	traceID := telemetry.TraceID(ctx)
	if s.tracing != nil && s.tracing.IsEnabled() {
		id, err := s.tracing.CreateTrace(ctx, langfuse.TraceInput{
			ID:       traceID,
			UserID:   userID.String(),
			Name:     coachTraceName,
			Input:    input,
			Output:   out,
			Tags:     []string{"coach"},
			Metadata: map[string]any{"date": date, "score": d.report.Score},
		})
		if err != nil {
			s.logger.Warn("failed to create coach trace", zap.Error(err))
		} else {
			traceID = id
		}
	}

	return &domain.CoachResponse{
		Date:           date,
		Summary:        out.Summary,
		Observations:   out.Observations,
		Guidance:       out.Guidance,
		NutritionScore: d.report.Score,
		TraceID:        traceID,
	}, nil
}

func (s *coachService) Rate(ctx context.Context, userID uuid.UUID, req *domain.CoachRatingRequest) error {
	if s.tracing == nil || !s.tracing.IsEnabled() {
		return fmt.Errorf("%w: rating requires tracing", llm.ErrUnavailable)
	}
	if req.Rating < 1 || req.Rating > 5 {
		return fmt.Errorf("%w: rating must be between 1 and 5", domain.ErrInvalidInput)
	}

	err := s.tracing.CreateScore(ctx, langfuse.ScoreInput{
		TraceID: req.TraceID,
		Name:    "user_rating",
		Value:   float64(req.Rating),
		Comment: req.Comment,
	})
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	s.logger.Info("coach answer rated", zap.String("user_id", userID.String()), zap.Int("rating", req.Rating))
	return nil
}
