package service

import (
	"context"

	"github.com/blaisecz/nutrition-tracker/internal/domain"
	"github.com/blaisecz/nutrition-tracker/internal/nutrition"
	"github.com/blaisecz/nutrition-tracker/internal/repository"
	"github.com/blaisecz/nutrition-tracker/internal/telemetry"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// AnalysisService compares a day's intake with the profile targets.
type AnalysisService interface {
	// Analyze never requires a profile: without one the report is empty
	// and the summary status is unknown.
	Analyze(ctx context.Context, userID uuid.UUID, date string) (*domain.AnalysisResponse, error)
}

type analysisService struct {
	profiles   repository.ProfileRepository
	aggregates repository.AggregateStore
	now        Clock
}

func NewAnalysisService(profiles repository.ProfileRepository, aggregates repository.AggregateStore, now Clock) AnalysisService {
	if now == nil {
		now = systemClock
	}
	return &analysisService{profiles: profiles, aggregates: aggregates, now: now}
}

func (s *analysisService) Analyze(ctx context.Context, userID uuid.UUID, date string) (*domain.AnalysisResponse, error) {
	ctx, span := telemetry.Tracer("analysis").Start(ctx, "AnalysisService.Analyze",
		trace.WithAttributes(attribute.String("user.id", userID.String())))
	defer span.End()

	date, err := resolveDate(date, s.now)
	if err != nil {
		return nil, err
	}

	d, err := loadDay(ctx, s.profiles, s.aggregates, userID, date, false)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	resp := &domain.AnalysisResponse{
		Date:       date,
		Report:     d.report,
		Summary:    nutrition.Summarize(d.report),
		Priorities: nutrition.Priorities(d.report),
	}

	span.SetAttributes(
		attribute.String("date", date),
		attribute.Float64("nutrition.score", d.report.Score),
		attribute.String("nutrition.status", string(resp.Summary.OverallStatus)),
	)
	return resp, nil
}
