package service

import (
	"context"
	"fmt"
	"time"

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

const (
	DefaultRecommendationLimit = 5
	MaxRecommendationLimit     = 20
	// DefaultRecentMealSpan is how many of the day's latest meals are
	// excluded from recommendations.
	DefaultRecentMealSpan = 20
)

type RecommendationService interface {
	// Recommend ranks catalog foods against the day's gaps and records the
	// result in the user's history.
	Recommend(ctx context.Context, userID uuid.UUID, date string, limit int) (*domain.RecommendationsResponse, error)
	History(ctx context.Context, userID uuid.UUID, filter domain.HistoryFilter) (*domain.RecommendationHistoryResponse, error)
	Feedback(ctx context.Context, userID uuid.UUID, req *domain.FeedbackRequest) (*domain.RecommendationFeedback, error)
}

type recommendationService struct {
	profiles   repository.ProfileRepository
	aggregates repository.AggregateStore
	catalog    catalog.NutrientCatalog
	history    repository.HistoryRepository
	feedback   repository.FeedbackRepository
	recentSpan int
	now        Clock
	logger     *zap.Logger
}

type RecommendationConfig struct {
	// Meals at the end of the day excluded from ranking; 0 uses the default
	RecentMealSpan int
	Now            Clock
}

func NewRecommendationService(
	profiles repository.ProfileRepository,
	aggregates repository.AggregateStore,
	foods catalog.NutrientCatalog,
	history repository.HistoryRepository,
	feedback repository.FeedbackRepository,
	cfg RecommendationConfig,
	logger *zap.Logger,
) RecommendationService {
	if cfg.RecentMealSpan <= 0 {
		cfg.RecentMealSpan = DefaultRecentMealSpan
	}
	if cfg.Now == nil {
		cfg.Now = systemClock
	}
	return &recommendationService{
		profiles:   profiles,
		aggregates: aggregates,
		catalog:    foods,
		history:    history,
		feedback:   feedback,
		recentSpan: cfg.RecentMealSpan,
		now:        cfg.Now,
		logger:     logger.Named("recommendation"),
	}
}

func normalizeRecommendationLimit(limit int) int {
	if limit <= 0 {
		return DefaultRecommendationLimit
	}
	if limit > MaxRecommendationLimit {
		return MaxRecommendationLimit
	}
	return limit
}

func (s *recommendationService) Recommend(ctx context.Context, userID uuid.UUID, date string, limit int) (*domain.RecommendationsResponse, error) {
	ctx, span := telemetry.Tracer("recommendation").Start(ctx, "RecommendationService.Recommend",
		trace.WithAttributes(attribute.String("user.id", userID.String())))
	defer span.End()

	date, err := resolveDate(date, s.now)
	if err != nil {
		return nil, err
	}
	limit = normalizeRecommendationLimit(limit)

	d, err := loadDay(ctx, s.profiles, s.aggregates, userID, date, true)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	foods, err := s.catalog.List(ctx)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, fmt.Errorf("list catalog: %w", err)
	}

	recent := nutrition.RecentFoodNames(d.aggregate, s.recentSpan)

	start := time.Now()
	recs := nutrition.Rank(foods, d.report, recent, limit)
	metrics.RankingDuration.Observe(time.Since(start).Seconds())

	mode := metrics.ModeScored
	switch {
	case len(recs) == 0:
		mode = metrics.ModeEmpty
	case len(d.report.Deficient) == 0:
		mode = metrics.ModeBalanced
	}
	metrics.RecommendationsServed.WithLabelValues(mode).Inc()

	telemetry.SetInput(span, map[string]any{"date": date, "limit": limit, "recent": recent, "score": d.report.Score})
	telemetry.SetOutput(span, recs)

	if len(recs) > 0 {
		s.record(ctx, userID, recs, d.report.Score)
	}

	return &domain.RecommendationsResponse{
		Date:            date,
		Recommendations: recs,
		NutritionScore:  d.report.Score,
		Priorities:      nutrition.Priorities(d.report),
	}, nil
}

// record stores a served ranking. Failures are logged, not returned: the
// ranking has already been computed for the caller.
func (s *recommendationService) record(ctx context.Context, userID uuid.UUID, recs []domain.Recommendation, score float64) {
	names := make([]string, len(recs))
	for i, r := range recs {
		names[i] = r.FoodName
	}

	entry := &domain.RecommendationHistory{
		ID:        uuid.New(),
		UserID:    userID,
		Foods:     names,
		Reasoning: recs[0].Reasoning,
		Score:     score,
		CreatedAt: s.now(),
	}
	if err := s.history.Create(ctx, entry); err != nil {
		s.logger.Warn("failed to record recommendation history", zap.String("user_id", userID.String()), zap.Error(err))
	}
}

func (s *recommendationService) History(ctx context.Context, userID uuid.UUID, filter domain.HistoryFilter) (*domain.RecommendationHistoryResponse, error) {
	if _, err := pagination.DecodeCursor(filter.Cursor); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	filter.Limit = pagination.NormalizeLimit(filter.Limit)

	entries, err := s.history.List(ctx, userID, filter)
	if err != nil {
		return nil, err
	}

	resp := &domain.RecommendationHistoryResponse{Data: entries}
	if len(entries) > filter.Limit {
		resp.Data = entries[:filter.Limit]
		last := resp.Data[len(resp.Data)-1]
		resp.Pagination.HasMore = true
		resp.Pagination.NextCursor = pagination.NewCursor(last.ID, last.CreatedAt).Encode()
	}
	if resp.Data == nil {
		resp.Data = []domain.RecommendationHistory{}
	}
	return resp, nil
}

func (s *recommendationService) Feedback(ctx context.Context, userID uuid.UUID, req *domain.FeedbackRequest) (*domain.RecommendationFeedback, error) {
	switch req.FeedbackType {
	case domain.FeedbackLiked, domain.FeedbackDisliked, domain.FeedbackTried, domain.FeedbackNotInterested:
	default:
		return nil, fmt.Errorf("%w: unknown feedback_type %q", domain.ErrInvalidInput, req.FeedbackType)
	}

	fb := &domain.RecommendationFeedback{
		ID:           uuid.New(),
		UserID:       userID,
		FoodName:     req.FoodName,
		FeedbackType: req.FeedbackType,
		Comment:      req.Comment,
		CreatedAt:    s.now(),
	}
	if err := s.feedback.Create(ctx, fb); err != nil {
		return nil, err
	}

	s.logger.Info("recommendation feedback stored",
		zap.String("user_id", userID.String()),
		zap.String("food_name", fb.FoodName),
		zap.String("feedback_type", string(fb.FeedbackType)),
	)
	return fb, nil
}
