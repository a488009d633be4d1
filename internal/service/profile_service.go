package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/blaisecz/nutrition-tracker/internal/domain"
	"github.com/blaisecz/nutrition-tracker/internal/nutrition"
	"github.com/blaisecz/nutrition-tracker/internal/repository"
	"github.com/blaisecz/nutrition-tracker/internal/telemetry"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

type ProfileService interface {
	Create(ctx context.Context, userID uuid.UUID, req *domain.CreateProfileRequest) (*domain.Profile, error)
	Get(ctx context.Context, userID uuid.UUID) (*domain.Profile, error)
	// Update applies the set fields and recomputes every derived value.
	Update(ctx context.Context, userID uuid.UUID, req *domain.UpdateProfileRequest) (*domain.Profile, error)
	// Delete removes the profile together with the user's intake,
	// recommendation history and feedback.
	Delete(ctx context.Context, userID uuid.UUID) error
}

type profileService struct {
	profiles   repository.ProfileRepository
	aggregates repository.AggregateStore
	history    repository.HistoryRepository
	feedback   repository.FeedbackRepository
	logger     *zap.Logger
}

func NewProfileService(
	profiles repository.ProfileRepository,
	aggregates repository.AggregateStore,
	history repository.HistoryRepository,
	feedback repository.FeedbackRepository,
	logger *zap.Logger,
) ProfileService {
	return &profileService{
		profiles:   profiles,
		aggregates: aggregates,
		history:    history,
		feedback:   feedback,
		logger:     logger.Named("profile"),
	}
}

func (s *profileService) Create(ctx context.Context, userID uuid.UUID, req *domain.CreateProfileRequest) (*domain.Profile, error) {
	ctx, span := telemetry.Tracer("profile").Start(ctx, "ProfileService.Create",
		trace.WithAttributes(attribute.String("user.id", userID.String())))
	defer span.End()

	_, err := s.profiles.GetByUserID(ctx, userID)
	switch {
	case err == nil:
		return nil, fmt.Errorf("%w: profile already exists", domain.ErrConflict)
	case !errors.Is(err, domain.ErrNotFound):
		telemetry.RecordError(span, err)
		return nil, err
	}

	profile := &domain.Profile{
		UserID:        userID,
		Age:           req.Age,
		HeightCM:      req.HeightCM,
		WeightKG:      req.WeightKG,
		Gender:        req.Gender,
		ActivityLevel: req.ActivityLevel,
		Goal:          req.Goal,
	}
	if err := nutrition.Derive(profile); err != nil {
		return nil, err
	}

	if err := s.profiles.Create(ctx, profile); err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	s.logger.Info("profile created",
		zap.String("user_id", userID.String()),
		zap.Float64("tdee", profile.TDEE),
		zap.String("goal", string(profile.Goal)),
	)
	return profile, nil
}

func (s *profileService) Get(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	return s.profiles.GetByUserID(ctx, userID)
}

func (s *profileService) Update(ctx context.Context, userID uuid.UUID, req *domain.UpdateProfileRequest) (*domain.Profile, error) {
	ctx, span := telemetry.Tracer("profile").Start(ctx, "ProfileService.Update",
		trace.WithAttributes(attribute.String("user.id", userID.String())))
	defer span.End()

	profile, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	updated := *profile
	if req.Age != nil {
		updated.Age = *req.Age
	}
	if req.HeightCM != nil {
		updated.HeightCM = *req.HeightCM
	}
	if req.WeightKG != nil {
		updated.WeightKG = *req.WeightKG
	}
	if req.Gender != nil {
		updated.Gender = *req.Gender
	}
	if req.ActivityLevel != nil {
		updated.ActivityLevel = *req.ActivityLevel
	}
	if req.Goal != nil {
		updated.Goal = *req.Goal
	}

	if err := nutrition.Derive(&updated); err != nil {
		return nil, err
	}

	if err := s.profiles.Update(ctx, &updated); err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	s.logger.Info("profile updated", zap.String("user_id", userID.String()), zap.Float64("tdee", updated.TDEE))
	return &updated, nil
}

func (s *profileService) Delete(ctx context.Context, userID uuid.UUID) error {
	ctx, span := telemetry.Tracer("profile").Start(ctx, "ProfileService.Delete",
		trace.WithAttributes(attribute.String("user.id", userID.String())))
	defer span.End()

	if err := s.profiles.Delete(ctx, userID); err != nil {
		return err
	}

	if err := s.aggregates.DeleteUser(ctx, userID); err != nil {
		telemetry.RecordError(span, err)
		return fmt.Errorf("delete intake: %w", err)
	}
	if err := s.history.DeleteUser(ctx, userID); err != nil {
		telemetry.RecordError(span, err)
		return fmt.Errorf("delete recommendation history: %w", err)
	}
	if err := s.feedback.DeleteUser(ctx, userID); err != nil {
		telemetry.RecordError(span, err)
		return fmt.Errorf("delete feedback: %w", err)
	}

	s.logger.Info("profile deleted", zap.String("user_id", userID.String()))
	return nil
}
