package handler

import (
	"context"
	"time"

	"github.com/blaisecz/nutrition-tracker/internal/domain"
	"github.com/google/uuid"
)

// MockProfileService is a mock implementation of ProfileService
type MockProfileService struct {
	createFunc func(ctx context.Context, userID uuid.UUID, req *domain.CreateProfileRequest) (*domain.Profile, error)
	getFunc    func(ctx context.Context, userID uuid.UUID) (*domain.Profile, error)
	updateFunc func(ctx context.Context, userID uuid.UUID, req *domain.UpdateProfileRequest) (*domain.Profile, error)
	deleteFunc func(ctx context.Context, userID uuid.UUID) error
}

func (m *MockProfileService) Create(ctx context.Context, userID uuid.UUID, req *domain.CreateProfileRequest) (*domain.Profile, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, userID, req)
	}
	return &domain.Profile{
		UserID:        userID,
		Age:           req.Age,
		HeightCM:      req.HeightCM,
		WeightKG:      req.WeightKG,
		Gender:        req.Gender,
		ActivityLevel: req.ActivityLevel,
		Goal:          domain.GoalMaintain,
		UpdatedAt:     time.Now(),
	}, nil
}

func (m *MockProfileService) Get(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, userID)
	}
	return nil, domain.ErrNotFound
}

func (m *MockProfileService) Update(ctx context.Context, userID uuid.UUID, req *domain.UpdateProfileRequest) (*domain.Profile, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, userID, req)
	}
	return nil, domain.ErrNotFound
}

func (m *MockProfileService) Delete(ctx context.Context, userID uuid.UUID) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, userID)
	}
	return nil
}

// MockIntakeService is a mock implementation of IntakeService
type MockIntakeService struct {
	logMealFunc    func(ctx context.Context, userID uuid.UUID, req *domain.LogMealRequest) (*domain.LogMealResponse, error)
	removeMealFunc func(ctx context.Context, userID uuid.UUID, date string, mealID int) (*domain.DailyIntakeResponse, error)
	getDailyFunc   func(ctx context.Context, userID uuid.UUID, date string) (*domain.DailyIntakeResponse, error)
	historyFunc    func(ctx context.Context, userID uuid.UUID, limit int) (*domain.MealHistoryResponse, error)
	resetDayFunc   func(ctx context.Context, userID uuid.UUID, date string) error
}

func (m *MockIntakeService) LogMeal(ctx context.Context, userID uuid.UUID, req *domain.LogMealRequest) (*domain.LogMealResponse, error) {
	if m.logMealFunc != nil {
		return m.logMealFunc(ctx, userID, req)
	}
	return &domain.LogMealResponse{
		Meal: domain.MealRecord{ID: 1, FoodName: req.FoodName},
		Date: "2024-01-16",
	}, nil
}

func (m *MockIntakeService) RemoveMeal(ctx context.Context, userID uuid.UUID, date string, mealID int) (*domain.DailyIntakeResponse, error) {
	if m.removeMealFunc != nil {
		return m.removeMealFunc(ctx, userID, date, mealID)
	}
	resp := domain.ToDailyIntakeResponse("2024-01-16", nil)
	return &resp, nil
}

func (m *MockIntakeService) GetDaily(ctx context.Context, userID uuid.UUID, date string) (*domain.DailyIntakeResponse, error) {
	if m.getDailyFunc != nil {
		return m.getDailyFunc(ctx, userID, date)
	}
	resp := domain.ToDailyIntakeResponse("2024-01-16", nil)
	return &resp, nil
}

func (m *MockIntakeService) History(ctx context.Context, userID uuid.UUID, limit int) (*domain.MealHistoryResponse, error) {
	if m.historyFunc != nil {
		return m.historyFunc(ctx, userID, limit)
	}
	return &domain.MealHistoryResponse{Data: []domain.MealHistoryItem{}}, nil
}

func (m *MockIntakeService) ResetDay(ctx context.Context, userID uuid.UUID, date string) error {
	if m.resetDayFunc != nil {
		return m.resetDayFunc(ctx, userID, date)
	}
	return nil
}

// MockAnalysisService is a mock implementation of AnalysisService
type MockAnalysisService struct {
	analyzeFunc func(ctx context.Context, userID uuid.UUID, date string) (*domain.AnalysisResponse, error)
}

func (m *MockAnalysisService) Analyze(ctx context.Context, userID uuid.UUID, date string) (*domain.AnalysisResponse, error) {
	if m.analyzeFunc != nil {
		return m.analyzeFunc(ctx, userID, date)
	}
	return &domain.AnalysisResponse{Date: "2024-01-16"}, nil
}

// MockRecommendationService is a mock implementation of RecommendationService
type MockRecommendationService struct {
	recommendFunc func(ctx context.Context, userID uuid.UUID, date string, limit int) (*domain.RecommendationsResponse, error)
	historyFunc   func(ctx context.Context, userID uuid.UUID, filter domain.HistoryFilter) (*domain.RecommendationHistoryResponse, error)
	feedbackFunc  func(ctx context.Context, userID uuid.UUID, req *domain.FeedbackRequest) (*domain.RecommendationFeedback, error)
}

func (m *MockRecommendationService) Recommend(ctx context.Context, userID uuid.UUID, date string, limit int) (*domain.RecommendationsResponse, error) {
	if m.recommendFunc != nil {
		return m.recommendFunc(ctx, userID, date, limit)
	}
	return &domain.RecommendationsResponse{Recommendations: []domain.Recommendation{}}, nil
}

func (m *MockRecommendationService) History(ctx context.Context, userID uuid.UUID, filter domain.HistoryFilter) (*domain.RecommendationHistoryResponse, error) {
	if m.historyFunc != nil {
		return m.historyFunc(ctx, userID, filter)
	}
	return &domain.RecommendationHistoryResponse{Data: []domain.RecommendationHistory{}}, nil
}

func (m *MockRecommendationService) Feedback(ctx context.Context, userID uuid.UUID, req *domain.FeedbackRequest) (*domain.RecommendationFeedback, error) {
	if m.feedbackFunc != nil {
		return m.feedbackFunc(ctx, userID, req)
	}
	return &domain.RecommendationFeedback{
		ID:           uuid.New(),
		UserID:       userID,
		FoodName:     req.FoodName,
		FeedbackType: req.FeedbackType,
		Comment:      req.Comment,
		CreatedAt:    time.Now(),
	}, nil
}

// MockCoachService is a mock implementation of CoachService
type MockCoachService struct {
	adviseFunc func(ctx context.Context, userID uuid.UUID, date string) (*domain.CoachResponse, error)
	rateFunc   func(ctx context.Context, userID uuid.UUID, req *domain.CoachRatingRequest) error
}

func (m *MockCoachService) Advise(ctx context.Context, userID uuid.UUID, date string) (*domain.CoachResponse, error) {
	if m.adviseFunc != nil {
		return m.adviseFunc(ctx, userID, date)
	}
	return &domain.CoachResponse{Summary: "ok", Observations: []string{}, Guidance: []string{}}, nil
}

func (m *MockCoachService) Rate(ctx context.Context, userID uuid.UUID, req *domain.CoachRatingRequest) error {
	if m.rateFunc != nil {
		return m.rateFunc(ctx, userID, req)
	}
	return nil
}
