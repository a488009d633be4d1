package service

import (
	"testing"

	"github.com/blaisecz/nutrition-tracker/internal/catalog"
	"github.com/blaisecz/nutrition-tracker/internal/domain"
	"github.com/blaisecz/nutrition-tracker/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	chicken = domain.FoodCandidate{Name: "Grilled Chicken Breast", ServingSize: 100,
		Nutrients: domain.NutrientVector{Calories: 165, Protein: 31, Fat: 3.6, SaturatedFat: 1, Cholesterol: 85, Sodium: 74}}
	brownRice = domain.FoodCandidate{Name: "Brown Rice", ServingSize: 195,
		Nutrients: domain.NutrientVector{Calories: 216, Carbohydrates: 45, Sugars: 0.7, Protein: 5, Fat: 1.8, Sodium: 10, Fiber: 3.5}}
	lentilSoup = domain.FoodCandidate{Name: "Lentil Soup", ServingSize: 250,
		Nutrients: domain.NutrientVector{Calories: 180, Carbohydrates: 30, Protein: 12, Fat: 2, Sodium: 400, Fiber: 8}}
	bibimbap = domain.FoodCandidate{Name: "Bibimbap", ServingSize: 400,
		Nutrients: domain.NutrientVector{Calories: 560, Carbohydrates: 84.5, Sugars: 7.2, Protein: 21, Fat: 15.3, SaturatedFat: 3.1, Cholesterol: 180, Sodium: 1120, Fiber: 6.4}}
)

type fixture struct {
	userID     uuid.UUID
	profiles   *MockProfileRepository
	aggregates repository.AggregateStore
	catalog    *catalog.MemoryCatalog
	history    *MockHistoryRepository
	feedback   *MockFeedbackRepository
	logger     *zap.Logger
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	return &fixture{
		userID:     uuid.New(),
		profiles:   NewMockProfileRepository(),
		aggregates: repository.NewMemoryAggregateStore(),
		catalog:    catalog.NewMemoryCatalog(chicken, brownRice, lentilSoup, bibimbap),
		history:    &MockHistoryRepository{},
		feedback:   &MockFeedbackRepository{},
		logger:     zap.NewNop(),
	}
}

func (f *fixture) profileService() ProfileService {
	return NewProfileService(f.profiles, f.aggregates, f.history, f.feedback, f.logger)
}

func (f *fixture) intakeService() IntakeService {
	return NewIntakeService(f.aggregates, f.profiles, f.catalog, fixedClock, f.logger)
}

func (f *fixture) analysisService() AnalysisService {
	return NewAnalysisService(f.profiles, f.aggregates, fixedClock)
}

func (f *fixture) recommendationService() RecommendationService {
	return NewRecommendationService(f.profiles, f.aggregates, f.catalog, f.history, f.feedback,
		RecommendationConfig{Now: fixedClock}, f.logger)
}

// withProfile stores the reference profile: male, 30 y, 170 cm, 70 kg,
// moderate activity, maintain.
func (f *fixture) withProfile(t *testing.T) *domain.Profile {
	t.Helper()
	p, err := f.profileService().Create(t.Context(), f.userID, &domain.CreateProfileRequest{
		Age: 30, HeightCM: 170, WeightKG: 70, Gender: domain.GenderMale, ActivityLevel: domain.ActivityModerate,
	})
	if err != nil {
		t.Fatalf("create profile: %v", err)
	}
	return p
}
