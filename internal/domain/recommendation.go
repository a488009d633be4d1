package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultServingSize is the serving size in grams assumed when a catalog
// entry does not state one.
const DefaultServingSize = 100.0

// FoodCandidate is a catalog food that can be logged or recommended.
// @Description Catalog food with its nutrients per serving.
type FoodCandidate struct {
	Name        string         `json:"name" example:"bibimbap"`
	Nutrients   NutrientVector `json:"nutrients"`
	ServingSize float64        `json:"serving_size" example:"100"`
	// True when the nutrients are the placeholder fallback vector
	IsFallback bool `json:"is_fallback"`
}

// FoodItem is a persisted catalog entry.
type FoodItem struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name        string         `gorm:"type:varchar(100);not null" json:"name"`
	NameKey     string         `gorm:"type:varchar(100);not null;uniqueIndex" json:"-"`
	Nutrients   NutrientVector `gorm:"embedded" json:"nutrients"`
	ServingSize float64        `gorm:"not null;default:100" json:"serving_size"`
	Source      string         `gorm:"type:varchar(255)" json:"source,omitempty"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"created_at"`
}

func (FoodItem) TableName() string {
	return "foods"
}

// FoodKey normalizes a food name for case-insensitive lookup.
func FoodKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func (f *FoodItem) ToCandidate() FoodCandidate {
	size := f.ServingSize
	if size <= 0 {
		size = DefaultServingSize
	}
	return FoodCandidate{
		Name:        f.Name,
		Nutrients:   f.Nutrients,
		ServingSize: size,
	}
}

// Recommendation is one ranked food suggestion.
// @Description Ranked food with score and explanation.
type Recommendation struct {
	FoodName    string         `json:"food_name" example:"grilled chicken salad"`
	Nutrients   NutrientVector `json:"nutrients"`
	ServingSize float64        `json:"serving_size" example:"100"`
	Score       float64        `json:"score" example:"48.3"`
	Reasoning   string         `json:"reasoning" example:"Protein (g) boost, Fiber (g) boost"`
	Benefits    []string       `json:"benefits" example:"high protein,supports muscle health and satiety"`
}

// RecommendationsResponse is the response body for the recommendations endpoint.
// @Description Ranked recommendations with the gap report they were computed from.
type RecommendationsResponse struct {
	Date            string           `json:"date" example:"2024-01-16"`
	Recommendations []Recommendation `json:"recommendations"`
	NutritionScore  float64          `json:"nutrition_score" example:"64.4"`
	Priorities      []PriorityItem   `json:"priorities"`
}

// RecommendationHistory records one served set of recommendations.
type RecommendationHistory struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index:idx_recommendation_history_user_created" json:"user_id"`
	Foods     []string  `gorm:"type:text;serializer:json" json:"foods"`
	Reasoning string    `gorm:"type:text" json:"reasoning"`
	// Balance score of the day when the ranking was produced
	Score     float64   `gorm:"not null" json:"score"`
	CreatedAt time.Time `gorm:"not null;index:idx_recommendation_history_user_created,sort:desc" json:"created_at"`
}

func (RecommendationHistory) TableName() string {
	return "recommendation_history"
}

// HistoryFilter contains paging parameters for recommendation history.
type HistoryFilter struct {
	Limit  int
	Cursor string
}

// RecommendationHistoryResponse is a page of recommendation history.
// @Description Paginated recommendation history, newest first.
type RecommendationHistoryResponse struct {
	Data       []RecommendationHistory `json:"data"`
	Pagination PaginationResponse      `json:"pagination"`
}

// PaginationResponse contains pagination metadata.
// @Description Cursor-based pagination info.
type PaginationResponse struct {
	// Cursor for fetching the next page (empty if no more pages)
	NextCursor string `json:"next_cursor,omitempty" example:"eyJpZCI6IjU1MGU4NDAwLWUyOWItNDFkNC1hNzE2LTQ0NjY1NTQ0MDAwMCJ9"`
	// True if more results are available
	HasMore bool `json:"has_more" example:"true"`
}

// FeedbackType classifies a user's reaction to a recommended food.
// @Description Feedback kind.
type FeedbackType string

const (
	FeedbackLiked         FeedbackType = "liked"
	FeedbackDisliked      FeedbackType = "disliked"
	FeedbackTried         FeedbackType = "tried"
	FeedbackNotInterested FeedbackType = "not_interested"
)

// RecommendationFeedback stores a user's reaction to a recommended food.
type RecommendationFeedback struct {
	ID           uuid.UUID    `gorm:"type:uuid;primaryKey" json:"id"`
	UserID       uuid.UUID    `gorm:"type:uuid;not null;index:idx_recommendation_feedback_user_created" json:"user_id"`
	FoodName     string       `gorm:"type:varchar(100);not null" json:"food_name"`
	FeedbackType FeedbackType `gorm:"type:varchar(20);not null" json:"feedback_type"`
	Comment      string       `gorm:"type:text" json:"comment,omitempty"`
	CreatedAt    time.Time    `gorm:"not null;index:idx_recommendation_feedback_user_created,sort:desc" json:"created_at"`
}

func (RecommendationFeedback) TableName() string {
	return "recommendation_feedback"
}

// FeedbackRequest is the request body for recommendation feedback.
// @Description Reaction to a recommended food.
type FeedbackRequest struct {
	FoodName     string       `json:"food_name" validate:"required,max=100" example:"grilled chicken salad"`
	FeedbackType FeedbackType `json:"feedback_type" validate:"required,oneof=liked disliked tried not_interested" example:"liked" enums:"liked,disliked,tried,not_interested"`
	Comment      string       `json:"comment,omitempty" validate:"omitempty,max=500" example:"Tasty and filling"`
}

// CoachResponse is the response body for the coach endpoint.
// @Description LLM narrative built from the day's gap analysis.
type CoachResponse struct {
	Date           string   `json:"date" example:"2024-01-16"`
	Summary        string   `json:"summary" example:"You are well short of protein today..."`
	Observations   []string `json:"observations"`
	Guidance       []string `json:"guidance"`
	NutritionScore float64  `json:"nutrition_score" example:"64.4"`
	// Trace ID for correlating with the LLM trace (only when tracing is enabled)
	TraceID string `json:"trace_id,omitempty"`
}

// CoachOutput is the structured output requested from the LLM.
type CoachOutput struct {
	Summary      string   `json:"summary"`
	Observations []string `json:"observations"`
	Guidance     []string `json:"guidance"`
}

// CoachContext is the context object sent to the LLM.
type CoachContext struct {
	Profile    ProfileResponse `json:"profile"`
	Date       string          `json:"date"`
	Summary    AnalysisSummary `json:"summary"`
	Priorities []PriorityItem  `json:"priorities"`
	Current    NutrientVector  `json:"current"`
	Targets    NutrientVector  `json:"targets"`
	MealsToday []string        `json:"meals_today"`
}

// CoachRatingRequest rates a coach answer by its trace id.
// @Description User rating of a coach answer.
type CoachRatingRequest struct {
	TraceID string `json:"trace_id" validate:"required,max=64" example:"4bf92f3577b34da6a3ce929d0e0e4736"`
	// 1 (useless) to 5 (very helpful)
	Rating  int    `json:"rating" validate:"required,min=1,max=5" example:"4"`
	Comment string `json:"comment,omitempty" validate:"omitempty,max=500" example:"Helpful suggestions"`
}

// FoodListResponse is the response body for the catalog listing.
// @Description Catalog foods in name order.
type FoodListResponse struct {
	Data  []FoodCandidate `json:"data"`
	Total int             `json:"total" example:"42"`
}
