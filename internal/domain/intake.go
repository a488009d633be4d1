package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// DateLayout is the calendar-date key format for daily aggregates.
const DateLayout = "2006-01-02"

// DateKey formats t as a calendar-date key in t's own location.
func DateKey(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDateKey validates a YYYY-MM-DD date key.
func ParseDateKey(s string) (string, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return "", fmt.Errorf("%w: date must use YYYY-MM-DD", ErrInvalidInput)
	}
	return DateKey(t), nil
}

// DailyAggregate is the running intake total of one user on one calendar
// date. Totals always equal the key-wise sum of the live meals.
type DailyAggregate struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey" json:"-"`
	UserID     uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_daily_aggregates_user_date" json:"user_id"`
	Date       string         `gorm:"type:char(10);not null;uniqueIndex:idx_daily_aggregates_user_date" json:"date"`
	Totals     NutrientVector `gorm:"embedded;embeddedPrefix:total_" json:"totals"`
	Meals      []MealRecord   `gorm:"foreignKey:AggregateID;constraint:OnDelete:CASCADE" json:"meals"`
	NextMealID int            `gorm:"not null;default:1" json:"-"`
	CreatedAt  time.Time      `gorm:"autoCreateTime:false" json:"created_at"`
	UpdatedAt  time.Time      `gorm:"autoUpdateTime:false" json:"updated_at"`
}

func (DailyAggregate) TableName() string {
	return "daily_aggregates"
}

// NewDailyAggregate returns an empty aggregate for (userID, date).
func NewDailyAggregate(userID uuid.UUID, date string, now time.Time) *DailyAggregate {
	return &DailyAggregate{
		ID:         uuid.New(),
		UserID:     userID,
		Date:       date,
		Meals:      []MealRecord{},
		NextMealID: 1,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// Clone returns a deep copy so a caller can mutate it without touching a
// stored value.
func (a *DailyAggregate) Clone() *DailyAggregate {
	if a == nil {
		return nil
	}
	out := *a
	out.Meals = make([]MealRecord, len(a.Meals))
	for i, m := range a.Meals {
		out.Meals[i] = m.clone()
	}
	return &out
}

// MealRecord is one logged food within a daily aggregate. Records are
// immutable once created; they can only be removed.
type MealRecord struct {
	AggregateID     uuid.UUID      `gorm:"type:uuid;primaryKey" json:"-"`
	ID              int            `gorm:"primaryKey;autoIncrement:false" json:"id" example:"1"`
	FoodName        string         `gorm:"type:varchar(100);not null" json:"food_name" example:"bibimbap"`
	Nutrients       NutrientVector `gorm:"embedded;embeddedPrefix:n_" json:"nutrients"`
	ConfidenceScore *float64       `json:"confidence_score,omitempty" example:"0.92"`
	LoggedAt        time.Time      `gorm:"not null" json:"logged_at"`
}

func (MealRecord) TableName() string {
	return "meal_records"
}

func (m MealRecord) clone() MealRecord {
	if m.ConfidenceScore != nil {
		c := *m.ConfidenceScore
		m.ConfidenceScore = &c
	}
	return m
}

// LogMealRequest is the request body for logging a meal.
// @Description Meal log entry. When nutrients are omitted they are looked up in the food catalog.
type LogMealRequest struct {
	// Resolved food name (for example the classifier's top label)
	FoodName string `json:"food_name" validate:"required,max=100" example:"bibimbap"`
	// Optional explicit nutrient amounts keyed by nutrient name
	Nutrients map[string]float64 `json:"nutrients,omitempty"`
	// Optional classifier confidence in [0,1]
	ConfidenceScore *float64 `json:"confidence_score,omitempty" validate:"omitempty,gte=0,lte=1" example:"0.92"`
	// Optional calendar date (defaults to today)
	Date string `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02" example:"2024-01-16"`
}

// LogMealResponse is returned after a meal has been logged.
// @Description Logged meal with the updated day totals.
type LogMealResponse struct {
	Meal          MealRecord     `json:"meal"`
	Date          string         `json:"date" example:"2024-01-16"`
	CurrentTotals NutrientVector `json:"current_totals"`
	// True when the catalog had no data and the fallback vector was used
	UsedFallback bool `json:"used_fallback"`
	// Gap analysis against the profile targets (omitted without a profile)
	Analysis *GapReport `json:"analysis,omitempty"`
}

// DailyIntakeResponse is the response body for a day's intake.
// @Description Daily intake aggregate.
type DailyIntakeResponse struct {
	Date         string         `json:"date" example:"2024-01-16"`
	Totals       NutrientVector `json:"totals"`
	Meals        []MealRecord   `json:"meals"`
	TotalMeals   int            `json:"total_meals" example:"3"`
	LastMealTime *time.Time     `json:"last_meal_time,omitempty"`
	CreatedAt    *time.Time     `json:"created_at,omitempty"`
	UpdatedAt    *time.Time     `json:"updated_at,omitempty"`
}

// ToDailyIntakeResponse summarizes an aggregate. A nil aggregate renders
// as an empty day.
func ToDailyIntakeResponse(date string, a *DailyAggregate) DailyIntakeResponse {
	resp := DailyIntakeResponse{Date: date, Meals: []MealRecord{}}
	if a == nil {
		return resp
	}

	resp.Totals = a.Totals
	resp.Meals = a.Meals
	resp.TotalMeals = len(a.Meals)
	created, updated := a.CreatedAt, a.UpdatedAt
	resp.CreatedAt = &created
	resp.UpdatedAt = &updated

	for i := range a.Meals {
		t := a.Meals[i].LoggedAt
		if resp.LastMealTime == nil || t.After(*resp.LastMealTime) {
			resp.LastMealTime = &t
		}
	}
	return resp
}

// MealHistoryItem is one meal with the day it belongs to.
type MealHistoryItem struct {
	Date string     `json:"date" example:"2024-01-16"`
	Meal MealRecord `json:"meal"`
}

// MealHistoryResponse lists recent meals across days, newest first.
// @Description Recent meals, newest first.
type MealHistoryResponse struct {
	Data  []MealHistoryItem `json:"data"`
	Total int               `json:"total" example:"10"`
}
