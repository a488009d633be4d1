package domain

import (
	"time"

	"github.com/google/uuid"
)

// Gender selects the Harris-Benedict coefficient set.
// @Description Biological sex used for BMR: M or F.
type Gender string

const (
	GenderMale   Gender = "M"
	GenderFemale Gender = "F"
)

// ActivityLevel scales BMR into TDEE.
// @Description Daily activity level.
type ActivityLevel string

const (
	ActivityLow      ActivityLevel = "low"
	ActivityModerate ActivityLevel = "moderate"
	ActivityHigh     ActivityLevel = "high"
)

// Goal adjusts target calories.
// @Description Weight goal.
type Goal string

const (
	GoalLose     Goal = "lose"
	GoalMaintain Goal = "maintain"
	GoalGain     Goal = "gain"
)

// Profile holds a user's body metrics and the values derived from them.
// BMR, TDEE and Targets are always recomputed together from the inputs.
type Profile struct {
	UserID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"user_id"`
	Age           int            `gorm:"not null" json:"age"`
	HeightCM      float64        `gorm:"not null" json:"height_cm"`
	WeightKG      float64        `gorm:"not null" json:"weight_kg"`
	Gender        Gender         `gorm:"type:varchar(1);not null" json:"gender"`
	ActivityLevel ActivityLevel  `gorm:"type:varchar(16);not null" json:"activity_level"`
	Goal          Goal           `gorm:"type:varchar(16);not null;default:'maintain'" json:"goal"`
	BMR           float64        `gorm:"not null" json:"bmr"`
	TDEE          float64        `gorm:"not null" json:"tdee"`
	Targets       NutrientVector `gorm:"embedded;embeddedPrefix:target_" json:"targets"`
	CreatedAt     time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Profile) TableName() string {
	return "profiles"
}

// CreateProfileRequest is the request body for setting up a profile.
// @Description Body metrics used to derive daily nutrient targets.
type CreateProfileRequest struct {
	// Age in years
	Age int `json:"age" validate:"required,min=1,max=150" example:"30"`
	// Height in centimeters
	HeightCM float64 `json:"height_cm" validate:"required,gt=0,lte=300" example:"170"`
	// Weight in kilograms
	WeightKG float64 `json:"weight_kg" validate:"required,gt=0,lte=700" example:"70"`
	// M or F
	Gender Gender `json:"gender" validate:"required,oneof=M F" example:"M" enums:"M,F"`
	// low, moderate or high
	ActivityLevel ActivityLevel `json:"activity_level" validate:"required,oneof=low moderate high" example:"moderate" enums:"low,moderate,high"`
	// lose, maintain or gain (defaults to maintain)
	Goal Goal `json:"goal,omitempty" validate:"omitempty,oneof=lose maintain gain" example:"maintain" enums:"lose,maintain,gain"`
}

// UpdateProfileRequest is the request body for a partial profile update.
// Any change triggers a full recompute of the derived values.
type UpdateProfileRequest struct {
	Age           *int           `json:"age,omitempty" validate:"omitempty,min=1,max=150"`
	HeightCM      *float64       `json:"height_cm,omitempty" validate:"omitempty,gt=0,lte=300"`
	WeightKG      *float64       `json:"weight_kg,omitempty" validate:"omitempty,gt=0,lte=700"`
	Gender        *Gender        `json:"gender,omitempty" validate:"omitempty,oneof=M F"`
	ActivityLevel *ActivityLevel `json:"activity_level,omitempty" validate:"omitempty,oneof=low moderate high"`
	Goal          *Goal          `json:"goal,omitempty" validate:"omitempty,oneof=lose maintain gain"`
}

// ProfileResponse is the response body for profile endpoints.
// @Description Profile with derived BMR, TDEE and daily targets.
type ProfileResponse struct {
	UserID        uuid.UUID      `json:"user_id"`
	Age           int            `json:"age" example:"30"`
	HeightCM      float64        `json:"height_cm" example:"170"`
	WeightKG      float64        `json:"weight_kg" example:"70"`
	Gender        Gender         `json:"gender" example:"M"`
	ActivityLevel ActivityLevel  `json:"activity_level" example:"moderate"`
	Goal          Goal           `json:"goal" example:"maintain"`
	BMR           float64        `json:"bmr" example:"1671.7"`
	TDEE          float64        `json:"tdee" example:"2591.1"`
	Targets       NutrientVector `json:"targets"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

func (p *Profile) ToResponse() ProfileResponse {
	return ProfileResponse{
		UserID:        p.UserID,
		Age:           p.Age,
		HeightCM:      p.HeightCM,
		WeightKG:      p.WeightKG,
		Gender:        p.Gender,
		ActivityLevel: p.ActivityLevel,
		Goal:          p.Goal,
		BMR:           p.BMR,
		TDEE:          p.TDEE,
		Targets:       p.Targets,
		UpdatedAt:     p.UpdatedAt,
	}
}
