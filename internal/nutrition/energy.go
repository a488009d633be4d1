// Package nutrition implements the gap analysis and recommendation scoring
// engine: energy targets, intake accumulation, gap analysis, the balance
// score and food ranking. Everything here is synchronous and free of
// shared state; persistence and transport live in other packages.
package nutrition

import (
	"fmt"
	"math"

	"github.com/blaisecz/nutrition-tracker/internal/domain"
)

const (
	// Fixed daily targets that are not derived from calories.
	CholesterolTargetMG = 300.0
	SodiumTargetMG      = 2300.0
	FiberTargetG        = 25.0
	FiberTargetLoseG    = 30.0

	carbCalorieShare    = 0.50
	proteinCalorieShare = 0.20
	fatCalorieShare     = 0.30
	kcalPerGramCarb     = 4.0
	kcalPerGramProtein  = 4.0
	kcalPerGramFat      = 9.0
	sugarShareOfCarbs   = 0.10
	satFatShareOfFat    = 0.33
)

var activityMultipliers = map[domain.ActivityLevel]float64{
	domain.ActivityLow:      1.2,
	domain.ActivityModerate: 1.55,
	domain.ActivityHigh:     1.725,
}

var goalAdjustments = map[domain.Goal]float64{
	domain.GoalLose:     -500,
	domain.GoalMaintain: 0,
	domain.GoalGain:     300,
}

// round1 rounds to one decimal place.
func round1(x float64) float64 {
	return math.Round(x*10) / 10
}

// ComputeBMR estimates basal metabolic rate with the Harris-Benedict
// equation, rounded to one decimal.
func ComputeBMR(age int, heightCM, weightKG float64, gender domain.Gender) (float64, error) {
	var bmr float64
	switch gender {
	case domain.GenderMale:
		bmr = 88.362 + 13.397*weightKG + 4.799*heightCM - 5.677*float64(age)
	case domain.GenderFemale:
		bmr = 447.593 + 9.247*weightKG + 3.098*heightCM - 4.330*float64(age)
	default:
		return 0, fmt.Errorf("%w: unknown gender %q", domain.ErrInvalidProfile, gender)
	}
	return round1(bmr), nil
}

// ComputeTDEE scales BMR by the activity multiplier, rounded to one decimal.
func ComputeTDEE(bmr float64, activity domain.ActivityLevel) (float64, error) {
	multiplier, ok := activityMultipliers[activity]
	if !ok {
		return 0, fmt.Errorf("%w: unknown activity level %q", domain.ErrInvalidProfile, activity)
	}
	return round1(bmr * multiplier), nil
}

// ComputeTargets derives the nine daily targets from TDEE and goal.
func ComputeTargets(tdee float64, goal domain.Goal) (domain.NutrientVector, error) {
	adjustment, ok := goalAdjustments[goal]
	if !ok {
		return domain.NutrientVector{}, fmt.Errorf("%w: unknown goal %q", domain.ErrInvalidProfile, goal)
	}

	calories := tdee + adjustment
	carbs := calories * carbCalorieShare / kcalPerGramCarb
	protein := calories * proteinCalorieShare / kcalPerGramProtein
	fat := calories * fatCalorieShare / kcalPerGramFat

	fiber := FiberTargetG
	if goal == domain.GoalLose {
		fiber = FiberTargetLoseG
	}

	return domain.NutrientVector{
		Calories:      round1(calories),
		Carbohydrates: round1(carbs),
		Sugars:        round1(carbs * sugarShareOfCarbs),
		Protein:       round1(protein),
		Fat:           round1(fat),
		SaturatedFat:  round1(fat * satFatShareOfFat),
		Cholesterol:   CholesterolTargetMG,
		Sodium:        SodiumTargetMG,
		Fiber:         fiber,
	}, nil
}

// ValidateProfile checks the body metrics and enums of p.
func ValidateProfile(p *domain.Profile) error {
	if p.Age <= 0 {
		return fmt.Errorf("%w: age must be positive", domain.ErrInvalidProfile)
	}
	if !(p.HeightCM > 0) || math.IsInf(p.HeightCM, 0) {
		return fmt.Errorf("%w: height_cm must be positive", domain.ErrInvalidProfile)
	}
	if !(p.WeightKG > 0) || math.IsInf(p.WeightKG, 0) {
		return fmt.Errorf("%w: weight_kg must be positive", domain.ErrInvalidProfile)
	}
	if p.Gender != domain.GenderMale && p.Gender != domain.GenderFemale {
		return fmt.Errorf("%w: unknown gender %q", domain.ErrInvalidProfile, p.Gender)
	}
	if _, ok := activityMultipliers[p.ActivityLevel]; !ok {
		return fmt.Errorf("%w: unknown activity level %q", domain.ErrInvalidProfile, p.ActivityLevel)
	}
	if _, ok := goalAdjustments[p.Goal]; !ok {
		return fmt.Errorf("%w: unknown goal %q", domain.ErrInvalidProfile, p.Goal)
	}
	return nil
}

// Derive validates p and recomputes BMR, TDEE and targets in one pass.
// An empty goal is treated as maintain. Derived fields are left untouched
// on error.
func Derive(p *domain.Profile) error {
	if p.Goal == "" {
		p.Goal = domain.GoalMaintain
	}
	if err := ValidateProfile(p); err != nil {
		return err
	}

	bmr, err := ComputeBMR(p.Age, p.HeightCM, p.WeightKG, p.Gender)
	if err != nil {
		return err
	}
	tdee, err := ComputeTDEE(bmr, p.ActivityLevel)
	if err != nil {
		return err
	}
	targets, err := ComputeTargets(tdee, p.Goal)
	if err != nil {
		return err
	}

	p.BMR = bmr
	p.TDEE = tdee
	p.Targets = targets
	return nil
}
