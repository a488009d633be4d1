package domain

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Nutrient identifies one of the nine tracked nutrients.
// @Description Nutrient key.
type Nutrient string

const (
	Calories      Nutrient = "calories"
	Carbohydrates Nutrient = "carbohydrates"
	Sugars        Nutrient = "sugars"
	Protein       Nutrient = "protein"
	Fat           Nutrient = "fat"
	SaturatedFat  Nutrient = "saturated_fat"
	Cholesterol   Nutrient = "cholesterol"
	Sodium        Nutrient = "sodium"
	Fiber         Nutrient = "fiber"
)

// Nutrients lists every nutrient in canonical order. Reports and
// reasoning text are always emitted in this order.
var Nutrients = []Nutrient{
	Calories,
	Carbohydrates,
	Sugars,
	Protein,
	Fat,
	SaturatedFat,
	Cholesterol,
	Sodium,
	Fiber,
}

// IsValid reports whether n is one of the nine tracked nutrients.
func (n Nutrient) IsValid() bool {
	for _, known := range Nutrients {
		if n == known {
			return true
		}
	}
	return false
}

// DisplayName returns the human readable name with its unit.
func (n Nutrient) DisplayName() string {
	return fmt.Sprintf("%s (%s)", n.label(), n.Unit())
}

func (n Nutrient) label() string {
	switch n {
	case Calories:
		return "Calories"
	case Carbohydrates:
		return "Carbohydrates"
	case Sugars:
		return "Sugars"
	case Protein:
		return "Protein"
	case Fat:
		return "Fat"
	case SaturatedFat:
		return "Saturated fat"
	case Cholesterol:
		return "Cholesterol"
	case Sodium:
		return "Sodium"
	case Fiber:
		return "Fiber"
	}
	return string(n)
}

// Unit returns the measurement unit of the nutrient.
func (n Nutrient) Unit() string {
	switch n {
	case Calories:
		return "kcal"
	case Cholesterol, Sodium:
		return "mg"
	}
	return "g"
}

// NutrientVector is a fixed nine-key nutritional profile. Every key is
// always present; the zero value is the all-zero vector.
// @Description Amounts of the nine tracked nutrients.
type NutrientVector struct {
	Calories      float64 `gorm:"not null;default:0" json:"calories" example:"520"`
	Carbohydrates float64 `gorm:"not null;default:0" json:"carbohydrates" example:"64.2"`
	Sugars        float64 `gorm:"not null;default:0" json:"sugars" example:"6"`
	Protein       float64 `gorm:"not null;default:0" json:"protein" example:"22.5"`
	Fat           float64 `gorm:"not null;default:0" json:"fat" example:"18"`
	SaturatedFat  float64 `gorm:"not null;default:0" json:"saturated_fat" example:"4.1"`
	Cholesterol   float64 `gorm:"not null;default:0" json:"cholesterol" example:"45"`
	Sodium        float64 `gorm:"not null;default:0" json:"sodium" example:"980"`
	Fiber         float64 `gorm:"not null;default:0" json:"fiber" example:"5.5"`
}

// Get returns the amount of n. Unknown nutrients read as 0.
func (v NutrientVector) Get(n Nutrient) float64 {
	switch n {
	case Calories:
		return v.Calories
	case Carbohydrates:
		return v.Carbohydrates
	case Sugars:
		return v.Sugars
	case Protein:
		return v.Protein
	case Fat:
		return v.Fat
	case SaturatedFat:
		return v.SaturatedFat
	case Cholesterol:
		return v.Cholesterol
	case Sodium:
		return v.Sodium
	case Fiber:
		return v.Fiber
	}
	return 0
}

// Set assigns the amount of n. Unknown nutrients are ignored.
func (v *NutrientVector) Set(n Nutrient, value float64) {
	switch n {
	case Calories:
		v.Calories = value
	case Carbohydrates:
		v.Carbohydrates = value
	case Sugars:
		v.Sugars = value
	case Protein:
		v.Protein = value
	case Fat:
		v.Fat = value
	case SaturatedFat:
		v.SaturatedFat = value
	case Cholesterol:
		v.Cholesterol = value
	case Sodium:
		v.Sodium = value
	case Fiber:
		v.Fiber = value
	}
}

// Add returns the key-wise sum v + o.
func (v NutrientVector) Add(o NutrientVector) NutrientVector {
	return v.combine(o, func(a, b float64) float64 { return a + b })
}

// Sub returns the key-wise difference v - o. The result may be negative.
func (v NutrientVector) Sub(o NutrientVector) NutrientVector {
	return v.combine(o, func(a, b float64) float64 { return a - b })
}

// Scale returns v with every key multiplied by f.
func (v NutrientVector) Scale(f float64) NutrientVector {
	var out NutrientVector
	for _, n := range Nutrients {
		out.Set(n, v.Get(n)*f)
	}
	return out
}

// ClampNonNegative returns v with every negative key raised to 0.
func (v NutrientVector) ClampNonNegative() NutrientVector {
	var out NutrientVector
	for _, n := range Nutrients {
		out.Set(n, math.Max(0, v.Get(n)))
	}
	return out
}

// IsZero reports whether every key is 0.
func (v NutrientVector) IsZero() bool {
	return v == NutrientVector{}
}

// Validate rejects NaN, infinite and negative amounts.
func (v NutrientVector) Validate() error {
	for _, n := range Nutrients {
		value := v.Get(n)
		if math.IsNaN(value) || math.IsInf(value, 0) {
			return fmt.Errorf("%w: %s is not a finite number", ErrInvalidInput, n)
		}
		if value < 0 {
			return fmt.Errorf("%w: %s must not be negative", ErrInvalidInput, n)
		}
	}
	return nil
}

func (v NutrientVector) combine(o NutrientVector, op func(a, b float64) float64) NutrientVector {
	var out NutrientVector
	for _, n := range Nutrients {
		out.Set(n, op(v.Get(n), o.Get(n)))
	}
	return out
}

// ParseNutrientMap builds a vector from loosely keyed input such as a
// request body. Missing keys read as 0. Unknown keys are rejected rather
// than widening the vector.
func ParseNutrientMap(raw map[string]float64) (NutrientVector, error) {
	var v NutrientVector
	if len(raw) == 0 {
		return v, fmt.Errorf("%w: nutrients must not be empty", ErrInvalidInput)
	}

	keys := make([]string, 0, len(raw))
	for key := range raw {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var unknown []string
	seen := make(map[Nutrient]string, len(raw))
	for _, key := range keys {
		n := Nutrient(strings.TrimSpace(strings.ToLower(key)))
		if !n.IsValid() {
			unknown = append(unknown, key)
			continue
		}
		if prev, ok := seen[n]; ok {
			return NutrientVector{}, fmt.Errorf("%w: nutrient keys %q and %q both name %s", ErrInvalidInput, prev, key, n)
		}
		seen[n] = key
		v.Set(n, raw[key])
	}
	if len(unknown) > 0 {
		return NutrientVector{}, fmt.Errorf("%w: unknown nutrient keys %s", ErrInvalidInput, strings.Join(unknown, ", "))
	}

	if err := v.Validate(); err != nil {
		return NutrientVector{}, err
	}
	return v, nil
}
