// Package catalog provides food nutrient lookup with a defined fallback for
// foods that have no data.
package catalog

import (
	"context"
	"errors"
	"strings"

	"github.com/blaisecz/nutrition-tracker/internal/domain"
	"go.uber.org/zap"
)

// FallbackNutrients is the placeholder vector used for foods missing from
// the catalog.
var FallbackNutrients = domain.NutrientVector{
	Calories:      200,
	Carbohydrates: 30,
	Sugars:        5,
	Protein:       10,
	Fat:           8,
	SaturatedFat:  2,
	Cholesterol:   20,
	Sodium:        500,
	Fiber:         3,
}

// NutrientCatalog looks up nutrient data by food name.
type NutrientCatalog interface {
	// Lookup returns the food matching name case-insensitively, or
	// domain.ErrNotFound.
	Lookup(ctx context.Context, name string) (domain.FoodCandidate, error)
	// Fallback returns the placeholder candidate for name.
	Fallback(name string) domain.FoodCandidate
	// List returns every catalog food in a stable order.
	List(ctx context.Context) ([]domain.FoodCandidate, error)
}

// FallbackCandidate builds the placeholder candidate for name.
func FallbackCandidate(name string) domain.FoodCandidate {
	return domain.FoodCandidate{
		Name:        strings.TrimSpace(name),
		Nutrients:   FallbackNutrients,
		ServingSize: domain.DefaultServingSize,
		IsFallback:  true,
	}
}

// Resolve looks name up and substitutes the catalog's fallback when the
// food is unknown. This is the only place the fallback decision is made.
// Errors other than not-found are returned unchanged.
func Resolve(ctx context.Context, c NutrientCatalog, name string, logger *zap.Logger) (domain.FoodCandidate, error) {
	food, err := c.Lookup(ctx, name)
	if err == nil {
		return food, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return domain.FoodCandidate{}, err
	}

	if logger != nil {
		logger.Warn("nutrient data missing, using fallback",
			zap.String("food_name", name),
			zap.Error(domain.ErrMissingNutrientData),
		)
	}
	return c.Fallback(name), nil
}
