package catalog

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/blaisecz/nutrition-tracker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestMemoryCatalog_LookupIsCaseInsensitive(t *testing.T) {
	c := NewMemoryCatalog(domain.FoodCandidate{Name: "Kimchi", Nutrients: domain.NutrientVector{Calories: 30}})

	food, err := c.Lookup(context.Background(), "  kimchi ")
	require.NoError(t, err)
	assert.Equal(t, "Kimchi", food.Name)
	assert.Equal(t, domain.DefaultServingSize, food.ServingSize)

	_, err = c.Lookup(context.Background(), "pizza")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMemoryCatalog_ListSorted(t *testing.T) {
	c := NewMemoryCatalog(
		domain.FoodCandidate{Name: "tofu"},
		domain.FoodCandidate{Name: "Apple"},
		domain.FoodCandidate{Name: "miso soup"},
	)

	foods, err := c.List(context.Background())
	require.NoError(t, err)
	var names []string
	for _, f := range foods {
		names = append(names, f.Name)
	}
	assert.Equal(t, []string{"Apple", "miso soup", "tofu"}, names)
	assert.Equal(t, 3, c.Len())
}

func TestResolve_UsesFallbackForUnknownFood(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	c := NewMemoryCatalog(domain.FoodCandidate{Name: "rice", Nutrients: domain.NutrientVector{Calories: 300}})

	known, err := Resolve(context.Background(), c, "rice", zap.New(core))
	require.NoError(t, err)
	assert.False(t, known.IsFallback)
	assert.Equal(t, 0, logs.Len())

	unknown, err := Resolve(context.Background(), c, "dragon fruit", zap.New(core))
	require.NoError(t, err)
	assert.True(t, unknown.IsFallback)
	assert.Equal(t, "dragon fruit", unknown.Name)
	assert.Equal(t, FallbackNutrients, unknown.Nutrients)
	assert.Equal(t, 100.0, unknown.ServingSize)
	assert.Equal(t, 1, logs.Len())
}

type failingCatalog struct{ MemoryCatalog }

func (*failingCatalog) Lookup(context.Context, string) (domain.FoodCandidate, error) {
	return domain.FoodCandidate{}, errors.New("connection refused")
}

func TestResolve_PropagatesStoreErrors(t *testing.T) {
	_, err := Resolve(context.Background(), &failingCatalog{}, "rice", nil)
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrNotFound)
}

func TestLoadExportFile(t *testing.T) {
	food, err := LoadExportFile(filepath.Join("testdata", "bibimbap.json"))
	require.NoError(t, err)

	assert.Equal(t, "bibimbap", food.Name)
	assert.Equal(t, 400.0, food.ServingSize)
	assert.Equal(t, domain.NutrientVector{
		Calories:      560,
		Carbohydrates: 84.5,
		Sugars:        7.2,
		Protein:       21,
		Fat:           15.3,
		SaturatedFat:  3.1,
		Cholesterol:   180,
		Sodium:        1120,
		Fiber:         6.4,
	}, food.Nutrients)

	_, err = LoadExportFile(filepath.Join("testdata", "broken.json"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLoadYAMLFile(t *testing.T) {
	foods, err := LoadYAMLFile(filepath.Join("testdata", "staples.yaml"))
	require.NoError(t, err)
	require.Len(t, foods, 2)

	assert.Equal(t, "Grilled Chicken Breast", foods[0].Name)
	assert.Equal(t, 150.0, foods[0].ServingSize)
	assert.Equal(t, 46.5, foods[0].Nutrients.Protein)
	assert.Equal(t, domain.DefaultServingSize, foods[1].ServingSize)
	assert.Equal(t, 3.5, foods[1].Nutrients.Fiber)
}

func TestLoadDir(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)

	foods, err := LoadDir("testdata", zap.New(core))
	require.NoError(t, err)

	var names []string
	for _, f := range foods {
		names = append(names, f.Name)
	}
	assert.Equal(t, []string{"bibimbap", "Brown Rice", "Grilled Chicken Breast"}, names)
	assert.Equal(t, 1, logs.FilterMessage("skipping catalog file").Len())

	_, err = LoadDir(filepath.Join("testdata", "missing"), nil)
	assert.Error(t, err)
}
