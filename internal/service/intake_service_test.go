package service

import (
	"context"
	"testing"

	"github.com/blaisecz/nutrition-tracker/internal/catalog"
	"github.com/blaisecz/nutrition-tracker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntakeService_LogMealFromCatalog(t *testing.T) {
	f := newFixture(t)
	confidence := 0.92

	resp, err := f.intakeService().LogMeal(context.Background(), f.userID, &domain.LogMealRequest{
		FoodName:        "  BIBIMBAP ",
		ConfidenceScore: &confidence,
	})
	require.NoError(t, err)

	assert.Equal(t, "2024-01-16", resp.Date)
	assert.Equal(t, 1, resp.Meal.ID)
	assert.Equal(t, "Bibimbap", resp.Meal.FoodName)
	assert.Equal(t, bibimbap.Nutrients, resp.CurrentTotals)
	assert.False(t, resp.UsedFallback)
	assert.Nil(t, resp.Analysis, "no profile, no analysis")
	require.NotNil(t, resp.Meal.ConfidenceScore)
	assert.Equal(t, 0.92, *resp.Meal.ConfidenceScore)
	assert.Equal(t, testNow, resp.Meal.LoggedAt)
}

func TestIntakeService_LogMealFallback(t *testing.T) {
	f := newFixture(t)

	resp, err := f.intakeService().LogMeal(context.Background(), f.userID, &domain.LogMealRequest{FoodName: "dragon fruit tart"})
	require.NoError(t, err)

	assert.True(t, resp.UsedFallback)
	assert.Equal(t, "dragon fruit tart", resp.Meal.FoodName)
	assert.Equal(t, catalog.FallbackNutrients, resp.CurrentTotals)
}

func TestIntakeService_LogMealExplicitNutrients(t *testing.T) {
	f := newFixture(t)

	resp, err := f.intakeService().LogMeal(context.Background(), f.userID, &domain.LogMealRequest{
		FoodName:  "homemade soup",
		Nutrients: map[string]float64{"calories": 120, "Protein": 6, "fiber": 4},
		Date:      "2024-01-10",
	})
	require.NoError(t, err)

	assert.Equal(t, "2024-01-10", resp.Date)
	assert.Equal(t, domain.NutrientVector{Calories: 120, Protein: 6, Fiber: 4}, resp.CurrentTotals)
	assert.False(t, resp.UsedFallback)
}

func TestIntakeService_LogMealRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		req  domain.LogMealRequest
	}{
		{"blank name", domain.LogMealRequest{FoodName: "   "}},
		{"unknown nutrient", domain.LogMealRequest{FoodName: "x", Nutrients: map[string]float64{"vitamin_c": 10}}},
		{"negative nutrient", domain.LogMealRequest{FoodName: "x", Nutrients: map[string]float64{"fat": -1}}},
		{"bad date", domain.LogMealRequest{FoodName: "x", Date: "16/01/2024"}},
		{"confidence above one", domain.LogMealRequest{FoodName: "bibimbap", ConfidenceScore: ptr(1.5)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			_, err := f.intakeService().LogMeal(context.Background(), f.userID, &tt.req)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)

			dates, err := f.aggregates.ListDates(context.Background(), f.userID)
			require.NoError(t, err)
			assert.Empty(t, dates)
		})
	}
}

func TestIntakeService_LogMealWithProfileIncludesAnalysis(t *testing.T) {
	f := newFixture(t)
	f.withProfile(t)

	resp, err := f.intakeService().LogMeal(context.Background(), f.userID, &domain.LogMealRequest{
		FoodName:  "big lunch",
		Nutrients: map[string]float64{"calories": 1000},
	})
	require.NoError(t, err)
	require.NotNil(t, resp.Analysis)
	assert.InDelta(t, 38.6, resp.Analysis.Percentages[domain.Calories], 1e-9)
	assert.Equal(t, domain.Calories, resp.Analysis.Buckets.HighDeficient[0].Nutrient)
}

func TestIntakeService_RemoveMeal(t *testing.T) {
	f := newFixture(t)
	svc := f.intakeService()
	ctx := context.Background()

	for _, name := range []string{"bibimbap", "brown rice"} {
		_, err := svc.LogMeal(ctx, f.userID, &domain.LogMealRequest{FoodName: name})
		require.NoError(t, err)
	}

	daily, err := svc.RemoveMeal(ctx, f.userID, "", 1)
	require.NoError(t, err)
	assert.Equal(t, 1, daily.TotalMeals)
	assert.Equal(t, 2, daily.Meals[0].ID)
	assert.Equal(t, brownRice.Nutrients, daily.Totals)

	_, err = svc.RemoveMeal(ctx, f.userID, "", 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	resp, err := svc.LogMeal(ctx, f.userID, &domain.LogMealRequest{FoodName: "lentil soup"})
	require.NoError(t, err)
	assert.Equal(t, 3, resp.Meal.ID, "ids are never reused")
}

func TestIntakeService_RemoveMiddleMealKeepsExactTotals(t *testing.T) {
	f := newFixture(t)
	svc := f.intakeService()
	ctx := context.Background()

	for _, name := range []string{"bibimbap", "brown rice", "lentil soup"} {
		_, err := svc.LogMeal(ctx, f.userID, &domain.LogMealRequest{FoodName: name, Date: "2024-01-16"})
		require.NoError(t, err)
	}

	daily, err := svc.RemoveMeal(ctx, f.userID, "2024-01-16", 2)
	require.NoError(t, err)
	require.Equal(t, 2, daily.TotalMeals)
	assert.Equal(t, domain.NutrientVector{}.Add(bibimbap.Nutrients).Add(lentilSoup.Nutrients), daily.Totals)

	stored, err := f.aggregates.Load(ctx, f.userID, "2024-01-16")
	require.NoError(t, err)
	assert.Equal(t, daily.Totals, stored.Totals)
}

func TestIntakeService_RemoveMealOnEmptyDay(t *testing.T) {
	f := newFixture(t)

	_, err := f.intakeService().RemoveMeal(context.Background(), f.userID, "2024-01-01", 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	dates, err := f.aggregates.ListDates(context.Background(), f.userID)
	require.NoError(t, err)
	assert.Empty(t, dates)
}

func TestIntakeService_GetDailyAndReset(t *testing.T) {
	f := newFixture(t)
	svc := f.intakeService()
	ctx := context.Background()

	empty, err := svc.GetDaily(ctx, f.userID, "")
	require.NoError(t, err)
	assert.Equal(t, "2024-01-16", empty.Date)
	assert.Empty(t, empty.Meals)
	assert.Nil(t, empty.LastMealTime)

	_, err = svc.LogMeal(ctx, f.userID, &domain.LogMealRequest{FoodName: "bibimbap"})
	require.NoError(t, err)

	daily, err := svc.GetDaily(ctx, f.userID, "2024-01-16")
	require.NoError(t, err)
	assert.Equal(t, 1, daily.TotalMeals)
	require.NotNil(t, daily.LastMealTime)
	assert.Equal(t, testNow, *daily.LastMealTime)

	require.NoError(t, svc.ResetDay(ctx, f.userID, "2024-01-16"))
	daily, err = svc.GetDaily(ctx, f.userID, "2024-01-16")
	require.NoError(t, err)
	assert.Zero(t, daily.TotalMeals)

	_, err = svc.GetDaily(ctx, f.userID, "yesterday")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestIntakeService_HistoryNewestFirst(t *testing.T) {
	f := newFixture(t)
	svc := f.intakeService()
	ctx := context.Background()

	log := func(name, date string) {
		_, err := svc.LogMeal(ctx, f.userID, &domain.LogMealRequest{FoodName: name, Date: date})
		require.NoError(t, err)
	}
	log("brown rice", "2024-01-14")
	log("lentil soup", "2024-01-15")
	log("grilled chicken breast", "2024-01-15")
	log("bibimbap", "2024-01-16")

	hist, err := svc.History(ctx, f.userID, 3)
	require.NoError(t, err)
	require.Equal(t, 3, hist.Total)

	var got []string
	for _, item := range hist.Data {
		got = append(got, item.Date+" "+item.Meal.FoodName)
	}
	assert.Equal(t, []string{
		"2024-01-16 Bibimbap",
		"2024-01-15 Grilled Chicken Breast",
		"2024-01-15 Lentil Soup",
	}, got)
}

func ptr[T any](v T) *T { return &v }
