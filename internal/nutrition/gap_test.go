package nutrition

import (
	"math/rand"
	"testing"

	"github.com/blaisecz/nutrition-tracker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func maintainTargets(t *testing.T) domain.NutrientVector {
	t.Helper()
	targets, err := ComputeTargets(2591.1, domain.GoalMaintain)
	require.NoError(t, err)
	return targets
}

func bucketNutrients(entries []domain.BucketEntry) []domain.Nutrient {
	out := make([]domain.Nutrient, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Nutrient)
	}
	return out
}

func TestAnalyze_CaloriesOnlyScenario(t *testing.T) {
	targets := maintainTargets(t)
	report := Analyze(domain.NutrientVector{Calories: 1000}, targets)

	assert.Equal(t, 38.6, report.Percentages[domain.Calories])
	assert.Contains(t, bucketNutrients(report.Buckets.HighDeficient), domain.Calories)
	assert.Equal(t, 1591.1, report.Deficient[domain.Calories])
	assert.Equal(t, 1591.1, report.Remaining[domain.Calories])
	assert.Len(t, report.Buckets.HighDeficient, len(domain.Nutrients))
	assert.Empty(t, report.Excess)
}

func TestAnalyze_Buckets(t *testing.T) {
	targets := domain.NutrientVector{
		Calories: 2000, Carbohydrates: 100, Sugars: 100, Protein: 100, Fat: 100,
		SaturatedFat: 100, Cholesterol: 100, Sodium: 100, Fiber: 100,
	}
	current := domain.NutrientVector{
		Calories:      2000, // 100% balanced
		Carbohydrates: 49.9, // high deficient
		Sugars:        50,   // moderate deficient
		Protein:       79.9, // moderate deficient
		Fat:           80,   // balanced
		SaturatedFat:  120,  // balanced, excess
		Cholesterol:   120.1,
		Sodium:        300,
		Fiber:         105, // balanced, within tolerance
	}

	report := Analyze(current, targets)

	assert.Equal(t, []domain.Nutrient{domain.Carbohydrates}, bucketNutrients(report.Buckets.HighDeficient))
	assert.Equal(t, []domain.Nutrient{domain.Sugars, domain.Protein}, bucketNutrients(report.Buckets.ModerateDeficient))
	assert.Equal(t, []domain.Nutrient{domain.Cholesterol, domain.Sodium}, bucketNutrients(report.Buckets.ExcessWarning))
	assert.Equal(t, []domain.Nutrient{domain.Calories, domain.Fat, domain.SaturatedFat, domain.Fiber}, bucketNutrients(report.Buckets.Balanced))

	assert.Equal(t, 20.0, report.Excess[domain.SaturatedFat])
	assert.Equal(t, 200.0, report.Excess[domain.Sodium])
	_, fiberExcess := report.Excess[domain.Fiber]
	assert.False(t, fiberExcess, "5% over target is not excess")
	assert.Equal(t, 0.0, report.Remaining[domain.Sodium])
	assert.Equal(t, 50.1, report.Buckets.HighDeficient[0].Magnitude)
	assert.Equal(t, 200.0, report.Buckets.ExcessWarning[1].Magnitude)
}

func TestAnalyze_EmptyTargets(t *testing.T) {
	report := Analyze(domain.NutrientVector{Calories: 500}, domain.NutrientVector{})

	assert.Zero(t, report.Score)
	assert.Empty(t, report.Percentages)
	assert.Empty(t, report.Deficient)
	assert.Empty(t, report.Excess)
	assert.Empty(t, report.Buckets.HighDeficient)
	assert.Empty(t, report.Buckets.Balanced)
	assert.False(t, report.HasTargets())
}

func TestAnalyze_ZeroTargetKey(t *testing.T) {
	targets := maintainTargets(t)
	targets.Sugars = 0

	report := Analyze(domain.NutrientVector{Sugars: 40}, targets)
	assert.Equal(t, 0.0, report.Percentages[domain.Sugars])
}

func TestAnalyze_Properties(t *testing.T) {
	rng := rand.New(rand.NewSource(11))

	for i := 0; i < 300; i++ {
		var current, targets domain.NutrientVector
		for _, n := range domain.Nutrients {
			current.Set(n, rng.Float64()*3000)
			if rng.Intn(5) > 0 {
				targets.Set(n, rng.Float64()*3000)
			}
		}

		report := Analyze(current, targets)
		for _, n := range domain.Nutrients {
			pct := report.Percentages[n]
			require.GreaterOrEqual(t, pct, 0.0)
			if targets.Get(n) == 0 {
				require.Zero(t, pct)
			}
			_, def := report.Deficient[n]
			_, exc := report.Excess[n]
			require.False(t, def && exc, "nutrient %s is both deficient and excess", n)

			// Monotonicity: more intake never lowers the percentage.
			bumped := current
			bumped.Set(n, current.Get(n)+rng.Float64()*500)
			require.GreaterOrEqual(t, Analyze(bumped, targets).Percentages[n], pct)
		}
		require.GreaterOrEqual(t, report.Score, 0.0)
		require.LessOrEqual(t, report.Score, 100.0)
	}
}

func TestScore(t *testing.T) {
	targets := domain.NutrientVector{Calories: 100, Protein: 100}

	tests := []struct {
		name    string
		current domain.NutrientVector
		want    float64
	}{
		{"both on target", domain.NutrientVector{Calories: 100, Protein: 100}, 100},
		{"band edges 0.8 and 1.2", domain.NutrientVector{Calories: 80, Protein: 120}, 100},
		{"0.5 and 1.5", domain.NutrientVector{Calories: 50, Protein: 150}, 70},
		{"0.3 and 2.0", domain.NutrientVector{Calories: 30, Protein: 200}, 40},
		{"nothing eaten", domain.NutrientVector{}, 10},
		{"mixed bands", domain.NutrientVector{Calories: 100, Protein: 40}, 70},
		{"far over", domain.NutrientVector{Calories: 201, Protein: 29}, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Score(tt.current, targets))
		})
	}

	assert.Zero(t, Score(domain.NutrientVector{Calories: 100}, domain.NutrientVector{}))
}

func TestSummarize(t *testing.T) {
	targets := maintainTargets(t)

	empty := Summarize(Analyze(domain.NutrientVector{}, domain.NutrientVector{}))
	assert.Equal(t, domain.StatusUnknown, empty.OverallStatus)
	assert.Len(t, empty.Advice, 1)

	onTarget := Summarize(Analyze(targets, targets))
	assert.Equal(t, 9, onTarget.TotalNutrients)
	assert.Equal(t, 9, onTarget.BalancedNutrients)
	assert.Equal(t, 100.0, onTarget.BalancePercentage)
	assert.Equal(t, domain.StatusExcellent, onTarget.OverallStatus)
	assert.Equal(t, []string{"Excellent nutrient balance. Keep it up!"}, onTarget.Advice)

	nothing := Summarize(Analyze(domain.NutrientVector{}, targets))
	assert.Equal(t, 9, nothing.DeficientNutrients)
	assert.Equal(t, domain.StatusNeedsImprovement, nothing.OverallStatus)
	assert.Len(t, nothing.Advice, 2)
}

func TestOverallStatus(t *testing.T) {
	assert.Equal(t, domain.StatusExcellent, overallStatus(85))
	assert.Equal(t, domain.StatusGood, overallStatus(70))
	assert.Equal(t, domain.StatusFair, overallStatus(50))
	assert.Equal(t, domain.StatusNeedsImprovement, overallStatus(49.9))
}

func TestPriorities(t *testing.T) {
	var targets domain.NutrientVector
	for _, n := range domain.Nutrients {
		targets.Set(n, 100)
	}
	current := targets
	current.Protein = 60
	current.Sodium = 250
	current.Fiber = 10

	items := Priorities(Analyze(current, targets))

	want := []domain.PriorityItem{
		{Nutrient: domain.Fiber, Priority: domain.PriorityHigh, Type: domain.GapDeficient, Percentage: 10, Value: 90},
		{Nutrient: domain.Protein, Priority: domain.PriorityModerate, Type: domain.GapDeficient, Percentage: 60, Value: 40},
		{Nutrient: domain.Sodium, Priority: domain.PriorityWarning, Type: domain.GapExcess, Percentage: 250, Value: 150},
	}
	assert.Equal(t, want, items)
}
