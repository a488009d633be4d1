package nutrition

import "github.com/blaisecz/nutrition-tracker/internal/domain"

// Score maps intake against targets to a 0-100 balance score: the mean of
// per-nutrient band scores over nutrients with a positive target, rounded
// to one decimal. It returns 0 when no target is positive.
//
// GapAnalyzer and RecommendationScorer must both go through this function.
func Score(current, targets domain.NutrientVector) float64 {
	var total float64
	var count int
	for _, n := range domain.Nutrients {
		target := targets.Get(n)
		if target <= 0 {
			continue
		}
		total += bandScore(current.Get(n) / target)
		count++
	}
	if count == 0 {
		return 0
	}
	return round1(total / float64(count))
}

func bandScore(ratio float64) float64 {
	switch {
	case ratio >= 0.8 && ratio <= 1.2:
		return 100
	case (ratio >= 0.5 && ratio < 0.8) || (ratio > 1.2 && ratio <= 1.5):
		return 70
	case (ratio >= 0.3 && ratio < 0.5) || (ratio > 1.5 && ratio <= 2.0):
		return 40
	default:
		return 10
	}
}
