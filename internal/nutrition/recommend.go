package nutrition

import (
	"math"
	"sort"
	"strings"

	"github.com/blaisecz/nutrition-tracker/internal/domain"
)

const (
	// BalancedScore is the flat score given when nothing needs correcting.
	BalancedScore = 70.0

	coverageWeight    = 30.0
	excessWeight      = 20.0
	improvementWeight = 0.5

	reasoningShare  = 0.10
	benefitShare    = 0.15
	maxReasons      = 3
	highProteinG    = 15.0
	richFiberG      = 5.0
	lowCalorieKcal  = 200.0
	balancedReason  = "balanced nutrition"
	fallbackReason  = "balanced nutrients"
	reasonSeparator = ", "
)

var nutrientBenefits = map[domain.Nutrient]string{
	domain.Protein:       "supports muscle health and satiety",
	domain.Fiber:         "supports digestive health and satiety",
	domain.Calories:      "provides energy",
	domain.Carbohydrates: "provides quick energy",
	domain.Fat:           "supplies essential fatty acids",
}

var balancedBenefits = []string{"dietary variety", "diverse nutrient supply"}

// Rank orders catalog candidates by how well each would close the gaps in
// report. Foods named in recent are skipped. The result holds at most
// limit entries and is deterministic: equal scores keep catalog order.
func Rank(catalog []domain.FoodCandidate, report domain.GapReport, recent []string, limit int) []domain.Recommendation {
	if limit <= 0 {
		return []domain.Recommendation{}
	}

	candidates := filterRecent(catalog, recent)
	if len(candidates) == 0 {
		return []domain.Recommendation{}
	}

	if len(report.Deficient) == 0 {
		return balancedRecommendations(candidates, limit)
	}

	type scored struct {
		candidate domain.FoodCandidate
		score     float64
	}

	baseline := Score(report.Current, report.Targets)
	all := make([]scored, 0, len(candidates))
	anyPositive := false
	for _, c := range candidates {
		s := scoreCandidate(c, report, baseline)
		if s > 0 {
			anyPositive = true
		}
		all = append(all, scored{candidate: c, score: s})
	}

	kept := all[:0]
	for _, s := range all {
		if anyPositive && s.score == 0 {
			continue
		}
		kept = append(kept, s)
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].score > kept[j].score
	})

	if len(kept) > limit {
		kept = kept[:limit]
	}

	out := make([]domain.Recommendation, 0, len(kept))
	for _, s := range kept {
		out = append(out, domain.Recommendation{
			FoodName:    s.candidate.Name,
			Nutrients:   s.candidate.Nutrients,
			ServingSize: s.candidate.ServingSize,
			Score:       s.score,
			Reasoning:   reasoning(s.candidate.Nutrients, report.Deficient),
			Benefits:    benefits(s.candidate.Nutrients, report.Deficient),
		})
	}
	return out
}

// ScoreCandidate exposes the raw ranking score of one candidate.
func ScoreCandidate(c domain.FoodCandidate, report domain.GapReport) float64 {
	return scoreCandidate(c, report, Score(report.Current, report.Targets))
}

func scoreCandidate(c domain.FoodCandidate, report domain.GapReport, baseline float64) float64 {
	food := c.Nutrients
	var score float64

	for _, n := range domain.Nutrients {
		if deficiency, ok := report.Deficient[n]; ok && deficiency > 0 {
			score += math.Min(food.Get(n)/deficiency, 1.0) * coverageWeight
		}
	}

	for _, n := range domain.Nutrients {
		if excess, ok := report.Excess[n]; ok && excess > 0 {
			score -= math.Min(food.Get(n)/excess, 1.0) * excessWeight
		}
	}

	var fit float64
	var withAllowance int
	for _, n := range domain.Nutrients {
		remaining := report.Remaining[n]
		if remaining <= 0 {
			continue
		}
		withAllowance++
		ratio := food.Get(n) / remaining
		switch {
		case ratio >= 0.1 && ratio <= 0.5:
			fit += 10
		case ratio >= 0.05 && ratio <= 0.8:
			fit += 5
		}
	}
	if withAllowance > 0 {
		score += fit / float64(withAllowance)
	}

	projected := report.Current.Add(food)
	score += (Score(projected, report.Targets) - baseline) * improvementWeight

	return math.Max(0, score)
}

func filterRecent(catalog []domain.FoodCandidate, recent []string) []domain.FoodCandidate {
	if len(recent) == 0 {
		return catalog
	}

	skip := make(map[string]struct{}, len(recent))
	for _, name := range recent {
		skip[domain.FoodKey(name)] = struct{}{}
	}

	out := make([]domain.FoodCandidate, 0, len(catalog))
	for _, c := range catalog {
		if _, ok := skip[domain.FoodKey(c.Name)]; ok {
			continue
		}
		out = append(out, c)
	}
	return out
}

func balancedRecommendations(candidates []domain.FoodCandidate, limit int) []domain.Recommendation {
	if len(candidates) > limit {
		candidates = candidates[:limit]
	}

	out := make([]domain.Recommendation, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, domain.Recommendation{
			FoodName:    c.Name,
			Nutrients:   c.Nutrients,
			ServingSize: c.ServingSize,
			Score:       BalancedScore,
			Reasoning:   balancedReason,
			Benefits:    append([]string(nil), balancedBenefits...),
		})
	}
	return out
}

func reasoning(food domain.NutrientVector, deficient map[domain.Nutrient]float64) string {
	var reasons []string
	for _, n := range domain.Nutrients {
		deficiency, ok := deficient[n]
		if !ok {
			continue
		}
		if food.Get(n) > deficiency*reasoningShare {
			reasons = append(reasons, n.DisplayName()+" boost")
			if len(reasons) == maxReasons {
				break
			}
		}
	}
	if len(reasons) == 0 {
		return fallbackReason
	}
	return strings.Join(reasons, reasonSeparator)
}

func benefits(food domain.NutrientVector, deficient map[domain.Nutrient]float64) []string {
	set := make(map[string]struct{})
	for _, n := range domain.Nutrients {
		deficiency, ok := deficient[n]
		if !ok {
			continue
		}
		phrase, ok := nutrientBenefits[n]
		if ok && food.Get(n) > deficiency*benefitShare {
			set[phrase] = struct{}{}
		}
	}

	if food.Protein > highProteinG {
		set["high protein"] = struct{}{}
	}
	if food.Fiber > richFiberG {
		set["rich in fiber"] = struct{}{}
	}
	if food.Calories > 0 && food.Calories < lowCalorieKcal {
		set["low calorie"] = struct{}{}
	}

	out := make([]string, 0, len(set))
	for phrase := range set {
		out = append(out, phrase)
	}
	sort.Strings(out)
	return out
}
