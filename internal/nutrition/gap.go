package nutrition

import "github.com/blaisecz/nutrition-tracker/internal/domain"

const (
	highDeficientBelow     = 50.0
	moderateDeficientBelow = 80.0
	excessWarningAbove     = 120.0
	excessTolerance        = 0.1
)

// Analyze compares current intake to targets. It never fails: an all-zero
// target vector yields an empty report with score 0, so callers without a
// profile can still render a "no targets yet" state.
func Analyze(current, targets domain.NutrientVector) domain.GapReport {
	report := domain.GapReport{
		Current:     current,
		Targets:     targets,
		Percentages: map[domain.Nutrient]float64{},
		Remaining:   map[domain.Nutrient]float64{},
		Deficient:   map[domain.Nutrient]float64{},
		Excess:      map[domain.Nutrient]float64{},
		Buckets:     domain.NewPriorityBuckets(),
	}
	if targets.IsZero() {
		return report
	}

	for _, n := range domain.Nutrients {
		cur, target := current.Get(n), targets.Get(n)

		pct := 0.0
		if target > 0 {
			pct = round1(cur / target * 100)
		}
		report.Percentages[n] = pct

		remaining := target - cur
		if remaining < 0 {
			remaining = 0
		}
		report.Remaining[n] = round1(remaining)

		// Gaps that round to zero are dropped so both maps hold positive values.
		diff := cur - target
		switch {
		case diff < 0:
			if d := round1(-diff); d > 0 {
				report.Deficient[n] = d
			}
		case diff > excessTolerance*target:
			if e := round1(diff); e > 0 {
				report.Excess[n] = e
			}
		}

		entry := domain.BucketEntry{Nutrient: n, Percentage: pct}
		switch {
		case pct < highDeficientBelow:
			entry.Magnitude = report.Deficient[n]
			report.Buckets.HighDeficient = append(report.Buckets.HighDeficient, entry)
		case pct < moderateDeficientBelow:
			entry.Magnitude = report.Deficient[n]
			report.Buckets.ModerateDeficient = append(report.Buckets.ModerateDeficient, entry)
		case pct > excessWarningAbove:
			entry.Magnitude = report.Excess[n]
			report.Buckets.ExcessWarning = append(report.Buckets.ExcessWarning, entry)
		default:
			report.Buckets.Balanced = append(report.Buckets.Balanced, entry)
		}
	}

	report.Score = Score(current, targets)
	return report
}

// Summarize condenses a report into counts, an overall status and general
// advice.
func Summarize(report domain.GapReport) domain.AnalysisSummary {
	if !report.HasTargets() {
		return domain.AnalysisSummary{
			OverallStatus: domain.StatusUnknown,
			Advice:        []string{"Set up your profile and log a meal to get an analysis."},
		}
	}

	total := len(report.Percentages)
	balanced := 0
	for _, pct := range report.Percentages {
		if pct >= moderateDeficientBelow && pct <= excessWarningAbove {
			balanced++
		}
	}

	summary := domain.AnalysisSummary{
		TotalNutrients:     total,
		BalancedNutrients:  balanced,
		DeficientNutrients: len(report.Deficient),
		ExcessNutrients:    len(report.Excess),
		NutritionScore:     report.Score,
		OverallStatus:      overallStatus(report.Score),
	}
	if total > 0 {
		summary.BalancePercentage = round1(float64(balanced) / float64(total) * 100)
	}
	summary.Advice = generalAdvice(summary.DeficientNutrients, summary.ExcessNutrients, report.Score)
	return summary
}

func overallStatus(score float64) domain.OverallStatus {
	switch {
	case score >= 85:
		return domain.StatusExcellent
	case score >= 70:
		return domain.StatusGood
	case score >= 50:
		return domain.StatusFair
	default:
		return domain.StatusNeedsImprovement
	}
}

func generalAdvice(deficient, excess int, score float64) []string {
	var advice []string

	if deficient > 3 {
		advice = append(advice, "Several nutrients are short of target. Try a wider variety of foods.")
	} else if deficient > 0 {
		advice = append(advice, "Some nutrients are short of target. A balanced meal will help.")
	}

	if excess > 2 {
		advice = append(advice, "Several nutrients are over target. Consider smaller portions.")
	}

	if score < 50 {
		advice = append(advice, "Overall nutrient balance needs improvement.")
	} else if score >= 85 {
		advice = append(advice, "Excellent nutrient balance. Keep it up!")
	}

	if len(advice) == 0 {
		advice = append(advice, "Your nutrition is on track. Keep going.")
	}
	return advice
}

// Priorities flattens the deficient and excess buckets into one list,
// most urgent first.
func Priorities(report domain.GapReport) []domain.PriorityItem {
	items := make([]domain.PriorityItem, 0,
		len(report.Buckets.HighDeficient)+len(report.Buckets.ModerateDeficient)+len(report.Buckets.ExcessWarning))

	for _, e := range report.Buckets.HighDeficient {
		items = append(items, priorityItem(e, domain.PriorityHigh, domain.GapDeficient))
	}
	for _, e := range report.Buckets.ModerateDeficient {
		items = append(items, priorityItem(e, domain.PriorityModerate, domain.GapDeficient))
	}
	for _, e := range report.Buckets.ExcessWarning {
		items = append(items, priorityItem(e, domain.PriorityWarning, domain.GapExcess))
	}
	return items
}

func priorityItem(e domain.BucketEntry, p domain.Priority, t domain.GapType) domain.PriorityItem {
	return domain.PriorityItem{
		Nutrient:   e.Nutrient,
		Priority:   p,
		Type:       t,
		Percentage: e.Percentage,
		Value:      e.Magnitude,
	}
}
