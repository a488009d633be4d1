package domain

// BucketEntry places one nutrient in a priority bucket.
// @Description Nutrient with its percentage of target and the size of its gap.
type BucketEntry struct {
	Nutrient   Nutrient `json:"nutrient" example:"protein"`
	Percentage float64  `json:"percentage" example:"42.5"`
	// Deficiency for deficient buckets, excess for excess_warning, 0 when balanced
	Magnitude float64 `json:"magnitude" example:"74.5"`
}

// PriorityBuckets partitions nutrients by percentage of target.
// @Description Nutrients grouped by how far they are from their targets.
type PriorityBuckets struct {
	HighDeficient     []BucketEntry `json:"high_deficient"`
	ModerateDeficient []BucketEntry `json:"moderate_deficient"`
	ExcessWarning     []BucketEntry `json:"excess_warning"`
	Balanced          []BucketEntry `json:"balanced"`
}

// NewPriorityBuckets returns buckets with non-nil empty lists.
func NewPriorityBuckets() PriorityBuckets {
	return PriorityBuckets{
		HighDeficient:     []BucketEntry{},
		ModerateDeficient: []BucketEntry{},
		ExcessWarning:     []BucketEntry{},
		Balanced:          []BucketEntry{},
	}
}

// GapReport compares current intake to targets. It is always derived,
// never stored.
// @Description Gap analysis of current intake against daily targets.
type GapReport struct {
	Current     NutrientVector       `json:"current"`
	Targets     NutrientVector       `json:"targets"`
	Percentages map[Nutrient]float64 `json:"percentages"`
	Remaining   map[Nutrient]float64 `json:"remaining"`
	Deficient   map[Nutrient]float64 `json:"deficient"`
	Excess      map[Nutrient]float64 `json:"excess"`
	Buckets     PriorityBuckets      `json:"priority_buckets"`
	// Balance score 0-100
	Score float64 `json:"score" example:"64.4"`
}

// HasTargets reports whether the report was computed against real targets.
func (r GapReport) HasTargets() bool {
	return !r.Targets.IsZero()
}

// OverallStatus grades a balance score.
// @Description Overall nutrition status.
type OverallStatus string

const (
	StatusExcellent        OverallStatus = "excellent"
	StatusGood             OverallStatus = "good"
	StatusFair             OverallStatus = "fair"
	StatusNeedsImprovement OverallStatus = "needs_improvement"
	StatusUnknown          OverallStatus = "unknown"
)

// AnalysisSummary condenses a gap report into counts and advice.
// @Description Summary counts, status and general advice.
type AnalysisSummary struct {
	TotalNutrients     int           `json:"total_nutrients" example:"9"`
	BalancedNutrients  int           `json:"balanced_nutrients" example:"3"`
	DeficientNutrients int           `json:"deficient_nutrients" example:"5"`
	ExcessNutrients    int           `json:"excess_nutrients" example:"1"`
	BalancePercentage  float64       `json:"balance_percentage" example:"33.3"`
	NutritionScore     float64       `json:"nutrition_score" example:"64.4"`
	OverallStatus      OverallStatus `json:"overall_status" example:"fair"`
	Advice             []string      `json:"advice"`
}

// Priority ranks an item in the flattened priority list.
type Priority string

const (
	PriorityHigh     Priority = "high"
	PriorityModerate Priority = "moderate"
	PriorityWarning  Priority = "warning"
)

// GapType says whether a priority item is short of or over its target.
type GapType string

const (
	GapDeficient GapType = "deficient"
	GapExcess    GapType = "excess"
)

// PriorityItem is one entry of the flattened priority list.
// @Description Nutrient needing attention, most urgent first.
type PriorityItem struct {
	Nutrient   Nutrient `json:"nutrient" example:"protein"`
	Priority   Priority `json:"priority" example:"high"`
	Type       GapType  `json:"type" example:"deficient"`
	Percentage float64  `json:"percentage" example:"42.5"`
	Value      float64  `json:"value" example:"74.5"`
}

// AnalysisResponse is the response body for the analysis endpoint.
// @Description Gap report, summary and priority list for one day.
type AnalysisResponse struct {
	Date       string          `json:"date" example:"2024-01-16"`
	Report     GapReport       `json:"report"`
	Summary    AnalysisSummary `json:"summary"`
	Priorities []PriorityItem  `json:"priorities"`
}
