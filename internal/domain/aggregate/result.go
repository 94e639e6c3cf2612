// Package aggregate computes the fixed catalog of derived statistics over
// a filtered view of the dataset.
package aggregate

// Kind tags which variant of a Result is populated.
type Kind string

// Result variants.
const (
	KindScalar       Kind = "scalar"
	KindRateTable    Kind = "rate_table"
	KindDistribution Kind = "distribution"
	KindPivot        Kind = "pivot"
	KindScatter      Kind = "scatter"
)

// Published names of the catalog entries.
const (
	TotalCount         = "total_count"
	AttritionCount     = "attrition_count"
	AttritionRate      = "attrition_rate"
	RateByDepartment   = "rate_by_department"
	RateByGender       = "rate_by_gender"
	RateByJobRole      = "rate_by_job_role"
	RateByJobLevel     = "rate_by_job_level"
	AgeDistribution    = "age_distribution"
	MaritalStatusPivot = "marital_status_pivot"
	ScatterProjection  = "involvement_satisfaction_scatter"
)

// Result is the output of one named computation. Exactly one variant is
// populated, indicated by Kind. Results are created fresh on every
// recompute and never mutated.
type Result struct {
	Name    string              `json:"name"`
	Kind    Kind                `json:"kind"`
	Scalar  float64             `json:"scalar,omitempty"`
	Rates   []RateRow           `json:"rates,omitempty"`
	Points  []DistributionPoint `json:"points,omitempty"`
	Pivot   *PivotTable         `json:"pivot,omitempty"`
	Scatter []ScatterPoint      `json:"scatter,omitempty"`
}

// RateRow is one group's attrition rate. Members is never zero: groups
// with no members are omitted rather than rated 0/0.
type RateRow struct {
	Key     string  `json:"key"`
	Level   int     `json:"level,omitempty"` // set for ordinal groupings only
	Members int     `json:"members"`
	Rate    float64 `json:"rate"` // percentage, 0..100
}

// DistributionPoint is one raw (value, group) pair; binning is left to
// the consumer.
type DistributionPoint struct {
	Value int    `json:"value"`
	Group string `json:"group"`
}

// PivotTable holds co-occurrence counts. Counts[i][j] is the count for
// Rows[i] x Columns[j]; unobserved combinations are 0, never absent.
type PivotTable struct {
	Rows    []string `json:"rows"`
	Columns []string `json:"columns"`
	Counts  [][]int  `json:"counts"`
}

// ScatterPoint is one per-record projection for scatter rendering.
type ScatterPoint struct {
	X     int     `json:"x"`
	Y     int     `json:"y"`
	Group string  `json:"group"`
	Size  float64 `json:"size"`
}
