package aggregate

import "github.com/okian/staffsight/internal/domain/model"

// computeScatter is a passthrough projection: one tuple per record with
// involvement on x, satisfaction on y, attrition as the colour group and
// monthly income as the marker size. No aggregation.
func computeScatter(view model.RecordSet) Result {
	points := make([]ScatterPoint, 0, len(view))
	for _, rec := range view {
		points = append(points, ScatterPoint{
			X:     rec.JobInvolvement,
			Y:     rec.JobSatisfaction,
			Group: rec.Attrition,
			Size:  rec.MonthlyIncome,
		})
	}
	return Result{Name: ScatterProjection, Kind: KindScatter, Scatter: points}
}
