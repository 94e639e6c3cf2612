package aggregate

import "github.com/okian/staffsight/internal/domain/model"

// computeAgeDistribution emits the raw (age, attrition) pairs in view
// order. Histogram binning and boxplot quartiles belong to the consumer.
func computeAgeDistribution(view model.RecordSet) Result {
	points := make([]DistributionPoint, 0, len(view))
	for _, rec := range view {
		points = append(points, DistributionPoint{Value: rec.Age, Group: rec.Attrition})
	}
	return Result{Name: AgeDistribution, Kind: KindDistribution, Points: points}
}
