package aggregate

import "github.com/okian/staffsight/internal/domain/model"

// computeTotalCount counts the records in the view.
func computeTotalCount(view model.RecordSet) Result {
	return Result{Name: TotalCount, Kind: KindScalar, Scalar: float64(len(view))}
}

// computeAttritionCount counts records with Attrition == "Yes".
func computeAttritionCount(view model.RecordSet) Result {
	return Result{Name: AttritionCount, Kind: KindScalar, Scalar: float64(countLeft(view))}
}

// computeAttritionRate is the top-line percentage. An empty view yields
// exactly 0, not NaN and not an error.
func computeAttritionRate(view model.RecordSet) Result {
	r := Result{Name: AttritionRate, Kind: KindScalar}
	if len(view) == 0 {
		return r
	}
	r.Scalar = float64(countLeft(view)) / float64(len(view)) * 100
	return r
}

func countLeft(view model.RecordSet) int {
	n := 0
	for _, rec := range view {
		if rec.Left() {
			n++
		}
	}
	return n
}
