package aggregate

import (
	"sort"

	"github.com/okian/staffsight/internal/domain/model"
)

// computeMaritalStatusPivot counts MaritalStatus x Attrition co-occurrences.
// Attrition is a closed enum, so both columns are always present and
// unobserved cells hold 0 rather than being absent. Rows cover the marital
// statuses observed in the view, sorted.
func computeMaritalStatusPivot(view model.RecordSet) Result {
	columns := []string{model.AttritionNo, model.AttritionYes}
	colIndex := map[string]int{model.AttritionNo: 0, model.AttritionYes: 1}

	counts := make(map[string][]int)
	for _, rec := range view {
		row, ok := counts[rec.MaritalStatus]
		if !ok {
			row = make([]int, len(columns))
			counts[rec.MaritalStatus] = row
		}
		if j, ok := colIndex[rec.Attrition]; ok {
			row[j]++
		}
	}

	rows := make([]string, 0, len(counts))
	for status := range counts {
		rows = append(rows, status)
	}
	sort.Strings(rows)

	table := &PivotTable{Rows: rows, Columns: columns, Counts: make([][]int, len(rows))}
	for i, status := range rows {
		table.Counts[i] = counts[status]
	}
	return Result{Name: MaritalStatusPivot, Kind: KindPivot, Pivot: table}
}
