package aggregate

import (
	"sort"
	"strconv"

	"github.com/okian/staffsight/internal/domain/model"
)

// rateOrder controls how a rate table is sorted.
type rateOrder int

const (
	orderRateDesc  rateOrder = iota // highest-risk groups first
	orderFirstSeen                  // view insertion order
)

// computeRateByDepartment surfaces the departments with the highest
// turnover first.
func computeRateByDepartment(view model.RecordSet) Result {
	return rateByCategory(RateByDepartment, view, model.FieldDepartment, orderRateDesc)
}

// computeRateByGender keeps the view's natural group order.
func computeRateByGender(view model.RecordSet) Result {
	return rateByCategory(RateByGender, view, model.FieldGender, orderFirstSeen)
}

// computeRateByJobRole surfaces the roles with the highest turnover first.
func computeRateByJobRole(view model.RecordSet) Result {
	return rateByCategory(RateByJobRole, view, model.FieldJobRole, orderRateDesc)
}

// rateByCategory computes per-group attrition percentages for one
// categorical field. Groups exist only for values observed in the view,
// so a 0/0 row can never be emitted.
func rateByCategory(name string, view model.RecordSet, field string, order rateOrder) Result {
	type bucket struct {
		members int
		left    int
	}
	buckets := make(map[string]*bucket)
	var keys []string // first-seen order

	for _, rec := range view {
		key := rec.Categorical(field)
		b, ok := buckets[key]
		if !ok {
			b = &bucket{}
			buckets[key] = b
			keys = append(keys, key)
		}
		b.members++
		if rec.Left() {
			b.left++
		}
	}

	rows := make([]RateRow, 0, len(keys))
	for _, key := range keys {
		b := buckets[key]
		rows = append(rows, RateRow{
			Key:     key,
			Members: b.members,
			Rate:    float64(b.left) / float64(b.members) * 100,
		})
	}

	if order == orderRateDesc {
		// Alphabetical first so equal rates come out in a stable order.
		sort.Slice(rows, func(i, j int) bool { return rows[i].Key < rows[j].Key })
		sort.SliceStable(rows, func(i, j int) bool { return rows[i].Rate > rows[j].Rate })
	}

	return Result{Name: name, Kind: KindRateTable, Rates: rows}
}

// computeRateByJobLevel rates each job level and orders ascending by the
// ordinal key so consumers can draw it as a trend line.
func computeRateByJobLevel(view model.RecordSet) Result {
	type bucket struct {
		members int
		left    int
	}
	buckets := make(map[int]*bucket)
	var levels []int

	for _, rec := range view {
		b, ok := buckets[rec.JobLevel]
		if !ok {
			b = &bucket{}
			buckets[rec.JobLevel] = b
			levels = append(levels, rec.JobLevel)
		}
		b.members++
		if rec.Left() {
			b.left++
		}
	}
	sort.Ints(levels)

	rows := make([]RateRow, 0, len(levels))
	for _, level := range levels {
		b := buckets[level]
		rows = append(rows, RateRow{
			Key:     strconv.Itoa(level),
			Level:   level,
			Members: b.members,
			Rate:    float64(b.left) / float64(b.members) * 100,
		})
	}
	return Result{Name: RateByJobLevel, Kind: KindRateTable, Rates: rows}
}
