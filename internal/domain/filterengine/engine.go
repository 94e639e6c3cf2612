// Package filterengine applies a filter selection to a record set.
package filterengine

import (
	"github.com/okian/staffsight/internal/domain/filterstate"
	"github.com/okian/staffsight/internal/domain/model"
)

// Apply returns the records matching every predicate of the selection:
// Department, JobRole, Gender and Attrition membership plus the inclusive
// age range. Pure and deterministic; input order is preserved and the
// result is an independently owned set, so concurrent readers of the view
// are safe even while the next selection is being applied.
func Apply(records model.RecordSet, sel filterstate.Selection) model.RecordSet {
	departments := toSet(sel.Departments)
	jobRoles := toSet(sel.JobRoles)
	genders := toSet(sel.Genders)
	attrition := toSet(sel.AttritionStatuses)

	// Single pass, all predicates AND-combined per record.
	view := make(model.RecordSet, 0, len(records))
	for _, r := range records {
		if _, ok := departments[r.Department]; !ok {
			continue
		}
		if _, ok := jobRoles[r.JobRole]; !ok {
			continue
		}
		if _, ok := genders[r.Gender]; !ok {
			continue
		}
		if _, ok := attrition[r.Attrition]; !ok {
			continue
		}
		if r.Age < sel.AgeLo || r.Age > sel.AgeHi {
			continue
		}
		view = append(view, r)
	}
	return view
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}
