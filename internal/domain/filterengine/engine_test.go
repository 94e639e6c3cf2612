package filterengine_test

import (
	"math/rand"
	"testing"

	"github.com/okian/staffsight/internal/domain/filterengine"
	"github.com/okian/staffsight/internal/domain/filterstate"
	"github.com/okian/staffsight/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func fixtureRecords() model.RecordSet {
	departments := []string{"Human Resources", "Research & Development", "Sales"}
	roles := map[string][]string{
		"Human Resources":        {"Human Resources", "Manager"},
		"Research & Development": {"Laboratory Technician", "Research Scientist"},
		"Sales":                  {"Sales Executive", "Sales Representative"},
	}
	genders := []string{"Female", "Male"}
	attrition := []string{"No", "Yes"}

	rng := rand.New(rand.NewSource(7))
	records := make(model.RecordSet, 0, 60)
	for i := 0; i < 60; i++ {
		dept := departments[rng.Intn(len(departments))]
		deptRoles := roles[dept]
		records = append(records, model.Record{
			EmployeeNumber:  i + 1,
			Department:      dept,
			JobRole:         deptRoles[rng.Intn(len(deptRoles))],
			Gender:          genders[rng.Intn(len(genders))],
			MaritalStatus:   "Single",
			Attrition:       attrition[rng.Intn(len(attrition))],
			Age:             20 + rng.Intn(40),
			JobLevel:        1 + rng.Intn(5),
			JobSatisfaction: 1 + rng.Intn(4),
			JobInvolvement:  1 + rng.Intn(4),
			MonthlyIncome:   float64(2000 + rng.Intn(10000)),
		})
	}
	return records
}

func selectAll() filterstate.Selection {
	return filterstate.Selection{
		Departments:       []string{"Human Resources", "Research & Development", "Sales"},
		JobRoles:          []string{"Human Resources", "Laboratory Technician", "Manager", "Research Scientist", "Sales Executive", "Sales Representative"},
		Genders:           []string{"Female", "Male"},
		AttritionStatuses: []string{"No", "Yes"},
		AgeLo:             0,
		AgeHi:             100,
	}
}

func matches(r model.Record, sel filterstate.Selection) bool {
	contains := func(values []string, v string) bool {
		for _, x := range values {
			if x == v {
				return true
			}
		}
		return false
	}
	return contains(sel.Departments, r.Department) &&
		contains(sel.JobRoles, r.JobRole) &&
		contains(sel.Genders, r.Gender) &&
		contains(sel.AttritionStatuses, r.Attrition) &&
		r.Age >= sel.AgeLo && r.Age <= sel.AgeHi
}

func TestApply(t *testing.T) {
	Convey("Given a fixture record set", t, func() {
		records := fixtureRecords()

		Convey("When a select-all selection is applied", func() {
			view := filterengine.Apply(records, selectAll())

			Convey("Then every record passes in input order", func() {
				So(len(view), ShouldEqual, len(records))
				for i := range view {
					So(view[i].EmployeeNumber, ShouldEqual, records[i].EmployeeNumber)
				}
			})

			Convey("And the view is an independent copy", func() {
				view[0].Department = "mutated"
				So(records[0].Department, ShouldNotEqual, "mutated")
			})
		})

		Convey("When an excluding selection is applied", func() {
			sel := selectAll()
			sel.Departments = []string{"Sales"}
			sel.AgeLo, sel.AgeHi = 30, 40
			view := filterengine.Apply(records, sel)

			Convey("Then only records satisfying every predicate remain", func() {
				for _, r := range view {
					So(r.Department, ShouldEqual, "Sales")
					So(r.Age, ShouldBeBetweenOrEqual, 30, 40)
				}
			})
		})

		Convey("When the selection matches nothing", func() {
			sel := selectAll()
			sel.Genders = nil
			view := filterengine.Apply(records, sel)

			Convey("Then the view is empty but valid", func() {
				So(view, ShouldBeEmpty)
			})
		})

		Convey("When applied twice with the same selection", func() {
			sel := selectAll()
			sel.AttritionStatuses = []string{"Yes"}
			a := filterengine.Apply(records, sel)
			b := filterengine.Apply(records, sel)

			Convey("Then the outputs are identical and identically ordered", func() {
				So(b, ShouldResemble, a)
			})
		})

		Convey("For randomized selections, membership equals the conjunction predicate", func() {
			rng := rand.New(rand.NewSource(11))
			pick := func(values []string) []string {
				var out []string
				for _, v := range values {
					if rng.Intn(2) == 0 {
						out = append(out, v)
					}
				}
				return out
			}

			for trial := 0; trial < 50; trial++ {
				full := selectAll()
				sel := filterstate.Selection{
					Departments:       pick(full.Departments),
					JobRoles:          pick(full.JobRoles),
					Genders:           pick(full.Genders),
					AttritionStatuses: pick(full.AttritionStatuses),
					AgeLo:             20 + rng.Intn(20),
				}
				sel.AgeHi = sel.AgeLo + rng.Intn(25)

				view := filterengine.Apply(records, sel)
				included := make(map[int]bool, len(view))
				for _, r := range view {
					included[r.EmployeeNumber] = true
					So(matches(r, sel), ShouldBeTrue)
				}
				for _, r := range records {
					if !included[r.EmployeeNumber] {
						So(matches(r, sel), ShouldBeFalse)
					}
				}
			}
		})
	})
}
