package filterstate_test

import (
	"errors"
	"testing"

	"github.com/okian/staffsight/internal/domain/filterstate"
	. "github.com/smartystreets/goconvey/convey"
)

func testOptions() filterstate.Options {
	return filterstate.Options{
		Departments: []string{"Human Resources", "Research & Development", "Sales"},
		RolesByDepartment: map[string][]string{
			"Human Resources":        {"Human Resources", "Manager"},
			"Research & Development": {"Laboratory Technician", "Manager", "Research Scientist"},
			"Sales":                  {"Sales Executive", "Sales Representative"},
		},
		Genders:           []string{"Female", "Male"},
		AttritionStatuses: []string{"No", "Yes"},
		MinAge:            18,
		MaxAge:            60,
	}
}

func TestStateDefaults(t *testing.T) {
	Convey("Given a fresh filter state", t, func() {
		s := filterstate.New(testOptions())

		Convey("Then every dimension starts at select-all", func() {
			sel := s.Selection()
			So(sel.Departments, ShouldResemble, []string{"Human Resources", "Research & Development", "Sales"})
			So(sel.JobRoles, ShouldResemble, []string{
				"Human Resources", "Laboratory Technician", "Manager",
				"Research Scientist", "Sales Executive", "Sales Representative",
			})
			So(sel.Genders, ShouldResemble, []string{"Female", "Male"})
			So(sel.AttritionStatuses, ShouldResemble, []string{"No", "Yes"})
			So(sel.AgeLo, ShouldEqual, 18)
			So(sel.AgeHi, ShouldEqual, 60)
		})
	})
}

func TestDependentJobRoles(t *testing.T) {
	Convey("Given a fresh filter state", t, func() {
		s := filterstate.New(testOptions())

		Convey("When the department selection narrows to Sales", func() {
			s.SetDepartments([]string{"Sales"})

			Convey("Then the offered roles narrow to Sales roles", func() {
				So(s.OfferedJobRoles(), ShouldResemble, []string{"Sales Executive", "Sales Representative"})
			})

			Convey("And the role selection is intersected with the offered set", func() {
				So(s.Selection().JobRoles, ShouldResemble, []string{"Sales Executive", "Sales Representative"})
			})

			Convey("And selecting a role outside the offered set resets to select-all of offered", func() {
				s.SetJobRoles([]string{"Research Scientist"})
				So(s.Selection().JobRoles, ShouldResemble, []string{"Sales Executive", "Sales Representative"})
			})
		})

		Convey("When a role shared across departments is selected before narrowing", func() {
			s.SetJobRoles([]string{"Manager"})
			s.SetDepartments([]string{"Human Resources"})

			Convey("Then the shared role survives the narrowing", func() {
				So(s.Selection().JobRoles, ShouldResemble, []string{"Manager"})
			})
		})

		Convey("When narrowing drops every selected role", func() {
			s.SetJobRoles([]string{"Sales Executive"})
			s.SetDepartments([]string{"Human Resources"})

			Convey("Then the selection resets to select-all of the new offered set", func() {
				So(s.Selection().JobRoles, ShouldResemble, []string{"Human Resources", "Manager"})
			})
		})

		Convey("When unknown department values are passed", func() {
			s.SetDepartments([]string{"Sales", "Warehouse"})

			Convey("Then the unknown value is dropped", func() {
				So(s.Selection().Departments, ShouldResemble, []string{"Sales"})
			})
		})

		Convey("The role selection is always a subset of the offered set", func() {
			sequences := [][]string{
				{"Sales"},
				{"Research & Development", "Sales"},
				{"Human Resources"},
				{},
				{"Research & Development"},
			}
			for _, departments := range sequences {
				s.SetDepartments(departments)
				offered := map[string]bool{}
				for _, r := range s.OfferedJobRoles() {
					offered[r] = true
				}
				for _, r := range s.Selection().JobRoles {
					So(offered[r], ShouldBeTrue)
				}
			}
		})
	})
}

func TestAgeRange(t *testing.T) {
	Convey("Given a fresh filter state", t, func() {
		s := filterstate.New(testOptions())

		Convey("When a valid range is set", func() {
			err := s.SetAgeRange(30, 40)
			So(err, ShouldBeNil)
			sel := s.Selection()
			So(sel.AgeLo, ShouldEqual, 30)
			So(sel.AgeHi, ShouldEqual, 40)
		})

		Convey("When a reversed range is set", func() {
			before := s.Selection()
			err := s.SetAgeRange(200, 10)

			Convey("Then it fails with ErrInvalidRange and the state is unchanged", func() {
				So(errors.Is(err, filterstate.ErrInvalidRange), ShouldBeTrue)
				So(s.Selection(), ShouldResemble, before)
			})
		})

		Convey("When bounds exceed the dataset's age domain", func() {
			err := s.SetAgeRange(1, 200)

			Convey("Then they are clamped, not rejected", func() {
				So(err, ShouldBeNil)
				sel := s.Selection()
				So(sel.AgeLo, ShouldEqual, 18)
				So(sel.AgeHi, ShouldEqual, 60)
			})
		})
	})
}

func TestReset(t *testing.T) {
	Convey("Given a narrowed filter state", t, func() {
		s := filterstate.New(testOptions())
		s.SetDepartments([]string{"Sales"})
		s.SetGenders([]string{"Female"})
		So(s.SetAgeRange(25, 30), ShouldBeNil)

		Convey("When reset", func() {
			s.Reset()

			Convey("Then it matches a fresh state", func() {
				So(s.Selection(), ShouldResemble, filterstate.New(testOptions()).Selection())
			})
		})
	})
}
