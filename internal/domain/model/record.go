// Package model contains domain models passed between layers.
package model

// Attrition column values. The column is a closed enum in the dataset.
const (
	AttritionYes = "Yes"
	AttritionNo  = "No"
)

// Categorical field names used by filters and aggregations.
const (
	FieldDepartment    = "Department"
	FieldJobRole       = "JobRole"
	FieldGender        = "Gender"
	FieldMaritalStatus = "MaritalStatus"
	FieldAttrition     = "Attrition"
)

// Record represents a single employee row. Immutable once loaded.
// Fields mirror the required dataset schema.
type Record struct {
	EmployeeNumber  int     // unique identifier
	Department      string  // categorical
	JobRole         string  // categorical, dependent on Department in filters
	Gender          string  // categorical
	MaritalStatus   string  // categorical
	Attrition       string  // "Yes" or "No"
	Age             int     // years
	JobLevel        int     // ordinal 1..5
	JobSatisfaction int     // ordinal 1..4
	JobInvolvement  int     // ordinal 1..4
	MonthlyIncome   float64 // currency units
}

// Left reports whether the employee has left the company.
func (r Record) Left() bool {
	return r.Attrition == AttritionYes
}

// Categorical returns the value of a categorical field by name.
// Unknown field names yield the empty string.
func (r Record) Categorical(field string) string {
	switch field {
	case FieldDepartment:
		return r.Department
	case FieldJobRole:
		return r.JobRole
	case FieldGender:
		return r.Gender
	case FieldMaritalStatus:
		return r.MaritalStatus
	case FieldAttrition:
		return r.Attrition
	default:
		return ""
	}
}

// RecordSet is an ordered sequence of records sharing one schema.
// Order is the load order; semantics never depend on it, but Apply
// preserves it so repeated runs are byte-for-byte comparable.
type RecordSet []Record

// Clone returns an independently owned copy of the set.
func (rs RecordSet) Clone() RecordSet {
	out := make(RecordSet, len(rs))
	copy(out, rs)
	return out
}
