package aggregate

import "github.com/okian/staffsight/internal/domain/model"

// Computation is one named aggregate over a filtered view.
type Computation interface {
	Name() string
	Compute(view model.RecordSet) Result
}

// computation adapts a plain function into a Computation.
type computation struct {
	name string
	fn   func(view model.RecordSet) Result
}

func (c computation) Name() string                        { return c.name }
func (c computation) Compute(view model.RecordSet) Result { return c.fn(view) }

func entry(name string, fn func(model.RecordSet) Result) Computation {
	return computation{name: name, fn: fn}
}

// Catalog is the fixed registry of computations. Every entry shares the
// same zero-handling policy: nothing in the catalog errors or divides by
// zero on an empty view.
type Catalog struct {
	entries []Computation
}

// NewCatalog builds the full catalog backing the dashboard.
func NewCatalog() *Catalog {
	return &Catalog{entries: []Computation{
		entry(TotalCount, computeTotalCount),
		entry(AttritionCount, computeAttritionCount),
		entry(AttritionRate, computeAttritionRate),
		entry(RateByDepartment, computeRateByDepartment),
		entry(RateByGender, computeRateByGender),
		entry(RateByJobRole, computeRateByJobRole),
		entry(RateByJobLevel, computeRateByJobLevel),
		entry(AgeDistribution, computeAgeDistribution),
		entry(MaritalStatusPivot, computeMaritalStatusPivot),
		entry(ScatterProjection, computeScatter),
	}}
}

// Names returns the entry names in registration order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.entries))
	for i, e := range c.entries {
		names[i] = e.Name()
	}
	return names
}

// ComputeAll runs every entry against the view and returns the full
// bundle keyed by name. Entries are independent, but callers publish the
// whole bundle at once so consumers never observe a partial recompute.
func (c *Catalog) ComputeAll(view model.RecordSet) map[string]Result {
	out := make(map[string]Result, len(c.entries))
	for _, e := range c.entries {
		out[e.Name()] = e.Compute(view)
	}
	return out
}
