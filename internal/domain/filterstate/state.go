// Package filterstate maintains the current filter selections and their
// dependency rules. JobRole options are constrained by the Department
// selection: the offered role set is always the union of roles present in
// the selected departments, and the selected roles are always a subset of
// the offered set. Setters keep that invariant on every call, so callers
// never observe a selected-but-unoffered role.
package filterstate

import (
	"fmt"
	"sort"
)

// Options describes the dataset-wide option domains the state draws from.
// Built once from the record store and never mutated afterwards.
type Options struct {
	Departments       []string            // sorted distinct departments
	RolesByDepartment map[string][]string // department -> sorted distinct roles
	Genders           []string            // sorted distinct genders
	AttritionStatuses []string            // sorted distinct attrition values
	MinAge            int
	MaxAge            int
}

// Selection is an immutable snapshot of the current selections, consumed
// by the filter engine and published in snapshots.
type Selection struct {
	Departments       []string `json:"departments"`
	JobRoles          []string `json:"job_roles"`
	Genders           []string `json:"genders"`
	AttritionStatuses []string `json:"attrition_statuses"`
	AgeLo             int      `json:"age_lo"`
	AgeHi             int      `json:"age_hi"`
}

// State holds the mutable filter selections. Not safe for concurrent use;
// the orchestrator serializes mutations.
type State struct {
	opts Options

	departments  []string
	offeredRoles []string
	jobRoles     []string
	genders      []string
	attrition    []string
	ageLo        int
	ageHi        int
}

// New builds a State with every dimension at select-all, mirroring the
// dashboard's default view.
func New(opts Options) *State {
	s := &State{opts: opts}
	s.Reset()
	return s
}

// Reset restores select-all on every dimension and the full age range.
func (s *State) Reset() {
	s.departments = cloneSorted(s.opts.Departments)
	s.offeredRoles = s.rolesFor(s.departments)
	s.jobRoles = cloneSorted(s.offeredRoles)
	s.genders = cloneSorted(s.opts.Genders)
	s.attrition = cloneSorted(s.opts.AttritionStatuses)
	s.ageLo = s.opts.MinAge
	s.ageHi = s.opts.MaxAge
}

// SetDepartments replaces the department selection. Unknown values are
// dropped. The offered role set is recomputed from the new selection and
// the current role selection is intersected with it; an empty intersection
// resets roles to select-all of the offered set so the view never goes
// empty purely from dependent narrowing.
func (s *State) SetDepartments(values []string) {
	s.departments = intersect(values, s.opts.Departments)
	s.offeredRoles = s.rolesFor(s.departments)

	kept := intersect(s.jobRoles, s.offeredRoles)
	if len(kept) == 0 {
		kept = cloneSorted(s.offeredRoles)
	}
	s.jobRoles = kept
}

// SetJobRoles replaces the role selection, clamped to the offered set.
// An empty result after clamping resets to select-all of the offered set.
func (s *State) SetJobRoles(values []string) {
	kept := intersect(values, s.offeredRoles)
	if len(kept) == 0 {
		kept = cloneSorted(s.offeredRoles)
	}
	s.jobRoles = kept
}

// SetGenders replaces the gender selection. No dependency rules apply.
func (s *State) SetGenders(values []string) {
	s.genders = cloneSorted(values)
}

// SetAttritionStatuses replaces the attrition selection. No dependency
// rules apply.
func (s *State) SetAttritionStatuses(values []string) {
	s.attrition = cloneSorted(values)
}

// SetAgeRange replaces the inclusive age range. A reversed range returns
// ErrInvalidRange and leaves the state untouched. Bounds beyond the
// dataset's observed ages are clamped rather than rejected.
func (s *State) SetAgeRange(lo, hi int) error {
	if lo > hi {
		return fmt.Errorf("%w: lo %d > hi %d", ErrInvalidRange, lo, hi)
	}
	if lo < s.opts.MinAge {
		lo = s.opts.MinAge
	}
	if hi > s.opts.MaxAge {
		hi = s.opts.MaxAge
	}
	s.ageLo, s.ageHi = lo, hi
	return nil
}

// OfferedJobRoles returns the roles currently offered by the department
// selection.
func (s *State) OfferedJobRoles() []string {
	return cloneSorted(s.offeredRoles)
}

// Selection returns an immutable snapshot of the current selections.
func (s *State) Selection() Selection {
	return Selection{
		Departments:       cloneSorted(s.departments),
		JobRoles:          cloneSorted(s.jobRoles),
		Genders:           cloneSorted(s.genders),
		AttritionStatuses: cloneSorted(s.attrition),
		AgeLo:             s.ageLo,
		AgeHi:             s.ageHi,
	}
}

// AgeBounds returns the dataset-wide age domain.
func (s *State) AgeBounds() (lo, hi int) {
	return s.opts.MinAge, s.opts.MaxAge
}

// rolesFor unions the role lists of the given departments.
func (s *State) rolesFor(departments []string) []string {
	seen := make(map[string]struct{})
	var roles []string
	for _, d := range departments {
		for _, r := range s.opts.RolesByDepartment[d] {
			if _, ok := seen[r]; ok {
				continue
			}
			seen[r] = struct{}{}
			roles = append(roles, r)
		}
	}
	sort.Strings(roles)
	return roles
}

// intersect returns the sorted, deduplicated values present in allowed.
func intersect(values, allowed []string) []string {
	set := make(map[string]struct{}, len(allowed))
	for _, a := range allowed {
		set[a] = struct{}{}
	}
	seen := make(map[string]struct{}, len(values))
	var out []string
	for _, v := range values {
		if _, ok := set[v]; !ok {
			continue
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

func cloneSorted(values []string) []string {
	out := make([]string, len(values))
	copy(out, values)
	sort.Strings(out)
	return out
}
