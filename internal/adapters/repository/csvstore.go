package repository

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"sync"

	"github.com/okian/staffsight/internal/domain/model"
)

// Columns every source must carry. Extra columns are ignored.
var requiredColumns = []string{
	"EmployeeNumber",
	"Department",
	"JobRole",
	"Gender",
	"MaritalStatus",
	"Attrition",
	"Age",
	"JobLevel",
	"JobSatisfaction",
	"JobInvolvement",
	"MonthlyIncome",
}

// loadCache holds one store per source path for the process lifetime.
// The source is assumed immutable, so there is no invalidation.
var loadCache sync.Map // abs path -> *CSVStore

// CSVStore is the Store implementation backed by a CSV file.
type CSVStore struct {
	source  string
	records model.RecordSet

	distinct map[string][]string
	roles    map[string][]string
	minAge   int
	maxAge   int
}

// Load parses the CSV source at path and returns a Store over it.
// Loads are idempotent: repeated calls for the same path return the same
// cached store. Any missing file, malformed row or absent required column
// fails with an ErrDataLoad-wrapped error.
func Load(ctx context.Context, path string) (*CSVStore, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("%w: resolve %q: %v", ErrDataLoad, path, err)
	}
	if cached, ok := loadCache.Load(abs); ok {
		return cached.(*CSVStore), nil
	}

	f, err := os.Open(abs)
	if err != nil {
		return nil, fmt.Errorf("%w: open %q: %v", ErrDataLoad, path, err)
	}
	defer f.Close()

	records, err := parse(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrDataLoad, path, err)
	}

	s := &CSVStore{source: abs, records: records}
	s.index()

	// First load wins if two goroutines race on the same path.
	actual, _ := loadCache.LoadOrStore(abs, s)
	return actual.(*CSVStore), nil
}

// parse reads the header, validates the schema and converts every row.
func parse(r io.Reader) (model.RecordSet, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %v", err)
	}
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[name] = i
	}
	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("missing required column %q", name)
		}
	}

	var records model.RecordSet
	for line := 2; ; line++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %v", line, err)
		}
		rec, err := parseRow(cols, row)
		if err != nil {
			return nil, fmt.Errorf("line %d: %v", line, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

func parseRow(cols map[string]int, row []string) (model.Record, error) {
	cell := func(name string) string { return row[cols[name]] }
	intCell := func(name string) (int, error) {
		v, err := strconv.Atoi(cell(name))
		if err != nil {
			return 0, fmt.Errorf("column %s: %v", name, err)
		}
		return v, nil
	}

	var rec model.Record
	var err error
	if rec.EmployeeNumber, err = intCell("EmployeeNumber"); err != nil {
		return rec, err
	}
	if rec.Age, err = intCell("Age"); err != nil {
		return rec, err
	}
	if rec.JobLevel, err = intCell("JobLevel"); err != nil {
		return rec, err
	}
	if rec.JobSatisfaction, err = intCell("JobSatisfaction"); err != nil {
		return rec, err
	}
	if rec.JobInvolvement, err = intCell("JobInvolvement"); err != nil {
		return rec, err
	}
	if rec.MonthlyIncome, err = strconv.ParseFloat(cell("MonthlyIncome"), 64); err != nil {
		return rec, fmt.Errorf("column MonthlyIncome: %v", err)
	}
	rec.Department = cell("Department")
	rec.JobRole = cell("JobRole")
	rec.Gender = cell("Gender")
	rec.MaritalStatus = cell("MaritalStatus")
	rec.Attrition = cell("Attrition")
	return rec, nil
}

// index precomputes distinct values, the department->roles catalog and
// the age bounds so option lookups never rescan the records.
func (s *CSVStore) index() {
	s.distinct = make(map[string][]string)
	for _, field := range []string{
		model.FieldDepartment, model.FieldJobRole, model.FieldGender,
		model.FieldMaritalStatus, model.FieldAttrition,
	} {
		seen := make(map[string]struct{})
		var values []string
		for _, rec := range s.records {
			v := rec.Categorical(field)
			if _, ok := seen[v]; ok {
				continue
			}
			seen[v] = struct{}{}
			values = append(values, v)
		}
		sort.Strings(values)
		s.distinct[field] = values
	}

	s.roles = make(map[string][]string)
	roleSeen := make(map[string]map[string]struct{})
	for _, rec := range s.records {
		set, ok := roleSeen[rec.Department]
		if !ok {
			set = make(map[string]struct{})
			roleSeen[rec.Department] = set
		}
		if _, ok := set[rec.JobRole]; !ok {
			set[rec.JobRole] = struct{}{}
			s.roles[rec.Department] = append(s.roles[rec.Department], rec.JobRole)
		}
	}
	for dept := range s.roles {
		sort.Strings(s.roles[dept])
	}

	for i, rec := range s.records {
		if i == 0 || rec.Age < s.minAge {
			s.minAge = rec.Age
		}
		if i == 0 || rec.Age > s.maxAge {
			s.maxAge = rec.Age
		}
	}
}

// Records returns the full record set in load order.
func (s *CSVStore) Records() model.RecordSet {
	return s.records
}

// DistinctValues returns the sorted distinct values of a categorical field.
func (s *CSVStore) DistinctValues(_ context.Context, field string) []string {
	values := s.distinct[field]
	out := make([]string, len(values))
	copy(out, values)
	return out
}

// RolesByDepartment returns the department -> sorted roles catalog.
func (s *CSVStore) RolesByDepartment(_ context.Context) map[string][]string {
	out := make(map[string][]string, len(s.roles))
	for dept, roles := range s.roles {
		c := make([]string, len(roles))
		copy(c, roles)
		out[dept] = c
	}
	return out
}

// AgeBounds returns the observed minimum and maximum ages.
func (s *CSVStore) AgeBounds(_ context.Context) (lo, hi int) {
	return s.minAge, s.maxAge
}

// Count returns the number of records.
func (s *CSVStore) Count(_ context.Context) int {
	return len(s.records)
}

// Source returns the cleaned absolute path the store was loaded from.
func (s *CSVStore) Source() string {
	return s.source
}
