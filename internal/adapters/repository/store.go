// Package repository loads and holds the immutable employee dataset.
package repository

import (
	"context"

	"github.com/okian/staffsight/internal/domain/model"
)

// Store provides read-only access to the loaded dataset. There are no
// mutation methods: the dataset is fixed for the process lifetime and
// safely shared across any number of concurrent readers.
type Store interface {
	// Records returns the full record set in load order.
	Records() model.RecordSet

	// DistinctValues returns the sorted distinct values of a categorical
	// field, used to populate filter option lists.
	DistinctValues(ctx context.Context, field string) []string

	// RolesByDepartment maps each department to its sorted distinct roles.
	// This is the option catalog behind the dependent JobRole filter.
	RolesByDepartment(ctx context.Context) map[string][]string

	// AgeBounds returns the observed minimum and maximum ages.
	AgeBounds(ctx context.Context) (lo, hi int)

	// Count returns the number of records in the dataset.
	Count(ctx context.Context) int
}
