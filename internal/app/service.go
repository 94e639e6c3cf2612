// Package service provides the dashboard orchestrator: it owns the filter
// state, re-runs the filter engine and the aggregation catalog on every
// mutation, and publishes the resulting bundle atomically.
package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/okian/staffsight/internal/adapters/repository"
	"github.com/okian/staffsight/internal/domain/aggregate"
	"github.com/okian/staffsight/internal/domain/filterengine"
	"github.com/okian/staffsight/internal/domain/filterstate"
	"github.com/okian/staffsight/internal/domain/model"
	"github.com/okian/staffsight/pkg/logger"
	"github.com/okian/staffsight/pkg/metrics"
)

// KPI is the headline triple shown above every view.
type KPI struct {
	TotalCount     int     `json:"total_count"`
	AttritionCount int     `json:"attrition_count"`
	AttritionRate  float64 `json:"attrition_rate"`
}

// FilterView reports both the current selections and the options each
// control may offer; the dependent JobRole control needs both to render.
type FilterView struct {
	Selected                 filterstate.Selection `json:"selected"`
	OfferedDepartments       []string              `json:"offered_departments"`
	OfferedJobRoles          []string              `json:"offered_job_roles"`
	OfferedGenders           []string              `json:"offered_genders"`
	OfferedAttritionStatuses []string              `json:"offered_attrition_statuses"`
	AgeMin                   int                   `json:"age_min"`
	AgeMax                   int                   `json:"age_max"`
}

// Snapshot is one atomically published result bundle. Every recompute
// produces a fresh snapshot; consumers compare IDs to detect staleness.
type Snapshot struct {
	ID         string                      `json:"id"`
	ComputedAt time.Time                   `json:"computed_at"`
	Filters    FilterView                  `json:"filters"`
	KPI        KPI                         `json:"kpi"`
	Results    map[string]aggregate.Result `json:"results"`
}

// Publisher receives every published snapshot, synchronously, in publish
// order. Rendering collaborators register through WithPublisher.
type Publisher func(Snapshot)

// Service implements the API dependencies for the dashboard.
type Service struct {
	mu sync.Mutex

	store       repository.Store
	state       *filterstate.State
	catalog     *aggregate.Catalog
	datasetPath string
	publishers  []Publisher

	started    bool
	current    Snapshot
	recomputes int64

	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithDatasetPath sets the CSV source loaded on Start.
func WithDatasetPath(path string) Option {
	return func(s *Service) {
		if path != "" {
			s.datasetPath = path
		}
	}
}

// WithStore injects a pre-loaded store, bypassing the CSV load on Start.
func WithStore(store repository.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithPublisher registers a snapshot consumer.
func WithPublisher(p Publisher) Option {
	return func(s *Service) {
		if p != nil {
			s.publishers = append(s.publishers, p)
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		catalog: aggregate.NewCatalog(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start loads the dataset, builds the filter state at select-all and
// computes the initial snapshot. Idempotent.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}

	if s.store == nil {
		start := time.Now()
		store, err := repository.Load(ctx, s.datasetPath)
		if err != nil {
			return fmt.Errorf("start dashboard: %w", err)
		}
		metrics.RecordLoadDuration(float64(time.Since(start).Milliseconds()))
		s.store = store
	}

	minAge, maxAge := s.store.AgeBounds(ctx)
	s.state = filterstate.New(filterstate.Options{
		Departments:       s.store.DistinctValues(ctx, model.FieldDepartment),
		RolesByDepartment: s.store.RolesByDepartment(ctx),
		Genders:           s.store.DistinctValues(ctx, model.FieldGender),
		AttritionStatuses: s.store.DistinctValues(ctx, model.FieldAttrition),
		MinAge:            minAge,
		MaxAge:            maxAge,
	})

	metrics.UpdateDatasetRows(s.store.Count(ctx))
	s.recomputeLocked(ctx)
	s.started = true

	s.logger.Info(ctx, "dashboard service started",
		logger.Int("records", s.store.Count(ctx)),
		logger.Int("aggregates", len(s.catalog.Names())),
	)
	return nil
}

// Stop marks the service stopped. There is nothing asynchronous to drain.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.started {
		return
	}
	s.started = false
	s.logger.Info(context.Background(), "dashboard service stopped")
}

// SetDepartments replaces the department selection and recomputes.
func (s *Service) SetDepartments(ctx context.Context, values []string) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.SetDepartments(values)
	metrics.RecordFilterMutation("department")
	return s.recomputeLocked(ctx)
}

// SetJobRoles replaces the role selection (clamped to offered) and
// recomputes.
func (s *Service) SetJobRoles(ctx context.Context, values []string) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.SetJobRoles(values)
	metrics.RecordFilterMutation("job_role")
	return s.recomputeLocked(ctx)
}

// SetGenders replaces the gender selection and recomputes.
func (s *Service) SetGenders(ctx context.Context, values []string) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.SetGenders(values)
	metrics.RecordFilterMutation("gender")
	return s.recomputeLocked(ctx)
}

// SetAttritionStatuses replaces the attrition selection and recomputes.
func (s *Service) SetAttritionStatuses(ctx context.Context, values []string) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.SetAttritionStatuses(values)
	metrics.RecordFilterMutation("attrition")
	return s.recomputeLocked(ctx)
}

// SetAgeRange replaces the age range and recomputes. A reversed range
// returns filterstate.ErrInvalidRange with the state, and therefore the
// current snapshot, unchanged.
func (s *Service) SetAgeRange(ctx context.Context, lo, hi int) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.state.SetAgeRange(lo, hi); err != nil {
		metrics.RecordInvalidRange()
		return s.current, err
	}
	metrics.RecordFilterMutation("age")
	return s.recomputeLocked(ctx), nil
}

// ResetFilters restores select-all on every dimension and recomputes.
func (s *Service) ResetFilters(ctx context.Context) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Reset()
	metrics.RecordFilterMutation("reset")
	return s.recomputeLocked(ctx)
}

// Snapshot returns the current published bundle.
func (s *Service) Snapshot(_ context.Context) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := map[string]interface{}{
		"started":    s.started,
		"recomputes": s.recomputes,
	}
	if s.store != nil {
		ctx := context.Background()
		stats["datasetRows"] = s.store.Count(ctx)
		stats["filteredRows"] = s.current.KPI.TotalCount
		stats["lastSnapshotID"] = s.current.ID
		stats["lastComputedAt"] = s.current.ComputedAt
	}
	return stats
}

// recomputeLocked runs one full filter-and-aggregate cycle under the
// held mutex and publishes the result. There is no partial-result state:
// every catalog entry is recomputed against the same view and the bundle
// replaces the previous one wholesale.
func (s *Service) recomputeLocked(ctx context.Context) Snapshot {
	start := time.Now()

	sel := s.state.Selection()
	view := filterengine.Apply(s.store.Records(), sel)
	results := s.catalog.ComputeAll(view)

	minAge, maxAge := s.state.AgeBounds()
	snap := Snapshot{
		ID:         uuid.NewString(),
		ComputedAt: time.Now().UTC(),
		Filters: FilterView{
			Selected:                 sel,
			OfferedDepartments:       s.store.DistinctValues(ctx, model.FieldDepartment),
			OfferedJobRoles:          s.state.OfferedJobRoles(),
			OfferedGenders:           s.store.DistinctValues(ctx, model.FieldGender),
			OfferedAttritionStatuses: s.store.DistinctValues(ctx, model.FieldAttrition),
			AgeMin:                   minAge,
			AgeMax:                   maxAge,
		},
		KPI: KPI{
			TotalCount:     int(results[aggregate.TotalCount].Scalar),
			AttritionCount: int(results[aggregate.AttritionCount].Scalar),
			AttritionRate:  results[aggregate.AttritionRate].Scalar,
		},
		Results: results,
	}
	s.current = snap
	s.recomputes++

	metrics.RecordRecompute(float64(time.Since(start).Milliseconds()), snap.ComputedAt.Unix())
	metrics.UpdateFilteredRows(snap.KPI.TotalCount)
	metrics.UpdateAttritionRate(snap.KPI.AttritionRate)

	for _, publish := range s.publishers {
		publish(snap)
	}

	s.logger.Debug(ctx, "snapshot published",
		logger.String("id", snap.ID),
		logger.Int("rows", snap.KPI.TotalCount),
		logger.Float64("attritionRate", snap.KPI.AttritionRate),
	)
	return snap
}
