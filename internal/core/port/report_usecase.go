package port

import (
	"context"
	"errors"

	"campaign-analytics/internal/core/domain"
	"campaign-analytics/internal/core/engine"
)

var (
	// ErrUnknownReport is returned for a report name missing from the
	// catalog.
	ErrUnknownReport = errors.New("unknown report")
	// ErrDatasetEmpty is returned when a source yields no dataset.
	ErrDatasetEmpty = errors.New("dataset is empty")
)

// ReportUseCase defines the analysis operations exposed to the CLI and
// the HTTP layer. This interface represents the primary port into the
// application domain. Mock implementations can be generated from this
// interface for testing.
type ReportUseCase interface {
	// Reports lists the catalog in presentation order.
	Reports() []engine.Spec

	// Run evaluates a named catalog report. ErrUnknownReport is returned
	// when the name is not in the catalog.
	Run(ctx context.Context, name string, o Overrides) (*engine.Result, error)

	// Query evaluates an ad-hoc report specification. An invalid spec
	// yields an *engine.SpecError.
	Query(ctx context.Context, spec engine.Spec) (*engine.Result, error)

	// RunAll evaluates every catalog report over the same dataset with
	// the overrides applied to each and returns the results in catalog
	// order.
	RunAll(ctx context.Context, o Overrides) ([]*engine.Result, error)

	// Diagnostics returns the data-quality summary of the loaded dataset.
	Diagnostics(ctx context.Context) (*domain.Summary, error)
}

// Overrides adjusts a catalog report for a single run. Nil fields keep
// the catalog value.
type Overrides struct {
	Limit            *int
	IncludeUndefined *bool
}

// Apply returns spec with the overrides applied.
func (o Overrides) Apply(spec engine.Spec) engine.Spec {
	if o.Limit != nil {
		spec.Limit = *o.Limit
	}
	if o.IncludeUndefined != nil {
		spec.IncludeUndefined = *o.IncludeUndefined
	}
	return spec
}
