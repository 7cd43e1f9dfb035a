package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"campaign-analytics/internal/core/domain"
	"campaign-analytics/internal/core/engine"
	"campaign-analytics/internal/core/port"
)

// ReportUseCase evaluates catalog and ad-hoc reports over a dataset that
// is loaded once from its source and never mutated afterwards. It
// implements port.ReportUseCase.
type ReportUseCase struct {
	source  port.CampaignSource
	catalog []engine.Spec
	logger  *slog.Logger

	// workers bounds the number of reports RunAll evaluates at once.
	workers int

	mu      sync.Mutex
	dataset *domain.Dataset
}

// NewReportUseCase creates a usecase reading from source. A workers value
// below one runs RunAll sequentially.
func NewReportUseCase(source port.CampaignSource, catalog []engine.Spec, workers int, logger *slog.Logger) *ReportUseCase {
	if workers < 1 {
		workers = 1
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &ReportUseCase{source: source, catalog: catalog, workers: workers, logger: logger}
}

// Dataset returns the loaded dataset, loading it on first use. A failed
// load is not cached, the next call tries again.
func (u *ReportUseCase) Dataset(ctx context.Context) (*domain.Dataset, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.dataset != nil {
		return u.dataset, nil
	}

	start := time.Now()
	ds, err := u.source.LoadDataset(ctx)
	if err != nil {
		return nil, fmt.Errorf("load dataset: %w", err)
	}
	if ds == nil {
		return nil, port.ErrDatasetEmpty
	}

	sum := ds.Summary()
	u.logger.Info("dataset loaded",
		slog.String("dataset_id", ds.ID.String()),
		slog.String("source", ds.Source),
		slog.Int("campaigns", sum.Campaigns),
		slog.Duration("took", time.Since(start)),
	)
	if sum.Rejected > 0 || sum.Flagged > 0 {
		u.logger.Warn("dataset has data-quality issues",
			slog.Int("rejected", sum.Rejected),
			slog.Int("flagged", sum.Flagged),
		)
	}
	u.dataset = ds
	return ds, nil
}

// Reports lists the catalog in presentation order.
func (u *ReportUseCase) Reports() []engine.Spec {
	return u.catalog
}

// Run evaluates the named catalog report with the overrides applied.
func (u *ReportUseCase) Run(ctx context.Context, name string, o port.Overrides) (*engine.Result, error) {
	spec, ok := engine.Lookup(u.catalog, name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", port.ErrUnknownReport, name)
	}
	return u.Query(ctx, o.Apply(spec))
}

// Query evaluates an ad-hoc spec over the dataset. The spec is validated
// before the dataset is loaded.
func (u *ReportUseCase) Query(ctx context.Context, spec engine.Spec) (*engine.Result, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	ds, err := u.Dataset(ctx)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	res, err := engine.Run(ctx, ds.Campaigns, spec)
	if err != nil {
		return nil, err
	}
	u.logger.Debug("report evaluated",
		slog.String("report", spec.Name),
		slog.Int("rows", len(res.Rows)),
		slog.Int("excluded", res.Excluded),
		slog.Duration("took", time.Since(start)),
	)
	return res, nil
}

// RunAll evaluates every catalog report concurrently over the shared
// campaign slice. Runs only read the slice so no locking is needed. The
// first failure cancels the remaining runs.
func (u *ReportUseCase) RunAll(ctx context.Context, o port.Overrides) ([]*engine.Result, error) {
	ds, err := u.Dataset(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]*engine.Result, len(u.catalog))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(u.workers)
	for i, spec := range u.catalog {
		spec = o.Apply(spec)
		g.Go(func() error {
			res, err := engine.Run(ctx, ds.Campaigns, spec)
			if err != nil {
				return fmt.Errorf("report %s: %w", spec.Name, err)
			}
			results[i] = res
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Diagnostics returns the data-quality summary of the dataset.
func (u *ReportUseCase) Diagnostics(ctx context.Context) (*domain.Summary, error) {
	ds, err := u.Dataset(ctx)
	if err != nil {
		return nil, err
	}
	sum := ds.Summary()
	return &sum, nil
}
