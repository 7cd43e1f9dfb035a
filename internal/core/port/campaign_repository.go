package port

import (
	"context"

	"campaign-analytics/internal/core/domain"
)

// CampaignSource provides the campaign table to analyse. It is an
// outbound port implemented by the CSV loader and the Postgres store.
type CampaignSource interface {
	// LoadDataset returns the whole imported dataset. Callers treat the
	// result as immutable.
	LoadDataset(ctx context.Context) (*domain.Dataset, error)
}

// CampaignStore persists an imported dataset. A save replaces whatever
// dataset was stored before; there is a single writer at setup time.
type CampaignStore interface {
	SaveDataset(ctx context.Context, ds *domain.Dataset) error
}
