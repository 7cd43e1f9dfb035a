package postgres

import (
	"context"
	"net/url"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campaign-analytics/internal/config/configs"
	"campaign-analytics/internal/core/domain"
	"campaign-analytics/internal/db"
)

// newTestRepository connects to the database named by PSQL_TEST_ADDRESS
// and skips the test when it is unset.
func newTestRepository(t *testing.T) *CampaignRepository {
	t.Helper()
	addr := os.Getenv("PSQL_TEST_ADDRESS")
	if addr == "" {
		t.Skip("PSQL_TEST_ADDRESS not set")
	}
	u, err := url.Parse(addr)
	require.NoError(t, err)
	require.NoError(t, db.Migrate(addr))

	pool, err := db.NewPostgresPool(context.Background(), configs.Postgres{Addr: *u, PingTimeout: 5 * time.Second})
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return NewCampaignRepository(pool)
}

func TestCampaignRepositoryRoundTrip(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	ds := db.SyntheticDataset(60, 11)
	ds.LoadedAt = ds.LoadedAt.Truncate(time.Microsecond)
	ds.Issues = []domain.Issue{
		{Line: 3, CampaignID: "x", Column: domain.FieldCampaignID, Reason: "not an integer", Rejected: true},
		{Line: 7, CampaignID: "5", Column: domain.FieldClicks, Reason: "clicks exceed impressions"},
	}
	require.NoError(t, repo.SaveDataset(ctx, ds))

	got, err := repo.LoadDataset(ctx)
	require.NoError(t, err)
	assert.Equal(t, ds.ID, got.ID)
	assert.Equal(t, ds.Source, got.Source)
	assert.True(t, ds.LoadedAt.Equal(got.LoadedAt))
	assert.Equal(t, ds.Issues, got.Issues)
	require.Len(t, got.Campaigns, len(ds.Campaigns))
	for i := range ds.Campaigns {
		want, have := ds.Campaigns[i], got.Campaigns[i]
		assert.Equal(t, want.ID, have.ID)
		assert.True(t, want.AcquisitionCost.Equal(have.AcquisitionCost))
		assert.True(t, want.ConversionRate.Equal(have.ConversionRate))
		assert.True(t, want.ROI.Equal(have.ROI))
		assert.Equal(t, want.Month(), have.Month())
		assert.Equal(t, want.Impressions, have.Impressions)
	}

	// a second import replaces the first
	next := db.SyntheticDataset(5, 12)
	require.NoError(t, repo.SaveDataset(ctx, next))
	got, err = repo.LoadDataset(ctx)
	require.NoError(t, err)
	assert.Equal(t, next.ID, got.ID)
	assert.Len(t, got.Campaigns, 5)
	assert.Empty(t, got.Issues)
}
