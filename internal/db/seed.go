package db

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"campaign-analytics/internal/core/domain"
	"campaign-analytics/internal/core/port"
)

var (
	seedCompanies = []string{"Innovate Industries", "NexGen Systems", "Alpha Innovations", "DataTech Solutions", "TechCorp"}
	seedTypes     = []string{"Email", "Influencer", "Display", "Search", "Social Media"}
	seedAudiences = []string{"Men 18-24", "Men 25-34", "Women 25-34", "Women 35-44", "All Ages"}
	seedDurations = []string{"15 days", "30 days", "45 days", "60 days"}
	seedChannels  = []string{"Google Ads", "YouTube", "Instagram", "Website", "Facebook", "Email"}
	seedLocations = []string{"Chicago", "New York", "Los Angeles", "Miami", "Houston"}
	seedSegments  = []string{"Health & Wellness", "Fashionistas", "Outdoor Adventurers", "Foodies", "Tech Enthusiasts"}
)

// SyntheticDataset generates n campaigns from a fixed seed, so the same
// arguments always produce the same table. Every 25th campaign has no
// impressions and no clicks, which leaves its per-row ratios undefined.
func SyntheticDataset(n int, seed int64) *domain.Dataset {
	r := rand.New(rand.NewSource(seed))
	pick := func(values []string) string { return values[r.Intn(len(values))] }
	start := time.Date(2021, time.January, 1, 0, 0, 0, 0, time.UTC)

	ds := &domain.Dataset{
		ID:        uuid.NewSHA1(uuid.NameSpaceOID, []byte(fmt.Sprintf("synthetic/%d/%d", n, seed))),
		Source:    fmt.Sprintf("synthetic(rows=%d,seed=%d)", n, seed),
		LoadedAt:  time.Now().UTC(),
		Campaigns: make([]domain.Campaign, 0, n),
	}
	for i := 1; i <= n; i++ {
		impressions := int64(1000 + r.Intn(9000))
		clicks := int64(100 + r.Intn(900))
		if i%25 == 0 {
			impressions, clicks = 0, 0
		}
		ds.Campaigns = append(ds.Campaigns, domain.Campaign{
			ID:              int64(i),
			Company:         pick(seedCompanies),
			CampaignType:    pick(seedTypes),
			TargetAudience:  pick(seedAudiences),
			Duration:        pick(seedDurations),
			ChannelUsed:     pick(seedChannels),
			ConversionRate:  decimal.New(int64(1+r.Intn(15)), -2),
			AcquisitionCost: decimal.NewFromInt(int64(5000 + r.Intn(15000))),
			ROI:             decimal.New(int64(200+r.Intn(600)), -2),
			Location:        pick(seedLocations),
			Date:            start.AddDate(0, 0, r.Intn(365)),
			Clicks:          clicks,
			Impressions:     impressions,
			EngagementScore: int64(1 + r.Intn(10)),
			CustomerSegment: pick(seedSegments),
		})
	}
	return ds
}

// Seed replaces the stored dataset with n synthetic campaigns.
func Seed(ctx context.Context, store port.CampaignStore, n int, seed int64) (*domain.Dataset, error) {
	if n < 0 {
		return nil, fmt.Errorf("seed: negative row count %d", n)
	}
	ds := SyntheticDataset(n, seed)
	if err := store.SaveDataset(ctx, ds); err != nil {
		return nil, fmt.Errorf("seed: %w", err)
	}
	return ds, nil
}
