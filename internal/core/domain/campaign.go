package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Campaign represents one marketing campaign row of the imported table.
// Money and rate columns are kept as decimals exactly as they were
// normalised at load time; the aggregation engine reads them through
// Float accessors.
type Campaign struct {
	ID              int64
	Company         string
	CampaignType    string
	TargetAudience  string
	Duration        string // free text, e.g. "30 days"
	ChannelUsed     string
	ConversionRate  decimal.Decimal // fraction in [0,1]
	AcquisitionCost decimal.Decimal // plain amount, currency formatting stripped
	ROI             decimal.Decimal
	Location        string
	Date            time.Time // day/month order resolved at ingestion
	Clicks          int64
	Impressions     int64
	EngagementScore int64
	CustomerSegment string
}

// Month returns the campaign date truncated to its calendar month in
// YYYY-MM form.
func (c *Campaign) Month() string {
	return c.Date.Format("2006-01")
}

// Conversions estimates converted users as clicks × conversion rate.
func (c *Campaign) Conversions() float64 {
	return float64(c.Clicks) * c.ConversionRate.InexactFloat64()
}
