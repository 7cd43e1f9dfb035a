package engine

import (
	"fmt"

	"campaign-analytics/internal/core/domain"
)

// Thresholds parameterise the filtering reports of the catalog.
type Thresholds struct {
	TopN            int     // top_locations_by_impressions
	CTR             float64 // ctr_above_threshold, percent
	HighCTR         float64 // high_ctr_high_roi, percent
	HighROI         float64 // high_ctr_high_roi
	LowEngagement   float64 // low_engagement_high_impression
	HighImpressions float64 // low_engagement_high_impression, average per campaign
	LowCost         float64 // low_cost_high_engagement
	HighEngagement  float64 // low_cost_high_engagement
	BudgetCutN      int     // budget_cut_simulation
}

// DefaultThresholds returns the thresholds used when none are configured.
func DefaultThresholds() Thresholds {
	return Thresholds{
		TopN:            5,
		CTR:             95,
		HighCTR:         20,
		HighROI:         5,
		LowEngagement:   4,
		HighImpressions: 5000,
		LowCost:         6000,
		HighEngagement:  8,
		BudgetCutN:      10,
	}
}

// Shared expressions.
var (
	conversions = Mul(domain.FieldClicks, domain.FieldConversionRate)
	ctrPercent  = Col(domain.FieldClicks).Scale(100)
	impressions = Col(domain.FieldImpressions)
	cost        = Col(domain.FieldAcquisitionCost)
	roi         = Col(domain.FieldROI)
	engagement  = Col(domain.FieldEngagementScore)
	engROI      = Mul(domain.FieldROI, domain.FieldEngagementScore)
)

func ptr(e Expr) *Expr { return &e }

// Catalog returns the named reports in presentation order.
func Catalog(t Thresholds) []Spec {
	return []Spec{
		{
			Name:    "highest_roi",
			Title:   "Campaigns with the highest ROI",
			GroupBy: []domain.Field{domain.FieldCampaignID, domain.FieldCompany},
			Metrics: []Metric{{Name: "roi", Kind: KindMax, Expr: roi}},
			Limit:   10,
		},
		{
			Name:    "top_impressions",
			Title:   "Campaigns with the most impressions",
			GroupBy: []domain.Field{domain.FieldCampaignID, domain.FieldCompany},
			Metrics: []Metric{{Name: "impressions", Kind: KindSum, Expr: impressions}},
			Limit:   10,
		},
		{
			Name:    "top_locations_by_impressions",
			Title:   fmt.Sprintf("Top %d locations by impressions", t.TopN),
			GroupBy: []domain.Field{domain.FieldLocation},
			Metrics: []Metric{{Name: "impressions", Kind: KindSum, Expr: impressions}},
			Limit:   t.TopN,
		},
		{
			Name:    "avg_engagement_by_audience",
			Title:   "Average engagement score by target audience",
			GroupBy: []domain.Field{domain.FieldTargetAudience},
			Metrics: []Metric{{Name: "avg_engagement", Kind: KindAvg, Expr: engagement}},
		},
		{
			Name:        "overall_ctr",
			Title:       "Overall click-through rate",
			Description: "clicks × 100 / impressions over all campaigns",
			Metrics:     []Metric{{Name: "ctr", Kind: KindRatioOfSums, Expr: ctrPercent, By: ptr(impressions)}},
		},
		{
			Name:    "cost_per_conversion",
			Title:   "Campaigns with the lowest cost per conversion",
			GroupBy: []domain.Field{domain.FieldCampaignID},
			Metrics: []Metric{{Name: "cost_per_conversion", Kind: KindRowRatio, Expr: cost, By: ptr(conversions)}},
			Sort:    []SortKey{{By: "cost_per_conversion"}},
			Limit:   10,
		},
		{
			Name:    "ctr_above_threshold",
			Title:   fmt.Sprintf("Campaigns with CTR above %g%%", t.CTR),
			GroupBy: []domain.Field{domain.FieldCampaignID},
			Metrics: []Metric{{Name: "ctr", Kind: KindRowRatio, Expr: ctrPercent, By: ptr(impressions)}},
			Having:  []GroupCondition{{Metric: "ctr", Op: OpGT, Value: t.CTR}},
		},
		{
			Name:    "conversions_by_channel",
			Title:   "Conversions by channel",
			GroupBy: []domain.Field{domain.FieldChannelUsed},
			Metrics: []Metric{{Name: "conversions", Kind: KindSum, Expr: conversions}},
		},
		{
			Name:    "roi_per_impression",
			Title:   "ROI per impression",
			GroupBy: []domain.Field{domain.FieldCampaignID},
			Metrics: []Metric{{Name: "roi_per_impression", Kind: KindRowRatio, Expr: roi, By: ptr(impressions)}},
			Limit:   10,
		},
		{
			Name:    "conversions_per_1000_impressions",
			Title:   "Conversions per 1000 impressions by channel",
			GroupBy: []domain.Field{domain.FieldChannelUsed},
			Metrics: []Metric{{Name: "conversions_per_mille", Kind: KindRatioOfSums, Expr: conversions.Scale(1000), By: ptr(impressions)}},
		},
		{
			Name:             "cost_per_conversion_by_month",
			Title:            "Cost per conversion by month",
			GroupBy:          []domain.Field{domain.FieldMonth},
			Metrics:          []Metric{{Name: "cost_per_conversion", Kind: KindRatioOfSums, Expr: cost, By: ptr(conversions)}},
			Sort:             []SortKey{{By: string(domain.FieldMonth)}},
			IncludeUndefined: true,
		},
		{
			Name:    "high_ctr_high_roi",
			Title:   fmt.Sprintf("Campaigns with CTR above %g%% and ROI above %g", t.HighCTR, t.HighROI),
			GroupBy: []domain.Field{domain.FieldCampaignID},
			Metrics: []Metric{
				{Name: "roi", Kind: KindAvg, Expr: roi},
				{Name: "ctr", Kind: KindRowRatio, Expr: ctrPercent, By: ptr(impressions)},
			},
			Having: []GroupCondition{
				{Metric: "ctr", Op: OpGT, Value: t.HighCTR},
				{Metric: "roi", Op: OpGT, Value: t.HighROI},
			},
		},
		{
			Name:    "engagement_adjusted_roi",
			Title:   "Engagement-adjusted ROI by channel",
			GroupBy: []domain.Field{domain.FieldChannelUsed},
			Metrics: []Metric{{Name: "engagement_roi", Kind: KindAvg, Expr: engROI}},
		},
		{
			Name:    "audience_segment_efficiency",
			Title:   "Cost per conversion by audience and customer segment",
			GroupBy: []domain.Field{domain.FieldTargetAudience, domain.FieldCustomerSegment},
			Metrics: []Metric{
				{Name: "cost_per_conversion", Kind: KindRatioOfSums, Expr: cost, By: ptr(conversions)},
				{Name: "conversions", Kind: KindSum, Expr: conversions},
			},
			Sort: []SortKey{{By: "cost_per_conversion"}},
		},
		{
			Name:    "low_engagement_high_impression",
			Title:   "Segments with low engagement and high impressions",
			GroupBy: []domain.Field{domain.FieldCustomerSegment, domain.FieldChannelUsed},
			Metrics: []Metric{
				{Name: "avg_engagement", Kind: KindAvg, Expr: engagement},
				{Name: "avg_impressions", Kind: KindAvg, Expr: impressions},
			},
			Having: []GroupCondition{
				{Metric: "avg_engagement", Op: OpLT, Value: t.LowEngagement},
				{Metric: "avg_impressions", Op: OpGT, Value: t.HighImpressions},
			},
			Sort: []SortKey{{By: "avg_impressions", Desc: true}},
		},
		{
			Name:    "audience_channel_performance",
			Title:   "Audience and channel pairing performance",
			GroupBy: []domain.Field{domain.FieldTargetAudience, domain.FieldChannelUsed},
			Metrics: []Metric{
				{Name: "avg_roi", Kind: KindAvg, Expr: roi},
				{Name: "ctr", Kind: KindRatioOfSums, Expr: ctrPercent, By: ptr(impressions)},
			},
		},
		{
			Name:    "spend_vs_roi_by_company",
			Title:   "Total spend and average ROI by company",
			GroupBy: []domain.Field{domain.FieldCompany},
			Metrics: []Metric{
				{Name: "total_spend", Kind: KindSum, Expr: cost},
				{Name: "avg_roi", Kind: KindAvg, Expr: roi},
			},
		},
		{
			Name:    "cost_roi_correlation_by_channel",
			Title:   "Correlation between acquisition cost and ROI by channel",
			GroupBy: []domain.Field{domain.FieldChannelUsed},
			Metrics: []Metric{{Name: "cost_roi_correlation", Kind: KindCorrelation, Expr: cost, By: ptr(roi)}},
		},
		{
			Name:        "budget_cut_simulation",
			Title:       "Campaigns with the fewest conversions per dollar",
			Description: "candidates for a budget cut, lowest return first",
			GroupBy:     []domain.Field{domain.FieldCampaignID, domain.FieldChannelUsed},
			Metrics:     []Metric{{Name: "conversions_per_dollar", Kind: KindRowRatio, Expr: conversions, By: ptr(cost)}},
			Sort:        []SortKey{{By: "conversions_per_dollar"}},
			Limit:       t.BudgetCutN,
		},
		{
			Name:    "region_performance",
			Title:   "Region performance",
			GroupBy: []domain.Field{domain.FieldLocation},
			Metrics: []Metric{
				{Name: "avg_roi", Kind: KindAvg, Expr: roi},
				{Name: "ctr", Kind: KindRatioOfSums, Expr: ctrPercent, By: ptr(impressions)},
				{Name: "conversions", Kind: KindSum, Expr: conversions},
			},
		},
		{
			Name:    "low_cost_high_engagement",
			Title:   fmt.Sprintf("Campaigns costing under %g with engagement above %g", t.LowCost, t.HighEngagement),
			GroupBy: []domain.Field{domain.FieldCampaignID, domain.FieldCompany},
			Where: []RowCondition{
				{Expr: cost, Op: OpLT, Value: t.LowCost},
				{Expr: engagement, Op: OpGT, Value: t.HighEngagement},
			},
			Metrics: []Metric{
				{Name: "engagement", Kind: KindAvg, Expr: engagement},
				{Name: "acquisition_cost", Kind: KindSum, Expr: cost},
			},
			Sort: []SortKey{{By: "engagement", Desc: true}, {By: "acquisition_cost"}},
		},
		{
			Name:    "underutilized_channel_engagement_roi",
			Title:   "Least used channels ranked by engagement-adjusted ROI",
			GroupBy: []domain.Field{domain.FieldChannelUsed},
			Metrics: []Metric{
				{Name: "campaigns", Kind: KindCount},
				{Name: "engagement_roi", Kind: KindAvg, Expr: engROI},
			},
			Sort: []SortKey{{By: "campaigns"}, {By: "engagement_roi", Desc: true}},
		},
	}
}

// Lookup finds a catalog report by name.
func Lookup(catalog []Spec, name string) (Spec, bool) {
	for _, s := range catalog {
		if s.Name == name {
			return s, true
		}
	}
	return Spec{}, false
}
