package domain

import "strconv"

// Field names a column of the campaign table. The identifiers match the
// normalised CSV header and the Postgres column names.
type Field string

const (
	FieldCampaignID      Field = "campaign_id"
	FieldCompany         Field = "company"
	FieldCampaignType    Field = "campaign_type"
	FieldTargetAudience  Field = "target_audience"
	FieldDuration        Field = "duration"
	FieldChannelUsed     Field = "channel_used"
	FieldConversionRate  Field = "conversion_rate"
	FieldAcquisitionCost Field = "acquisition_cost"
	FieldROI             Field = "roi"
	FieldLocation        Field = "location"
	FieldDate            Field = "date"
	FieldClicks          Field = "clicks"
	FieldImpressions     Field = "impressions"
	FieldEngagementScore Field = "engagement_score"
	FieldCustomerSegment Field = "customer_segment"

	// FieldMonth is virtual: the date truncated to its calendar month.
	FieldMonth Field = "month"
)

// Columns lists the physical fields in table order.
var Columns = []Field{
	FieldCampaignID,
	FieldCompany,
	FieldCampaignType,
	FieldTargetAudience,
	FieldDuration,
	FieldChannelUsed,
	FieldConversionRate,
	FieldAcquisitionCost,
	FieldROI,
	FieldLocation,
	FieldDate,
	FieldClicks,
	FieldImpressions,
	FieldEngagementScore,
	FieldCustomerSegment,
}

// Numeric reports the value of a numeric field. ok is false for fields
// that are not numeric.
func (c *Campaign) Numeric(f Field) (v float64, ok bool) {
	switch f {
	case FieldConversionRate:
		return c.ConversionRate.InexactFloat64(), true
	case FieldAcquisitionCost:
		return c.AcquisitionCost.InexactFloat64(), true
	case FieldROI:
		return c.ROI.InexactFloat64(), true
	case FieldClicks:
		return float64(c.Clicks), true
	case FieldImpressions:
		return float64(c.Impressions), true
	case FieldEngagementScore:
		return float64(c.EngagementScore), true
	}
	return 0, false
}

// Key reports the grouping key of a categorical field. ok is false for
// fields that cannot be grouped on.
func (c *Campaign) Key(f Field) (v string, ok bool) {
	switch f {
	case FieldCampaignID:
		return strconv.FormatInt(c.ID, 10), true
	case FieldCompany:
		return c.Company, true
	case FieldCampaignType:
		return c.CampaignType, true
	case FieldTargetAudience:
		return c.TargetAudience, true
	case FieldDuration:
		return c.Duration, true
	case FieldChannelUsed:
		return c.ChannelUsed, true
	case FieldLocation:
		return c.Location, true
	case FieldCustomerSegment:
		return c.CustomerSegment, true
	case FieldDate:
		return c.Date.Format("2006-01-02"), true
	case FieldMonth:
		return c.Month(), true
	}
	return "", false
}

// IsNumeric reports whether f can appear in a metric expression.
func (f Field) IsNumeric() bool {
	var c Campaign
	_, ok := c.Numeric(f)
	return ok
}

// IsKey reports whether f can be grouped on.
func (f Field) IsKey() bool {
	var c Campaign
	_, ok := c.Key(f)
	return ok
}
