package engine

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campaign-analytics/internal/core/domain"
)

func campaign(id int64, channel string, clicks, impressions int64) domain.Campaign {
	return domain.Campaign{
		ID:              id,
		Company:         "Acme",
		ChannelUsed:     channel,
		TargetAudience:  "Men 18-24",
		CustomerSegment: "Tech",
		Location:        "Chicago",
		ConversionRate:  decimal.RequireFromString("0.10"),
		AcquisitionCost: decimal.RequireFromString("1000"),
		ROI:             decimal.RequireFromString("2.50"),
		Date:            time.Date(2021, time.January, 13, 0, 0, 0, 0, time.UTC),
		Clicks:          clicks,
		Impressions:     impressions,
		EngagementScore: 5,
	}
}

// TestOverallCTR covers the three-record example: the zero impression
// row adds nothing to either sum and does not make the total undefined.
func TestOverallCTR(t *testing.T) {
	records := []domain.Campaign{
		campaign(1, "Email", 10, 100),
		campaign(2, "Email", 0, 0),
		campaign(3, "Email", 5, 50),
	}
	spec, ok := Lookup(Catalog(DefaultThresholds()), "overall_ctr")
	require.True(t, ok)

	res, err := Run(context.Background(), records, spec)
	require.NoError(t, err)
	require.Len(t, res.Rows, 1)

	v := res.Rows[0].Values[0]
	assert.True(t, v.Defined)
	assert.InDelta(t, 10.0, v.Float, 1e-9)
	assert.Equal(t, 3, res.Rows[0].Count)
}

func TestRowRatioZeroDenominatorIsUndefined(t *testing.T) {
	records := []domain.Campaign{
		campaign(1, "Email", 10, 100),
		campaign(2, "Email", 0, 0),
		campaign(3, "Email", 5, 50),
	}
	spec := Spec{
		Name:    "ctr",
		GroupBy: []domain.Field{domain.FieldCampaignID},
		Metrics: []Metric{{Name: "ctr", Kind: KindRowRatio, Expr: ctrPercent, By: ptr(impressions)}},
	}

	res, err := Run(context.Background(), records, spec)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Excluded)
	require.Len(t, res.Rows, 2)
	for _, r := range res.Rows {
		assert.NotEqual(t, "2", r.Keys[0])
	}

	spec.IncludeUndefined = true
	res, err = Run(context.Background(), records, spec)
	require.NoError(t, err)
	require.Len(t, res.Rows, 3)
	last := res.Rows[2]
	assert.Equal(t, "2", last.Keys[0])
	assert.False(t, last.Values[0].Defined)
}

func TestRatioOfSumsUndefinedExcludedFromTopN(t *testing.T) {
	records := []domain.Campaign{
		campaign(1, "Email", 10, 100),
		campaign(2, "Radio", 0, 0),
		campaign(3, "Radio", 0, 0),
		campaign(4, "Web", 30, 100),
	}
	spec := Spec{
		Name:    "ctr_by_channel",
		GroupBy: []domain.Field{domain.FieldChannelUsed},
		Metrics: []Metric{{Name: "ctr", Kind: KindRatioOfSums, Expr: ctrPercent, By: ptr(impressions)}},
		Limit:   3,
	}

	res, err := Run(context.Background(), records, spec)
	require.NoError(t, err)
	require.Len(t, res.Rows, 2)
	assert.Equal(t, []string{"Web"}, res.Rows[0].Keys)
	assert.Equal(t, []string{"Email"}, res.Rows[1].Keys)
	assert.Equal(t, 1, res.Excluded)
}

func TestSumClicksMatchesConstituents(t *testing.T) {
	var records []domain.Campaign
	want := map[string]float64{}
	channels := []string{"Email", "Web", "Radio", "TV"}
	for i := int64(1); i <= 200; i++ {
		ch := channels[i%int64(len(channels))]
		c := campaign(i, ch, i*3, i*10)
		records = append(records, c)
		want[ch] += float64(c.Clicks)
	}
	spec := Spec{
		Name:    "clicks",
		GroupBy: []domain.Field{domain.FieldChannelUsed},
		Metrics: []Metric{{Name: "clicks", Kind: KindSum, Expr: Col(domain.FieldClicks)}},
	}

	res, err := Run(context.Background(), records, spec)
	require.NoError(t, err)
	require.Len(t, res.Rows, len(channels))

	var total int
	for _, r := range res.Rows {
		assert.Equal(t, want[r.Keys[0]], r.Values[0].Float, r.Keys[0])
		total += r.Count
	}
	assert.Equal(t, len(records), total)
}

func TestRunIsDeterministic(t *testing.T) {
	var records []domain.Campaign
	for i := int64(1); i <= 50; i++ {
		// many ties on impressions
		records = append(records, campaign(i, []string{"Email", "Web"}[i%2], i%7, 100))
	}
	for _, spec := range Catalog(DefaultThresholds()) {
		a, err := Run(context.Background(), records, spec)
		require.NoError(t, err, spec.Name)
		b, err := Run(context.Background(), records, spec)
		require.NoError(t, err, spec.Name)

		ja, err := json.Marshal(a)
		require.NoError(t, err)
		jb, err := json.Marshal(b)
		require.NoError(t, err)
		assert.Equal(t, string(ja), string(jb), spec.Name)
	}
}

func TestMonthBucketUsesParsedDate(t *testing.T) {
	jan := campaign(1, "Email", 1, 10) // 13 January 2021
	other := campaign(2, "Email", 1, 10)
	other.Date = time.Date(2021, time.January, 2, 0, 0, 0, 0, time.UTC)
	dec := campaign(3, "Email", 1, 10)
	dec.Date = time.Date(2021, time.December, 1, 0, 0, 0, 0, time.UTC)

	spec := Spec{
		Name:    "by_month",
		GroupBy: []domain.Field{domain.FieldMonth},
		Metrics: []Metric{{Name: "campaigns", Kind: KindCount}},
		Sort:    []SortKey{{By: "month"}},
	}

	alone, err := Run(context.Background(), []domain.Campaign{jan}, spec)
	require.NoError(t, err)
	require.Len(t, alone.Rows, 1)
	assert.Equal(t, []string{"2021-01"}, alone.Rows[0].Keys)

	mixed, err := Run(context.Background(), []domain.Campaign{dec, jan, other}, spec)
	require.NoError(t, err)
	require.Len(t, mixed.Rows, 2)
	assert.Equal(t, []string{"2021-01"}, mixed.Rows[0].Keys)
	assert.Equal(t, 2, mixed.Rows[0].Count)
	assert.Equal(t, []string{"2021-12"}, mixed.Rows[1].Keys)
}

func TestCorrelation(t *testing.T) {
	mk := func(id int64, cost, roi string) domain.Campaign {
		c := campaign(id, "Email", 1, 1)
		c.AcquisitionCost = decimal.RequireFromString(cost)
		c.ROI = decimal.RequireFromString(roi)
		return c
	}
	spec := Spec{
		Name:    "corr",
		Metrics: []Metric{{Name: "r", Kind: KindCorrelation, Expr: cost, By: ptr(roi)}},
	}

	tests := []struct {
		name    string
		records []domain.Campaign
		want    Value
	}{
		{
			name:    "positive",
			records: []domain.Campaign{mk(1, "100", "1"), mk(2, "200", "2"), mk(3, "300", "3")},
			want:    Defined(1),
		},
		{
			name:    "negative",
			records: []domain.Campaign{mk(1, "100", "3"), mk(2, "200", "2"), mk(3, "300", "1")},
			want:    Defined(-1),
		},
		{
			name:    "constant roi",
			records: []domain.Campaign{mk(1, "100", "2.2"), mk(2, "200", "2.2"), mk(3, "300", "2.2")},
			want:    Undefined,
		},
		{
			name:    "single row",
			records: []domain.Campaign{mk(1, "100", "1")},
			want:    Undefined,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec.IncludeUndefined = true
			res, err := Run(context.Background(), tt.records, spec)
			require.NoError(t, err)
			got := res.Rows[0].Values[0]
			require.Equal(t, tt.want.Defined, got.Defined)
			assert.InDelta(t, tt.want.Float, got.Float, 1e-9)
		})
	}
}

func TestAggregateKinds(t *testing.T) {
	a := campaign(1, "Email", 10, 100)
	a.EngagementScore = 2
	b := campaign(2, "Email", 30, 100)
	b.EngagementScore = 6
	b.ROI = decimal.RequireFromString("-1.50")

	spec := Spec{
		Name: "kinds",
		Metrics: []Metric{
			{Name: "sum", Kind: KindSum, Expr: Col(domain.FieldClicks)},
			{Name: "avg", Kind: KindAvg, Expr: Col(domain.FieldClicks)},
			{Name: "count", Kind: KindCount},
			{Name: "min", Kind: KindMin, Expr: roi},
			{Name: "max", Kind: KindMax, Expr: roi},
			{Name: "eng_roi", Kind: KindAvg, Expr: engROI},
			{Name: "weighted", Kind: KindWeightedAvg, Expr: roi, By: ptr(engagement)},
		},
	}
	res, err := Run(context.Background(), []domain.Campaign{a, b}, spec)
	require.NoError(t, err)
	require.Len(t, res.Rows, 1)

	want := map[string]float64{
		"sum":      40,
		"avg":      20,
		"count":    2,
		"min":      -1.5,
		"max":      2.5,
		"eng_roi":  (2.5*2 + -1.5*6) / 2,
		"weighted": (2.5*2 + -1.5*6) / 8,
	}
	for name, w := range want {
		v, ok := res.Value(0, name)
		require.True(t, ok, name)
		assert.InDelta(t, w, v.Float, 1e-9, name)
	}
}

func TestWhereAndHaving(t *testing.T) {
	cheap := campaign(1, "Email", 10, 100)
	cheap.AcquisitionCost = decimal.RequireFromString("500")
	cheap.EngagementScore = 9
	pricey := campaign(2, "Email", 10, 100)
	pricey.AcquisitionCost = decimal.RequireFromString("9000")
	pricey.EngagementScore = 9
	dull := campaign(3, "Email", 10, 100)
	dull.AcquisitionCost = decimal.RequireFromString("500")
	dull.EngagementScore = 2

	spec, ok := Lookup(Catalog(DefaultThresholds()), "low_cost_high_engagement")
	require.True(t, ok)
	res, err := Run(context.Background(), []domain.Campaign{cheap, pricey, dull}, spec)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Records)
	assert.Equal(t, 1, res.Matched)
	require.Len(t, res.Rows, 1)
	assert.Equal(t, "1", res.Rows[0].Keys[0])

	th := DefaultThresholds()
	th.CTR = 15
	spec, ok = Lookup(Catalog(th), "ctr_above_threshold")
	require.True(t, ok)
	res, err = Run(context.Background(), []domain.Campaign{
		campaign(1, "Email", 10, 100),
		campaign(2, "Email", 20, 100),
		campaign(3, "Email", 0, 0),
	}, spec)
	require.NoError(t, err)
	require.Len(t, res.Rows, 1)
	assert.Equal(t, "2", res.Rows[0].Keys[0])
}

func TestMultiKeySortAndNumericCampaignID(t *testing.T) {
	var records []domain.Campaign
	for _, id := range []int64{10, 9, 100, 2} {
		records = append(records, campaign(id, "Email", 1, 10))
	}
	spec := Spec{
		Name:    "ids",
		GroupBy: []domain.Field{domain.FieldCampaignID},
		Metrics: []Metric{{Name: "clicks", Kind: KindSum, Expr: Col(domain.FieldClicks)}},
		Sort:    []SortKey{{By: "clicks", Desc: true}, {By: "campaign_id"}},
		Limit:   3,
	}
	res, err := Run(context.Background(), records, spec)
	require.NoError(t, err)
	var ids []string
	for _, r := range res.Rows {
		ids = append(ids, r.Keys[0])
	}
	assert.Equal(t, []string{"2", "9", "10"}, ids)
}

func TestValidate(t *testing.T) {
	base := func() Spec {
		return Spec{
			Name:    "t",
			GroupBy: []domain.Field{domain.FieldChannelUsed},
			Metrics: []Metric{{Name: "m", Kind: KindSum, Expr: Col(domain.FieldClicks)}},
		}
	}
	tests := []struct {
		name string
		edit func(*Spec)
	}{
		{"no metrics", func(s *Spec) { s.Metrics = nil }},
		{"negative limit", func(s *Spec) { s.Limit = -1 }},
		{"unknown group field", func(s *Spec) { s.GroupBy = []domain.Field{"colour"} }},
		{"numeric group field", func(s *Spec) { s.GroupBy = []domain.Field{domain.FieldClicks} }},
		{"text in expression", func(s *Spec) { s.Metrics[0].Expr = Col(domain.FieldCompany) }},
		{"empty expression", func(s *Spec) { s.Metrics[0].Expr = Expr{} }},
		{"unknown kind", func(s *Spec) { s.Metrics[0].Kind = "median" }},
		{"ratio without denominator", func(s *Spec) { s.Metrics[0].Kind = KindRatioOfSums }},
		{"duplicate metric", func(s *Spec) { s.Metrics = append(s.Metrics, s.Metrics[0]) }},
		{"having unknown metric", func(s *Spec) { s.Having = []GroupCondition{{Metric: "x", Op: OpGT}} }},
		{"bad operator", func(s *Spec) { s.Having = []GroupCondition{{Metric: "m", Op: "~"}} }},
		{"sort by ungrouped field", func(s *Spec) { s.Sort = []SortKey{{By: "company"}} }},
		{"infinite coefficient", func(s *Spec) { s.Metrics[0].Expr = Col(domain.FieldClicks).Scale(math.Inf(1)) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := base()
			tt.edit(&s)
			_, err := Run(context.Background(), nil, s)
			var se *SpecError
			require.True(t, errors.As(err, &se), "got %v", err)
			assert.Equal(t, "t", se.Report)
		})
	}

	valid := base()
	require.NoError(t, valid.Validate())
}

func TestCatalogSpecsAreValid(t *testing.T) {
	seen := map[string]bool{}
	for _, s := range Catalog(DefaultThresholds()) {
		require.NoError(t, s.Validate(), s.Name)
		assert.False(t, seen[s.Name], "duplicate %s", s.Name)
		seen[s.Name] = true
	}
	assert.Len(t, seen, 22)
}

func TestRunHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	spec, _ := Lookup(Catalog(DefaultThresholds()), "overall_ctr")
	_, err := Run(ctx, []domain.Campaign{campaign(1, "Email", 1, 1)}, spec)
	require.ErrorIs(t, err, context.Canceled)
}

func TestValueJSON(t *testing.T) {
	b, err := json.Marshal([]Value{Defined(1.5), Undefined, Defined(math.NaN())})
	require.NoError(t, err)
	assert.JSONEq(t, `[1.5, null, null]`, string(b))

	var back []Value
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, []Value{Defined(1.5), Undefined, Undefined}, back)
}

// TestGroupKeysDoNotCollide groups on two fields whose values would
// produce the same joined key with any fixed separator.
func TestGroupKeysDoNotCollide(t *testing.T) {
	a := campaign(1, "c", 1, 10)
	a.Company = "a\x1fb"
	b := campaign(2, "b\x1fc", 2, 10)
	b.Company = "a"

	spec := Spec{
		Name:    "pairs",
		GroupBy: []domain.Field{domain.FieldCompany, domain.FieldChannelUsed},
		Metrics: []Metric{{Name: "clicks", Kind: KindSum, Expr: Col(domain.FieldClicks)}},
		Sort:    []SortKey{{By: "clicks"}},
	}
	res, err := Run(context.Background(), []domain.Campaign{a, b}, spec)
	require.NoError(t, err)
	require.Len(t, res.Rows, 2)
	assert.Equal(t, []string{"a\x1fb", "c"}, res.Rows[0].Keys)
	assert.Equal(t, []string{"a", "b\x1fc"}, res.Rows[1].Keys)
}

func TestExprCoefficient(t *testing.T) {
	c := campaign(1, "Email", 10, 100)

	spec := Spec{
		Name: "coef",
		Metrics: []Metric{
			{Name: "plain", Kind: KindSum, Expr: Col(domain.FieldClicks)},
			{Name: "zero", Kind: KindSum, Expr: Col(domain.FieldClicks).Scale(0)},
			{Name: "double", Kind: KindSum, Expr: Col(domain.FieldClicks).Scale(2)},
		},
	}
	res, err := Run(context.Background(), []domain.Campaign{c}, spec)
	require.NoError(t, err)
	for name, want := range map[string]float64{"plain": 10, "zero": 0, "double": 20} {
		v, ok := res.Value(0, name)
		require.True(t, ok, name)
		assert.True(t, v.Defined, name)
		assert.InDelta(t, want, v.Float, 1e-9, name)
	}

	// an explicit zero in JSON is kept, an absent coef means 1
	var zero, absent Expr
	require.NoError(t, json.Unmarshal([]byte(`{"fields":["clicks"],"coef":0}`), &zero))
	require.NoError(t, json.Unmarshal([]byte(`{"fields":["clicks"]}`), &absent))
	assert.Equal(t, 0.0, zero.eval(&c))
	assert.Equal(t, 10.0, absent.eval(&c))
}
