package configs

import "campaign-analytics/internal/core/engine"

// Report holds the catalog thresholds and the parallelism of full runs.
// Defaults match engine.DefaultThresholds.
type Report struct {
	Workers int `env:"WORKERS" envDefault:"4"`

	TopN            int     `env:"TOP_N" envDefault:"5"`
	CTRThreshold    float64 `env:"CTR_THRESHOLD" envDefault:"95"`
	HighCTR         float64 `env:"HIGH_CTR" envDefault:"20"`
	HighROI         float64 `env:"HIGH_ROI" envDefault:"5"`
	LowEngagement   float64 `env:"LOW_ENGAGEMENT" envDefault:"4"`
	HighImpressions float64 `env:"HIGH_IMPRESSIONS" envDefault:"5000"`
	LowCost         float64 `env:"LOW_COST" envDefault:"6000"`
	HighEngagement  float64 `env:"HIGH_ENGAGEMENT" envDefault:"8"`
	BudgetCutN      int     `env:"BUDGET_CUT_N" envDefault:"10"`
}

// Thresholds converts the section into catalog thresholds.
func (c Report) Thresholds() engine.Thresholds {
	return engine.Thresholds{
		TopN:            c.TopN,
		CTR:             c.CTRThreshold,
		HighCTR:         c.HighCTR,
		HighROI:         c.HighROI,
		LowEngagement:   c.LowEngagement,
		HighImpressions: c.HighImpressions,
		LowCost:         c.LowCost,
		HighEngagement:  c.HighEngagement,
		BudgetCutN:      c.BudgetCutN,
	}
}
