package engine

import (
	"math"

	"campaign-analytics/internal/core/domain"
)

// accumulator keeps the running state of one metric over one group.
// Every kind is computed in a single pass.
type accumulator struct {
	n   int
	sum float64
	by  float64
	min float64
	max float64

	// defined per-row ratios
	ratios   float64
	ratioCnt int

	// Welford state for correlation
	mx, my, m2x, m2y, cxy float64
}

func (a *accumulator) add(m *Metric, c *domain.Campaign) {
	a.n++
	if m.Kind == KindCount {
		return
	}
	x := m.Expr.eval(c)

	switch m.Kind {
	case KindSum, KindAvg:
		a.sum += x
	case KindMin, KindMax:
		if a.n == 1 || x < a.min {
			a.min = x
		}
		if a.n == 1 || x > a.max {
			a.max = x
		}
	case KindRatioOfSums:
		a.sum += x
		a.by += m.By.eval(c)
	case KindRowRatio:
		if d := m.By.eval(c); d != 0 {
			a.ratios += x / d
			a.ratioCnt++
		}
	case KindWeightedAvg:
		w := m.By.eval(c)
		a.sum += x * w
		a.by += w
	case KindCorrelation:
		y := m.By.eval(c)
		n := float64(a.n)
		dx := x - a.mx
		a.mx += dx / n
		dy := y - a.my
		a.my += dy / n
		a.m2x += dx * (x - a.mx)
		a.m2y += dy * (y - a.my)
		a.cxy += dx * (y - a.my)
	}
}

func (a *accumulator) value(m *Metric) Value {
	switch m.Kind {
	case KindCount:
		return Defined(float64(a.n))
	case KindSum:
		return Defined(a.sum)
	case KindAvg:
		if a.n == 0 {
			return Undefined
		}
		return Defined(a.sum / float64(a.n))
	case KindMin:
		if a.n == 0 {
			return Undefined
		}
		return Defined(a.min)
	case KindMax:
		if a.n == 0 {
			return Undefined
		}
		return Defined(a.max)
	case KindRatioOfSums, KindWeightedAvg:
		if a.by == 0 {
			return Undefined
		}
		return Defined(a.sum / a.by)
	case KindRowRatio:
		if a.ratioCnt == 0 {
			return Undefined
		}
		return Defined(a.ratios / float64(a.ratioCnt))
	case KindCorrelation:
		if a.n < 2 || a.m2x == 0 || a.m2y == 0 {
			return Undefined
		}
		r := a.cxy / math.Sqrt(a.m2x*a.m2y)
		return Defined(math.Max(-1, math.Min(1, r)))
	}
	return Undefined
}
