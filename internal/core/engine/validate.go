package engine

import (
	"fmt"
	"math"
)

// SpecError reports a report specification that cannot be evaluated. It
// is returned before any row is scanned.
type SpecError struct {
	Report string
	Reason string
}

func (e *SpecError) Error() string {
	if e.Report == "" {
		return "invalid report spec: " + e.Reason
	}
	return fmt.Sprintf("invalid report spec %q: %s", e.Report, e.Reason)
}

func (s *Spec) errorf(format string, args ...any) error {
	return &SpecError{Report: s.Name, Reason: fmt.Sprintf(format, args...)}
}

// Validate checks field references, metric shapes, conditions and sort
// keys of the spec.
func (s *Spec) Validate() error {
	if len(s.Metrics) == 0 {
		return s.errorf("at least one metric is required")
	}
	if s.Limit < 0 {
		return s.errorf("limit must not be negative, got %d", s.Limit)
	}

	grouped := make(map[string]struct{}, len(s.GroupBy))
	for _, f := range s.GroupBy {
		if !f.IsKey() {
			return s.errorf("cannot group by %q", f)
		}
		if _, dup := grouped[string(f)]; dup {
			return s.errorf("duplicate group field %q", f)
		}
		grouped[string(f)] = struct{}{}
	}

	for i, rc := range s.Where {
		if err := s.checkExpr(rc.Expr); err != nil {
			return err
		}
		if !rc.Op.valid() {
			return s.errorf("where[%d]: unknown operator %q", i, rc.Op)
		}
	}

	names := make(map[string]struct{}, len(s.Metrics))
	for _, m := range s.Metrics {
		if m.Name == "" {
			return s.errorf("metric name is required")
		}
		if _, dup := names[m.Name]; dup {
			return s.errorf("duplicate metric %q", m.Name)
		}
		if _, clash := grouped[m.Name]; clash {
			return s.errorf("metric %q shadows a group field", m.Name)
		}
		names[m.Name] = struct{}{}
		if err := s.checkMetric(m); err != nil {
			return err
		}
	}

	for _, hc := range s.Having {
		if _, ok := names[hc.Metric]; !ok {
			return s.errorf("having references unknown metric %q", hc.Metric)
		}
		if !hc.Op.valid() {
			return s.errorf("having %q: unknown operator %q", hc.Metric, hc.Op)
		}
	}

	for _, sk := range s.Sort {
		_, isMetric := names[sk.By]
		_, isKey := grouped[sk.By]
		if !isMetric && !isKey {
			return s.errorf("cannot sort by %q: not a metric or group field", sk.By)
		}
	}
	return nil
}

func (s *Spec) checkMetric(m Metric) error {
	switch m.Kind {
	case KindCount:
		return nil
	case KindSum, KindAvg, KindMin, KindMax:
		return s.checkExpr(m.Expr)
	case KindRatioOfSums, KindRowRatio, KindWeightedAvg, KindCorrelation:
		if err := s.checkExpr(m.Expr); err != nil {
			return err
		}
		if m.By == nil {
			return s.errorf("metric %q: %s needs a second expression", m.Name, m.Kind)
		}
		return s.checkExpr(*m.By)
	}
	return s.errorf("metric %q: unknown kind %q", m.Name, m.Kind)
}

func (s *Spec) checkExpr(e Expr) error {
	if len(e.Fields) == 0 {
		return s.errorf("empty expression")
	}
	for _, f := range e.Fields {
		if !f.IsNumeric() {
			return s.errorf("field %q is not numeric", f)
		}
	}
	if k := e.coef(); math.IsNaN(k) || math.IsInf(k, 0) {
		return s.errorf("expression %s: coefficient must be finite", e)
	}
	return nil
}

// keyIndex returns the position of f in GroupBy or -1.
func (s *Spec) keyIndex(name string) int {
	for i, f := range s.GroupBy {
		if string(f) == name {
			return i
		}
	}
	return -1
}

func (s *Spec) metricIndex(name string) int {
	for i, m := range s.Metrics {
		if m.Name == name {
			return i
		}
	}
	return -1
}
