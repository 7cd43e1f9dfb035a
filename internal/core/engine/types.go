package engine

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"campaign-analytics/internal/core/domain"
)

// Kind selects how a metric aggregates the rows of a group.
type Kind string

const (
	KindSum         Kind = "sum"
	KindAvg         Kind = "avg"
	KindCount       Kind = "count"
	KindMin         Kind = "min"
	KindMax         Kind = "max"
	KindRatioOfSums Kind = "ratio_of_sums"
	KindRowRatio    Kind = "row_ratio"
	KindWeightedAvg Kind = "weighted_avg"
	KindCorrelation Kind = "correlation"
)

// Op is a comparison operator used by Where and Having conditions.
type Op string

const (
	OpGT Op = ">"
	OpGE Op = ">="
	OpLT Op = "<"
	OpLE Op = "<="
	OpEQ Op = "="
	OpNE Op = "!="
)

func (o Op) valid() bool {
	switch o {
	case OpGT, OpGE, OpLT, OpLE, OpEQ, OpNE:
		return true
	}
	return false
}

func (o Op) compare(a, b float64) bool {
	switch o {
	case OpGT:
		return a > b
	case OpGE:
		return a >= b
	case OpLT:
		return a < b
	case OpLE:
		return a <= b
	case OpEQ:
		return a == b
	case OpNE:
		return a != b
	}
	return false
}

// Expr is the product of numeric fields multiplied by Coef. A nil Coef
// means 1, so {"fields":["roi"]} is plain roi and {"coef":0} is zero.
type Expr struct {
	Fields []domain.Field `json:"fields"`
	Coef   *float64       `json:"coef,omitempty"`
}

// Col returns the expression made of a single field.
func Col(f domain.Field) Expr {
	return Expr{Fields: []domain.Field{f}}
}

// Mul returns the product of the given fields.
func Mul(fields ...domain.Field) Expr {
	return Expr{Fields: fields}
}

// Scale returns e multiplied by k.
func (e Expr) Scale(k float64) Expr {
	e.Fields = append([]domain.Field(nil), e.Fields...)
	c := e.coef() * k
	e.Coef = &c
	return e
}

func (e Expr) coef() float64 {
	if e.Coef == nil {
		return 1
	}
	return *e.Coef
}

// eval assumes the expression has been validated.
func (e Expr) eval(c *domain.Campaign) float64 {
	v := e.coef()
	for _, f := range e.Fields {
		x, _ := c.Numeric(f)
		v *= x
	}
	return v
}

func (e Expr) String() string {
	parts := make([]string, 0, len(e.Fields)+1)
	for _, f := range e.Fields {
		parts = append(parts, string(f))
	}
	if k := e.coef(); k != 1 {
		parts = append(parts, strconv.FormatFloat(k, 'g', -1, 64))
	}
	return strings.Join(parts, "*")
}

// Metric is one computed column of a report.
//
// Expr is the aggregated value, the numerator of ratios and the x variable
// of a correlation. By is the denominator of ratio_of_sums and row_ratio,
// the weight of weighted_avg and the y variable of a correlation.
type Metric struct {
	Name string `json:"name"`
	Kind Kind   `json:"kind"`
	Expr Expr   `json:"expr"`
	By   *Expr  `json:"by,omitempty"`
}

// RowCondition filters input rows before grouping.
type RowCondition struct {
	Expr  Expr    `json:"expr"`
	Op    Op      `json:"op"`
	Value float64 `json:"value"`
}

func (rc RowCondition) match(c *domain.Campaign) bool {
	return rc.Op.compare(rc.Expr.eval(c), rc.Value)
}

// GroupCondition filters aggregated rows by a named metric. Undefined
// metric values never satisfy a condition.
type GroupCondition struct {
	Metric string  `json:"metric"`
	Op     Op      `json:"op"`
	Value  float64 `json:"value"`
}

// SortKey orders result rows by a metric name or a grouped key field.
type SortKey struct {
	By   string `json:"by"`
	Desc bool   `json:"desc,omitempty"`
}

// Spec describes one report: grouping, row filter, metrics, post
// aggregation filter, ordering and limit.
type Spec struct {
	Name        string           `json:"name"`
	Title       string           `json:"title,omitempty"`
	Description string           `json:"description,omitempty"`
	GroupBy     []domain.Field   `json:"group_by,omitempty"`
	Where       []RowCondition   `json:"where,omitempty"`
	Metrics     []Metric         `json:"metrics"`
	Having      []GroupCondition `json:"having,omitempty"`
	// Sort defaults to the first metric, descending.
	Sort  []SortKey `json:"sort,omitempty"`
	Limit int       `json:"limit,omitempty"`
	// IncludeUndefined keeps rows whose sort metric is undefined; they
	// are ordered after every defined row.
	IncludeUndefined bool `json:"include_undefined,omitempty"`
}

// Value is a metric cell. Undefined is distinct from zero and is encoded
// as JSON null.
type Value struct {
	Float   float64
	Defined bool
}

// Undefined is the value of a metric that could not be computed.
var Undefined = Value{}

// Defined wraps v, mapping NaN and infinities to Undefined.
func Defined(v float64) Value {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Undefined
	}
	return Value{Float: v, Defined: true}
}

func (v Value) String() string {
	if !v.Defined {
		return "undefined"
	}
	return strconv.FormatFloat(v.Float, 'f', -1, 64)
}

func (v Value) MarshalJSON() ([]byte, error) {
	if !v.Defined {
		return []byte("null"), nil
	}
	return json.Marshal(v.Float)
}

func (v *Value) UnmarshalJSON(b []byte) error {
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		*v = Undefined
		return nil
	}
	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return err
	}
	*v = Defined(f)
	return nil
}

// Row is one result row: the group key values, one value per metric and
// the number of input rows in the group.
type Row struct {
	Keys   []string `json:"keys"`
	Values []Value  `json:"values"`
	Count  int      `json:"count"`
}

// Result is the ordered output of a report.
type Result struct {
	Report  string         `json:"report"`
	Title   string         `json:"title,omitempty"`
	Keys    []domain.Field `json:"keys"`
	Columns []string       `json:"columns"`
	Rows    []Row          `json:"rows"`
	// Records is the input size, Matched the rows left after Where.
	Records int `json:"records"`
	Matched int `json:"matched"`
	// Excluded counts rows dropped from the ranking because their sort
	// metric was undefined.
	Excluded int `json:"excluded"`
}

// Value returns the named metric of row i.
func (r *Result) Value(i int, metric string) (Value, bool) {
	for j, c := range r.Columns {
		if c == metric {
			return r.Rows[i].Values[j], true
		}
	}
	return Undefined, false
}
