// Package engine evaluates report specifications over an immutable slice
// of campaigns. Run is a pure function: it never mutates its input, so
// any number of reports may run concurrently over the same slice.
package engine

import (
	"cmp"
	"context"
	"sort"
	"strconv"
	"strings"

	"campaign-analytics/internal/core/domain"
)

type group struct {
	keys []string
	accs []accumulator
	n    int
}

// Run evaluates spec over campaigns.
//
// Pipeline: validate → filter rows → group and aggregate → having →
// sort → limit. Groups keep first-appearance order and the sort is
// stable, so repeated runs over the same input produce identical output.
// The context is checked between the scan and the sort phase.
func Run(ctx context.Context, campaigns []domain.Campaign, spec Spec) (*Result, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	groups, matched := scan(campaigns, &spec)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	res := &Result{
		Report:  spec.Name,
		Title:   spec.Title,
		Keys:    append([]domain.Field{}, spec.GroupBy...),
		Columns: make([]string, len(spec.Metrics)),
		Records: len(campaigns),
		Matched: matched,
	}
	for i, m := range spec.Metrics {
		res.Columns[i] = m.Name
	}

	rows := make([]Row, 0, len(groups))
	for _, g := range groups {
		row := Row{Keys: g.keys, Values: make([]Value, len(spec.Metrics)), Count: g.n}
		for i := range spec.Metrics {
			row.Values[i] = g.accs[i].value(&spec.Metrics[i])
		}
		if having(&spec, row) {
			rows = append(rows, row)
		}
	}

	keys := sortKeys(&spec)
	if !spec.IncludeUndefined {
		kept := rows[:0]
		for _, r := range rows {
			if rankable(keys, r) {
				kept = append(kept, r)
			} else {
				res.Excluded++
			}
		}
		rows = kept
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return less(keys, rows[i], rows[j])
	})

	if spec.Limit > 0 && len(rows) > spec.Limit {
		rows = rows[:spec.Limit]
	}
	res.Rows = rows
	return res, nil
}

// scan filters rows and accumulates every metric per group.
func scan(campaigns []domain.Campaign, spec *Spec) ([]*group, int) {
	index := make(map[string]*group)
	var order []*group
	matched := 0

	// No grouping is a single total row, present even over empty input.
	if len(spec.GroupBy) == 0 {
		g := &group{keys: []string{}, accs: make([]accumulator, len(spec.Metrics))}
		index[""] = g
		order = append(order, g)
	}

	parts := make([]string, len(spec.GroupBy))
	var id strings.Builder
	for i := range campaigns {
		c := &campaigns[i]
		if !where(spec, c) {
			continue
		}
		matched++

		for j, f := range spec.GroupBy {
			parts[j], _ = c.Key(f)
		}
		id.Reset()
		groupID(&id, parts)
		g, ok := index[id.String()]
		if !ok {
			g = &group{
				keys: append([]string(nil), parts...),
				accs: make([]accumulator, len(spec.Metrics)),
			}
			index[id.String()] = g
			order = append(order, g)
		}
		g.n++
		for k := range spec.Metrics {
			g.accs[k].add(&spec.Metrics[k], c)
		}
	}
	return order, matched
}

// groupID writes each key part prefixed with its byte length, so no cell
// content can make two different key tuples collide.
func groupID(b *strings.Builder, parts []string) {
	for _, p := range parts {
		b.WriteString(strconv.Itoa(len(p)))
		b.WriteByte(':')
		b.WriteString(p)
	}
}

func where(spec *Spec, c *domain.Campaign) bool {
	for _, rc := range spec.Where {
		if !rc.match(c) {
			return false
		}
	}
	return true
}

func having(spec *Spec, r Row) bool {
	for _, hc := range spec.Having {
		v := r.Values[spec.metricIndex(hc.Metric)]
		if !v.Defined || !hc.Op.compare(v.Float, hc.Value) {
			return false
		}
	}
	return true
}

// sortKey is a resolved SortKey: exactly one of metric or key is >= 0.
type sortKey struct {
	metric  int
	key     int
	numeric bool
	desc    bool
}

func sortKeys(spec *Spec) []sortKey {
	src := spec.Sort
	if len(src) == 0 {
		src = []SortKey{{By: spec.Metrics[0].Name, Desc: true}}
	}
	keys := make([]sortKey, 0, len(src))
	for _, sk := range src {
		k := sortKey{metric: spec.metricIndex(sk.By), key: spec.keyIndex(sk.By), desc: sk.Desc}
		if k.metric >= 0 {
			k.key = -1
		} else {
			k.numeric = spec.GroupBy[k.key] == domain.FieldCampaignID
		}
		keys = append(keys, k)
	}
	return keys
}

// rankable reports whether every metric used for ordering is defined.
func rankable(keys []sortKey, r Row) bool {
	for _, k := range keys {
		if k.metric >= 0 && !r.Values[k.metric].Defined {
			return false
		}
	}
	return true
}

// less orders defined values before undefined ones whatever the
// direction.
func less(keys []sortKey, a, b Row) bool {
	for _, k := range keys {
		var c int
		if k.metric >= 0 {
			va, vb := a.Values[k.metric], b.Values[k.metric]
			switch {
			case !va.Defined && !vb.Defined:
				continue
			case !va.Defined:
				return false
			case !vb.Defined:
				return true
			}
			c = cmp.Compare(va.Float, vb.Float)
		} else if k.numeric {
			x, _ := strconv.ParseInt(a.Keys[k.key], 10, 64)
			y, _ := strconv.ParseInt(b.Keys[k.key], 10, 64)
			c = cmp.Compare(x, y)
		} else {
			c = strings.Compare(a.Keys[k.key], b.Keys[k.key])
		}
		if c == 0 {
			continue
		}
		if k.desc {
			return c > 0
		}
		return c < 0
	}
	return false
}
