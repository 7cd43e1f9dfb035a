// Package render writes report results as aligned text tables or CSV.
package render

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
	"text/tabwriter"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"campaign-analytics/internal/core/engine"
)

// Missing is printed in text tables for undefined metric values.
const Missing = "n/a"

// Table writes res as an aligned table with numbers formatted for tag.
// Group keys are printed verbatim.
func Table(w io.Writer, res *engine.Result, tag language.Tag) error {
	p := message.NewPrinter(tag)
	if res.Title != "" {
		if _, err := fmt.Fprintf(w, "%s\n", res.Title); err != nil {
			return err
		}
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	for _, k := range res.Keys {
		fmt.Fprintf(tw, "%s\t", k)
	}
	for _, c := range res.Columns {
		fmt.Fprintf(tw, "%s\t", c)
	}
	fmt.Fprint(tw, "rows\t\n")

	for _, row := range res.Rows {
		for _, k := range row.Keys {
			fmt.Fprintf(tw, "%s\t", k)
		}
		for _, v := range row.Values {
			fmt.Fprintf(tw, "%s\t", formatValue(p, v))
		}
		fmt.Fprintf(tw, "%s\t\n", p.Sprintf("%d", row.Count))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if res.Excluded > 0 {
		_, err := p.Fprintf(w, "(%d groups with an undefined sort value not ranked)\n", res.Excluded)
		return err
	}
	return nil
}

func formatValue(p *message.Printer, v engine.Value) string {
	if !v.Defined {
		return Missing
	}
	return p.Sprintf(fmt.Sprintf("%%.%df", precision(v.Float)), v.Float)
}

// precision keeps small ratios such as ROI per impression readable.
func precision(f float64) int {
	a := math.Abs(f)
	switch {
	case a == 0 || a >= 0.01:
		return 2
	case a >= 0.0001:
		return 6
	default:
		return 10
	}
}

// CSV writes res with a header row. Undefined values are empty cells so
// they never read back as zero.
func CSV(w io.Writer, res *engine.Result) error {
	cw := csv.NewWriter(w)
	header := make([]string, 0, len(res.Keys)+len(res.Columns)+1)
	for _, k := range res.Keys {
		header = append(header, string(k))
	}
	header = append(header, res.Columns...)
	header = append(header, "rows")
	if err := cw.Write(header); err != nil {
		return err
	}

	record := make([]string, len(header))
	for _, row := range res.Rows {
		record = record[:0]
		record = append(record, row.Keys...)
		for _, v := range row.Values {
			if !v.Defined {
				record = append(record, "")
				continue
			}
			record = append(record, strconv.FormatFloat(v.Float, 'f', -1, 64))
		}
		record = append(record, strconv.Itoa(row.Count))
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
