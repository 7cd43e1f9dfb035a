package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"campaign-analytics/internal/adapter/render"
	"campaign-analytics/internal/core/engine"
	"campaign-analytics/internal/core/port"
)

type reportFlags struct {
	all              bool
	format           string
	lang             string
	limit            int
	includeUndefined bool
	diagnostics      bool
}

func newReportCmd(a *app) *cobra.Command {
	var f reportFlags
	cmd := &cobra.Command{
		Use:   "report [name...]",
		Short: "Run catalog reports",
		Long: `Run one or more named reports from the catalog over the configured
dataset. Without names or --all the catalog is listed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.report(cmd, args, f)
		},
	}
	cmd.Flags().BoolVar(&f.all, "all", false, "run every catalog report")
	cmd.Flags().StringVarP(&f.format, "format", "f", "text", "output format: text, json or csv")
	cmd.Flags().StringVar(&f.lang, "lang", "en", "locale for numbers in text output")
	cmd.Flags().IntVar(&f.limit, "limit", -1, "override the report limit (0 means no limit)")
	cmd.Flags().BoolVar(&f.includeUndefined, "include-undefined", false, "rank rows whose sort metric is undefined last instead of dropping them")
	cmd.Flags().BoolVar(&f.diagnostics, "diagnostics", false, "print the data-quality summary first")
	return cmd
}

func (a *app) report(cmd *cobra.Command, names []string, f reportFlags) error {
	switch f.format {
	case "text", "json", "csv":
	default:
		return fmt.Errorf("unknown format %q", f.format)
	}
	tag, err := language.Parse(f.lang)
	if err != nil {
		return fmt.Errorf("invalid --lang: %w", err)
	}

	// overrides apply to --all runs and named reports alike
	var o port.Overrides
	if cmd.Flags().Changed("limit") {
		if f.limit < 0 {
			return fmt.Errorf("--limit must not be negative")
		}
		o.Limit = &f.limit
	}
	if cmd.Flags().Changed("include-undefined") {
		o.IncludeUndefined = &f.includeUndefined
	}

	out := cmd.OutOrStdout()
	ctx := cmd.Context()

	source, closeSource, err := a.openSource(ctx)
	if err != nil {
		return err
	}
	defer closeSource()
	svc := a.newUseCase(source)

	if len(names) == 0 && !f.all && !f.diagnostics {
		return listReports(out, svc.Reports())
	}

	if f.diagnostics {
		sum, err := svc.Diagnostics(ctx)
		if err != nil {
			return err
		}
		if err = writeJSON(out, sum); err != nil {
			return err
		}
	}

	var results []*engine.Result
	if f.all {
		if results, err = svc.RunAll(ctx, o); err != nil {
			return err
		}
	}

	for _, name := range names {
		res, err := svc.Run(ctx, name, o)
		if err != nil {
			return err
		}
		results = append(results, res)
	}

	for i, res := range results {
		if i > 0 && f.format == "text" {
			fmt.Fprintln(out)
		}
		switch f.format {
		case "json":
			err = writeJSON(out, res)
		case "csv":
			err = render.CSV(out, res)
		default:
			err = render.Table(out, res, tag)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func listReports(w io.Writer, specs []engine.Spec) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, s := range specs {
		fmt.Fprintf(tw, "%s\t%s\n", s.Name, s.Title)
	}
	return tw.Flush()
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
