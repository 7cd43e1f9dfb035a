package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	csvadapter "campaign-analytics/internal/adapter/csv"
)

func newImportCmd(a *app) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import a campaign CSV into the Postgres store",
		Long: `Parse a campaign CSV and replace the dataset held in Postgres with it.
Rejected rows are reported and skipped; the import itself only fails on an
unreadable file or header.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if file == "" {
				file = a.cfg.Dataset.Path
			}

			ds, err := csvadapter.NewFileSource(file).LoadDataset(ctx)
			if err != nil {
				return err
			}

			store, closeStore, err := a.openStore(ctx)
			if err != nil {
				return err
			}
			defer closeStore()

			if err = store.SaveDataset(ctx, ds); err != nil {
				return fmt.Errorf("save dataset: %w", err)
			}

			sum := ds.Summary()
			a.logger.Info("dataset imported",
				slog.String("dataset_id", ds.ID.String()),
				slog.String("source", ds.Source),
				slog.Int("campaigns", sum.Campaigns),
				slog.Int("rejected", sum.Rejected),
				slog.Int("flagged", sum.Flagged),
			)
			for _, is := range ds.Issues {
				if is.Rejected {
					a.logger.Warn("row rejected",
						slog.Int("line", is.Line),
						slog.String("campaign_id", is.CampaignID),
						slog.String("column", string(is.Column)),
						slog.String("reason", is.Reason),
					)
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d campaigns (%d rejected, %d flagged)\n", sum.Campaigns, sum.Rejected, sum.Flagged)
			return nil
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "CSV file to import (default DATASET_PATH)")
	return cmd
}
