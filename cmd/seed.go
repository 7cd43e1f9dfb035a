package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"campaign-analytics/internal/db"
)

func newSeedCmd(a *app) *cobra.Command {
	var (
		rows int
		seed int64
	)
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Replace the stored dataset with synthetic campaigns",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			store, closeStore, err := a.openStore(ctx)
			if err != nil {
				return err
			}
			defer closeStore()

			ds, err := db.Seed(ctx, store, rows, seed)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d campaigns as %s\n", len(ds.Campaigns), ds.ID)
			return nil
		},
	}
	cmd.Flags().IntVar(&rows, "rows", 1000, "number of campaigns to generate")
	cmd.Flags().Int64Var(&seed, "seed", 1, "random seed")
	return cmd
}
