// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/profilekit/store"
)

func newExportCmd(a *app) *cobra.Command {
	var (
		dbPath string
		n      int
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Store metadata and samples of every profile in SQLite",
		Long: `export builds every catalog entry, stores its resolved metadata and samples
it on its natural range: [0, duration] for temporal shapes, the n×n grid
over the domain for two-axis spatial shapes, [0, length] otherwise.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			items, err := a.doc.BuildAll(a.sc)
			if err != nil {
				return err
			}
			db, err := store.Open(dbPath)
			if err != nil {
				return err
			}
			defer db.Close()

			ctx := cmd.Context()
			for _, it := range items {
				hi, err := defaultSpan(a.sc, it.Profile, 0)
				if err != nil {
					return fmt.Errorf("%s: %w", it.ID, err)
				}
				xs, err := grid(0, hi, n)
				if err != nil {
					return fmt.Errorf("%s: %w", it.ID, err)
				}
				samples := sampleLine(it.Profile, xs, 0)
				if it.Profile.Arity() == 2 {
					hy, err := defaultSpan(a.sc, it.Profile, 1)
					if err != nil {
						return fmt.Errorf("%s: %w", it.ID, err)
					}
					ys, err := grid(0, hy, n)
					if err != nil {
						return fmt.Errorf("%s: %w", it.ID, err)
					}
					samples = sampleGrid(it.Profile, xs, ys)
				}

				if err := db.SaveProfile(ctx, it.ID, it.Profile.Metadata()); err != nil {
					return err
				}
				if err := db.SaveSamples(ctx, it.ID, samples); err != nil {
					return err
				}
				a.logger.Info("exported", "id", it.ID, "shape", it.Profile.Name(), "samples", len(samples))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d profiles to %s\n", len(items), dbPath)
			return nil
		},
	}
	cmd.Flags().StringVar(&dbPath, "db", "profiles.db", "Path to the SQLite database")
	cmd.Flags().IntVar(&n, "n", 51, "Points per axis")
	return cmd
}
