package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"spend-guard/db/fixtures"
	"spend-guard/internal/adapter/usecase"
	"spend-guard/internal/db"
)

var seedCmd = &cobra.Command{
	Use:   "seed [fixtures.yaml]",
	Short: "Load brands, campaigns and spend from a YAML file",
	Long: `Upsert the brands, campaigns and dayparting schedules listed in a YAML
fixtures file and replay its spend events through the ledger. Without an
argument the built-in demo data set is loaded.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var src io.Reader = bytes.NewReader(fixtures.Demo)
		if len(args) == 1 {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			src = f
		}
		fx, err := db.LoadFixtures(src)
		if err != nil {
			return err
		}

		s, err := openStore(cmd.Context(), os.Stderr)
		if err != nil {
			return err
		}
		defer s.Close()

		stats, err := db.Seed(cmd.Context(), s.pool, fx, usecase.NewLedgerUseCase(s.repo, time.Now))
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d brands, %d campaigns, %d schedules, %d spend entries\n",
			stats.Brands, stats.Campaigns, stats.Schedules, stats.Spends)
		return nil
	},
}
