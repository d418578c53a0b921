package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"spend-guard/db/migrations"
	"spend-guard/internal/config"
	"spend-guard/internal/db"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Migrations completed successfully (schema version %d)\n", migrations.Version)
		return nil
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back all migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if err = db.MigrateDown(cfg.Psql.Addr.String()); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "All migrations rolled back")
		return nil
	},
}

var migrateVersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the applied schema version",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		v, dirty, err := db.SchemaVersion(cfg.Psql.Addr.String())
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "schema version %d (embedded %d)", v, migrations.Version)
		if dirty {
			fmt.Fprint(cmd.OutOrStdout(), " DIRTY")
		}
		fmt.Fprintln(cmd.OutOrStdout())
		return nil
	},
}

func init() {
	migrateCmd.AddCommand(migrateDownCmd, migrateVersionCmd)
}
