package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "spendguard",
	Short: "spendguard - brand budget enforcement",
	Long: `spendguard records ad spend against brand budgets and keeps campaigns
paused or running according to their brand's daily and monthly ceilings and
their dayparting windows. Configuration is read from the environment.`,
	SilenceUsage: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "spendguard version %s\n", version)
		if commit != "unknown" {
			fmt.Fprintf(cmd.OutOrStdout(), "  commit: %s\n", commit)
		}
		if buildTime != "unknown" {
			fmt.Fprintf(cmd.OutOrStdout(), "  built:  %s\n", buildTime)
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(spendCmd)
	rootCmd.AddCommand(reconcileCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
