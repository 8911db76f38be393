package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

var (
	noColor bool
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "adhikar",
	Short: "RTI drafting, tracking, and animal advocacy research toolkit",
	Long: `adhikar drafts Right to Information applications for Indian animal
welfare agencies, tracks their statutory deadlines and appeals in a local
database, and bundles supporting research tools: a legal reference
database with PIL drafts, a facility registry with pollution overlays,
Hindi content helpers, counter-narrative research, and campus materials.

All data stays on this machine.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "enable debug logging")

	rootCmd.AddCommand(rtiCmd)
	rootCmd.AddCommand(legalCmd)
	rootCmd.AddCommand(mapCmd)
	rootCmd.AddCommand(contentCmd)
	rootCmd.AddCommand(researchCmd)
	rootCmd.AddCommand(campusCmd)
	rootCmd.AddCommand(configCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
