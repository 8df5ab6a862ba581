// Package main provides the cdegraph CLI entry point.
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

// humanOutput controls whether to use human-readable output
var humanOutput bool

// verbose enables debug-level diagnostic logging
var verbose bool

// logger emits diagnostic output to stderr, separate from command results
// on stdout.
var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Level:           log.WarnLevel,
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "cdegraph",
	Short: "Knowledge-graph builder for HEAL Core CDE study metadata",
	Long: `cdegraph turns a CSV of research-study metadata (core measures,
domains, questionnaires, research programs, studies, PIs) into an
interactive knowledge-graph HTML document plus reference tables of
selectable values.

All commands output JSON by default for easy integration with other
tools. Use --human for human-readable output.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			logger.SetLevel(log.DebugLevel)
		}
	},
}

func init() {
	// Load .env if present (for CDEGRAPH_INPUT / CDEGRAPH_OUTPUT)
	_ = godotenv.Load()

	rootCmd.PersistentFlags().BoolVar(&humanOutput, "human", false, "Use human-readable output instead of JSON")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.Version = Version
}
