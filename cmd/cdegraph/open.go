package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/healcde/cdegraph/internal/artifact"
	"github.com/spf13/cobra"
)

var openPath string

func init() {
	openCmd.Flags().StringVarP(&openPath, "path", "p", "", "Artifact path (default from config)")
	rootCmd.AddCommand(openCmd)
}

var openCmd = &cobra.Command{
	Use:   "open",
	Short: "Open the rendered graph in a browser",
	Long: `Open the rendered HTML artifact in the system browser.

A missing artifact is a warning, not an error: run 'cdegraph build'
first to produce it.`,
	Args: cobra.NoArgs,
	RunE: runOpen,
}

// OpenResult is the response for the open command.
type OpenResult struct {
	Status string `json:"status"`
	Path   string `json:"path"`
}

func runOpen(cmd *cobra.Command, args []string) error {
	cfg := mustLoadConfig()

	path := cfg.Output
	if openPath != "" {
		path = openPath
	}

	if err := artifact.Open(path); err != nil {
		if errors.Is(err, artifact.ErrNotFound) {
			warn("no rendered graph at %s; run 'cdegraph build' first", path)
			os.Exit(ExitSuccess)
		}
		exitWithError(ExitError, "opening artifact: %v", err)
	}

	if humanOutput {
		fmt.Printf("Opening: %s\n", path)
	} else {
		outputJSON(OpenResult{Status: "opened", Path: path})
	}

	return nil
}
