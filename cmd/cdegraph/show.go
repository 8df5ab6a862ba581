package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/healcde/cdegraph/internal/artifact"
	"github.com/spf13/cobra"
)

var showPath string

func init() {
	showCmd.Flags().StringVarP(&showPath, "path", "p", "", "Artifact path (default from config)")
	rootCmd.AddCommand(showCmd)
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the rendered graph document to stdout",
	Long: `Read the rendered HTML artifact back and print it to stdout, for
piping into other tools or serving directly.

A missing artifact is a warning, not an error: run 'cdegraph build'
first to produce it.`,
	Args: cobra.NoArgs,
	RunE: runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	cfg := mustLoadConfig()

	path := cfg.Output
	if showPath != "" {
		path = showPath
	}

	html, err := artifact.Read(path)
	if err != nil {
		if errors.Is(err, artifact.ErrNotFound) {
			warn("no rendered graph at %s; run 'cdegraph build' first", path)
			os.Exit(ExitSuccess)
		}
		exitWithError(ExitError, "%v", err)
	}

	fmt.Print(html)
	return nil
}
