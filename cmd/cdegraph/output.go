package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/healcde/cdegraph/internal/config"
	"github.com/healcde/cdegraph/internal/dataset"
)

// Value truncation length for human-readable listings.
const ValueMaxLen = 70

// outputJSON writes a value as formatted JSON to stdout.
func outputJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// exitWithError outputs an error in the appropriate format (human or JSON)
// and exits.
func exitWithError(code int, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if humanOutput {
		fmt.Fprintf(os.Stderr, "error: %s\n", msg)
	} else {
		outputJSON(ErrorResponse{Error: msg})
	}
	os.Exit(code)
}

// warn outputs a warning without terminating.
func warn(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if humanOutput {
		fmt.Fprintf(os.Stderr, "warning: %s\n", msg)
	} else {
		outputJSON(WarningResponse{Warning: msg})
	}
}

// ErrorResponse is a JSON error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// WarningResponse is a JSON warning response.
type WarningResponse struct {
	Warning string `json:"warning"`
}

// mustLoadConfig loads configuration or exits with a config error.
func mustLoadConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		exitWithError(ExitConfigError, "%v", err)
	}
	return cfg
}

// mustLoadDataset loads the CSV table or exits with a data error.
func mustLoadDataset(path string) *dataset.Dataset {
	ds, err := dataset.LoadCSV(path)
	if err != nil {
		exitWithError(ExitDataError, "%v", err)
	}
	logger.Debug("dataset loaded", "path", path, "rows", len(ds.Rows))
	return ds
}

// truncateString truncates a string to maxLen, adding "..." if truncated.
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
