// Package artifact handles the rendered HTML document after it is written:
// reading it back and opening it in a browser.
package artifact

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"runtime"
)

// ErrNotFound is returned when the artifact has not been built yet. Callers
// treat this as a recoverable condition, not a failure.
var ErrNotFound = errors.New("artifact not found")

// Read reads the rendered artifact back from disk.
func Read(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return "", fmt.Errorf("reading artifact: %w", err)
	}
	return string(data), nil
}

// Open launches the artifact in the system browser. The file must exist.
func Open(path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return fmt.Errorf("checking artifact: %w", err)
	}

	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", path)
	case "linux":
		cmd = exec.Command("xdg-open", path)
	default:
		return fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}

	return cmd.Start()
}
