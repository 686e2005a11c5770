package main

import (
	"errors"
	"fmt"

	"github.com/idelchi/avgsize/internal/avgsize"
	"github.com/idelchi/avgsize/internal/cli"
)

// version is set at build time.
var version = "dev" //nolint:gochecknoglobals // Set via ldflags

// main is the single propagation point for errors: path validation
// failures render as "Execution failed", anything else gets the generic
// prefix. Messages go to stdout and the process exits normally either way.
func main() {
	err := cli.New(version).Execute()
	if err == nil {
		return
	}

	switch {
	case errors.Is(err, avgsize.ErrNotFound),
		errors.Is(err, avgsize.ErrNotADirectory),
		errors.Is(err, avgsize.ErrPermission):
		//nolint:forbidigo // User-facing error output to console
		fmt.Printf("\nExecution failed: %v\n", err)
	default:
		//nolint:forbidigo // User-facing error output to console
		fmt.Printf("\nAn unexpected error occurred: %v\n", err)
	}
}
