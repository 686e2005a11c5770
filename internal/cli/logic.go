package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"

	"github.com/idelchi/avgsize/internal/avgsize"
)

// progressEnabled reports whether a live progress line should be drawn:
// only for table output, with debug off, and only when stderr is a TTY.
func progressEnabled(options avgsize.Options) bool {
	return strings.ToLower(options.Output) != "json" &&
		!options.Debug &&
		isatty.IsTerminal(os.Stderr.Fd())
}

func logic(options avgsize.Options) error {
	var progressHook func(files, bytes int64)

	if progressEnabled(options) {
		// Hide cursor for in-place updates; restore on exit.
		fmt.Fprint(os.Stderr, "\033[?25l")
		defer fmt.Fprint(os.Stderr, "\033[?25h")

		progressHook = func(files, bytes int64) {
			//nolint:gosec // Bytes is always positive
			fmt.Fprintf(os.Stderr, "\r\033[2KAveraging… %d files seen, %s accumulated\r",
				files, humanize.IBytes(uint64(bytes)))
		}
	}

	result, err := avgsize.Run(context.Background(), options, progressHook)

	// Wipe the progress line before anything lands on stdout
	if progressHook != nil {
		fmt.Fprint(os.Stderr, "\r\033[2K\r")
	}

	if err != nil {
		return err
	}

	if strings.ToLower(options.Output) == "json" {
		return PrintJSON(result, os.Stdout)
	}

	return PrintTable(result, options.Path, os.Stdout)
}
