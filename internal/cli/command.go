package cli

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/dustin/go-humanize"
	"github.com/spf13/pflag"

	"github.com/idelchi/avgsize/internal/avgsize"
)

// CLI represents the command-line interface.
type CLI struct {
	version string
}

// New creates a new CLI instance with the given version.
func New(version string) CLI {
	return CLI{version: version}
}

func help() {
	//nolint:forbidigo // Help output to console
	fmt.Println(heredoc.Doc(`
		avgsize reports the average size of regular files beneath a directory.

		Usage:

			avgsize [flags] [path]

		Positional Arguments:
		  path                   Directory to analyze. Defaults to the current directory if not specified.

		All regular files in the subtree count toward the average; directories,
		symlinks, and other special entries do not. Unreadable entries are skipped.

		Flags:
	`))
	pflag.PrintDefaults()
}

// Execute runs the CLI with the provided arguments.
func (c CLI) Execute() error {
	var (
		options    avgsize.Options
		minSizeStr string
	)

	allowedOutputs := []string{"table", "json"}

	pflag.StringVar(&minSizeStr, "min-size", "0KB", "Minimum file size to count (e.g., 1KB)")
	pflag.StringVarP(&options.Output, "output", "o", "table", "Output format: json or table")
	pflag.StringSliceVarP(&options.Excludes, "exclude", "e", []string{}, "Regex patterns to exclude")
	pflag.IntVarP(&options.Depth, "depth", "d", 0, "Maximum traversal depth (0=unlimited)")
	pflag.BoolVar(&options.Debug, "debug", false, "Enable debug output")
	pflag.BoolVarP(&options.Version, "version", "v", false, "Show version and exit")

	pflag.CommandLine.SortFlags = false
	pflag.Usage = help
	pflag.Parse()

	if options.Version {
		//nolint:forbidigo // Version output to console
		fmt.Println(c.version)

		return nil
	}

	if !slices.Contains(allowedOutputs, options.Output) {
		return fmt.Errorf("invalid output format %q: must be one of %v", options.Output, allowedOutputs)
	}

	if options.Depth < 0 {
		return errors.New("depth cannot be negative")
	}

	if pflag.NArg() == 0 {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("getting current directory: %w", err)
		}

		options.Path = cwd

		//nolint:forbidigo // Fallback notice to console
		fmt.Printf("No directory specified. Using current directory: %s\n\n", cwd)
	} else {
		options.Path = pflag.Args()[0]
	}

	// Parse minSize string to bytes
	if minSizeStr != "" {
		size, err := humanize.ParseBytes(minSizeStr)
		if err != nil {
			return fmt.Errorf("invalid min-size: %w", err)
		}

		options.MinSize = int64(size) //nolint:gosec // Size conversion from humanize is safe
	}

	return logic(options)
}
