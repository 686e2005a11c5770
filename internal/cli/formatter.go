package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/idelchi/avgsize/internal/avgsize"
)

// delimiterWidth is the length of the delimiter lines around the summary.
const delimiterWidth = 50

// PrintJSON outputs the result in JSON format.
func PrintJSON(result *avgsize.Result, writer io.Writer) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding JSON output: %w", err)
	}

	if _, err := fmt.Fprintln(writer, string(data)); err != nil {
		return err
	}

	return nil
}

// PrintTable outputs the result in human-readable format. The average is
// shown both as a comma-grouped raw byte count and scaled to the largest
// fitting unit. A subtree without any regular files prints a single
// "contains no files" line instead.
func PrintTable(result *avgsize.Result, path string, writer io.Writer) error {
	if result.FileCount == 0 {
		_, err := fmt.Fprintf(writer, "Directory '%s' contains no files.\n", path)

		return err
	}

	delimiter := strings.Repeat("-", delimiterWidth)

	fmt.Fprintln(writer, delimiter)
	fmt.Fprintf(writer, "Results for directory: %s\n", path)
	fmt.Fprintf(writer, "Average File Size (Bytes): %s B\n", humanize.FormatFloat("#,###.##", result.Average))
	fmt.Fprintf(writer, "Average File Size (Formatted): %s\n", avgsize.FormatSize(result.Average))

	_, err := fmt.Fprintln(writer, delimiter)

	return err
}
