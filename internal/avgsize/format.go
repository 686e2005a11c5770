package avgsize

import "fmt"

// units is the ordered sequence of size symbols, powers of 1024 apart.
var units = [...]string{"B", "KB", "MB", "GB", "TB"}

// FormatSize renders a non-negative byte count as a two-decimal value with
// the largest unit keeping the scaled value below 1024. Values at or above
// 1024 TB stay in TB.
//
// FormatSize(0) returns "0.00 B".
func FormatSize(size float64) string {
	idx := 0

	for size >= 1024 && idx < len(units)-1 {
		size /= 1024
		idx++
	}

	return fmt.Sprintf("%.2f %s", size, units[idx])
}
