package avgsize

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatSize(t *testing.T) {
	tests := []struct {
		name string
		size float64
		want string
	}{
		{name: "zero", size: 0, want: "0.00 B"},
		{name: "below threshold", size: 1023, want: "1023.00 B"},
		{name: "exactly one KB", size: 1024, want: "1.00 KB"},
		{name: "fractional KB", size: 1536, want: "1.50 KB"},
		{name: "one MB", size: 1024 * 1024, want: "1.00 MB"},
		{name: "one GB", size: 1024 * 1024 * 1024, want: "1.00 GB"},
		{name: "one TB", size: math.Pow(1024, 4), want: "1.00 TB"},
		{name: "capped at TB", size: math.Pow(1024, 5), want: "1024.00 TB"},
		{name: "far beyond TB stays in TB", size: math.Pow(1024, 6), want: "1048576.00 TB"},
		{name: "rounding", size: 1024 + 512 + 256, want: "1.75 KB"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, FormatSize(tc.size))
		})
	}
}
