package avgsize

import (
	"sync"
	"time"
)

// Result holds the aggregate outcome of a directory walk.
type Result struct {
	// FileCount is the number of regular files accumulated.
	FileCount int64 `json:"file_count"`
	// TotalBytes is the cumulative size of all accumulated files.
	TotalBytes int64 `json:"total_bytes"`
	// Average is TotalBytes divided by FileCount, or 0.0 when no files were found.
	Average float64 `json:"average"`
	// ErrorCount is the number of entries skipped due to errors.
	ErrorCount int64 `json:"error_count"`
	// Elapsed is the total time taken for the walk.
	Elapsed time.Duration `json:"elapsed"`
}

// Options configures the walk and CLI behavior.
type Options struct {
	// Path is the directory to analyze.
	Path string
	// Excludes contains regex patterns to exclude.
	Excludes []string
	// MinSize is the minimum file size in bytes.
	MinSize int64
	// Depth is the maximum traversal depth (0=unlimited).
	Depth int
	// ProgressInterval controls progress callback cadence.
	ProgressInterval time.Duration
	// Debug indicates whether debug output is enabled.
	Debug bool
	// Output represents output format (table or json).
	Output string
	// Version indicates whether to show version and exit.
	Version bool
}

// collector accumulates a running sum and count. The walk itself is
// single-worker, but the progress reporter goroutine reads the counters
// while the walk runs, so access is guarded by a mutex.
type collector struct {
	mu         sync.Mutex
	fileCount  int64
	totalBytes int64
	errorCount int64
}

// addError increments the skipped-entry counter.
func (c *collector) addError() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.errorCount++
}

// add records one regular file of the given size.
func (c *collector) add(size int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.fileCount++
	c.totalBytes += size
}

// snapshot returns the current file count and byte total for progress reporting.
func (c *collector) snapshot() (files, bytes int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.fileCount, c.totalBytes
}

// finalize produces the final Result. The average is computed as a single
// floating-point division here rather than incrementally during the walk,
// so no rounding error compounds.
func (c *collector) finalize() *Result {
	c.mu.Lock()
	defer c.mu.Unlock()

	average := 0.0
	if c.fileCount > 0 {
		average = float64(c.totalBytes) / float64(c.fileCount)
	}

	return &Result{
		FileCount:  c.fileCount,
		TotalBytes: c.totalBytes,
		Average:    average,
		ErrorCount: c.errorCount,
	}
}
