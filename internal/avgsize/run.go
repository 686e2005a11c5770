package avgsize

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/charlievieth/fastwalk"
	"github.com/sirupsen/logrus"

	"github.com/idelchi/avgsize/internal/logging"
)

// DefaultProgressInterval is the default interval for progress updates.
const DefaultProgressInterval = 500 * time.Millisecond

// calculateDepth returns the depth of a path relative to the root.
func calculateDepth(path, root string) int {
	relPath := strings.TrimPrefix(path, root)

	relPath = strings.TrimPrefix(relPath, string(filepath.Separator))
	if relPath == "" {
		return 0
	}

	return strings.Count(relPath, string(filepath.Separator)) + 1
}

// shouldExcludeByPattern checks if path matches any exclusion regex.
func shouldExcludeByPattern(path string, patterns []*regexp.Regexp) *regexp.Regexp {
	if len(patterns) == 0 {
		return nil
	}

	fPath := filepath.ToSlash(path)

	for _, re := range patterns {
		if re.MatchString(fPath) {
			return re
		}
	}

	return nil
}

// startProgressReporter invokes hook(files, bytes) on each tick until ctx is done.
//
//nolint:varnamelen // c is idiomatic for collector
func startProgressReporter(ctx context.Context, c *collector, hook func(int64, int64), interval time.Duration) {
	if hook == nil {
		return
	}

	if interval <= 0 {
		interval = DefaultProgressInterval
	}

	ticker := time.NewTicker(interval)

	go func() {
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				hook(c.snapshot())
			case <-ctx.Done():
				return
			}
		}
	}()
}

// validatePath checks that opt.Path exists, is a directory, and is readable,
// mapping each failure to its sentinel error.
func validatePath(path string) error {
	statInfo, err := os.Stat(path)

	switch {
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("%w at %q", ErrNotFound, path)
	case errors.Is(err, fs.ErrPermission):
		return fmt.Errorf("%w: %q", ErrPermission, path)
	case err != nil:
		return fmt.Errorf("accessing path %q: %w", path, err)
	case !statInfo.IsDir():
		return fmt.Errorf("%w: %q", ErrNotADirectory, path)
	}

	// Stat can succeed on a directory the walk cannot list; probe with an
	// actual open so the failure surfaces here rather than mid-walk.
	handle, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrPermission) {
			return fmt.Errorf("%w: %q", ErrPermission, path)
		}

		return fmt.Errorf("opening path %q: %w", path, err)
	}

	return handle.Close()
}

// Run walks the directory tree at opt.Path and returns the aggregate file
// count, byte total, and average size. Only regular files are accumulated;
// directories are descended into, and symlinks and other special entries
// are ignored. Entries that fail to stat or list during the walk are
// skipped and counted in Result.ErrorCount.
//
// If opt.Depth > 0, traversal is limited to the specified depth. The walk
// can be cancelled via ctx. Progress updates are sent to progressHook if
// provided.
func Run(ctx context.Context, opt Options, progressHook func(int64, int64)) (*Result, error) {
	log := logging.New(opt.Debug)

	if opt.Path == "" {
		opt.Path = "."
	}

	// Normalize to native format to handle both C:/Path and C:\Path inputs
	opt.Path = filepath.Clean(opt.Path)

	if err := validatePath(opt.Path); err != nil {
		return nil, err
	}

	excludeRegexes := make([]*regexp.Regexp, 0, len(opt.Excludes))

	for _, p := range opt.Excludes {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("compiling exclusion pattern %q: %w", p, err)
		}

		excludeRegexes = append(excludeRegexes, re)
	}

	for _, re := range excludeRegexes {
		log.WithField("pattern", re.String()).Debug("exclusion pattern active")
	}

	collector := &collector{}

	// Create child context to ensure progress reporter cleanup
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	startProgressReporter(ctx, collector, progressHook, opt.ProgressInterval)

	start := time.Now()

	// A single worker keeps traversal sequential; fastwalk still supplies
	// the explicit-worklist descent, so tree depth never grows the call stack.
	conf := &fastwalk.Config{
		Follow:     false,
		NumWorkers: 1,
	}

	//nolint:varnamelen // d is standard for DirEntry
	walkErr := fastwalk.Walk(conf, opt.Path, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			log.WithFields(logrus.Fields{"path": path, "error": err}).Debug("skipping unreadable entry")
			collector.addError()

			return nil // Per-entry errors are never fatal
		}

		// Check cancellation periodically
		select {
		case <-ctx.Done():
			return context.Canceled
		default:
		}

		currentDepth := calculateDepth(path, opt.Path)
		if opt.Depth > 0 && currentDepth > opt.Depth {
			if d.IsDir() {
				return filepath.SkipDir
			}

			return nil
		}

		if matchedPattern := shouldExcludeByPattern(path, excludeRegexes); matchedPattern != nil {
			log.WithFields(logrus.Fields{
				"path":    filepath.ToSlash(path),
				"pattern": matchedPattern.String(),
			}).Debug("excluding entry")

			if d.IsDir() {
				return filepath.SkipDir
			}

			return nil
		}

		if d.IsDir() {
			return nil
		}

		// Symlinks and special files never reach the accumulator
		if !d.Type().IsRegular() {
			log.WithField("path", path).Debug("skipping non-regular entry")

			return nil
		}

		fileInfo, err := d.Info()
		if err != nil {
			collector.addError()

			return nil //nolint:nilerr // Intentionally skip errors during walk
		}

		if fileInfo.Size() < opt.MinSize {
			return nil
		}

		collector.add(fileInfo.Size())

		return nil
	})
	if walkErr != nil {
		return nil, walkErr
	}

	result := collector.finalize()

	result.Elapsed = time.Since(start)

	return result, nil
}
