package avgsize

import "errors"

// Sentinel errors for path validation failures. Callers match with
// errors.Is; the wrapped message always carries the offending path.
var (
	// ErrNotFound indicates the target path does not exist.
	ErrNotFound = errors.New("directory not found")
	// ErrNotADirectory indicates the target path exists but is not a directory.
	ErrNotADirectory = errors.New("path exists but is not a directory")
	// ErrPermission indicates the target path is not readable.
	ErrPermission = errors.New("directory is not readable")
)
