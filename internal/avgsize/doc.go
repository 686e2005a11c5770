// Package avgsize computes the average size of regular files in a
// directory tree.
//
// It walks the tree with a single fastwalk worker, accumulates a running
// byte total and file count, and derives the arithmetic mean with one
// floating-point division at the end. Symlinks and special files are
// excluded; unreadable entries are skipped, not fatal.
package avgsize
