// Package constants provides shared constants used throughout the romcheck codebase.
// This includes file permissions, scan cadence, and default configuration values
// that should be consistent across the application.
package constants

import "time"

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Verification constants
const (
	// ProgressInterval is how many sets are verified between progress updates
	ProgressInterval = 128

	// ZipExt is the archive extension the store resolves set names against
	ZipExt = ".zip"
)

// Timeout constants
const (
	// ShutdownTimeout is how long the CLI waits for cleanup after an interrupt
	ShutdownTimeout = 5 * time.Second
)

// Default values
const (
	// DefaultSetType is the set type assumed when none is configured
	DefaultSetType = "split"
)
