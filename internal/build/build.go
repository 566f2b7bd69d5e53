// Package build holds build-time information.
package build

// These variables are set at build time using ldflags.
var (
	// Version is the application version.
	Version = "dev"
	// Commit is the git commit hash the binary was built from.
	Commit = "none"
	// Date is the build date.
	Date = "unknown"
)
