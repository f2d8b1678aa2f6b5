// Package version provides build-time version information.
package version

import "fmt"

// Set at build time with -ldflags "-X muscle-overlay/internal/version.Version=...".
var (
	Version   = "0.1.0"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// String returns a one-line description of the build.
func String() string {
	return fmt.Sprintf("muscle-overlay %s (commit %s, built %s)", Version, GitCommit, BuildTime)
}
