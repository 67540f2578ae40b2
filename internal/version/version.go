package version

import "fmt"

// Tagline is the application's tagline used in help text
const Tagline = "Agent and git event recording, merging and replay"

// Build information injected at build time via ldflags
// Example: -ldflags="-X github.com/renato0307/trailhook/internal/version.Version=v1.0.0"
var (
	Commit    = "unknown"
	Date      = "unknown"
	GoVersion = "unknown"
	Version   = "dev"
)

// Info returns formatted version information for CLI display
func Info() string {
	return fmt.Sprintf("trailhook %s (commit: %s, built: %s, go: %s)",
		Version, Commit, Date, GoVersion)
}
