package version

// Build information set by ldflags
var (
	Version = "dev"     // Set by goreleaser: -X github.com/arthur-debert/toke/internal/version.Version={{.Version}}
	Commit  = "unknown" // Set by goreleaser: -X github.com/arthur-debert/toke/internal/version.Commit={{.Commit}}
	Date    = "unknown" // Set by goreleaser: -X github.com/arthur-debert/toke/internal/version.Date={{.Date}}
)

// String formats the build information the way `toke --version` prints it.
func String() string {
	return Version + " (commit: " + Commit + ", built: " + Date + ")"
}
