// Package version holds build information injected at link time via -ldflags.
// Default values are used when building without make.
package version

var (
	Version   = "dev"     // Release version
	GitCommit = "unknown" // Git commit hash
	GitBranch = "unknown" // Git branch name
	BuildTime = "unknown" // Build timestamp (RFC 3339)
	BuildUser = "unknown" // Build user
)
