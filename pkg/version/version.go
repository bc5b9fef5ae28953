// Package version provides version information for secconf.
// These variables are set via ldflags during the build process.
package version

// Version is the current version of the binary.
// Set via -ldflags "-X github.com/secure-config-tool/secconf/pkg/version.Version=..."
var Version = "1.0.0"

// BuildDate is the date when the binary was built.
// Set via -ldflags "-X github.com/secure-config-tool/secconf/pkg/version.BuildDate=..."
var BuildDate = "unknown"

// GitCommit is the git commit hash used to build the binary.
// Set via -ldflags "-X github.com/secure-config-tool/secconf/pkg/version.GitCommit=..."
var GitCommit = "unknown"

// GoVersion is the Go version used to build the binary.
// Set via -ldflags "-X github.com/secure-config-tool/secconf/pkg/version.GoVersion=..."
var GoVersion = "unknown"

// String returns the bare version string.
func String() string {
	return Version
}

// FullString returns the full human-readable version line.
func FullString() string {
	return "Secure Config Tool v" + Version
}

// Info returns all version information as a map.
func Info() map[string]string {
	return map[string]string{
		"version":   Version,
		"buildDate": BuildDate,
		"gitCommit": GitCommit,
		"goVersion": GoVersion,
	}
}
