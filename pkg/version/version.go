// Package version holds build-time version info for cronkeeper.
// Set via main using Set(), read from anywhere via the getters.
package version

import "github.com/Masterminds/semver/v3"

// Build information, populated by Set() at startup.
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

// Set stores build-time version info. Call once from main. Empty values
// keep the defaults.
func Set(v, c, d string) {
	if v != "" {
		version = v
	}
	if c != "" {
		commit = c
	}
	if d != "" {
		buildDate = d
	}
}

// Version returns the build version string.
func Version() string { return version }

// Commit returns the build commit hash.
func Commit() string { return commit }

// BuildDate returns the build date string.
func BuildDate() string { return buildDate }

// Display returns the version normalized to vMAJOR.MINOR.PATCH[-pre].
// A version that is not semantic, such as "dev", is returned as is.
func Display() string {
	return display(version)
}

func display(raw string) string {
	v, err := semver.NewVersion(raw)
	if err != nil {
		return raw
	}
	return "v" + v.String()
}
