// Package version reports the leakcalc build version.
//
// The values are injected at build time:
//
//	go build -ldflags "-X github.com/sergeyya18/leakcalc/pkg/version.version=1.2.0 \
//	  -X github.com/sergeyya18/leakcalc/pkg/version.gitCommit=$(git rev-parse --short HEAD)"
package version

import (
	"github.com/Masterminds/semver/v3"
)

// DevVersion is reported when no valid version was injected.
const DevVersion = "0.0.0-dev"

//nolint:gochecknoglobals // Set via -ldflags -X at build time.
var (
	version   = DevVersion
	gitCommit = "unknown"
	buildDate = "unknown"
)

// GetVersion returns the build version. A value that is not a semantic
// version, such as an empty or mistyped ldflags value, yields DevVersion.
func GetVersion() string {
	return normalize(version)
}

// GetGitCommit returns the commit the binary was built from.
func GetGitCommit() string { return gitCommit }

// GetBuildDate returns the build timestamp.
func GetBuildDate() string { return buildDate }

func normalize(v string) string {
	parsed, err := semver.NewVersion(v)
	if err != nil {
		return DevVersion
	}
	return parsed.String()
}
