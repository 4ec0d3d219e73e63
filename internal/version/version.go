// Package version provides version information for tmpl.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Build-time variables set via ldflags.
var (
	// Version is the CLI version (set via ldflags).
	Version = "v0.0.0-dev"

	// GitCommit is the git commit hash.
	GitCommit = "unknown"

	// BuildDate is the build timestamp.
	BuildDate = "unknown"
)

// Modules whose versions are reported alongside the CLI version.
const (
	cueModule   = "cuelang.org/go"
	pongoModule = "github.com/flosch/pongo2/v6"
)

// Info contains version information.
type Info struct {
	// Version is the CLI version (set via ldflags).
	Version string `json:"version"`

	// GitCommit is the git commit hash.
	GitCommit string `json:"gitCommit"`

	// BuildDate is the build timestamp.
	BuildDate string `json:"buildDate"`

	// GoVersion is the Go version used to build.
	GoVersion string `json:"goVersion"`

	// CUESDKVersion is the CUE SDK used for schema validation.
	CUESDKVersion string `json:"cueSDKVersion"`

	// PongoVersion is the pongo2 version behind the jinja engine.
	PongoVersion string `json:"pongoVersion"`
}

// Get returns the current version information.
func Get() Info {
	deps := dependencyVersions()
	return Info{
		Version:       Version,
		GitCommit:     GitCommit,
		BuildDate:     BuildDate,
		GoVersion:     runtime.Version(),
		CUESDKVersion: orUnknown(deps[cueModule]),
		PongoVersion:  orUnknown(deps[pongoModule]),
	}
}

// String returns a human-readable version string.
func (i Info) String() string {
	return fmt.Sprintf("tmpl:\n  Version:  %s\n  Commit:   %s\n  Built:    %s\n  Go:       %s\n\nEngines:\n  CUE SDK:  %s\n  pongo2:   %s",
		i.Version, i.GitCommit, i.BuildDate, i.GoVersion, i.CUESDKVersion, i.PongoVersion)
}

// dependencyVersions maps module paths to the versions linked into the binary.
func dependencyVersions() map[string]string {
	versions := make(map[string]string)
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return versions
	}
	for _, dep := range bi.Deps {
		if dep.Replace != nil {
			dep = dep.Replace
		}
		versions[dep.Path] = dep.Version
	}
	return versions
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}
