// Package version provides build information for themecfg.
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

// cueModulePath identifies the CUE SDK in the binary's build info.
const cueModulePath = "cuelang.org/go"

// Info contains version information.
type Info struct {
	// Version is the CLI version (set via ldflags).
	Version string `json:"version" yaml:"version"`

	// GitCommit is the git commit hash.
	GitCommit string `json:"gitCommit" yaml:"gitCommit"`

	// BuildDate is the build timestamp.
	BuildDate string `json:"buildDate" yaml:"buildDate"`

	// GoVersion is the Go version used to build.
	GoVersion string `json:"goVersion" yaml:"goVersion"`

	// CUESDKVersion is the CUE SDK linked into the binary, used for .cue
	// documents and the embedded schema.
	CUESDKVersion string `json:"cueSDKVersion" yaml:"cueSDKVersion"`
}

// Get returns the current version information.
func Get() Info {
	return Info{
		Version:       Version,
		GitCommit:     GitCommit,
		BuildDate:     BuildDate,
		GoVersion:     runtime.Version(),
		CUESDKVersion: cueSDKVersion(),
	}
}

// cueSDKVersion reads the CUE module version from build info. Test
// binaries and builds without module info report "unknown".
func cueSDKVersion() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}
	for _, dep := range info.Deps {
		if dep.Path != cueModulePath {
			continue
		}
		if dep.Replace != nil {
			return dep.Replace.Version
		}
		return dep.Version
	}
	return "unknown"
}

// String returns a human-readable version string.
func (i Info) String() string {
	return fmt.Sprintf("themecfg:\n  Version:  %s\n  Build ID: %s/%s\n  Go:       %s\n\nCUE:\n  SDK Version: %s",
		i.Version, i.BuildDate, i.GitCommit, i.GoVersion, i.CUESDKVersion)
}
