// Package buildinfo holds the version metadata of the classsweep binary.
// The linker injects values into cmd/classsweep; main forwards them with Set.
package buildinfo

import (
	"fmt"
	"runtime/debug"
)

const (
	unsetCommit  = "none"
	unsetBuiltBy = "unknown"
)

var (
	version = "dev"
	commit  = unsetCommit
	date    = "unknown"
	builtBy = unsetBuiltBy
)

// Set stores the linker-injected build metadata.
func Set(v, c, d, b string) {
	version = v
	commit = c
	date = d
	builtBy = b
}

// Version returns the build version string.
func Version() string { return version }

// Commit returns the build commit hash.
func Commit() string { return commit }

// Date returns the build date string.
func Date() string { return date }

// BuiltBy returns the build agent string.
func BuiltBy() string { return builtBy }

// Enrich fills the commit and builder from runtime/debug.ReadBuildInfo when
// the linker left them unset.
func Enrich() {
	if commit != unsetCommit && builtBy != unsetBuiltBy {
		return
	}

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}

	if commit == unsetCommit {
		for _, setting := range info.Settings {
			if setting.Key == "vcs.revision" {
				commit = setting.Value
			}
		}
	}
	if builtBy == unsetBuiltBy {
		builtBy = info.GoVersion
	}
}

// String renders the multi-line version report.
func String() string {
	return fmt.Sprintf("classsweep version %s\ncommit: %s\nbuilt at: %s\nbuilt by: %s\n", version, commit, date, builtBy)
}
