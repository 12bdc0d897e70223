// Package version provides version information for the application.
package version

import "runtime/debug"

// Set via ldflags at release time, with build info as a fallback.
var (
	Version  = "dev"
	Revision = "unknown"
)

func init() {
	if Revision != "unknown" {
		return
	}

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}

	for _, s := range info.Settings {
		if s.Key == "vcs.revision" && s.Value != "" {
			Revision = s.Value
		}
	}
}
