// Package misc provides build related information for the rest of the program.
package misc

import (
	"runtime/debug"
	"sync"
)

const appName = "blogkit"

// GetAppName returns short program name used in logs, reports and temp file names.
func GetAppName() string {
	return appName
}

var buildInfo = sync.OnceValue(func() *debug.BuildInfo {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return nil
	}
	return bi
})

// GetVersion returns module version recorded in the binary.
func GetVersion() string {
	bi := buildInfo()
	if bi == nil || bi.Main.Version == "" {
		return "(devel)"
	}
	return bi.Main.Version
}

// GetGitHash returns VCS revision recorded in the binary, if any.
func GetGitHash() string {
	bi := buildInfo()
	if bi == nil {
		return "unknown"
	}
	for _, s := range bi.Settings {
		if s.Key == "vcs.revision" {
			if len(s.Value) > 12 {
				return s.Value[:12]
			}
			return s.Value
		}
	}
	return "unknown"
}
