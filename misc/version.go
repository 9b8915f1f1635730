// Package misc holds small helpers which do not depend on anything else in the
// program and are needed everywhere.
package misc

import (
	"runtime/debug"
	"sync"
)

const appName = "galgen"

// GetAppName returns short program name used for logs, panic files and reports.
func GetAppName() string {
	return appName
}

var buildInfo = sync.OnceValue(func() *debug.BuildInfo {
	if bi, ok := debug.ReadBuildInfo(); ok {
		return bi
	}
	return nil
})

// GetVersion returns module version as recorded by the Go toolchain.
func GetVersion() string {
	bi := buildInfo()
	if bi == nil || len(bi.Main.Version) == 0 {
		return "unknown"
	}
	return bi.Main.Version
}

// GetGitHash returns VCS revision recorded at build time, if any.
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
