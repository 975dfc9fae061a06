// Package version carries build metadata for the shell binaries.
package version

import "runtime"

// AppName is the product name shown in menus, notifications and logs
const AppName = "Open Sunsama"

// Set at build time via -ldflags "-X github.com/open-sunsama/shell/internal/version.Version=..."
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// Info returns "<version> (<commit>)"
func Info() string {
	return Version + " (" + Commit + ")"
}

// Full adds build time and target platform to Info
func Full() string {
	return AppName + " " + Version + " (commit: " + Commit + ", built: " + BuildTime + ", " + runtime.GOOS + "/" + runtime.GOARCH + ")"
}
