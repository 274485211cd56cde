// Package buildinfo carries release metadata injected at link time.
package buildinfo

// Set via -ldflags by the release build; empty for local builds.
var (
	Version = ""
	Commit  = ""
	Date    = ""
)
