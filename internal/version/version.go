// Package version carries build information stamped at link time.
package version

// Set via -ldflags "-X 'trfind/internal/version.Version=v0.3.0'
// -X 'trfind/internal/version.Commit=abcd' -X 'trfind/internal/version.Date=2026-10-01'"
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// BuildInfo holds version information about the build.
type BuildInfo struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

// Info returns the stamped build information.
func Info() BuildInfo {
	return BuildInfo{Version: Version, Commit: Commit, Date: Date}
}

// String renders the one-line version banner.
func (b BuildInfo) String() string {
	return b.Version + " (commit " + b.Commit + ", built " + b.Date + ")"
}
