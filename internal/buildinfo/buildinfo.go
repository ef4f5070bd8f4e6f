// Package buildinfo carries the version stamped in at link time:
//
//	go build -ldflags "-X edgelcd/internal/buildinfo.Version=v1.2.0 -X edgelcd/internal/buildinfo.Commit=$(git rev-parse --short HEAD)"
package buildinfo

import "strings"

// Version is set at build time via -ldflags.
var Version = "dev"

// Commit is set at build time via -ldflags.
var Commit = "unknown"

// Date is set at build time via -ldflags.
var Date = "unknown"

// Short returns a compact build identifier for the window title and the
// status line. It never exceeds MaxShort characters.
func Short() string {
	s := "dev"
	switch {
	case Version != "" && Version != "dev":
		s = Version
	case Commit != "" && Commit != "unknown":
		s = Commit
	}
	if len(s) > MaxShort {
		s = s[:MaxShort]
	}
	return s
}

// MaxShort is the widest identifier that fits the status line in tiny text.
const MaxShort = 12

// String returns the full identifier used in log lines.
func String() string {
	parts := []string{Version}
	if Commit != "" && Commit != "unknown" {
		parts = append(parts, Commit)
	}
	if Date != "" && Date != "unknown" {
		parts = append(parts, Date)
	}
	return strings.Join(parts, " ")
}
