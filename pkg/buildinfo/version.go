// Package buildinfo reports the version barplot was built from.
//
// Release builds set the variables with ldflags:
//
//	go build -ldflags "-X github.com/plotkit/barplot/pkg/buildinfo.Version=v0.3.0 \
//	    -X github.com/plotkit/barplot/pkg/buildinfo.Commit=$(git rev-parse HEAD) \
//	    -X github.com/plotkit/barplot/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
//
// Builds made with go install fall back to the module version and VCS
// settings embedded by the toolchain.
package buildinfo

import (
	"fmt"
	"runtime/debug"
	"sync"
)

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

var fillOnce sync.Once

// fill replaces unset values with the toolchain's embedded build info.
func fill() {
	fillOnce.Do(func() {
		info, ok := debug.ReadBuildInfo()
		if !ok {
			return
		}
		if Version == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
			Version = info.Main.Version
		}
		for _, s := range info.Settings {
			switch {
			case s.Key == "vcs.revision" && Commit == "none":
				Commit = s.Value
			case s.Key == "vcs.time" && Date == "unknown":
				Date = s.Value
			}
		}
	})
}

// String returns the build information on three lines.
func String() string {
	fill()
	return fmt.Sprintf("version: %s\ncommit: %s\nbuilt: %s", Version, Commit, Date)
}

// Short returns the version, suffixed with the short commit when known.
func Short() string {
	fill()
	if len(Commit) >= 7 && Commit != "none" {
		return Version + " (" + Commit[:7] + ")"
	}
	return Version
}

// Template returns the version template for cobra.
func Template() string {
	fill()
	return fmt.Sprintf("{{.Name}} version %s\ncommit: %s\nbuilt: %s\n", Version, Commit, Date)
}
