// Package version reports how the textify binary was built.
package version

import (
	"fmt"
	"runtime"
)

// Build metadata. `make build` stamps these through -ldflags -X from
// `git describe`, `git rev-parse` and the UTC build time; a plain `go build`
// leaves the placeholders below.
var (
	Version   = "dev"
	Commit    = "none"
	BuildTime = "unknown"
)

// Info is the build metadata together with the runtime that executes it.
type Info struct {
	Version   string
	GitCommit string
	BuildTime string
	GoVersion string
	Platform  string // GOOS/GOARCH
}

// Get collects the stamped metadata and the current runtime.
func Get() Info {
	return Info{
		Version:   Version,
		GitCommit: Commit,
		BuildTime: BuildTime,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// String is the line printed by `textify version`.
func (i Info) String() string {
	return fmt.Sprintf("textify %s (commit %s, built %s, %s %s)",
		i.Version, i.GitCommit, i.BuildTime, i.GoVersion, i.Platform)
}
