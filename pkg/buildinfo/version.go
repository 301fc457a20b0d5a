// Package buildinfo exposes version information injected at build time.
//
//	go build -ldflags "-X github.com/matzehuels/polygrid/pkg/buildinfo.Version=v0.3.0 \
//	    -X github.com/matzehuels/polygrid/pkg/buildinfo.Commit=$(git rev-parse --short HEAD) \
//	    -X github.com/matzehuels/polygrid/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
package buildinfo

import "fmt"

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// String returns a multi-line summary suitable for bug reports.
func String() string {
	return fmt.Sprintf("polygrid %s\ncommit: %s\nbuilt: %s", Version, Commit, Date)
}

// Template returns the cobra version template.
func Template() string {
	return fmt.Sprintf("{{.Name}} %s (%s, built %s)\n", Version, Commit, Date)
}
