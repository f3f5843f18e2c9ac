// Package buildinfo carries version strings injected at link time:
//
//	go build -ldflags "-X github.com/citymesh/citygraph/pkg/buildinfo.Version=v0.3.0 \
//	    -X github.com/citymesh/citygraph/pkg/buildinfo.Commit=$(git rev-parse --short HEAD) \
//	    -X github.com/citymesh/citygraph/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)" \
//	    ./cmd/citygraph
package buildinfo

import "fmt"

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// String returns the build information as "key: value" lines.
func String() string {
	return fmt.Sprintf("version: %s\ncommit: %s\nbuilt: %s", Version, Commit, Date)
}

// Template returns the cobra version template.
func Template() string {
	return fmt.Sprintf("{{.Name}} %s (%s, built %s)\n", Version, Commit, Date)
}

// UserAgent identifies citygraph in Server headers and logs.
func UserAgent() string {
	return "citygraph/" + Version
}
