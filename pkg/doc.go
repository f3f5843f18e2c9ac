// Package pkg holds the libraries behind citygraph.
//
// # Overview
//
// Citygraph models a city as an undirected multigraph: neighborhoods are
// vertices and every street joining two of them is an edge. Two streets
// between the same pair stay two edges.
//
// # Architecture
//
// Data flows one way:
//
//	region feed + street feed (CSV, XLSX, JSON, YAML)
//	         ↓
//	    [loader] package (parse rows, skip blanks, build)
//	         ↓
//	    [multigraph] package (store + queries)
//	         ↓
//	    [nodelink] views, the [server] HTTP API, the CLI
//
// # Quick Start
//
//	import (
//	    "context"
//
//	    "github.com/citymesh/citygraph/pkg/loader"
//	    "github.com/citymesh/citygraph/pkg/nodelink"
//	)
//
//	g, report, err := loader.LoadFiles(context.Background(),
//	    "bairros.csv", "logradouros.csv", loader.DefaultColumns())
//	if err != nil {
//	    return err
//	}
//	fmt.Println(g, report.Skipped)
//
//	g.Neighbors("Boa Vista")
//	g.EdgesBetween("Boa Vista", "Derby")
//	g.Expand("Boa Vista", 2)
//
//	view := nodelink.FromExpansion(g, "Boa Vista", 2, nodelink.DefaultOptions())
//	nodelink.WriteFile("boa-vista.json", view)
//
// # Main Packages
//
//   - [multigraph]: vertices, half-edge adjacency lists, queries, statistics
//   - [loader]: feed readers and the graph builder
//   - [nodelink]: node-link JSON views with merged parallel streets
//   - [server]: read-only chi router over a built graph
//
// # Supporting Packages
//
//   - [config]: TOML settings
//   - [errors]: coded errors shared by the CLI and the API
//   - [observability]: build and HTTP hooks
//   - [metrics]: Prometheus implementation of those hooks
//   - [buildinfo]: version strings set by ldflags
//
// [multigraph]: https://pkg.go.dev/github.com/citymesh/citygraph/pkg/multigraph
// [loader]: https://pkg.go.dev/github.com/citymesh/citygraph/pkg/loader
// [nodelink]: https://pkg.go.dev/github.com/citymesh/citygraph/pkg/nodelink
// [server]: https://pkg.go.dev/github.com/citymesh/citygraph/pkg/server
// [config]: https://pkg.go.dev/github.com/citymesh/citygraph/pkg/config
// [errors]: https://pkg.go.dev/github.com/citymesh/citygraph/pkg/errors
// [observability]: https://pkg.go.dev/github.com/citymesh/citygraph/pkg/observability
// [metrics]: https://pkg.go.dev/github.com/citymesh/citygraph/pkg/metrics
// [buildinfo]: https://pkg.go.dev/github.com/citymesh/citygraph/pkg/buildinfo
package pkg
