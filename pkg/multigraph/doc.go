// Package multigraph provides the undirected street multigraph behind citygraph.
//
// Vertices are neighborhoods keyed by their trimmed name, and edges are the
// streets connecting them. Parallel edges are kept: two streets between the
// same pair of neighborhoods are two distinct logical edges.
//
// # Representation
//
// Each logical edge is stored as a pair of half-edges, one in the adjacency
// list of each endpoint:
//
//	g := multigraph.New()
//	g.AddVertex("Boa Vista", "1.1")
//	g.AddEdge("Boa Vista", "Santo Amaro", "Rua da Aurora", 850)
//
//	g.Neighbors("Boa Vista")   // [Boa Vista -> Santo Amaro via Rua da Aurora]
//	g.Neighbors("Santo Amaro") // [Santo Amaro -> Boa Vista via Rua da Aurora]
//	g.EdgeCount()              // 1
//
// For every half-edge (u->v, label, w) there is always a reciprocal
// (v->u, label, w). [Graph.EdgeCount] counts logical edges, not half-edges.
//
// # Vertex Declaration
//
// [Graph.AddVertex] is idempotent on the key. A later declaration with a
// non-empty region replaces the stored region; an empty region never does.
// [Graph.AddEdge] creates unknown endpoints without a region, so regions and
// streets may be loaded in either order.
//
// # Queries
//
// Lookups on unknown keys are not errors: [Graph.Neighbors] returns an empty
// slice, [Graph.Degree] returns 0 and [Graph.Vertex] reports false.
// [Graph.Expand] collects every vertex within a hop bound using layered
// breadth-first expansion. It answers reachability only; no path information
// is kept.
//
// # Concurrency
//
// A Graph is built by a single goroutine and is read-only afterwards. Once
// construction has finished it is safe for concurrent readers; there is no
// locking, so readers must not start before the build completes.
package multigraph
