package multigraph

import (
	"slices"
)

// Vertex returns the vertex stored under key and true, or the zero Vertex
// and false if the key was never declared.
func (g *Graph) Vertex(key string) (Vertex, bool) {
	v, ok := g.vertices[key]
	if !ok {
		return Vertex{}, false
	}
	return *v, true
}

// VertexCount returns the number of distinct neighborhoods.
func (g *Graph) VertexCount() int { return len(g.vertices) }

// EdgeCount returns the number of logical (undirected) edges, which equals
// the number of AddEdge calls. Half-edges are not counted separately.
func (g *Graph) EdgeCount() int { return g.edges }

// Keys returns all vertex keys in the order they were first declared.
// The returned slice is a copy.
func (g *Graph) Keys() []string { return slices.Clone(g.order) }

// Neighbors returns the half-edges leaving key in insertion order.
// Unknown keys have no connections and yield an empty result.
// The returned slice is a copy.
func (g *Graph) Neighbors(key string) []Edge { return slices.Clone(g.adjacency[key]) }

// Degree returns the number of half-edges leaving key. Each parallel edge
// counts once and a self-loop counts twice. Unknown keys have degree 0.
func (g *Graph) Degree(key string) int { return len(g.adjacency[key]) }

// HasEdge reports whether at least one half-edge leads from origin to
// destination.
func (g *Graph) HasEdge(origin, destination string) bool {
	return slices.ContainsFunc(g.adjacency[origin], func(e Edge) bool { return e.To == destination })
}

// EdgesBetween returns every half-edge from origin to destination in
// insertion order, one per parallel street. It returns nil when the two
// vertices are not directly connected.
func (g *Graph) EdgesBetween(origin, destination string) []Edge {
	var result []Edge
	for _, e := range g.adjacency[origin] {
		if e.To == destination {
			result = append(result, e)
		}
	}
	return result
}

// Expand returns the set of vertices reachable from start within depth hops.
//
// The expansion is layered: starting from {start}, each round collects every
// destination of every half-edge leaving the current frontier, adds them to
// the result and uses them as the next frontier. It stops after depth rounds
// or as soon as a round discovers nothing new. The start key is always part
// of the result, known or not, and a depth below 1 returns just {start}.
//
// Only reachability is tracked; use it for localized views, not paths.
func (g *Graph) Expand(start string, depth int) map[string]struct{} {
	result := map[string]struct{}{start: {}}
	frontier := []string{start}

	for round := 0; round < depth; round++ {
		var next []string
		seen := make(map[string]struct{})
		for _, key := range frontier {
			for _, e := range g.adjacency[key] {
				if _, ok := seen[e.To]; ok {
					continue
				}
				seen[e.To] = struct{}{}
				next = append(next, e.To)
			}
		}

		grew := false
		for _, key := range next {
			if _, ok := result[key]; !ok {
				result[key] = struct{}{}
				grew = true
			}
		}
		if !grew {
			break
		}
		frontier = next
	}
	return result
}

// ExpandOrdered is like Expand but returns the keys in declaration order,
// which keeps listings and exports stable.
func (g *Graph) ExpandOrdered(start string, depth int) []string {
	set := g.Expand(start, depth)
	keys := make([]string, 0, len(set))
	for _, key := range g.order {
		if _, ok := set[key]; ok {
			keys = append(keys, key)
		}
	}
	if _, known := g.vertices[start]; !known {
		keys = append([]string{start}, keys...)
	}
	return keys
}

// Subgraph returns the half-edges whose endpoints both belong to keys,
// grouped by origin in declaration order. Both halves of every qualifying
// street are included.
func (g *Graph) Subgraph(keys map[string]struct{}) []Edge {
	var result []Edge
	for _, key := range g.order {
		if _, ok := keys[key]; !ok {
			continue
		}
		for _, e := range g.adjacency[key] {
			if _, ok := keys[e.To]; ok {
				result = append(result, e)
			}
		}
	}
	return result
}
