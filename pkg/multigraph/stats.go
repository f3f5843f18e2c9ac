package multigraph

import (
	"cmp"
	"slices"
)

// Stats summarizes a graph for reports.
type Stats struct {
	Vertices      int     `json:"vertices"`
	Edges         int     `json:"edges"`
	AverageDegree float64 `json:"average_degree"`
	// MaxDegreeVertex is the best-connected neighborhood. Ties go to the key
	// declared first. Empty for an empty graph.
	MaxDegreeVertex string `json:"max_degree_vertex,omitempty"`
	MaxDegree       int    `json:"max_degree"`
	Regions         int    `json:"regions"`
}

// Stats computes summary statistics in a single pass over the vertices.
func (g *Graph) Stats() Stats {
	s := Stats{Vertices: len(g.vertices), Edges: g.edges}
	if len(g.order) == 0 {
		return s
	}

	total := 0
	regions := make(map[string]struct{})
	for i, key := range g.order {
		d := len(g.adjacency[key])
		total += d
		if i == 0 || d > s.MaxDegree {
			s.MaxDegree = d
			s.MaxDegreeVertex = key
		}
		if r := g.vertices[key].Region; r != "" {
			regions[r] = struct{}{}
		}
	}
	s.AverageDegree = float64(total) / float64(len(g.order))
	s.Regions = len(regions)
	return s
}

// Regions groups vertex keys by region label. Keys keep declaration order
// within each group. Vertices without a region are left out.
func (g *Graph) Regions() map[string][]string {
	groups := make(map[string][]string)
	for _, key := range g.order {
		if r := g.vertices[key].Region; r != "" {
			groups[r] = append(groups[r], key)
		}
	}
	return groups
}

// Ranked returns up to n keys ordered by degree, highest first. Keys with
// equal degree keep declaration order. A negative n returns every key.
func (g *Graph) Ranked(n int) []string {
	keys := slices.Clone(g.order)
	slices.SortStableFunc(keys, func(a, b string) int {
		return cmp.Compare(len(g.adjacency[b]), len(g.adjacency[a]))
	})
	if n >= 0 && n < len(keys) {
		keys = keys[:n]
	}
	return keys
}
