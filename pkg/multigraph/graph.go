package multigraph

import (
	"fmt"
	"strings"
)

// Vertex is a neighborhood in the street graph.
//
// Name is the trimmed, case-preserving key and never changes once the vertex
// exists. Region is an optional grouping label; the empty string means the
// region is unknown.
type Vertex struct {
	Name   string
	Region string
}

// HasRegion reports whether a region label has been assigned.
func (v Vertex) HasRegion() bool { return v.Region != "" }

func (v Vertex) String() string {
	if v.Region == "" {
		return v.Name
	}
	return fmt.Sprintf("%s (%s)", v.Name, v.Region)
}

// Edge is one directed half of a street connecting two neighborhoods.
//
// Weight is the street length in meters. The graph stores whatever the loader
// supplied and performs no range check.
type Edge struct {
	From   string
	To     string
	Label  string
	Weight float64
}

// IsLoop reports whether the half-edge starts and ends at the same vertex.
func (e Edge) IsLoop() bool { return e.From == e.To }

// Reverse returns the reciprocal half-edge with the same label and weight.
func (e Edge) Reverse() Edge {
	return Edge{From: e.To, To: e.From, Label: e.Label, Weight: e.Weight}
}

func (e Edge) String() string {
	return fmt.Sprintf("%s -> %s via %s (%.2fm)", e.From, e.To, e.Label, e.Weight)
}

// Graph is an undirected multigraph of neighborhoods and streets.
//
// Vertices live in a lookup table keyed by name; order keeps the sequence in
// which keys were first declared so iteration is deterministic. Every
// logical edge is written as two half-edges, one per endpoint, in call order.
//
// The zero value is not usable - use New to create a Graph.
// Graph is not safe for concurrent mutation.
type Graph struct {
	vertices  map[string]*Vertex
	order     []string
	adjacency map[string][]Edge
	edges     int
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{
		vertices:  make(map[string]*Vertex),
		adjacency: make(map[string][]Edge),
	}
}

// normalize turns raw names and labels into keys.
func normalize(s string) string { return strings.TrimSpace(s) }

// AddVertex declares a neighborhood and returns a copy of the stored vertex.
//
// The name is trimmed and the result becomes the permanent key. Declaring an
// existing key refines it: a non-empty region overwrites the stored one, an
// empty region leaves it untouched. AddVertex never fails; an empty name is
// accepted as a key, so callers that read raw data should filter blanks.
func (g *Graph) AddVertex(name, region string) Vertex {
	key := normalize(name)
	if v, ok := g.vertices[key]; ok {
		if region != "" {
			v.Region = region
		}
		return *v
	}
	v := &Vertex{Name: key, Region: region}
	g.vertices[key] = v
	g.order = append(g.order, key)
	return *v
}

// AddEdge adds one street between origin and destination.
//
// All three strings are trimmed. Endpoints that were never declared are
// created without a region. Two half-edges are appended, origin->destination
// to the origin's list and destination->origin to the destination's list, and
// the logical edge count grows by exactly one.
//
// Parallel edges are kept as they are. A self-loop appends both half-edges to
// the same list, so it counts twice toward that vertex's degree.
func (g *Graph) AddEdge(origin, destination, label string, weight float64) {
	from, to := normalize(origin), normalize(destination)
	if _, ok := g.vertices[from]; !ok {
		g.AddVertex(from, "")
	}
	if _, ok := g.vertices[to]; !ok {
		g.AddVertex(to, "")
	}

	e := Edge{From: from, To: to, Label: normalize(label), Weight: weight}
	g.adjacency[from] = append(g.adjacency[from], e)
	g.adjacency[to] = append(g.adjacency[to], e.Reverse())
	g.edges++
}

// String summarizes the graph size.
func (g *Graph) String() string {
	return fmt.Sprintf("Graph(vertices=%d, edges=%d)", len(g.vertices), g.edges)
}
