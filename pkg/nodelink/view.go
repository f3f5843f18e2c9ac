package nodelink

import (
	"github.com/citymesh/citygraph/pkg/multigraph"
)

// Distance bands.
const (
	BandShort  = "short"
	BandMedium = "medium"
	BandLong   = "long"
)

// Options controls how links are classified.
type Options struct {
	ShortMax  float64 // upper bound in meters for BandShort
	MediumMax float64 // upper bound in meters for BandMedium
}

// DefaultOptions returns the standard 500 m / 1500 m thresholds.
func DefaultOptions() Options {
	return Options{ShortMax: 500, MediumMax: 1500}
}

// Band classifies a distance in meters.
func (o Options) Band(meters float64) string {
	switch {
	case meters <= o.ShortMax:
		return BandShort
	case meters <= o.MediumMax:
		return BandMedium
	default:
		return BandLong
	}
}

// View is the serialized node-link representation of a graph.
type View struct {
	Nodes []Node `json:"nodes"`
	Links []Link `json:"links"`
	Meta  Meta   `json:"meta"`
}

// Node is one neighborhood.
type Node struct {
	ID     string `json:"id"`
	Region string `json:"region,omitempty"`
	Degree int    `json:"degree"`
	Center bool   `json:"center,omitempty"`
}

// Link merges every street between one unordered pair of neighborhoods.
type Link struct {
	Source   string   `json:"source"`
	Target   string   `json:"target"`
	Streets  []string `json:"streets"`
	Count    int      `json:"count"`
	Shortest float64  `json:"shortest"`
	Band     string   `json:"band"`
}

// Meta carries view totals. Center and Depth are set for expansions only.
type Meta struct {
	Vertices int    `json:"vertices"`
	Links    int    `json:"links"`
	Streets  int    `json:"streets"`
	Center   string `json:"center,omitempty"`
	Depth    int    `json:"depth,omitempty"`
}

// FromGraph builds the view of the whole graph.
func FromGraph(g *multigraph.Graph, opts Options) View {
	keys := g.Keys()
	set := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		set[k] = struct{}{}
	}
	return build(g, keys, set, "", opts)
}

// FromExpansion builds the view of every neighborhood within depth hops of
// center. An unknown center yields a single isolated node.
func FromExpansion(g *multigraph.Graph, center string, depth int, opts Options) View {
	v := build(g, g.ExpandOrdered(center, depth), g.Expand(center, depth), center, opts)
	v.Meta.Center = center
	v.Meta.Depth = depth
	return v
}

type pair struct{ from, to string }

func build(g *multigraph.Graph, keys []string, set map[string]struct{}, center string, opts Options) View {
	view := View{
		Nodes: make([]Node, 0, len(keys)),
		Links: []Link{},
	}
	for _, k := range keys {
		n := Node{ID: k, Degree: g.Degree(k), Center: center != "" && k == center}
		if v, ok := g.Vertex(k); ok {
			n.Region = v.Region
		}
		view.Nodes = append(view.Nodes, n)
	}

	pos := make(map[string]int, len(keys))
	for i, k := range g.Keys() {
		pos[k] = i
	}

	index := make(map[pair]int)
	edges := g.Subgraph(set)
	for i := 0; i < len(edges); i++ {
		e := edges[i]
		// Every street shows up twice, once per endpoint. A self-loop's two
		// halves are adjacent in the same list, so skip the second one.
		if e.IsLoop() {
			i++
		} else if pos[e.To] < pos[e.From] {
			continue
		}
		view.Meta.Streets++

		p := pair{e.From, e.To}
		idx, ok := index[p]
		if !ok {
			index[p] = len(view.Links)
			view.Links = append(view.Links, Link{Source: e.From, Target: e.To, Shortest: e.Weight})
			idx = len(view.Links) - 1
		}
		link := &view.Links[idx]
		link.Streets = append(link.Streets, e.Label)
		link.Count++
		if e.Weight < link.Shortest {
			link.Shortest = e.Weight
		}
	}
	for i := range view.Links {
		view.Links[i].Band = opts.Band(view.Links[i].Shortest)
	}

	view.Meta.Vertices = len(view.Nodes)
	view.Meta.Links = len(view.Links)
	return view
}
