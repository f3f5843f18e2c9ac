package nodelink

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/citymesh/citygraph/pkg/multigraph"
)

func sample() *multigraph.Graph {
	g := multigraph.New()
	g.AddVertex("Boa Vista", "1.1")
	g.AddVertex("Derby", "1.2")
	g.AddVertex("Graças", "3.1")
	g.AddEdge("Boa Vista", "Derby", "Rua do Riachuelo", 700)
	g.AddEdge("Derby", "Boa Vista", "Rua da Aurora", 350)
	g.AddEdge("Derby", "Graças", "Rua das Ninfas", 1600)
	g.AddEdge("Graças", "Espinheiro", "Rua do Espinheiro", 900)
	return g
}

func TestBand(t *testing.T) {
	opts := DefaultOptions()
	tests := []struct {
		meters float64
		want   string
	}{
		{0, BandShort},
		{500, BandShort},
		{500.01, BandMedium},
		{1500, BandMedium},
		{1500.5, BandLong},
	}
	for _, tt := range tests {
		if got := opts.Band(tt.meters); got != tt.want {
			t.Errorf("Band(%v) = %q, want %q", tt.meters, got, tt.want)
		}
	}
}

func TestFromGraph(t *testing.T) {
	v := FromGraph(sample(), DefaultOptions())

	wantNodes := []Node{
		{ID: "Boa Vista", Region: "1.1", Degree: 2},
		{ID: "Derby", Region: "1.2", Degree: 3},
		{ID: "Graças", Region: "3.1", Degree: 2},
		{ID: "Espinheiro", Degree: 1},
	}
	if !reflect.DeepEqual(v.Nodes, wantNodes) {
		t.Errorf("Nodes = %+v, want %+v", v.Nodes, wantNodes)
	}

	wantLinks := []Link{
		{Source: "Boa Vista", Target: "Derby", Streets: []string{"Rua do Riachuelo", "Rua da Aurora"}, Count: 2, Shortest: 350, Band: BandShort},
		{Source: "Derby", Target: "Graças", Streets: []string{"Rua das Ninfas"}, Count: 1, Shortest: 1600, Band: BandLong},
		{Source: "Graças", Target: "Espinheiro", Streets: []string{"Rua do Espinheiro"}, Count: 1, Shortest: 900, Band: BandMedium},
	}
	if !reflect.DeepEqual(v.Links, wantLinks) {
		t.Errorf("Links = %+v, want %+v", v.Links, wantLinks)
	}

	wantMeta := Meta{Vertices: 4, Links: 3, Streets: 4}
	if v.Meta != wantMeta {
		t.Errorf("Meta = %+v, want %+v", v.Meta, wantMeta)
	}
}

func TestFromGraphSelfLoop(t *testing.T) {
	g := multigraph.New()
	g.AddEdge("Recife", "Recife", "Rua do Bom Jesus", 120)
	g.AddEdge("Recife", "Santo Antônio", "Ponte Maurício de Nassau", 300)

	v := FromGraph(g, DefaultOptions())
	if len(v.Links) != 2 {
		t.Fatalf("len(Links) = %d, want 2", len(v.Links))
	}
	loop := v.Links[0]
	if loop.Source != "Recife" || loop.Target != "Recife" || loop.Count != 1 {
		t.Errorf("loop link = %+v", loop)
	}
	if v.Nodes[0].Degree != 3 {
		t.Errorf("Recife degree = %d, want 3", v.Nodes[0].Degree)
	}
	if v.Meta.Streets != 2 {
		t.Errorf("Meta.Streets = %d, want 2", v.Meta.Streets)
	}
}

func TestFromExpansion(t *testing.T) {
	g := sample()

	tests := []struct {
		name      string
		center    string
		depth     int
		wantNodes []string
		wantLinks int
	}{
		{"depth zero", "Derby", 0, []string{"Derby"}, 0},
		{"one hop", "Derby", 1, []string{"Boa Vista", "Derby", "Graças"}, 2},
		{"two hops", "Boa Vista", 2, []string{"Boa Vista", "Derby", "Graças"}, 2},
		{"whole graph", "Boa Vista", 10, []string{"Boa Vista", "Derby", "Graças", "Espinheiro"}, 3},
		{"unknown center", "Pina", 3, []string{"Pina"}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := FromExpansion(g, tt.center, tt.depth, DefaultOptions())
			var ids []string
			for _, n := range v.Nodes {
				ids = append(ids, n.ID)
				if n.Center != (n.ID == tt.center) {
					t.Errorf("node %q Center = %v", n.ID, n.Center)
				}
			}
			if !reflect.DeepEqual(ids, tt.wantNodes) {
				t.Errorf("nodes = %v, want %v", ids, tt.wantNodes)
			}
			if len(v.Links) != tt.wantLinks {
				t.Errorf("len(Links) = %d, want %d", len(v.Links), tt.wantLinks)
			}
			if v.Meta.Center != tt.center || v.Meta.Depth != tt.depth {
				t.Errorf("Meta = %+v", v.Meta)
			}
		})
	}
}

func TestFromExpansionKeepsOuterDegree(t *testing.T) {
	v := FromExpansion(sample(), "Boa Vista", 1, DefaultOptions())
	for _, n := range v.Nodes {
		if n.ID == "Derby" && n.Degree != 3 {
			t.Errorf("Derby degree = %d, want 3 (full graph degree)", n.Degree)
		}
	}
	if len(v.Links) != 1 || v.Links[0].Count != 2 {
		t.Errorf("Links = %+v", v.Links)
	}
}

func TestWriteEmptyGraph(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, FromGraph(multigraph.New(), DefaultOptions())); err != nil {
		t.Fatalf("Write: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if nodes, ok := decoded["nodes"].([]any); !ok || len(nodes) != 0 {
		t.Errorf("nodes = %v, want empty array", decoded["nodes"])
	}
	if links, ok := decoded["links"].([]any); !ok || len(links) != 0 {
		t.Errorf("links = %v, want empty array", decoded["links"])
	}
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "view.json")
	if err := WriteFile(path, FromGraph(sample(), DefaultOptions())); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	var v View
	if err := json.Unmarshal(data, &v); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if v.Meta.Links != 3 {
		t.Errorf("Meta.Links = %d, want 3", v.Meta.Links)
	}
}

func TestWriteFileBadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "view.json")
	if err := WriteFile(path, View{}); err == nil {
		t.Error("WriteFile into a missing directory should fail")
	}
}
