package cli

import (
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	apperr "github.com/citymesh/citygraph/pkg/errors"
	"github.com/citymesh/citygraph/pkg/multigraph"
)

// =============================================================================
// stats
// =============================================================================

func (c *CLI) statsCommand() *cobra.Command {
	var top int

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print graph statistics",
		Long: `Print the number of neighborhoods and streets, the average degree, the
best-connected neighborhood and the number of regions, followed by the
neighborhoods with the most street connections.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := c.loadGraph(cmd.Context())
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("top") {
				top = c.cfg.View.Top
			}
			printGraphStats(cmd.OutOrStdout(), g, top)
			return nil
		},
	}

	cmd.Flags().IntVar(&top, "top", 5, "number of best-connected neighborhoods to list")
	return cmd
}

func printGraphStats(w io.Writer, g *multigraph.Graph, top int) {
	s := g.Stats()

	printTitle(w, "Street graph")
	printKeyValue(w, "Neighborhoods", strconv.Itoa(s.Vertices))
	printKeyValue(w, "Streets", strconv.Itoa(s.Edges))
	printKeyValue(w, "Average degree", fmt.Sprintf("%.2f", s.AverageDegree))
	if s.MaxDegreeVertex != "" {
		printKeyValue(w, "Most connected", fmt.Sprintf("%s (degree %d)", s.MaxDegreeVertex, s.MaxDegree))
	}
	printKeyValue(w, "Regions", strconv.Itoa(s.Regions))

	if top <= 0 || s.Vertices == 0 {
		return
	}
	printNewline(w)
	rows := [][]string{}
	for i, key := range g.Ranked(top) {
		v, _ := g.Vertex(key)
		rows = append(rows, []string{strconv.Itoa(i + 1), key, orDash(v.Region), strconv.Itoa(g.Degree(key))})
	}
	printTable(w, []string{"#", "Neighborhood", "Region", "Degree"}, rows)
}

// =============================================================================
// show
// =============================================================================

// defaultConnections is how many connections show and pick list.
const defaultConnections = 5

func (c *CLI) showCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "show NAME",
		Short: "Show a neighborhood and its first connections",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.TrimSpace(args[0])
			if err := apperr.ValidateName(name); err != nil {
				return err
			}
			g, err := c.loadGraph(cmd.Context())
			if err != nil {
				return err
			}
			return printNeighborhood(cmd.OutOrStdout(), g, name, limit)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", defaultConnections, "number of connections to list (negative for all)")
	return cmd
}

func printNeighborhood(w io.Writer, g *multigraph.Graph, name string, limit int) error {
	v, ok := g.Vertex(name)
	if !ok {
		return apperr.New(apperr.ErrCodeNotFound, "unknown neighborhood %q", name)
	}

	printTitle(w, v.Name)
	printKeyValue(w, "Region", orDash(v.Region))
	printKeyValue(w, "Degree", strconv.Itoa(g.Degree(v.Name)))

	edges := g.Neighbors(v.Name)
	if len(edges) == 0 {
		printInfo(w, "No street connections")
		return nil
	}
	if limit == 0 {
		return nil
	}
	if limit > 0 && limit < len(edges) {
		edges = edges[:limit]
	}
	printNewline(w)
	fmt.Fprintln(w, StyleDim.Render(fmt.Sprintf("First %d connections:", len(edges))))
	for i, e := range edges {
		fmt.Fprintf(w, "  %d. %s via %s (%.2fm)\n", i+1, StyleHighlight.Render(e.To), e.Label, e.Weight)
	}
	return nil
}

// =============================================================================
// between
// =============================================================================

func (c *CLI) betweenCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "between A B",
		Short: "List every street joining two neighborhoods",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, to := strings.TrimSpace(args[0]), strings.TrimSpace(args[1])
			for _, name := range []string{from, to} {
				if err := apperr.ValidateName(name); err != nil {
					return err
				}
			}
			g, err := c.loadGraph(cmd.Context())
			if err != nil {
				return err
			}
			printBetween(cmd.OutOrStdout(), g, from, to)
			return nil
		},
	}
}

func printBetween(w io.Writer, g *multigraph.Graph, from, to string) {
	for _, name := range []string{from, to} {
		if _, ok := g.Vertex(name); !ok {
			printWarning(w, "%q is not a known neighborhood", name)
		}
	}

	edges := g.EdgesBetween(from, to)
	if len(edges) == 0 {
		printInfo(w, "No direct connection between %s and %s", from, to)
		return
	}
	printTitle(w, fmt.Sprintf("Streets between %s and %s", from, to))
	for i, e := range edges {
		fmt.Fprintf(w, "  %d. %s - %.2fm\n", i+1, e.Label, e.Weight)
	}
}

// =============================================================================
// regions
// =============================================================================

func (c *CLI) regionsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "regions",
		Short: "List regions and their neighborhoods",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := c.loadGraph(cmd.Context())
			if err != nil {
				return err
			}
			printRegions(cmd.OutOrStdout(), g)
			return nil
		},
	}
}

func printRegions(w io.Writer, g *multigraph.Graph) {
	groups := g.Regions()
	if len(groups) == 0 {
		printInfo(w, "No region labels loaded")
		return
	}

	names := make([]string, 0, len(groups))
	for r := range groups {
		names = append(names, r)
	}
	slices.Sort(names)

	rows := make([][]string, 0, len(names))
	for _, r := range names {
		rows = append(rows, []string{r, strconv.Itoa(len(groups[r])), strings.Join(groups[r], ", ")})
	}
	printTable(w, []string{"Region", "Count", "Neighborhoods"}, rows)

	if missing := g.VertexCount() - countGrouped(groups); missing > 0 {
		printDetail(w, "%d neighborhoods have no region", missing)
	}
}

func countGrouped(groups map[string][]string) int {
	n := 0
	for _, keys := range groups {
		n += len(keys)
	}
	return n
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
