package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	apperr "github.com/citymesh/citygraph/pkg/errors"
	"github.com/citymesh/citygraph/pkg/multigraph"
	"github.com/citymesh/citygraph/pkg/nodelink"
)

// =============================================================================
// expand
// =============================================================================

func (c *CLI) expandCommand() *cobra.Command {
	var (
		depth  int
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "expand NAME",
		Short: "List the neighborhoods within a number of hops",
		Long: `List every neighborhood reachable from NAME in at most --depth street hops.
With --json the neighborhood is printed as a node-link view instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.TrimSpace(args[0])
			if err := apperr.ValidateName(name); err != nil {
				return err
			}
			if !cmd.Flags().Changed("depth") {
				depth = c.cfg.Query.Depth
			}
			if err := apperr.ValidateDepth(depth, c.cfg.Query.MaxDepth); err != nil {
				return err
			}

			g, err := c.loadGraph(cmd.Context())
			if err != nil {
				return err
			}
			if asJSON {
				return nodelink.Write(cmd.OutOrStdout(), nodelink.FromExpansion(g, name, depth, c.cfg.Bands()))
			}
			printExpansion(cmd.OutOrStdout(), g, name, depth)
			return nil
		},
	}

	cmd.Flags().IntVarP(&depth, "depth", "d", 1, "maximum number of hops")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print a node-link JSON view")
	return cmd
}

func printExpansion(w io.Writer, g *multigraph.Graph, center string, depth int) {
	if _, ok := g.Vertex(center); !ok {
		printWarning(w, "%q is not a known neighborhood", center)
	}

	keys := g.ExpandOrdered(center, depth)
	printTitle(w, fmt.Sprintf("%d neighborhoods within %d hops of %s", len(keys), depth, center))
	for _, key := range keys {
		marker := " "
		if key == center {
			marker = StyleHighlight.Render(iconCenter)
		}
		fmt.Fprintf(w, "  %s %s %s\n", marker, key, StyleDim.Render(fmt.Sprintf("(degree %d)", g.Degree(key))))
	}
}

// =============================================================================
// export
// =============================================================================

func (c *CLI) exportCommand() *cobra.Command {
	var (
		center string
		depth  int
		output string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the graph as node-link JSON",
		Long: `Write the whole graph, or the neighborhood of --center, as node-link JSON
for visualization tools. Parallel streets are merged into one link per pair
of neighborhoods and links are banded by their shortest street.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			center = strings.TrimSpace(center)
			if center != "" {
				if err := apperr.ValidateName(center); err != nil {
					return err
				}
				if !cmd.Flags().Changed("depth") {
					depth = c.cfg.Query.Depth
				}
				if err := apperr.ValidateDepth(depth, c.cfg.Query.MaxDepth); err != nil {
					return err
				}
			}

			g, err := c.loadGraph(cmd.Context())
			if err != nil {
				return err
			}

			var view nodelink.View
			if center != "" {
				view = nodelink.FromExpansion(g, center, depth, c.cfg.Bands())
			} else {
				view = nodelink.FromGraph(g, c.cfg.Bands())
			}

			w := cmd.OutOrStdout()
			if output == "-" {
				return nodelink.Write(w, view)
			}
			if err := nodelink.WriteFile(output, view); err != nil {
				return err
			}
			printSuccess(w, "Exported %d neighborhoods and %d links", view.Meta.Vertices, view.Meta.Links)
			printFile(w, output)
			return nil
		},
	}

	cmd.Flags().StringVar(&center, "center", "", "export only the neighborhood of this name")
	cmd.Flags().IntVarP(&depth, "depth", "d", 1, "hops around --center")
	cmd.Flags().StringVarP(&output, "output", "o", "citygraph.json", `output file ("-" for stdout)`)
	return cmd
}
