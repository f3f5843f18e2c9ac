package cli

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/citymesh/citygraph/pkg/multigraph"
)

func (c *CLI) pickCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "pick",
		Short: "Pick a neighborhood interactively and explore it",
		Long: `Open an interactive list of neighborhoods. Choose one and an expansion
depth; its details and every neighborhood within that many hops are printed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			g, err := c.loadGraph(ctx)
			if err != nil {
				return err
			}

			model := NewNeighborhoodListModel(g, c.cfg.Query.Depth, min(c.cfg.Query.MaxDepth, 3))
			final, err := tea.NewProgram(model, tea.WithContext(ctx), tea.WithAltScreen()).Run()
			if err != nil {
				return err
			}
			return printPick(cmd.OutOrStdout(), g, final.(NeighborhoodListModel).Selected)
		},
	}
}

func printPick(w io.Writer, g *multigraph.Graph, choice *PickResult) error {
	if choice == nil {
		printInfo(w, "Nothing selected")
		return nil
	}
	if err := printNeighborhood(w, g, choice.Name, defaultConnections); err != nil {
		return err
	}
	printNewline(w)
	printExpansion(w, g, choice.Name, choice.Depth)
	return nil
}
