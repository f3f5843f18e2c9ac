package cli

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/citymesh/citygraph/pkg/multigraph"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// NeighborhoodListModel - Interactive neighborhood and depth selection
// =============================================================================

// NeighborhoodRow is one entry of the picker.
type NeighborhoodRow struct {
	Name   string
	Region string
	Degree int
}

// PickResult holds the chosen neighborhood and expansion depth.
type PickResult struct {
	Name  string
	Depth int
}

// NeighborhoodListModel is the bubbletea model for picking a neighborhood.
// Typing filters the list by name, left/right change the depth.
type NeighborhoodListModel struct {
	All      []NeighborhoodRow
	Filter   string
	Cursor   int
	Offset   int
	Height   int
	Depth    int
	MaxDepth int
	Selected *PickResult
}

// NewNeighborhoodListModel lists every neighborhood of g in declaration order.
func NewNeighborhoodListModel(g *multigraph.Graph, depth, maxDepth int) NeighborhoodListModel {
	keys := g.Keys()
	rows := make([]NeighborhoodRow, len(keys))
	for i, k := range keys {
		v, _ := g.Vertex(k)
		rows[i] = NeighborhoodRow{Name: k, Region: v.Region, Degree: g.Degree(k)}
	}
	if maxDepth < 1 {
		maxDepth = 3
	}
	depth = min(max(depth, 1), maxDepth)
	return NeighborhoodListModel{All: rows, Height: 15, Depth: depth, MaxDepth: maxDepth}
}

// Visible returns the rows matching the current filter.
func (m NeighborhoodListModel) Visible() []NeighborhoodRow {
	if m.Filter == "" {
		return m.All
	}
	needle := strings.ToLower(m.Filter)
	var out []NeighborhoodRow
	for _, r := range m.All {
		if strings.Contains(strings.ToLower(r.Name), needle) {
			out = append(out, r)
		}
	}
	return out
}

func (m NeighborhoodListModel) Init() tea.Cmd {
	return nil
}

func (m NeighborhoodListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyUp:
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case tea.KeyDown:
			if m.Cursor < len(m.Visible())-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case tea.KeyLeft:
			if m.Depth > 1 {
				m.Depth--
			}
		case tea.KeyRight:
			if m.Depth < m.MaxDepth {
				m.Depth++
			}
		case tea.KeyBackspace:
			if m.Filter != "" {
				r := []rune(m.Filter)
				m.Filter = string(r[:len(r)-1])
				m.Cursor, m.Offset = 0, 0
			}
		case tea.KeySpace:
			m.Filter += " "
			m.Cursor, m.Offset = 0, 0
		case tea.KeyRunes:
			m.Filter += string(msg.Runes)
			m.Cursor, m.Offset = 0, 0
		case tea.KeyEnter:
			visible := m.Visible()
			if len(visible) == 0 {
				return m, nil
			}
			m.Selected = &PickResult{Name: visible[m.Cursor].Name, Depth: m.Depth}
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = max(msg.Height-8, 5)
	}
	return m, nil
}

func (m NeighborhoodListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Neighborhood"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("type to filter  ↑/↓ navigate  ←/→ depth  ⏎ select  esc quit"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Filter: %s   Depth: %s\n\n",
		listNormalStyle.Render(m.Filter+"_"), listSelectedStyle.Render(strconv.Itoa(m.Depth))))

	visible := m.Visible()
	end := min(m.Offset+m.Height, len(visible))

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		r := visible[i]
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		rows = append(rows, []string{cursor, r.Name, orDash(r.Region), strconv.Itoa(r.Degree)})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleTableBorder).
		Headers("", "Neighborhood", "Region", "Degree").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleTableHeader
			}
			if m.Offset+row == m.Cursor {
				return listSelectedStyle
			}
			if col == 2 || col == 3 {
				return listDimStyle
			}
			return listNormalStyle
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", min(m.Cursor+1, len(visible)), len(visible))))

	return b.String()
}
