package cli

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mattn/go-isatty"

	"github.com/heliosviz/graphkit/pkg/graph"
)

// List styles
var (
	listDimStyle = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// Terminal detection
// =============================================================================

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// canPick reports whether an interactive picker may take over the terminal.
func canPick() bool {
	return isTerminal(os.Stdin) && isTerminal(os.Stdout)
}

// =============================================================================
// NodePickerModel - Interactive node selection
// =============================================================================

// NodeRow is one selectable node.
type NodeRow struct {
	ID     string
	Label  string
	Degree int
	X, Y   float64
}

// NodePickerModel is the bubbletea model for interactive node selection.
type NodePickerModel struct {
	Title    string
	Rows     []NodeRow
	Cursor   int
	Selected *NodeRow
	Height   int
	Offset   int
}

// NewNodePickerModel creates a new node picker model.
func NewNodePickerModel(title string, rows []NodeRow) NodePickerModel {
	return NodePickerModel{
		Title:  title,
		Rows:   rows,
		Height: 15,
	}
}

// nodeRows lists the nodes of g by descending degree, ties by id.
func nodeRows(g *graph.Graph) []NodeRow {
	ix := graph.NewIndex(g)
	rows := make([]NodeRow, 0, ix.Len())
	for i, id := range ix.IDs {
		n, _ := g.Node(id)
		rows = append(rows, NodeRow{ID: id, Label: n.Label, Degree: ix.Degree(i), X: n.X, Y: n.Y})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Degree != rows[j].Degree {
			return rows[i].Degree > rows[j].Degree
		}
		return rows[i].ID < rows[j].ID
	})
	return rows
}

func (m NodePickerModel) Init() tea.Cmd {
	return nil
}

func (m NodePickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Rows)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			if len(m.Rows) == 0 {
				return m, nil
			}
			row := m.Rows[m.Cursor]
			m.Selected = &row
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 6
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m NodePickerModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(m.Title))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.Rows) {
		end = len(m.Rows)
	}

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		r := m.Rows[i]
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		label := r.Label
		if label == "" {
			label = "—"
		}
		pos := fmt.Sprintf("(%s, %s)", fmtFloat(r.X), fmtFloat(r.Y))
		rows = append(rows, []string{cursor, r.ID, label, strconv.Itoa(r.Degree), pos})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Node", "Label", "Degree", "Position").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if m.Offset+row == m.Cursor {
				return lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
			}
			if col >= 3 {
				return lipgloss.NewStyle().Foreground(colorDim)
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Rows))))

	return b.String()
}

// pickNode runs the picker and returns the chosen node id. Quitting without a
// choice returns context.Canceled.
func pickNode(ctx context.Context, title string, rows []NodeRow) (string, error) {
	final, err := tea.NewProgram(NewNodePickerModel(title, rows), tea.WithContext(ctx)).Run()
	if err != nil {
		return "", fmt.Errorf("node picker: %w", err)
	}
	picked, ok := final.(NodePickerModel)
	if !ok || picked.Selected == nil {
		return "", context.Canceled
	}
	return picked.Selected.ID, nil
}

// =============================================================================
// Helpers
// =============================================================================

func fmtFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
