package cli

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	listDimStyle    = lipgloss.NewStyle().Foreground(colorDim)
	detailKeyStyle  = lipgloss.NewStyle().Foreground(colorGray).Width(10)
	detailPaneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorDim).
			Padding(0, 1)
)

// =============================================================================
// edgeBrowser - Interactive edge inspection
// =============================================================================

// edgeBrowser is the bubbletea model behind `inspect -i`: a scrolling edge
// table with the selected edge's segment geometry beside it.
type edgeBrowser struct {
	rows   []edgeRow
	cursor int
	offset int
	height int
}

func newEdgeBrowser(rows []edgeRow) edgeBrowser {
	return edgeBrowser{rows: rows, height: 15}
}

func (m edgeBrowser) Init() tea.Cmd {
	return nil
}

func (m edgeBrowser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.rows)-1 {
				m.cursor++
			}
		case "home", "g":
			m.cursor = 0
		case "end", "G":
			m.cursor = max(0, len(m.rows)-1)
		}
	case tea.WindowSizeMsg:
		m.height = max(5, msg.Height-8)
	}

	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+m.height {
		m.offset = m.cursor - m.height + 1
	}
	return m, nil
}

func (m edgeBrowser) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Edges"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  g/G first/last  q quit"))
	b.WriteString("\n\n")

	if len(m.rows) == 0 {
		b.WriteString(listDimStyle.Render("  graph has no edges"))
		b.WriteString("\n")
		return b.String()
	}

	end := min(m.offset+m.height, len(m.rows))
	var rows [][]string
	for i := m.offset; i < end; i++ {
		r := m.rows[i]
		cursor := " "
		if i == m.cursor {
			cursor = ">"
		}
		rows = append(rows, []string{
			cursor,
			strconv.Itoa(int(r.Edge.ID)),
			fmt.Sprintf("%d %s %d", r.Edge.Source, arrowGlyph(r.Edge.Direction), r.Edge.Target),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Edge", "Connection").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleHeader
			}
			if m.offset+row == m.cursor {
				return lipgloss.NewStyle().Foreground(colorCyan).Bold(true)
			}
			if !m.rows[m.offset+row].Drawn {
				return lipgloss.NewStyle().Foreground(colorDim)
			}
			return lipgloss.NewStyle()
		})

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, t.Render(), "  ", m.detail()))
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.cursor+1, len(m.rows))))
	return b.String()
}

// detail renders the selected edge's geometry.
func (m edgeBrowser) detail() string {
	r := m.rows[m.cursor]
	line := func(k, v string) string {
		return detailKeyStyle.Render(k) + " " + StyleValue.Render(v) + "\n"
	}

	var b strings.Builder
	b.WriteString(line("direction", r.Edge.Direction.String()))
	if !r.Drawn {
		b.WriteString(StyleWarning.Render("not drawn (endpoint has no position)"))
		return detailPaneStyle.Render(b.String())
	}
	s := r.Segment
	start, end := r.Edge.Direction.Arrows()
	b.WriteString(line("anchor", fmt.Sprintf("(%s, %s)", coord(s.X1), coord(s.Y1))))
	b.WriteString(line("end", fmt.Sprintf("(%s, %s)", coord(s.X2), coord(s.Y2))))
	b.WriteString(line("length", coord(s.Length)))
	b.WriteString(line("rotation", coord(s.RotationDeg)+"°"))
	b.WriteString(line("arrows", fmt.Sprintf("start=%t end=%t", start, end)))
	return detailPaneStyle.Render(strings.TrimSuffix(b.String(), "\n"))
}
