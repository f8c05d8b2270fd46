package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Tile glyphs. The token marker replaces the tile glyph rather than
// stacking on it, terminal cells being what they are.
const (
	glyphTile  = "⬢"
	glyphFog   = "░"
	glyphToken = "◉"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#5A7A9C")).
			Padding(0, 1).
			Bold(true)

	fogStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#444444"))

	tokenStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF4444")).
			Bold(true)

	cursorStyle = lipgloss.NewStyle().
			Reverse(true)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#AAAAAA"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render(m.name))
	b.WriteString("\n\n")

	pattern := m.board.RowPattern()
	maxCount := 0
	for _, count := range pattern {
		if count > maxCount {
			maxCount = count
		}
	}

	token, hasToken := m.board.TokenTile()

	idx := 0
	for _, count := range pattern {
		// Half-cell stagger per missing tile keeps the hex rows
		// visually centered.
		b.WriteString(strings.Repeat(" ", maxCount-count))

		cells := make([]string, 0, count)
		for col := 0; col < count; col++ {
			cells = append(cells, m.renderTile(idx, token, hasToken))
			idx++
		}
		b.WriteString(strings.Join(cells, " "))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(statusStyle.Render(m.status))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(fmt.Sprintf(
		"revealed %d/%d · arrows move · enter select · d developer · q quit",
		m.board.RevealedCount(), m.board.TotalTiles())))
	b.WriteString("\n")

	return b.String()
}

// renderTile renders one tile cell with its glyph and style.
func (m *Model) renderTile(idx, token int, hasToken bool) string {
	visible := m.developer || m.board.IsRevealed(idx)

	var cell string
	switch {
	case hasToken && idx == token:
		cell = tokenStyle.Render(glyphToken)
	case visible:
		c := m.palette.Color(idx)
		cell = lipgloss.NewStyle().
			Foreground(lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))).
			Render(glyphTile)
	default:
		cell = fogStyle.Render(glyphFog)
	}

	if idx == m.cursor {
		return cursorStyle.Render(cell)
	}
	return cell
}
