package tui

import (
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chosenoffset.com/hexfog/board"
	"chosenoffset.com/hexfog/boarddef"
	"chosenoffset.com/hexfog/layout"
	"chosenoffset.com/hexfog/palette"
)

func newTestModel(t *testing.T) *Model {
	t.Helper()

	def := &boarddef.Definition{
		Name:      "Island",
		HexSize:   45,
		Rows:      []int{3, 4, 5, 4, 3},
		StartTile: 7,
	}
	b, err := board.New(def.BoardConfig(), layout.Bounds{Width: 700, Height: 700})
	require.NoError(t, err)

	pal := palette.New(def, palette.DefaultConfig(), nil, log.New(io.Discard))
	return New(b, pal, def.Name, log.New(io.Discard))
}

func keyPress(m *Model, key string) *Model {
	var msg tea.KeyMsg
	switch key {
	case "left":
		msg = tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		msg = tea.KeyMsg{Type: tea.KeyRight}
	case "up":
		msg = tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		msg = tea.KeyMsg{Type: tea.KeyDown}
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
	next, _ := m.Update(msg)
	return next.(*Model)
}

func TestCursorStartsOnToken(t *testing.T) {
	m := newTestModel(t)
	assert.Equal(t, 7, m.cursor)
}

func TestCursorMovement(t *testing.T) {
	m := newTestModel(t)

	m = keyPress(m, "right")
	assert.Equal(t, 8, m.cursor)

	m = keyPress(m, "left")
	m = keyPress(m, "left")
	assert.Equal(t, 6, m.cursor)

	// Row moves keep the column clamped to the destination row.
	m = keyPress(m, "up") // row 1 col 3 -> row 0 col 2
	assert.Equal(t, 2, m.cursor)

	m = keyPress(m, "up") // already on row 0
	assert.Equal(t, 2, m.cursor)

	m = keyPress(m, "down") // row 0 col 2 -> row 1 col 2
	assert.Equal(t, 5, m.cursor)
}

func TestCursorClamps(t *testing.T) {
	m := newTestModel(t)
	m.cursor = 0

	m = keyPress(m, "left")
	assert.Equal(t, 0, m.cursor)

	m.cursor = 18
	m = keyPress(m, "right")
	assert.Equal(t, 18, m.cursor)
}

func TestSelectOnFogIsRejected(t *testing.T) {
	m := newTestModel(t)
	m.cursor = 0 // hidden at the start

	m = keyPress(m, "enter")

	assert.Equal(t, 1, m.board.RevealedCount())
	assert.Contains(t, m.status, "fog")
}

func TestSelectRevealsNeighbors(t *testing.T) {
	m := newTestModel(t)

	m = keyPress(m, "enter") // cursor is on the start tile

	assert.Equal(t, 4, m.board.RevealedCount())
	assert.Contains(t, m.status, "revealed 4/19")
}

func TestViewShowsBoard(t *testing.T) {
	m := newTestModel(t)
	view := m.View()

	assert.Contains(t, view, "Island")
	assert.Contains(t, view, glyphToken)
	assert.Contains(t, view, glyphFog)
	assert.Contains(t, view, "revealed 1/19")

	// 5 board rows plus the surrounding chrome.
	assert.GreaterOrEqual(t, strings.Count(view, "\n"), 5)
}

func TestDeveloperOverlayIsRenderOnly(t *testing.T) {
	m := newTestModel(t)

	m = keyPress(m, "d")
	assert.True(t, m.developer)

	// Every tile is drawn, but the board still has a single revealed
	// tile and fog still gates selection.
	view := m.View()
	assert.NotContains(t, view, glyphFog)
	assert.Equal(t, 1, m.board.RevealedCount())

	m.cursor = 0
	m = keyPress(m, "enter")
	assert.Equal(t, 1, m.board.RevealedCount())
}

func TestQuit(t *testing.T) {
	m := newTestModel(t)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.Equal(t, "", next.(*Model).View())
}
