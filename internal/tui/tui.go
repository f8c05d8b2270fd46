// Package tui is the terminal host for a fog-of-war hex board, built on
// Bubble Tea. It proves the board core is renderer-agnostic: the same
// state machine drives both this and the GUI frontend.
package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"chosenoffset.com/hexfog/board"
	"chosenoffset.com/hexfog/palette"
)

// Model represents the Bubble Tea model for the board
type Model struct {
	board   *board.Board
	palette *palette.Palette
	name    string
	logger  *log.Logger

	// cursor is the tile the keyboard is pointing at. It may sit on
	// fog; selection of fogged tiles is rejected by the board.
	cursor int

	// developer forces every tile visible when rendering. Display
	// only; the board's revealed set is untouched.
	developer bool

	status   string
	quitting bool
}

// New creates a terminal model around an initialized board. The cursor
// starts on the token tile.
func New(b *board.Board, pal *palette.Palette, name string, logger *log.Logger) *Model {
	cursor, _ := b.TokenTile()
	return &Model{
		board:   b,
		palette: pal,
		name:    name,
		logger:  logger,
		cursor:  cursor,
		status:  "arrows move, enter selects",
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "q", "ctrl+c", "esc":
		m.quitting = true
		return m, tea.Quit

	case "left":
		m.moveCursor(-1)
	case "right":
		m.moveCursor(1)
	case "up":
		m.moveCursorRow(-1)
	case "down":
		m.moveCursorRow(1)

	case "d":
		m.developer = !m.developer
		m.status = fmt.Sprintf("developer overlay: %v", m.developer)
		m.logger.Info("developer overlay toggled", "enabled", m.developer)

	case "enter", " ":
		m.selectCursor()
	}

	return m, nil
}

// moveCursor shifts the cursor along the tile index order, clamped to
// the board.
func (m *Model) moveCursor(delta int) {
	next := m.cursor + delta
	if next < 0 || next >= m.board.TotalTiles() {
		return
	}
	m.cursor = next
}

// moveCursorRow moves the cursor to the adjacent row, keeping the column
// clamped to the destination row's width.
func (m *Model) moveCursorRow(delta int) {
	pattern := m.board.RowPattern()
	row, col := rowCol(pattern, m.cursor)

	target := row + delta
	if target < 0 || target >= len(pattern) {
		return
	}
	if col >= pattern[target] {
		col = pattern[target] - 1
	}
	m.cursor = rowStart(pattern, target) + col
}

// selectCursor applies the board transition for the cursor tile and
// reports the outcome in the status line.
func (m *Model) selectCursor() {
	handled := m.board.SelectTile(m.cursor)
	if handled {
		m.status = fmt.Sprintf("moved to tile %d, revealed %d/%d",
			m.cursor, m.board.RevealedCount(), m.board.TotalTiles())
	} else {
		m.status = fmt.Sprintf("tile %d is still under fog", m.cursor)
	}
	m.logger.Debug("tile selected", "tile", m.cursor, "handled", handled)
}

// rowStart returns the index of the first tile in a row.
func rowStart(pattern []int, row int) int {
	start := 0
	for r := 0; r < row; r++ {
		start += pattern[r]
	}
	return start
}

// rowCol converts a tile index to its row and column.
func rowCol(pattern []int, idx int) (row, col int) {
	for r, count := range pattern {
		if idx < count {
			return r, idx
		}
		idx -= count
	}
	return len(pattern) - 1, 0
}
