// Package board implements the fog-of-war state machine for a hex tile
// board: which tiles have been revealed so far and where the player token
// sits.
//
// A Board is single-threaded by contract. The host serializes input
// events so one selection completes before the next begins; the renderer
// reads state between events. A Board shared across goroutines needs
// external synchronization.
package board

import (
	"errors"
	"fmt"

	"chosenoffset.com/hexfog/hexes"
	"chosenoffset.com/hexfog/layout"
)

// ErrInvalidConfiguration is returned by New for malformed construction
// input: an empty or non-positive row pattern, a non-positive hex size,
// or a start tile outside the board.
var ErrInvalidConfiguration = errors.New("invalid board configuration")

// Config holds the construction input for a board.
type Config struct {
	HexSize    float64
	RowPattern []int
	StartTile  int
}

// Board owns the revealed set and the token position for one hex board.
// The revealed set only ever grows, and the token only ever sits on a
// revealed tile.
type Board struct {
	layout   *layout.Layout
	revealed map[int]bool
	token    int
}

// New builds a board from cfg laid out against the given bounds. The
// start tile begins revealed with the token on it. Errors wrap
// ErrInvalidConfiguration.
func New(cfg Config, b layout.Bounds) (*Board, error) {
	lay, err := layout.Generate(cfg.RowPattern, cfg.HexSize, b)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfiguration, err)
	}
	if cfg.StartTile < 0 || cfg.StartTile >= lay.Total() {
		return nil, fmt.Errorf("%w: start tile %d outside [0,%d)",
			ErrInvalidConfiguration, cfg.StartTile, lay.Total())
	}

	return &Board{
		layout:   lay,
		revealed: map[int]bool{cfg.StartTile: true},
		token:    cfg.StartTile,
	}, nil
}

// SelectTile applies the reveal/move transition for a player selecting
// tile idx. The returned bool reports whether the selection was handled;
// it is advisory, not an error.
//
// An out-of-range index is ignored: clicking outside the board is normal
// interaction. An unrevealed tile is ignored too, which is the fog rule:
// the token can only move onto a tile the player has already uncovered.
// Otherwise the token moves to idx and every neighbor of idx becomes
// revealed.
func (b *Board) SelectTile(idx int) bool {
	if idx < 0 || idx >= b.layout.Total() {
		return false
	}
	if !b.revealed[idx] {
		return false
	}

	b.token = idx
	for _, n := range b.layout.Neighbors(idx) {
		b.revealed[n] = true
	}
	return true
}

// Resize regenerates the tile layout against new bounds, for when the
// drawable area changes. The revealed set and token are untouched; tile
// indices are stable across resizes.
func (b *Board) Resize(bounds layout.Bounds) {
	b.layout = b.layout.Regenerate(bounds)
}

// Layout returns the board's current tile layout.
func (b *Board) Layout() *layout.Layout {
	return b.layout
}

// TileCenters returns the tile centers in tile-index order. The slice is
// shared with the layout; callers must not modify it.
func (b *Board) TileCenters() []hexes.Point {
	return b.layout.Centers()
}

// TotalTiles returns the number of tiles on the board.
func (b *Board) TotalTiles() int {
	return b.layout.Total()
}

// HexSize returns the board's hex circumradius.
func (b *Board) HexSize() float64 {
	return b.layout.HexSize()
}

// RowPattern returns a copy of the board's row pattern.
func (b *Board) RowPattern() []int {
	return b.layout.Pattern()
}

// IsRevealed reports whether tile idx has been revealed. Out-of-range
// indices report false.
func (b *Board) IsRevealed(idx int) bool {
	return b.revealed[idx]
}

// RevealedCount returns how many tiles have been revealed so far.
func (b *Board) RevealedCount() int {
	return len(b.revealed)
}

// TokenTile returns the tile the token currently occupies.
func (b *Board) TokenTile() (int, bool) {
	return b.token, b.token >= 0
}

// Neighbors returns the tiles sharing an edge with tile idx.
func (b *Board) Neighbors(idx int) []int {
	return b.layout.Neighbors(idx)
}
