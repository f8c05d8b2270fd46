// Package layout generates tile positions for a row-pattern hex board and
// answers the geometric queries built on them: point-to-tile hit-testing
// and edge-sharing adjacency.
//
// A board is described by a row pattern, one positive tile count per row.
// Tiles are indexed in row-major order (row 0 left to right, then row 1,
// and so on); that index is a tile's identity for the life of the board.
package layout

import (
	"fmt"
	"math"

	"chosenoffset.com/hexfog/hexes"
)

// NeighborTolerance is the absolute slack applied when matching center
// distances against the two edge-sharing spacings. It absorbs the
// floating-point error of layout generation. The value is absolute, not
// proportional to hex size, so it is only appropriate for hex sizes in
// the tens of units.
const NeighborTolerance = 2.0

// Bounds describes the drawable area a board is laid out against, in
// world coordinates with y growing downward.
type Bounds struct {
	X, Y          float64
	Width, Height float64
}

// Center returns the center point of the bounds.
func (b Bounds) Center() hexes.Point {
	return hexes.Point{X: b.X + b.Width/2, Y: b.Y + b.Height/2}
}

// Layout holds the generated tile centers for one row pattern, hex size,
// and bounds. A Layout is immutable after generation; a bounds change
// produces a whole new Layout via Regenerate.
type Layout struct {
	pattern []int
	hexSize float64
	bounds  Bounds
	centers []hexes.Point
}

// Generate lays out a row-pattern board inside the given bounds and
// returns the resulting Layout.
//
// The pattern is centered vertically in the bounds, row 0 on top, with
// rows descending by one vertical spacing each. Within a row the tiles
// are centered horizontally around the bounds' center. Generation is
// deterministic: the same inputs always produce the same centers.
func Generate(pattern []int, hexSize float64, b Bounds) (*Layout, error) {
	if len(pattern) == 0 {
		return nil, fmt.Errorf("row pattern is empty")
	}
	total := 0
	for i, count := range pattern {
		if count <= 0 {
			return nil, fmt.Errorf("row %d has invalid tile count %d", i, count)
		}
		total += count
	}
	if hexSize <= 0 {
		return nil, fmt.Errorf("invalid hex size %v", hexSize)
	}

	hSpacing := hexes.HorizontalSpacing(hexSize)
	vSpacing := hexes.VerticalSpacing(hexSize)
	c := b.Center()

	totalHeight := float64(len(pattern)-1) * vSpacing
	startY := c.Y - totalHeight/2

	centers := make([]hexes.Point, 0, total)
	for rowIdx, count := range pattern {
		rowWidth := float64(count-1) * hSpacing
		rowOffsetX := -rowWidth / 2
		y := startY + float64(rowIdx)*vSpacing

		for col := 0; col < count; col++ {
			centers = append(centers, hexes.Point{
				X: c.X + rowOffsetX + float64(col)*hSpacing,
				Y: y,
			})
		}
	}

	return &Layout{
		pattern: append([]int(nil), pattern...),
		hexSize: hexSize,
		bounds:  b,
		centers: centers,
	}, nil
}

// Regenerate lays the same pattern out against new bounds. The centers
// are recomputed in full; a layout is never partially updated.
func (l *Layout) Regenerate(b Bounds) *Layout {
	// Pattern and size were validated when this layout was generated.
	lay, _ := Generate(l.pattern, l.hexSize, b)
	return lay
}

// Total returns the number of tiles in the layout.
func (l *Layout) Total() int {
	return len(l.centers)
}

// HexSize returns the circumradius the layout was generated with.
func (l *Layout) HexSize() float64 {
	return l.hexSize
}

// Bounds returns the bounds the layout was generated against.
func (l *Layout) Bounds() Bounds {
	return l.bounds
}

// Pattern returns a copy of the row pattern.
func (l *Layout) Pattern() []int {
	return append([]int(nil), l.pattern...)
}

// Centers returns the tile centers in tile-index order. The returned
// slice is the layout's own storage; callers must not modify it.
func (l *Layout) Centers() []hexes.Point {
	return l.centers
}

// Center returns the center of tile idx and whether idx is in range.
func (l *Layout) Center(idx int) (hexes.Point, bool) {
	if idx < 0 || idx >= len(l.centers) {
		return hexes.Point{}, false
	}
	return l.centers[idx], true
}

// RowOf returns the row containing tile idx, or -1 if idx is out of
// range.
func (l *Layout) RowOf(idx int) int {
	if idx < 0 {
		return -1
	}
	for row, count := range l.pattern {
		if idx < count {
			return row
		}
		idx -= count
	}
	return -1
}

// Locate returns the index of the first tile whose hexagon contains p,
// scanning in tile-index order. The second return is false when no tile
// matches.
//
// Because the containment test is approximate, a point near a shared
// corner can satisfy more than one tile; the earliest index wins. That
// first-match tie-break is part of the contract, not an accident of the
// loop.
func (l *Layout) Locate(p hexes.Point) (int, bool) {
	for idx, center := range l.centers {
		if hexes.Contains(p, center, l.hexSize) {
			return idx, true
		}
	}
	return 0, false
}

// Neighbors returns the tiles sharing an edge with tile idx. Adjacency is
// derived from center distances rather than a stored list: two tiles are
// neighbors when their centers are one horizontal or one vertical spacing
// apart, within NeighborTolerance. Returns nil for an out-of-range index.
func (l *Layout) Neighbors(idx int) []int {
	if idx < 0 || idx >= len(l.centers) {
		return nil
	}

	origin := l.centers[idx]
	horiz := hexes.HorizontalSpacing(l.hexSize)
	vert := hexes.VerticalSpacing(l.hexSize)

	var neighbors []int
	for i, c := range l.centers {
		if i == idx {
			continue
		}
		dist := hexes.Distance(origin, c)
		if math.Abs(dist-horiz) < NeighborTolerance || math.Abs(dist-vert) < NeighborTolerance {
			neighbors = append(neighbors, i)
		}
	}
	return neighbors
}
