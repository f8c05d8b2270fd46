// Package hexes provides the flat-top hexagon math the board is built on:
// corner generation, grid spacing, and the approximate containment test
// used for hit-testing.
package hexes

import "math"

// Point represents a 2D point in world space
type Point struct {
	X, Y float64
}

// Corners returns the six corners of a flat-top hexagon with the given
// center and circumradius. Corner i sits at 60°·i − 30° from the center.
// The order is fixed: callers rely on it both for fill triangulation and
// for outline drawing.
func Corners(center Point, size float64) [6]Point {
	var corners [6]Point
	for i := 0; i < 6; i++ {
		angle := (60*float64(i) - 30) * math.Pi / 180
		corners[i] = Point{
			X: center.X + size*math.Cos(angle),
			Y: center.Y + size*math.Sin(angle),
		}
	}
	return corners
}

// Contains reports whether p falls inside the flat-top hexagon at center
// with the given circumradius.
//
// This is an approximate test, not an exact polygon test: a point is
// rejected when its vertical offset exceeds the circumradius and accepted
// when its horizontal offset is within sqrt(3)*(size-dy). Near the
// corners it over- and under-claims slightly compared to the true
// hexagon. Hit-testing and drawing share this shape, so it must stay as
// is rather than be replaced with an exact test.
func Contains(p, center Point, size float64) bool {
	dx := math.Abs(p.X - center.X)
	dy := math.Abs(p.Y - center.Y)
	if dy > size {
		return false
	}
	return dx <= math.Sqrt(3)*(size-dy)
}

// Distance returns the Euclidean distance between two points.
func Distance(a, b Point) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// HorizontalSpacing returns the center-to-center distance between two
// horizontally adjacent hexes in a flat-top grid.
func HorizontalSpacing(size float64) float64 {
	return size * math.Sqrt(3)
}

// VerticalSpacing returns the center-to-center distance between two
// adjacent rows in a flat-top grid.
func VerticalSpacing(size float64) float64 {
	return size * 1.5
}
