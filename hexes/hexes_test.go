package hexes

import (
	"math"
	"testing"
)

func TestCornersFixedOrder(t *testing.T) {
	center := Point{X: 100, Y: 100}
	size := 45.0

	corners := Corners(center, size)

	// Corner i sits at 60°·i − 30° from the center at the circumradius.
	for i, c := range corners {
		angle := (60*float64(i) - 30) * math.Pi / 180
		wantX := center.X + size*math.Cos(angle)
		wantY := center.Y + size*math.Sin(angle)

		if math.Abs(c.X-wantX) > 1e-9 || math.Abs(c.Y-wantY) > 1e-9 {
			t.Errorf("corner %d: got (%v, %v), want (%v, %v)", i, c.X, c.Y, wantX, wantY)
		}

		if d := Distance(center, c); math.Abs(d-size) > 1e-9 {
			t.Errorf("corner %d distance from center: got %v, want %v", i, d, size)
		}
	}
}

func TestContains(t *testing.T) {
	center := Point{X: 0, Y: 0}
	size := 45.0

	tests := []struct {
		name string
		p    Point
		want bool
	}{
		{"center", Point{0, 0}, true},
		{"just inside vertically", Point{0, 44.9}, true},
		{"just outside vertically", Point{0, 45.1}, false},
		{"on horizontal limit at mid height", Point{math.Sqrt(3) * 22.5, 22.5}, true},
		{"past horizontal limit at mid height", Point{math.Sqrt(3)*22.5 + 1, 22.5}, false},
		{"far away", Point{500, 500}, false},
	}

	for _, tt := range tests {
		if got := Contains(tt.p, center, size); got != tt.want {
			t.Errorf("%s: Contains(%v) = %v, want %v", tt.name, tt.p, got, tt.want)
		}
	}
}

// The containment test is deliberately approximate: the accepted region
// is the diamond dx <= sqrt(3)*(size-dy), which matches the hexagon's
// slanted edges exactly but over-claims past the vertical sides for
// small dy. This pins that behavior so nobody "fixes" it to an exact
// polygon test.
func TestContainsIsApproximate(t *testing.T) {
	center := Point{X: 0, Y: 0}
	size := 45.0

	dy := 40.0
	limit := math.Sqrt(3) * (size - dy)

	if !Contains(Point{limit - 0.001, dy}, center, size) {
		t.Error("point just inside the approximate band should be contained")
	}
	if Contains(Point{limit + 0.001, dy}, center, size) {
		t.Error("point just outside the approximate band should not be contained")
	}

	// A true hexagon of this size is only sqrt(3)/2*size ≈ 38.97 wide,
	// so (50, 10) is well outside it. The approximation claims it
	// anyway; adjacent hexes resolve such overlaps by index order.
	falsePositive := Point{X: 50, Y: 10}
	if !Contains(falsePositive, center, size) {
		t.Error("approximation is expected to claim this point beyond the true side")
	}
}

func TestSpacing(t *testing.T) {
	size := 45.0

	if got, want := HorizontalSpacing(size), size*math.Sqrt(3); math.Abs(got-want) > 1e-9 {
		t.Errorf("HorizontalSpacing = %v, want %v", got, want)
	}
	if got, want := VerticalSpacing(size), size*1.5; math.Abs(got-want) > 1e-9 {
		t.Errorf("VerticalSpacing = %v, want %v", got, want)
	}
}

func TestDistance(t *testing.T) {
	if got := Distance(Point{0, 0}, Point{3, 4}); math.Abs(got-5) > 1e-9 {
		t.Errorf("Distance = %v, want 5", got)
	}
}
