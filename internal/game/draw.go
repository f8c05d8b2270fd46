package game

import (
	"fmt"
	"image/color"

	"chosenoffset.com/hexfog/hexes"
	"chosenoffset.com/hexfog/renderer"
)

// Drawing constants carried over from the board's original look: a thin
// black outline per hex, a red ring for the token, icons scaled to 1.5x
// the hex radius.
const (
	outlineWidth = 1.5
	tokenRadius  = 14
	tokenStroke  = 3
	iconScale    = 1.5
)

var (
	outlineColor = color.RGBA{A: 255}
	fogColor     = color.RGBA{A: 255}
	tokenColor   = color.RGBA{R: 255, A: 255}
)

// Draw renders the board to the screen.
func (g *Game) Draw(screen renderer.Image) {
	hexSize := g.Board.HexSize()

	// Pass 1: hex fills and outlines, in tile-index order
	for idx, center := range g.Board.TileCenters() {
		corners := hexes.Corners(center, hexSize)

		points := make([]renderer.Point, len(corners))
		for i, c := range corners {
			points[i] = renderer.Point{X: float32(c.X), Y: float32(c.Y)}
		}

		fill := g.Palette.Color(idx)
		if !g.tileVisible(idx) {
			fill = fogColor
		}

		g.Renderer.FillPolygon(screen, points, fill)
		g.Renderer.StrokePolygon(screen, points, outlineWidth, outlineColor)
	}

	// Pass 2: icons on visible tiles
	for idx, center := range g.Board.TileCenters() {
		if !g.tileVisible(idx) {
			continue
		}
		icon, ok := g.Palette.Icon(idx)
		if !ok {
			continue
		}
		g.drawIcon(screen, icon, center, hexSize)
	}

	// Pass 3: the token ring on top
	if token, ok := g.Board.TokenTile(); ok {
		if center, ok := g.Board.Layout().Center(token); ok {
			g.Renderer.StrokeCircle(screen,
				float32(center.X), float32(center.Y),
				tokenRadius, tokenStroke, tokenColor)
		}
	}

	g.drawHUD(screen)
}

// tileVisible reports whether a tile should be drawn revealed. The
// developer overlay forces every tile visible without touching the board.
func (g *Game) tileVisible(idx int) bool {
	return g.Developer || g.Board.IsRevealed(idx)
}

// drawIcon draws an icon image centered on a tile, scaled to the tile.
func (g *Game) drawIcon(screen renderer.Image, icon renderer.Image, center hexes.Point, hexSize float64) {
	w, h := icon.Size()
	if w == 0 || h == 0 {
		return
	}

	target := hexSize * iconScale
	opts := &renderer.DrawImageOptions{GeoM: renderer.NewGeoM()}
	opts.GeoM.Scale(target/float64(w), target/float64(h))
	opts.GeoM.Translate(center.X-target/2, center.Y-target/2)
	screen.DrawImage(icon, opts)
}

// drawHUD draws the reveal progress line and the developer indicator.
func (g *Game) drawHUD(screen renderer.Image) {
	msg := fmt.Sprintf("revealed %d/%d", g.Board.RevealedCount(), g.Board.TotalTiles())
	if g.Developer {
		msg += "  [developer]"
	}
	g.Renderer.DrawText(screen, msg, 8, 8, color.White)
}
