// Package game is the GUI host for a fog-of-war hex board: it translates
// pointer input into board selections and draws the board state each
// frame. All game rules live in the board package; this package only
// feeds it events and renders the result.
package game

import (
	"github.com/charmbracelet/log"

	"chosenoffset.com/hexfog/board"
	"chosenoffset.com/hexfog/hexes"
	"chosenoffset.com/hexfog/layout"
	"chosenoffset.com/hexfog/palette"
	"chosenoffset.com/hexfog/renderer"
)

// Game holds the host-side state around one board.
type Game struct {
	ScreenWidth  int
	ScreenHeight int
	Board        *board.Board
	Palette      *palette.Palette
	Renderer     renderer.Renderer
	InputMgr     renderer.InputManager
	Logger       *log.Logger

	// Developer reveals every tile when drawing. It is a rendering
	// override only: the board's revealed set is never touched.
	Developer bool
}

// New creates the host game around an initialized board.
func New(b *board.Board, pal *palette.Palette, rend renderer.Renderer, inputMgr renderer.InputManager, logger *log.Logger, screenWidth, screenHeight int) *Game {
	return &Game{
		ScreenWidth:  screenWidth,
		ScreenHeight: screenHeight,
		Board:        b,
		Palette:      pal,
		Renderer:     rend,
		InputMgr:     inputMgr,
		Logger:       logger,
	}
}

// Update handles one tick of input. Input events are processed one at a
// time, so each selection completes before the next is examined.
func (g *Game) Update() error {
	if g.InputMgr.IsKeyJustPressed(renderer.KeyD) {
		g.Developer = !g.Developer
		g.Logger.Info("developer overlay toggled", "enabled", g.Developer)
	}

	if g.InputMgr.IsMouseButtonJustPressed(renderer.MouseButtonLeft) {
		x, y := g.InputMgr.GetCursorPosition()
		g.handleClick(hexes.Point{X: float64(x), Y: float64(y)})
	}

	return nil
}

// handleClick maps a pointer position to a tile and applies the
// selection. Clicks that land outside the board or on fog are absorbed
// silently; they are normal interaction, not errors.
func (g *Game) handleClick(p hexes.Point) {
	idx, ok := g.Board.Layout().Locate(p)
	if !ok {
		g.Logger.Debug("click outside board", "x", p.X, "y", p.Y)
		return
	}

	handled := g.Board.SelectTile(idx)
	g.Logger.Debug("tile selected", "tile", idx, "handled", handled,
		"revealed", g.Board.RevealedCount())
}

// Layout reports the logical screen size and reacts to window resizes by
// regenerating the board layout against the new bounds.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.ScreenWidth || outsideHeight != g.ScreenHeight {
		g.ScreenWidth = outsideWidth
		g.ScreenHeight = outsideHeight
		g.Board.Resize(layout.Bounds{
			Width:  float64(outsideWidth),
			Height: float64(outsideHeight),
		})
	}
	return g.ScreenWidth, g.ScreenHeight
}
