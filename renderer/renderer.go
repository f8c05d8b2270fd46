package renderer

import (
	"image"
	"image/color"
)

// Renderer is the main rendering interface that abstracts the underlying
// graphics engine. This allows swapping rendering backends without
// changing game logic.
type Renderer interface {
	// Image operations
	NewImage(width, height int) Image

	// Vector operations (for drawing shapes)
	FillCircle(dst Image, x, y, radius float32, clr color.Color)
	StrokeCircle(dst Image, x, y, radius float32, strokeWidth float32, clr color.Color)
	FillPolygon(dst Image, points []Point, clr color.Color)
	StrokePolygon(dst Image, points []Point, strokeWidth float32, clr color.Color)

	// Text operations
	DrawText(dst Image, text string, x, y int, clr color.Color)
}

// Point is a 2D point in screen space for vector drawing.
type Point struct {
	X, Y float32
}

// Image represents a renderable image surface that can be drawn to or
// drawn from.
type Image interface {
	Bounds() image.Rectangle
	Size() (width, height int)

	Fill(clr color.Color)
	Clear()

	DrawImage(src Image, opts *DrawImageOptions)

	Dispose()
}

// DrawImageOptions contains options for drawing an image.
type DrawImageOptions struct {
	GeoM GeoM
}

// GeoM represents a geometric transformation matrix.
type GeoM interface {
	// Translate shifts the image by (tx, ty).
	Translate(tx, ty float64)

	// Scale scales the image by (sx, sy).
	Scale(sx, sy float64)

	// Reset resets the matrix to identity.
	Reset()
}

// NewGeoM creates a new geometric transformation matrix.
// This is implemented by the specific renderer backend.
var NewGeoM func() GeoM

// InputManager handles input from the user (keyboard, mouse, etc).
type InputManager interface {
	IsKeyJustPressed(key Key) bool
	GetCursorPosition() (x, y int)
	IsMouseButtonJustPressed(button MouseButton) bool
}

// Key represents a keyboard key.
type Key int

// Key constants for the keys the game binds
const (
	KeyD Key = iota // Developer overlay toggle
	KeyEscape
)

// MouseButton represents a mouse button.
type MouseButton int

// Mouse button constants
const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
)

// ResourceLoader handles loading resources like images from disk.
type ResourceLoader interface {
	LoadImage(path string) (Image, error)
}

// Game represents the game interface that the engine will call.
type Game interface {
	// Update updates the game logic. It is called every tick (typically 60 times per second).
	Update() error

	// Draw draws the game screen. It is called every frame.
	Draw(screen Image)

	// Layout accepts the outside size (e.g., window size) and returns the logical screen size.
	// The logical screen size is used for rendering and input coordinates.
	Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int)
}

// Engine represents the game engine that manages the game loop and window.
type Engine interface {
	// SetWindowSize sets the window size in pixels.
	SetWindowSize(width, height int)

	// SetWindowTitle sets the window title.
	SetWindowTitle(title string)

	// SetWindowResizable enables or disables window resizing.
	SetWindowResizable(resizable bool)

	// RunGame runs the game loop with the provided game.
	// This is a blocking call that runs until the game ends.
	RunGame(game Game) error
}
