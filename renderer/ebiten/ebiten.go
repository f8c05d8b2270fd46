package ebiten

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"chosenoffset.com/hexfog/renderer"
)

// EbitenRenderer implements the Renderer interface using Ebiten.
type EbitenRenderer struct {
	whiteImg *ebiten.Image
}

// init sets up the global functions for the ebiten renderer.
func init() {
	renderer.NewGeoM = func() renderer.GeoM {
		return NewGeoM()
	}
}

// NewRenderer creates a new Ebiten-based renderer.
func NewRenderer() renderer.Renderer {
	return &EbitenRenderer{}
}

// NewImage creates a new image with the given dimensions.
func (r *EbitenRenderer) NewImage(width, height int) renderer.Image {
	return &EbitenImage{img: ebiten.NewImage(width, height)}
}

// FillCircle draws a filled circle on the destination image.
func (r *EbitenRenderer) FillCircle(dst renderer.Image, x, y, radius float32, clr color.Color) {
	ebitenImg := dst.(*EbitenImage).img
	vector.DrawFilledCircle(ebitenImg, x, y, radius, clr, true)
}

// StrokeCircle draws a circle outline on the destination image.
func (r *EbitenRenderer) StrokeCircle(dst renderer.Image, x, y, radius float32, strokeWidth float32, clr color.Color) {
	ebitenImg := dst.(*EbitenImage).img
	vector.StrokeCircle(ebitenImg, x, y, radius, strokeWidth, clr, true)
}

// FillPolygon draws a filled polygon on the destination image.
func (r *EbitenRenderer) FillPolygon(dst renderer.Image, points []renderer.Point, clr color.Color) {
	if len(points) < 3 {
		return
	}
	ebitenImg := dst.(*EbitenImage).img

	path := buildPath(points)

	vertices, indices := path.AppendVerticesAndIndicesForFilling(nil, nil)
	r.drawPath(ebitenImg, vertices, indices, clr)
}

// StrokePolygon draws a closed polygon outline on the destination image.
func (r *EbitenRenderer) StrokePolygon(dst renderer.Image, points []renderer.Point, strokeWidth float32, clr color.Color) {
	if len(points) < 2 {
		return
	}
	ebitenImg := dst.(*EbitenImage).img

	path := buildPath(points)

	opts := &vector.StrokeOptions{Width: strokeWidth}
	vertices, indices := path.AppendVerticesAndIndicesForStroke(nil, nil, opts)
	r.drawPath(ebitenImg, vertices, indices, clr)
}

// buildPath converts a point list into a closed vector path.
func buildPath(points []renderer.Point) vector.Path {
	path := vector.Path{}
	path.MoveTo(points[0].X, points[0].Y)
	for i := 1; i < len(points); i++ {
		path.LineTo(points[i].X, points[i].Y)
	}
	path.Close()
	return path
}

// drawPath renders path vertices in a solid color using a shared 1x1
// white source image. Anti-aliasing is off to avoid seams where adjacent
// polygons meet.
func (r *EbitenRenderer) drawPath(dst *ebiten.Image, vertices []ebiten.Vertex, indices []uint16, clr color.Color) {
	if r.whiteImg == nil {
		r.whiteImg = ebiten.NewImage(1, 1)
		r.whiteImg.Fill(color.White)
	}

	cr, cg, cb, ca := clr.RGBA()
	for i := range vertices {
		vertices[i].SrcX = 0
		vertices[i].SrcY = 0
		vertices[i].ColorR = float32(cr) / 0xffff
		vertices[i].ColorG = float32(cg) / 0xffff
		vertices[i].ColorB = float32(cb) / 0xffff
		vertices[i].ColorA = float32(ca) / 0xffff
	}

	opts := &ebiten.DrawTrianglesOptions{AntiAlias: false}
	dst.DrawTriangles(vertices, indices, r.whiteImg, opts)
}

// DrawText draws text on the destination image using the default font.
// Note: Color parameter is currently ignored, text is always white.
func (r *EbitenRenderer) DrawText(dst renderer.Image, str string, x, y int, clr color.Color) {
	ebitenImg := dst.(*EbitenImage).img
	ebitenutil.DebugPrintAt(ebitenImg, str, x, y)
}

// EbitenImage wraps an ebiten.Image to implement the renderer.Image interface.
type EbitenImage struct {
	img *ebiten.Image
}

// Bounds returns the bounds of the image.
func (i *EbitenImage) Bounds() image.Rectangle {
	return i.img.Bounds()
}

// Size returns the width and height of the image.
func (i *EbitenImage) Size() (width, height int) {
	b := i.img.Bounds()
	return b.Dx(), b.Dy()
}

// Fill fills the entire image with the given color.
func (i *EbitenImage) Fill(clr color.Color) {
	i.img.Fill(clr)
}

// Clear clears the image.
func (i *EbitenImage) Clear() {
	i.img.Clear()
}

// DrawImage draws the source image onto this image.
func (i *EbitenImage) DrawImage(src renderer.Image, opts *renderer.DrawImageOptions) {
	srcImg := src.(*EbitenImage).img

	if opts == nil {
		i.img.DrawImage(srcImg, nil)
		return
	}

	ebitenOpts := &ebiten.DrawImageOptions{}
	if opts.GeoM != nil {
		ebitenGeoM := opts.GeoM.(*EbitenGeoM)
		ebitenOpts.GeoM = ebitenGeoM.geoM
	}

	i.img.DrawImage(srcImg, ebitenOpts)
}

// Dispose releases the image resources.
func (i *EbitenImage) Dispose() {
	i.img.Deallocate()
}

// WrapEbitenImage wraps an existing ebiten.Image as a renderer.Image.
// This is useful for interop with ebiten-specific code.
func WrapEbitenImage(img *ebiten.Image) renderer.Image {
	return &EbitenImage{img: img}
}

// EbitenGeoM wraps ebiten's GeoM to implement the renderer.GeoM interface.
type EbitenGeoM struct {
	geoM ebiten.GeoM
}

// NewGeoM creates a new geometric transformation matrix.
func NewGeoM() renderer.GeoM {
	return &EbitenGeoM{geoM: ebiten.GeoM{}}
}

// Translate shifts the image by (tx, ty).
func (g *EbitenGeoM) Translate(tx, ty float64) {
	g.geoM.Translate(tx, ty)
}

// Scale scales the image by (sx, sy).
func (g *EbitenGeoM) Scale(sx, sy float64) {
	g.geoM.Scale(sx, sy)
}

// Reset resets the matrix to identity.
func (g *EbitenGeoM) Reset() {
	g.geoM.Reset()
}

// EbitenInputManager implements the InputManager interface using Ebiten.
type EbitenInputManager struct{}

// NewInputManager creates a new Ebiten-based input manager.
func NewInputManager() renderer.InputManager {
	return &EbitenInputManager{}
}

// IsKeyJustPressed returns whether the specified key was just pressed this frame.
func (m *EbitenInputManager) IsKeyJustPressed(key renderer.Key) bool {
	return inpututil.IsKeyJustPressed(keyToEbitenKey(key))
}

// GetCursorPosition returns the current cursor position.
func (m *EbitenInputManager) GetCursorPosition() (x, y int) {
	return ebiten.CursorPosition()
}

// IsMouseButtonJustPressed returns whether the specified mouse button was
// just pressed this frame.
func (m *EbitenInputManager) IsMouseButtonJustPressed(button renderer.MouseButton) bool {
	return inpututil.IsMouseButtonJustPressed(mouseButtonToEbiten(button))
}

// keyToEbitenKey converts a renderer.Key to an ebiten.Key.
func keyToEbitenKey(key renderer.Key) ebiten.Key {
	switch key {
	case renderer.KeyD:
		return ebiten.KeyD
	case renderer.KeyEscape:
		return ebiten.KeyEscape
	default:
		return 0
	}
}

// mouseButtonToEbiten converts a renderer.MouseButton to an ebiten.MouseButton.
func mouseButtonToEbiten(button renderer.MouseButton) ebiten.MouseButton {
	switch button {
	case renderer.MouseButtonLeft:
		return ebiten.MouseButtonLeft
	case renderer.MouseButtonRight:
		return ebiten.MouseButtonRight
	case renderer.MouseButtonMiddle:
		return ebiten.MouseButtonMiddle
	default:
		return ebiten.MouseButtonLeft
	}
}

// EbitenResourceLoader implements the ResourceLoader interface using Ebiten.
type EbitenResourceLoader struct{}

// NewResourceLoader creates a new Ebiten-based resource loader.
func NewResourceLoader() renderer.ResourceLoader {
	return &EbitenResourceLoader{}
}

// LoadImage loads an image from the specified file path.
func (l *EbitenResourceLoader) LoadImage(path string) (renderer.Image, error) {
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		return nil, err
	}
	return &EbitenImage{img: img}, nil
}

// EbitenEngine implements the Engine interface using Ebiten.
type EbitenEngine struct{}

// NewEngine creates a new Ebiten-based game engine.
func NewEngine() renderer.Engine {
	return &EbitenEngine{}
}

// SetWindowSize sets the window size in pixels.
func (e *EbitenEngine) SetWindowSize(width, height int) {
	ebiten.SetWindowSize(width, height)
}

// SetWindowTitle sets the window title.
func (e *EbitenEngine) SetWindowTitle(title string) {
	ebiten.SetWindowTitle(title)
}

// SetWindowResizable enables or disables window resizing.
func (e *EbitenEngine) SetWindowResizable(resizable bool) {
	if resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	} else {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	}
}

// RunGame runs the game loop with the provided game.
func (e *EbitenEngine) RunGame(game renderer.Game) error {
	return ebiten.RunGame(&gameAdapter{game: game})
}

// gameAdapter adapts a renderer.Game to ebiten.Game interface.
type gameAdapter struct {
	game renderer.Game
}

// Update implements ebiten.Game.
func (a *gameAdapter) Update() error {
	return a.game.Update()
}

// Draw implements ebiten.Game.
func (a *gameAdapter) Draw(screen *ebiten.Image) {
	a.game.Draw(&EbitenImage{img: screen})
}

// Layout implements ebiten.Game.
func (a *gameAdapter) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.game.Layout(outsideWidth, outsideHeight)
}
