// Package palette supplies the per-tile color and icon lookup tables the
// frontends draw with. The tables are host-side data keyed by tile index;
// the board core never sees colors, textures, or anything else in here.
package palette

import (
	"encoding/json"
	"fmt"
	"image/color"
	"os"

	"github.com/charmbracelet/log"

	"chosenoffset.com/hexfog/boarddef"
	"chosenoffset.com/hexfog/renderer"
)

// Config defines named terrain colors, loaded from JSON. Channel values
// are 0-255 in RGB order.
type Config struct {
	Name   string              `json:"name"`
	Colors map[string][3]uint8 `json:"colors"`
}

// LoadConfig loads a palette configuration from a JSON file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read palette config %s: %w", path, err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse palette config %s: %w", path, err)
	}

	if len(config.Colors) == 0 {
		return nil, fmt.Errorf("palette config %s defines no colors", path)
	}

	return &config, nil
}

// DefaultConfig returns the built-in terrain palette, used when a board
// definition names no palette file.
func DefaultConfig() *Config {
	return &Config{
		Name: "classic",
		Colors: map[string][3]uint8{
			"desert":   {212, 163, 115},
			"sand":     {250, 237, 205},
			"grass":    {204, 213, 174},
			"mountain": {94, 87, 77},
			"sea":      {122, 156, 198},
		},
	}
}

// Palette holds the resolved per-tile tables for one board.
type Palette struct {
	colors []color.RGBA
	icons  map[int]renderer.Image
}

// New resolves a board definition against a palette config and loads the
// board's icon images through the given loader. Unknown terrain names and
// tiles beyond the terrain list get a stable filler color. Icons that
// fail to load are skipped with a warning so a board stays playable
// without its art.
func New(def *boarddef.Definition, config *Config, loader renderer.ResourceLoader, logger *log.Logger) *Palette {
	total := def.TotalTiles()

	colors := make([]color.RGBA, total)
	for idx := 0; idx < total; idx++ {
		colors[idx] = fallbackColor(idx)
		if idx < len(def.Terrain) {
			if rgb, ok := config.Colors[def.Terrain[idx]]; ok {
				colors[idx] = color.RGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: 255}
			} else if logger != nil {
				logger.Warn("unknown terrain name", "tile", idx, "terrain", def.Terrain[idx])
			}
		}
	}

	icons := make(map[int]renderer.Image)
	if loader != nil {
		for _, icon := range def.Icons {
			img, err := loader.LoadImage(icon.Image)
			if err != nil {
				if logger != nil {
					logger.Warn("failed to load icon image", "tile", icon.Tile, "image", icon.Image, "error", err)
				}
				continue
			}
			icons[icon.Tile] = img
		}
	}

	return &Palette{colors: colors, icons: icons}
}

// Color returns the fill color for tile idx. Out-of-range indices get the
// filler color for that index.
func (p *Palette) Color(idx int) color.RGBA {
	if idx < 0 || idx >= len(p.colors) {
		return fallbackColor(idx)
	}
	return p.colors[idx]
}

// Icon returns the icon image for tile idx, if the tile has one.
func (p *Palette) Icon(idx int) (renderer.Image, bool) {
	img, ok := p.icons[idx]
	return img, ok
}

// fallbackColor derives a stable filler color from a tile index. The
// board prototype this grew out of used random colors for unnamed tiles;
// deriving the color from the index keeps redraws flicker-free.
func fallbackColor(idx int) color.RGBA {
	return color.RGBA{
		R: uint8(80 + (idx*73+41)%120),
		G: uint8(80 + (idx*151+97)%120),
		B: uint8(80 + (idx*211+13)%120),
		A: 255,
	}
}
