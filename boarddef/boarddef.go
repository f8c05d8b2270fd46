// Package boarddef loads board definitions from JSON files. A definition
// describes everything a frontend needs to present a board: the row
// pattern and hex size, the starting tile, the terrain name of each tile,
// and the icon images pinned to specific tiles.
package boarddef

import (
	"encoding/json"
	"fmt"
	"os"

	"chosenoffset.com/hexfog/board"
)

// IconDef pins an icon image to a tile.
type IconDef struct {
	Tile  int    `json:"tile"`  // Tile index the icon sits on
	Image string `json:"image"` // Path to the icon image file
}

// Definition represents the loaded board configuration.
type Definition struct {
	Name      string    `json:"name"`
	HexSize   float64   `json:"hex_size"`   // Center-to-corner radius in pixels
	Rows      []int     `json:"rows"`       // Tile count per row, top to bottom
	StartTile int       `json:"start_tile"` // Tile revealed at the start, token spawn
	Terrain   []string  `json:"terrain"`    // Terrain name per tile, row-major
	Palette   string    `json:"palette"`    // Path to the palette config (optional)
	Icons     []IconDef `json:"icons"`
}

// Load loads a board definition from a JSON file.
func Load(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read board file %s: %w", path, err)
	}

	var def Definition
	if err := json.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("failed to parse board file %s: %w", path, err)
	}

	if err := validate(&def); err != nil {
		return nil, fmt.Errorf("invalid board definition in %s: %w", path, err)
	}

	return &def, nil
}

// validate checks if the board definition is valid
func validate(def *Definition) error {
	if def.HexSize <= 0 {
		return fmt.Errorf("invalid hex size: %v", def.HexSize)
	}

	if len(def.Rows) == 0 {
		return fmt.Errorf("rows is empty")
	}
	total := 0
	for i, count := range def.Rows {
		if count <= 0 {
			return fmt.Errorf("row %d has invalid tile count %d", i, count)
		}
		total += count
	}

	if def.StartTile < 0 || def.StartTile >= total {
		return fmt.Errorf("start tile %d outside [0,%d)", def.StartTile, total)
	}

	// Terrain may be omitted entirely; if present it must cover the board.
	if len(def.Terrain) != 0 && len(def.Terrain) != total {
		return fmt.Errorf("terrain has %d entries, board has %d tiles", len(def.Terrain), total)
	}

	for _, icon := range def.Icons {
		if icon.Tile < 0 || icon.Tile >= total {
			return fmt.Errorf("icon tile %d outside [0,%d)", icon.Tile, total)
		}
		if icon.Image == "" {
			return fmt.Errorf("icon on tile %d has no image path", icon.Tile)
		}
	}

	return nil
}

// TotalTiles returns the number of tiles the definition describes.
func (d *Definition) TotalTiles() int {
	total := 0
	for _, count := range d.Rows {
		total += count
	}
	return total
}

// BoardConfig adapts the definition to a board construction config.
func (d *Definition) BoardConfig() board.Config {
	return board.Config{
		HexSize:    d.HexSize,
		RowPattern: d.Rows,
		StartTile:  d.StartTile,
	}
}
