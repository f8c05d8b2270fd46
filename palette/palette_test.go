package palette

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	"chosenoffset.com/hexfog/boarddef"
	"chosenoffset.com/hexfog/renderer"
)

// fakeImage is a minimal renderer.Image for loader tests.
type fakeImage struct{}

func (fakeImage) Bounds() image.Rectangle                                 { return image.Rect(0, 0, 16, 16) }
func (fakeImage) Size() (int, int)                                        { return 16, 16 }
func (fakeImage) Fill(color.Color)                                        {}
func (fakeImage) Clear()                                                  {}
func (fakeImage) DrawImage(renderer.Image, *renderer.DrawImageOptions)    {}
func (fakeImage) Dispose()                                                {}

// fakeLoader loads only the paths it was told to know.
type fakeLoader struct {
	known map[string]bool
}

func (l *fakeLoader) LoadImage(path string) (renderer.Image, error) {
	if !l.known[path] {
		return nil, fmt.Errorf("no such image: %s", path)
	}
	return fakeImage{}, nil
}

func testLogger() *log.Logger {
	return log.New(io.Discard)
}

func testDefinition() *boarddef.Definition {
	return &boarddef.Definition{
		Name:      "test",
		HexSize:   45,
		Rows:      []int{2, 3, 2},
		StartTile: 0,
		Terrain:   []string{"sea", "sea", "sand", "volcano", "sand", "sea", "sea"},
		Icons: []boarddef.IconDef{
			{Tile: 2, Image: "icons/known.png"},
			{Tile: 5, Image: "icons/missing.png"},
		},
	}
}

func TestNewResolvesColors(t *testing.T) {
	pal := New(testDefinition(), DefaultConfig(), nil, testLogger())

	sea := color.RGBA{R: 122, G: 156, B: 198, A: 255}
	sand := color.RGBA{R: 250, G: 237, B: 205, A: 255}

	if got := pal.Color(0); got != sea {
		t.Errorf("tile 0 color = %v, want %v", got, sea)
	}
	if got := pal.Color(2); got != sand {
		t.Errorf("tile 2 color = %v, want %v", got, sand)
	}

	// "volcano" is not in the palette; the tile gets the stable filler
	// color for its index.
	if got := pal.Color(3); got != fallbackColor(3) {
		t.Errorf("tile 3 color = %v, want fallback %v", got, fallbackColor(3))
	}
}

func TestNewWithoutTerrain(t *testing.T) {
	def := testDefinition()
	def.Terrain = nil

	pal := New(def, DefaultConfig(), nil, testLogger())

	for idx := 0; idx < def.TotalTiles(); idx++ {
		if got := pal.Color(idx); got != fallbackColor(idx) {
			t.Errorf("tile %d color = %v, want fallback", idx, got)
		}
	}
}

func TestFallbackColorStable(t *testing.T) {
	for idx := 0; idx < 50; idx++ {
		if fallbackColor(idx) != fallbackColor(idx) {
			t.Fatalf("fallback color for %d is not stable", idx)
		}
	}
	if fallbackColor(3) == fallbackColor(4) {
		t.Error("adjacent indices should get distinct filler colors")
	}
}

func TestNewSkipsUnloadableIcons(t *testing.T) {
	loader := &fakeLoader{known: map[string]bool{"icons/known.png": true}}

	pal := New(testDefinition(), DefaultConfig(), loader, testLogger())

	if _, ok := pal.Icon(2); !ok {
		t.Error("expected icon on tile 2")
	}
	if _, ok := pal.Icon(5); ok {
		t.Error("unloadable icon on tile 5 should have been skipped")
	}
	if _, ok := pal.Icon(0); ok {
		t.Error("tile 0 has no icon")
	}
}

func TestNewWithoutLoader(t *testing.T) {
	pal := New(testDefinition(), DefaultConfig(), nil, testLogger())

	if _, ok := pal.Icon(2); ok {
		t.Error("no icons should load without a loader")
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "palette.json")
	jsonData := `{
		"name": "volcanic",
		"colors": {
			"ash": [60, 60, 60],
			"lava": [230, 80, 20]
		}
	}`
	if err := os.WriteFile(path, []byte(jsonData), 0o644); err != nil {
		t.Fatalf("Failed to write palette file: %v", err)
	}

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if config.Name != "volcanic" {
		t.Errorf("Expected name 'volcanic', got '%s'", config.Name)
	}
	if config.Colors["lava"] != [3]uint8{230, 80, 20} {
		t.Errorf("Unexpected lava color: %v", config.Colors["lava"])
	}
}

func TestLoadConfigRejectsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "palette.json")
	if err := os.WriteFile(path, []byte(`{"name": "empty"}`), 0o644); err != nil {
		t.Fatalf("Failed to write palette file: %v", err)
	}

	if _, err := LoadConfig(path); err == nil {
		t.Error("Expected an error for a palette with no colors")
	}
}
