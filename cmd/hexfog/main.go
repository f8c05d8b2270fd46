package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"chosenoffset.com/hexfog/board"
	"chosenoffset.com/hexfog/boarddef"
	"chosenoffset.com/hexfog/boardscanner"
	"chosenoffset.com/hexfog/internal/config"
	"chosenoffset.com/hexfog/internal/game"
	"chosenoffset.com/hexfog/layout"
	"chosenoffset.com/hexfog/palette"
	ebitenrenderer "chosenoffset.com/hexfog/renderer/ebiten"
)

// CLI defines the command-line interface for the GUI frontend.
type CLI struct {
	Config  string `help:"Path to the app config file." default:"hexfog.yaml"`
	Board   string `help:"Board definition file (overrides the config)."`
	List    bool   `help:"List available boards in the data directory and exit."`
	Dev     bool   `help:"Start with every tile revealed (rendering only)."`
	Verbose bool   `short:"v" help:"Enable debug logging."`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli)

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
	})
	if cli.Verbose {
		logger.SetLevel(log.DebugLevel)
	}

	cfg, err := config.Load(cli.Config)
	if err != nil {
		logger.Fatal("Failed to load config", "error", err)
	}
	if !cli.Verbose {
		logger.SetLevel(parseLevel(cfg.Log.Level))
	}

	if cli.List {
		listBoards(cfg.Board.DataDir)
		ctx.Exit(0)
	}

	boardPath := cfg.Board.Path
	if cli.Board != "" {
		boardPath = cli.Board
	}

	logger.Info("Loading board", "path", boardPath)
	def, err := boarddef.Load(boardPath)
	if err != nil {
		logger.Fatal("Failed to load board", "error", err)
	}
	logger.Info("Loaded board", "name", def.Name,
		"rows", len(def.Rows), "tiles", def.TotalTiles(), "hex_size", def.HexSize)

	// Initialize the renderer backend (ebiten)
	rend := ebitenrenderer.NewRenderer()
	inputMgr := ebitenrenderer.NewInputManager()
	loader := ebitenrenderer.NewResourceLoader()
	engine := ebitenrenderer.NewEngine()

	palCfg := palette.DefaultConfig()
	if def.Palette != "" {
		palCfg, err = palette.LoadConfig(def.Palette)
		if err != nil {
			logger.Fatal("Failed to load palette", "error", err)
		}
	}
	pal := palette.New(def, palCfg, loader, logger)

	bounds := layout.Bounds{
		Width:  float64(cfg.Window.Width),
		Height: float64(cfg.Window.Height),
	}
	b, err := board.New(def.BoardConfig(), bounds)
	if err != nil {
		logger.Fatal("Failed to build board", "error", err)
	}

	g := game.New(b, pal, rend, inputMgr, logger, cfg.Window.Width, cfg.Window.Height)
	g.Developer = cli.Dev || cfg.Board.Developer

	engine.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	engine.SetWindowTitle(fmt.Sprintf("%s - %s", cfg.Window.Title, def.Name))
	engine.SetWindowResizable(cfg.Window.Resizable)

	logger.Info("Starting game...")
	if err := engine.RunGame(g); err != nil {
		logger.Fatal("Game exited with error", "error", err)
	}
}

// listBoards prints the board sets discovered under the data directory.
func listBoards(dataDir string) {
	entries, err := boardscanner.ScanDataDirectory(dataDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to scan %s: %v\n", dataDir, err)
		os.Exit(1)
	}
	if len(entries) == 0 {
		fmt.Printf("no boards found under %s\n", dataDir)
		return
	}
	for _, entry := range entries {
		for _, b := range entry.Boards {
			fmt.Printf("%s/%s\n", entry.Dir, b)
		}
	}
}

// parseLevel converts a config log level string to a log.Level.
func parseLevel(level string) log.Level {
	switch level {
	case "debug":
		return log.DebugLevel
	case "warn":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}
