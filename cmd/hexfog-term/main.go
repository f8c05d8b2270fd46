package main

import (
	"io"
	"os"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"chosenoffset.com/hexfog/board"
	"chosenoffset.com/hexfog/boarddef"
	"chosenoffset.com/hexfog/internal/tui"
	"chosenoffset.com/hexfog/layout"
	"chosenoffset.com/hexfog/palette"
)

// CLI defines the command-line interface for the terminal frontend.
type CLI struct {
	Board   string `arg:"" help:"Board definition file." default:"data/island/board.json"`
	LogFile string `help:"Write debug logs to this file (the terminal is busy drawing the board)."`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli)

	// Logs can't share the terminal with the board; discard them
	// unless a file is given.
	var logSink io.Writer = io.Discard
	if cli.LogFile != "" {
		f, err := os.OpenFile(cli.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatal("Failed to open log file", "error", err)
		}
		defer f.Close()
		logSink = f
	}
	logger := log.NewWithOptions(logSink, log.Options{
		ReportTimestamp: true,
		Level:           log.DebugLevel,
	})

	def, err := boarddef.Load(cli.Board)
	if err != nil {
		log.Fatal("Failed to load board", "error", err)
	}

	palCfg := palette.DefaultConfig()
	if def.Palette != "" {
		palCfg, err = palette.LoadConfig(def.Palette)
		if err != nil {
			log.Fatal("Failed to load palette", "error", err)
		}
	}
	// No image loader: the terminal frontend only uses the color table.
	pal := palette.New(def, palCfg, nil, logger)

	// The bounds only anchor world coordinates; the terminal view is
	// derived from the row pattern, not from pixel centers.
	b, err := board.New(def.BoardConfig(), layout.Bounds{Width: 700, Height: 700})
	if err != nil {
		log.Fatal("Failed to build board", "error", err)
	}

	model := tui.New(b, pal, def.Name, logger)
	if _, err := tea.NewProgram(model).Run(); err != nil {
		log.Fatal("TUI exited with error", "error", err)
	}

	ctx.Exit(0)
}
