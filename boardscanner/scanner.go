// Package boardscanner discovers board definitions under a data
// directory, one subdirectory per board set.
package boardscanner

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// BoardEntry represents a discoverable board set in the data directory
type BoardEntry struct {
	Name   string   // Display name (directory name)
	Dir    string   // Directory path relative to the data directory
	Boards []string // Board definition files found in the directory
}

// ScanDataDirectory scans the data directory for available board sets.
// Returns one BoardEntry per directory containing at least one board
// definition file.
func ScanDataDirectory(dataPath string) ([]BoardEntry, error) {
	entries, err := os.ReadDir(dataPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read data directory: %w", err)
	}

	var boards []BoardEntry

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		// Skip special directories
		dirName := entry.Name()
		if dirName == "palettes" || strings.HasPrefix(dirName, ".") {
			continue
		}

		boardPath := filepath.Join(dataPath, dirName)
		defs, err := scanDefinitions(boardPath)
		if err != nil {
			// Skip directories that can't be read
			continue
		}

		if len(defs) > 0 {
			boards = append(boards, BoardEntry{
				Name:   dirName,
				Dir:    dirName,
				Boards: defs,
			})
		}
	}

	return boards, nil
}

// scanDefinitions finds all .json board definition files in a directory
func scanDefinitions(boardPath string) ([]string, error) {
	entries, err := os.ReadDir(boardPath)
	if err != nil {
		return nil, err
	}

	var defs []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		if strings.HasSuffix(strings.ToLower(name), ".json") {
			defs = append(defs, name)
		}
	}

	return defs, nil
}
