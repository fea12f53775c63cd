// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/gookit/color"

	"cvquest/pkg/engine/world"
)

// Map symbols
const (
	SymbolWall   = '#'
	SymbolFloor  = '.'
	SymbolPath   = '*'
	SymbolPlayer = '@'
)

// Marks overlays named symbols onto cells (player, NPCs)
type Marks map[world.Cell]rune

// DumpMap writes an ASCII picture of grid with path and marks overlaid.
// Marks win over path, path wins over terrain.
func DumpMap(w io.Writer, grid *world.Grid, path []world.Vec, marks Marks) error {
	onPath := make(map[world.Cell]bool, len(path))
	for _, p := range path {
		onPath[grid.WorldToCell(p)] = true
	}

	var b strings.Builder
	for row := 0; row < grid.Height(); row++ {
		for col := 0; col < grid.Width(); col++ {
			b.WriteRune(cellSymbol(grid, world.Cell{Col: col, Row: row}, onPath, marks))
		}
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func cellSymbol(grid *world.Grid, c world.Cell, onPath map[world.Cell]bool, marks Marks) rune {
	if r, ok := marks[c]; ok {
		return r
	}
	if onPath[c] {
		return SymbolPath
	}
	if grid.IsWalkable(c) {
		return SymbolFloor
	}
	return SymbolWall
}

// Legend describes marks, sorted by symbol
func Legend(names map[rune]string) string {
	keys := make([]rune, 0, len(names))
	for r := range names {
		keys = append(keys, r)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	var b strings.Builder
	fmt.Fprintf(&b, "%c wall  %c floor  %c path\n", SymbolWall, SymbolFloor, SymbolPath)
	for _, r := range keys {
		fmt.Fprintf(&b, "%c %s\n", r, names[r])
	}
	return b.String()
}

var (
	styleWall   = color.Style{color.FgWhite, color.OpBold}
	styleFloor  = color.Style{color.FgGray}
	stylePath   = color.Style{color.FgYellow, color.OpBold}
	stylePlayer = color.Style{color.FgGreen, color.OpBold}
	styleMark   = color.Style{color.FgMagenta, color.OpBold}
)

// Colorize styles a DumpMap picture for terminals
func Colorize(dump string) string {
	var b strings.Builder
	for _, r := range dump {
		s := string(r)
		switch r {
		case '\n':
			b.WriteString(s)
		case SymbolWall:
			b.WriteString(styleWall.Sprint(s))
		case SymbolFloor:
			b.WriteString(styleFloor.Sprint(s))
		case SymbolPath:
			b.WriteString(stylePath.Sprint(s))
		case SymbolPlayer:
			b.WriteString(stylePlayer.Sprint(s))
		default:
			b.WriteString(styleMark.Sprint(s))
		}
	}
	return b.String()
}

const mapDumpFilename = "map.txt"

// DumpMapToFile writes the map and legend to map.txt in the working directory
// and returns the path written.
func DumpMapToFile(grid *world.Grid, path []world.Vec, marks Marks, names map[rune]string) (string, error) {
	f, err := os.Create(mapDumpFilename)
	if err != nil {
		return "", fmt.Errorf("devtools: create %s: %w", mapDumpFilename, err)
	}
	defer f.Close()

	fmt.Fprintf(f, "grid: %dx%d tile=%v generation=%d\n", grid.Width(), grid.Height(), grid.TileSize(), grid.Generation())
	fmt.Fprintf(f, "path: %d waypoints\n\n", len(path))
	if err := DumpMap(f, grid, path, marks); err != nil {
		return "", fmt.Errorf("devtools: write %s: %w", mapDumpFilename, err)
	}
	fmt.Fprintf(f, "\n%s", Legend(names))
	return mapDumpFilename, nil
}
