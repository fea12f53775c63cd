// Package world holds the walkability grid and the coordinate conversions
// between continuous world space and discrete tile cells.
package world

import (
	"errors"
	"fmt"
	"math"
	"sync/atomic"
)

var (
	// ErrEmptyGrid is returned when a grid is built from no tile data.
	ErrEmptyGrid = errors.New("world: empty tile data")

	// ErrRagged is returned when tile rows have differing lengths.
	ErrRagged = errors.New("world: tile rows have differing lengths")
)

var generations atomic.Uint64

// Grid is a fixed-size walkability map built once per map load.
type Grid struct {
	blocked  []bool
	cols     int
	rows     int
	tileSize float64
	gen      uint64
}

// Build creates a grid from per-cell type codes indexed [row][col].
// Any non-zero code is blocked.
func Build(codes [][]int, tileSize float64) (*Grid, error) {
	if len(codes) == 0 || len(codes[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	if tileSize <= 0 {
		return nil, fmt.Errorf("world: tile size %v must be positive", tileSize)
	}

	rows := len(codes)
	cols := len(codes[0])
	g := &Grid{
		blocked:  make([]bool, rows*cols),
		cols:     cols,
		rows:     rows,
		tileSize: tileSize,
		gen:      generations.Add(1),
	}

	for r, line := range codes {
		if len(line) != cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrRagged, r, len(line), cols)
		}
		for c, code := range line {
			g.blocked[r*cols+c] = code != 0
		}
	}

	return g, nil
}

// MustBuild is like Build but panics on error. Intended for tests and fixed maps.
func MustBuild(codes [][]int, tileSize float64) *Grid {
	g, err := Build(codes, tileSize)
	if err != nil {
		panic(err)
	}
	return g
}

// Width returns the number of columns
func (g *Grid) Width() int {
	return g.cols
}

// Height returns the number of rows
func (g *Grid) Height() int {
	return g.rows
}

// TileSize returns the edge length of one cell in world units
func (g *Grid) TileSize() float64 {
	return g.tileSize
}

// Generation identifies this grid build. A reloaded map always has a new generation.
func (g *Grid) Generation() uint64 {
	if g == nil {
		return 0
	}
	return g.gen
}

// InBounds reports whether c lies inside the grid
func (g *Grid) InBounds(c Cell) bool {
	return c.Col >= 0 && c.Col < g.cols && c.Row >= 0 && c.Row < g.rows
}

// IsWalkable reports whether c can be occupied. Out-of-bounds cells are blocked.
func (g *Grid) IsWalkable(c Cell) bool {
	if g == nil || !g.InBounds(c) {
		return false
	}
	return !g.blocked[c.Row*g.cols+c.Col]
}

// WorldToCell returns the cell containing p
func (g *Grid) WorldToCell(p Vec) Cell {
	return Cell{
		Col: int(math.Floor(p.X / g.tileSize)),
		Row: int(math.Floor(p.Y / g.tileSize)),
	}
}

// CellToWorld returns the centre of c in world units
func (g *Grid) CellToWorld(c Cell) Vec {
	half := g.tileSize / 2
	return Vec{
		X: float64(c.Col)*g.tileSize + half,
		Y: float64(c.Row)*g.tileSize + half,
	}
}

// Snap returns the centre of the cell containing p
func (g *Grid) Snap(p Vec) Vec {
	return g.CellToWorld(g.WorldToCell(p))
}

// PixelSize returns the grid extent in world units
func (g *Grid) PixelSize() (w, h float64) {
	return float64(g.cols) * g.tileSize, float64(g.rows) * g.tileSize
}

// Each calls fn for every cell in row-major order
func (g *Grid) Each(fn func(c Cell, walkable bool)) {
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			fn(Cell{Col: c, Row: r}, !g.blocked[r*g.cols+c])
		}
	}
}

// FirstInteriorWalkable returns the first walkable cell that is not on the map border,
// scanning rows top to bottom. ok is false when the interior is fully blocked.
func (g *Grid) FirstInteriorWalkable() (c Cell, ok bool) {
	for r := 1; r < g.rows-1; r++ {
		for col := 1; col < g.cols-1; col++ {
			cell := Cell{Col: col, Row: r}
			if g.IsWalkable(cell) {
				return cell, true
			}
		}
	}
	return Cell{}, false
}
