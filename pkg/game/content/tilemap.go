package content

import "fmt"

const (
	Floor = 0
	Wall  = 1
)

// Map is a rectangular grid of tile codes indexed [row][col]
type Map struct {
	Width    int
	Height   int
	TileSize float64
	Tiles    [][]int
}

type mapSpec struct {
	Width    int     `yaml:"width"`
	Height   int     `yaml:"height"`
	TileSize float64 `yaml:"tile_size"`
	Generate string  `yaml:"generate"`
	Tiles    [][]int `yaml:"tiles"`
}

func (s mapSpec) build() (Map, error) {
	m := Map{Width: s.Width, Height: s.Height, TileSize: s.TileSize}

	switch {
	case len(s.Tiles) > 0:
		m.Tiles = s.Tiles
		if m.Height == 0 {
			m.Height = len(s.Tiles)
		}
		if m.Width == 0 {
			m.Width = len(s.Tiles[0])
		}
	case s.Generate == "border":
		if s.Width < 3 || s.Height < 3 {
			return Map{}, fmt.Errorf("%w: border map needs at least 3x3, got %dx%d", ErrInvalid, s.Width, s.Height)
		}
		m.Tiles = BorderTiles(s.Width, s.Height)
	case s.Generate != "":
		return Map{}, fmt.Errorf("%w: unknown generator %q", ErrInvalid, s.Generate)
	default:
		return Map{}, fmt.Errorf("%w: map has neither tiles nor generate", ErrInvalid)
	}

	if len(m.Tiles) != m.Height {
		return Map{}, fmt.Errorf("%w: %d rows, declared height %d", ErrInvalid, len(m.Tiles), m.Height)
	}
	for r, row := range m.Tiles {
		if len(row) != m.Width {
			return Map{}, fmt.Errorf("%w: row %d has %d tiles, declared width %d", ErrInvalid, r, len(row), m.Width)
		}
	}
	return m, nil
}

// BorderTiles returns a w×h floor with a one-tile wall around the edge
func BorderTiles(w, h int) [][]int {
	tiles := make([][]int, h)
	for y := range tiles {
		tiles[y] = make([]int, w)
		for x := range tiles[y] {
			if x == 0 || x == w-1 || y == 0 || y == h-1 {
				tiles[y][x] = Wall
			}
		}
	}
	return tiles
}
