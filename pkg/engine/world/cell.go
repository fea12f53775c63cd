package world

import (
	"fmt"
	"math"
)

// Cell is a discrete grid position
type Cell struct {
	Col int
	Row int
}

// String returns "col:row"
func (c Cell) String() string {
	return fmt.Sprintf("%d:%d", c.Col, c.Row)
}

// Step returns the neighbouring cell in direction f
func (c Cell) Step(f Facing) Cell {
	dc, dr := f.Delta()
	return Cell{Col: c.Col + dc, Row: c.Row + dr}
}

// Manhattan returns the 4-connected distance between two cells
func (c Cell) Manhattan(o Cell) int {
	return abs(c.Col-o.Col) + abs(c.Row-o.Row)
}

// Vec is a point or displacement in world units
type Vec struct {
	X float64
	Y float64
}

// Add returns v+o
func (v Vec) Add(o Vec) Vec { return Vec{v.X + o.X, v.Y + o.Y} }

// Sub returns v-o
func (v Vec) Sub(o Vec) Vec { return Vec{v.X - o.X, v.Y - o.Y} }

// Scale returns v*k
func (v Vec) Scale(k float64) Vec { return Vec{v.X * k, v.Y * k} }

// Len returns the Euclidean length of v
func (v Vec) Len() float64 { return math.Hypot(v.X, v.Y) }

// Dist returns the Euclidean distance between v and o
func (v Vec) Dist(o Vec) float64 { return v.Sub(o).Len() }

// IsZero reports whether both components are zero
func (v Vec) IsZero() bool { return v.X == 0 && v.Y == 0 }

// Normalize returns the unit vector of v, or the zero vector if v has no length
func (v Vec) Normalize() Vec {
	l := v.Len()
	if l == 0 {
		return Vec{}
	}
	return Vec{v.X / l, v.Y / l}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
