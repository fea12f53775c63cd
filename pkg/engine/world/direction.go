package world

import "math"

// Facing is the direction an entity looks toward
type Facing int

// Facing constants, in neighbour search order
const (
	Up Facing = iota
	Right
	Down
	Left
)

// AllFacings returns all valid facings in search order: up, right, down, left
func AllFacings() []Facing {
	return []Facing{Up, Right, Down, Left}
}

// String returns the lowercase name used for animation keys
func (f Facing) String() string {
	switch f {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	default:
		return "unknown"
	}
}

// IsValid returns true if the facing is one of the four cardinal directions
func (f Facing) IsValid() bool {
	return f >= Up && f <= Left
}

// Opposite returns the reverse facing
func (f Facing) Opposite() Facing {
	switch f {
	case Up:
		return Down
	case Down:
		return Up
	case Right:
		return Left
	case Left:
		return Right
	default:
		return f
	}
}

// Delta returns the column and row offsets for this facing
func (f Facing) Delta() (colDelta, rowDelta int) {
	switch f {
	case Up:
		return 0, -1
	case Right:
		return 1, 0
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	default:
		return 0, 0
	}
}

// Vec returns the unit world vector for this facing
func (f Facing) Vec() Vec {
	dc, dr := f.Delta()
	return Vec{X: float64(dc), Y: float64(dr)}
}

// FacingFromDelta picks the dominant axis of (dx, dy).
// Horizontal wins only when strictly larger; ties face vertically.
func FacingFromDelta(dx, dy float64) Facing {
	if math.Abs(dx) > math.Abs(dy) {
		if dx > 0 {
			return Right
		}
		return Left
	}
	if dy > 0 {
		return Down
	}
	return Up
}
