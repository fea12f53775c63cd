package entities

import (
	"errors"

	"cvquest/pkg/engine/motion"
	"cvquest/pkg/engine/world"
)

// ErrNoStart is returned when the map has no walkable interior tile
var ErrNoStart = errors.New("entities: no walkable tile for the player")

// Player is the avatar steered by the Mover
type Player struct {
	Body  motion.Body
	Mover *motion.Mover
}

// NewPlayer wires a body to a mover
func NewPlayer(body motion.Body, mover *motion.Mover) *Player {
	return &Player{Body: body, Mover: mover}
}

// Position returns the player's world position
func (p *Player) Position() world.Vec {
	return p.Body.Position()
}

// StartPosition returns the centre of the first walkable interior tile
func StartPosition(grid *world.Grid) (world.Vec, error) {
	c, ok := grid.FirstInteriorWalkable()
	if !ok {
		return world.Vec{}, ErrNoStart
	}
	return grid.CellToWorld(c), nil
}
