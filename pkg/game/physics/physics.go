// Package physics runs player movement through a Chipmunk2D space so walls push back.
package physics

import (
	"math"

	"github.com/jakecoffman/cp"

	"cvquest/pkg/engine/world"
)

const (
	collisionTypeWall cp.CollisionType = iota + 1
	collisionTypePlayer
)

// World is a zero-gravity space holding static wall boxes
type World struct {
	space *cp.Space
	walls int
}

// NewWorld adds one static box per blocked cell in grid
func NewWorld(grid *world.Grid) *World {
	space := cp.NewSpace()
	space.SetGravity(cp.Vector{})
	space.Iterations = 10

	w := &World{space: space}
	tile := grid.TileSize()
	grid.Each(func(c world.Cell, walkable bool) {
		if walkable {
			return
		}
		x0 := float64(c.Col) * tile
		y0 := float64(c.Row) * tile
		bb := cp.BB{L: x0, B: y0, R: x0 + tile, T: y0 + tile}
		shape := cp.NewBox2(space.StaticBody, bb, 0)
		shape.SetFriction(0)
		shape.SetCollisionType(collisionTypeWall)
		space.AddShape(shape)
		w.walls++
	})
	return w
}

// Walls returns the number of static wall shapes
func (w *World) Walls() int {
	return w.walls
}

// Step advances the simulation by dt seconds
func (w *World) Step(dt float64) {
	if w == nil || w.space == nil || dt <= 0 {
		return
	}
	w.space.Step(dt)
}

// Body is a dynamic box with fixed rotation. It satisfies motion.Body.
type Body struct {
	body  *cp.Body
	shape *cp.Shape
}

// AddPlayer creates a size×size body centred on pos
func (w *World) AddPlayer(pos world.Vec, size float64) *Body {
	body := cp.NewBody(1, math.Inf(1))
	body.SetPosition(cp.Vector{X: pos.X, Y: pos.Y})
	// velocity is owned by the mover, so skip gravity and damping
	body.SetVelocityUpdateFunc(func(b *cp.Body, _ cp.Vector, _ float64, _ float64) {})

	shape := cp.NewBox(body, size, size, 0)
	shape.SetFriction(0)
	shape.SetCollisionType(collisionTypePlayer)

	w.space.AddBody(body)
	w.space.AddShape(shape)
	return &Body{body: body, shape: shape}
}

// Position returns the body centre
func (b *Body) Position() world.Vec {
	p := b.body.Position()
	return world.Vec{X: p.X, Y: p.Y}
}

// SetPosition teleports the body
func (b *Body) SetPosition(p world.Vec) {
	b.body.SetPosition(cp.Vector{X: p.X, Y: p.Y})
}

// SetVelocity sets the body velocity for the next Step
func (b *Body) SetVelocity(v world.Vec) {
	b.body.SetVelocity(v.X, v.Y)
}

// Velocity returns the current velocity
func (b *Body) Velocity() world.Vec {
	v := b.body.Velocity()
	return world.Vec{X: v.X, Y: v.Y}
}
