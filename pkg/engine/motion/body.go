// Package motion steers a body along pathfinder waypoints or direct input.
package motion

import "cvquest/pkg/engine/world"

// Body is anything with a position that accepts a velocity.
// The owner integrates velocity into position once per tick.
type Body interface {
	Position() world.Vec
	SetVelocity(v world.Vec)
}

// PointBody is a kinematic body with no collision response
type PointBody struct {
	pos world.Vec
	vel world.Vec
}

// NewPointBody creates a body at pos
func NewPointBody(pos world.Vec) *PointBody {
	return &PointBody{pos: pos}
}

// Position returns the current position
func (b *PointBody) Position() world.Vec {
	return b.pos
}

// SetPosition teleports the body
func (b *PointBody) SetPosition(p world.Vec) {
	b.pos = p
}

// Velocity returns the current velocity
func (b *PointBody) Velocity() world.Vec {
	return b.vel
}

// SetVelocity sets the velocity applied on the next Step
func (b *PointBody) SetVelocity(v world.Vec) {
	b.vel = v
}

// Step integrates velocity over dt seconds
func (b *PointBody) Step(dt float64) {
	b.pos = b.pos.Add(b.vel.Scale(dt))
}
