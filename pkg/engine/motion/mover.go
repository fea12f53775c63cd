package motion

import (
	"fmt"

	"cvquest/pkg/engine/world"
)

const (
	// DefaultSpeed is the travel speed in world units per second
	DefaultSpeed = 150.0

	// DefaultArrivalThreshold is how close a body must get to a waypoint to count as arrived
	DefaultArrivalThreshold = 4.0
)

// PathFinder produces world waypoints from start (exclusive) to end (inclusive)
type PathFinder interface {
	FindPath(start, end world.Vec) []world.Vec
}

// Option configures a Mover
type Option func(*Mover)

// WithSpeed sets the travel speed
func WithSpeed(speed float64) Option {
	return func(m *Mover) { m.speed = speed }
}

// WithArrivalThreshold sets the waypoint arrival distance
func WithArrivalThreshold(d float64) Option {
	return func(m *Mover) { m.threshold = d }
}

// WithGeneration supplies the current map generation. A path planned against
// an older generation is dropped on the next Advance.
func WithGeneration(fn func() uint64) Option {
	return func(m *Mover) { m.generation = fn }
}

// Mover follows a waypoint path one tick at a time
type Mover struct {
	body   Body
	finder PathFinder

	speed      float64
	threshold  float64
	generation func() uint64

	path    []world.Vec
	index   int
	pathGen uint64
	moving  bool
	walking bool
	facing  world.Facing
}

// NewMover creates an idle mover facing down
func NewMover(body Body, finder PathFinder, opts ...Option) *Mover {
	m := &Mover{
		body:      body,
		finder:    finder,
		speed:     DefaultSpeed,
		threshold: DefaultArrivalThreshold,
		facing:    world.Down,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// SetFinder swaps the pathfinder, cancelling any path planned with the old one
func (m *Mover) SetFinder(finder PathFinder) {
	m.Stop()
	m.finder = finder
}

// MoveTo plans a path to target and starts following it.
// It returns false and leaves state untouched when no path exists.
func (m *Mover) MoveTo(target world.Vec) bool {
	if m.finder == nil {
		return false
	}
	path := m.finder.FindPath(m.body.Position(), target)
	if len(path) == 0 {
		return false
	}

	m.path = path
	m.index = 0
	m.moving = true
	m.walking = true
	if m.generation != nil {
		m.pathGen = m.generation()
	}
	m.loadWaypoint()
	return true
}

// Advance steers toward the current waypoint. dt is the tick length in seconds.
func (m *Mover) Advance(dt float64) {
	if !m.moving {
		return
	}
	if m.generation != nil && m.generation() != m.pathGen {
		m.Stop()
		return
	}

	for {
		delta := m.path[m.index].Sub(m.body.Position())
		dist := delta.Len()
		if dist <= m.threshold {
			m.index++
			if m.index >= len(m.path) {
				m.Stop()
				return
			}
			m.loadWaypoint()
			continue
		}

		// land on the waypoint instead of overshooting it on long ticks
		if dt > 0 && m.speed*dt > dist {
			m.body.SetVelocity(delta.Scale(1 / dt))
			return
		}
		m.body.SetVelocity(delta.Scale(m.speed / dist))
		return
	}
}

// Stop cancels path movement and idles the body
func (m *Mover) Stop() {
	m.path = nil
	m.index = 0
	m.moving = false
	m.walking = false
	m.body.SetVelocity(world.Vec{})
}

// Drive applies continuous directional input. Any path in progress is cancelled.
// A zero dir idles the body.
func (m *Mover) Drive(dir world.Vec) {
	if m.moving {
		m.Stop()
	}
	if dir.IsZero() {
		m.walking = false
		m.body.SetVelocity(world.Vec{})
		return
	}
	m.walking = true
	m.facing = world.FacingFromDelta(dir.X, dir.Y)
	m.body.SetVelocity(dir.Scale(m.speed))
}

// CanReach reports whether the body is at rest within radius of p
func (m *Mover) CanReach(p world.Vec, radius float64) bool {
	if m.moving {
		return false
	}
	return m.body.Position().Dist(p) <= radius
}

// IsMoving reports whether a path is being followed
func (m *Mover) IsMoving() bool {
	return m.moving
}

// Facing returns the current facing
func (m *Mover) Facing() world.Facing {
	return m.facing
}

// Path returns the current waypoints
func (m *Mover) Path() []world.Vec {
	return m.path
}

// WaypointIndex returns the index of the waypoint being steered toward
func (m *Mover) WaypointIndex() int {
	return m.index
}

// Remaining returns how many waypoints are left, including the current one
func (m *Mover) Remaining() int {
	return len(m.path) - m.index
}

// Target returns the current waypoint
func (m *Mover) Target() (world.Vec, bool) {
	if !m.moving {
		return world.Vec{}, false
	}
	return m.path[m.index], true
}

// Body returns the steered body
func (m *Mover) Body() Body {
	return m.body
}

// Speed returns the travel speed
func (m *Mover) Speed() float64 {
	return m.speed
}

// Animation returns the animation key for the current state, e.g. "walk_left"
func (m *Mover) Animation() string {
	if m.walking {
		return fmt.Sprintf("walk_%s", m.facing)
	}
	return fmt.Sprintf("idle_%s", m.facing)
}

func (m *Mover) loadWaypoint() {
	delta := m.path[m.index].Sub(m.body.Position())
	m.facing = world.FacingFromDelta(delta.X, delta.Y)
}
