package gameplay

import (
	"time"

	"cvquest/pkg/engine/world"
	"cvquest/pkg/game/state"
)

// Update advances the scene by dt. Order matters: queued reloads and timers, then dialogue,
// then movement only while no dialogue is open, then integration.
func (s *Scene) Update(dt time.Duration) {
	if dt <= 0 {
		return
	}
	secs := dt.Seconds()

	s.applyQueuedReload()
	s.timers.Tick(dt)

	if s.dialogue.IsActive() {
		s.dialogue.Tick(dt)
	}
	s.handleDialogueEvents()

	if s.dialogue.IsActive() {
		s.player.Body.SetVelocity(world.Vec{})
	} else {
		s.move(secs)
	}

	s.integrate(secs)
	s.refreshHighlights()
	s.notes.Tick(dt)
}

func (s *Scene) move(secs float64) {
	m := s.player.Mover
	switch {
	case !s.held.IsZero():
		s.cancelPending()
		s.panels.Hide(state.PanelHelp)
		m.Drive(s.held)
	case m.IsMoving():
		m.Advance(secs)
	default:
		m.Drive(world.Vec{})
	}
}

func (s *Scene) integrate(secs float64) {
	if s.phys != nil {
		s.phys.Step(secs)
		return
	}
	s.stepPoint(secs)
}

// stepPoint integrates the point body one axis at a time and refuses to
// enter blocked cells, so keyboard steering slides along walls.
func (s *Scene) stepPoint(secs float64) {
	p := s.point.Position()
	v := s.point.Velocity()
	if v.IsZero() {
		return
	}

	next := p
	if x := (world.Vec{X: p.X + v.X*secs, Y: p.Y}); s.grid.IsWalkable(s.grid.WorldToCell(x)) {
		next.X = x.X
	}
	if y := (world.Vec{X: next.X, Y: p.Y + v.Y*secs}); s.grid.IsWalkable(s.grid.WorldToCell(y)) {
		next.Y = y.Y
	}
	s.point.SetPosition(next)
}

func (s *Scene) refreshHighlights() {
	pos := s.player.Position()
	for _, n := range s.npcs {
		n.Highlighted = n.InRange(pos, s.cfg.InteractionRadius)
	}
}
