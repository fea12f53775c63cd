package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cvquest/pkg/engine/motion"
	"cvquest/pkg/engine/world"
	"cvquest/pkg/game/content"
)

var _ motion.Body = (*Body)(nil)

func TestNewWorld_OneShapePerWall(t *testing.T) {
	g, err := world.Build(content.BorderTiles(5, 4), 32)
	require.NoError(t, err)

	w := NewWorld(g)

	assert.Equal(t, 5*2+2*2, w.Walls())
}

func TestBody_MovesFreelyInOpenSpace(t *testing.T) {
	g, err := world.Build(content.BorderTiles(10, 10), 32)
	require.NoError(t, err)
	w := NewWorld(g)
	start := g.CellToWorld(world.Cell{Col: 3, Row: 3})
	b := w.AddPlayer(start, 24)

	b.SetVelocity(world.Vec{X: 60})
	for i := 0; i < 30; i++ {
		w.Step(1.0 / 60)
	}

	assert.InDelta(t, start.X+30, b.Position().X, 0.5)
	assert.InDelta(t, start.Y, b.Position().Y, 0.5)
	assert.InDelta(t, 60, b.Velocity().X, 1e-6, "no damping")
}

func TestBody_WallsStopTheBody(t *testing.T) {
	g, err := world.Build(content.BorderTiles(6, 6), 32)
	require.NoError(t, err)
	w := NewWorld(g)
	b := w.AddPlayer(g.CellToWorld(world.Cell{Col: 1, Row: 1}), 24)

	for i := 0; i < 120; i++ {
		b.SetVelocity(world.Vec{X: -150})
		w.Step(1.0 / 60)
	}

	// left wall's inner edge is at x=32, body half-width 12
	assert.GreaterOrEqual(t, b.Position().X, 32.0+12-1)
}
