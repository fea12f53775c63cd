package pathfind

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cvquest/pkg/engine/world"
)

const tile = 32

func bordered(w, h int) [][]int {
	codes := make([][]int, h)
	for r := range codes {
		codes[r] = make([]int, w)
		for c := range codes[r] {
			if r == 0 || c == 0 || r == h-1 || c == w-1 {
				codes[r][c] = 1
			}
		}
	}
	return codes
}

func filled(w, h, code int) [][]int {
	codes := make([][]int, h)
	for r := range codes {
		codes[r] = make([]int, w)
		for c := range codes[r] {
			codes[r][c] = code
		}
	}
	return codes
}

func centre(g *world.Grid, col, row int) world.Vec {
	return g.CellToWorld(world.Cell{Col: col, Row: row})
}

// bfs returns the 4-connected step distance, or -1 when unreachable
func bfs(g *world.Grid, from, goal world.Cell) int {
	if from == goal {
		return 0
	}
	dist := map[world.Cell]int{from: 0}
	queue := []world.Cell{from}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, f := range world.AllFacings() {
			next := cur.Step(f)
			if _, seen := dist[next]; seen || !g.IsWalkable(next) {
				continue
			}
			dist[next] = dist[cur] + 1
			if next == goal {
				return dist[next]
			}
			queue = append(queue, next)
		}
	}
	return -1
}

// assertContiguous checks that every waypoint is one cardinal step from the previous one
func assertContiguous(t *testing.T, g *world.Grid, start world.Vec, path []world.Vec) {
	t.Helper()
	prev := g.WorldToCell(start)
	for i, p := range path {
		c := g.WorldToCell(p)
		assert.Equal(t, 1, prev.Manhattan(c), "waypoint %d (%v) not adjacent to %v", i, c, prev)
		assert.True(t, g.IsWalkable(c), "waypoint %d (%v) is blocked", i, c)
		assert.Equal(t, g.CellToWorld(c), p, "waypoint %d is not a cell centre", i)
		prev = c
	}
}

func TestFindPath_OpenRoom(t *testing.T) {
	g := world.MustBuild(bordered(5, 5), tile)
	f := New(g)

	path := f.FindPath(centre(g, 1, 1), centre(g, 3, 3))

	require.Len(t, path, 4)
	assert.Equal(t, centre(g, 3, 3), path[len(path)-1])
	assertContiguous(t, g, centre(g, 1, 1), path)
}

func TestFindPath_ExcludesStart(t *testing.T) {
	g := world.MustBuild(bordered(5, 5), tile)
	start := centre(g, 1, 1)

	path := New(g).FindPath(start, centre(g, 1, 2))

	require.Equal(t, []world.Vec{centre(g, 1, 2)}, path)
}

func TestFindPath_SameCellIsEmpty(t *testing.T) {
	g := world.MustBuild(bordered(5, 5), tile)
	path := New(g).FindPath(world.Vec{X: 33, Y: 33}, world.Vec{X: 60, Y: 60})
	assert.Empty(t, path)
}

func TestFindPath_AllWalledIsEmpty(t *testing.T) {
	g := world.MustBuild(filled(5, 5, 1), tile)

	path := New(g).FindPath(centre(g, 1, 1), centre(g, 3, 3))

	assert.Empty(t, path)
}

func TestFindPath_EnclosedGoalIsEmpty(t *testing.T) {
	codes := bordered(9, 9)
	// ring of walls around (6,6)
	for _, c := range [][2]int{{5, 5}, {6, 5}, {7, 5}, {5, 6}, {7, 6}, {5, 7}, {6, 7}, {7, 7}} {
		codes[c[1]][c[0]] = 1
	}
	g := world.MustBuild(codes, tile)

	path := New(g).FindPath(centre(g, 1, 1), centre(g, 6, 6))

	assert.Empty(t, path)
}

func TestFindPath_BlockedGoalSnapsToRing(t *testing.T) {
	codes := bordered(9, 9)
	codes[4][4] = 1
	g := world.MustBuild(codes, tile)
	f := New(g)

	path := f.FindPath(centre(g, 1, 1), centre(g, 4, 4))

	require.NotEmpty(t, path)
	last := g.WorldToCell(path[len(path)-1])
	assert.Equal(t, world.Cell{Col: 3, Row: 3}, last, "first walkable in ring order is top-left")
	assert.True(t, f.LastStats().Snapped)
	assertContiguous(t, g, centre(g, 1, 1), path)
}

func TestFindPath_BlockedGoalRespectsRingOrder(t *testing.T) {
	codes := filled(9, 9, 1)
	// only walkable cells: row 1 and column 6; at radius 2 from (4,4)
	// the top row is scanned before the right column
	for c := 1; c <= 6; c++ {
		codes[1][c] = 0
	}
	for r := 1; r <= 5; r++ {
		codes[r][6] = 0
	}
	g := world.MustBuild(codes, tile)
	f := New(g)

	path := f.FindPath(centre(g, 1, 1), centre(g, 4, 4))

	require.NotEmpty(t, path)
	last := g.WorldToCell(path[len(path)-1])
	assert.Equal(t, world.Cell{Col: 6, Row: 2}, last)
	assertContiguous(t, g, centre(g, 1, 1), path)
}

func TestNearestWalkable(t *testing.T) {
	codes := filled(9, 9, 1)
	codes[6][5] = 0
	g := world.MustBuild(codes, tile)
	f := New(g)

	c, ok := f.NearestWalkable(world.Cell{Col: 4, Row: 4}, 3)
	require.True(t, ok)
	assert.Equal(t, world.Cell{Col: 5, Row: 6}, c)

	_, ok = f.NearestWalkable(world.Cell{Col: 4, Row: 4}, 1)
	assert.False(t, ok)
}

func TestFindPath_UniqueCorridor(t *testing.T) {
	codes := filled(7, 5, 1)
	// S-shaped corridor with a single route
	for _, c := range [][2]int{{1, 1}, {2, 1}, {3, 1}, {3, 2}, {3, 3}, {4, 3}, {5, 3}} {
		codes[c[1]][c[0]] = 0
	}
	g := world.MustBuild(codes, tile)

	path := New(g).FindPath(centre(g, 1, 1), centre(g, 5, 3))

	want := []world.Vec{
		centre(g, 2, 1), centre(g, 3, 1), centre(g, 3, 2),
		centre(g, 3, 3), centre(g, 4, 3), centre(g, 5, 3),
	}
	assert.Equal(t, want, path)
}

func TestFindPath_ShortestMatchesBFS(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 42))

	for trial := 0; trial < 200; trial++ {
		w, h := 4+rng.IntN(12), 4+rng.IntN(12)
		codes := bordered(w, h)
		for r := 1; r < h-1; r++ {
			for c := 1; c < w-1; c++ {
				if rng.Float64() < 0.3 {
					codes[r][c] = 1
				}
			}
		}
		g := world.MustBuild(codes, tile)
		f := New(g)

		from := world.Cell{Col: 1 + rng.IntN(w-2), Row: 1 + rng.IntN(h-2)}
		goal := world.Cell{Col: 1 + rng.IntN(w-2), Row: 1 + rng.IntN(h-2)}
		if !g.IsWalkable(from) || !g.IsWalkable(goal) {
			continue
		}

		want := bfs(g, from, goal)
		path := f.FindPath(g.CellToWorld(from), g.CellToWorld(goal))
		again := f.FindPath(g.CellToWorld(from), g.CellToWorld(goal))

		switch {
		case want < 0:
			assert.Empty(t, path, "trial %d: unreachable goal should yield empty path", trial)
		default:
			assert.Len(t, path, want, "trial %d: %v -> %v", trial, from, goal)
			assertContiguous(t, g, g.CellToWorld(from), path)
		}
		assert.Len(t, again, len(path), "trial %d: repeated search length differs", trial)
	}
}

func TestFindPath_NilFinder(t *testing.T) {
	var f *Finder
	assert.Nil(t, f.FindPath(world.Vec{}, world.Vec{X: 100}))
}

func TestFindCells_CountsExpansions(t *testing.T) {
	g := world.MustBuild(bordered(7, 7), tile)
	f := New(g)

	cells := f.FindCells(world.Cell{Col: 1, Row: 1}, world.Cell{Col: 5, Row: 5})

	assert.Len(t, cells, 8)
	assert.Positive(t, f.LastStats().Expanded)
	assert.False(t, f.LastStats().Snapped)
}
