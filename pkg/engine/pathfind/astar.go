// Package pathfind finds shortest 4-connected routes across a world.Grid.
package pathfind

import (
	"github.com/zyedidia/generic/heap"
	"github.com/zyedidia/generic/mapset"

	"cvquest/pkg/engine/world"
)

// MaxSnapRadius is how far FindPath looks for a walkable cell around a blocked goal
const MaxSnapRadius = 3

// Stats describes the most recent search
type Stats struct {
	Expanded int
	Snapped  bool
}

// Finder runs A* over a single grid
type Finder struct {
	grid  *world.Grid
	stats Stats
}

// node is one open-set entry
type node struct {
	cell world.Cell
	g    int
	h    int
	seq  int
}

// New creates a finder for grid
func New(grid *world.Grid) *Finder {
	return &Finder{grid: grid}
}

// Grid returns the grid this finder searches
func (f *Finder) Grid() *world.Grid {
	return f.grid
}

// LastStats returns counters from the most recent FindPath call
func (f *Finder) LastStats() Stats {
	return f.stats
}

// FindPath returns the world-space waypoints from start (exclusive) to end (inclusive).
// A blocked end is replaced by the nearest walkable cell within MaxSnapRadius.
// The result is empty when no route exists.
func (f *Finder) FindPath(start, end world.Vec) []world.Vec {
	if f == nil || f.grid == nil {
		return nil
	}
	f.stats = Stats{}

	from := f.grid.WorldToCell(start)
	goal := f.grid.WorldToCell(end)

	if !f.grid.IsWalkable(goal) {
		snapped, ok := f.NearestWalkable(goal, MaxSnapRadius)
		if !ok {
			return nil
		}
		goal = snapped
		f.stats.Snapped = true
	}

	cells := f.search(from, goal)
	if len(cells) == 0 {
		return nil
	}

	path := make([]world.Vec, len(cells))
	for i, c := range cells {
		path[i] = f.grid.CellToWorld(c)
	}
	return path
}

// FindCells is FindPath in cell space. The start cell is excluded.
func (f *Finder) FindCells(from, goal world.Cell) []world.Cell {
	f.stats = Stats{}
	if !f.grid.IsWalkable(goal) {
		return nil
	}
	return f.search(from, goal)
}

// NearestWalkable scans square rings of growing radius around c, each from
// top-left to bottom-right, and returns the first walkable cell.
func (f *Finder) NearestWalkable(c world.Cell, maxRadius int) (world.Cell, bool) {
	for r := 1; r <= maxRadius; r++ {
		for dy := -r; dy <= r; dy++ {
			for dx := -r; dx <= r; dx++ {
				candidate := world.Cell{Col: c.Col + dx, Row: c.Row + dy}
				if f.grid.IsWalkable(candidate) {
					return candidate, true
				}
			}
		}
	}
	return world.Cell{}, false
}

func (f *Finder) search(from, goal world.Cell) []world.Cell {
	if from == goal {
		return nil
	}

	open := heap.New[node](func(a, b node) bool {
		fa, fb := a.g+a.h, b.g+b.h
		if fa != fb {
			return fa < fb
		}
		if a.h != b.h {
			return a.h < b.h
		}
		return a.seq < b.seq
	})
	closed := mapset.New[world.Cell]()
	cameFrom := make(map[world.Cell]world.Cell)
	cost := map[world.Cell]int{from: 0}

	seq := 0
	open.Push(node{cell: from, h: from.Manhattan(goal), seq: seq})

	for open.Size() > 0 {
		cur, _ := open.Pop()
		if closed.Has(cur.cell) {
			continue
		}
		if cur.cell == goal {
			return reconstruct(cameFrom, from, goal)
		}
		closed.Put(cur.cell)
		f.stats.Expanded++

		for _, dir := range world.AllFacings() {
			next := cur.cell.Step(dir)
			if closed.Has(next) || !f.grid.IsWalkable(next) {
				continue
			}
			g := cur.g + 1
			if known, ok := cost[next]; ok && g >= known {
				continue
			}
			cost[next] = g
			cameFrom[next] = cur.cell
			seq++
			open.Push(node{cell: next, g: g, h: next.Manhattan(goal), seq: seq})
		}
	}

	return nil
}

// reconstruct walks predecessor links back from goal, then reverses.
// The start cell is left out.
func reconstruct(cameFrom map[world.Cell]world.Cell, from, goal world.Cell) []world.Cell {
	var cells []world.Cell
	for c := goal; c != from; c = cameFrom[c] {
		cells = append(cells, c)
	}
	for i, j := 0, len(cells)-1; i < j; i, j = i+1, j-1 {
		cells[i], cells[j] = cells[j], cells[i]
	}
	return cells
}
