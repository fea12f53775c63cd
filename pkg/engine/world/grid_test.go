package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// borderedCodes returns a w×h code matrix with walls (1) around the edge
func borderedCodes(w, h int) [][]int {
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

func TestBuild_Rejects(t *testing.T) {
	_, err := Build(nil, 32)
	assert.ErrorIs(t, err, ErrEmptyGrid)

	_, err = Build([][]int{{}}, 32)
	assert.ErrorIs(t, err, ErrEmptyGrid)

	_, err = Build([][]int{{0, 0}, {0}}, 32)
	assert.ErrorIs(t, err, ErrRagged)

	_, err = Build([][]int{{0}}, 0)
	assert.Error(t, err)
}

func TestBuild_NonZeroCodesAreBlocked(t *testing.T) {
	g := MustBuild([][]int{{0, 1, 2}, {7, 0, -1}}, 32)

	assert.Equal(t, 3, g.Width())
	assert.Equal(t, 2, g.Height())

	tests := []struct {
		cell Cell
		want bool
	}{
		{Cell{0, 0}, true},
		{Cell{1, 0}, false},
		{Cell{2, 0}, false},
		{Cell{0, 1}, false},
		{Cell{1, 1}, true},
		{Cell{2, 1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.cell.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, g.IsWalkable(tt.cell))
		})
	}
}

func TestIsWalkable_OutOfBounds(t *testing.T) {
	g := MustBuild(borderedCodes(5, 5), 32)
	for _, c := range []Cell{{-1, 2}, {2, -1}, {5, 2}, {2, 5}, {100, 100}} {
		assert.False(t, g.IsWalkable(c), "IsWalkable(%v)", c)
	}

	var nilGrid *Grid
	assert.False(t, nilGrid.IsWalkable(Cell{0, 0}))
}

func TestWorldToCell_Floors(t *testing.T) {
	g := MustBuild(borderedCodes(5, 5), 32)

	assert.Equal(t, Cell{0, 0}, g.WorldToCell(Vec{0, 0}))
	assert.Equal(t, Cell{0, 0}, g.WorldToCell(Vec{31.9, 31.9}))
	assert.Equal(t, Cell{1, 2}, g.WorldToCell(Vec{32, 64}))
	assert.Equal(t, Cell{-1, -1}, g.WorldToCell(Vec{-0.5, -0.5}))
}

func TestCellToWorld_IsCentre(t *testing.T) {
	g := MustBuild(borderedCodes(5, 5), 32)

	assert.Equal(t, Vec{16, 16}, g.CellToWorld(Cell{0, 0}))
	assert.Equal(t, Vec{3*32 + 16, 2*32 + 16}, g.CellToWorld(Cell{3, 2}))
}

func TestSnap_ReturnsCentreOfContainingCell(t *testing.T) {
	g := MustBuild(borderedCodes(5, 5), 32)

	for _, p := range []Vec{{33, 33}, {63.9, 40}, {48, 48}} {
		got := g.Snap(p)
		assert.Equal(t, Vec{48, 48}, got, "Snap(%v)", p)
		assert.Equal(t, g.WorldToCell(p), g.WorldToCell(got))
	}
}

func TestGeneration_UniquePerBuild(t *testing.T) {
	a := MustBuild(borderedCodes(3, 3), 32)
	b := MustBuild(borderedCodes(3, 3), 32)

	assert.NotZero(t, a.Generation())
	assert.NotEqual(t, a.Generation(), b.Generation())
}

func TestFirstInteriorWalkable(t *testing.T) {
	codes := borderedCodes(5, 5)
	codes[1][1] = 1
	codes[1][2] = 1
	g := MustBuild(codes, 32)

	c, ok := g.FirstInteriorWalkable()
	require.True(t, ok)
	assert.Equal(t, Cell{3, 1}, c)

	walled := make([][]int, 4)
	for r := range walled {
		walled[r] = []int{1, 1, 1, 1}
	}
	_, ok = MustBuild(walled, 32).FirstInteriorWalkable()
	assert.False(t, ok)
}

func TestFacingFromDelta(t *testing.T) {
	tests := []struct {
		name   string
		dx, dy float64
		want   Facing
	}{
		{"right", 10, 3, Right},
		{"left", -10, 3, Left},
		{"down", 3, 10, Down},
		{"up", 3, -10, Up},
		{"tie goes vertical down", 5, 5, Down},
		{"tie goes vertical up", -5, -5, Up},
		{"zero faces up", 0, 0, Up},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FacingFromDelta(tt.dx, tt.dy))
		})
	}
}

func TestFacing_DeltaOpposite(t *testing.T) {
	for _, f := range AllFacings() {
		dc, dr := f.Delta()
		oc, or := f.Opposite().Delta()
		if dc != -oc || dr != -or {
			t.Errorf("%v.Opposite().Delta() = (%d,%d), want (%d,%d)", f, oc, or, -dc, -dr)
		}
	}
	assert.Equal(t, Cell{2, 1}, Cell{2, 2}.Step(Up))
	assert.Equal(t, "left", Left.String())
}

func TestVec_Normalize(t *testing.T) {
	assert.Equal(t, Vec{}, Vec{}.Normalize())
	n := Vec{3, 4}.Normalize()
	assert.InDelta(t, 0.6, n.X, 1e-9)
	assert.InDelta(t, 0.8, n.Y, 1e-9)
	assert.InDelta(t, 5.0, Vec{0, 0}.Dist(Vec{3, 4}), 1e-9)
}
