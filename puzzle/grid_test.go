package puzzle_test

import (
	"testing"

	"github.com/plus3/fugufall/puzzle"
	"github.com/stretchr/testify/assert"
)

func TestNewGridIsEmpty(t *testing.T) {
	g := puzzle.NewGrid(14, 16)

	assert.Equal(t, 14, g.Width())
	assert.Equal(t, 16, g.Height())
	assert.Equal(t, 0, g.Count())
	assert.Equal(t, puzzle.NoPiece, g.At(puzzle.Coord{X: 13, Y: 15}))
}

func TestGridBounds(t *testing.T) {
	g := puzzle.NewGrid(4, 3)

	tests := []struct {
		c   puzzle.Coord
		out bool
	}{
		{puzzle.Coord{X: 0, Y: 0}, false},
		{puzzle.Coord{X: 3, Y: 2}, false},
		{puzzle.Coord{X: -1, Y: 0}, true},
		{puzzle.Coord{X: 0, Y: -1}, true},
		{puzzle.Coord{X: 4, Y: 0}, true},
		{puzzle.Coord{X: 0, Y: 3}, true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.out, g.OutOfBounds(tt.c), "%v", tt.c)
	}
	assert.Equal(t, puzzle.NoPiece, g.At(puzzle.Coord{X: -1, Y: -1}))
}

func TestGridPlaceAndClear(t *testing.T) {
	g := puzzle.NewGrid(6, 6)
	a := medium(1, puzzle.Red, 0, 0)
	b := small(2, puzzle.Red, 2, 0)

	g.Place(a.ID, a.Footprint())
	g.Place(b.ID, b.Footprint())
	assert.Equal(t, 5, g.Count())
	assert.Equal(t, puzzle.PieceID(1), g.At(puzzle.Coord{X: 1, Y: 1}))
	assert.Equal(t, puzzle.PieceID(2), g.At(puzzle.Coord{X: 2, Y: 0}))

	// Clearing with the wrong id leaves foreign cells alone
	g.Clear(a.ID, []puzzle.Coord{{X: 2, Y: 0}, {X: 0, Y: 0}})
	assert.Equal(t, puzzle.PieceID(2), g.At(puzzle.Coord{X: 2, Y: 0}))
	assert.Equal(t, puzzle.NoPiece, g.At(puzzle.Coord{X: 0, Y: 0}))

	g.Clear(a.ID, a.Footprint())
	assert.Equal(t, 1, g.Count())
}

func TestGridFree(t *testing.T) {
	g, _ := board(4, 4, small(7, puzzle.Cyan, 1, 1))

	assert.True(t, g.Free([]puzzle.Coord{{X: 0, Y: 0}, {X: 2, Y: 2}}))
	assert.False(t, g.Free([]puzzle.Coord{{X: 1, Y: 1}}))
	assert.True(t, g.Free([]puzzle.Coord{{X: 1, Y: 1}}, 7))
	assert.False(t, g.Free([]puzzle.Coord{{X: 4, Y: 0}}, 7))
	assert.True(t, g.Free(nil))
}

func TestGridSnapshotRestore(t *testing.T) {
	g, _ := board(5, 5, medium(0, puzzle.Red, 1, 1))
	saved := g.Cells()

	saved[0] = 42
	assert.Equal(t, puzzle.NoPiece, g.At(puzzle.Coord{}), "Cells must return a copy")
	saved[0] = puzzle.NoPiece

	other := puzzle.NewGrid(5, 5)
	assert.False(t, g.Equal(other))
	other.Restore(saved)
	assert.True(t, g.Equal(other))

	g.Reset()
	assert.Equal(t, 0, g.Count())
	assert.False(t, g.Equal(other))
}
