package puzzle_test

import (
	"testing"

	"github.com/plus3/fugufall/puzzle"
	"github.com/stretchr/testify/assert"
)

func TestFootprint(t *testing.T) {
	assert.Equal(t, []puzzle.Coord{{X: 4, Y: 7}}, puzzle.Footprint(puzzle.Coord{X: 4, Y: 7}, puzzle.Small))
	assert.ElementsMatch(t,
		[]puzzle.Coord{{X: 2, Y: 3}, {X: 3, Y: 3}, {X: 2, Y: 4}, {X: 3, Y: 4}},
		puzzle.Footprint(puzzle.Coord{X: 2, Y: 3}, puzzle.Medium))
	assert.Len(t, puzzle.Footprint(puzzle.Coord{}, puzzle.Large), 9)
}

func TestPerimeter(t *testing.T) {
	assert.Equal(t,
		[]puzzle.Coord{{X: 0, Y: -1}, {X: -1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 0}},
		puzzle.Perimeter(puzzle.Coord{}, puzzle.Small))

	cells := puzzle.Perimeter(puzzle.Coord{X: 5, Y: 5}, puzzle.Large)
	assert.Len(t, cells, 12)
	for _, c := range cells {
		inside := c.X >= 5 && c.X <= 7 && c.Y >= 5 && c.Y <= 7
		assert.False(t, inside, "perimeter cell %v inside footprint", c)
	}
}

func TestEdgeCells(t *testing.T) {
	anchor := puzzle.Coord{X: 2, Y: 3}
	tests := []struct {
		dir  puzzle.Direction
		want []puzzle.Coord
	}{
		{puzzle.DirDown, []puzzle.Coord{{X: 2, Y: 2}, {X: 3, Y: 2}}},
		{puzzle.DirUp, []puzzle.Coord{{X: 2, Y: 5}, {X: 3, Y: 5}}},
		{puzzle.DirLeft, []puzzle.Coord{{X: 1, Y: 3}, {X: 1, Y: 4}}},
		{puzzle.DirRight, []puzzle.Coord{{X: 4, Y: 3}, {X: 4, Y: 4}}},
	}

	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, puzzle.EdgeCells(anchor, puzzle.Medium, tt.dir))
		})
	}
}

func TestCenter(t *testing.T) {
	anchor := puzzle.Coord{X: 1, Y: 1}
	assert.Equal(t, anchor, puzzle.Center(anchor, puzzle.Small))
	assert.Equal(t, anchor, puzzle.Center(anchor, puzzle.Medium))
	assert.Equal(t, puzzle.Coord{X: 2, Y: 2}, puzzle.Center(anchor, puzzle.Large))
}

func TestRotatePoint(t *testing.T) {
	origin := puzzle.Coord{}
	up := puzzle.Coord{X: 0, Y: 1}

	assert.Equal(t, puzzle.Coord{X: 1, Y: 0}, puzzle.RotatePoint(origin, up, true))
	assert.Equal(t, puzzle.Coord{X: -1, Y: 0}, puzzle.RotatePoint(origin, up, false))

	t.Run("four quarter turns return home", func(t *testing.T) {
		pivot := puzzle.Coord{X: 7, Y: 5}
		start := puzzle.Coord{X: 9, Y: 2}
		for _, cw := range []bool{true, false} {
			q := start
			for range 4 {
				q = puzzle.RotatePoint(pivot, q, cw)
			}
			assert.Equal(t, start, q)
		}
	})

	t.Run("opposite turns cancel", func(t *testing.T) {
		pivot := puzzle.Coord{X: -3, Y: 4}
		q := puzzle.Coord{X: 2, Y: 11}
		assert.Equal(t, q, puzzle.RotatePoint(pivot, puzzle.RotatePoint(pivot, q, true), false))
	})
}

func TestDirection(t *testing.T) {
	assert.Equal(t, puzzle.DirRight, puzzle.DirUp.Rotate(true))
	assert.Equal(t, puzzle.DirUp, puzzle.DirLeft.Rotate(true))
	assert.Equal(t, puzzle.DirLeft, puzzle.DirUp.Rotate(false))
	assert.Equal(t, puzzle.DirDown, puzzle.DirUp.Opposite())
	assert.Equal(t, puzzle.DirRight, puzzle.DirLeft.Opposite())
	assert.Equal(t, puzzle.Coord{X: 0, Y: -1}, puzzle.DirDown.Vector())
	assert.Equal(t, "Left", puzzle.DirLeft.String())
}
