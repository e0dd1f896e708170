package puzzle_test

import (
	"math/rand/v2"
	"testing"

	"github.com/plus3/fugufall/puzzle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pairOf(primary, secondary puzzle.PieceID) puzzle.Pair {
	return puzzle.Pair{
		Primary:   &puzzle.Piece{ID: primary, Size: puzzle.Medium, Primary: true},
		Secondary: &puzzle.Piece{ID: secondary, Size: puzzle.Medium},
	}
}

func TestQueue(t *testing.T) {
	var q puzzle.Queue

	_, ok := q.PopFront()
	assert.False(t, ok)

	q.PushBack(pairOf(0, 1))
	q.PushBack(pairOf(2, 3))
	q.PushFront(pairOf(4, 5))
	assert.Equal(t, 3, q.Len())

	head, ok := q.Peek(0)
	require.True(t, ok)
	assert.Equal(t, puzzle.PieceID(4), head.Primary.ID)
	_, ok = q.Peek(3)
	assert.False(t, ok)

	states := q.States(2)
	require.Len(t, states, 2)
	assert.Equal(t, puzzle.PieceID(4), states[0].Primary.ID)
	assert.Equal(t, puzzle.PieceID(0), states[1].Primary.ID)
	assert.Len(t, q.States(-1), 3)
	assert.Len(t, q.States(10), 3)

	var order []puzzle.PieceID
	for q.Len() > 0 {
		p, _ := q.PopFront()
		order = append(order, p.Primary.ID)
	}
	assert.Equal(t, []puzzle.PieceID{4, 0, 2}, order)

	q.PushBack(pairOf(6, 7))
	q.Clear()
	assert.Equal(t, 0, q.Len())
}

func TestSequence(t *testing.T) {
	gen := puzzle.Sequence(colors(puzzle.Red, puzzle.Green), colors(puzzle.Cyan, puzzle.Cyan))

	first, ok := gen.Next()
	require.True(t, ok)
	assert.Equal(t, colors(puzzle.Red, puzzle.Green), first)

	second, ok := gen.Next()
	require.True(t, ok)
	assert.Equal(t, puzzle.Cyan, second.Secondary)

	_, ok = gen.Next()
	assert.False(t, ok)
	_, ok = gen.Next()
	assert.False(t, ok)
}

func TestRandomColors(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	gen := puzzle.RandomColors(rng, 50, puzzle.Red, puzzle.Pink)

	count := 0
	for {
		c, ok := gen.Next()
		if !ok {
			break
		}
		count++
		assert.Contains(t, []puzzle.Color{puzzle.Red, puzzle.Pink}, c.Primary)
		assert.Contains(t, []puzzle.Color{puzzle.Red, puzzle.Pink}, c.Secondary)
	}
	assert.Equal(t, 50, count)

	t.Run("same seed same pairs", func(t *testing.T) {
		a := puzzle.RandomColors(rand.New(rand.NewPCG(7, 7)), 20)
		b := puzzle.RandomColors(rand.New(rand.NewPCG(7, 7)), 20)
		for range 20 {
			ca, _ := a.Next()
			cb, _ := b.Next()
			assert.Equal(t, ca, cb)
		}
	})
}
