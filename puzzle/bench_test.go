package puzzle_test

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/plus3/fugufall/puzzle"
)

// fullBoard covers a width×height grid with small pieces of random colors.
func fullBoard(width, height int, rng *rand.Rand) (*puzzle.Grid, *puzzle.Registry) {
	pieces := make([]*puzzle.Piece, 0, width*height)
	for y := range height {
		for x := range width {
			id := puzzle.PieceID(y*width + x)
			pieces = append(pieces, small(id, puzzle.Palette[rng.IntN(3)], x, y))
		}
	}
	return board(width, height, pieces...)
}

func BenchmarkFindConnectedGroups(b *testing.B) {
	g, r := fullBoard(14, 16, rand.New(rand.NewPCG(1, 1)))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = puzzle.FindConnectedGroups(g, r)
	}
}

func BenchmarkSettle(b *testing.B) {
	rng := rand.New(rand.NewPCG(2, 2))

	for i := 0; i < b.N; i++ {
		b.StopTimer()
		_, r := fullBoard(14, 8, rng)
		g := puzzle.NewGrid(14, 16)
		for _, p := range r.BottomUp() {
			p.Anchor.Y += 8
			g.Place(p.ID, p.Footprint())
		}
		b.StartTimer()

		puzzle.Settle(g, r)
	}
}

func BenchmarkAdvanceTick(b *testing.B) {
	rng := rand.New(rand.NewPCG(3, 3))
	p, err := puzzle.New(puzzle.DefaultConfig(), puzzle.RandomColors(rng, 1<<30))
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if p.Phase().Terminal() {
			p.Reset(puzzle.RandomColors(rng, 1<<30))
		}
		p.AdvanceTick(250 * time.Millisecond)
	}
}
