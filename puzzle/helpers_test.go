package puzzle_test

import (
	"testing"
	"time"

	"github.com/plus3/fugufall/puzzle"
)

// Common test fixtures
func small(id puzzle.PieceID, color puzzle.Color, x, y int) *puzzle.Piece {
	return &puzzle.Piece{ID: id, Color: color, Size: puzzle.Small, Anchor: puzzle.Coord{X: x, Y: y}}
}

func medium(id puzzle.PieceID, color puzzle.Color, x, y int) *puzzle.Piece {
	return &puzzle.Piece{ID: id, Color: color, Size: puzzle.Medium, Anchor: puzzle.Coord{X: x, Y: y}}
}

// board places pieces into a fresh grid and registry.
func board(width, height int, pieces ...*puzzle.Piece) (*puzzle.Grid, *puzzle.Registry) {
	g := puzzle.NewGrid(width, height)
	r := puzzle.NewRegistry()
	for _, p := range pieces {
		g.Place(p.ID, p.Footprint())
		r.Add(p)
	}
	return g, r
}

// verticalPair builds the spawn layout with the primary anchored at (x, y).
func verticalPair(g *puzzle.Grid, x, y int) puzzle.Pair {
	pair := puzzle.Pair{
		Primary: &puzzle.Piece{
			ID: 100, Color: puzzle.Red, Size: puzzle.Medium,
			Anchor: puzzle.Coord{X: x, Y: y}, Relative: puzzle.DirDown, Primary: true,
		},
		Secondary: &puzzle.Piece{
			ID: 101, Color: puzzle.Green, Size: puzzle.Medium,
			Anchor: puzzle.Coord{X: x, Y: y + 2}, Relative: puzzle.DirUp,
		},
	}
	g.Place(pair.Primary.ID, pair.Primary.Footprint())
	g.Place(pair.Secondary.ID, pair.Secondary.Footprint())
	return pair
}

func colors(primary, secondary puzzle.Color) puzzle.ColorPair {
	return puzzle.ColorPair{Primary: primary, Secondary: secondary}
}

func activeID(p *puzzle.Puzzle) puzzle.PieceID {
	pair, ok := p.ActivePair()
	if !ok {
		return puzzle.NoPiece
	}
	return pair.Primary.ID
}

// tickUntil advances p in 100ms steps until cond holds.
func tickUntil(t *testing.T, p *puzzle.Puzzle, cond func() bool) {
	t.Helper()
	for range 10000 {
		if cond() {
			return
		}
		p.AdvanceTick(100 * time.Millisecond)
	}
	t.Fatalf("condition not reached, phase %v", p.Phase())
}

type recorder struct {
	events []puzzle.Event
}

func (r *recorder) handle(ev puzzle.Event) {
	r.events = append(r.events, ev)
}

func (r *recorder) kinds() []puzzle.EventKind {
	out := make([]puzzle.EventKind, 0, len(r.events))
	for _, ev := range r.events {
		out = append(out, ev.Kind)
	}
	return out
}

func (r *recorder) count(kind puzzle.EventKind) int {
	n := 0
	for _, ev := range r.events {
		if ev.Kind == kind {
			n++
		}
	}
	return n
}

func (r *recorder) reset() {
	r.events = nil
}
