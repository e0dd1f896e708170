package puzzle

import (
	"errors"
	"fmt"
)

// CheckInvariants verifies that the grid and the pieces agree. It returns nil
// for a consistent puzzle and otherwise joins every violation found.
func (p *Puzzle) CheckInvariants() error {
	var errs []error

	owners := make(map[PieceID]int, p.registry.Len()+2)
	check := func(piece *Piece, where string) {
		if _, dup := owners[piece.ID]; dup {
			errs = append(errs, fmt.Errorf("piece %d appears twice (%s)", piece.ID, where))
			return
		}
		owners[piece.ID] = int(piece.Size) * int(piece.Size)
		for _, c := range piece.Footprint() {
			if p.grid.OutOfBounds(c) {
				errs = append(errs, fmt.Errorf("piece %d out of bounds at %v", piece.ID, c))
				continue
			}
			if got := p.grid.At(c); got != piece.ID {
				errs = append(errs, fmt.Errorf("piece %d covers %v but grid holds %d", piece.ID, c, got))
			}
		}
	}

	for _, id := range p.registry.IDs() {
		piece, _ := p.registry.Get(id)
		check(piece, "registry")
	}
	if !p.pair.IsEmpty() {
		check(p.pair.Primary, "pair")
		check(p.pair.Secondary, "pair")
		if sum := int(p.pair.Primary.Size) + int(p.pair.Secondary.Size); sum != PairVolume {
			errs = append(errs, fmt.Errorf("pair %d/%d sizes sum to %d", p.pair.Primary.ID, p.pair.Secondary.ID, sum))
		}
	}

	counted := make(map[PieceID]int, len(owners))
	for y := range p.grid.Height() {
		for x := range p.grid.Width() {
			id := p.grid.At(Coord{X: x, Y: y})
			if id == NoPiece {
				continue
			}
			if _, ok := owners[id]; !ok {
				errs = append(errs, fmt.Errorf("cell %v holds inactive piece %d", Coord{X: x, Y: y}, id))
				continue
			}
			counted[id]++
		}
	}
	for id, want := range owners {
		if got := counted[id]; got != want {
			errs = append(errs, fmt.Errorf("piece %d owns %d cells, want %d", id, got, want))
		}
	}

	return errors.Join(errs...)
}

func (p *Puzzle) checkInvariants() {
	if !debugAssertions {
		return
	}
	err := p.CheckInvariants()
	assertf(err == nil, "%v", err)
}
