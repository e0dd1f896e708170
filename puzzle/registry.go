package puzzle

import (
	"cmp"
	"iter"
	"slices"

	"github.com/kamstrup/intmap"
)

// Registry holds the pieces resting in the grid, keyed by id. The active pair
// and removed pieces are not members.
type Registry struct {
	pieces *intmap.Map[PieceID, *Piece]
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		pieces: intmap.New[PieceID, *Piece](64),
	}
}

func (r *Registry) Add(p *Piece) {
	r.pieces.Put(p.ID, p)
}

// Remove drops id and reports whether it was a member.
func (r *Registry) Remove(id PieceID) bool {
	return r.pieces.Del(id)
}

func (r *Registry) Get(id PieceID) (*Piece, bool) {
	return r.pieces.Get(id)
}

func (r *Registry) Has(id PieceID) bool {
	return r.pieces.Has(id)
}

func (r *Registry) Len() int {
	return r.pieces.Len()
}

func (r *Registry) Clear() {
	r.pieces.Clear()
}

// All iterates members in hash order.
func (r *Registry) All() iter.Seq2[PieceID, *Piece] {
	return r.pieces.All()
}

// IDs returns member ids in ascending order.
func (r *Registry) IDs() []PieceID {
	ids := slices.Collect(r.pieces.Keys())
	slices.Sort(ids)
	return ids
}

// BottomUp returns members ordered lowest row first, then by column and id.
func (r *Registry) BottomUp() []*Piece {
	pieces := slices.Collect(r.pieces.Values())
	slices.SortFunc(pieces, func(a, b *Piece) int {
		return cmp.Or(
			cmp.Compare(a.Anchor.Y, b.Anchor.Y),
			cmp.Compare(a.Anchor.X, b.Anchor.X),
			cmp.Compare(a.ID, b.ID),
		)
	})
	return pieces
}
