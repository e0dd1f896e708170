package puzzle

import (
	"slices"

	"github.com/kamstrup/intmap"
)

// Group is a maximal set of same-colored pieces connected through their
// perimeter cells. Members are sorted by id.
type Group []PieceID

// FindConnectedGroups partitions every registry piece into color-connected
// groups. Roots are taken in ascending id order so the output is deterministic;
// the partition itself does not depend on the order.
func FindConnectedGroups(g *Grid, r *Registry) []Group {
	visited := intmap.NewSet[PieceID](r.Len())
	var groups []Group
	var stack []*Piece

	for _, id := range r.IDs() {
		if visited.Has(id) {
			continue
		}
		root, _ := r.Get(id)
		visited.Add(id)

		group := Group{id}
		stack = append(stack[:0], root)
		for len(stack) > 0 {
			cur := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			for _, c := range cur.Perimeter() {
				next := g.At(c)
				if next == NoPiece || visited.Has(next) {
					continue
				}
				np, ok := r.Get(next)
				if !ok || np.Color != root.Color {
					continue
				}
				visited.Add(next)
				group = append(group, next)
				stack = append(stack, np)
			}
		}

		slices.Sort(group)
		groups = append(groups, group)
	}
	return groups
}

// Eligible returns the groups with at least minSize members.
func Eligible(groups []Group, minSize int) []Group {
	var out []Group
	for _, grp := range groups {
		if len(grp) >= minSize {
			out = append(out, grp)
		}
	}
	return out
}
