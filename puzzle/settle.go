package puzzle

// SettlePass drops every registry piece whose whole bottom edge is empty and in
// bounds by one cell, lowest pieces first, and returns the ids that moved.
func SettlePass(g *Grid, r *Registry) []PieceID {
	var moved []PieceID
	for _, p := range r.BottomUp() {
		if !g.Free(p.Edge(DirDown)) {
			continue
		}
		g.Clear(p.ID, p.Footprint())
		p.Anchor = p.Anchor.Add(DirDown.Vector())
		g.Place(p.ID, p.Footprint())
		moved = append(moved, p.ID)
	}
	return moved
}

// Settle repeats SettlePass until a pass moves nothing and returns the number
// of single-cell drops performed.
func Settle(g *Grid, r *Registry) int {
	total := 0
	for {
		n := len(SettlePass(g, r))
		if n == 0 {
			return total
		}
		total += n
	}
}
