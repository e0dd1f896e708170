package puzzle

import "github.com/kamstrup/intmap"

// Snapshot is the puzzle as it stood right before a pair was activated.
// It is never modified after creation.
type Snapshot struct {
	cells  []PieceID
	active []PieceID
	states *intmap.Map[PieceID, PieceState]
	pair   [2]PieceID
	spawn  [2]PieceState
}

func takeSnapshot(g *Grid, r *Registry, spawning Pair) *Snapshot {
	s := &Snapshot{
		cells:  g.Cells(),
		active: r.IDs(),
		states: intmap.New[PieceID, PieceState](r.Len()),
		pair:   [2]PieceID{spawning.Primary.ID, spawning.Secondary.ID},
		spawn:  [2]PieceState{spawning.Primary.State(), spawning.Secondary.State()},
	}
	for id, p := range r.All() {
		s.states.Put(id, p.State())
	}
	return s
}

// Cells returns a copy of the grid contents captured by the snapshot.
func (s *Snapshot) Cells() []PieceID {
	out := make([]PieceID, len(s.cells))
	copy(out, s.cells)
	return out
}

// Active returns the ids that were resting in the grid, ascending.
func (s *Snapshot) Active() []PieceID {
	out := make([]PieceID, len(s.active))
	copy(out, s.active)
	return out
}

// Pair returns the ids of the pair that was being activated.
func (s *Snapshot) Pair() (primary, secondary PieceID) {
	return s.pair[0], s.pair[1]
}

// History is the undo stack, newest entry last.
type History struct {
	entries []*Snapshot
}

func (h *History) Push(s *Snapshot) {
	h.entries = append(h.entries, s)
}

// Pop removes and returns the newest snapshot.
func (h *History) Pop() (*Snapshot, bool) {
	if len(h.entries) == 0 {
		return nil, false
	}
	s := h.entries[len(h.entries)-1]
	h.entries[len(h.entries)-1] = nil
	h.entries = h.entries[:len(h.entries)-1]
	return s, true
}

// Peek returns the newest snapshot without removing it.
func (h *History) Peek() (*Snapshot, bool) {
	if len(h.entries) == 0 {
		return nil, false
	}
	return h.entries[len(h.entries)-1], true
}

func (h *History) Len() int {
	return len(h.entries)
}

func (h *History) Clear() {
	clear(h.entries)
	h.entries = h.entries[:0]
}
