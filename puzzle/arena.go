package puzzle

const (
	arenaBlockSize = 64
)

// pieceArena owns every piece created for a puzzle, indexed by id.
// Pieces are stored in fixed-size blocks so pointers handed out stay valid
// while the arena grows. Nothing is freed until reset: removed pieces remain
// addressable so undo can bring them back.
type pieceArena struct {
	blocks []*[arenaBlockSize]Piece
	next   int
}

// alloc creates a piece with the next id.
func (a *pieceArena) alloc(color Color, primary bool) *Piece {
	index := a.next
	a.next++

	blockIdx := index / arenaBlockSize
	slotIdx := index % arenaBlockSize

	if blockIdx >= len(a.blocks) {
		a.blocks = append(a.blocks, new([arenaBlockSize]Piece))
	}

	p := &a.blocks[blockIdx][slotIdx]
	*p = Piece{
		ID:      PieceID(index),
		Color:   color,
		Size:    Medium,
		Primary: primary,
	}
	return p
}

// get returns the piece with the given id, or nil if it was never allocated.
func (a *pieceArena) get(id PieceID) *Piece {
	index := int(id)
	if index < 0 || index >= a.next {
		return nil
	}
	return &a.blocks[index/arenaBlockSize][index%arenaBlockSize]
}

// len returns the number of pieces allocated so far.
func (a *pieceArena) len() int {
	return a.next
}

// reset drops every piece and restarts ids from zero.
func (a *pieceArena) reset() {
	a.blocks = nil
	a.next = 0
}
