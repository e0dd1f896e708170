package puzzle

import "slices"

// Grid is a fixed-size occupancy map from cell to piece id.
type Grid struct {
	width  int
	height int
	cells  []PieceID
}

// NewGrid creates an empty width×height grid.
func NewGrid(width, height int) *Grid {
	g := &Grid{
		width:  width,
		height: height,
		cells:  make([]PieceID, width*height),
	}
	g.Reset()
	return g
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

// OutOfBounds reports whether c lies outside the grid.
func (g *Grid) OutOfBounds(c Coord) bool {
	return c.X < 0 || c.Y < 0 || c.X >= g.width || c.Y >= g.height
}

// At returns the occupant of c, or NoPiece when c is empty or out of bounds.
func (g *Grid) At(c Coord) PieceID {
	if g.OutOfBounds(c) {
		return NoPiece
	}
	return g.cells[g.index(c)]
}

// Place writes id into every cell. Callers clear the piece's previous
// footprint first so partner cells are never overwritten.
func (g *Grid) Place(id PieceID, cells []Coord) {
	for _, c := range cells {
		if g.OutOfBounds(c) {
			assertf(false, "place %d out of bounds at %v", id, c)
			continue
		}
		idx := g.index(c)
		assertf(g.cells[idx] == NoPiece || g.cells[idx] == id,
			"place %d over %d at %v", id, g.cells[idx], c)
		g.cells[idx] = id
	}
}

// Clear empties the cells that still hold id and leaves every other cell alone.
func (g *Grid) Clear(id PieceID, cells []Coord) {
	for _, c := range cells {
		if g.OutOfBounds(c) {
			continue
		}
		idx := g.index(c)
		if g.cells[idx] == id {
			g.cells[idx] = NoPiece
		}
	}
}

// Free reports whether every cell is in bounds and either empty or held by one of owners.
func (g *Grid) Free(cells []Coord, owners ...PieceID) bool {
	for _, c := range cells {
		if g.OutOfBounds(c) {
			return false
		}
		id := g.cells[g.index(c)]
		if id != NoPiece && !slices.Contains(owners, id) {
			return false
		}
	}
	return true
}

// Reset empties every cell.
func (g *Grid) Reset() {
	for i := range g.cells {
		g.cells[i] = NoPiece
	}
}

// Cells returns a copy of the raw cell contents in row-major order, bottom row first.
func (g *Grid) Cells() []PieceID {
	return slices.Clone(g.cells)
}

// Restore overwrites the grid with cells previously returned by Cells.
func (g *Grid) Restore(cells []PieceID) {
	assertf(len(cells) == len(g.cells), "restore %d cells into %d", len(cells), len(g.cells))
	copy(g.cells, cells)
}

// Equal reports whether both grids have the same size and contents.
func (g *Grid) Equal(o *Grid) bool {
	return g.width == o.width && g.height == o.height && slices.Equal(g.cells, o.cells)
}

// Count returns the number of occupied cells.
func (g *Grid) Count() int {
	n := 0
	for _, id := range g.cells {
		if id != NoPiece {
			n++
		}
	}
	return n
}

func (g *Grid) index(c Coord) int {
	return c.Y*g.width + c.X
}
