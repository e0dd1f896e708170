package puzzle

// Coord is a cell coordinate. The origin is the bottom-left cell and Y grows upward.
type Coord struct {
	X, Y int
}

// Add returns the componentwise sum of two coordinates.
func (c Coord) Add(o Coord) Coord {
	return Coord{X: c.X + o.X, Y: c.Y + o.Y}
}

// Direction names one of the four sides of a block. It doubles as the movement
// direction of a pair and as the relative position tag of a piece inside its pair.
type Direction uint8

const (
	DirUp Direction = iota
	DirRight
	DirDown
	DirLeft
)

var directionNames = [...]string{"Up", "Right", "Down", "Left"}

func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return "Direction(?)"
}

// Vector returns the unit step for the direction.
func (d Direction) Vector() Coord {
	switch d {
	case DirUp:
		return Coord{0, 1}
	case DirRight:
		return Coord{1, 0}
	case DirDown:
		return Coord{0, -1}
	case DirLeft:
		return Coord{-1, 0}
	}
	return Coord{}
}

// Rotate returns the direction a quarter turn away.
// Clockwise follows Up, Right, Down, Left.
func (d Direction) Rotate(clockwise bool) Direction {
	if clockwise {
		return (d + 1) % 4
	}
	return (d + 3) % 4
}

// Opposite returns the direction facing away from d.
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

// Footprint returns the s×s cells covered by a block anchored at its bottom-left cell.
func Footprint(anchor Coord, s Size) []Coord {
	dim := int(s)
	cells := make([]Coord, 0, dim*dim)
	for i := 0; i < dim; i++ {
		for j := 0; j < dim; j++ {
			cells = append(cells, Coord{anchor.X + i, anchor.Y + j})
		}
	}
	return cells
}

// Perimeter returns the cells directly outside each edge of the block: for every
// unit step along an edge, the cell below, left, above and right of it.
func Perimeter(anchor Coord, s Size) []Coord {
	dim := int(s)
	cells := make([]Coord, 0, dim*4)
	for i := 0; i < dim; i++ {
		cells = append(cells,
			Coord{anchor.X + i, anchor.Y - 1},
			Coord{anchor.X - 1, anchor.Y + i},
			Coord{anchor.X + i, anchor.Y + dim},
			Coord{anchor.X + dim, anchor.Y + i},
		)
	}
	return cells
}

// EdgeCells returns the perimeter cells along a single side of the block.
func EdgeCells(anchor Coord, s Size, d Direction) []Coord {
	dim := int(s)
	cells := make([]Coord, 0, dim)
	for i := 0; i < dim; i++ {
		switch d {
		case DirDown:
			cells = append(cells, Coord{anchor.X + i, anchor.Y - 1})
		case DirLeft:
			cells = append(cells, Coord{anchor.X - 1, anchor.Y + i})
		case DirUp:
			cells = append(cells, Coord{anchor.X + i, anchor.Y + dim})
		case DirRight:
			cells = append(cells, Coord{anchor.X + dim, anchor.Y + i})
		}
	}
	return cells
}

// Center returns the rotation pivot cell of a block.
func Center(anchor Coord, s Size) Coord {
	off := (int(s) - 1) / 2
	return Coord{anchor.X + off, anchor.Y + off}
}

// RotatePoint turns q a quarter turn around pivot p using integer arithmetic only.
func RotatePoint(p, q Coord, clockwise bool) Coord {
	if clockwise {
		return Coord{X: q.Y - p.Y + p.X, Y: p.X - q.X + p.Y}
	}
	return Coord{X: p.Y - q.Y + p.X, Y: q.X - p.X + p.Y}
}

// midpoint rounds toward negative infinity.
func midpoint(a, b Coord) Coord {
	return Coord{X: floorDiv(a.X+b.X, 2), Y: floorDiv(a.Y+b.Y, 2)}
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
