package puzzle

import "fmt"

// PieceID identifies a piece for the lifetime of a puzzle. Ids are assigned in
// increasing order as pairs are generated.
type PieceID int32

// NoPiece marks an empty grid cell.
const NoPiece PieceID = -1

// Size is the side length of a piece's square footprint.
type Size uint8

const (
	Small  Size = 1
	Medium Size = 2
	Large  Size = 3
)

// PairVolume is the conserved total size of the two pieces of a pair.
const PairVolume = int(Small) + int(Large)

func (s Size) String() string {
	switch s {
	case Small:
		return "Small"
	case Medium:
		return "Medium"
	case Large:
		return "Large"
	}
	return fmt.Sprintf("Size(%d)", uint8(s))
}

// Color is the matching attribute of a piece.
type Color uint8

const (
	Red Color = iota
	Green
	Yellow
	Purple
	Cyan
	Pink
)

// Palette lists every color in declaration order.
var Palette = []Color{Red, Green, Yellow, Purple, Cyan, Pink}

var colorNames = [...]string{"Red", "Green", "Yellow", "Purple", "Cyan", "Pink"}

func (c Color) String() string {
	if int(c) < len(colorNames) {
		return colorNames[c]
	}
	return fmt.Sprintf("Color(%d)", uint8(c))
}

// Piece is one block of a pair.
type Piece struct {
	ID       PieceID
	Color    Color
	Size     Size
	Anchor   Coord
	Relative Direction
	Primary  bool
}

// Footprint returns the cells the piece covers.
func (p *Piece) Footprint() []Coord {
	return Footprint(p.Anchor, p.Size)
}

// Perimeter returns the cells bordering the piece.
func (p *Piece) Perimeter() []Coord {
	return Perimeter(p.Anchor, p.Size)
}

// Edge returns the perimeter cells on one side of the piece.
func (p *Piece) Edge(d Direction) []Coord {
	return EdgeCells(p.Anchor, p.Size, d)
}

// Center returns the piece's pivot cell.
func (p *Piece) Center() Coord {
	return Center(p.Anchor, p.Size)
}

// State captures the mutable geometry of the piece.
func (p *Piece) State() PieceState {
	return PieceState{Anchor: p.Anchor, Size: p.Size, Relative: p.Relative}
}

func (p *Piece) restore(s PieceState) {
	p.Anchor = s.Anchor
	p.Size = s.Size
	p.Relative = s.Relative
}

// PieceState is the part of a piece that moves, rotates and resizes.
type PieceState struct {
	Anchor   Coord
	Size     Size
	Relative Direction
}
