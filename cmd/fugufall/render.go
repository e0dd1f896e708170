package main

import (
	"fmt"
	"image/color"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/fugufall/puzzle"
)

var pieceColors = map[puzzle.Color]color.RGBA{
	puzzle.Red:    {230, 64, 64, 255},
	puzzle.Green:  {76, 204, 89, 255},
	puzzle.Yellow: {242, 217, 64, 255},
	puzzle.Purple: {153, 89, 217, 255},
	puzzle.Cyan:   {64, 204, 230, 255},
	puzzle.Pink:   {242, 128, 191, 255},
}

var (
	backgroundColor = color.RGBA{24, 24, 32, 255}
	gridColor       = color.RGBA{40, 40, 52, 255}
	activeOutline   = color.RGBA{255, 255, 255, 255}
	scheduledColor  = color.RGBA{255, 255, 255, 200}
)

type rect struct {
	X, Y, W, H float32
}

// BoardRenderer draws the puzzle board with row 0 at the bottom.
type BoardRenderer struct {
	Width, Height int
	CellSize      float32
	OriginX       float32
	OriginY       float32
}

func NewBoardRenderer(width, height int, cellSize float32) *BoardRenderer {
	return &BoardRenderer{
		Width:    width,
		Height:   height,
		CellSize: cellSize,
		OriginX:  cellSize,
		OriginY:  cellSize,
	}
}

// pieceRect returns the screen rectangle covered by a piece.
func (r *BoardRenderer) pieceRect(piece puzzle.Piece) rect {
	side := float32(piece.Size) * r.CellSize
	return rect{
		X: r.OriginX + float32(piece.Anchor.X)*r.CellSize,
		Y: r.OriginY + float32(r.Height-piece.Anchor.Y-int(piece.Size))*r.CellSize,
		W: side,
		H: side,
	}
}

func (r *BoardRenderer) Draw(screen *ebiten.Image, p *puzzle.Puzzle) {
	screen.Fill(backgroundColor)

	boardW := float32(r.Width) * r.CellSize
	boardH := float32(r.Height) * r.CellSize
	vector.DrawFilledRect(screen, r.OriginX, r.OriginY, boardW, boardH, gridColor, false)

	active, hasActive := p.ActivePair()
	scheduled := p.Scheduled()

	for _, piece := range p.Pieces() {
		pr := r.pieceRect(piece)
		c := pieceColors[piece.Color]
		if slices.Contains(scheduled, piece.ID) {
			c = scheduledColor
		}
		vector.DrawFilledRect(screen, pr.X+1, pr.Y+1, pr.W-2, pr.H-2, c, false)

		if hasActive && (piece.ID == active.Primary.ID || piece.ID == active.Secondary.ID) {
			vector.StrokeRect(screen, pr.X+1, pr.Y+1, pr.W-2, pr.H-2, 2, activeOutline, false)
		}
	}

	r.drawUpcoming(screen, p.Upcoming(3))

	stats := p.Stats()
	status := fmt.Sprintf("%s  chain %d  removed %d  undo %d",
		p.Phase(), p.Chain(), stats.PiecesRemoved, p.HistoryLen())
	ebitenutil.DebugPrintAt(screen, status, int(r.OriginX), int(r.OriginY+boardH)+8)

	if p.Phase().Terminal() {
		ebitenutil.DebugPrintAt(screen, "R to restart", int(r.OriginX), int(r.OriginY+boardH)+24)
	}
}

func (r *BoardRenderer) drawUpcoming(screen *ebiten.Image, pairs []puzzle.PairState) {
	x := r.OriginX + float32(r.Width+1)*r.CellSize
	ebitenutil.DebugPrintAt(screen, "NEXT", int(x), int(r.OriginY))

	small := r.CellSize / 2
	for i, pair := range pairs {
		y := r.OriginY + 20 + float32(i)*(small*3)
		vector.DrawFilledRect(screen, x, y+small, small, small, pieceColors[pair.Primary.Color], false)
		vector.DrawFilledRect(screen, x, y, small, small, pieceColors[pair.Secondary.Color], false)
	}
}
