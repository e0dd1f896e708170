package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/fugufall/puzzle"
)

var pieceStyles = map[puzzle.Color]tcell.Style{
	puzzle.Red:    tcell.StyleDefault.Foreground(tcell.ColorRed),
	puzzle.Green:  tcell.StyleDefault.Foreground(tcell.ColorGreen),
	puzzle.Yellow: tcell.StyleDefault.Foreground(tcell.ColorYellow),
	puzzle.Purple: tcell.StyleDefault.Foreground(tcell.ColorPurple),
	puzzle.Cyan:   tcell.StyleDefault.Foreground(tcell.ColorTeal),
	puzzle.Pink:   tcell.StyleDefault.Foreground(tcell.ColorFuchsia),
}

var (
	borderStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	textStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
)

// cellOrigin maps a board cell to its terminal position. Each board cell is
// two columns wide and row 0 is the bottom row.
func cellOrigin(c puzzle.Coord, height int) (x, y int) {
	return 1 + c.X*2, height - c.Y
}

func (g *Game) draw() {
	g.screen.Clear()

	p := g.puzzle
	w, h := p.Width(), p.Height()

	for y := 0; y <= h+1; y++ {
		g.screen.SetContent(0, y, '│', nil, borderStyle)
		g.screen.SetContent(1+w*2, y, '│', nil, borderStyle)
	}
	for x := 0; x <= w*2+1; x++ {
		g.screen.SetContent(x, h+1, '─', nil, borderStyle)
	}

	active, hasActive := p.ActivePair()
	scheduled := map[puzzle.PieceID]bool{}
	for _, id := range p.Scheduled() {
		scheduled[id] = true
	}

	for _, piece := range p.Pieces() {
		style := pieceStyles[piece.Color]
		glyph := '█'
		if scheduled[piece.ID] {
			glyph = '▒'
		}
		if hasActive && (piece.ID == active.Primary.ID || piece.ID == active.Secondary.ID) {
			style = style.Bold(true)
		}
		for _, c := range piece.Footprint() {
			x, y := cellOrigin(c, h)
			g.screen.SetContent(x, y, glyph, nil, style)
			g.screen.SetContent(x+1, y, glyph, nil, style)
		}
	}

	side := w*2 + 4
	g.drawText(side, 1, "NEXT")
	for i, pair := range p.Upcoming(3) {
		row := 3 + i*3
		g.screen.SetContent(side, row, '█', nil, pieceStyles[pair.Secondary.Color])
		g.screen.SetContent(side, row+1, '█', nil, pieceStyles[pair.Primary.Color])
	}

	stats := p.Stats()
	g.drawText(side, 13, fmt.Sprintf("%-12s", p.Phase()))
	g.drawText(side, 14, fmt.Sprintf("chain   %d", p.Chain()))
	g.drawText(side, 15, fmt.Sprintf("removed %d", stats.PiecesRemoved))
	g.drawText(side, 16, fmt.Sprintf("undo    %d", p.HistoryLen()))
	if p.Phase().Terminal() {
		g.drawText(side, 18, "r restart  esc quit")
	}

	g.screen.Show()
}

func (g *Game) drawText(x, y int, s string) {
	for i, r := range []rune(s) {
		g.screen.SetContent(x+i, y, r, nil, textStyle)
	}
}
