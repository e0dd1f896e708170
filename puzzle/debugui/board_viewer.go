package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/fugufall/puzzle"
)

func NewBoardViewerPanel(cellSize float32, showUpcoming int) *BoardViewerPanel {
	return &BoardViewerPanel{
		cellSize:     cellSize,
		showUpcoming: showUpcoming,
	}
}

func (bv *BoardViewerPanel) Render(p *puzzle.Puzzle) {
	imgui.SetNextWindowPosV(imgui.NewVec2(440, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(260, 420), imgui.CondOnce)
	if !imgui.BeginV("Board", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.TextColored(phaseColor(p.Phase()), p.Phase().String())
	imgui.SameLine()
	if p.InputUnlocked() {
		imgui.Text("input open")
	} else {
		imgui.Text("input locked")
	}
	imgui.Text(fmt.Sprintf("Chain: %d | Undo depth: %d", p.Chain(), p.HistoryLen()))
	if scheduled := p.Scheduled(); len(scheduled) > 0 {
		imgui.Text(fmt.Sprintf("Scheduled: %v", scheduled))
	}
	imgui.Separator()

	bv.drawGrid(p)

	if upcoming := p.Upcoming(bv.showUpcoming); len(upcoming) > 0 && imgui.TreeNodeStr("Upcoming") {
		for _, pair := range upcoming {
			imgui.TextColored(ColorVec4(pair.Primary.Color, 1), pair.Primary.Color.String())
			imgui.SameLine()
			imgui.TextColored(ColorVec4(pair.Secondary.Color, 1), pair.Secondary.Color.String())
		}
		imgui.TreePop()
	}

	imgui.End()
}

// drawGrid paints one rectangle per cell, top row first, then reserves the
// space so following widgets are laid out below it.
func (bv *BoardViewerPanel) drawGrid(p *puzzle.Puzzle) {
	drawList := imgui.WindowDrawList()
	origin := imgui.CursorScreenPos()
	empty := imgui.ColorU32Vec4(imgui.NewVec4(0.15, 0.15, 0.18, 1.0))

	for y := 0; y < p.Height(); y++ {
		for x := 0; x < p.Width(); x++ {
			color := empty
			if id := p.At(puzzle.Coord{X: x, Y: y}); id != puzzle.NoPiece {
				if piece, ok := p.Piece(id); ok {
					color = imgui.ColorU32Vec4(ColorVec4(piece.Color, 0.9))
				}
			}

			row := float32(p.Height() - 1 - y)
			minX := origin.X + float32(x)*bv.cellSize
			minY := origin.Y + row*bv.cellSize
			drawList.AddRectFilled(
				imgui.NewVec2(minX, minY),
				imgui.NewVec2(minX+bv.cellSize-1, minY+bv.cellSize-1),
				color,
			)
		}
	}

	imgui.Dummy(imgui.NewVec2(float32(p.Width())*bv.cellSize, float32(p.Height())*bv.cellSize))
}
