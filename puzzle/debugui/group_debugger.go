package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/fugufall/puzzle"
)

func NewGroupDebuggerPanel() *GroupDebuggerPanel {
	return &GroupDebuggerPanel{
		selectedColors: make(map[puzzle.Color]bool),
	}
}

func (gd *GroupDebuggerPanel) Render(p *puzzle.Puzzle) {
	imgui.SetNextWindowPosV(imgui.NewVec2(440, 440), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(360, 260), imgui.CondOnce)
	if !imgui.BeginV("Group Debugger", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.Text("Filter Colors:")
	imgui.SameLine()
	if imgui.Button("Clear All") {
		gd.selectedColors = make(map[puzzle.Color]bool)
	}
	for i, color := range puzzle.Palette {
		if i > 0 {
			imgui.SameLine()
		}
		selected := gd.selectedColors[color]
		imgui.PushStyleColorVec4(imgui.ColText, ColorVec4(color, 1))
		if imgui.Checkbox(color.String(), &selected) {
			if selected {
				gd.selectedColors[color] = true
			} else {
				delete(gd.selectedColors, color)
			}
		}
		imgui.PopStyleColor()
	}
	imgui.Checkbox("Eligible only", &gd.eligibleOnly)
	imgui.Separator()

	minSize := p.Config().MinGroupSize
	groups := gd.filter(p, p.Groups(), minSize)

	if len(groups) == 0 {
		imgui.Text("No groups")
		imgui.End()
		return
	}

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsScrollY
	if imgui.BeginTableV("GroupTable", 3, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Color")
		imgui.TableSetupColumn("Size")
		imgui.TableSetupColumn("Members")
		imgui.TableHeadersRow()

		for _, grp := range groups {
			first, _ := p.Piece(grp[0])

			imgui.TableNextRow()
			imgui.TableSetColumnIndex(0)
			imgui.TextColored(ColorVec4(first.Color, 1), first.Color.String())

			imgui.TableSetColumnIndex(1)
			if len(grp) >= minSize {
				imgui.TextColored(imgui.NewVec4(1.0, 0.4, 0.1, 1.0), fmt.Sprintf("%d / %d", len(grp), minSize))
			} else {
				imgui.Text(fmt.Sprintf("%d / %d", len(grp), minSize))
			}

			imgui.TableSetColumnIndex(2)
			imgui.Text(fmt.Sprintf("%v", []puzzle.PieceID(grp)))
		}

		imgui.EndTable()
	}

	imgui.End()
}

func (gd *GroupDebuggerPanel) filter(p *puzzle.Puzzle, groups []puzzle.Group, minSize int) []puzzle.Group {
	out := groups[:0]
	for _, grp := range groups {
		if gd.eligibleOnly && len(grp) < minSize {
			continue
		}
		if len(gd.selectedColors) > 0 {
			first, ok := p.Piece(grp[0])
			if !ok || !gd.selectedColors[first.Color] {
				continue
			}
		}
		out = append(out, grp)
	}
	return out
}
