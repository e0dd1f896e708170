package debugui

import (
	"fmt"
	"reflect"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/fugufall/puzzle"
)

func NewPieceInspectorPanel() *PieceInspectorPanel {
	return &PieceInspectorPanel{selectedPieceId: puzzle.NoPiece}
}

func (pi *PieceInspectorPanel) Render(p *puzzle.Puzzle, selectedPieceId puzzle.PieceID) {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 320), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(420, 320), imgui.CondOnce)
	if !imgui.BeginV("Piece Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	pi.selectedPieceId = selectedPieceId

	if imgui.TreeNodeStr("Config") {
		renderValue(reflect.ValueOf(p.Config()))
		imgui.TreePop()
	}
	imgui.Separator()

	if pi.selectedPieceId == puzzle.NoPiece {
		imgui.Text("No piece selected")
		imgui.End()
		return
	}

	piece, ok := p.Piece(pi.selectedPieceId)
	if !ok {
		imgui.Text(fmt.Sprintf("Piece %d is not on the board", pi.selectedPieceId))
		imgui.End()
		return
	}

	imgui.TextColored(ColorVec4(piece.Color, 1), fmt.Sprintf("Piece %d", piece.ID))
	renderValue(reflect.ValueOf(piece))

	if imgui.TreeNodeStr("Footprint") {
		for _, c := range piece.Footprint() {
			imgui.BulletText(fmt.Sprintf("(%d, %d) -> %d", c.X, c.Y, p.At(c)))
		}
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Neighbors") {
		seen := make(map[puzzle.PieceID]bool)
		for _, c := range piece.Perimeter() {
			id := p.At(c)
			if id == puzzle.NoPiece || seen[id] {
				continue
			}
			seen[id] = true
			if neighbor, ok := p.Piece(id); ok {
				imgui.TextColored(ColorVec4(neighbor.Color, 1),
					fmt.Sprintf("%d %s %s", neighbor.ID, neighbor.Color, neighbor.Size))
			}
		}
		if len(seen) == 0 {
			imgui.Text("none")
		}
		imgui.TreePop()
	}

	imgui.End()
}

// renderValue shows the exported fields of a struct value read-only.
func renderValue(val reflect.Value) {
	for _, field := range globalReflectionCache.GetFields(val.Type()) {
		renderField(field.Name, val.Field(field.Index), field)
	}
}

func renderField(name string, val reflect.Value, field FieldInfo) {
	if !val.IsValid() {
		imgui.Text(fmt.Sprintf("%s: <invalid>", name))
		return
	}

	if field.Stringer {
		imgui.Text(fmt.Sprintf("%s: %s", name, val.Interface()))
		return
	}

	switch val.Kind() {
	case reflect.Bool:
		imgui.Text(fmt.Sprintf("%s: %t", name, val.Bool()))

	case reflect.Struct:
		if imgui.TreeNodeStr(name) {
			renderValue(val)
			imgui.TreePop()
		}

	case reflect.Array, reflect.Slice:
		imgui.Text(fmt.Sprintf("%s: [%d items]", name, val.Len()))

	default:
		imgui.Text(fmt.Sprintf("%s: %v", name, val.Interface()))
	}
}
