package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/fugufall/puzzle"
)

var pieceColors = map[puzzle.Color][3]float32{
	puzzle.Red:    {0.90, 0.25, 0.25},
	puzzle.Green:  {0.30, 0.80, 0.35},
	puzzle.Yellow: {0.95, 0.85, 0.25},
	puzzle.Purple: {0.60, 0.35, 0.85},
	puzzle.Cyan:   {0.25, 0.80, 0.90},
	puzzle.Pink:   {0.95, 0.50, 0.75},
}

// ColorVec4 returns the display color of c with the given alpha.
func ColorVec4(c puzzle.Color, alpha float32) imgui.Vec4 {
	rgb, ok := pieceColors[c]
	if !ok {
		return imgui.NewVec4(0.5, 0.5, 0.5, alpha)
	}
	return imgui.NewVec4(rgb[0], rgb[1], rgb[2], alpha)
}

var phaseColors = map[puzzle.Phase]imgui.Vec4{
	puzzle.PhaseFreeFalling: imgui.NewVec4(0.0, 1.0, 0.0, 1.0),
	puzzle.PhaseLanded:      imgui.NewVec4(1.0, 0.8, 0.0, 1.0),
	puzzle.PhaseExploding:   imgui.NewVec4(1.0, 0.4, 0.1, 1.0),
	puzzle.PhaseWon:         imgui.NewVec4(0.3, 0.9, 1.0, 1.0),
	puzzle.PhaseLost:        imgui.NewVec4(1.0, 0.2, 0.2, 1.0),
}

func phaseColor(ph puzzle.Phase) imgui.Vec4 {
	if c, ok := phaseColors[ph]; ok {
		return c
	}
	return imgui.NewVec4(0.8, 0.8, 0.8, 1.0)
}
