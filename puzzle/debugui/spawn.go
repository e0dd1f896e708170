package debugui

import "github.com/plus3/fugufall/puzzle"

// Attach adds the standard set of windows for p to system.
func Attach(system *ImguiSystem, p *puzzle.Puzzle, scheduler *puzzle.Scheduler) {
	browser := NewPieceBrowserPanel(100)
	inspector := NewPieceInspectorPanel()
	board := NewBoardViewerPanel(12, 4)
	groups := NewGroupDebuggerPanel()
	perf := NewPerformanceStatsPanel(120)
	timer := NewFrameTimer()

	system.Items = append(system.Items,
		ImguiItem{Render: func() { browser.Render(p) }},
		ImguiItem{Render: func() { inspector.Render(p, browser.SelectedPiece()) }},
		ImguiItem{Render: func() { board.Render(p) }},
		ImguiItem{Render: func() { groups.Render(p) }},
		ImguiItem{Render: func() { perf.Render(p, scheduler, timer.GetDeltaTime()) }},
	)
}
