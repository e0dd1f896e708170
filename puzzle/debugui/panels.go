package debugui

import "github.com/plus3/fugufall/puzzle"

type PieceBrowserPanel struct {
	cache           *PieceBrowserCache
	selectedPieceId puzzle.PieceID
	filterText      string
	maxRowsPerPage  int
	currentPage     int
}

type PieceInspectorPanel struct {
	selectedPieceId puzzle.PieceID
}

type BoardViewerPanel struct {
	cellSize     float32
	showUpcoming int
}

type PerformanceStatsPanel struct {
	historyFrames int
	frameHistory  []float32
	frameIndex    int
}

type GroupDebuggerPanel struct {
	selectedColors map[puzzle.Color]bool
	eligibleOnly   bool
}
