package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/fugufall/puzzle"
)

// phases lists every phase in turn order for the stats table.
var phases = []puzzle.Phase{
	puzzle.PhaseSpawning,
	puzzle.PhaseFreeFalling,
	puzzle.PhaseLanded,
	puzzle.PhaseSettling,
	puzzle.PhaseMatching,
	puzzle.PhaseExploding,
	puzzle.PhaseWon,
	puzzle.PhaseLost,
}

func NewPerformanceStatsPanel(historyFrames int) *PerformanceStatsPanel {
	return &PerformanceStatsPanel{
		historyFrames: historyFrames,
		frameHistory:  make([]float32, historyFrames),
		frameIndex:    0,
	}
}

func (ps *PerformanceStatsPanel) Render(p *puzzle.Puzzle, scheduler *puzzle.Scheduler, deltaTime float32) {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 650), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(420, 300), imgui.CondOnce)
	if !imgui.BeginV("Performance Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	ps.frameHistory[ps.frameIndex] = deltaTime * 1000.0
	ps.frameIndex = (ps.frameIndex + 1) % ps.historyFrames

	stats := p.Stats()

	imgui.Text(fmt.Sprintf("Pairs: %d spawned, %d landed", stats.PairsSpawned, stats.PairsLanded))
	imgui.Text(fmt.Sprintf("Removed: %d pieces in %d groups", stats.PiecesRemoved, stats.GroupsMatched))
	imgui.Text(fmt.Sprintf("Chains: %d (max %d) | Undos: %d | Rejected: %d",
		stats.Chains, stats.MaxChain, stats.Undos, stats.Rejected))

	var avgFrameTime float32
	for _, ft := range ps.frameHistory {
		avgFrameTime += ft
	}
	avgFrameTime /= float32(ps.historyFrames)

	if avgFrameTime > 0 {
		imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avgFrameTime, 1000.0/avgFrameTime))
	}

	sched := scheduler.GetStats()
	imgui.Text(fmt.Sprintf("Frames: %d | Commands: %d (%d refused)", sched.Frames, sched.Commands, sched.Rejected))

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	imgui.PlotLinesFloatPtr("##frametime", &ps.frameHistory[0], int32(len(ps.frameHistory)))

	if imgui.TreeNodeStr("System Details") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("SystemStatsTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("System")
			imgui.TableSetupColumn("Runs")
			imgui.TableSetupColumn("Avg")
			imgui.TableSetupColumn("Max")
			imgui.TableHeadersRow()

			for _, sys := range sched.Systems {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(sys.Name)
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", sys.ExecutionCount))
				imgui.TableNextColumn()
				imgui.Text(sys.AvgDuration.String())
				imgui.TableNextColumn()
				imgui.Text(sys.MaxDuration.String())
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Phase Entries") {
		for _, ph := range phases {
			imgui.BulletText(fmt.Sprintf("%s: %d", ph, stats.Entered(ph)))
		}
		imgui.TreePop()
	}

	imgui.End()
}

type FrameTimer struct {
	lastFrameTime time.Time
}

func NewFrameTimer() *FrameTimer {
	return &FrameTimer{
		lastFrameTime: time.Now(),
	}
}

func (ft *FrameTimer) GetDeltaTime() float32 {
	now := time.Now()
	delta := float32(now.Sub(ft.lastFrameTime).Seconds())
	ft.lastFrameTime = now
	return delta
}
