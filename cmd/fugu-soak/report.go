package main

import (
	"fmt"
	"io"
	"runtime"
	"slices"
	"text/template"
	"time"

	"github.com/plus3/fugufall/puzzle"
)

type Report struct {
	// Configuration
	Duration     time.Duration
	Seed         uint64
	Step         time.Duration
	PairsPerGame int

	// Games
	Games         int
	Wins          int
	Losses        int
	PairsSpawned  int
	PiecesRemoved int
	GroupsMatched int
	MaxChain      int
	Undos         int
	Rejected      int
	Violations    int

	// Results
	TotalUpdates   int64
	TotalTime      time.Duration
	SimulatedTime  time.Duration
	UpdateTime     Stats
	Scheduler      puzzle.SchedulerStats
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
}

// Record folds the counters of a finished game into the report.
func (r *Report) Record(outcome puzzle.Phase, stats puzzle.Stats) {
	r.Games++
	switch outcome {
	case puzzle.PhaseWon:
		r.Wins++
	case puzzle.PhaseLost:
		r.Losses++
	}
	r.PairsSpawned += stats.PairsSpawned
	r.PiecesRemoved += stats.PiecesRemoved
	r.GroupsMatched += stats.GroupsMatched
	r.Undos += stats.Undos
	r.Rejected += stats.Rejected
	r.MaxChain = max(r.MaxChain, stats.MaxChain)
}

// Stats summarizes frame durations.
type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	P99     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	sorted := slices.Clone(s.Samples)
	slices.Sort(sorted)

	var total time.Duration
	for _, sample := range sorted {
		total += sample
	}
	s.Min = sorted[0]
	s.Max = sorted[len(sorted)-1]
	s.Avg = total / time.Duration(len(sorted))
	s.P99 = sorted[(len(sorted)-1)*99/100]
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Puzzle Soak Report

## Configuration
- **Run Duration:** {{.Duration}}
- **Seed:** {{.Seed}}
- **Step:** {{.Step}}
- **Pairs per Game:** {{.PairsPerGame}}

## Games
- **Played:** {{.Games}} ({{.Wins}} won, {{.Losses}} lost)
- **Pairs Spawned:** {{.PairsSpawned}}
- **Pieces Removed:** {{.PiecesRemoved}} in {{.GroupsMatched}} groups
- **Longest Chain:** {{.MaxChain}}
- **Undos:** {{.Undos}}
- **Rejected Commands:** {{.Rejected}}
- **Invariant Violations:** {{.Violations}}

## Performance Results
- **Total Updates:** {{.TotalUpdates}}
- **Total Test Time:** {{.TotalTime}}
- **Simulated Time:** {{.SimulatedTime}}
- **Update Time (Frame):**
  - **Avg:** {{.UpdateTime.Avg}}
  - **Min:** {{.UpdateTime.Min}}
  - **P99:** {{.UpdateTime.P99}}
  - **Max:** {{.UpdateTime.Max}}
- **Commands:** {{.Scheduler.Commands}} over {{.Scheduler.Frames}} frames ({{.Scheduler.Rejected}} refused)
{{range .Scheduler.Systems}}- {{.Name}}: avg {{.AvgDuration}}, max {{.MaxDuration}} over {{.ExecutionCount}} runs
{{end}}
## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}

{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
- **Num GC Cycles:** {{ usub .MemStatsEnd.NumGC .MemStatsStart.NumGC }}
{{end}}
`

	fm := template.FuncMap{
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"ns": func(ns uint64) string {
			return time.Duration(ns).String()
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return fmt.Errorf("parse report template: %w", err)
	}

	return tmpl.Execute(w, r)
}
