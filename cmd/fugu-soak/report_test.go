package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/plus3/fugufall/puzzle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsFinalize(t *testing.T) {
	s := Stats{Samples: []time.Duration{3 * time.Millisecond, time.Millisecond, 5 * time.Millisecond}}
	s.Finalize()

	assert.Equal(t, time.Millisecond, s.Min)
	assert.Equal(t, 5*time.Millisecond, s.Max)
	assert.Equal(t, 3*time.Millisecond, s.Avg)
	assert.Equal(t, 3*time.Millisecond, s.P99)
	assert.Equal(t, 3*time.Millisecond, s.Samples[0], "samples keep their order")

	var empty Stats
	empty.Finalize()
	assert.Zero(t, empty.Avg)
}

func TestReportRecord(t *testing.T) {
	var r Report
	r.Record(puzzle.PhaseWon, puzzle.Stats{PairsSpawned: 4, PiecesRemoved: 8, MaxChain: 2})
	r.Record(puzzle.PhaseLost, puzzle.Stats{PairsSpawned: 10, Undos: 3, MaxChain: 1})

	assert.Equal(t, 2, r.Games)
	assert.Equal(t, 1, r.Wins)
	assert.Equal(t, 1, r.Losses)
	assert.Equal(t, 14, r.PairsSpawned)
	assert.Equal(t, 8, r.PiecesRemoved)
	assert.Equal(t, 3, r.Undos)
	assert.Equal(t, 2, r.MaxChain)
}

func TestReportGenerate(t *testing.T) {
	r := &Report{
		Duration: time.Second,
		Seed:     7,
		Games:    3,
		Wins:     1,
		Losses:   2,
		Scheduler: puzzle.SchedulerStats{
			Frames:   10,
			Commands: 4,
			Rejected: 1,
			Systems:  []puzzle.SystemStats{{Name: "TickSystem", ExecutionCount: 10}},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, r.Generate(&buf))

	out := buf.String()
	assert.Contains(t, out, "**Played:** 3 (1 won, 2 lost)")
	assert.Contains(t, out, "- TickSystem: avg 0s, max 0s over 10 runs")
	assert.Contains(t, out, "**Commands:** 4 over 10 frames (1 refused)")
	assert.NotContains(t, out, "GC Pause Durations")
}
