package puzzle

import (
	"context"
	"reflect"
	"time"
)

// System is one stage of a frame: input polling, advancing the clock,
// rendering. Systems may keep state between frames.
type System interface {
	Execute(frame *Frame)
}

// SystemFunc adapts a function to System.
type SystemFunc func(frame *Frame)

func (f SystemFunc) Execute(frame *Frame) { f(frame) }

// SchedulerStats summarizes the frames a scheduler has run.
type SchedulerStats struct {
	Frames   int64
	Commands int64 // commands flushed to the puzzle
	Rejected int64 // of which the puzzle refused
	Systems  []SystemStats
}

// SystemStats are the timings of one registered system.
type SystemStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	TotalDuration  time.Duration
}

func (s *SystemStats) record(d time.Duration) {
	if s.ExecutionCount == 0 || d < s.MinDuration {
		s.MinDuration = d
	}
	s.MaxDuration = max(s.MaxDuration, d)
	s.ExecutionCount++
	s.TotalDuration += d
}

// Scheduler runs systems against a puzzle in registration order and applies
// the commands they queued once every system has run.
type Scheduler struct {
	puzzle   *Puzzle
	commands *Commands
	systems  []System
	stats    SchedulerStats
}

// NewScheduler creates a scheduler driving p.
func NewScheduler(p *Puzzle) *Scheduler {
	return &Scheduler{
		puzzle:   p,
		commands: newCommands(),
	}
}

// Puzzle returns the puzzle being driven.
func (s *Scheduler) Puzzle() *Puzzle {
	return s.puzzle
}

// Register appends a system to the frame. The system's type name labels its stats.
func (s *Scheduler) Register(system System) {
	s.systems = append(s.systems, system)
	s.stats.Systems = append(s.stats.Systems, SystemStats{Name: systemName(system)})
}

func systemName(system System) string {
	t := reflect.TypeOf(system)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Name() != "" {
		return t.Name()
	}
	return t.String()
}

// Once executes all registered systems once with the given delta time in
// seconds and returns the results of the commands they queued.
func (s *Scheduler) Once(dt float64) []error {
	frame := newFrame(dt, s.puzzle, s.commands)

	for i, system := range s.systems {
		start := time.Now()
		system.Execute(frame)
		s.stats.Systems[i].record(time.Since(start))
	}

	results := frame.Commands.Flush(s.puzzle)

	s.stats.Frames++
	s.stats.Commands += int64(len(results))
	for _, err := range results {
		if err != nil {
			s.stats.Rejected++
		}
	}
	return results
}

// Run executes frames at the given interval, passing the wall-clock time
// since the previous frame, until ctx is cancelled.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			s.Once(now.Sub(last).Seconds())
			last = now
		}
	}
}

// GetStats returns a copy of the scheduler's counters with averages filled in.
func (s *Scheduler) GetStats() SchedulerStats {
	out := s.stats
	out.Systems = make([]SystemStats, len(s.stats.Systems))
	for i, sys := range s.stats.Systems {
		if sys.ExecutionCount > 0 {
			sys.AvgDuration = sys.TotalDuration / time.Duration(sys.ExecutionCount)
		}
		out.Systems[i] = sys
	}
	return out
}

// TickSystem advances the puzzle clock by the frame's delta time.
type TickSystem struct {
	// Paused stops the clock without stopping the frame.
	Paused bool
}

func (s *TickSystem) Execute(frame *Frame) {
	if s.Paused {
		return
	}
	frame.Puzzle.AdvanceTick(frame.Elapsed())
}
