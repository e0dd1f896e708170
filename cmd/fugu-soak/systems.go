package main

import (
	"math/rand/v2"

	"github.com/plus3/fugufall/puzzle"
	"go.uber.org/zap"
)

var playerCommands = []puzzle.Command{
	puzzle.Move(puzzle.DirLeft),
	puzzle.Move(puzzle.DirRight),
	puzzle.Move(puzzle.DirDown),
	puzzle.RotateCW(),
	puzzle.RotateCCW(),
	puzzle.InflatePrimary(),
	puzzle.InflateSecondary(),
	puzzle.InflateToward(puzzle.DirUp),
	puzzle.InflateToward(puzzle.DirRight),
	puzzle.InflateToward(puzzle.DirDown),
	puzzle.InflateToward(puzzle.DirLeft),
}

// RandomPlayerSystem queues at most one random command per frame while the
// puzzle accepts input.
type RandomPlayerSystem struct {
	rng      *rand.Rand
	undoRate float64
}

func (s *RandomPlayerSystem) Execute(frame *puzzle.Frame) {
	if !frame.Puzzle.InputUnlocked() || s.rng.IntN(3) != 0 {
		return
	}
	if s.rng.Float64() < s.undoRate {
		frame.Commands.Submit(puzzle.Undo())
		return
	}
	frame.Commands.Submit(playerCommands[s.rng.IntN(len(playerCommands))])
}

// InvariantSystem verifies the board after the clock advanced.
type InvariantSystem struct {
	log    *zap.Logger
	report *Report
}

func (s *InvariantSystem) Execute(frame *puzzle.Frame) {
	if err := frame.Puzzle.CheckInvariants(); err != nil {
		s.report.Violations++
		s.log.Error("invariant violated",
			zap.Int("game", s.report.Games+1),
			zap.String("phase", frame.Puzzle.Phase().String()),
			zap.Error(err))
	}
}

// GameOverSystem records finished games and starts the next one.
type GameOverSystem struct {
	log    *zap.Logger
	report *Report
	next   func() puzzle.Generator
}

func (s *GameOverSystem) Execute(frame *puzzle.Frame) {
	p := frame.Puzzle
	if !p.Phase().Terminal() {
		return
	}

	stats := p.Stats()
	s.report.Record(p.Phase(), stats)
	s.log.Debug("game over",
		zap.Int("game", s.report.Games),
		zap.String("phase", p.Phase().String()),
		zap.Int("spawned", stats.PairsSpawned),
		zap.Int("removed", stats.PiecesRemoved),
		zap.Int("maxChain", stats.MaxChain))

	frame.Commands.Defer(func() { p.Reset(s.next()) })
}
