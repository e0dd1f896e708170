package main

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/fugufall/puzzle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandFor(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want puzzle.Command
		ok   bool
	}{
		{"arrow left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), puzzle.Move(puzzle.DirLeft), true},
		{"arrow down", tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), puzzle.Move(puzzle.DirDown), true},
		{"rotate", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), puzzle.RotateCW(), true},
		{"inflate toward", tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone), puzzle.InflateToward(puzzle.DirLeft), true},
		{"undo", tcell.NewEventKey(tcell.KeyRune, 'u', tcell.ModNone), puzzle.Undo(), true},
		{"arrow up is unbound", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), puzzle.Command{}, false},
		{"unbound rune", tcell.NewEventKey(tcell.KeyRune, 'k', tcell.ModNone), puzzle.Command{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := commandFor(tt.ev)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestInputSystemDrainsQueue(t *testing.T) {
	p, err := puzzle.New(puzzle.DefaultConfig(), puzzle.Sequence(
		puzzle.ColorPair{Primary: puzzle.Red, Secondary: puzzle.Green},
	))
	require.NoError(t, err)

	input := &InputSystem{}
	scheduler := puzzle.NewScheduler(p)
	scheduler.Register(&puzzle.TickSystem{})
	scheduler.Register(input)

	scheduler.Once(0)
	require.Equal(t, puzzle.PhaseFreeFalling, p.Phase())

	input.Queue = append(input.Queue, puzzle.Move(puzzle.DirLeft), puzzle.Move(puzzle.DirLeft))
	errs := scheduler.Once(0)

	assert.Len(t, errs, 2)
	assert.Empty(t, input.Queue)
	assert.Equal(t, 2, p.Stats().Moves)
}

func TestEffectFor(t *testing.T) {
	assert.Len(t, effectFor(puzzle.Event{Kind: puzzle.EventPairMoved}), 1)
	assert.Nil(t, effectFor(puzzle.Event{Kind: puzzle.EventPhaseChanged}))

	first := effectFor(puzzle.Event{Kind: puzzle.EventGroupMatched, Chain: 1})
	second := effectFor(puzzle.Event{Kind: puzzle.EventGroupMatched, Chain: 2})
	require.Len(t, first, 1)
	require.Len(t, second, 1)
	assert.Greater(t, second[0].freq, first[0].freq)
}

func TestCellOrigin(t *testing.T) {
	x, y := cellOrigin(puzzle.Coord{X: 0, Y: 0}, 16)
	assert.Equal(t, 1, x)
	assert.Equal(t, 16, y)

	x, y = cellOrigin(puzzle.Coord{X: 13, Y: 15}, 16)
	assert.Equal(t, 27, x)
	assert.Equal(t, 1, y)
}
