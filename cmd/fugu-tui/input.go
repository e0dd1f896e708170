package main

import (
	"github.com/gdamore/tcell/v2"
	"github.com/plus3/fugufall/puzzle"
)

var runeBindings = map[rune]puzzle.Command{
	'z': puzzle.RotateCCW(),
	'x': puzzle.RotateCW(),
	'q': puzzle.InflatePrimary(),
	'e': puzzle.InflateSecondary(),
	'w': puzzle.InflateToward(puzzle.DirUp),
	'd': puzzle.InflateToward(puzzle.DirRight),
	's': puzzle.InflateToward(puzzle.DirDown),
	'a': puzzle.InflateToward(puzzle.DirLeft),
	'u': puzzle.Undo(),
}

var keyBindings = map[tcell.Key]puzzle.Command{
	tcell.KeyLeft:  puzzle.Move(puzzle.DirLeft),
	tcell.KeyRight: puzzle.Move(puzzle.DirRight),
	tcell.KeyDown:  puzzle.Move(puzzle.DirDown),
}

func commandFor(ev *tcell.EventKey) (puzzle.Command, bool) {
	if ev.Key() == tcell.KeyRune {
		cmd, ok := runeBindings[ev.Rune()]
		return cmd, ok
	}
	cmd, ok := keyBindings[ev.Key()]
	return cmd, ok
}

// InputSystem submits the commands read from the terminal since the last frame.
type InputSystem struct {
	Queue []puzzle.Command
}

func (s *InputSystem) Execute(frame *puzzle.Frame) {
	for _, cmd := range s.Queue {
		frame.Commands.Submit(cmd)
	}
	s.Queue = s.Queue[:0]
}
