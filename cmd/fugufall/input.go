package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/fugufall/puzzle"
	"github.com/plus3/fugufall/puzzle/debugui"
)

type keyBinding struct {
	Key     ebiten.Key
	Command puzzle.Command
}

// keyBindings is checked in order, so keys pressed in the same frame are
// submitted in this order.
var keyBindings = []keyBinding{
	{ebiten.KeyArrowLeft, puzzle.Move(puzzle.DirLeft)},
	{ebiten.KeyArrowRight, puzzle.Move(puzzle.DirRight)},
	{ebiten.KeyArrowDown, puzzle.Move(puzzle.DirDown)},
	{ebiten.KeyZ, puzzle.RotateCCW()},
	{ebiten.KeyX, puzzle.RotateCW()},
	{ebiten.KeyQ, puzzle.InflatePrimary()},
	{ebiten.KeyE, puzzle.InflateSecondary()},
	{ebiten.KeyW, puzzle.InflateToward(puzzle.DirUp)},
	{ebiten.KeyD, puzzle.InflateToward(puzzle.DirRight)},
	{ebiten.KeyS, puzzle.InflateToward(puzzle.DirDown)},
	{ebiten.KeyA, puzzle.InflateToward(puzzle.DirLeft)},
	{ebiten.KeyU, puzzle.Undo()},
}

// pressedCommands returns the commands for every key reported as pressed.
func pressedCommands(pressed func(ebiten.Key) bool) []puzzle.Command {
	var cmds []puzzle.Command
	for _, b := range keyBindings {
		if pressed(b.Key) {
			cmds = append(cmds, b.Command)
		}
	}
	return cmds
}

// KeyboardSystem turns key presses into puzzle commands. Keys are ignored
// while a debug window has keyboard focus.
type KeyboardSystem struct {
	Capture      *debugui.ImguiInputState
	NewGenerator func() puzzle.Generator
}

func (s *KeyboardSystem) Execute(frame *puzzle.Frame) {
	if s.Capture != nil && s.Capture.WantCaptureKeyboard {
		return
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		p := frame.Puzzle
		frame.Commands.Defer(func() { p.Reset(s.NewGenerator()) })
		return
	}

	for _, cmd := range pressedCommands(inpututil.IsKeyJustPressed) {
		frame.Commands.Submit(cmd)
	}
}
