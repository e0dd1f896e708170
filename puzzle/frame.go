package puzzle

import "time"

// Frame is what each system sees during one scheduler pass.
type Frame struct {
	DeltaTime float64
	Commands  *Commands
	Puzzle    *Puzzle
}

func newFrame(dt float64, p *Puzzle, commands *Commands) *Frame {
	return &Frame{
		DeltaTime: dt,
		Commands:  commands,
		Puzzle:    p,
	}
}

// Elapsed returns DeltaTime as a duration.
func (f *Frame) Elapsed() time.Duration {
	return time.Duration(f.DeltaTime * float64(time.Second))
}
