package puzzle

import "fmt"

// CommandKind enumerates the player intents the puzzle understands.
type CommandKind uint8

const (
	CmdMove CommandKind = iota + 1
	CmdRotateCW
	CmdRotateCCW
	CmdInflatePrimary
	CmdInflateSecondary
	CmdInflateToward
	CmdUndo
)

var commandNames = map[CommandKind]string{
	CmdMove:             "Move",
	CmdRotateCW:         "RotateCW",
	CmdRotateCCW:        "RotateCCW",
	CmdInflatePrimary:   "InflatePrimary",
	CmdInflateSecondary: "InflateSecondary",
	CmdInflateToward:    "InflateToward",
	CmdUndo:             "Undo",
}

func (k CommandKind) String() string {
	if name, ok := commandNames[k]; ok {
		return name
	}
	return fmt.Sprintf("CommandKind(%d)", uint8(k))
}

// Command is a single player intent. Dir is used by CmdMove and CmdInflateToward.
type Command struct {
	Kind CommandKind
	Dir  Direction
}

func (c Command) String() string {
	switch c.Kind {
	case CmdMove, CmdInflateToward:
		return c.Kind.String() + "(" + c.Dir.String() + ")"
	}
	return c.Kind.String()
}

func Move(d Direction) Command          { return Command{Kind: CmdMove, Dir: d} }
func RotateCW() Command                 { return Command{Kind: CmdRotateCW} }
func RotateCCW() Command                { return Command{Kind: CmdRotateCCW} }
func InflatePrimary() Command           { return Command{Kind: CmdInflatePrimary} }
func InflateSecondary() Command         { return Command{Kind: CmdInflateSecondary} }
func InflateToward(d Direction) Command { return Command{Kind: CmdInflateToward, Dir: d} }
func Undo() Command                     { return Command{Kind: CmdUndo} }
