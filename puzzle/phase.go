package puzzle

import "fmt"

// Phase is the state of the puzzle's turn loop.
type Phase uint8

const (
	PhaseSpawning Phase = iota
	PhaseFreeFalling
	PhaseLanded
	PhaseSettling
	PhaseMatching
	PhaseExploding
	PhaseWon
	PhaseLost

	phaseCount
)

var phaseNames = [phaseCount]string{
	"Spawning",
	"FreeFalling",
	"Landed",
	"Settling",
	"Matching",
	"Exploding",
	"Won",
	"Lost",
}

func (p Phase) String() string {
	if p < phaseCount {
		return phaseNames[p]
	}
	return fmt.Sprintf("Phase(%d)", uint8(p))
}

// Terminal reports whether the game is over.
func (p Phase) Terminal() bool {
	return p == PhaseWon || p == PhaseLost
}
