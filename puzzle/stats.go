package puzzle

// Stats are running counters since the last Reset.
type Stats struct {
	Ticks         int64
	PairsSpawned  int
	PairsLanded   int
	Moves         int
	Rotations     int
	Inflations    int
	Rejected      int
	Undos         int
	GroupsMatched int
	PiecesRemoved int
	Chains        int
	MaxChain      int

	// PhaseEntries counts how often each phase was entered.
	PhaseEntries [phaseCount]int
}

// Entered returns how often ph was entered.
func (s Stats) Entered(ph Phase) int {
	if ph >= phaseCount {
		return 0
	}
	return s.PhaseEntries[ph]
}
