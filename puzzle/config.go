package puzzle

import (
	"fmt"
	"time"
)

// Config holds the board dimensions, the phase delays and the match rule.
type Config struct {
	Width  int
	Height int

	// SpawnAnchor is where the primary block of a new pair appears. The
	// secondary block is stacked directly above it.
	SpawnAnchor Coord

	GravityPeriod time.Duration
	LandingGrace  time.Duration
	SettleDelay   time.Duration
	MatchDelay    time.Duration
	ExplodeDelay  time.Duration
	RewindHold    time.Duration

	MinGroupSize int

	// QueueLimit caps how many upcoming pairs are generated ahead of time.
	QueueLimit int

	// MaxStepsPerTick bounds the transitions a single AdvanceTick may perform.
	MaxStepsPerTick int
}

// DefaultConfig returns the standard 14×16 board.
func DefaultConfig() Config {
	return Config{
		Width:           14,
		Height:          16,
		SpawnAnchor:     Coord{X: 6, Y: 12},
		GravityPeriod:   2 * time.Second,
		LandingGrace:    300 * time.Millisecond,
		SettleDelay:     100 * time.Millisecond,
		MatchDelay:      100 * time.Millisecond,
		ExplodeDelay:    800 * time.Millisecond,
		RewindHold:      500 * time.Millisecond,
		MinGroupSize:    4,
		QueueLimit:      64,
		MaxStepsPerTick: 1024,
	}
}

// Validate reports the first problem found in c.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("grid %dx%d: %w", c.Width, c.Height, ErrInvalidConfig)
	}

	g := NewGrid(c.Width, c.Height)
	primary, secondary := c.spawnStates()
	if !g.Free(Footprint(primary.Anchor, primary.Size)) || !g.Free(Footprint(secondary.Anchor, secondary.Size)) {
		return fmt.Errorf("spawn anchor %v outside %dx%d grid: %w", c.SpawnAnchor, c.Width, c.Height, ErrInvalidConfig)
	}

	if c.GravityPeriod <= 0 {
		return fmt.Errorf("gravity period %v: %w", c.GravityPeriod, ErrInvalidConfig)
	}
	delays := []struct {
		name string
		d    time.Duration
	}{
		{"landing grace", c.LandingGrace},
		{"settle delay", c.SettleDelay},
		{"match delay", c.MatchDelay},
		{"explode delay", c.ExplodeDelay},
		{"rewind hold", c.RewindHold},
	}
	for _, delay := range delays {
		if delay.d < 0 {
			return fmt.Errorf("%s %v: %w", delay.name, delay.d, ErrInvalidConfig)
		}
	}

	if c.MinGroupSize < 1 {
		return fmt.Errorf("min group size %d: %w", c.MinGroupSize, ErrInvalidConfig)
	}
	if c.QueueLimit < 1 {
		return fmt.Errorf("queue limit %d: %w", c.QueueLimit, ErrInvalidConfig)
	}
	if c.MaxStepsPerTick < 1 {
		return fmt.Errorf("max steps per tick %d: %w", c.MaxStepsPerTick, ErrInvalidConfig)
	}
	return nil
}

// spawnStates returns the layout of a freshly activated pair.
func (c Config) spawnStates() (primary, secondary PieceState) {
	primary = PieceState{Anchor: c.SpawnAnchor, Size: Medium, Relative: DirDown}
	secondary = PieceState{
		Anchor:   c.SpawnAnchor.Add(Coord{Y: int(Medium)}),
		Size:     Medium,
		Relative: DirUp,
	}
	return primary, secondary
}
