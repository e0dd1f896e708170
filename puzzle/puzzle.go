package puzzle

import (
	"cmp"
	"slices"
	"time"

	"go.uber.org/zap"
)

// Puzzle is a single game: the board, the active pair, the upcoming queue and
// the undo history. It is driven by Submit and AdvanceTick and is not safe for
// concurrent use.
type Puzzle struct {
	cfg Config
	log *zap.Logger
	gen Generator

	grid      *Grid
	registry  *Registry
	arena     pieceArena
	queue     Queue
	history   History
	pair      Pair
	exhausted bool

	phase     Phase
	timer     time.Duration
	held      bool
	scheduled []PieceID
	chain     int

	stats  Stats
	events eventBuffer
}

// Option configures a Puzzle.
type Option func(*Puzzle)

// WithLogger sets the logger used for debug tracing.
func WithLogger(log *zap.Logger) Option {
	return func(p *Puzzle) {
		if log != nil {
			p.log = log
		}
	}
}

// New creates a puzzle fed by gen. The first pair is activated by the first
// call to AdvanceTick.
func New(cfg Config, gen Generator, opts ...Option) (*Puzzle, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	p := &Puzzle{
		cfg:      cfg,
		log:      zap.NewNop(),
		grid:     NewGrid(cfg.Width, cfg.Height),
		registry: NewRegistry(),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.Reset(gen)
	return p, nil
}

// Reset discards every piece and the history and starts over with gen.
// Subscribers are kept.
func (p *Puzzle) Reset(gen Generator) {
	p.gen = gen
	p.grid.Reset()
	p.registry.Clear()
	p.arena.reset()
	p.queue.Clear()
	p.history.Clear()
	p.pair = Pair{}
	p.exhausted = false
	p.phase = PhaseSpawning
	p.timer = 0
	p.held = false
	p.scheduled = nil
	p.chain = 0
	p.stats = Stats{}
	p.stats.PhaseEntries[PhaseSpawning]++
	p.fill()

	p.log.Debug("puzzle reset",
		zap.Int("width", p.cfg.Width),
		zap.Int("height", p.cfg.Height),
		zap.Int("queued", p.queue.Len()))
}

// Subscribe registers h to receive every event emitted from now on.
func (p *Puzzle) Subscribe(h Handler) {
	p.events.subscribe(h)
}

// Submit applies one player command. Rejected commands leave the puzzle
// untouched and report why.
func (p *Puzzle) Submit(cmd Command) error {
	err := p.apply(cmd)
	if err != nil {
		p.stats.Rejected++
		p.events.emit(Event{Kind: EventCommandRejected, Command: cmd, Err: err})
	}
	p.checkInvariants()
	p.events.flush()
	return err
}

// AdvanceTick moves the puzzle clock forward by dt and performs every
// transition that has come due, up to MaxStepsPerTick.
func (p *Puzzle) AdvanceTick(dt time.Duration) {
	p.stats.Ticks++
	if dt > 0 {
		p.timer += dt
	}
	for range p.cfg.MaxStepsPerTick {
		if !p.step() {
			break
		}
	}
	p.checkInvariants()
	p.events.flush()
}

func (p *Puzzle) Config() Config { return p.cfg }
func (p *Puzzle) Phase() Phase   { return p.phase }
func (p *Puzzle) Width() int     { return p.grid.Width() }
func (p *Puzzle) Height() int    { return p.grid.Height() }
func (p *Puzzle) Stats() Stats   { return p.stats }

// Chain returns the number of removals in the current cascade.
func (p *Puzzle) Chain() int { return p.chain }

// HistoryLen returns how many undo steps are available.
func (p *Puzzle) HistoryLen() int { return p.history.Len() }

// At returns the id occupying c, or NoPiece.
func (p *Puzzle) At(c Coord) PieceID { return p.grid.At(c) }

// InputUnlocked reports whether Submit currently accepts commands.
func (p *Puzzle) InputUnlocked() bool {
	switch p.phase {
	case PhaseFreeFalling, PhaseLanded:
		return true
	case PhaseSpawning:
		return p.held
	}
	return false
}

// ActivePair returns a copy of the pair under player control.
func (p *Puzzle) ActivePair() (PairState, bool) {
	if p.pair.IsEmpty() {
		return PairState{}, false
	}
	return p.pair.State(), true
}

// Upcoming returns copies of the next n queued pairs; negative n returns all.
func (p *Puzzle) Upcoming(n int) []PairState {
	return p.queue.States(n)
}

// Pieces returns copies of every piece on the board, active pair included,
// ordered by id.
func (p *Puzzle) Pieces() []Piece {
	out := make([]Piece, 0, p.registry.Len()+2)
	for _, id := range p.registry.IDs() {
		piece, _ := p.registry.Get(id)
		out = append(out, *piece)
	}
	if !p.pair.IsEmpty() {
		out = append(out, *p.pair.Primary, *p.pair.Secondary)
		slices.SortFunc(out, func(a, b Piece) int { return cmp.Compare(a.ID, b.ID) })
	}
	return out
}

// Piece returns a copy of the board piece with the given id.
func (p *Puzzle) Piece(id PieceID) (Piece, bool) {
	if piece, ok := p.registry.Get(id); ok {
		return *piece, true
	}
	if !p.pair.IsEmpty() {
		switch id {
		case p.pair.Primary.ID:
			return *p.pair.Primary, true
		case p.pair.Secondary.ID:
			return *p.pair.Secondary, true
		}
	}
	return Piece{}, false
}

// Groups returns the color-connected groups among resting pieces.
func (p *Puzzle) Groups() []Group {
	return FindConnectedGroups(p.grid, p.registry)
}

// Scheduled returns the ids waiting to be removed while exploding.
func (p *Puzzle) Scheduled() []PieceID {
	return slices.Clone(p.scheduled)
}

func (p *Puzzle) apply(cmd Command) error {
	if !p.InputUnlocked() {
		return ErrInputLocked
	}

	switch cmd.Kind {
	case CmdUndo:
		return p.undo()
	case CmdMove:
		if err := p.pair.Move(p.grid, cmd.Dir); err != nil {
			return err
		}
		p.stats.Moves++
		p.events.emit(Event{Kind: EventPairMoved, Pair: p.pair.State()})
	case CmdRotateCW, CmdRotateCCW:
		if err := p.pair.Rotate(p.grid, cmd.Kind == CmdRotateCW); err != nil {
			return err
		}
		p.stats.Rotations++
		p.events.emit(Event{Kind: EventPairRotated, Pair: p.pair.State()})
	case CmdInflatePrimary, CmdInflateSecondary, CmdInflateToward:
		var err error
		switch cmd.Kind {
		case CmdInflatePrimary:
			err = p.pair.Redistribute(p.grid, true)
		case CmdInflateSecondary:
			err = p.pair.Redistribute(p.grid, false)
		default:
			err = p.pair.InflateToward(p.grid, cmd.Dir)
		}
		if err != nil {
			return err
		}
		p.stats.Inflations++
		p.events.emit(Event{Kind: EventPairRedistributed, Pair: p.pair.State()})
	default:
		return ErrUnknownCommand
	}
	return nil
}

// step performs the next due transition and reports whether it did anything.
func (p *Puzzle) step() bool {
	switch p.phase {
	case PhaseSpawning:
		var gate time.Duration
		if p.held {
			gate = p.cfg.RewindHold
		}
		if !p.elapse(gate) {
			return false
		}
		p.held = false
		p.spawn()

	case PhaseFreeFalling:
		if !p.elapse(p.cfg.GravityPeriod) {
			return false
		}
		if err := p.pair.Move(p.grid, DirDown); err != nil {
			p.land()
			return true
		}
		p.events.emit(Event{Kind: EventPairMoved, Pair: p.pair.State()})

	case PhaseLanded:
		if !p.elapse(p.cfg.LandingGrace) {
			return false
		}
		p.disconnect()

	case PhaseSettling:
		if !p.elapse(p.cfg.SettleDelay) {
			return false
		}
		if moved := SettlePass(p.grid, p.registry); len(moved) == 0 {
			p.events.emit(Event{Kind: EventCascadeSettled, Chain: p.chain})
			p.setPhase(PhaseMatching)
		}

	case PhaseMatching:
		if !p.elapse(p.cfg.MatchDelay) {
			return false
		}
		p.match()

	case PhaseExploding:
		var gate time.Duration
		if len(p.scheduled) > 0 {
			gate = p.cfg.ExplodeDelay
		}
		if !p.elapse(gate) {
			return false
		}
		p.explode()

	default:
		return false
	}
	return true
}

// elapse consumes gate from the phase timer if enough time has accumulated.
func (p *Puzzle) elapse(gate time.Duration) bool {
	if p.timer < gate {
		return false
	}
	p.timer -= gate
	return true
}

func (p *Puzzle) setPhase(ph Phase) {
	if p.phase == ph {
		return
	}
	from := p.phase
	p.phase = ph
	p.stats.PhaseEntries[ph]++
	p.events.emit(Event{Kind: EventPhaseChanged, Phase: ph})
	p.log.Debug("phase changed",
		zap.String("from", from.String()),
		zap.String("phase", ph.String()),
		zap.Int("chain", p.chain))
}

// fill tops the queue up from the generator.
func (p *Puzzle) fill() {
	for !p.exhausted && p.queue.Len() < p.cfg.QueueLimit {
		if p.gen == nil {
			p.exhausted = true
			break
		}
		colors, ok := p.gen.Next()
		if !ok {
			p.exhausted = true
			break
		}
		p.queue.PushBack(p.newPair(colors))
	}
}

func (p *Puzzle) newPair(colors ColorPair) Pair {
	pair := Pair{
		Primary:   p.arena.alloc(colors.Primary, true),
		Secondary: p.arena.alloc(colors.Secondary, false),
	}
	p.toSpawn(pair)
	return pair
}

func (p *Puzzle) toSpawn(pair Pair) {
	a, b := p.cfg.spawnStates()
	pair.Primary.restore(a)
	pair.Secondary.restore(b)
}

func (p *Puzzle) spawn() {
	p.fill()
	next, ok := p.queue.PopFront()
	if !ok {
		if p.registry.Len() == 0 {
			p.finish(PhaseWon)
		} else {
			p.finish(PhaseLost)
		}
		return
	}

	if !p.grid.Free(next.Primary.Footprint()) || !p.grid.Free(next.Secondary.Footprint()) {
		p.queue.PushFront(next)
		p.finish(PhaseLost)
		return
	}

	p.history.Push(takeSnapshot(p.grid, p.registry, next))
	p.pair = next
	p.pair.place(p.grid)
	p.chain = 0
	p.timer = 0
	p.stats.PairsSpawned++

	p.events.emit(Event{Kind: EventPairSpawned, Pair: p.pair.State()})
	p.events.emit(Event{Kind: EventPiecePlaced, Piece: *p.pair.Primary})
	p.events.emit(Event{Kind: EventPiecePlaced, Piece: *p.pair.Secondary})
	p.log.Debug("pair spawned",
		zap.Int("primary", int(next.Primary.ID)),
		zap.Int("secondary", int(next.Secondary.ID)),
		zap.Int("queued", p.queue.Len()))
	p.setPhase(PhaseFreeFalling)
}

func (p *Puzzle) land() {
	p.stats.PairsLanded++
	p.events.emit(Event{Kind: EventPairLanded, Pair: p.pair.State()})
	p.log.Debug("pair landed",
		zap.Int("x", p.pair.Primary.Anchor.X),
		zap.Int("y", p.pair.Primary.Anchor.Y))
	p.setPhase(PhaseLanded)
}

// disconnect hands the pair's pieces over to the registry.
func (p *Puzzle) disconnect() {
	p.registry.Add(p.pair.Primary)
	p.registry.Add(p.pair.Secondary)
	p.pair = Pair{}
	p.setPhase(PhaseSettling)
}

func (p *Puzzle) match() {
	groups := Eligible(FindConnectedGroups(p.grid, p.registry), p.cfg.MinGroupSize)
	p.scheduled = p.scheduled[:0]
	for _, grp := range groups {
		p.scheduled = append(p.scheduled, grp...)
		p.stats.GroupsMatched++
		p.events.emit(Event{Kind: EventGroupMatched, IDs: slices.Clone(grp), Chain: p.chain + 1})
	}
	slices.Sort(p.scheduled)
	p.setPhase(PhaseExploding)
}

// explode removes every scheduled piece at once.
func (p *Puzzle) explode() {
	removed := 0
	for _, id := range p.scheduled {
		piece, ok := p.registry.Get(id)
		if !ok {
			continue
		}
		p.grid.Clear(id, piece.Footprint())
		p.registry.Remove(id)
		removed++
		p.events.emit(Event{Kind: EventPieceRemoved, Piece: *piece})
	}
	p.scheduled = p.scheduled[:0]

	if removed == 0 {
		p.setPhase(PhaseSpawning)
		return
	}

	p.chain++
	p.stats.Chains++
	p.stats.PiecesRemoved += removed
	p.stats.MaxChain = max(p.stats.MaxChain, p.chain)
	p.log.Debug("pieces removed",
		zap.Int("removed", removed),
		zap.Int("chain", p.chain))
	p.setPhase(PhaseSettling)
}

func (p *Puzzle) finish(ph Phase) {
	p.timer = 0
	p.setPhase(ph)
	kind := EventGameLost
	if ph == PhaseWon {
		kind = EventGameWon
	}
	p.events.emit(Event{Kind: kind})
	p.log.Debug("game over",
		zap.String("phase", ph.String()),
		zap.Int("spawned", p.stats.PairsSpawned),
		zap.Int("removed", p.stats.PiecesRemoved))
}

// undo rewinds to the moment the newest snapshot was taken and holds the
// spawn so further undos can rewind deeper.
func (p *Puzzle) undo() error {
	snap, ok := p.history.Pop()
	if !ok {
		return ErrNoHistory
	}

	p.pair = Pair{}
	p.grid.Restore(snap.cells)

	for _, id := range p.registry.IDs() {
		if !snap.states.Has(id) {
			p.registry.Remove(id)
		}
	}
	for _, id := range snap.active {
		piece := p.arena.get(id)
		state, _ := snap.states.Get(id)
		piece.restore(state)
		p.registry.Add(piece)
	}

	// An active pair is always the pair the newest snapshot was taken for.
	rewound := Pair{
		Primary:   p.arena.get(snap.pair[0]),
		Secondary: p.arena.get(snap.pair[1]),
	}
	rewound.Primary.restore(snap.spawn[0])
	rewound.Secondary.restore(snap.spawn[1])
	p.queue.PushFront(rewound)

	p.scheduled = p.scheduled[:0]
	p.chain = 0
	p.timer = 0
	p.held = true
	p.stats.Undos++

	p.events.emit(Event{Kind: EventUndoApplied, Command: Undo()})
	p.log.Debug("undo applied",
		zap.Int("history", p.history.Len()),
		zap.Int("resting", p.registry.Len()))
	p.setPhase(PhaseSpawning)
	return nil
}
