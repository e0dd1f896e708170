package puzzle

// Pair is the two-block unit the player controls. The zero Pair is empty and
// stands for "no active pair".
type Pair struct {
	Primary   *Piece
	Secondary *Piece
}

// IsEmpty reports whether the pair holds no pieces.
func (p Pair) IsEmpty() bool {
	return p.Primary == nil && p.Secondary == nil
}

// State returns a value copy of both pieces.
func (p Pair) State() PairState {
	if p.IsEmpty() {
		return PairState{}
	}
	return PairState{Primary: *p.Primary, Secondary: *p.Secondary}
}

// PairState is a detached copy of a pair, safe to hand to collaborators.
type PairState struct {
	Primary   Piece
	Secondary Piece
}

// resizeDelta moves the anchors of both pieces after a redistribution so the
// blocks stay flush and the pair keeps its length along the pair axis.
type resizeDelta struct {
	inflating Coord
	partner   Coord
}

// resizeDeltas is indexed by [new size of the inflating piece - Medium][its relative position].
// Each Medium row undoes the Large row of the opposite side.
var resizeDeltas = [2][4]resizeDelta{
	{
		DirUp:    {inflating: Coord{-1, -1}, partner: Coord{0, 0}},
		DirRight: {inflating: Coord{-1, -1}, partner: Coord{0, 0}},
		DirDown:  {inflating: Coord{-1, 0}, partner: Coord{0, 1}},
		DirLeft:  {inflating: Coord{0, -1}, partner: Coord{1, 0}},
	},
	{
		DirUp:    {inflating: Coord{0, -1}, partner: Coord{1, 0}},
		DirRight: {inflating: Coord{-1, 0}, partner: Coord{0, 1}},
		DirDown:  {inflating: Coord{0, 0}, partner: Coord{1, 1}},
		DirLeft:  {inflating: Coord{0, 0}, partner: Coord{1, 1}},
	},
}

// CanMove reports whether both pieces can step one cell in direction d.
// Cells held by the partner do not block.
func (p Pair) CanMove(g *Grid, d Direction) bool {
	a, b := p.Primary, p.Secondary
	return g.Free(a.Edge(d), b.ID) && g.Free(b.Edge(d), a.ID)
}

// Move steps the pair one cell left, right or down.
func (p Pair) Move(g *Grid, d Direction) error {
	if p.IsEmpty() {
		return ErrNoActivePair
	}
	if d != DirLeft && d != DirRight && d != DirDown {
		return ErrInvalidDirection
	}
	if !p.CanMove(g, d) {
		return ErrBlocked
	}

	step := d.Vector()
	a, b := p.Primary.State(), p.Secondary.State()
	a.Anchor = a.Anchor.Add(step)
	b.Anchor = b.Anchor.Add(step)
	p.relocate(g, a, b)
	return nil
}

// Rotate turns the pair a quarter turn. Equal-sized pieces pivot around the
// midpoint of their centers; otherwise the larger piece stays put and the
// smaller one swings around its center. A blocked rotation is rejected whole.
func (p Pair) Rotate(g *Grid, clockwise bool) error {
	if p.IsEmpty() {
		return ErrNoActivePair
	}

	a, b := p.Primary.State(), p.Secondary.State()
	switch {
	case a.Size == b.Size:
		pivot := midpoint(p.Primary.Center(), p.Secondary.Center())
		a.Anchor = RotatePoint(pivot, a.Anchor, clockwise)
		b.Anchor = RotatePoint(pivot, b.Anchor, clockwise)
	case a.Size > b.Size:
		b.Anchor = RotatePoint(p.Primary.Center(), b.Anchor, clockwise)
	default:
		a.Anchor = RotatePoint(p.Secondary.Center(), a.Anchor, clockwise)
	}
	a.Relative = a.Relative.Rotate(clockwise)
	b.Relative = b.Relative.Rotate(clockwise)

	if !p.fits(g, a, b) {
		return ErrBlocked
	}
	p.relocate(g, a, b)
	return nil
}

// Redistribute grows one piece a size class and shrinks its partner.
func (p Pair) Redistribute(g *Grid, inflatePrimary bool) error {
	if p.IsEmpty() {
		return ErrNoActivePair
	}

	a, b := p.Primary.State(), p.Secondary.State()
	grow, shrink := &a, &b
	if !inflatePrimary {
		grow, shrink = &b, &a
	}
	if grow.Size >= Large || shrink.Size <= Small {
		return ErrSizeLimit
	}

	grow.Size++
	shrink.Size--
	delta := resizeDeltas[grow.Size-Medium][grow.Relative]
	grow.Anchor = grow.Anchor.Add(delta.inflating)
	shrink.Anchor = shrink.Anchor.Add(delta.partner)

	if !p.fits(g, a, b) {
		return ErrBlocked
	}
	p.relocate(g, a, b)
	return nil
}

// InflateToward inflates whichever piece currently sits on the given side of the pair.
func (p Pair) InflateToward(g *Grid, side Direction) error {
	if p.IsEmpty() {
		return ErrNoActivePair
	}
	switch side {
	case p.Primary.Relative:
		return p.Redistribute(g, true)
	case p.Secondary.Relative:
		return p.Redistribute(g, false)
	}
	return ErrInvalidDirection
}

// fits reports whether both candidate states are inside the grid, clear of
// other pieces, and clear of each other.
func (p Pair) fits(g *Grid, a, b PieceState) bool {
	fa := Footprint(a.Anchor, a.Size)
	fb := Footprint(b.Anchor, b.Size)
	if !g.Free(fa, p.Primary.ID, p.Secondary.ID) || !g.Free(fb, p.Primary.ID, p.Secondary.ID) {
		return false
	}
	for _, c := range fa {
		if c.X >= b.Anchor.X && c.X < b.Anchor.X+int(b.Size) &&
			c.Y >= b.Anchor.Y && c.Y < b.Anchor.Y+int(b.Size) {
			return false
		}
	}
	return true
}

// relocate clears both old footprints before writing either new one so the
// partners never overwrite each other's cells.
func (p Pair) relocate(g *Grid, a, b PieceState) {
	g.Clear(p.Primary.ID, p.Primary.Footprint())
	g.Clear(p.Secondary.ID, p.Secondary.Footprint())
	p.Primary.restore(a)
	p.Secondary.restore(b)
	g.Place(p.Primary.ID, p.Primary.Footprint())
	g.Place(p.Secondary.ID, p.Secondary.Footprint())
}

func (p Pair) place(g *Grid) {
	g.Place(p.Primary.ID, p.Primary.Footprint())
	g.Place(p.Secondary.ID, p.Secondary.Footprint())
}

func (p Pair) clear(g *Grid) {
	g.Clear(p.Primary.ID, p.Primary.Footprint())
	g.Clear(p.Secondary.ID, p.Secondary.Footprint())
}
