package puzzle

import "fmt"

// EventKind enumerates what the puzzle reports to its collaborators.
type EventKind uint8

const (
	EventPairSpawned EventKind = iota + 1
	EventPiecePlaced
	EventPairMoved
	EventPairRotated
	EventPairRedistributed
	EventCommandRejected
	EventPairLanded
	EventCascadeSettled
	EventGroupMatched
	EventPieceRemoved
	EventUndoApplied
	EventPhaseChanged
	EventGameWon
	EventGameLost
)

var eventNames = map[EventKind]string{
	EventPairSpawned:       "PairSpawned",
	EventPiecePlaced:       "PiecePlaced",
	EventPairMoved:         "PairMoved",
	EventPairRotated:       "PairRotated",
	EventPairRedistributed: "PairRedistributed",
	EventCommandRejected:   "CommandRejected",
	EventPairLanded:        "PairLanded",
	EventCascadeSettled:    "CascadeSettled",
	EventGroupMatched:      "GroupMatched",
	EventPieceRemoved:      "PieceRemoved",
	EventUndoApplied:       "UndoApplied",
	EventPhaseChanged:      "PhaseChanged",
	EventGameWon:           "GameWon",
	EventGameLost:          "GameLost",
}

func (k EventKind) String() string {
	if name, ok := eventNames[k]; ok {
		return name
	}
	return fmt.Sprintf("EventKind(%d)", uint8(k))
}

// Event is a notification for presentation, audio and tooling layers.
// Only the fields relevant to Kind are set.
type Event struct {
	Kind    EventKind
	Phase   Phase     // PhaseChanged
	Pair    PairState // PairSpawned, PairMoved, PairRotated, PairRedistributed, PairLanded
	Piece   Piece     // PiecePlaced, PieceRemoved
	IDs     []PieceID // GroupMatched
	Chain   int       // GroupMatched, CascadeSettled
	Command Command   // CommandRejected, UndoApplied
	Err     error     // CommandRejected
}

// Handler receives events.
type Handler func(Event)

// eventBuffer collects events during a puzzle call and hands them to the
// handlers once the call has finished mutating state.
type eventBuffer struct {
	pending  []Event
	handlers []Handler
}

func (b *eventBuffer) emit(ev Event) {
	b.pending = append(b.pending, ev)
}

func (b *eventBuffer) subscribe(h Handler) {
	b.handlers = append(b.handlers, h)
}

// flush delivers pending events in order, resetting the buffer first so
// handlers may safely call back into the puzzle.
func (b *eventBuffer) flush() {
	for len(b.pending) > 0 {
		batch := b.pending
		b.pending = nil
		for _, ev := range batch {
			for _, h := range b.handlers {
				h(ev)
			}
		}
	}
}
