package puzzle

import "slices"

// Queue is the ordered list of pairs waiting to be activated.
type Queue struct {
	pairs []Pair
}

func (q *Queue) Len() int {
	return len(q.pairs)
}

// PushBack appends a pair.
func (q *Queue) PushBack(p Pair) {
	q.pairs = append(q.pairs, p)
}

// PushFront puts a pair at the head so it is activated next.
func (q *Queue) PushFront(p Pair) {
	q.pairs = slices.Insert(q.pairs, 0, p)
}

// PopFront removes and returns the head of the queue.
func (q *Queue) PopFront() (Pair, bool) {
	if len(q.pairs) == 0 {
		return Pair{}, false
	}
	p := q.pairs[0]
	q.pairs[0] = Pair{}
	q.pairs = q.pairs[1:]
	return p, true
}

// Peek returns the pair at position i without removing it.
func (q *Queue) Peek(i int) (Pair, bool) {
	if i < 0 || i >= len(q.pairs) {
		return Pair{}, false
	}
	return q.pairs[i], true
}

// States returns detached copies of up to n queued pairs, head first.
// A negative n returns all of them.
func (q *Queue) States(n int) []PairState {
	if n < 0 || n > len(q.pairs) {
		n = len(q.pairs)
	}
	out := make([]PairState, 0, n)
	for _, p := range q.pairs[:n] {
		out = append(out, p.State())
	}
	return out
}

func (q *Queue) Clear() {
	q.pairs = nil
}
