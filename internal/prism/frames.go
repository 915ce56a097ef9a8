package prism

import "slices"

// FrameQueue is a Scheduler driven by the host's refresh loop: callbacks
// requested now run on the next call to Run.
type FrameQueue struct {
	next    FrameID
	pending map[FrameID]func()
}

func NewFrameQueue() *FrameQueue {
	return &FrameQueue{pending: map[FrameID]func(){}}
}

// RequestFrame schedules fn for the next refresh.
func (q *FrameQueue) RequestFrame(fn func()) FrameID {
	q.next++
	q.pending[q.next] = fn
	return q.next
}

// CancelFrame drops a pending callback. Unknown ids are ignored.
func (q *FrameQueue) CancelFrame(id FrameID) {
	delete(q.pending, id)
}

// Len is the number of pending callbacks.
func (q *FrameQueue) Len() int { return len(q.pending) }

// Run executes the callbacks pending at the time of the call, in request
// order, and returns how many ran. Callbacks requested while running wait
// for the next Run; callbacks cancelled by an earlier one are skipped.
func (q *FrameQueue) Run() int {
	if len(q.pending) == 0 {
		return 0
	}
	ids := make([]FrameID, 0, len(q.pending))
	for id := range q.pending {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	ran := 0
	for _, id := range ids {
		fn, ok := q.pending[id]
		if !ok {
			continue
		}
		delete(q.pending, id)
		fn()
		ran++
	}
	return ran
}
