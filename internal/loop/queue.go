package loop

import (
	"sync"
	"time"
)

// Queue is a Scheduler for hosts that own the frame loop (a window, a game
// loop, a TUI tick). The host calls Flush once per frame.
type Queue struct {
	mu      sync.Mutex
	pending []FrameFunc
}

func (q *Queue) RequestFrame(fn FrameFunc) {
	q.mu.Lock()
	q.pending = append(q.pending, fn)
	q.mu.Unlock()
}

// Flush fires the callbacks requested before this call and returns how many
// ran. Callbacks requested while flushing wait for the next Flush.
func (q *Queue) Flush(now time.Time) int {
	q.mu.Lock()
	batch := q.pending
	q.pending = nil
	q.mu.Unlock()

	for _, fn := range batch {
		fn(now)
	}
	return len(batch)
}

func (q *Queue) Pending() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}
