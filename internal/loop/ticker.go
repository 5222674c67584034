package loop

import (
	"context"
	"time"
)

// Ticker is a real-time Scheduler backed by time.Ticker. Callbacks run on the
// goroutine that calls Run.
type Ticker struct {
	Queue
	interval time.Duration
}

func NewTicker(fps int) *Ticker {
	if fps <= 0 {
		fps = 60
	}
	return &Ticker{interval: time.Second / time.Duration(fps)}
}

// Run fires pending callbacks once per tick until ctx is done.
func (t *Ticker) Run(ctx context.Context) error {
	tk := time.NewTicker(t.interval)
	defer tk.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-tk.C:
			t.Flush(now)
		}
	}
}

func (t *Ticker) Interval() time.Duration { return t.interval }
