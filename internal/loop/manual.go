package loop

import "time"

// Manual is a Scheduler stepped by hand. Each step advances a fake clock by
// Interval.
type Manual struct {
	Queue
	Interval time.Duration
	now      time.Time
}

func NewManual(interval time.Duration) *Manual {
	return &Manual{Interval: interval, now: time.Unix(0, 0)}
}

// Step fires one frame and reports whether anything ran.
func (m *Manual) Step() bool {
	if m.Pending() == 0 {
		return false
	}
	m.now = m.now.Add(m.Interval)
	m.Flush(m.now)
	return true
}

// StepN steps up to n frames and returns how many ran.
func (m *Manual) StepN(n int) int {
	ran := 0
	for i := 0; i < n; i++ {
		if !m.Step() {
			break
		}
		ran++
	}
	return ran
}

func (m *Manual) Now() time.Time { return m.now }
