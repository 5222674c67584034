// Package loop drives per-frame callbacks on top of a scheduler that fires
// once and must be re-requested every frame.
package loop

import "time"

type FrameFunc func(now time.Time)

// Scheduler invokes fn once at the next frame boundary.
type Scheduler interface {
	RequestFrame(fn FrameFunc)
}

// Loop re-requests itself after every frame until stopped.
type Loop struct {
	sched   Scheduler
	frame   FrameFunc
	running bool
	gen     int
	frames  int
}

func New(s Scheduler, frame FrameFunc) *Loop {
	return &Loop{sched: s, frame: frame}
}

// Start requests the first frame. Calling Start on a running loop does nothing.
func (l *Loop) Start() {
	if l.running {
		return
	}
	l.running = true
	l.gen++
	l.request(l.gen)
}

// Stop halts the loop. A frame already handed to the scheduler becomes a
// no-op when it fires.
func (l *Loop) Stop() {
	l.running = false
}

func (l *Loop) Running() bool { return l.running }
func (l *Loop) Frames() int   { return l.frames }

func (l *Loop) request(gen int) {
	l.sched.RequestFrame(func(now time.Time) {
		// a callback from before a Stop/Start cycle must not fork a second chain
		if !l.running || gen != l.gen {
			return
		}
		l.frame(now)
		l.frames++
		if l.running && gen == l.gen {
			l.request(gen)
		}
	})
}
