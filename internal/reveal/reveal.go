// Package reveal marks page elements as revealed the first time they scroll
// into view. Each element moves from Pending to Revealed exactly once and is
// no longer observed afterwards.
package reveal

import (
	"sort"
	"sync"
	"time"
)

const (
	DefaultThreshold    = 0.1
	DefaultBottomMargin = 50.0
	DefaultDelay        = 50 * time.Millisecond
)

type State int

const (
	Pending State = iota
	Revealed
)

func (s State) String() string {
	switch s {
	case Revealed:
		return "revealed"
	default:
		return "pending"
	}
}

// Element is a block on the page, positioned by its vertical extent.
type Element struct {
	ID     string
	Top    float64
	Height float64
}

// Ratio returns the fraction of e's height that lies inside [top, bottom].
// Zero-height elements count as fully visible when their edge is in range.
func (e Element) Ratio(top, bottom float64) float64 {
	if e.Height <= 0 {
		if e.Top >= top && e.Top <= bottom {
			return 1
		}
		return 0
	}
	lo := max(e.Top, top)
	hi := min(e.Top+e.Height, bottom)
	if hi <= lo {
		return 0
	}
	return (hi - lo) / e.Height
}

// TimerFunc schedules f after d. time.AfterFunc satisfies it.
type TimerFunc func(d time.Duration, f func()) *time.Timer

type entry struct {
	el    Element
	state State
}

type Observer struct {
	mu           sync.Mutex
	threshold    float64
	bottomMargin float64
	after        TimerFunc
	entries      map[string]*entry
	order        []string
	observing    map[string]bool
	active       bool
	once         sync.Once
	onReveal     func(id string)
}

type Option func(*Observer)

func WithThreshold(t float64) Option     { return func(o *Observer) { o.threshold = t } }
func WithBottomMargin(m float64) Option  { return func(o *Observer) { o.bottomMargin = m } }
func WithTimer(f TimerFunc) Option       { return func(o *Observer) { o.after = f } }
func WithOnReveal(f func(string)) Option { return func(o *Observer) { o.onReveal = f } }

func NewObserver(opts ...Option) *Observer {
	o := &Observer{
		threshold:    DefaultThreshold,
		bottomMargin: DefaultBottomMargin,
		after:        time.AfterFunc,
		entries:      make(map[string]*entry),
		observing:    make(map[string]bool),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Observe starts watching el. An id that was already observed, or already
// revealed, is ignored. It reports whether el was added.
func (o *Observer) Observe(el Element) bool {
	o.mu.Lock()
	defer o.mu.Unlock()

	if _, ok := o.entries[el.ID]; ok {
		return false
	}
	o.entries[el.ID] = &entry{el: el}
	o.order = append(o.order, el.ID)
	o.observing[el.ID] = true
	return true
}

// Activate enables checking after delay. Only the first call has an effect.
func (o *Observer) Activate(delay time.Duration) {
	o.once.Do(func() {
		o.after(delay, func() {
			o.mu.Lock()
			o.active = true
			o.mu.Unlock()
		})
	})
}

func (o *Observer) Active() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.active
}

// Check reveals every observed element that intersects the visible region
// by at least the threshold. The region is [scrollTop, scrollTop+height]
// shrunk by the bottom margin. It returns the ids revealed by this call, in
// observation order.
func (o *Observer) Check(scrollTop, viewportHeight float64) []string {
	o.mu.Lock()
	if !o.active {
		o.mu.Unlock()
		return nil
	}

	top := scrollTop
	bottom := scrollTop + viewportHeight - o.bottomMargin

	var revealed []string
	for _, id := range o.order {
		if !o.observing[id] {
			continue
		}
		e := o.entries[id]
		if e.el.Ratio(top, bottom) >= o.threshold {
			if o.reveal(id) {
				revealed = append(revealed, id)
			}
		}
	}
	cb := o.onReveal
	o.mu.Unlock()

	if cb != nil {
		for _, id := range revealed {
			cb(id)
		}
	}
	return revealed
}

// Reveal moves id to Revealed and stops observing it. Repeated calls and
// unknown ids report false.
func (o *Observer) Reveal(id string) bool {
	o.mu.Lock()
	ok := o.reveal(id)
	cb := o.onReveal
	o.mu.Unlock()

	if ok && cb != nil {
		cb(id)
	}
	return ok
}

func (o *Observer) reveal(id string) bool {
	e, ok := o.entries[id]
	if !ok || e.state == Revealed {
		return false
	}
	e.state = Revealed
	delete(o.observing, id)
	return true
}

func (o *Observer) State(id string) State {
	o.mu.Lock()
	defer o.mu.Unlock()
	if e, ok := o.entries[id]; ok {
		return e.state
	}
	return Pending
}

// Pending returns the ids still being observed, sorted.
func (o *Observer) Pending() []string {
	o.mu.Lock()
	defer o.mu.Unlock()
	ids := make([]string, 0, len(o.observing))
	for id := range o.observing {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Revealed returns the revealed ids in observation order.
func (o *Observer) Revealed() []string {
	o.mu.Lock()
	defer o.mu.Unlock()
	var ids []string
	for _, id := range o.order {
		if o.entries[id].state == Revealed {
			ids = append(ids, id)
		}
	}
	return ids
}
