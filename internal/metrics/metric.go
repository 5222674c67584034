// Package metrics summarises a running field frame by frame.
package metrics

import "github.com/san-kum/constellation/internal/field"

type Metric interface {
	Name() string
	Observe(f *field.Field)
	Value() float64
	Reset()
}

// Default returns the metrics reported by the bench and run commands.
func Default() []Metric {
	return []Metric{NewConnections(), NewDisplacement(), NewOutOfBounds()}
}

// Recorder observes a set of metrics and keeps a bounded history of each
// per-frame sample for plotting.
type Recorder struct {
	metrics  []Metric
	capacity int
	history  map[string][]float64
}

func NewRecorder(capacity int, ms ...Metric) *Recorder {
	return &Recorder{
		metrics:  ms,
		capacity: capacity,
		history:  make(map[string][]float64, len(ms)),
	}
}

func (r *Recorder) Observe(f *field.Field) {
	for _, m := range r.metrics {
		m.Observe(f)
		if s, ok := m.(Sampler); ok {
			h := append(r.history[m.Name()], s.Last())
			if r.capacity > 0 && len(h) > r.capacity {
				h = h[len(h)-r.capacity:]
			}
			r.history[m.Name()] = h
		}
	}
}

// History returns the recorded samples of the named metric, oldest first.
func (r *Recorder) History(name string) []float64 {
	return r.history[name]
}

// Values returns the current value of every metric keyed by name.
func (r *Recorder) Values() map[string]float64 {
	out := make(map[string]float64, len(r.metrics))
	for _, m := range r.metrics {
		out[m.Name()] = m.Value()
	}
	return out
}

func (r *Recorder) Metrics() []Metric { return r.metrics }

func (r *Recorder) Reset() {
	for _, m := range r.metrics {
		m.Reset()
	}
	r.history = make(map[string][]float64, len(r.metrics))
}

// Sampler is implemented by metrics that expose the sample of the most
// recent frame in addition to their running value.
type Sampler interface {
	Last() float64
}

// mean is the running average shared by the per-frame metrics.
type mean struct {
	sum     float64
	samples int
	last    float64
}

func (m *mean) add(v float64) {
	m.sum += v
	m.samples++
	m.last = v
}

func (m *mean) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.sum / float64(m.samples)
}

func (m *mean) Last() float64 { return m.last }

func (m *mean) Reset() { *m = mean{} }
