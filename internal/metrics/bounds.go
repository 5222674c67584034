package metrics

import "github.com/san-kum/constellation/internal/field"

// OutOfBounds is the fraction of particles outside the viewport, averaged
// over frames.
type OutOfBounds struct {
	mean
}

func NewOutOfBounds() *OutOfBounds { return &OutOfBounds{} }

func (o *OutOfBounds) Name() string { return "out_of_bounds" }

func (o *OutOfBounds) Observe(f *field.Field) {
	ps := f.Particles()
	if len(ps) == 0 {
		o.add(0)
		return
	}
	vp := f.Viewport()
	out := 0
	for _, p := range ps {
		if !p.InBounds(vp) {
			out++
		}
	}
	o.add(float64(out) / float64(len(ps)))
}
