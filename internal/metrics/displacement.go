package metrics

import "github.com/san-kum/constellation/internal/field"

// Displacement is the mean distance of particles from their base positions,
// averaged over frames.
type Displacement struct {
	mean
}

func NewDisplacement() *Displacement { return &Displacement{} }

func (d *Displacement) Name() string { return "displacement" }

func (d *Displacement) Observe(f *field.Field) {
	ps := f.Particles()
	if len(ps) == 0 {
		d.add(0)
		return
	}
	total := 0.0
	for _, p := range ps {
		total += p.Displacement()
	}
	d.add(total / float64(len(ps)))
}
