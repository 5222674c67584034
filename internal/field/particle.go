package field

import "math"

const (
	ParticleCount   = 120
	InfluenceRadius = 200.0
	PushFactor      = 0.5
	SpringDivisor   = 20.0
	DriftSpeed      = 0.2
	MinDensity      = 2.0
	DensitySpan     = 5.0
	MinRadius       = 2.0
	RadiusSpan      = 2.5
)

// Particle is a single node of the field. BaseX/BaseY never change after
// creation.
type Particle struct {
	X, Y         float64
	BaseX, BaseY float64
	VX, VY       float64
	Density      float64
	Radius       float64
}

// Source is the random source used to lay out particles. *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

func newParticle(vp Viewport, src Source) Particle {
	x := src.Float64() * vp.Width
	y := src.Float64() * vp.Height
	return Particle{
		X:       x,
		Y:       y,
		BaseX:   x,
		BaseY:   y,
		VX:      (src.Float64() - 0.5) * DriftSpeed,
		VY:      (src.Float64() - 0.5) * DriftSpeed,
		Density: src.Float64()*DensitySpan + MinDensity,
		Radius:  src.Float64()*RadiusSpan + MinRadius,
	}
}

// update advances p by one frame. Order matters: repulsion or spring, then
// the wall check on the resulting position, which is the position before
// drift, then drift.
func (p *Particle) update(ptr PointerState, vp Viewport) {
	repelled := false
	if ptr.Present {
		dx := ptr.X - p.X
		dy := ptr.Y - p.Y
		d := math.Sqrt(dx*dx + dy*dy)
		if d < InfluenceRadius {
			repelled = true
			// d == 0 has no direction; hold position for this frame.
			if d > 0 {
				force := (InfluenceRadius - d) / InfluenceRadius
				p.X -= dx / d * force * p.Density * PushFactor
				p.Y -= dy / d * force * p.Density * PushFactor
			}
		}
	}
	if !repelled {
		if p.X != p.BaseX {
			p.X -= (p.X - p.BaseX) / SpringDivisor
		}
		if p.Y != p.BaseY {
			p.Y -= (p.Y - p.BaseY) / SpringDivisor
		}
	}

	// no clamping: a particle lingering outside flips again next frame
	if p.X < 0 || p.X > vp.Width {
		p.VX = -p.VX
	}
	if p.Y < 0 || p.Y > vp.Height {
		p.VY = -p.VY
	}

	p.X += p.VX
	p.Y += p.VY
}

// Displacement is the distance from the particle to its base position.
func (p Particle) Displacement() float64 {
	return math.Hypot(p.X-p.BaseX, p.Y-p.BaseY)
}

// InBounds reports whether the particle currently lies inside vp.
func (p Particle) InBounds(vp Viewport) bool {
	return p.X >= 0 && p.X <= vp.Width && p.Y >= 0 && p.Y <= vp.Height
}
