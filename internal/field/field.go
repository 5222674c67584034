package field

type Viewport struct {
	Width, Height float64
}

// PointerState holds the last pointer position. Present is false once the
// pointer has left the tracked region.
type PointerState struct {
	X, Y    float64
	Present bool
}

// FrameStats describes the most recent Tick.
type FrameStats struct {
	Frame       int
	Particles   int
	Connections int
}

type Field struct {
	particles []Particle
	pointer   PointerState
	viewport  Viewport
	src       Source
	stats     FrameStats
}

// New creates a field sized to vp and generates its particles from src.
func New(vp Viewport, src Source) *Field {
	f := &Field{src: src}
	f.Initialize(vp)
	return f
}

// Initialize sets the viewport and replaces every particle with a freshly
// sampled one.
func (f *Field) Initialize(vp Viewport) {
	f.viewport = vp
	ps := make([]Particle, ParticleCount)
	for i := range ps {
		ps[i] = newParticle(vp, f.src)
	}
	f.particles = ps
}

func (f *Field) OnPointerMove(x, y float64) {
	f.pointer = PointerState{X: x, Y: y, Present: true}
}

func (f *Field) OnPointerLeave() {
	f.pointer = PointerState{}
}

// OnResize regenerates the whole field for the new viewport. Old positions
// are discarded.
func (f *Field) OnResize(vp Viewport) {
	f.Initialize(vp)
}

// Tick renders one animation frame onto s.
func (f *Field) Tick(s Surface) {
	s.Clear(f.viewport.Width, f.viewport.Height)
	for i := range f.particles {
		p := &f.particles[i]
		p.update(f.pointer, f.viewport)
		s.FillCircle(p.X, p.Y, p.Radius, ParticleColor)
	}
	conns := connect(f.particles, s)

	f.stats = FrameStats{
		Frame:       f.stats.Frame + 1,
		Particles:   len(f.particles),
		Connections: conns,
	}
}

// Particles returns a copy of the current particles.
func (f *Field) Particles() []Particle {
	out := make([]Particle, len(f.particles))
	copy(out, f.particles)
	return out
}

// SetParticle overwrites particle i. It is meant for hosts and tests that
// need to stage a specific layout.
func (f *Field) SetParticle(i int, p Particle) {
	f.particles[i] = p
}

func (f *Field) Len() int              { return len(f.particles) }
func (f *Field) Pointer() PointerState { return f.pointer }
func (f *Field) Viewport() Viewport    { return f.viewport }
func (f *Field) Stats() FrameStats     { return f.stats }
