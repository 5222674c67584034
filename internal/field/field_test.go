package field

import (
	"image/color"
	"math"
	"math/rand"
	"testing"
)

type circle struct{ x, y, r float64 }

type line struct {
	x0, y0, x1, y1, width float64
	c                     color.NRGBA
}

type recordSurface struct {
	clears  int
	w, h    float64
	circles []circle
	lines   []line
}

func (r *recordSurface) Clear(w, h float64) {
	r.clears++
	r.w, r.h = w, h
	r.circles = r.circles[:0]
	r.lines = r.lines[:0]
}

func (r *recordSurface) FillCircle(x, y, radius float64, c color.NRGBA) {
	r.circles = append(r.circles, circle{x, y, radius})
}

func (r *recordSurface) StrokeLine(x0, y0, x1, y1, width float64, c color.NRGBA) {
	r.lines = append(r.lines, line{x0, y0, x1, y1, width, c})
}

func newTestField(seed int64) *Field {
	return New(Viewport{Width: 800, Height: 600}, rand.New(rand.NewSource(seed)))
}

func TestInitializeBounds(t *testing.T) {
	f := newTestField(1)

	if f.Len() != ParticleCount {
		t.Fatalf("expected %d particles, got %d", ParticleCount, f.Len())
	}

	for i, p := range f.Particles() {
		if p.X < 0 || p.X >= 800 || p.Y < 0 || p.Y >= 600 {
			t.Errorf("particle %d out of bounds: (%f, %f)", i, p.X, p.Y)
		}
		if p.X != p.BaseX || p.Y != p.BaseY {
			t.Errorf("particle %d base mismatch", i)
		}
		if p.Radius < 2 || p.Radius >= 4.5 {
			t.Errorf("particle %d radius %f out of range", i, p.Radius)
		}
		if p.Density < 2 || p.Density >= 7 {
			t.Errorf("particle %d density %f out of range", i, p.Density)
		}
		if math.Abs(p.VX) > 0.1 || math.Abs(p.VY) > 0.1 {
			t.Errorf("particle %d velocity (%f, %f) out of range", i, p.VX, p.VY)
		}
	}
}

func TestInitializeDeterministic(t *testing.T) {
	a := newTestField(7).Particles()
	b := newTestField(7).Particles()

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("particle %d differs for the same seed", i)
		}
	}
}

func TestSpringTowardBase(t *testing.T) {
	vp := Viewport{Width: 800, Height: 600}
	p := Particle{X: 150, Y: 90, BaseX: 100, BaseY: 100, Density: 3, Radius: 2}

	for i := 0; i < 50; i++ {
		before := math.Abs(p.X - p.BaseX)
		beforeY := math.Abs(p.Y - p.BaseY)
		p.update(PointerState{}, vp)
		if after := math.Abs(p.X - p.BaseX); after >= before {
			t.Fatalf("step %d: x moved away from base (%f -> %f)", i, before, after)
		}
		if after := math.Abs(p.Y - p.BaseY); after >= beforeY {
			t.Fatalf("step %d: y moved away from base (%f -> %f)", i, beforeY, after)
		}
	}
}

func TestSpringAtBaseStaysPut(t *testing.T) {
	p := Particle{X: 100, Y: 100, BaseX: 100, BaseY: 100}
	p.update(PointerState{}, Viewport{Width: 800, Height: 600})

	if p.X != 100 || p.Y != 100 {
		t.Errorf("expected particle to stay at base, got (%f, %f)", p.X, p.Y)
	}
}

func TestRepulsion(t *testing.T) {
	tests := []struct {
		name    string
		dist    float64
		density float64
	}{
		{"close", 10, 2},
		{"mid", 50, 5},
		{"far", 199, 6.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Particle{X: 400, Y: 300, BaseX: 400, BaseY: 300, Density: tt.density}
			ptr := PointerState{X: 400 - tt.dist, Y: 300, Present: true}
			p.update(ptr, Viewport{Width: 800, Height: 600})

			got := math.Hypot(p.X-ptr.X, p.Y-ptr.Y)
			if got <= tt.dist {
				t.Fatalf("expected distance to grow from %f, got %f", tt.dist, got)
			}

			want := (InfluenceRadius - tt.dist) / InfluenceRadius * tt.density * PushFactor
			if math.Abs((got-tt.dist)-want) > 1e-9 {
				t.Errorf("expected push of %f, got %f", want, got-tt.dist)
			}
		})
	}
}

func TestOutsideInfluenceSprings(t *testing.T) {
	p := Particle{X: 120, Y: 100, BaseX: 100, BaseY: 100}
	p.update(PointerState{X: 700, Y: 500, Present: true}, Viewport{Width: 800, Height: 600})

	if p.X != 119 {
		t.Errorf("expected x 119 after spring, got %f", p.X)
	}
}

func TestCoincidentPointer(t *testing.T) {
	p := Particle{X: 100, Y: 100, BaseX: 90, BaseY: 90, Density: 4}
	p.update(PointerState{X: 100, Y: 100, Present: true}, Viewport{Width: 800, Height: 600})

	if math.IsNaN(p.X) || math.IsNaN(p.Y) {
		t.Fatal("position became NaN")
	}
	if p.X != 100 || p.Y != 100 {
		t.Errorf("expected position held at (100, 100), got (%f, %f)", p.X, p.Y)
	}
}

func TestWallBounce(t *testing.T) {
	vp := Viewport{Width: 800, Height: 600}

	tests := []struct {
		name   string
		p      Particle
		wantVX float64
		wantVY float64
	}{
		{"left", Particle{X: -0.5, Y: 10, BaseX: -0.5, BaseY: 10, VX: -0.05, VY: 0.02}, 0.05, 0.02},
		{"right", Particle{X: 800.5, Y: 10, BaseX: 800.5, BaseY: 10, VX: 0.05, VY: 0.02}, -0.05, 0.02},
		{"top", Particle{X: 10, Y: -1, BaseX: 10, BaseY: -1, VX: 0.01, VY: -0.03}, 0.01, 0.03},
		{"bottom", Particle{X: 10, Y: 601, BaseX: 10, BaseY: 601, VX: 0.01, VY: 0.03}, 0.01, -0.03},
		{"inside", Particle{X: 10, Y: 10, BaseX: 10, BaseY: 10, VX: 0.01, VY: 0.03}, 0.01, 0.03},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tt.p
			p.update(PointerState{}, vp)
			if p.VX != tt.wantVX || p.VY != tt.wantVY {
				t.Errorf("expected v (%f, %f), got (%f, %f)", tt.wantVX, tt.wantVY, p.VX, p.VY)
			}
		})
	}
}

func TestWallBounceNoClamp(t *testing.T) {
	// lingering outside: the velocity flips on every frame it stays out
	p := Particle{X: -5, Y: 10, BaseX: -5, BaseY: 10, VX: 0.01}
	vp := Viewport{Width: 800, Height: 600}

	p.update(PointerState{}, vp)
	if p.VX != -0.01 || p.X >= 0 {
		t.Fatalf("expected flip without clamp, got x=%f vx=%f", p.X, p.VX)
	}
	p.update(PointerState{}, vp)
	if p.VX != 0.01 {
		t.Errorf("expected second flip, got vx=%f", p.VX)
	}
}

func TestOpacity(t *testing.T) {
	if got := Opacity(ConnectDistanceSq); got != 0 {
		t.Errorf("expected opacity 0 at threshold, got %f", got)
	}
	if got := Opacity(0); got != 1 {
		t.Errorf("expected opacity 1 at zero distance, got %f", got)
	}
	if got := Opacity(12500); got != 0.5 {
		t.Errorf("expected opacity 0.5, got %f", got)
	}
}

func TestConnectIncludesSelfPairs(t *testing.T) {
	ps := []Particle{
		{X: 0, Y: 0},
		{X: 100, Y: 0},
		{X: 1000, Y: 1000},
	}
	s := &recordSurface{}

	n := connect(ps, s)

	// 3 self pairs plus (0,1); (0,2) and (1,2) are too far
	if n != 4 {
		t.Fatalf("expected 4 segments, got %d", n)
	}
	if s.lines[0].x0 != s.lines[0].x1 || s.lines[0].c.A != 255 {
		t.Errorf("expected zero-length opaque self segment, got %+v", s.lines[0])
	}
	if s.lines[1].width != LineWidth {
		t.Errorf("expected width %f, got %f", LineWidth, s.lines[1].width)
	}
}

func TestConnectThresholdExclusive(t *testing.T) {
	ps := []Particle{{X: 0, Y: 0}, {X: 150, Y: 50}} // d2 = 25000
	s := &recordSurface{}

	if n := connect(ps, s); n != 2 {
		t.Errorf("expected only self pairs at the threshold, got %d", n)
	}
}

func TestTickDraws(t *testing.T) {
	f := newTestField(3)
	s := &recordSurface{}

	f.Tick(s)

	if s.clears != 1 || s.w != 800 || s.h != 600 {
		t.Errorf("expected one clear of 800x600, got %d of %fx%f", s.clears, s.w, s.h)
	}
	if len(s.circles) != ParticleCount {
		t.Errorf("expected %d circles, got %d", ParticleCount, len(s.circles))
	}
	if len(s.lines) < ParticleCount {
		t.Errorf("expected at least %d segments, got %d", ParticleCount, len(s.lines))
	}

	st := f.Stats()
	if st.Frame != 1 || st.Particles != ParticleCount || st.Connections != len(s.lines) {
		t.Errorf("unexpected stats %+v", st)
	}
}

func TestPointerLeave(t *testing.T) {
	f := newTestField(1)

	f.OnPointerMove(10, 20)
	if ptr := f.Pointer(); !ptr.Present || ptr.X != 10 || ptr.Y != 20 {
		t.Fatalf("unexpected pointer %+v", ptr)
	}

	f.OnPointerLeave()
	if f.Pointer().Present {
		t.Error("expected pointer cleared")
	}
}

func TestWithOpacity(t *testing.T) {
	tests := []struct {
		opacity float64
		want    uint8
	}{
		{-1, 0},
		{0, 0},
		{0.5, 128},
		{1, 255},
		{2, 255},
	}

	for _, tt := range tests {
		if got := WithOpacity(LineColor, tt.opacity).A; got != tt.want {
			t.Errorf("opacity %f: expected alpha %d, got %d", tt.opacity, tt.want, got)
		}
	}
}
