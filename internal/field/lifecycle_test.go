package field_test

import (
	"image/color"
	"math"
	"math/rand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/constellation/internal/field"
)

type nopSurface struct{}

func (nopSurface) Clear(w, h float64)                                  {}
func (nopSurface) FillCircle(x, y, r float64, c color.NRGBA)           {}
func (nopSurface) StrokeLine(x0, y0, x1, y1, w float64, c color.NRGBA) {}

var _ = Describe("Field", func() {
	var f *field.Field

	BeforeEach(func() {
		f = field.New(field.Viewport{Width: 800, Height: 600}, rand.New(rand.NewSource(42)))
	})

	Describe("Initialize", func() {
		It("creates exactly the configured number of particles inside the viewport", func() {
			Expect(f.Len()).To(Equal(field.ParticleCount))
			for _, p := range f.Particles() {
				Expect(p.X).To(BeNumerically(">=", 0))
				Expect(p.X).To(BeNumerically("<", 800))
				Expect(p.Y).To(BeNumerically(">=", 0))
				Expect(p.Y).To(BeNumerically("<", 600))
				Expect(p.X).To(Equal(p.BaseX))
				Expect(p.Y).To(Equal(p.BaseY))
			}
		})
	})

	Describe("OnPointerMove then Tick", func() {
		It("pushes the particle away from the pointer", func() {
			p := field.Particle{X: 400, Y: 300, BaseX: 400, BaseY: 300, Density: 4, Radius: 3}
			f.SetParticle(0, p)

			px, py := p.X+30, p.Y+40 // distance 50
			f.OnPointerMove(px, py)
			f.Tick(nopSurface{})

			moved := f.Particles()[0]
			Expect(math.Hypot(moved.X-px, moved.Y-py)).To(BeNumerically(">", 50))
		})
	})

	Describe("OnPointerLeave then Tick", func() {
		It("springs displaced particles back toward base", func() {
			f.SetParticle(0, field.Particle{X: 300, Y: 300, BaseX: 200, BaseY: 200, Radius: 2, Density: 2})
			f.OnPointerMove(300, 310)
			f.OnPointerLeave()
			f.Tick(nopSurface{})

			p := f.Particles()[0]
			Expect(p.Displacement()).To(BeNumerically("<", math.Hypot(100, 100)))
		})
	})

	Describe("OnResize", func() {
		It("replaces every particle and keeps the count", func() {
			before := f.Particles()
			f.OnResize(field.Viewport{Width: 1024, Height: 768})

			after := f.Particles()
			Expect(after).To(HaveLen(field.ParticleCount))
			Expect(f.Viewport()).To(Equal(field.Viewport{Width: 1024, Height: 768}))

			same := 0
			for i := range after {
				if after[i] == before[i] {
					same++
				}
				Expect(after[i].InBounds(f.Viewport())).To(BeTrue())
			}
			Expect(same).To(BeZero())
		})
	})

	Describe("Tick", func() {
		It("counts frames and connections", func() {
			f.Tick(nopSurface{})
			f.Tick(nopSurface{})

			st := f.Stats()
			Expect(st.Frame).To(Equal(2))
			Expect(st.Particles).To(Equal(field.ParticleCount))
			Expect(st.Connections).To(BeNumerically(">=", field.ParticleCount))
		})
	})
})
