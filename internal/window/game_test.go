//go:build ebiten

package window

import (
	"image/color"
	"testing"

	"go.uber.org/zap"

	"github.com/san-kum/constellation/internal/config"
	"github.com/san-kum/constellation/internal/field"
)

func newTestGame() *Game {
	cfg := config.DefaultConfig()
	cfg.Seed = 3
	return NewGame(cfg, zap.NewNop())
}

func TestLayoutResizes(t *testing.T) {
	g := newTestGame()

	w, h := g.Layout(1024, 768)
	if w != 1024 || h != 768 {
		t.Errorf("expected 1024x768, got %dx%d", w, h)
	}
	if vp := g.Field().Viewport(); vp.Width != 1024 || vp.Height != 768 {
		t.Errorf("expected viewport 1024x768, got %+v", vp)
	}

	before := g.Field().Particles()[0]
	g.Layout(1024, 768)
	if g.Field().Particles()[0] != before {
		t.Error("expected unchanged size to keep the field")
	}
}

func TestPointer(t *testing.T) {
	g := newTestGame()

	g.pointer(100, 50, true)
	if p := g.Field().Pointer(); !p.Present || p.X != 100 || p.Y != 50 {
		t.Errorf("expected pointer at (100, 50), got %+v", p)
	}

	g.pointer(-1, 50, true)
	if g.Field().Pointer().Present {
		t.Error("expected pointer to leave outside the window")
	}

	g.pointer(100, 50, false)
	if g.Field().Pointer().Present {
		t.Error("expected no pointer while unfocused")
	}
}

func TestSurfaceWithoutScreen(t *testing.T) {
	g := newTestGame()
	g.Field().Tick(g.surface)

	want := field.ParticleCount + g.Field().Stats().Connections
	if g.surface.Len() != want {
		t.Errorf("expected %d shapes, got %d", want, g.surface.Len())
	}

	g.surface.Clear(10, 10)
	g.surface.StrokeLine(0, 0, 1, 1, 1, color.NRGBA{A: 255})
	if g.surface.Len() != 1 {
		t.Error("expected clear to drop the previous frame")
	}
}
