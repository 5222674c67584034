package gui

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type shape struct {
	circle         bool
	x0, y0, x1, y1 float32
	size           float32
	col            rl.Color
}

// Surface draws a field frame with raylib. It keeps the frame's shapes so
// the frame can be redrawn while the loop is paused.
type Surface struct {
	shapes []shape
}

func toColor(c color.NRGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}

func (s *Surface) Clear(width, height float64) {
	s.shapes = s.shapes[:0]
	rl.ClearBackground(ColBg)
}

func (s *Surface) FillCircle(x, y, radius float64, c color.NRGBA) {
	sh := shape{circle: true, x0: float32(x), y0: float32(y), size: float32(radius), col: toColor(c)}
	s.shapes = append(s.shapes, sh)
	s.draw(sh)
}

func (s *Surface) StrokeLine(x0, y0, x1, y1, width float64, c color.NRGBA) {
	sh := shape{x0: float32(x0), y0: float32(y0), x1: float32(x1), y1: float32(y1), size: float32(width), col: toColor(c)}
	s.shapes = append(s.shapes, sh)
	s.draw(sh)
}

// Replay redraws the last frame.
func (s *Surface) Replay() {
	rl.ClearBackground(ColBg)
	for _, sh := range s.shapes {
		s.draw(sh)
	}
}

func (s *Surface) Len() int { return len(s.shapes) }

func (s *Surface) draw(sh shape) {
	if sh.circle {
		rl.DrawCircleV(rl.NewVector2(sh.x0, sh.y0), sh.size, sh.col)
		return
	}
	rl.DrawLineEx(rl.NewVector2(sh.x0, sh.y0), rl.NewVector2(sh.x1, sh.y1), sh.size, sh.col)
}
