//go:build ebiten

package window

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

type shape struct {
	circle         bool
	x0, y0, x1, y1 float32
	size           float32
	col            color.NRGBA
}

// Surface draws onto the screen image handed to Draw. The last frame is
// kept so a paused loop still shows it.
type Surface struct {
	dst    *ebiten.Image
	shapes []shape
}

func (s *Surface) Clear(width, height float64) {
	s.shapes = s.shapes[:0]
	if s.dst != nil {
		s.dst.Fill(background)
	}
}

func (s *Surface) FillCircle(x, y, radius float64, c color.NRGBA) {
	s.add(shape{circle: true, x0: float32(x), y0: float32(y), size: float32(radius), col: c})
}

func (s *Surface) StrokeLine(x0, y0, x1, y1, width float64, c color.NRGBA) {
	s.add(shape{x0: float32(x0), y0: float32(y0), x1: float32(x1), y1: float32(y1), size: float32(width), col: c})
}

func (s *Surface) Replay() {
	if s.dst == nil {
		return
	}
	s.dst.Fill(background)
	for _, sh := range s.shapes {
		s.draw(sh)
	}
}

func (s *Surface) Len() int { return len(s.shapes) }

func (s *Surface) add(sh shape) {
	s.shapes = append(s.shapes, sh)
	if s.dst != nil {
		s.draw(sh)
	}
}

func (s *Surface) draw(sh shape) {
	if sh.circle {
		vector.DrawFilledCircle(s.dst, sh.x0, sh.y0, sh.size, sh.col, true)
		return
	}
	vector.StrokeLine(s.dst, sh.x0, sh.y0, sh.x1, sh.y1, sh.size, sh.col, true)
}
