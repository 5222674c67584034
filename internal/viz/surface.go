package viz

import (
	"image/color"
	"math"
)

// minLineAlpha hides the faintest segments; a braille dot has no partial
// opacity, so drawing them would fill the canvas.
const minLineAlpha = 64

// CanvasSurface draws a field onto a braille Canvas. Scale is the number of
// field pixels covered by one dot.
type CanvasSurface struct {
	Canvas *Canvas
	Scale  float64
}

func NewCanvasSurface(c *Canvas, scale float64) *CanvasSurface {
	if scale <= 0 {
		scale = 1
	}
	return &CanvasSurface{Canvas: c, Scale: scale}
}

func (s *CanvasSurface) Clear(width, height float64) {
	s.Canvas.Clear()
}

func (s *CanvasSurface) FillCircle(x, y, radius float64, c color.NRGBA) {
	s.Canvas.FillDisc(s.dot(x), s.dot(y), int(radius/s.Scale), c.A)
}

func (s *CanvasSurface) StrokeLine(x0, y0, x1, y1, width float64, c color.NRGBA) {
	if c.A < minLineAlpha {
		return
	}
	s.Canvas.DrawLine(s.dot(x0), s.dot(y0), s.dot(x1), s.dot(y1), c.A)
}

func (s *CanvasSurface) dot(v float64) int {
	return int(math.Floor(v / s.Scale))
}
