package field

import "image/color"

// Surface is the drawing target a Field renders onto. Coordinates are in
// viewport pixels.
type Surface interface {
	Clear(width, height float64)
	FillCircle(x, y, radius float64, c color.NRGBA)
	StrokeLine(x0, y0, x1, y1, width float64, c color.NRGBA)
}

var (
	// ParticleColor is #007bff.
	ParticleColor = color.NRGBA{R: 0, G: 123, B: 255, A: 255}
	LineColor     = color.NRGBA{R: 0, G: 123, B: 255, A: 255}
)

const LineWidth = 1.2

// WithOpacity returns c with its alpha set from an opacity in [0,1].
func WithOpacity(c color.NRGBA, opacity float64) color.NRGBA {
	if opacity < 0 {
		opacity = 0
	}
	if opacity > 1 {
		opacity = 1
	}
	c.A = uint8(opacity*255 + 0.5)
	return c
}
