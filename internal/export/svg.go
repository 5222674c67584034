// Package export writes field frames to files.
package export

import (
	"fmt"
	"image/color"
	"os"
	"strings"

	"github.com/san-kum/constellation/internal/viz"
)

const background = "#ffffff"

// SVG is a field surface that records one frame as an SVG document.
// Clear starts a new document, so after a Tick it holds the last frame.
type SVG struct {
	sb     strings.Builder
	width  float64
	height float64
	open   bool
}

func NewSVG() *SVG { return &SVG{} }

func (s *SVG) Clear(width, height float64) {
	s.sb.Reset()
	s.width, s.height = width, height
	s.open = true

	s.sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, background))
}

func (s *SVG) FillCircle(x, y, radius float64, c color.NRGBA) {
	if !s.open {
		return
	}
	s.sb.WriteString(fmt.Sprintf(`<circle cx="%.2f" cy="%.2f" r="%.2f" fill="%s"%s/>
`, x, y, radius, hex(c), opacityAttr("fill-opacity", c)))
}

func (s *SVG) StrokeLine(x0, y0, x1, y1, width float64, c color.NRGBA) {
	if !s.open {
		return
	}
	s.sb.WriteString(fmt.Sprintf(`<line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s" stroke-width="%.1f"%s/>
`, x0, y0, x1, y1, hex(c), width, opacityAttr("stroke-opacity", c)))
}

// String returns the recorded document, or "" before the first frame.
func (s *SVG) String() string {
	if !s.open {
		return ""
	}
	return s.sb.String() + "</svg>"
}

// WriteFile saves the recorded document to path.
func (s *SVG) WriteFile(path string) error {
	if !s.open {
		return fmt.Errorf("write %s: no frame recorded", path)
	}
	if err := os.WriteFile(path, []byte(s.String()), 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func hex(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func opacityAttr(name string, c color.NRGBA) string {
	if c.A == 255 {
		return ""
	}
	return fmt.Sprintf(` %s="%.3f"`, name, float64(c.A)/255)
}

// CanvasToSVG converts a braille canvas to SVG, one dot per lit sub-pixel.
// Each dot takes the shade of its cell.
func CanvasToSVG(canvas *viz.Canvas, scale float64, c color.NRGBA) string {
	if canvas == nil {
		return ""
	}

	width := float64(canvas.DotsWide()) * scale
	height := float64(canvas.DotsHigh()) * scale

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
<g fill="%s">
`, width, height, width, height, background, hex(c)))

	dotRadius := scale * 0.4
	for y := 0; y < canvas.DotsHigh(); y++ {
		for x := 0; x < canvas.DotsWide(); x++ {
			if !canvas.Lit(x, y) {
				continue
			}
			shade := color.NRGBA{A: canvas.Shade[y/4][x/2]}
			sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f"%s/>
`, float64(x)*scale+scale/2, float64(y)*scale+scale/2, dotRadius, opacityAttr("fill-opacity", shade)))
		}
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}
