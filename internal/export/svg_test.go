package export

import (
	"image/color"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/san-kum/constellation/internal/field"
	"github.com/san-kum/constellation/internal/viz"
)

func TestSVGEmpty(t *testing.T) {
	s := NewSVG()
	if s.String() != "" {
		t.Error("expected empty document before the first frame")
	}
	if err := s.WriteFile(filepath.Join(t.TempDir(), "out.svg")); err == nil {
		t.Error("expected error writing an empty document")
	}
}

func TestSVGFrame(t *testing.T) {
	f := field.New(field.Viewport{Width: 800, Height: 600}, rand.New(rand.NewSource(1)))
	s := NewSVG()

	f.Tick(s)
	f.Tick(s)

	out := s.String()
	if !strings.HasPrefix(out, "<?xml") || !strings.HasSuffix(out, "</svg>") {
		t.Fatal("expected a complete svg document")
	}
	if strings.Count(out, "<svg") != 1 {
		t.Error("expected clear to discard the previous frame")
	}
	if n := strings.Count(out, "<circle"); n != field.ParticleCount {
		t.Errorf("expected %d circles, got %d", field.ParticleCount, n)
	}
	if n := strings.Count(out, "<line"); n != f.Stats().Connections {
		t.Errorf("expected %d lines, got %d", f.Stats().Connections, n)
	}
	if !strings.Contains(out, `fill="#007bff"`) {
		t.Error("expected particle colour")
	}
	if !strings.Contains(out, `<rect width="100%" height="100%" fill="#ffffff"/>`) {
		t.Error("expected white page background")
	}
}

func TestSVGOpacity(t *testing.T) {
	s := NewSVG()
	s.Clear(10, 10)
	s.StrokeLine(0, 0, 5, 5, 1.2, color.NRGBA{B: 255, A: 51})
	s.StrokeLine(0, 0, 5, 5, 1.2, color.NRGBA{B: 255, A: 255})

	out := s.String()
	if strings.Count(out, `stroke-opacity="0.200"`) != 1 {
		t.Errorf("expected one translucent line, got %q", out)
	}
	if strings.Count(out, "stroke-opacity") != 1 {
		t.Error("expected opaque line without opacity attribute")
	}
}

func TestSVGWriteFile(t *testing.T) {
	s := NewSVG()
	s.Clear(10, 10)
	s.FillCircle(5, 5, 2, field.ParticleColor)

	path := filepath.Join(t.TempDir(), "frame.svg")
	if err := s.WriteFile(path); err != nil {
		t.Fatalf("write: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != s.String() {
		t.Error("expected file contents to match")
	}
}

func TestCanvasToSVG(t *testing.T) {
	if CanvasToSVG(nil, 2, field.ParticleColor) != "" {
		t.Error("expected empty output for nil canvas")
	}

	c := viz.NewCanvas(2, 1)
	c.Set(0, 0, 255)
	c.Set(3, 3, 100)

	out := CanvasToSVG(c, 2, field.ParticleColor)
	if n := strings.Count(out, "<circle"); n != 2 {
		t.Errorf("expected 2 dots, got %d", n)
	}
	if !strings.Contains(out, `width="8" height="8"`) {
		t.Error("expected size in dots times scale")
	}
}
