package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles holds the lipgloss styles derived from a Theme.
type Styles struct {
	Bright, Mid, Faint lipgloss.Style
	Panel              lipgloss.Style
	CardTitle          lipgloss.Style
	CardBody           lipgloss.Style
	Status             lipgloss.Style
	Paused             lipgloss.Style
	MetricLabel        lipgloss.Style
	MetricValue        lipgloss.Style
	KeyHint            lipgloss.Style
}

func NewStyles(t Theme) Styles {
	return Styles{
		Bright: lipgloss.NewStyle().Foreground(t.Bright).Bold(true),
		Mid:    lipgloss.NewStyle().Foreground(t.Mid),
		Faint:  lipgloss.NewStyle().Foreground(t.Faint),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(t.Border).
			PaddingLeft(1),
		CardTitle:   lipgloss.NewStyle().Foreground(t.Bright).Bold(true),
		CardBody:    lipgloss.NewStyle().Foreground(t.Text),
		Status:      lipgloss.NewStyle().Foreground(t.Muted),
		Paused:      lipgloss.NewStyle().Foreground(t.Warning).Bold(true),
		MetricLabel: lipgloss.NewStyle().Foreground(t.Muted),
		MetricValue: lipgloss.NewStyle().Foreground(t.Text).Bold(true),
		KeyHint:     lipgloss.NewStyle().Foreground(t.Muted).Italic(true),
	}
}

func (s Styles) shades() [3]lipgloss.Style {
	return [3]lipgloss.Style{s.Faint, s.Mid, s.Bright}
}

// RenderCanvas colours each braille cell by its intensity, rendering runs
// of equally shaded cells in one style call.
func (s Styles) RenderCanvas(c *Canvas) string {
	var b strings.Builder
	for row := range c.Grid {
		start := 0
		for col := 1; col <= c.Width; col++ {
			if col < c.Width && s.bucket(c, row, col) == s.bucket(c, row, start) {
				continue
			}
			seg := string(c.Grid[row][start:col])
			if k := s.bucket(c, row, start); k < 0 {
				b.WriteString(seg)
			} else {
				b.WriteString(s.shades()[k].Render(seg))
			}
			start = col
		}
		if row < len(c.Grid)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// bucket returns -1 for an empty cell, otherwise the shade index of its
// intensity.
func (s Styles) bucket(c *Canvas, row, col int) int {
	if c.Grid[row][col] == blank {
		return -1
	}
	a := c.Shade[row][col]
	switch {
	case a >= 200:
		return 2
	case a >= 120:
		return 1
	default:
		return 0
	}
}

// SparklineChart renders a mini sparkline from values
func SparklineChart(values []float64, width int) string {
	if len(values) == 0 || width <= 0 {
		return strings.Repeat("─", max(width, 0))
	}

	chars := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	// newest samples win when there are more values than columns
	if len(values) > width {
		values = values[len(values)-width:]
	}

	lo, hi := values[0], values[0]
	for _, v := range values {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	rng := hi - lo
	if rng == 0 {
		rng = 1
	}

	out := make([]rune, len(values))
	for i, v := range values {
		idx := int((v - lo) / rng * float64(len(chars)-1))
		out[i] = chars[min(max(idx, 0), len(chars)-1)]
	}
	return string(out)
}
