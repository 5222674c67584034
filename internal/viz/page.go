package viz

import (
	"github.com/san-kum/constellation/internal/config"
	"github.com/san-kum/constellation/internal/reveal"
)

// RowPixels is the page height of one terminal row, used to express the
// reveal threshold and margin in the same units as the web page.
const RowPixels = 16.0

const sectionGap = 1

// Page is a vertical stack of sections shown in the side panel. Sections
// stay blank until the observer reveals them.
type Page struct {
	sections []config.Section
	tops     []int
	rows     int
	scroll   int
	observer *reveal.Observer
}

func NewPage(sections []config.Section, obs *reveal.Observer) *Page {
	p := &Page{
		sections: sections,
		tops:     make([]int, len(sections)),
		observer: obs,
	}
	row := 0
	for i, s := range sections {
		h := max(s.Height, 1)
		p.tops[i] = row
		obs.Observe(reveal.Element{
			ID:     s.ID,
			Top:    float64(row) * RowPixels,
			Height: float64(h) * RowPixels,
		})
		row += h + sectionGap
	}
	p.rows = row
	return p
}

func (p *Page) Rows() int      { return p.rows }
func (p *Page) ScrollTop() int { return p.scroll }

// Scroll moves the page by delta rows, keeping a full view of viewRows
// where the page is long enough.
func (p *Page) Scroll(delta, viewRows int) {
	p.scroll = min(max(p.scroll+delta, 0), max(p.rows-viewRows, 0))
}

// Check runs the reveal observer against the current scroll window.
func (p *Page) Check(viewRows int) []string {
	return p.observer.Check(float64(p.scroll)*RowPixels, float64(viewRows)*RowPixels)
}

// Lines renders the visible window of the page, one string per row.
func (p *Page) Lines(viewRows, width int, st Styles) []string {
	all := make([]string, p.rows)
	for i, s := range p.sections {
		if p.observer.State(s.ID) != reveal.Revealed {
			continue
		}
		top := p.tops[i]
		body := []string{}
		if s.Title != "" {
			body = append(body, st.CardTitle.Render(truncate(s.Title, width)))
		}
		if s.Body != "" {
			body = append(body, st.CardBody.Render(truncate(s.Body, width)))
		}
		for j, line := range body {
			if j < max(s.Height, 1) {
				all[top+j] = line
			}
		}
	}

	out := make([]string, viewRows)
	for i := range out {
		if r := p.scroll + i; r < len(all) {
			out[i] = all[r]
		}
	}
	return out
}

func truncate(s string, width int) string {
	r := []rune(s)
	if width <= 0 {
		return ""
	}
	if len(r) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	return string(r[:width-1]) + "…"
}
