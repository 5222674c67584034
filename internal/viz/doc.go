// Package viz renders the constellation field in a terminal.
//
// The field is drawn onto a braille [Canvas] through [CanvasSurface], one
// dot per few field pixels, and shown beside a scrolling page whose sections
// appear as they are scrolled into view:
//
//   - [Canvas]: braille dot grid with per-cell intensity
//   - [CanvasSurface]: field.Surface adapter for a Canvas
//   - [Page]: stacked page sections wired to a reveal.Observer
//   - [Model]: bubbletea model driving frames with tea.Tick
package viz
