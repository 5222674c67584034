package viz

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/san-kum/constellation/internal/config"
	"github.com/san-kum/constellation/internal/field"
	"github.com/san-kum/constellation/internal/loop"
	"github.com/san-kum/constellation/internal/metrics"
	"github.com/san-kum/constellation/internal/reveal"
)

const (
	defaultWidth    = 80
	defaultHeight   = 24
	panelWidth      = 34
	dotPixels       = 5.0
	scrollStep      = 3
	historyCapacity = 120
)

type TickMsg time.Time

type Options struct {
	Sections []config.Section
	FPS      int
	Seed     int64
	Theme    string
	Log      *zap.Logger
}

// scene is the state touched by frame callbacks. It lives behind a pointer
// so the bubbletea Model can be copied freely.
type scene struct {
	field    *field.Field
	canvas   *Canvas
	surface  *CanvasSurface
	recorder *metrics.Recorder
}

func (s *scene) frame(time.Time) {
	s.field.Tick(s.surface)
	s.recorder.Observe(s.field)
}

// Model is the terminal host: the canvas on the left, the page on the right.
type Model struct {
	scene     *scene
	queue     *loop.Queue
	loop      *loop.Loop
	page      *Page
	observer  *reveal.Observer
	styles    Styles
	log       *zap.Logger
	interval  time.Duration
	width     int
	height    int
	showPanel bool
	showHelp  bool
}

func NewModel(opts Options) Model {
	if opts.FPS <= 0 {
		opts.FPS = config.DefaultFPS
	}
	if opts.Log == nil {
		opts.Log = zap.NewNop()
	}

	m := Model{
		queue:     &loop.Queue{},
		styles:    NewStyles(ThemeByName(opts.Theme)),
		log:       opts.Log,
		interval:  time.Second / time.Duration(opts.FPS),
		width:     defaultWidth,
		height:    defaultHeight,
		showPanel: len(opts.Sections) > 0,
	}

	cols, rows := m.canvasSize()
	canvas := NewCanvas(cols, rows)
	m.scene = &scene{
		field:    field.New(viewportFor(cols, rows), rand.New(rand.NewSource(opts.Seed))),
		canvas:   canvas,
		surface:  NewCanvasSurface(canvas, dotPixels),
		recorder: metrics.NewRecorder(historyCapacity, metrics.NewConnections()),
	}
	m.loop = loop.New(m.queue, m.scene.frame)

	log := opts.Log
	m.observer = reveal.NewObserver(reveal.WithOnReveal(func(id string) {
		log.Debug("section revealed", zap.String("id", id))
	}))
	m.page = NewPage(opts.Sections, m.observer)
	return m
}

// Run starts the terminal UI and blocks until the user quits.
func Run(opts Options) error {
	p := tea.NewProgram(NewModel(opts),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithReportFocus(),
	)
	_, err := p.Run()
	return err
}

func viewportFor(cols, rows int) field.Viewport {
	return field.Viewport{
		Width:  float64(cols*2) * dotPixels,
		Height: float64(rows*4) * dotPixels,
	}
}

func (m Model) Field() *field.Field         { return m.scene.field }
func (m Model) Page() *Page                 { return m.page }
func (m Model) Loop() *loop.Loop            { return m.loop }
func (m Model) Observer() *reveal.Observer  { return m.observer }
func (m Model) Recorder() *metrics.Recorder { return m.scene.recorder }

func (m Model) Init() tea.Cmd {
	m.observer.Activate(reveal.DefaultDelay)
	m.loop.Start()
	m.log.Info("terminal started", zap.Int("fps", int(time.Second/m.interval)))
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Update handles input events and steps the field.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		m.handleMouse(msg)
	case tea.BlurMsg:
		m.scene.field.OnPointerLeave()
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
	case TickMsg:
		m.queue.Flush(time.Time(msg))
		_, rows := m.canvasSize()
		m.page.Check(rows)
		return m, m.tick()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	_, rows := m.canvasSize()
	switch msg.String() {
	case "q", "ctrl+c":
		m.loop.Stop()
		m.log.Info("terminal stopped", zap.Int("frames", m.loop.Frames()))
		return m, tea.Quit
	case " ":
		if m.loop.Running() {
			m.loop.Stop()
		} else {
			m.loop.Start()
		}
	case "r":
		m.scene.field.Initialize(m.scene.field.Viewport())
	case "down", "j":
		m.page.Scroll(1, rows)
	case "up", "k":
		m.page.Scroll(-1, rows)
	case "pgdown":
		m.page.Scroll(rows/2, rows)
	case "pgup":
		m.page.Scroll(-rows/2, rows)
	case "tab":
		m.showPanel = !m.showPanel
		m.resize(m.width, m.height)
	case "?":
		m.showHelp = !m.showHelp
	}
	return m, nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	cols, rows := m.canvasSize()
	switch msg.Button {
	case tea.MouseButtonWheelDown:
		m.page.Scroll(scrollStep, rows)
		return
	case tea.MouseButtonWheelUp:
		m.page.Scroll(-scrollStep, rows)
		return
	}

	if msg.X >= 0 && msg.X < cols && msg.Y >= 0 && msg.Y < rows {
		// centre of the cell in field pixels
		m.scene.field.OnPointerMove(
			(float64(msg.X*2)+1)*dotPixels,
			(float64(msg.Y*4)+2)*dotPixels,
		)
		return
	}
	if m.scene.field.Pointer().Present {
		m.scene.field.OnPointerLeave()
	}
}

func (m *Model) resize(w, h int) {
	m.width, m.height = w, h
	cols, rows := m.canvasSize()

	m.scene.canvas = NewCanvas(cols, rows)
	m.scene.surface = NewCanvasSurface(m.scene.canvas, dotPixels)
	m.scene.field.OnResize(viewportFor(cols, rows))
	m.page.Scroll(0, rows)

	m.log.Debug("resize",
		zap.Int("cols", cols),
		zap.Int("rows", rows),
		zap.Float64("width", m.scene.field.Viewport().Width),
		zap.Float64("height", m.scene.field.Viewport().Height),
	)
}

// canvasSize returns the canvas size in cells: everything but the status
// line and, when shown, the page panel.
func (m Model) canvasSize() (cols, rows int) {
	rows = max(m.height-1, 1)
	cols = m.width
	if m.panelVisible() {
		cols -= panelWidth
	}
	return max(cols, 1), rows
}

func (m Model) panelVisible() bool {
	return m.showPanel && m.width >= 2*panelWidth
}

// View renders the TUI interface.
func (m Model) View() string {
	_, rows := m.canvasSize()
	body := m.styles.RenderCanvas(m.scene.canvas)

	if m.panelVisible() {
		lines := m.page.Lines(rows, panelWidth-2, m.styles)
		panel := m.styles.Panel.
			Width(panelWidth - 1).
			Height(rows).
			Render(strings.Join(lines, "\n"))
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, panel)
	}

	return body + "\n" + m.statusLine()
}

func (m Model) statusLine() string {
	if m.showHelp {
		return m.styles.KeyHint.Render("q quit · space pause · r regenerate · j/k/wheel scroll · tab page · ? help")
	}

	st := m.scene.field.Stats()
	parts := []string{
		m.styles.MetricLabel.Render("frame ") + m.styles.MetricValue.Render(fmt.Sprintf("%d", st.Frame)),
		m.styles.MetricLabel.Render("links ") + m.styles.MetricValue.Render(fmt.Sprintf("%d", st.Connections)),
		m.styles.Mid.Render(SparklineChart(m.scene.recorder.History("connections"), 16)),
		m.styles.MetricLabel.Render("revealed ") + m.styles.MetricValue.Render(
			fmt.Sprintf("%d/%d", len(m.observer.Revealed()), len(m.page.sections))),
	}
	if !m.loop.Running() {
		parts = append(parts, m.styles.Paused.Render("PAUSED"))
	}
	parts = append(parts, m.styles.KeyHint.Render("? help"))
	return m.styles.Status.Render(strings.Join(parts, "  "))
}
