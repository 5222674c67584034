//go:build ebiten

// Package window hosts the field in an ebiten window. It is built with the
// ebiten tag because raylib and ebiten each link their own glfw.
package window

import (
	"fmt"
	"image/color"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"github.com/san-kum/constellation/internal/config"
	"github.com/san-kum/constellation/internal/field"
	"github.com/san-kum/constellation/internal/loop"
)

var background = color.NRGBA{R: 255, G: 255, B: 255, A: 255}

// Game implements ebiten.Game around a field and its frame loop.
type Game struct {
	field   *field.Field
	queue   *loop.Queue
	loop    *loop.Loop
	surface *Surface
	showHUD bool
	log     *zap.Logger
}

func NewGame(cfg *config.Config, log *zap.Logger) *Game {
	vp := field.Viewport{Width: float64(cfg.Window.Width), Height: float64(cfg.Window.Height)}
	g := &Game{
		field:   field.New(vp, rand.New(rand.NewSource(cfg.Seed))),
		queue:   &loop.Queue{},
		surface: &Surface{},
		showHUD: true,
		log:     log,
	}
	g.loop = loop.New(g.queue, func(time.Time) { g.field.Tick(g.surface) })
	return g
}

func (g *Game) Field() *field.Field { return g.field }
func (g *Game) Loop() *loop.Loop    { return g.loop }

// Run opens the window and blocks until it is closed.
func Run(cfg *config.Config, log *zap.Logger) error {
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.Window.FPS)

	g := NewGame(cfg, log)
	g.loop.Start()
	defer g.loop.Stop()

	log.Info("window started",
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
		zap.Int("fps", cfg.Window.FPS),
	)
	if err := ebiten.RunGame(g); err != nil && err != ebiten.Termination {
		return fmt.Errorf("run ebiten window: %w", err)
	}
	log.Info("window closed", zap.Int("frames", g.loop.Frames()))
	return nil
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if g.loop.Running() {
			g.loop.Stop()
		} else {
			g.loop.Start()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.field.Initialize(g.field.Viewport())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.showHUD = !g.showHUD
	}

	mx, my := ebiten.CursorPosition()
	g.pointer(mx, my, ebiten.IsFocused())
	return nil
}

// pointer moves the field's pointer while the cursor is over the window and
// clears it once the cursor leaves.
func (g *Game) pointer(x, y int, focused bool) {
	vp := g.field.Viewport()
	inside := focused && x >= 0 && y >= 0 && float64(x) < vp.Width && float64(y) < vp.Height
	if inside {
		g.field.OnPointerMove(float64(x), float64(y))
		return
	}
	if g.field.Pointer().Present {
		g.field.OnPointerLeave()
		g.log.Debug("pointer left")
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.surface.dst = screen
	before := g.field.Stats().Frame
	g.queue.Flush(time.Now())
	if g.field.Stats().Frame == before {
		g.surface.Replay()
	}

	if g.showHUD {
		st := g.field.Stats()
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %0.2f  frame %d  links %d", ebiten.ActualFPS(), st.Frame, st.Connections), 10, 10)
		if !g.loop.Running() {
			ebitenutil.DebugPrintAt(screen, "PAUSED", 10, 30)
		}
	}
}

// Layout follows the window size and regenerates the field when it changes.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	vp := field.Viewport{Width: float64(outsideWidth), Height: float64(outsideHeight)}
	if vp != g.field.Viewport() {
		g.field.OnResize(vp)
		g.log.Debug("resize", zap.Int("width", outsideWidth), zap.Int("height", outsideHeight))
	}
	return outsideWidth, outsideHeight
}
