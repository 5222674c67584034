package gui

import (
	"fmt"
	"math/rand"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"

	"github.com/san-kum/constellation/internal/config"
	"github.com/san-kum/constellation/internal/field"
	"github.com/san-kum/constellation/internal/loop"
)

var (
	ColBg      = rl.NewColor(255, 255, 255, 255)
	ColText    = rl.NewColor(60, 60, 60, 255)
	ColTextDim = rl.NewColor(160, 160, 160, 255)
)

type App struct {
	Field   *field.Field
	Queue   *loop.Queue
	Loop    *loop.Loop
	Surface *Surface
	ShowHUD bool

	log *zap.Logger
}

func initWindow(w config.WindowConfig) {
	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(int32(w.Width), int32(w.Height), w.Title)
	rl.SetTargetFPS(int32(w.FPS))
	rl.SetExitKey(0)
}

// NewApp builds the field for the current window size and schedules its
// frames on a queue drained once per raylib frame.
func NewApp(seed int64, log *zap.Logger) *App {
	vp := field.Viewport{
		Width:  float64(rl.GetScreenWidth()),
		Height: float64(rl.GetScreenHeight()),
	}
	a := &App{
		Field:   field.New(vp, rand.New(rand.NewSource(seed))),
		Queue:   &loop.Queue{},
		Surface: &Surface{},
		ShowHUD: true,
		log:     log,
	}
	a.Loop = loop.New(a.Queue, func(time.Time) { a.Field.Tick(a.Surface) })
	return a
}

// Run opens the window and blocks until it is closed.
func Run(cfg *config.Config, log *zap.Logger) error {
	initWindow(cfg.Window)
	defer rl.CloseWindow()
	if !rl.IsWindowReady() {
		return fmt.Errorf("open window %dx%d: raylib window not ready", cfg.Window.Width, cfg.Window.Height)
	}

	app := NewApp(cfg.Seed, log)
	log.Info("window started",
		zap.Int("width", rl.GetScreenWidth()),
		zap.Int("height", rl.GetScreenHeight()),
		zap.Int("fps", cfg.Window.FPS),
	)
	app.RunLoop()
	log.Info("window closed", zap.Int("frames", app.Loop.Frames()))
	return nil
}

func (a *App) RunLoop() {
	a.Loop.Start()
	defer a.Loop.Stop()

	for !rl.WindowShouldClose() {
		if !a.Update() {
			return
		}
		a.Draw()
	}
}

// Update feeds window events to the field. It returns false when the user
// asks to quit.
func (a *App) Update() bool {
	if rl.IsKeyPressed(rl.KeyQ) {
		return false
	}
	if rl.IsKeyPressed(rl.KeySpace) {
		if a.Loop.Running() {
			a.Loop.Stop()
		} else {
			a.Loop.Start()
		}
	}
	if rl.IsKeyPressed(rl.KeyR) {
		a.Field.Initialize(a.Field.Viewport())
	}
	if rl.IsKeyPressed(rl.KeyH) {
		a.ShowHUD = !a.ShowHUD
	}

	if rl.IsWindowResized() {
		vp := field.Viewport{
			Width:  float64(rl.GetScreenWidth()),
			Height: float64(rl.GetScreenHeight()),
		}
		a.Field.OnResize(vp)
		a.log.Debug("resize", zap.Float64("width", vp.Width), zap.Float64("height", vp.Height))
	}

	if rl.IsCursorOnScreen() {
		pos := rl.GetMousePosition()
		a.Field.OnPointerMove(float64(pos.X), float64(pos.Y))
	} else if a.Field.Pointer().Present {
		a.Field.OnPointerLeave()
		a.log.Debug("pointer left")
	}
	return true
}

func (a *App) Draw() {
	rl.BeginDrawing()
	// a paused loop draws nothing, so keep showing the last frame
	before := a.Field.Stats().Frame
	a.Queue.Flush(time.Now())
	if a.Field.Stats().Frame == before {
		a.Surface.Replay()
	}
	if a.ShowHUD {
		a.DrawHUD()
	}
	rl.EndDrawing()
}

func (a *App) DrawHUD() {
	st := a.Field.Stats()
	h := int32(rl.GetScreenHeight())

	rl.DrawText(fmt.Sprintf("%d FPS  frame %d  links %d", rl.GetFPS(), st.Frame, st.Connections), 16, h-28, 14, ColTextDim)
	if !a.Loop.Running() {
		rl.DrawText("PAUSED", 16, 16, 16, ColText)
	}
	rl.DrawText("[SPACE] PAUSE  [R] REGENERATE  [H] HUD  [Q] QUIT", int32(rl.GetScreenWidth())-380, h-28, 14, ColTextDim)
}
