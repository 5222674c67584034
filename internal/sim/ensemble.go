// Package sim runs fields headlessly, one or many at a time.
package sim

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"math/rand"
	"sync"
	"time"

	"github.com/san-kum/constellation/internal/field"
	"github.com/san-kum/constellation/internal/loop"
	"github.com/san-kum/constellation/internal/metrics"
)

type Config struct {
	Viewport field.Viewport
	Frames   int
	FPS      int
	// Pointer, when set, is held still for the whole run.
	Pointer *field.PointerState
}

type Result struct {
	Seed    int64
	Frames  int
	Last    field.FrameStats
	Metrics map[string]float64
}

// Run steps one seeded field for cfg.Frames frames on a manual scheduler
// and observes the default metrics. It stops early when ctx is done.
func Run(ctx context.Context, cfg Config, seed int64, s field.Surface) (*Result, error) {
	f := field.New(cfg.Viewport, rand.New(rand.NewSource(seed)))
	if cfg.Pointer != nil && cfg.Pointer.Present {
		f.OnPointerMove(cfg.Pointer.X, cfg.Pointer.Y)
	}
	rec := metrics.NewRecorder(1, metrics.Default()...)

	fps := cfg.FPS
	if fps <= 0 {
		fps = 60
	}
	sched := loop.NewManual(time.Second / time.Duration(fps))
	l := loop.New(sched, func(time.Time) {
		f.Tick(s)
		rec.Observe(f)
	})

	l.Start()
	defer l.Stop()
	for i := 0; i < cfg.Frames; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		sched.Step()
	}

	return &Result{
		Seed:    seed,
		Frames:  l.Frames(),
		Last:    f.Stats(),
		Metrics: rec.Values(),
	}, nil
}

// ErrInvalidRuns indicates an ensemble with a negative number of runs.
var ErrInvalidRuns = errors.New("sim: invalid number of runs")

// Ensemble runs the same config over consecutive seeds in parallel.
type Ensemble struct {
	cfg       Config
	numRuns   int
	seedStart int64
}

func NewEnsemble(cfg Config, numRuns int, seedStart int64) *Ensemble {
	return &Ensemble{cfg: cfg, numRuns: numRuns, seedStart: seedStart}
}

// Run returns one result per seed, in seed order. newSurface is called once
// per run, since surfaces are not shared between goroutines.
func (e *Ensemble) Run(ctx context.Context, newSurface func() field.Surface) ([]*Result, error) {
	if e.numRuns < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidRuns, e.numRuns)
	}
	results := make([]*Result, e.numRuns)
	errs := make([]error, e.numRuns)

	var wg sync.WaitGroup
	for i := 0; i < e.numRuns; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			results[idx], errs[idx] = Run(ctx, e.cfg, e.seedStart+int64(idx), newSurface())
		}(i)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return results, nil
}

// Discard is a surface that draws nothing.
type Discard struct{}

func (Discard) Clear(w, h float64)                                  {}
func (Discard) FillCircle(x, y, r float64, c color.NRGBA)           {}
func (Discard) StrokeLine(x0, y0, x1, y1, w float64, c color.NRGBA) {}
