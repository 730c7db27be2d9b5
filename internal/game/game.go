// Package game drives a scene through a fixed-rate tick loop.
package game

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/surfgen/internal/game/scene"
	"github.com/Faultbox/surfgen/internal/render"
)

// ErrNoTicks is returned when a run is configured to do nothing.
var ErrNoTicks = errors.New("run needs ticks or a duration")

// Config holds loop settings.
type Config struct {
	TickRate float64       // ticks per simulated second
	Ticks    int           // stop after this many ticks; 0 derives it from Duration
	Duration time.Duration // simulated time to cover
	Realtime bool          // pace ticks against the wall clock
}

// FrameFunc receives each frame and what changed since the previous one.
type FrameFunc func(tick int, elapsed float64, f render.Frame, d render.Diff) error

// Stats summarizes a run.
type Stats struct {
	Ticks     int
	Elapsed   float64
	Uploads   int // drawables that changed across all ticks
	Removals  int
	Drawables int // drawables in the last frame
	Vertices  int // vertices in the last frame
}

// Game is the main loop over one scene.
type Game struct {
	config  Config
	scene   *scene.Scene
	tracker *render.Tracker
	log     *zap.Logger
	onFrame FrameFunc
}

// New creates a loop over s.
func New(s *scene.Scene, cfg Config, log *zap.Logger) (*Game, error) {
	if cfg.TickRate <= 0 {
		return nil, fmt.Errorf("tick rate must be > 0, got %g", cfg.TickRate)
	}
	if cfg.Ticks <= 0 && cfg.Duration <= 0 {
		return nil, ErrNoTicks
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Game{
		config:  cfg,
		scene:   s,
		tracker: render.NewTracker(),
		log:     log,
	}, nil
}

// OnFrame sets the callback run after every tick.
func (g *Game) OnFrame(fn FrameFunc) {
	g.onFrame = fn
}

// TotalTicks returns how many ticks Run performs.
func (g *Game) TotalTicks() int {
	if g.config.Ticks > 0 {
		return g.config.Ticks
	}
	return int(math.Ceil(g.config.Duration.Seconds() * g.config.TickRate))
}

// Run ticks the scene until the configured number of ticks is done or ctx is
// cancelled. Tick n runs at elapsed n/TickRate seconds, starting at zero.
func (g *Game) Run(ctx context.Context) (Stats, error) {
	var stats Stats
	total := g.TotalTicks()

	var pace <-chan time.Time
	if g.config.Realtime {
		ticker := time.NewTicker(time.Duration(float64(time.Second) / g.config.TickRate))
		defer ticker.Stop()
		pace = ticker.C
	}

	g.log.Info("starting tick loop",
		zap.Int("ticks", total),
		zap.Float64("tick_rate", g.config.TickRate),
		zap.Bool("realtime", g.config.Realtime))

	for n := 0; n < total; n++ {
		if pace != nil && n > 0 {
			select {
			case <-ctx.Done():
				return stats, ctx.Err()
			case <-pace:
			}
		} else if err := ctx.Err(); err != nil {
			return stats, err
		}

		elapsed := float64(n) / g.config.TickRate
		if err := g.scene.Tick(elapsed); err != nil {
			return stats, fmt.Errorf("tick %d: %w", n, err)
		}

		frame := g.scene.Frame()
		diff := g.tracker.Update(frame)

		stats.Ticks++
		stats.Elapsed = elapsed
		stats.Uploads += len(diff.Changed)
		stats.Removals += len(diff.Removed)
		stats.Drawables = len(frame.Drawables)
		stats.Vertices = 0
		for _, d := range frame.Drawables {
			stats.Vertices += d.VertexCount()
		}

		if !diff.Empty() {
			g.log.Debug("frame changed",
				zap.Int("tick", n),
				zap.Int("changed", len(diff.Changed)),
				zap.Int("removed", len(diff.Removed)))
		}

		if g.onFrame != nil {
			if err := g.onFrame(n, elapsed, frame, diff); err != nil {
				return stats, err
			}
		}
	}

	g.log.Info("tick loop finished",
		zap.Int("ticks", stats.Ticks),
		zap.Int("uploads", stats.Uploads),
		zap.Int("drawables", stats.Drawables))
	return stats, nil
}
