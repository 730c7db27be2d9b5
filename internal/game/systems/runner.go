package systems

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/surfgen/internal/game/ecs"
)

// Runner executes systems in registration order each tick.
type Runner struct {
	systems []System
	log     *zap.Logger
	ticks   uint64
}

// NewRunner creates a runner over systems, which run in the given order.
func NewRunner(log *zap.Logger, systems ...System) *Runner {
	if log == nil {
		log = zap.NewNop()
	}
	r := &Runner{
		systems: make([]System, 0, len(systems)),
		log:     log,
	}
	for _, s := range systems {
		r.Register(s)
	}
	return r
}

// Register appends s to the run order.
func (r *Runner) Register(s System) {
	r.systems = append(r.systems, s)
}

// Systems returns the run order.
func (r *Runner) Systems() []System {
	return append([]System(nil), r.systems...)
}

// Ticks returns the number of completed ticks.
func (r *Runner) Ticks() uint64 { return r.ticks }

// Tick runs every system once. The first failing system aborts the tick and
// later systems do not run.
func (r *Runner) Tick(elapsed float64, reg *ecs.Registry) error {
	for _, s := range r.systems {
		if err := s.Update(elapsed, reg); err != nil {
			r.log.Error("system update failed",
				zap.String("system", s.Name()),
				zap.Float64("elapsed", elapsed),
				zap.Error(err))
			return fmt.Errorf("system %s: %w", s.Name(), err)
		}
	}
	r.ticks++
	return nil
}
