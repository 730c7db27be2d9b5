package systems

import (
	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"

	"github.com/Faultbox/surfgen/internal/engine/input"
	"github.com/Faultbox/surfgen/internal/engine/lighting"
	"github.com/Faultbox/surfgen/internal/game/ecs"
)

// LightMoverSystem moves lights that carry an InputBinding. With a path set,
// the light follows the path instead of the keys.
type LightMoverSystem struct {
	keys  input.Reader
	speed float64
	path  lighting.Path
	log   *zap.Logger

	last    float64
	started bool
}

// NewLightMoverSystem creates a light mover reading keys. path may be nil.
func NewLightMoverSystem(keys input.Reader, speed float64, path lighting.Path, log *zap.Logger) *LightMoverSystem {
	if speed <= 0 {
		speed = lighting.DefaultSpeed
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &LightMoverSystem{keys: keys, speed: speed, path: path, log: log}
}

// Name implements System.
func (s *LightMoverSystem) Name() string { return "light" }

// Update implements System.
func (s *LightMoverSystem) Update(elapsed float64, r *ecs.Registry) error {
	dt := 0.0
	if s.started && elapsed > s.last {
		dt = elapsed - s.last
	}
	s.last = elapsed
	s.started = true

	for _, e := range r.EntitiesWith(ecs.KindPositionalLight) {
		binding, ok := ecs.Get[ecs.InputBinding](r, e)
		if !ok {
			continue
		}
		light, _ := ecs.Get[ecs.PositionalLight](r, e)

		var pos mgl64.Vec3
		if s.path != nil {
			p, err := s.path.Position(elapsed)
			if err != nil {
				return err
			}
			pos = p
		} else {
			dir := mgl64.Vec3{
				lighting.Axis(s.keys, binding.Left, binding.Right),
				lighting.Axis(s.keys, binding.Down, binding.Up),
				lighting.Axis(s.keys, binding.Forward, binding.Backward),
			}
			pos = lighting.Step(light.Position, dir, s.speed, dt)
		}
		if pos == light.Position {
			continue
		}
		if err := r.AddComponent(e, ecs.PositionalLight{Position: pos}); err != nil {
			return err
		}
	}
	return nil
}
