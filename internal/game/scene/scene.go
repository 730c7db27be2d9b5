// Package scene assembles a registry, its systems and the runner that drives them.
package scene

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/Faultbox/surfgen/internal/config"
	"github.com/Faultbox/surfgen/internal/engine/terrain"
	"github.com/Faultbox/surfgen/internal/game/ecs"
	"github.com/Faultbox/surfgen/internal/game/systems"
	"github.com/Faultbox/surfgen/internal/render"
)

// Scene is one generated world.
type Scene struct {
	Config   *config.Config
	Registry *ecs.Registry
	Runner   *systems.Runner
	Terrain  *systems.TerrainSystem
	Ocean    *systems.OceanSystem
	Light    *systems.LightMoverSystem
}

// New bundles already constructed parts into a Scene.
func New(
	cfg *config.Config,
	reg *ecs.Registry,
	runner *systems.Runner,
	terrainSystem *systems.TerrainSystem,
	oceanSystem *systems.OceanSystem,
	lightSystem *systems.LightMoverSystem,
) *Scene {
	return &Scene{
		Config:   cfg,
		Registry: reg,
		Runner:   runner,
		Terrain:  terrainSystem,
		Ocean:    oceanSystem,
		Light:    lightSystem,
	}
}

// Populate fills the registry with the configured default scene.
func (s *Scene) Populate() error {
	return Populate(s.Registry, s.Config)
}

// Tick advances every system to elapsed seconds.
func (s *Scene) Tick(elapsed float64) error {
	return s.Runner.Tick(elapsed, s.Registry)
}

// Frame snapshots the registry for drawing.
func (s *Scene) Frame() render.Frame {
	return render.Collect(s.Registry)
}

// SetTerrainSettings swaps the noise settings. Every chunk regenerates on the
// next tick.
func (s *Scene) SetTerrainSettings(settings terrain.Settings) error {
	return s.Terrain.SetSettings(settings)
}

// Populate creates the default entities: a ChunksX by ChunksZ block of
// terrain chunks, one key-driven light and one ocean patch.
func Populate(reg *ecs.Registry, cfg *config.Config) error {
	for i := 0; i < cfg.Scene.ChunksX; i++ {
		for j := 0; j < cfg.Scene.ChunksZ; j++ {
			e, err := reg.Create()
			if err != nil {
				return err
			}
			components := []ecs.Component{
				ecs.TerrainChunk{I: i, J: j},
				ecs.StaticMesh{},
			}
			if cfg.Scene.ShowNormals {
				components = append(components, ecs.NormalFlag{})
			}
			if err := attach(reg, e, components...); err != nil {
				return fmt.Errorf("chunk %d,%d: %w", i, j, err)
			}
		}
	}

	light, err := reg.Create()
	if err != nil {
		return err
	}
	if err := attach(reg, light,
		ecs.PositionalLight{Position: mgl64.Vec3(cfg.Light.Position)},
		ecs.DefaultLightBinding(),
	); err != nil {
		return fmt.Errorf("light: %w", err)
	}

	if cfg.Scene.OceanWidth > 0 && cfg.Scene.OceanHeight > 0 {
		ocean, err := reg.Create()
		if err != nil {
			return err
		}
		if err := attach(reg, ocean, ecs.Ocean{Width: cfg.Scene.OceanWidth, Height: cfg.Scene.OceanHeight}); err != nil {
			return fmt.Errorf("ocean: %w", err)
		}
	}
	return nil
}

func attach(reg *ecs.Registry, e ecs.Entity, components ...ecs.Component) error {
	for _, c := range components {
		if err := reg.AddComponent(e, c); err != nil {
			return err
		}
	}
	return nil
}
