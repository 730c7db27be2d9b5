package scene

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/wire"
	"go.uber.org/zap"

	"github.com/Faultbox/surfgen/internal/config"
	"github.com/Faultbox/surfgen/internal/engine/input"
	"github.com/Faultbox/surfgen/internal/engine/lighting"
	"github.com/Faultbox/surfgen/internal/game/ecs"
	"github.com/Faultbox/surfgen/internal/game/systems"
	"github.com/Faultbox/surfgen/internal/pkg/idgen"
	"github.com/Faultbox/surfgen/internal/scripting"
)

// ProviderSet builds a Scene from a config, a key reader and a logger.
var ProviderSet = wire.NewSet(
	ProvideIDs,
	ProvideRegistry,
	ProvideTerrainSystem,
	ProvideOceanSystem,
	ProvideLightPath,
	ProvideLightMover,
	ProvideRunner,
	New,
)

// ProvideIDs picks the entity id generator named by the config.
func ProvideIDs(cfg *config.Config) (idgen.Generator, error) {
	return idgen.New(cfg.Scene.IDs, "")
}

// ProvideRegistry creates an empty registry.
func ProvideRegistry(ids idgen.Generator) *ecs.Registry {
	return ecs.NewRegistry(ids)
}

// ProvideTerrainSystem creates the chunk generator.
func ProvideTerrainSystem(cfg *config.Config, log *zap.Logger) (*systems.TerrainSystem, error) {
	return systems.NewTerrainSystem(cfg.Terrain.Settings, cfg.Terrain.Workers, log.Named("terrain"))
}

// ProvideOceanSystem creates the wave generator.
func ProvideOceanSystem(cfg *config.Config, log *zap.Logger) (*systems.OceanSystem, error) {
	return systems.NewOceanSystem(cfg.Ocean, log.Named("ocean"))
}

// ProvideLightPath returns the scripted or orbiting path for the light, or
// nil when the light follows the keys. The cleanup closes any Lua state.
func ProvideLightPath(cfg *config.Config, log *zap.Logger) (lighting.Path, func(), error) {
	switch cfg.Light.Path {
	case config.LightOrbit:
		return lighting.Orbit{
			Center:    mgl64.Vec3{cfg.Light.Position[0], 0, cfg.Light.Position[2]},
			Radius:    cfg.Light.OrbitRadius,
			Period:    cfg.Light.OrbitPeriod,
			Elevation: cfg.Light.OrbitElevation,
		}, func() {}, nil
	case config.LightScript:
		engine, err := scripting.NewEngine(cfg.Light.Script, log.Named("lua"))
		if err != nil {
			return nil, nil, err
		}
		return engine, engine.Close, nil
	default:
		return nil, func() {}, nil
	}
}

// ProvideLightMover creates the light mover.
func ProvideLightMover(cfg *config.Config, keys input.Reader, path lighting.Path, log *zap.Logger) *systems.LightMoverSystem {
	return systems.NewLightMoverSystem(keys, cfg.Light.Speed, path, log.Named("light"))
}

// ProvideRunner orders the systems: terrain, light, ocean.
func ProvideRunner(
	log *zap.Logger,
	terrainSystem *systems.TerrainSystem,
	lightSystem *systems.LightMoverSystem,
	oceanSystem *systems.OceanSystem,
) *systems.Runner {
	return systems.NewRunner(log.Named("runner"), terrainSystem, lightSystem, oceanSystem)
}
