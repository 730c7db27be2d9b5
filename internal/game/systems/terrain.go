package systems

import (
	"fmt"
	"runtime"

	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Faultbox/surfgen/internal/engine/terrain"
	"github.com/Faultbox/surfgen/internal/game/ecs"
)

// DefaultTerrainColor is applied to chunk meshes that have no color yet.
var DefaultTerrainColor = mgl64.Vec4{0.35, 0.55, 0.25, 1}

// TerrainSystem generates a mesh for every TerrainChunk entity. Chunks are
// rebuilt only when their source digest changes.
type TerrainSystem struct {
	builder *terrain.Builder
	workers int
	log     *zap.Logger

	generated int
}

// NewTerrainSystem creates a terrain system. workers <= 0 uses GOMAXPROCS.
func NewTerrainSystem(s terrain.Settings, workers int, log *zap.Logger) (*TerrainSystem, error) {
	b, err := terrain.NewBuilder(s)
	if err != nil {
		return nil, err
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &TerrainSystem{builder: b, workers: workers, log: log}, nil
}

// Name implements System.
func (s *TerrainSystem) Name() string { return "terrain" }

// Settings returns the current generation settings.
func (s *TerrainSystem) Settings() terrain.Settings { return s.builder.Settings() }

// SetSettings swaps the generation settings. Every chunk is regenerated on the
// next Update. Invalid settings leave the system unchanged.
func (s *TerrainSystem) SetSettings(settings terrain.Settings) error {
	b, err := terrain.NewBuilder(settings)
	if err != nil {
		return err
	}
	s.builder = b
	s.log.Info("terrain settings changed",
		zap.String("fractal", settings.Fractal),
		zap.Int64("seed", settings.Seed))
	return nil
}

// Generated returns the number of chunks built since construction.
func (s *TerrainSystem) Generated() int { return s.generated }

type chunkJob struct {
	entity ecs.Entity
	coord  terrain.Coord
	prev   ecs.StaticMesh
	result *terrain.Chunk
}

// Update implements System.
func (s *TerrainSystem) Update(_ float64, r *ecs.Registry) error {
	b := s.builder

	var jobs []*chunkJob
	for _, e := range r.EntitiesWith(ecs.KindTerrainChunk) {
		chunk, _ := ecs.Get[ecs.TerrainChunk](r, e)
		coord := terrain.Coord{I: chunk.I, J: chunk.J}
		sm, ok := ecs.Get[ecs.StaticMesh](r, e)
		if ok && sm.Mesh != nil && sm.Source == b.SourceDigest(coord) {
			continue
		}
		jobs = append(jobs, &chunkJob{entity: e, coord: coord, prev: sm})
	}
	if len(jobs) == 0 {
		return nil
	}

	// Each job is owned by one goroutine; the registry is only touched below.
	var g errgroup.Group
	g.SetLimit(s.workers)
	for _, job := range jobs {
		g.Go(func() error {
			c, err := b.Build(job.coord)
			if err != nil {
				return err
			}
			job.result = c
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("generate chunks: %w", err)
	}

	for _, job := range jobs {
		color := job.prev.Color
		if color == (mgl64.Vec4{}) {
			color = DefaultTerrainColor
		}
		if err := r.AddComponent(job.entity, ecs.StaticMesh{
			Mesh:   job.result.Mesh,
			Model:  job.result.Model,
			Color:  color,
			Source: job.result.Source,
		}); err != nil {
			return err
		}
	}
	s.generated += len(jobs)
	s.log.Debug("terrain chunks generated",
		zap.Int("count", len(jobs)),
		zap.Int("workers", s.workers))
	return nil
}
