package systems

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
	"go.uber.org/zap"

	"github.com/Faultbox/surfgen/internal/engine/water"
	"github.com/Faultbox/surfgen/internal/game/ecs"
)

// OceanSystem animates every Ocean entity. The wave set is generated once at
// construction and never changes.
type OceanSystem struct {
	surface *water.Surface
	log     *zap.Logger
}

// NewOceanSystem generates the wave set for s.
func NewOceanSystem(s water.Settings, log *zap.Logger) (*OceanSystem, error) {
	surface, err := water.NewSurface(s)
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = zap.NewNop()
	}
	log.Debug("ocean waves generated",
		zap.Int64("seed", s.Seed),
		zap.Int("count", len(surface.Waves())))
	return &OceanSystem{surface: surface, log: log}, nil
}

// Name implements System.
func (s *OceanSystem) Name() string { return "ocean" }

// Surface returns the wave surface.
func (s *OceanSystem) Surface() *water.Surface { return s.surface }

// Update implements System.
func (s *OceanSystem) Update(elapsed float64, r *ecs.Registry) error {
	for _, e := range r.EntitiesWith(ecs.KindOcean) {
		ocean, _ := ecs.Get[ecs.Ocean](r, e)
		source := oceanDigest(ocean, elapsed)

		sm, ok := ecs.Get[ecs.StaticMesh](r, e)
		if !ok {
			sm = ecs.StaticMesh{
				Model: s.surface.Model(),
				Color: s.surface.Color(),
			}
		} else if sm.Mesh != nil && sm.Source == source {
			continue
		}

		m, err := s.surface.Build(ocean.Width, ocean.Height, elapsed)
		if err != nil {
			return err
		}
		sm.Mesh = m
		sm.Source = source
		if err := r.AddComponent(e, sm); err != nil {
			return err
		}
	}
	return nil
}

func oceanDigest(o ecs.Ocean, elapsed float64) uint64 {
	var buf [24]byte
	binary.LittleEndian.PutUint64(buf[0:], uint64(int64(o.Width)))
	binary.LittleEndian.PutUint64(buf[8:], uint64(int64(o.Height)))
	binary.LittleEndian.PutUint64(buf[16:], math.Float64bits(elapsed))
	return xxhash.Sum64(buf[:])
}
