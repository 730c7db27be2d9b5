// Package water builds animated ocean surface meshes from Gerstner waves.
package water

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/Faultbox/surfgen/pkg/gerstner"
	"github.com/Faultbox/surfgen/pkg/mesh"
)

// ErrInvalidSettings is returned for unusable ocean settings.
var ErrInvalidSettings = errors.New("invalid ocean settings")

// DefaultSeed seeds wave generation unless configured otherwise.
const DefaultSeed = 4711

// DefaultExtent is the side of the ocean square in world units.
const DefaultExtent = 10.0

// Settings describes an ocean surface.
type Settings struct {
	Seed   int64           `yaml:"seed" toml:"seed"`
	Waves  gerstner.Params `yaml:"waves" toml:"waves"`
	Extent float64         `yaml:"extent" toml:"extent"` // world units per side
	Color  [4]float64      `yaml:"color" toml:"color"`
}

// DefaultSettings returns a 10x10 blue sea of twenty waves.
func DefaultSettings() Settings {
	return Settings{
		Seed:   DefaultSeed,
		Waves:  gerstner.DefaultParams(),
		Extent: DefaultExtent,
		Color:  [4]float64{0, 0, 1, 0},
	}
}

// Validate checks s without generating waves.
func (s Settings) Validate() error {
	if s.Extent <= 0 {
		return fmt.Errorf("%w: extent must be > 0, got %g", ErrInvalidSettings, s.Extent)
	}
	if err := s.Waves.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSettings, err)
	}
	return nil
}

// Surface evaluates a fixed wave set over a square. It never changes after
// construction and is safe for concurrent use.
type Surface struct {
	field  *gerstner.Field
	extent float64
	color  mgl64.Vec4
}

// NewSurface generates the wave set for s. The same settings always yield the
// same waves.
func NewSurface(s Settings) (*Surface, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	waves, err := gerstner.Generate(gerstner.NewRand(s.Seed), s.Waves)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSettings, err)
	}
	return &Surface{
		field:  gerstner.NewField(waves),
		extent: s.Extent,
		color:  mgl64.Vec4(s.Color),
	}, nil
}

// Waves returns a copy of the wave set.
func (s *Surface) Waves() []gerstner.Wave { return s.field.Waves() }

// Field exposes the wave field for point queries.
func (s *Surface) Field() *gerstner.Field { return s.field }

// Model centers the surface on the world origin.
func (s *Surface) Model() mgl64.Mat4 {
	return mgl64.Translate3D(-s.extent/2, 0, -s.extent/2)
}

// Color is the draw color of the surface.
func (s *Surface) Color() mgl64.Vec4 { return s.color }

// Build returns the surface at time elapsed as a width x height cell mesh.
// The result depends only on the arguments.
func (s *Surface) Build(width, height int, elapsed float64) (*mesh.Mesh, error) {
	m, err := mesh.NewGrid(width, height, s.extent, s.extent)
	if err != nil {
		return nil, err
	}
	for i := range m.Vertices {
		p := m.Vertices[i].Position
		m.Vertices[i].Position = s.field.Displace(mgl64.Vec2{p[0], p[2]}, elapsed)
	}
	m.RecomputeNormals()
	return m, nil
}
