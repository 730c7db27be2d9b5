// Package terrain builds terrain chunk meshes from noise and heightfield subdivision.
package terrain

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/Faultbox/surfgen/pkg/heightfield"
	"github.com/Faultbox/surfgen/pkg/mesh"
	"github.com/Faultbox/surfgen/pkg/noise"
)

// ErrInvalidSettings is returned for unusable terrain settings.
var ErrInvalidSettings = errors.New("invalid terrain settings")

// Fractal kinds.
const (
	FractalFBM    = "fbm"
	FractalRidged = "ridged"
)

// Height modes.
const (
	// ModeSubdivide samples noise at the four chunk corners and fills the
	// interior by midpoint subdivision.
	ModeSubdivide = "subdivide"
	// ModeSample samples noise at every vertex.
	ModeSample = "sample"
)

// Settings describes how chunks are generated.
type Settings struct {
	Noise   string                `yaml:"noise" toml:"noise"` // simplex or perlin
	Seed    int64                 `yaml:"seed" toml:"seed"`
	Fractal string                `yaml:"fractal" toml:"fractal"` // fbm or ridged
	Octaves noise.FractalSettings `yaml:"octaves" toml:"octaves"`

	RidgedOffset float64 `yaml:"ridged_offset" toml:"ridged_offset"`
	RidgedGain   float64 `yaml:"ridged_gain" toml:"ridged_gain"`

	Scale       float64 `yaml:"scale" toml:"scale"`               // noise units per world unit
	HeightScale float64 `yaml:"height_scale" toml:"height_scale"` // world units per noise unit
	ChunkSize   float64 `yaml:"chunk_size" toml:"chunk_size"`     // world units per chunk side
	Levels      int     `yaml:"levels" toml:"levels"`             // chunk side is 2^levels cells
	Mode        string  `yaml:"mode" toml:"mode"`

	// Roughness > 0 enables seeded midpoint perturbation in subdivide mode.
	Roughness float64 `yaml:"roughness" toml:"roughness"`
	Decay     float64 `yaml:"decay" toml:"decay"`
}

// DefaultSettings returns the settings used by the default scene.
func DefaultSettings() Settings {
	return Settings{
		Noise:        noise.KindSimplex,
		Seed:         1337,
		Fractal:      FractalFBM,
		Octaves:      noise.DefaultFractalSettings(),
		RidgedOffset: 1,
		RidgedGain:   2,
		Scale:        0.02,
		HeightScale:  4,
		ChunkSize:    10,
		Levels:       4,
		Mode:         ModeSubdivide,
		Roughness:    0,
		Decay:        0.5,
	}
}

// Validate checks settings without building anything.
func (s Settings) Validate() error {
	switch {
	case s.Scale <= 0:
		return fmt.Errorf("%w: scale must be > 0, got %g", ErrInvalidSettings, s.Scale)
	case s.ChunkSize <= 0:
		return fmt.Errorf("%w: chunk_size must be > 0, got %g", ErrInvalidSettings, s.ChunkSize)
	case s.Levels < 0 || s.Levels > heightfield.MaxLevels:
		return fmt.Errorf("%w: levels must be in [0, %d], got %d", ErrInvalidSettings, heightfield.MaxLevels, s.Levels)
	case s.Mode != ModeSubdivide && s.Mode != ModeSample:
		return fmt.Errorf("%w: unknown mode %q", ErrInvalidSettings, s.Mode)
	case s.Fractal != FractalFBM && s.Fractal != FractalRidged:
		return fmt.Errorf("%w: unknown fractal %q", ErrInvalidSettings, s.Fractal)
	case s.Roughness < 0:
		return fmt.Errorf("%w: roughness must be >= 0, got %g", ErrInvalidSettings, s.Roughness)
	case s.Roughness > 0 && s.Decay <= 0:
		return fmt.Errorf("%w: decay must be > 0 when roughness is set, got %g", ErrInvalidSettings, s.Decay)
	}
	if err := s.Octaves.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSettings, err)
	}
	return nil
}

// Coord is a chunk position on the chunk grid. I runs along X and J along Z.
type Coord struct {
	I, J int
}

// Chunk is a generated terrain tile.
type Chunk struct {
	Coord  Coord
	Grid   *heightfield.Grid
	Mesh   *mesh.Mesh // in chunk-local space, spanning [0, ChunkSize] on X and Z
	Model  mgl64.Mat4 // places the chunk in world space
	Source uint64     // digest of the inputs that produced the chunk
}
