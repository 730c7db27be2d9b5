// Package noise provides gradient noise sources and fractal synthesizers for terrain generation.
package noise

import (
	"errors"
	"fmt"

	"github.com/aquilax/go-perlin"
	"github.com/ojrac/opensimplex-go"
)

// ErrInvalidSettings is returned when a synthesizer is built from settings it cannot honor.
var ErrInvalidSettings = errors.New("invalid noise settings")

// Source kinds accepted by NewSource.
const (
	KindSimplex = "simplex"
	KindPerlin  = "perlin"
)

// Source is a continuous gradient-noise field with values in [-1, 1].
// Implementations are pure: the same input always yields the same output.
type Source interface {
	Eval2(x, y float64) float64
	Eval3(x, y, z float64) float64
}

// NewSource returns the gradient noise source registered under kind.
func NewSource(kind string, seed int64) (Source, error) {
	switch kind {
	case KindSimplex, "":
		return NewSimplex(seed), nil
	case KindPerlin:
		return NewPerlin(seed), nil
	default:
		return nil, fmt.Errorf("%w: unknown source %q", ErrInvalidSettings, kind)
	}
}

// Simplex is OpenSimplex gradient noise.
type Simplex struct {
	noise opensimplex.Noise
}

// NewSimplex creates an OpenSimplex source. The permutation table is derived from seed only.
func NewSimplex(seed int64) *Simplex {
	return &Simplex{noise: opensimplex.New(seed)}
}

// Eval2 samples the 2D field.
func (s *Simplex) Eval2(x, y float64) float64 {
	return clamp(s.noise.Eval2(x, y))
}

// Eval3 samples the 3D field.
func (s *Simplex) Eval3(x, y, z float64) float64 {
	return clamp(s.noise.Eval3(x, y, z))
}

// Perlin is classic Perlin gradient noise.
type Perlin struct {
	noise *perlin.Perlin
}

// NewPerlin creates a Perlin source with alpha=2, beta=2 and 3 internal octaves,
// which keeps the raw output close to the unit range.
func NewPerlin(seed int64) *Perlin {
	return &Perlin{noise: perlin.NewPerlin(2, 2, 3, seed)}
}

// Eval2 samples the 2D field.
func (p *Perlin) Eval2(x, y float64) float64 {
	return clamp(p.noise.Noise2D(x, y))
}

// Eval3 samples the 3D field.
func (p *Perlin) Eval3(x, y, z float64) float64 {
	return clamp(p.noise.Noise3D(x, y, z))
}

func clamp(v float64) float64 {
	if v < -1 {
		return -1
	}
	if v > 1 {
		return 1
	}
	return v
}
