// Package heightfield expands coarse corner heights into dense square grids.
package heightfield

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/cespare/xxhash/v2"
)

// MaxLevels caps subdivision so a grid never exceeds 4097x4097 samples.
const MaxLevels = 12

// ErrInvalidLevels is returned for a negative or oversized level count.
var ErrInvalidLevels = errors.New("invalid subdivision levels")

// Corner indices into the corners array passed to Subdivide.
const (
	TopLeft = iota
	TopRight
	BottomRight
	BottomLeft
)

// Grid is a square row-major grid of heights.
type Grid struct {
	side   int
	values []float64
}

// Side returns the number of samples along one edge.
func (g *Grid) Side() int { return g.side }

// At returns the height at (row, col).
func (g *Grid) At(row, col int) float64 {
	return g.values[row*g.side+col]
}

// Values returns the backing row-major slice.
func (g *Grid) Values() []float64 { return g.values }

// FromValues wraps side*side row-major samples in a Grid.
func FromValues(side int, values []float64) (*Grid, error) {
	if side < 2 || len(values) != side*side {
		return nil, fmt.Errorf("heightfield: %d values for side %d", len(values), side)
	}
	return &Grid{side: side, values: values}, nil
}

// Perturber displaces points created during a subdivision pass.
// pass starts at 1; row and col index the grid being built by that pass.
type Perturber interface {
	Offset(pass, row, col int) float64
}

// PerturberFunc adapts a function to Perturber.
type PerturberFunc func(pass, row, col int) float64

// Offset calls f.
func (f PerturberFunc) Offset(pass, row, col int) float64 { return f(pass, row, col) }

// Option configures Subdivide.
type Option func(*options)

type options struct {
	perturber Perturber
}

// WithPerturber adds p's offset to every point a pass creates. Existing points,
// including the four corners, are never moved.
func WithPerturber(p Perturber) Option {
	return func(o *options) { o.perturber = p }
}

// Subdivide runs levels averaging passes over the four corners (TopLeft, TopRight,
// BottomRight, BottomLeft) and returns a grid of side 2^levels + 1.
func Subdivide(corners [4]float64, levels int, opts ...Option) (*Grid, error) {
	if levels < 0 || levels > MaxLevels {
		return nil, fmt.Errorf("%w: %d (want 0..%d)", ErrInvalidLevels, levels, MaxLevels)
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if sp, ok := o.perturber.(*SeededPerturber); ok && sp.Levels < levels {
		return nil, fmt.Errorf("%w: perturber covers %d levels, grid needs %d", ErrInvalidLevels, sp.Levels, levels)
	}

	g := &Grid{
		side: 2,
		values: []float64{
			corners[TopLeft], corners[TopRight],
			corners[BottomLeft], corners[BottomRight],
		},
	}
	for pass := 1; pass <= levels; pass++ {
		g = subdividePass(g, pass, o.perturber)
	}
	return g, nil
}

func subdividePass(old *Grid, pass int, p Perturber) *Grid {
	side := (old.side-1)*2 + 1
	v := make([]float64, side*side)

	offset := func(row, col int) float64 {
		if p == nil {
			return 0
		}
		return p.Offset(pass, row, col)
	}

	// Existing samples land on even/even positions.
	for row := 0; row < old.side; row++ {
		for col := 0; col < old.side; col++ {
			v[row*2*side+col*2] = old.values[row*old.side+col]
		}
	}

	// Horizontal edges.
	for row := 0; row < side; row += 2 {
		for col := 1; col < side; col += 2 {
			i := row*side + col
			v[i] = (v[i-1]+v[i+1])/2 + offset(row, col)
		}
	}

	// Vertical edges.
	for row := 1; row < side; row += 2 {
		for col := 0; col < side; col += 2 {
			i := row*side + col
			v[i] = (v[i-side]+v[i+side])/2 + offset(row, col)
		}
	}

	// Centers, from the four edge midpoints written above.
	for row := 1; row < side; row += 2 {
		for col := 1; col < side; col += 2 {
			i := row*side + col
			v[i] = (v[i-side]+v[i+side]+v[i-1]+v[i+1])/4 + offset(row, col)
		}
	}

	return &Grid{side: side, values: v}
}

// SeededPerturber produces deterministic offsets in [-amp, amp] where amp is
// roughness * decay^(pass-1). Offsets are hashed from the seed and a lattice
// position, so two grids that share an edge in lattice space agree on it.
type SeededPerturber struct {
	Seed      uint64
	Roughness float64
	Decay     float64
	Levels    int // total passes of the grid being built
	OriginRow int // lattice row of the grid's top-left sample at full resolution
	OriginCol int // lattice column of the grid's top-left sample at full resolution
}

// NewSeededPerturber returns a perturber for a single grid whose top-left corner sits at lattice (0, 0).
func NewSeededPerturber(seed uint64, roughness, decay float64, levels int) *SeededPerturber {
	return &SeededPerturber{Seed: seed, Roughness: roughness, Decay: decay, Levels: levels}
}

// Offset implements Perturber.
func (s *SeededPerturber) Offset(pass, row, col int) float64 {
	if s.Roughness == 0 {
		return 0
	}
	// Map the pass-local index onto the full-resolution lattice. Passes past
	// Levels are already at full resolution.
	stride := 1
	if shift := s.Levels - pass; shift > 0 {
		stride = 1 << shift
	}
	lr := int64(s.OriginRow + row*stride)
	lc := int64(s.OriginCol + col*stride)

	var buf [24]byte
	binary.LittleEndian.PutUint64(buf[0:], s.Seed)
	binary.LittleEndian.PutUint64(buf[8:], uint64(lr))
	binary.LittleEndian.PutUint64(buf[16:], uint64(lc))
	h := xxhash.Sum64(buf[:])

	unit := float64(h>>11)/float64(1<<53)*2 - 1
	return unit * s.Roughness * math.Pow(s.Decay, float64(pass-1))
}
