package terrain

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/cespare/xxhash/v2"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/Faultbox/surfgen/pkg/heightfield"
	"github.com/Faultbox/surfgen/pkg/mesh"
	"github.com/Faultbox/surfgen/pkg/noise"
)

// Builder turns chunk coordinates into chunks. A Builder is immutable after
// construction and safe for concurrent use.
type Builder struct {
	settings Settings
	field    noise.Field
	digest   uint64
}

// NewBuilder validates s and prepares its noise field.
func NewBuilder(s Settings) (*Builder, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	field, err := NewField(s)
	if err != nil {
		return nil, err
	}
	return &Builder{settings: s, field: field, digest: settingsDigest(s)}, nil
}

// NewField returns the fractal noise field described by s.
func NewField(s Settings) (noise.Field, error) {
	src, err := noise.NewSource(s.Noise, s.Seed)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSettings, err)
	}
	switch s.Fractal {
	case FractalRidged:
		return noise.NewRidged(src, s.Octaves, s.RidgedOffset, s.RidgedGain)
	case FractalFBM, "":
		return noise.NewFractal(src, s.Octaves)
	default:
		return nil, fmt.Errorf("%w: unknown fractal %q", ErrInvalidSettings, s.Fractal)
	}
}

// Settings returns the builder's settings.
func (b *Builder) Settings() Settings { return b.settings }

// Side returns the number of samples along a chunk edge.
func (b *Builder) Side() int { return 1<<b.settings.Levels + 1 }

// Origin returns the world position of a chunk's (0, 0) corner.
func (b *Builder) Origin(c Coord) mgl64.Vec3 {
	return mgl64.Vec3{float64(c.I) * b.settings.ChunkSize, 0, float64(c.J) * b.settings.ChunkSize}
}

// HeightAt samples the noise field at a world position.
func (b *Builder) HeightAt(x, z float64) float64 {
	s := b.settings
	return b.field.Eval2(x*s.Scale, z*s.Scale) * s.HeightScale
}

// SourceDigest identifies the inputs for chunk c. Two chunks with equal
// digests are identical.
func (b *Builder) SourceDigest(c Coord) uint64 {
	var buf [24]byte
	binary.LittleEndian.PutUint64(buf[0:], b.digest)
	binary.LittleEndian.PutUint64(buf[8:], uint64(int64(c.I)))
	binary.LittleEndian.PutUint64(buf[16:], uint64(int64(c.J)))
	return xxhash.Sum64(buf[:])
}

// Build generates chunk c.
func (b *Builder) Build(c Coord) (*Chunk, error) {
	s := b.settings
	origin := b.Origin(c)

	var (
		grid *heightfield.Grid
		err  error
	)
	switch s.Mode {
	case ModeSample:
		grid, err = b.sampleGrid(origin)
	default:
		grid, err = b.subdivideGrid(c, origin)
	}
	if err != nil {
		return nil, fmt.Errorf("chunk %d,%d: %w", c.I, c.J, err)
	}

	cells := grid.Side() - 1
	m, err := mesh.NewGrid(cells, cells, s.ChunkSize, s.ChunkSize)
	if err != nil {
		return nil, fmt.Errorf("chunk %d,%d: %w", c.I, c.J, err)
	}
	// Grid rows run along Z and columns along X, same as mesh vertices.
	if err := m.SetHeights(grid.Values()); err != nil {
		return nil, fmt.Errorf("chunk %d,%d: %w", c.I, c.J, err)
	}
	m.RecomputeNormals()

	return &Chunk{
		Coord:  c,
		Grid:   grid,
		Mesh:   m,
		Model:  mgl64.Translate3D(origin[0], origin[1], origin[2]),
		Source: b.SourceDigest(c),
	}, nil
}

func (b *Builder) subdivideGrid(c Coord, origin mgl64.Vec3) (*heightfield.Grid, error) {
	size := b.settings.ChunkSize
	x0, z0 := origin[0], origin[2]
	x1, z1 := x0+size, z0+size

	var corners [4]float64
	corners[heightfield.TopLeft] = b.HeightAt(x0, z0)
	corners[heightfield.TopRight] = b.HeightAt(x1, z0)
	corners[heightfield.BottomRight] = b.HeightAt(x1, z1)
	corners[heightfield.BottomLeft] = b.HeightAt(x0, z1)

	var opts []heightfield.Option
	if b.settings.Roughness > 0 {
		span := 1 << b.settings.Levels
		opts = append(opts, heightfield.WithPerturber(&heightfield.SeededPerturber{
			Seed:      uint64(b.settings.Seed),
			Roughness: b.settings.Roughness,
			Decay:     b.settings.Decay,
			Levels:    b.settings.Levels,
			OriginRow: c.J * span,
			OriginCol: c.I * span,
		}))
	}
	return heightfield.Subdivide(corners, b.settings.Levels, opts...)
}

func (b *Builder) sampleGrid(origin mgl64.Vec3) (*heightfield.Grid, error) {
	side := b.Side()
	step := b.settings.ChunkSize / float64(side-1)
	values := make([]float64, side*side)
	for row := 0; row < side; row++ {
		z := origin[2] + float64(row)*step
		for col := 0; col < side; col++ {
			x := origin[0] + float64(col)*step
			values[row*side+col] = b.HeightAt(x, z)
		}
	}
	return heightfield.FromValues(side, values)
}

func settingsDigest(s Settings) uint64 {
	d := xxhash.New()
	fmt.Fprintf(d, "%s|%d|%s|%d|", s.Noise, s.Seed, s.Fractal, s.Levels)
	fmt.Fprintf(d, "%s|", s.Mode)
	var buf [8]byte
	for _, f := range []float64{
		s.Octaves.Frequency, s.Octaves.Amplitude, s.Octaves.Lacunarity, s.Octaves.Persistence,
		float64(s.Octaves.Octaves), s.RidgedOffset, s.RidgedGain,
		s.Scale, s.HeightScale, s.ChunkSize, s.Roughness, s.Decay,
	} {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(f))
		_, _ = d.Write(buf[:])
	}
	return d.Sum64()
}
