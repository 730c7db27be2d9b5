// Package gerstner synthesizes ocean surfaces as a sum of Gerstner (trochoidal) waves.
package gerstner

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
)

// Gravity is the gravitational acceleration used by the deep-water dispersion relation.
const Gravity = 9.82

// DefaultPhase is the phase speed constant applied to every generated wave.
const DefaultPhase = 2.0

// ErrInvalidParams is returned by Generate for parameters that cannot produce waves.
var ErrInvalidParams = errors.New("invalid wave parameters")

// Wave is one component of the surface. It is immutable once generated.
type Wave struct {
	Q         float64    // steepness coefficient
	Amplitude float64    // vertical amplitude
	Frequency float64    // angular frequency
	Phase     float64    // phase speed constant
	Direction mgl64.Vec2 // unit travel direction
}

// Params drives wave generation.
type Params struct {
	BaseAngle        float64 `yaml:"base_angle" toml:"base_angle"` // radians
	Count            int     `yaml:"count" toml:"count"`
	MedianWavelength float64 `yaml:"median_wavelength" toml:"median_wavelength"`
	MedianAmplitude  float64 `yaml:"median_amplitude" toml:"median_amplitude"`
	Steepness        float64 `yaml:"steepness" toml:"steepness"`
	Phase            float64 `yaml:"phase" toml:"phase"` // zero means DefaultPhase
}

// DefaultParams returns a calm sea of twenty waves heading roughly north-east.
func DefaultParams() Params {
	return Params{
		BaseAngle:        math.Pi * 0.3,
		Count:            20,
		MedianWavelength: 5,
		MedianAmplitude:  0.01,
		Steepness:        0.7,
		Phase:            DefaultPhase,
	}
}

// Validate checks p without generating anything.
func (p Params) Validate() error {
	switch {
	case p.Count <= 0:
		return fmt.Errorf("%w: count must be > 0, got %d", ErrInvalidParams, p.Count)
	case p.MedianWavelength <= 0:
		return fmt.Errorf("%w: median wavelength must be > 0, got %g", ErrInvalidParams, p.MedianWavelength)
	case p.MedianAmplitude <= 0:
		return fmt.Errorf("%w: median amplitude must be > 0, got %g", ErrInvalidParams, p.MedianAmplitude)
	case p.Steepness < 0:
		return fmt.Errorf("%w: steepness must be >= 0, got %g", ErrInvalidParams, p.Steepness)
	case p.Phase < 0:
		return fmt.Errorf("%w: phase must be >= 0, got %g", ErrInvalidParams, p.Phase)
	}
	return nil
}

// NewRand returns the PRNG state Generate consumes.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// Frequency returns the angular frequency of a deep-water wave of the given wavelength.
func Frequency(wavelength float64) float64 {
	return math.Sqrt(Gravity * 2 * math.Pi / wavelength)
}

// Generate draws p.Count waves from rng. Each wave takes two draws: one shared by
// wavelength and amplitude, so longer waves are also taller, and one for direction.
func Generate(rng *rand.Rand, p Params) ([]Wave, error) {
	if rng == nil {
		return nil, fmt.Errorf("%w: nil rand", ErrInvalidParams)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	phase := p.Phase
	if phase == 0 {
		phase = DefaultPhase
	}

	minWavelength := p.MedianWavelength / 2
	wavelengthSpan := p.MedianWavelength*2 - minWavelength
	minAmplitude := p.MedianAmplitude / 2
	amplitudeSpan := p.MedianAmplitude*2 - minAmplitude

	waves := make([]Wave, 0, p.Count)
	for range p.Count {
		r := rng.Float64()
		wavelength := minWavelength + r*wavelengthSpan
		amplitude := minAmplitude + r*amplitudeSpan

		angle := p.BaseAngle + (rng.Float64() - 0.5)
		freq := Frequency(wavelength)

		waves = append(waves, Wave{
			Q:         p.Steepness / (freq * amplitude * float64(p.Count)),
			Amplitude: amplitude,
			Frequency: freq,
			Phase:     phase,
			Direction: mgl64.Vec2{math.Cos(angle), math.Sin(angle)},
		})
	}
	return waves, nil
}

// theta is the wave's phase angle at p and time t.
func (w Wave) theta(p mgl64.Vec2, t float64) float64 {
	return w.Frequency*w.Direction.Dot(p) + w.Phase*t
}

// Height returns this wave's vertical contribution.
func (w Wave) Height(p mgl64.Vec2, t float64) float64 {
	return w.Amplitude * math.Sin(w.theta(p, t))
}

// Offset returns this wave's horizontal contribution.
func (w Wave) Offset(p mgl64.Vec2, t float64) mgl64.Vec2 {
	return w.Direction.Mul(w.Q * w.Amplitude * math.Cos(w.theta(p, t)))
}

// Field is a superposition of waves.
type Field struct {
	waves []Wave
}

// NewField copies waves into a field.
func NewField(waves []Wave) *Field {
	return &Field{waves: append([]Wave(nil), waves...)}
}

// Waves returns a copy of the field's waves.
func (f *Field) Waves() []Wave {
	return append([]Wave(nil), f.waves...)
}

// Height returns the summed vertical displacement at p and time t.
func (f *Field) Height(p mgl64.Vec2, t float64) float64 {
	h := 0.0
	for _, w := range f.waves {
		h += w.Height(p, t)
	}
	return h
}

// Offset returns the summed horizontal displacement at p and time t.
func (f *Field) Offset(p mgl64.Vec2, t float64) mgl64.Vec2 {
	var o mgl64.Vec2
	for _, w := range f.waves {
		o = o.Add(w.Offset(p, t))
	}
	return o
}

// Displace maps the rest position p (x, z) to its surface point (x+dx, height, z+dz).
func (f *Field) Displace(p mgl64.Vec2, t float64) mgl64.Vec3 {
	o := f.Offset(p, t)
	return mgl64.Vec3{p[0] + o[0], f.Height(p, t), p[1] + o[1]}
}
