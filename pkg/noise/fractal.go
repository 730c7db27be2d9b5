package noise

import (
	"fmt"
	"math"
)

// FractalSettings configures fractal Brownian motion.
type FractalSettings struct {
	Octaves     int     `yaml:"octaves" toml:"octaves"`
	Frequency   float64 `yaml:"frequency" toml:"frequency"`
	Amplitude   float64 `yaml:"amplitude" toml:"amplitude"`
	Lacunarity  float64 `yaml:"lacunarity" toml:"lacunarity"`   // frequency multiplier per octave
	Persistence float64 `yaml:"persistence" toml:"persistence"` // amplitude multiplier per octave
}

// DefaultFractalSettings returns six octaves of doubling frequency and halving amplitude.
func DefaultFractalSettings() FractalSettings {
	return FractalSettings{
		Octaves:     6,
		Frequency:   1,
		Amplitude:   1,
		Lacunarity:  2,
		Persistence: 0.5,
	}
}

// Validate reports whether the settings describe a usable synthesizer.
func (s FractalSettings) Validate() error {
	switch {
	case s.Octaves < 0:
		return fmt.Errorf("%w: octaves must be >= 0, got %d", ErrInvalidSettings, s.Octaves)
	case s.Frequency <= 0:
		return fmt.Errorf("%w: frequency must be > 0, got %g", ErrInvalidSettings, s.Frequency)
	case s.Lacunarity <= 0:
		return fmt.Errorf("%w: lacunarity must be > 0, got %g", ErrInvalidSettings, s.Lacunarity)
	case s.Persistence <= 0:
		return fmt.Errorf("%w: persistence must be > 0, got %g", ErrInvalidSettings, s.Persistence)
	}
	return nil
}

// Field is a scalar field over 2D and 3D space.
type Field interface {
	Eval2(x, y float64) float64
	Eval3(x, y, z float64) float64
}

// Fractal sums octaves of a Source. The result is not renormalized.
type Fractal struct {
	src      Source
	settings FractalSettings
}

// NewFractal validates settings and binds them to src.
func NewFractal(src Source, settings FractalSettings) (*Fractal, error) {
	if src == nil {
		return nil, fmt.Errorf("%w: nil source", ErrInvalidSettings)
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return &Fractal{src: src, settings: settings}, nil
}

// Settings returns the settings the synthesizer was built with.
func (f *Fractal) Settings() FractalSettings {
	return f.settings
}

// Eval2 returns the fBm value at (x, y).
func (f *Fractal) Eval2(x, y float64) float64 {
	sum := 0.0
	freq := f.settings.Frequency
	amp := f.settings.Amplitude
	for i := 0; i < f.settings.Octaves; i++ {
		sum += f.src.Eval2(x*freq, y*freq) * amp
		freq *= f.settings.Lacunarity
		amp *= f.settings.Persistence
	}
	return sum
}

// Eval3 returns the fBm value at (x, y, z).
func (f *Fractal) Eval3(x, y, z float64) float64 {
	sum := 0.0
	freq := f.settings.Frequency
	amp := f.settings.Amplitude
	for i := 0; i < f.settings.Octaves; i++ {
		sum += f.src.Eval3(x*freq, y*freq, z*freq) * amp
		freq *= f.settings.Lacunarity
		amp *= f.settings.Persistence
	}
	return sum
}

// Ridged is a ridged multifractal: each octave folds the noise around zero,
// squares it and weights it by the previous octave so ridges sharpen.
type Ridged struct {
	src      Source
	settings FractalSettings
	offset   float64
	gain     float64
}

// NewRidged validates settings and binds them to src. Typical values are offset 1 and gain 2.
func NewRidged(src Source, settings FractalSettings, offset, gain float64) (*Ridged, error) {
	if src == nil {
		return nil, fmt.Errorf("%w: nil source", ErrInvalidSettings)
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	if gain < 0 {
		return nil, fmt.Errorf("%w: ridged gain must be >= 0, got %g", ErrInvalidSettings, gain)
	}
	return &Ridged{src: src, settings: settings, offset: offset, gain: gain}, nil
}

// Eval2 returns the ridged value at (x, y).
func (r *Ridged) Eval2(x, y float64) float64 {
	return r.sum(func(freq float64) float64 { return r.src.Eval2(x*freq, y*freq) })
}

// Eval3 returns the ridged value at (x, y, z).
func (r *Ridged) Eval3(x, y, z float64) float64 {
	return r.sum(func(freq float64) float64 { return r.src.Eval3(x*freq, y*freq, z*freq) })
}

func (r *Ridged) sum(sample func(freq float64) float64) float64 {
	sum := 0.0
	weight := 1.0
	freq := r.settings.Frequency
	amp := r.settings.Amplitude
	for i := 0; i < r.settings.Octaves; i++ {
		signal := r.offset - math.Abs(sample(freq))
		signal *= signal * weight

		weight = signal * r.gain
		if weight > 1 {
			weight = 1
		} else if weight < 0 {
			weight = 0
		}

		sum += signal * amp
		freq *= r.settings.Lacunarity
		amp *= r.settings.Persistence
	}
	return sum
}
