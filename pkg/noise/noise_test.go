package noise

import (
	"errors"
	"math"
	"testing"
)

// linearSource returns x+y+z so octave sums can be checked by hand.
type linearSource struct{}

func (linearSource) Eval2(x, y float64) float64    { return x + y }
func (linearSource) Eval3(x, y, z float64) float64 { return x + y + z }

func TestSourcesStayInRange(t *testing.T) {
	for _, kind := range []string{KindSimplex, KindPerlin} {
		t.Run(kind, func(t *testing.T) {
			src, err := NewSource(kind, 42)
			if err != nil {
				t.Fatalf("NewSource(%q) error: %v", kind, err)
			}
			for i := 0; i < 500; i++ {
				x := float64(i)*0.173 - 40
				y := float64(i)*0.291 + 3
				v2 := src.Eval2(x, y)
				v3 := src.Eval3(x, y, x*0.5)
				if v2 < -1 || v2 > 1 || math.IsNaN(v2) {
					t.Fatalf("Eval2(%g, %g) = %g, out of range", x, y, v2)
				}
				if v3 < -1 || v3 > 1 || math.IsNaN(v3) {
					t.Fatalf("Eval3(%g, %g) = %g, out of range", x, y, v3)
				}
			}
		})
	}
}

func TestSourceDeterministic(t *testing.T) {
	a := NewSimplex(7)
	b := NewSimplex(7)
	for i := 0; i < 100; i++ {
		x, y := float64(i)*0.37, float64(i)*-0.11
		if a.Eval2(x, y) != b.Eval2(x, y) {
			t.Fatalf("simplex not deterministic at (%g, %g)", x, y)
		}
	}

	p1 := NewPerlin(7)
	p2 := NewPerlin(7)
	if p1.Eval3(1.3, 2.7, 0.4) != p2.Eval3(1.3, 2.7, 0.4) {
		t.Error("perlin not deterministic")
	}
}

func TestSourceContinuous(t *testing.T) {
	src := NewSimplex(1)
	const step = 1e-6
	for i := 0; i < 50; i++ {
		x := float64(i) * 0.731
		d := math.Abs(src.Eval2(x, 0.5) - src.Eval2(x+step, 0.5))
		if d > 1e-3 {
			t.Errorf("jump of %g between %g and %g", d, x, x+step)
		}
	}
}

func TestNewSourceUnknown(t *testing.T) {
	_, err := NewSource("worley", 1)
	if !errors.Is(err, ErrInvalidSettings) {
		t.Errorf("NewSource(worley) error = %v, want ErrInvalidSettings", err)
	}
}

func TestFractalZeroOctaves(t *testing.T) {
	settings := DefaultFractalSettings()
	settings.Octaves = 0
	f, err := NewFractal(NewSimplex(3), settings)
	if err != nil {
		t.Fatalf("NewFractal error: %v", err)
	}
	for _, p := range [][2]float64{{0, 0}, {1.5, -2.25}, {100, 100}} {
		if got := f.Eval2(p[0], p[1]); got != 0 {
			t.Errorf("Eval2(%v) = %g, want 0", p, got)
		}
		if got := f.Eval3(p[0], p[1], 1); got != 0 {
			t.Errorf("Eval3(%v) = %g, want 0", p, got)
		}
	}
}

func TestFractalSum(t *testing.T) {
	// octave i contributes (x+y)*freq_i*amp_i with freq_i = 2*3^i and amp_i = 0.5*0.25^i
	settings := FractalSettings{Octaves: 3, Frequency: 2, Amplitude: 0.5, Lacunarity: 3, Persistence: 0.25}
	f, err := NewFractal(linearSource{}, settings)
	if err != nil {
		t.Fatalf("NewFractal error: %v", err)
	}

	want := 0.0
	for i := 0; i < 3; i++ {
		want += 2 * math.Pow(3, float64(i)) * 0.5 * math.Pow(0.25, float64(i))
	}
	if got := f.Eval2(0.5, 0.5); math.Abs(got-want) > 1e-12 {
		t.Errorf("Eval2 = %g, want %g", got, want)
	}
	if got := f.Eval3(0.5, 0.25, 0.25); math.Abs(got-want) > 1e-12 {
		t.Errorf("Eval3 = %g, want %g", got, want)
	}
}

func TestFractalRejectsBadSettings(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*FractalSettings)
	}{
		{"zero lacunarity", func(s *FractalSettings) { s.Lacunarity = 0 }},
		{"negative lacunarity", func(s *FractalSettings) { s.Lacunarity = -2 }},
		{"zero persistence", func(s *FractalSettings) { s.Persistence = 0 }},
		{"negative persistence", func(s *FractalSettings) { s.Persistence = -0.5 }},
		{"negative octaves", func(s *FractalSettings) { s.Octaves = -1 }},
		{"zero frequency", func(s *FractalSettings) { s.Frequency = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultFractalSettings()
			tt.modify(&s)
			if _, err := NewFractal(NewSimplex(1), s); !errors.Is(err, ErrInvalidSettings) {
				t.Errorf("NewFractal error = %v, want ErrInvalidSettings", err)
			}
			if _, err := NewRidged(NewSimplex(1), s, 1, 2); !errors.Is(err, ErrInvalidSettings) {
				t.Errorf("NewRidged error = %v, want ErrInvalidSettings", err)
			}
		})
	}

	if _, err := NewFractal(nil, DefaultFractalSettings()); err == nil {
		t.Error("expected error for nil source")
	}
}

func TestRidged(t *testing.T) {
	settings := DefaultFractalSettings()
	r, err := NewRidged(NewSimplex(9), settings, 1, 2)
	if err != nil {
		t.Fatalf("NewRidged error: %v", err)
	}
	for i := 0; i < 100; i++ {
		v := r.Eval2(float64(i)*0.13, float64(i)*0.07)
		if v < 0 || math.IsNaN(v) {
			t.Fatalf("ridged value %g should be non-negative with offset 1", v)
		}
	}

	settings.Octaves = 0
	r, _ = NewRidged(NewSimplex(9), settings, 1, 2)
	if got := r.Eval3(1, 2, 3); got != 0 {
		t.Errorf("ridged with 0 octaves = %g, want 0", got)
	}
}
