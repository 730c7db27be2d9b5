package gerstner

import (
	"errors"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

const eps = 1e-12

func TestGenerateDeterministic(t *testing.T) {
	p := DefaultParams()
	a, err := Generate(NewRand(4711), p)
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	b, err := Generate(NewRand(4711), p)
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	if len(a) != p.Count || len(b) != p.Count {
		t.Fatalf("got %d and %d waves, want %d", len(a), len(b), p.Count)
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("wave %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}

	c, _ := Generate(NewRand(1), p)
	if c[0] == a[0] {
		t.Error("different seeds produced the same first wave")
	}
}

func TestGenerateRanges(t *testing.T) {
	p := DefaultParams()
	waves, _ := Generate(NewRand(99), p)

	minFreq := Frequency(p.MedianWavelength * 2)
	maxFreq := Frequency(p.MedianWavelength / 2)
	for i, w := range waves {
		if w.Amplitude < p.MedianAmplitude/2 || w.Amplitude > p.MedianAmplitude*2 {
			t.Errorf("wave %d amplitude %g out of range", i, w.Amplitude)
		}
		if w.Frequency < minFreq-eps || w.Frequency > maxFreq+eps {
			t.Errorf("wave %d frequency %g out of [%g, %g]", i, w.Frequency, minFreq, maxFreq)
		}
		if l := w.Direction.Len(); math.Abs(l-1) > 1e-9 {
			t.Errorf("wave %d direction length %g, want 1", i, l)
		}
		if w.Phase != DefaultPhase {
			t.Errorf("wave %d phase %g, want %g", i, w.Phase, DefaultPhase)
		}
		wantQ := p.Steepness / (w.Frequency * w.Amplitude * float64(p.Count))
		if math.Abs(w.Q-wantQ) > eps {
			t.Errorf("wave %d Q = %g, want %g", i, w.Q, wantQ)
		}
		// Q*A*w*count never exceeds the steepness budget.
		if w.Q*w.Amplitude*w.Frequency*float64(p.Count) > p.Steepness+eps {
			t.Errorf("wave %d exceeds steepness budget", i)
		}
	}
}

func TestGenerateSharesDrawBetweenWavelengthAndAmplitude(t *testing.T) {
	p := DefaultParams()
	waves, _ := Generate(NewRand(3), p)
	for i, w := range waves {
		ra := (w.Amplitude - p.MedianAmplitude/2) / (p.MedianAmplitude*2 - p.MedianAmplitude/2)
		wavelength := Gravity * 2 * math.Pi / (w.Frequency * w.Frequency)
		rl := (wavelength - p.MedianWavelength/2) / (p.MedianWavelength*2 - p.MedianWavelength/2)
		if math.Abs(ra-rl) > 1e-9 {
			t.Errorf("wave %d: amplitude draw %g != wavelength draw %g", i, ra, rl)
		}
	}
}

func TestGenerateFollowsDrawOrder(t *testing.T) {
	p := DefaultParams()
	p.Count = 2
	waves, _ := Generate(NewRand(8), p)

	rng := NewRand(8)
	for i, w := range waves {
		r := rng.Float64()
		angle := p.BaseAngle + (rng.Float64() - 0.5)
		wantAmp := p.MedianAmplitude/2 + r*(p.MedianAmplitude*2-p.MedianAmplitude/2)
		if math.Abs(w.Amplitude-wantAmp) > eps {
			t.Errorf("wave %d amplitude %g, want %g", i, w.Amplitude, wantAmp)
		}
		want := mgl64.Vec2{math.Cos(angle), math.Sin(angle)}
		if !w.Direction.ApproxFuncEqual(want, within(eps)) {
			t.Errorf("wave %d direction %v, want %v", i, w.Direction, want)
		}
	}
}

func TestGenerateRejectsParams(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Params)
	}{
		{"zero count", func(p *Params) { p.Count = 0 }},
		{"zero wavelength", func(p *Params) { p.MedianWavelength = 0 }},
		{"negative amplitude", func(p *Params) { p.MedianAmplitude = -1 }},
		{"negative steepness", func(p *Params) { p.Steepness = -0.1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultParams()
			tt.modify(&p)
			if _, err := Generate(NewRand(1), p); !errors.Is(err, ErrInvalidParams) {
				t.Errorf("error = %v, want ErrInvalidParams", err)
			}
		})
	}
	if _, err := Generate(nil, DefaultParams()); err == nil {
		t.Error("expected error for nil rand")
	}
}

func TestSingleWaveMatchesClosedForm(t *testing.T) {
	p := DefaultParams()
	p.Count = 1
	waves, err := Generate(NewRand(4711), p)
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	w := waves[0]
	f := NewField(waves)

	points := []mgl64.Vec2{{0, 0}, {1.5, -2}, {7.25, 3.5}}
	for _, pt := range points {
		for _, tm := range []float64{0, 0.5, 12.75} {
			theta := w.Frequency*(w.Direction[0]*pt[0]+w.Direction[1]*pt[1]) + w.Phase*tm
			wantH := w.Amplitude * math.Sin(theta)
			wantX := pt[0] + w.Q*w.Amplitude*w.Direction[0]*math.Cos(theta)
			wantZ := pt[1] + w.Q*w.Amplitude*w.Direction[1]*math.Cos(theta)

			got := f.Displace(pt, tm)
			if math.Abs(got[1]-wantH) > eps {
				t.Errorf("height at %v t=%g: got %g, want %g", pt, tm, got[1], wantH)
			}
			if math.Abs(got[0]-wantX) > eps || math.Abs(got[2]-wantZ) > eps {
				t.Errorf("horizontal at %v t=%g: got (%g, %g), want (%g, %g)", pt, tm, got[0], got[2], wantX, wantZ)
			}
		}
	}
}

func TestFieldSuperposition(t *testing.T) {
	waves, _ := Generate(NewRand(5), DefaultParams())
	f := NewField(waves)
	pt := mgl64.Vec2{2, 3}

	var h float64
	var o mgl64.Vec2
	for _, w := range waves {
		h += w.Height(pt, 1.25)
		o = o.Add(w.Offset(pt, 1.25))
	}
	got := f.Displace(pt, 1.25)
	want := mgl64.Vec3{pt[0] + o[0], h, pt[1] + o[1]}
	if !got.ApproxFuncEqual(want, within(eps)) {
		t.Errorf("Displace = %v, want %v", got, want)
	}
}

func TestFieldCopiesWaves(t *testing.T) {
	waves, _ := Generate(NewRand(5), DefaultParams())
	f := NewField(waves)
	waves[0].Amplitude = 100
	if f.Waves()[0].Amplitude == 100 {
		t.Error("field shares the caller's slice")
	}
	got := f.Waves()
	got[1].Amplitude = 100
	if f.Waves()[1].Amplitude == 100 {
		t.Error("Waves() exposes internal slice")
	}
}

// within compares components absolutely, so values near zero still match.
func within(eps float64) func(a, b float64) bool {
	return func(a, b float64) bool { return math.Abs(a-b) <= eps }
}
