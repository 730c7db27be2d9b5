package terrain

import (
	"errors"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Settings)
	}{
		{"zero scale", func(s *Settings) { s.Scale = 0 }},
		{"zero chunk size", func(s *Settings) { s.ChunkSize = 0 }},
		{"negative levels", func(s *Settings) { s.Levels = -1 }},
		{"too many levels", func(s *Settings) { s.Levels = 13 }},
		{"unknown mode", func(s *Settings) { s.Mode = "erode" }},
		{"unknown fractal", func(s *Settings) { s.Fractal = "billow" }},
		{"negative roughness", func(s *Settings) { s.Roughness = -1 }},
		{"roughness without decay", func(s *Settings) { s.Roughness = 1; s.Decay = 0 }},
		{"bad lacunarity", func(s *Settings) { s.Octaves.Lacunarity = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultSettings()
			tt.modify(&s)
			if err := s.Validate(); !errors.Is(err, ErrInvalidSettings) {
				t.Errorf("Validate() = %v, want ErrInvalidSettings", err)
			}
			if _, err := NewBuilder(s); err == nil {
				t.Error("NewBuilder accepted invalid settings")
			}
		})
	}
	if err := DefaultSettings().Validate(); err != nil {
		t.Errorf("default settings invalid: %v", err)
	}
}

func TestNewBuilderUnknownNoise(t *testing.T) {
	s := DefaultSettings()
	s.Noise = "worley"
	if _, err := NewBuilder(s); !errors.Is(err, ErrInvalidSettings) {
		t.Errorf("error = %v, want ErrInvalidSettings", err)
	}
}

func TestBuildShape(t *testing.T) {
	s := DefaultSettings()
	s.Levels = 3
	b, err := NewBuilder(s)
	if err != nil {
		t.Fatalf("NewBuilder error: %v", err)
	}
	c, err := b.Build(Coord{I: 2, J: 5})
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}

	if got, want := len(c.Mesh.Vertices), 9*9; got != want {
		t.Errorf("got %d vertices, want %d", got, want)
	}
	if got, want := len(c.Mesh.Faces), 8*8*2; got != want {
		t.Errorf("got %d faces, want %d", got, want)
	}
	wantModel := mgl64.Translate3D(20, 0, 50)
	if c.Model != wantModel {
		t.Errorf("Model = %v, want %v", c.Model, wantModel)
	}
	// Chunk corners carry the noise samples at their world positions.
	if got, want := c.Grid.At(0, 0), b.HeightAt(20, 50); got != want {
		t.Errorf("top-left corner = %g, want %g", got, want)
	}
	if got, want := c.Grid.At(8, 8), b.HeightAt(30, 60); got != want {
		t.Errorf("bottom-right corner = %g, want %g", got, want)
	}
	for i, v := range c.Mesh.Vertices {
		if l := v.Normal.Len(); math.Abs(l-1) > 1e-9 {
			t.Errorf("vertex %d normal length %g", i, l)
			break
		}
	}
}

func TestBuildDeterministic(t *testing.T) {
	b1, _ := NewBuilder(DefaultSettings())
	b2, _ := NewBuilder(DefaultSettings())
	c1, _ := b1.Build(Coord{I: 3, J: 1})
	c2, _ := b2.Build(Coord{I: 3, J: 1})
	if c1.Mesh.Digest() != c2.Mesh.Digest() {
		t.Error("same settings produced different meshes")
	}
	if c1.Source != c2.Source {
		t.Error("same settings produced different source digests")
	}
}

func TestSourceDigest(t *testing.T) {
	b, _ := NewBuilder(DefaultSettings())
	if b.SourceDigest(Coord{1, 2}) == b.SourceDigest(Coord{2, 1}) {
		t.Error("transposed coordinates share a digest")
	}

	s := DefaultSettings()
	s.Seed++
	other, _ := NewBuilder(s)
	if b.SourceDigest(Coord{1, 2}) == other.SourceDigest(Coord{1, 2}) {
		t.Error("changed seed kept the digest")
	}

	s = DefaultSettings()
	s.Octaves.Persistence = 0.6
	other, _ = NewBuilder(s)
	if b.SourceDigest(Coord{}) == other.SourceDigest(Coord{}) {
		t.Error("changed persistence kept the digest")
	}
}

func TestNeighbouringChunksShareEdges(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Settings)
	}{
		{"subdivide", func(s *Settings) {}},
		{"subdivide perturbed", func(s *Settings) { s.Roughness = 2; s.Decay = 0.5 }},
		{"sample", func(s *Settings) { s.Mode = ModeSample }},
		{"ridged", func(s *Settings) { s.Fractal = FractalRidged }},
		{"perlin", func(s *Settings) { s.Noise = "perlin" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultSettings()
			tt.modify(&s)
			b, err := NewBuilder(s)
			if err != nil {
				t.Fatalf("NewBuilder error: %v", err)
			}
			side := b.Side()

			left, _ := b.Build(Coord{I: 4, J: 7})
			right, _ := b.Build(Coord{I: 5, J: 7})
			for row := 0; row < side; row++ {
				if a, c := left.Grid.At(row, side-1), right.Grid.At(row, 0); a != c {
					t.Errorf("X seam row %d: %g vs %g", row, a, c)
				}
			}

			below, _ := b.Build(Coord{I: 4, J: 8})
			for col := 0; col < side; col++ {
				if a, c := left.Grid.At(side-1, col), below.Grid.At(0, col); a != c {
					t.Errorf("Z seam col %d: %g vs %g", col, a, c)
				}
			}
		})
	}
}

func TestRoughnessChangesInterior(t *testing.T) {
	smooth, _ := NewBuilder(DefaultSettings())
	s := DefaultSettings()
	s.Roughness = 1
	rough, _ := NewBuilder(s)

	a, _ := smooth.Build(Coord{})
	b, _ := rough.Build(Coord{})
	mid := smooth.Side() / 2
	if a.Grid.At(mid, mid) == b.Grid.At(mid, mid) {
		t.Error("roughness did not perturb the chunk center")
	}
	if a.Grid.At(0, 0) != b.Grid.At(0, 0) {
		t.Error("roughness moved a corner")
	}
}
