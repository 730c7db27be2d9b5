package heightfield

import (
	"errors"
	"math"
	"testing"
)

func TestSubdivideLevelZero(t *testing.T) {
	corners := [4]float64{1, 2, 3, 4}
	g, err := Subdivide(corners, 0)
	if err != nil {
		t.Fatalf("Subdivide error: %v", err)
	}
	if g.Side() != 2 {
		t.Fatalf("Side() = %d, want 2", g.Side())
	}
	want := [][]float64{{1, 2}, {4, 3}}
	for row := range 2 {
		for col := range 2 {
			if got := g.At(row, col); got != want[row][col] {
				t.Errorf("At(%d,%d) = %g, want %g", row, col, got, want[row][col])
			}
		}
	}
}

func TestSubdivideSideAndCorners(t *testing.T) {
	corners := [4]float64{-3.5, 7.25, 0.125, 12}
	for levels := 0; levels <= 6; levels++ {
		g, err := Subdivide(corners, levels)
		if err != nil {
			t.Fatalf("levels %d: %v", levels, err)
		}
		side := 1<<levels + 1
		if g.Side() != side {
			t.Errorf("levels %d: Side() = %d, want %d", levels, g.Side(), side)
		}
		if len(g.Values()) != side*side {
			t.Errorf("levels %d: %d values, want %d", levels, len(g.Values()), side*side)
		}
		last := side - 1
		got := [4]float64{g.At(0, 0), g.At(0, last), g.At(last, last), g.At(last, 0)}
		if got != corners {
			t.Errorf("levels %d: corners = %v, want %v", levels, got, corners)
		}
	}
}

func TestSubdivideOneLevel(t *testing.T) {
	g, err := Subdivide([4]float64{0, 10, 10, 0}, 1)
	if err != nil {
		t.Fatalf("Subdivide error: %v", err)
	}
	want := [][]float64{
		{0, 5, 10},
		{0, 5, 10},
		{0, 5, 10},
	}
	for row := range 3 {
		for col := range 3 {
			if got := g.At(row, col); got != want[row][col] {
				t.Errorf("At(%d,%d) = %g, want %g", row, col, got, want[row][col])
			}
		}
	}
	if g.At(1, 1) != (0+10+10+0)/4.0 {
		t.Errorf("center = %g, want corner average 5", g.At(1, 1))
	}
}

func TestSubdivideCenterUsesEdgeMidpoints(t *testing.T) {
	g, _ := Subdivide([4]float64{0, 4, 8, 12}, 1)
	// top 2, right 6, bottom 10, left 6 -> center 6
	if got := g.At(1, 1); got != 6 {
		t.Errorf("center = %g, want 6", got)
	}
	if got := g.At(0, 1); got != 2 {
		t.Errorf("top midpoint = %g, want 2", got)
	}
	if got := g.At(1, 0); got != 6 {
		t.Errorf("left midpoint = %g, want 6", got)
	}
}

func TestSubdivideFlatStaysFlat(t *testing.T) {
	g, _ := Subdivide([4]float64{3, 3, 3, 3}, 5)
	for i, v := range g.Values() {
		if v != 3 {
			t.Fatalf("value %d = %g, want 3", i, v)
		}
	}
}

func TestSubdivideRejectsLevels(t *testing.T) {
	for _, levels := range []int{-1, MaxLevels + 1} {
		if _, err := Subdivide([4]float64{}, levels); !errors.Is(err, ErrInvalidLevels) {
			t.Errorf("levels %d: error = %v, want ErrInvalidLevels", levels, err)
		}
	}
}

func TestSubdivideDeterministic(t *testing.T) {
	corners := [4]float64{1, 9, 4, 2}
	p := NewSeededPerturber(99, 0.5, 0.5, 4)
	a, _ := Subdivide(corners, 4, WithPerturber(p))
	b, _ := Subdivide(corners, 4, WithPerturber(p))
	for i := range a.Values() {
		if a.Values()[i] != b.Values()[i] {
			t.Fatalf("value %d differs: %g vs %g", i, a.Values()[i], b.Values()[i])
		}
	}
}

func TestPerturberKeepsCorners(t *testing.T) {
	corners := [4]float64{0, 10, 10, 0}
	g, _ := Subdivide(corners, 3, WithPerturber(NewSeededPerturber(5, 2, 0.5, 3)))
	last := g.Side() - 1
	got := [4]float64{g.At(0, 0), g.At(0, last), g.At(last, last), g.At(last, 0)}
	if got != corners {
		t.Errorf("corners = %v, want %v", got, corners)
	}

	plain, _ := Subdivide(corners, 3)
	changed := false
	for i := range g.Values() {
		if g.Values()[i] != plain.Values()[i] {
			changed = true
			break
		}
	}
	if !changed {
		t.Error("perturbed grid equals plain grid")
	}
}

func TestSeededPerturberBounds(t *testing.T) {
	p := NewSeededPerturber(1, 0.8, 0.5, 4)
	for pass := 1; pass <= 4; pass++ {
		limit := 0.8 * math.Pow(0.5, float64(pass-1))
		for row := 0; row < 9; row++ {
			for col := 0; col < 9; col++ {
				if v := p.Offset(pass, row, col); math.Abs(v) > limit {
					t.Fatalf("Offset(%d,%d,%d) = %g exceeds %g", pass, row, col, v, limit)
				}
			}
		}
	}
	if v := NewSeededPerturber(1, 0, 0.5, 4).Offset(1, 1, 1); v != 0 {
		t.Errorf("zero roughness offset = %g, want 0", v)
	}
}

func TestSeededPerturberSharedEdge(t *testing.T) {
	// Two 2-level grids side by side: the right grid starts 4 lattice columns later,
	// so its left column must match the left grid's right column.
	const levels = 2
	left := &SeededPerturber{Seed: 3, Roughness: 1, Decay: 0.5, Levels: levels}
	right := &SeededPerturber{Seed: 3, Roughness: 1, Decay: 0.5, Levels: levels, OriginCol: 1 << levels}

	a, _ := Subdivide([4]float64{0, 1, 2, 3}, levels, WithPerturber(left))
	b, _ := Subdivide([4]float64{1, 5, 6, 2}, levels, WithPerturber(right))
	last := a.Side() - 1
	for row := 0; row < a.Side(); row++ {
		if a.At(row, last) != b.At(row, 0) {
			t.Errorf("row %d: left edge %g != right edge %g", row, a.At(row, last), b.At(row, 0))
		}
	}
}

func TestFromValues(t *testing.T) {
	g, err := FromValues(2, []float64{1, 2, 3, 4})
	if err != nil {
		t.Fatalf("FromValues error: %v", err)
	}
	if g.At(1, 0) != 3 {
		t.Errorf("At(1, 0) = %g, want 3", g.At(1, 0))
	}
	if _, err := FromValues(3, []float64{1, 2}); err == nil {
		t.Error("expected error for short slice")
	}
	if _, err := FromValues(1, []float64{1}); err == nil {
		t.Error("expected error for side 1")
	}
}

func TestSubdivideRejectsShortPerturber(t *testing.T) {
	corners := [4]float64{0, 1, 2, 3}
	_, err := Subdivide(corners, 3, WithPerturber(NewSeededPerturber(1, 1, 0.5, 2)))
	if !errors.Is(err, ErrInvalidLevels) {
		t.Errorf("Subdivide error = %v, want ErrInvalidLevels", err)
	}

	// A perturber covering more levels than the grid is fine.
	g, err := Subdivide(corners, 2, WithPerturber(NewSeededPerturber(1, 1, 0.5, 3)))
	if err != nil {
		t.Fatalf("Subdivide error: %v", err)
	}
	if g.Side() != 5 {
		t.Errorf("Side() = %d, want 5", g.Side())
	}
}

func TestSeededPerturberPassBeyondLevels(t *testing.T) {
	p := NewSeededPerturber(1, 1, 0.5, 2)
	limit := math.Pow(0.5, 3)
	if v := p.Offset(4, 3, 5); math.Abs(v) > limit {
		t.Errorf("Offset(4, 3, 5) = %g exceeds %g", v, limit)
	}
}
