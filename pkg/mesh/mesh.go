// Package mesh provides triangle meshes with per-vertex normals.
package mesh

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// ErrInvalidDimensions is returned when a grid would have no cells.
var ErrInvalidDimensions = errors.New("invalid grid dimensions")

// Vertex is a mesh vertex.
type Vertex struct {
	Position mgl64.Vec3
	Normal   mgl64.Vec3
}

// Face is a triangle of vertex indices in counter-clockwise order.
type Face [3]uint32

// Mesh is an ordered vertex list and an ordered face list.
type Mesh struct {
	Vertices []Vertex
	Faces    []Face

	// Grid dimensions in cells when built by NewGrid, zero otherwise.
	Columns int
	Rows    int
}

// Bounds is an axis-aligned bounding box.
type Bounds struct {
	Min mgl64.Vec3
	Max mgl64.Vec3
}

// NewGrid builds a flat grid of width x height cells on the XZ plane covering
// sizeX by sizeZ world units. Vertices are row-major: row i runs along Z and
// column j along X, so vertex (i, j) has index i*(width+1)+j.
func NewGrid(width, height int, sizeX, sizeZ float64) (*Mesh, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d cells", ErrInvalidDimensions, width, height)
	}
	if sizeX <= 0 || sizeZ <= 0 {
		return nil, fmt.Errorf("%w: size %gx%g", ErrInvalidDimensions, sizeX, sizeZ)
	}

	cols := width + 1
	vertices := make([]Vertex, 0, cols*(height+1))
	for i := 0; i <= height; i++ {
		z := float64(i) / float64(height) * sizeZ
		for j := 0; j <= width; j++ {
			x := float64(j) / float64(width) * sizeX
			vertices = append(vertices, Vertex{Position: mgl64.Vec3{x, 0, z}})
		}
	}

	faces := make([]Face, 0, width*height*2)
	for i := 0; i < height; i++ {
		for j := 0; j < width; j++ {
			v0 := uint32(i*cols + j)         // (i, j)
			v1 := uint32((i+1)*cols + j)     // (i+1, j)
			v2 := uint32((i+1)*cols + j + 1) // (i+1, j+1)
			v3 := uint32(i*cols + j + 1)     // (i, j+1)
			faces = append(faces, Face{v0, v1, v2}, Face{v0, v2, v3})
		}
	}

	m := &Mesh{Vertices: vertices, Faces: faces, Columns: width, Rows: height}
	m.RecomputeNormals()
	return m, nil
}

// SetHeights writes heights into the Y coordinate of every vertex, in vertex order.
func (m *Mesh) SetHeights(heights []float64) error {
	if len(heights) != len(m.Vertices) {
		return fmt.Errorf("%w: %d heights for %d vertices", ErrInvalidDimensions, len(heights), len(m.Vertices))
	}
	for i, h := range heights {
		m.Vertices[i].Position[1] = h
	}
	return nil
}

// RecomputeNormals sets every vertex normal to the normalized sum of the
// unnormalized cross products of the faces that use it, so larger faces weigh
// more. A vertex touching only degenerate faces gets a zero normal.
func (m *Mesh) RecomputeNormals() {
	for i := range m.Vertices {
		m.Vertices[i].Normal = mgl64.Vec3{}
	}

	for _, f := range m.Faces {
		p0 := m.Vertices[f[0]].Position
		p1 := m.Vertices[f[1]].Position
		p2 := m.Vertices[f[2]].Position
		n := p1.Sub(p0).Cross(p2.Sub(p0))
		for _, idx := range f {
			m.Vertices[idx].Normal = m.Vertices[idx].Normal.Add(n)
		}
	}

	for i := range m.Vertices {
		l := m.Vertices[i].Normal.Len()
		if l == 0 || math.IsNaN(l) || math.IsInf(l, 0) {
			m.Vertices[i].Normal = mgl64.Vec3{}
			continue
		}
		m.Vertices[i].Normal = m.Vertices[i].Normal.Mul(1 / l)
	}
}

// Bounds returns the bounding box of all vertex positions.
func (m *Mesh) Bounds() Bounds {
	if len(m.Vertices) == 0 {
		return Bounds{}
	}
	b := Bounds{Min: m.Vertices[0].Position, Max: m.Vertices[0].Position}
	for _, v := range m.Vertices[1:] {
		for k := 0; k < 3; k++ {
			if v.Position[k] < b.Min[k] {
				b.Min[k] = v.Position[k]
			}
			if v.Position[k] > b.Max[k] {
				b.Max[k] = v.Position[k]
			}
		}
	}
	return b
}

// Clone returns a deep copy.
func (m *Mesh) Clone() *Mesh {
	return &Mesh{
		Vertices: append([]Vertex(nil), m.Vertices...),
		Faces:    append([]Face(nil), m.Faces...),
		Columns:  m.Columns,
		Rows:     m.Rows,
	}
}
