package mesh

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// FloatsPerVertex is the stride of Interleaved: position xyz then normal xyz.
const FloatsPerVertex = 6

// Interleaved returns positions and normals packed for GPU upload.
func (m *Mesh) Interleaved() []float32 {
	out := make([]float32, 0, len(m.Vertices)*FloatsPerVertex)
	for _, v := range m.Vertices {
		out = append(out,
			float32(v.Position[0]), float32(v.Position[1]), float32(v.Position[2]),
			float32(v.Normal[0]), float32(v.Normal[1]), float32(v.Normal[2]),
		)
	}
	return out
}

// Indices returns the face list flattened into an index buffer.
func (m *Mesh) Indices() []uint32 {
	out := make([]uint32, 0, len(m.Faces)*3)
	for _, f := range m.Faces {
		out = append(out, f[0], f[1], f[2])
	}
	return out
}

// Digest hashes the packed vertex and index buffers.
func (m *Mesh) Digest() uint64 {
	return BufferDigest(m.Interleaved(), m.Indices())
}

// BufferDigest hashes an interleaved vertex buffer together with its index buffer.
func BufferDigest(vertices []float32, indices []uint32) uint64 {
	d := xxhash.New()
	var b [4]byte
	for _, f := range vertices {
		binary.LittleEndian.PutUint32(b[:], math.Float32bits(f))
		_, _ = d.Write(b[:])
	}
	// Separator so a vertex/index split cannot collide with a different split.
	binary.LittleEndian.PutUint32(b[:], uint32(len(vertices)))
	_, _ = d.Write(b[:])
	for _, i := range indices {
		binary.LittleEndian.PutUint32(b[:], i)
		_, _ = d.Write(b[:])
	}
	return d.Sum64()
}

// EqualBuffers reports whether a and b hold the same values bit for bit.
// Buffers of different length are simply unequal.
func EqualBuffers(a, b []float32) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if math.Float32bits(a[i]) != math.Float32bits(b[i]) {
			return false
		}
	}
	return true
}

// EqualIndices reports whether two index buffers match.
func EqualIndices(a, b []uint32) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
