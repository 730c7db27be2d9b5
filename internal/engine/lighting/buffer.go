package lighting

import "github.com/go-gl/mathgl/mgl64"

// MaxPointLights is the number of light slots a frame carries.
const MaxPointLights = 32

// Buffer holds light positions for upload.
type Buffer struct {
	Lights []mgl64.Vec3
}

// NewBuffer creates an empty buffer.
func NewBuffer() *Buffer {
	return &Buffer{Lights: make([]mgl64.Vec3, 0, MaxPointLights)}
}

// Clear removes all lights.
func (b *Buffer) Clear() {
	b.Lights = b.Lights[:0]
}

// Add appends a light. Returns false if the buffer is full.
func (b *Buffer) Add(pos mgl64.Vec3) bool {
	if len(b.Lights) >= MaxPointLights {
		return false
	}
	b.Lights = append(b.Lights, pos)
	return true
}

// Count returns the number of lights held.
func (b *Buffer) Count() int { return len(b.Lights) }

// Positions returns every slot flattened as x0, y0, z0, x1, ... Unused slots are zero.
func (b *Buffer) Positions() []float32 {
	out := make([]float32, MaxPointLights*3)
	for i, p := range b.Lights {
		out[i*3+0] = float32(p[0])
		out[i*3+1] = float32(p[1])
		out[i*3+2] = float32(p[2])
	}
	return out
}
