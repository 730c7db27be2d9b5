// Package render exposes registry state to an external renderer as a
// read-only draw list.
package render

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/Faultbox/surfgen/internal/engine/lighting"
	"github.com/Faultbox/surfgen/internal/game/ecs"
	"github.com/Faultbox/surfgen/pkg/mesh"
)

// Drawable is one mesh ready for upload.
type Drawable struct {
	Entity      ecs.Entity
	Vertices    []float32 // interleaved position and normal, mesh.FloatsPerVertex per vertex
	Indices     []uint32
	Model       mgl32.Mat4
	Color       mgl32.Vec4
	ShowNormals bool
	Digest      uint64
}

// VertexCount returns the number of vertices in the buffer.
func (d Drawable) VertexCount() int { return len(d.Vertices) / mesh.FloatsPerVertex }

// Frame is everything needed to draw one tick.
type Frame struct {
	Drawables []Drawable
	Lights    *lighting.Buffer
}

// Light returns the first light position, or the origin when there is none.
func (f Frame) Light() mgl64.Vec3 {
	if f.Lights == nil || f.Lights.Count() == 0 {
		return mgl64.Vec3{}
	}
	return f.Lights.Lights[0]
}

// Collect snapshots every generated mesh and light in r. Entities whose
// StaticMesh has no geometry yet are skipped.
func Collect(r *ecs.Registry) Frame {
	f := Frame{Lights: lighting.NewBuffer()}

	for _, e := range r.EntitiesWith(ecs.KindStaticMesh) {
		sm, _ := ecs.Get[ecs.StaticMesh](r, e)
		if sm.Mesh == nil {
			continue
		}
		vertices := sm.Mesh.Interleaved()
		indices := sm.Mesh.Indices()
		f.Drawables = append(f.Drawables, Drawable{
			Entity:      e,
			Vertices:    vertices,
			Indices:     indices,
			Model:       toMat32(sm.Model),
			Color:       mgl32.Vec4{float32(sm.Color[0]), float32(sm.Color[1]), float32(sm.Color[2]), float32(sm.Color[3])},
			ShowNormals: r.HasComponent(e, ecs.KindNormalFlag),
			Digest:      mesh.BufferDigest(vertices, indices),
		})
	}

	for _, e := range r.EntitiesWith(ecs.KindPositionalLight) {
		l, _ := ecs.Get[ecs.PositionalLight](r, e)
		if !f.Lights.Add(l.Position) {
			break
		}
	}
	return f
}

func toMat32(m mgl64.Mat4) mgl32.Mat4 {
	var out mgl32.Mat4
	for i := range m {
		out[i] = float32(m[i])
	}
	return out
}
