package ecs

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/Faultbox/surfgen/internal/engine/input"
	"github.com/Faultbox/surfgen/pkg/mesh"
)

// Kind identifies a component type. At most one component of each kind is
// attached to an entity.
type Kind uint8

const (
	KindTerrainChunk Kind = iota + 1
	KindOcean
	KindStaticMesh
	KindPositionalLight
	KindInputBinding
	KindNormalFlag
)

// Kinds lists every component kind in declaration order.
var Kinds = []Kind{
	KindTerrainChunk,
	KindOcean,
	KindStaticMesh,
	KindPositionalLight,
	KindInputBinding,
	KindNormalFlag,
}

func (k Kind) String() string {
	switch k {
	case KindTerrainChunk:
		return "TerrainChunk"
	case KindOcean:
		return "Ocean"
	case KindStaticMesh:
		return "StaticMesh"
	case KindPositionalLight:
		return "PositionalLight"
	case KindInputBinding:
		return "InputBinding"
	case KindNormalFlag:
		return "NormalFlag"
	default:
		return "Unknown"
	}
}

// Component is a piece of entity state. The set of implementations is closed
// to this package.
type Component interface {
	Kind() Kind
	component()
}

// TerrainChunk places a terrain tile at grid coordinates (I, J).
type TerrainChunk struct {
	I, J int
}

// Ocean requests a Width x Height cell ocean surface.
type Ocean struct {
	Width, Height int
}

// StaticMesh holds generated geometry and how to draw it.
type StaticMesh struct {
	Mesh  *mesh.Mesh
	Model mgl64.Mat4
	Color mgl64.Vec4

	// Source is a digest of the inputs the mesh was generated from. Zero means
	// the mesh has not been generated yet.
	Source uint64
}

// PositionalLight is a point light.
type PositionalLight struct {
	Position mgl64.Vec3
}

// InputBinding maps six keys to movement along -X, +X, +Z, -Z, -Y and +Y.
type InputBinding struct {
	Left, Right       input.Key
	Backward, Forward input.Key
	Down, Up          input.Key
}

// DefaultLightBinding is the J L M N U I layout.
func DefaultLightBinding() InputBinding {
	return InputBinding{
		Left:     input.KeyJ,
		Right:    input.KeyL,
		Backward: input.KeyM,
		Forward:  input.KeyN,
		Down:     input.KeyU,
		Up:       input.KeyI,
	}
}

// NormalFlag marks an entity whose normals should be drawn.
type NormalFlag struct{}

func (TerrainChunk) Kind() Kind    { return KindTerrainChunk }
func (Ocean) Kind() Kind           { return KindOcean }
func (StaticMesh) Kind() Kind      { return KindStaticMesh }
func (PositionalLight) Kind() Kind { return KindPositionalLight }
func (InputBinding) Kind() Kind    { return KindInputBinding }
func (NormalFlag) Kind() Kind      { return KindNormalFlag }

func (TerrainChunk) component()    {}
func (Ocean) component()           {}
func (StaticMesh) component()      {}
func (PositionalLight) component() {}
func (InputBinding) component()    {}
func (NormalFlag) component()      {}
