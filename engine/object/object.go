package object

import (
	"fmt"
	"iter"

	"github.com/Carmen-Shannon/oxy-desk/common"
	"github.com/Carmen-Shannon/oxy-desk/engine/mesh"
	"github.com/Carmen-Shannon/oxy-desk/engine/part"
)

// VertexStride is the number of floats emitted per render vertex: x, y, z, nx, ny, nz.
const VertexStride = 6

// RenderVertex is one flattened vertex: its position and the flat normal of its face.
type RenderVertex struct {
	Position [3]float32
	Normal   [3]float32
}

// Stats is a read-only count of an object's hierarchy.
type Stats struct {
	Parts    int
	Faces    int
	Vertices int
}

// object is the implementation of the Object interface.
type object struct {
	name      string
	parts     []part.Part
	transform common.Transform
	baseColor common.Color
	centroid  common.Point
}

// Object defines the interface for a named assembly of Parts.
// The centroid of an Object is the plain mean of its part centroids, not of its
// vertices: a part with 6 faces counts the same as a part with 600.
// Object also flattens its hierarchy into a single vertex stream and a single index
// stream for a graphics backend.
type Object interface {
	// Name returns the object identifier.
	Name() string

	// AddPart appends a part and recomputes the centroid.
	//
	// Parameters:
	//   - p: the part to append
	AddPart(p part.Part)

	// AddParts appends several parts and recomputes the centroid once after all are attached.
	//
	// Parameters:
	//   - parts: the parts to append, in order
	AddParts(parts ...part.Part)

	// RemovePart removes every part named name and recomputes the centroid.
	// Removing a name that does not exist is a no-op.
	//
	// Parameters:
	//   - name: the exact part name
	//
	// Returns:
	//   - int: the number of parts removed
	RemovePart(name string) int

	// FindPart returns the first part with the exact name.
	//
	// Parameters:
	//   - name: the exact part name
	//
	// Returns:
	//   - part.Part: the part, or nil
	//   - bool: whether a part was found
	FindPart(name string) (part.Part, bool)

	// Parts returns the parts in insertion order. The slice is a copy.
	Parts() []part.Part

	// Centroid returns the mean of the part centroids, or the origin with no parts.
	Centroid() common.Point

	// Transform returns the local transform.
	Transform() common.Transform

	// Position returns the local translation.
	Position() [3]float32

	// SetPosition sets the local translation.
	//
	// Parameters:
	//   - x, y, z: the translation
	SetPosition(x, y, z float32)

	// SetRotation sets the local Euler rotation in radians.
	//
	// Parameters:
	//   - rx, ry, rz: the rotation angles
	SetRotation(rx, ry, rz float32)

	// SetScale sets the local scale.
	//
	// Parameters:
	//   - sx, sy, sz: the scale factors
	SetScale(sx, sy, sz float32)

	// ModelMatrix returns the local model matrix built from the transform.
	ModelMatrix() [16]float32

	// BaseColor returns the color used by parts that keep the default color.
	BaseColor() common.Color

	// SetBaseColor sets the base color.
	//
	// Parameters:
	//   - c: the color
	SetBaseColor(c common.Color)

	// PartColor resolves the effective color of a named part: the part's own color when
	// it is not common.White, otherwise the object's base color. Unknown parts also
	// resolve to the base color.
	//
	// Parameters:
	//   - name: the exact part name
	//
	// Returns:
	//   - common.Color: the effective color
	PartColor(name string) common.Color

	// RenderVertices returns a lazy, restartable sequence of every vertex in
	// part, face, vertex order, each stamped with its face normal.
	// The sequence reflects the object's state at iteration time.
	//
	// Returns:
	//   - iter.Seq[RenderVertex]: the vertex stream
	RenderVertices() iter.Seq[RenderVertex]

	// RenderIndices returns a lazy, restartable sequence of triangle indices valid
	// against RenderVertices. Each face's local indices are offset by the number of
	// vertices emitted before it.
	//
	// Returns:
	//   - iter.Seq[uint32]: the index stream
	RenderIndices() iter.Seq[uint32]

	// VertexBuffer collects RenderVertices into a flat stride-6 float slice.
	//
	// Returns:
	//   - []float32: x, y, z, nx, ny, nz per vertex
	VertexBuffer() []float32

	// IndexBuffer collects RenderIndices into a flat slice.
	//
	// Returns:
	//   - []uint32: triangle-list indices
	IndexBuffer() []uint32

	// Stats counts parts, faces and vertices. It is recomputed on every call.
	Stats() Stats

	// String returns a one-line summary.
	String() string
}

var _ Object = &object{}

// NewObject creates a new Object with the given name and options.
//
// Parameters:
//   - name: the object identifier
//   - options: functional options to configure the object
//
// Returns:
//   - Object: the new object
func NewObject(name string, options ...ObjectBuilderOption) Object {
	o := &object{
		name:      name,
		transform: common.IdentityTransform(),
		baseColor: common.White,
	}
	for _, opt := range options {
		opt(o)
	}
	o.recomputeCentroid()
	return o
}

func (o *object) Name() string {
	return o.name
}

func (o *object) AddPart(p part.Part) {
	o.parts = append(o.parts, p)
	o.recomputeCentroid()
}

func (o *object) AddParts(parts ...part.Part) {
	o.parts = append(o.parts, parts...)
	o.recomputeCentroid()
}

func (o *object) RemovePart(name string) int {
	kept := o.parts[:0]
	for _, p := range o.parts {
		if p.Name() != name {
			kept = append(kept, p)
		}
	}
	removed := len(o.parts) - len(kept)
	clear(o.parts[len(kept):])
	o.parts = kept
	o.recomputeCentroid()
	return removed
}

func (o *object) FindPart(name string) (part.Part, bool) {
	for _, p := range o.parts {
		if p.Name() == name {
			return p, true
		}
	}
	return nil, false
}

func (o *object) Parts() []part.Part {
	out := make([]part.Part, len(o.parts))
	copy(out, o.parts)
	return out
}

func (o *object) Centroid() common.Point {
	return o.centroid
}

func (o *object) Transform() common.Transform {
	return o.transform
}

func (o *object) Position() [3]float32 {
	return o.transform.Position
}

func (o *object) SetPosition(x, y, z float32) {
	o.transform.Position = [3]float32{x, y, z}
}

func (o *object) SetRotation(rx, ry, rz float32) {
	o.transform.Rotation = [3]float32{rx, ry, rz}
}

func (o *object) SetScale(sx, sy, sz float32) {
	o.transform.Scale = [3]float32{sx, sy, sz}
}

func (o *object) ModelMatrix() [16]float32 {
	return o.transform.ModelMatrix()
}

func (o *object) BaseColor() common.Color {
	return o.baseColor
}

func (o *object) SetBaseColor(c common.Color) {
	o.baseColor = c
}

func (o *object) PartColor(name string) common.Color {
	if p, ok := o.FindPart(name); ok && !p.Color().IsWhite() {
		return p.Color()
	}
	return o.baseColor
}

func (o *object) RenderVertices() iter.Seq[RenderVertex] {
	return func(yield func(RenderVertex) bool) {
		o.walkFaces(func(f mesh.Face, _ uint32) bool {
			n := f.Normal().Vec()
			return f.EachVertex(func(v common.Point) bool {
				return yield(RenderVertex{Position: v.Vec(), Normal: n})
			})
		})
	}
}

func (o *object) RenderIndices() iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		o.walkFaces(func(f mesh.Face, base uint32) bool {
			return f.EachIndex(func(i uint32) bool {
				return yield(base + i)
			})
		})
	}
}

func (o *object) VertexBuffer() []float32 {
	out := make([]float32, 0, o.Stats().Vertices*VertexStride)
	for v := range o.RenderVertices() {
		out = append(out, v.Position[0], v.Position[1], v.Position[2], v.Normal[0], v.Normal[1], v.Normal[2])
	}
	return out
}

func (o *object) IndexBuffer() []uint32 {
	var out []uint32
	for i := range o.RenderIndices() {
		out = append(out, i)
	}
	return out
}

func (o *object) Stats() Stats {
	s := Stats{Parts: len(o.parts)}
	for _, p := range o.parts {
		s.Faces += p.FaceCount()
		s.Vertices += p.VertexCount()
	}
	return s
}

func (o *object) String() string {
	return fmt.Sprintf("%s - %d parts - centroid: %s", o.name, len(o.parts), o.centroid)
}

// walkFaces visits every face in part then face order along with the number of vertices
// emitted before it. Both render streams go through here.
func (o *object) walkFaces(fn func(f mesh.Face, base uint32) bool) {
	var base uint32
	for _, p := range o.parts {
		for _, f := range p.Faces() {
			if !fn(f, base) {
				return
			}
			base += uint32(f.VertexCount())
		}
	}
}

// recomputeCentroid averages the part centroids (part-weighted).
func (o *object) recomputeCentroid() {
	centroids := make([]common.Point, len(o.parts))
	for i, p := range o.parts {
		centroids[i] = p.Centroid()
	}
	o.centroid = common.Centroid(centroids)
}
