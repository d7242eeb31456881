package part

import (
	"fmt"

	"github.com/Carmen-Shannon/oxy-desk/common"
	"github.com/Carmen-Shannon/oxy-desk/engine/mesh"
)

// part is the implementation of the Part interface.
type part struct {
	name      string
	faces     []mesh.Face
	transform common.Transform
	color     common.Color
	size      common.Point
	centroid  common.Point
}

// Part defines the interface for a named rigid sub-assembly of faces.
// A Part owns its faces exclusively and carries its own local transform and color.
// Its centroid is the mean of every vertex across every face, so faces with more
// vertices weigh more.
type Part interface {
	// Name returns the part identifier.
	Name() string

	// AddFace appends a face and recomputes the centroid.
	//
	// Parameters:
	//   - f: the face to append
	AddFace(f mesh.Face)

	// AddFaces appends several faces and recomputes the centroid once.
	//
	// Parameters:
	//   - faces: the faces to append, in order
	AddFaces(faces ...mesh.Face)

	// Faces returns the faces in insertion order. The slice is a copy; the faces are not.
	//
	// Returns:
	//   - []mesh.Face: the faces
	Faces() []mesh.Face

	// FaceCount returns the number of faces.
	FaceCount() int

	// VertexCount returns the total number of vertices across all faces.
	VertexCount() int

	// Centroid returns the vertex-weighted mean of the part, or the origin with no faces.
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

	// Color returns the part color. common.White means "inherit from the object".
	Color() common.Color

	// SetColor sets the part color.
	//
	// Parameters:
	//   - c: the color
	SetColor(c common.Color)

	// Size returns the cuboid extents the part was generated from, or the zero point
	// when the part was not built by the cuboid generator.
	Size() common.Point
}

var _ Part = &part{}

// NewPart creates a new Part with the given name and options.
//
// Parameters:
//   - name: the part identifier
//   - options: functional options to configure the part
//
// Returns:
//   - Part: the new part
func NewPart(name string, options ...PartBuilderOption) Part {
	p := &part{
		name:      name,
		transform: common.IdentityTransform(),
		color:     common.White,
	}
	for _, opt := range options {
		opt(p)
	}
	p.recomputeCentroid()
	return p
}

// NewCuboidPart builds a Part whose faces come from the cuboid generator.
// The offset is used as both the geometric center and the recorded local position,
// and the size is remembered so the part can be regenerated after persistence.
//
// Parameters:
//   - name: the part identifier
//   - offset: the center of the box relative to the owning object
//   - size: the box extents
//   - color: the part color
//   - options: winding overrides forwarded to mesh.GenerateCuboid
//
// Returns:
//   - Part: the new part
//   - error: error if the geometry could not be generated
func NewCuboidPart(name string, offset, size common.Point, color common.Color, options ...mesh.CuboidBuilderOption) (Part, error) {
	faces, err := mesh.GenerateCuboid(offset, size, options...)
	if err != nil {
		return nil, fmt.Errorf("part %q: %w", name, err)
	}
	return NewPart(name,
		WithFaces(faces...),
		WithPosition(offset.X, offset.Y, offset.Z),
		WithColor(color),
		WithSize(size),
	), nil
}

func (p *part) Name() string {
	return p.name
}

func (p *part) AddFace(f mesh.Face) {
	p.faces = append(p.faces, f)
	p.recomputeCentroid()
}

func (p *part) AddFaces(faces ...mesh.Face) {
	p.faces = append(p.faces, faces...)
	p.recomputeCentroid()
}

func (p *part) Faces() []mesh.Face {
	out := make([]mesh.Face, len(p.faces))
	copy(out, p.faces)
	return out
}

func (p *part) FaceCount() int {
	return len(p.faces)
}

func (p *part) VertexCount() int {
	n := 0
	for _, f := range p.faces {
		n += f.VertexCount()
	}
	return n
}

func (p *part) Centroid() common.Point {
	return p.centroid
}

func (p *part) Transform() common.Transform {
	return p.transform
}

func (p *part) Position() [3]float32 {
	return p.transform.Position
}

func (p *part) SetPosition(x, y, z float32) {
	p.transform.Position = [3]float32{x, y, z}
}

func (p *part) SetRotation(rx, ry, rz float32) {
	p.transform.Rotation = [3]float32{rx, ry, rz}
}

func (p *part) SetScale(sx, sy, sz float32) {
	p.transform.Scale = [3]float32{sx, sy, sz}
}

func (p *part) ModelMatrix() [16]float32 {
	return p.transform.ModelMatrix()
}

func (p *part) Color() common.Color {
	return p.color
}

func (p *part) SetColor(c common.Color) {
	p.color = c
}

func (p *part) Size() common.Point {
	return p.size
}

// recomputeCentroid averages every vertex of every face (vertex-weighted).
func (p *part) recomputeCentroid() {
	var sum common.Point
	n := 0
	for _, f := range p.faces {
		f.EachVertex(func(v common.Point) bool {
			sum = sum.Add(v)
			n++
			return true
		})
	}
	if n == 0 {
		p.centroid = common.Origin
		return
	}
	p.centroid = sum.Scale(1 / float32(n))
}
