package mesh

import (
	"errors"
	"fmt"

	"github.com/Carmen-Shannon/oxy-desk/common"
)

var (
	// ErrIndexOutOfRange is returned when a triangle index does not address an existing vertex.
	ErrIndexOutOfRange = errors.New("mesh: index out of range")

	// ErrNilPoint is returned when a quad is requested with an unset corner.
	ErrNilPoint = errors.New("mesh: nil point")
)

// QuadIndices is the fixed triangulation of a 4-vertex loop: (0,1,2) and (2,3,0).
var QuadIndices = [6]uint32{0, 1, 2, 2, 3, 0}

// face is the implementation of the Face interface.
type face struct {
	vertices []common.Point
	indices  []uint32
	centroid common.Point
}

// Face defines the interface for a planar polygon: an ordered vertex loop plus a
// triangle index list local to that loop. The vertex order is the winding and decides
// the sign of the computed normal.
type Face interface {
	// AddVertex appends a vertex and recomputes the centroid.
	//
	// Parameters:
	//   - p: the vertex to append
	AddVertex(p common.Point)

	// AddIndex appends a triangle index. The index must address an existing vertex.
	//
	// Parameters:
	//   - i: the vertex-local index
	//
	// Returns:
	//   - error: ErrIndexOutOfRange if i >= VertexCount(); the face is left unchanged
	AddIndex(i uint32) error

	// AddIndices appends several triangle indices. Each index is validated against the
	// vertex count at the time of the call and nothing is appended if any is invalid.
	//
	// Parameters:
	//   - indices: the vertex-local indices
	//
	// Returns:
	//   - error: ErrIndexOutOfRange for the first invalid index
	AddIndices(indices ...uint32) error

	// Vertices returns a copy of the vertex loop in winding order.
	//
	// Returns:
	//   - []common.Point: the vertices
	Vertices() []common.Point

	// Indices returns a copy of the vertex-local triangle indices.
	//
	// Returns:
	//   - []uint32: the indices
	Indices() []uint32

	// VertexCount returns the number of vertices.
	VertexCount() int

	// Centroid returns the mean of all vertices, or the origin for an empty face.
	Centroid() common.Point

	// Normal computes the unit normal (v1-v0)×(v2-v0) from the first three vertices.
	// It is never cached. Fewer than three vertices or a zero-length cross product
	// yield common.UnitY.
	//
	// Returns:
	//   - common.Point: the face normal
	Normal() common.Point

	// Clear removes all vertices and indices and resets the centroid to the origin.
	Clear()

	// EachVertex calls fn for every vertex in winding order until fn returns false.
	//
	// Parameters:
	//   - fn: the visitor
	//
	// Returns:
	//   - bool: false if the visit was stopped early
	EachVertex(fn func(common.Point) bool) bool

	// EachIndex calls fn for every index in order until fn returns false.
	//
	// Parameters:
	//   - fn: the visitor
	//
	// Returns:
	//   - bool: false if the visit was stopped early
	EachIndex(fn func(uint32) bool) bool
}

var _ Face = &face{}

// NewFace creates an empty Face configured with the given options.
//
// Parameters:
//   - options: functional options to configure the face
//
// Returns:
//   - Face: the new face
func NewFace(options ...FaceBuilderOption) Face {
	f := &face{}
	for _, opt := range options {
		opt(f)
	}
	f.centroid = common.Centroid(f.vertices)
	return f
}

// NewQuad builds a 4-vertex Face with the fixed (0,1,2),(2,3,0) triangulation.
// The points are copied in the given order, which defines the winding.
//
// Parameters:
//   - p0, p1, p2, p3: the corners in winding order
//
// Returns:
//   - Face: the quad
//   - error: ErrNilPoint if any corner is nil
func NewQuad(p0, p1, p2, p3 *common.Point) (Face, error) {
	for i, p := range [4]*common.Point{p0, p1, p2, p3} {
		if p == nil {
			return nil, fmt.Errorf("quad corner %d: %w", i, ErrNilPoint)
		}
	}

	f := NewFace(WithCapacity(4))
	f.AddVertex(*p0)
	f.AddVertex(*p1)
	f.AddVertex(*p2)
	f.AddVertex(*p3)
	if err := f.AddIndices(QuadIndices[:]...); err != nil {
		return nil, err
	}
	return f, nil
}

func (f *face) AddVertex(p common.Point) {
	f.vertices = append(f.vertices, p)
	f.centroid = common.Centroid(f.vertices)
}

func (f *face) AddIndex(i uint32) error {
	if int(i) >= len(f.vertices) {
		return fmt.Errorf("index %d with %d vertices: %w", i, len(f.vertices), ErrIndexOutOfRange)
	}
	f.indices = append(f.indices, i)
	return nil
}

func (f *face) AddIndices(indices ...uint32) error {
	count := len(f.vertices)
	for _, i := range indices {
		if int(i) >= count {
			return fmt.Errorf("index %d with %d vertices: %w", i, count, ErrIndexOutOfRange)
		}
	}
	f.indices = append(f.indices, indices...)
	return nil
}

func (f *face) Vertices() []common.Point {
	out := make([]common.Point, len(f.vertices))
	copy(out, f.vertices)
	return out
}

func (f *face) Indices() []uint32 {
	out := make([]uint32, len(f.indices))
	copy(out, f.indices)
	return out
}

func (f *face) VertexCount() int {
	return len(f.vertices)
}

func (f *face) Centroid() common.Point {
	return f.centroid
}

func (f *face) Normal() common.Point {
	if len(f.vertices) < 3 {
		return common.UnitY
	}
	e1 := f.vertices[1].Sub(f.vertices[0])
	e2 := f.vertices[2].Sub(f.vertices[0])
	n, ok := e1.Cross(e2).Normalize()
	if !ok {
		return common.UnitY
	}
	return n
}

func (f *face) Clear() {
	f.vertices = f.vertices[:0]
	f.indices = f.indices[:0]
	f.centroid = common.Origin
}

func (f *face) EachVertex(fn func(common.Point) bool) bool {
	for _, v := range f.vertices {
		if !fn(v) {
			return false
		}
	}
	return true
}

func (f *face) EachIndex(fn func(uint32) bool) bool {
	for _, i := range f.indices {
		if !fn(i) {
			return false
		}
	}
	return true
}
