package model

import (
	"github.com/Carmen-Shannon/oxy-desk/common"
	"github.com/Carmen-Shannon/oxy-desk/engine/object"
)

// model is the implementation of the Model interface.
type model struct {
	name                  string
	vertices              []GPUVertex
	indices               []uint32
	vertexData, indexData []byte
	baseColor             common.Color
	modelMatrix           [16]float32
	boundingRadius        float32
	partColors            map[string]common.Color
}

// Model defines the interface for a GPU-ready mesh container.
// A Model holds the flattened vertex and index streams of one Object together with
// the per-object data a renderer needs to draw it. It is produced by FromObject and is
// immutable once built.
type Model interface {
	// Name retrieves the model identifier.
	//
	// Returns:
	//   - string: the model name
	Name() string

	// VertexData returns the raw vertex data for this model's mesh, laid out per VertexBufferLayout.
	//
	// Returns:
	//   - []byte: the vertex data
	VertexData() []byte

	// IndexData returns the raw uint32 index data for this model's mesh.
	//
	// Returns:
	//   - []byte: the index data
	IndexData() []byte

	// IndexCount returns the number of indices in the model's mesh.
	//
	// Returns:
	//   - int: the index count
	IndexCount() int

	// VertexCount returns the number of vertices in the model's mesh.
	//
	// Returns:
	//   - int: the vertex count
	VertexCount() int

	// Vertices returns the vertex stream as stride-6 floats (x, y, z, nx, ny, nz).
	//
	// Returns:
	//   - []float32: the vertex floats
	Vertices() []float32

	// Indices returns a copy of the triangle-list indices.
	//
	// Returns:
	//   - []uint32: the indices
	Indices() []uint32

	// BaseColor returns the base color of the source object.
	//
	// Returns:
	//   - common.Color: the base color
	BaseColor() common.Color

	// ModelMatrix returns the object-to-world matrix captured at build time.
	//
	// Returns:
	//   - [16]float32: the column-major model matrix
	ModelMatrix() [16]float32

	// UniformData returns the marshalled GPUModelData for this model.
	//
	// Returns:
	//   - []byte: 80-byte uniform buffer contents
	UniformData() []byte

	// BoundingRadius returns the bounding sphere radius for this model, measured as
	// the maximum vertex distance from the object origin.
	//
	// Returns:
	//   - float32: the bounding radius
	BoundingRadius() float32

	// PartColors returns the effective color of every part keyed by part name.
	//
	// Returns:
	//   - map[string]common.Color: a copy of the color table
	PartColors() map[string]common.Color
}

var _ Model = &model{}

// NewModel creates a new Model instance with the specified options applied.
//
// Parameters:
//   - options: a variadic list of ModelBuilderOption functions to configure the Model
//
// Returns:
//   - Model: a new instance of Model configured with the provided options
func NewModel(options ...ModelBuilderOption) Model {
	m := &model{
		baseColor:   common.White,
		modelMatrix: common.IdentityTransform().ModelMatrix(),
		partColors:  map[string]common.Color{},
	}
	for _, opt := range options {
		opt(m)
	}
	m.vertexData = make([]byte, 0, len(m.vertices)*GPUVertexSize)
	for i := range m.vertices {
		m.vertexData = append(m.vertexData, m.vertices[i].Marshal()...)
	}
	m.indexData = append([]byte(nil), common.SliceToBytes(m.indices)...)
	if m.boundingRadius == 0 {
		m.boundingRadius = ComputeBoundingRadius(m.vertices)
	}
	return m
}

// FromObject flattens obj into a Model. The object's vertex and index streams are
// consumed once, and every part color is resolved through the object's base color.
//
// Parameters:
//   - obj: the object to flatten
//
// Returns:
//   - Model: the GPU-ready model
func FromObject(obj object.Object) Model {
	var vertices []GPUVertex
	for v := range obj.RenderVertices() {
		vertices = append(vertices, GPUVertex{Position: v.Position, Normal: v.Normal})
	}
	colors := make(map[string]common.Color)
	for _, p := range obj.Parts() {
		if _, ok := colors[p.Name()]; !ok {
			colors[p.Name()] = obj.PartColor(p.Name())
		}
	}
	return NewModel(
		WithName(obj.Name()),
		WithVertices(vertices),
		WithIndices(obj.IndexBuffer()),
		WithBaseColor(obj.BaseColor()),
		WithModelMatrix(obj.ModelMatrix()),
		WithPartColors(colors),
	)
}

func (m *model) Name() string {
	return m.name
}

func (m *model) VertexData() []byte {
	return m.vertexData
}

func (m *model) IndexData() []byte {
	return m.indexData
}

func (m *model) IndexCount() int {
	return len(m.indices)
}

func (m *model) VertexCount() int {
	return len(m.vertices)
}

func (m *model) Vertices() []float32 {
	out := make([]float32, 0, len(m.vertices)*object.VertexStride)
	for _, v := range m.vertices {
		out = append(out, v.Position[0], v.Position[1], v.Position[2], v.Normal[0], v.Normal[1], v.Normal[2])
	}
	return out
}

func (m *model) Indices() []uint32 {
	out := make([]uint32, len(m.indices))
	copy(out, m.indices)
	return out
}

func (m *model) BaseColor() common.Color {
	return m.baseColor
}

func (m *model) ModelMatrix() [16]float32 {
	return m.modelMatrix
}

func (m *model) UniformData() []byte {
	data := GPUModelData{
		Model:     m.modelMatrix,
		BaseColor: [4]float32{m.baseColor[0], m.baseColor[1], m.baseColor[2], 1},
	}
	return data.Marshal()
}

func (m *model) BoundingRadius() float32 {
	return m.boundingRadius
}

func (m *model) PartColors() map[string]common.Color {
	out := make(map[string]common.Color, len(m.partColors))
	for k, v := range m.partColors {
		out[k] = v
	}
	return out
}
