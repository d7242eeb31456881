package model

import (
	"github.com/Carmen-Shannon/oxy-desk/common"
)

// ModelBuilderOption is a functional option for configuring a Model via NewModel.
type ModelBuilderOption func(*model)

// WithName is an option builder that sets the name of the Model.
//
// Parameters:
//   - name: the model identifier
//
// Returns:
//   - ModelBuilderOption: a function that applies the name option to a model
func WithName(name string) ModelBuilderOption {
	return func(m *model) {
		m.name = name
	}
}

// WithVertices is an option builder that sets the vertex stream of the Model.
// The raw vertex data is marshalled from it when the Model is created.
//
// Parameters:
//   - vertices: the vertices, in stream order
//
// Returns:
//   - ModelBuilderOption: a function that applies the vertices option to a model
func WithVertices(vertices []GPUVertex) ModelBuilderOption {
	return func(m *model) {
		m.vertices = vertices
	}
}

// WithIndices is an option builder that sets the triangle-list indices of the Model.
//
// Parameters:
//   - indices: the indices, valid against the vertex stream
//
// Returns:
//   - ModelBuilderOption: a function that applies the indices option to a model
func WithIndices(indices []uint32) ModelBuilderOption {
	return func(m *model) {
		m.indices = indices
	}
}

// WithBaseColor is an option builder that sets the base color of the Model.
//
// Parameters:
//   - c: the base color
//
// Returns:
//   - ModelBuilderOption: a function that applies the base color option to a model
func WithBaseColor(c common.Color) ModelBuilderOption {
	return func(m *model) {
		m.baseColor = c
	}
}

// WithModelMatrix is an option builder that sets the object-to-world matrix.
//
// Parameters:
//   - mat: the column-major model matrix
//
// Returns:
//   - ModelBuilderOption: a function that applies the model matrix option to a model
func WithModelMatrix(mat [16]float32) ModelBuilderOption {
	return func(m *model) {
		m.modelMatrix = mat
	}
}

// WithBoundingRadius is an option builder that manually sets the bounding sphere radius.
// Use this to override the auto-computed value from ComputeBoundingRadius when a manually
// tuned conservative bound is preferred.
//
// Parameters:
//   - radius: the bounding radius to set
//
// Returns:
//   - ModelBuilderOption: a function that applies the bounding radius option to a model
func WithBoundingRadius(radius float32) ModelBuilderOption {
	return func(m *model) {
		m.boundingRadius = radius
	}
}

// WithPartColors is an option builder that sets the resolved part color table.
//
// Parameters:
//   - colors: effective colors keyed by part name
//
// Returns:
//   - ModelBuilderOption: a function that applies the part colors option to a model
func WithPartColors(colors map[string]common.Color) ModelBuilderOption {
	return func(m *model) {
		for k, v := range colors {
			m.partColors[k] = v
		}
	}
}
