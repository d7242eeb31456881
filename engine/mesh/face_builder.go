package mesh

import (
	"slices"

	"github.com/Carmen-Shannon/oxy-desk/common"
)

// FaceBuilderOption is a functional option for configuring a Face via NewFace.
type FaceBuilderOption func(*face)

// WithCapacity preallocates room for n vertices and 2n indices in total.
// Vertices already seeded by WithVertices are kept.
//
// Parameters:
//   - n: the expected vertex count
//
// Returns:
//   - FaceBuilderOption: a function that applies the capacity option to a face
func WithCapacity(n int) FaceBuilderOption {
	return func(f *face) {
		if n < 0 {
			n = 0
		}
		f.vertices = slices.Grow(f.vertices, max(n-len(f.vertices), 0))
		f.indices = slices.Grow(f.indices, max(2*n-len(f.indices), 0))
	}
}

// WithVertices seeds the face with an initial vertex loop. Indices are not generated.
//
// Parameters:
//   - vertices: the vertices in winding order
//
// Returns:
//   - FaceBuilderOption: a function that applies the vertices option to a face
func WithVertices(vertices ...common.Point) FaceBuilderOption {
	return func(f *face) {
		f.vertices = append(f.vertices, vertices...)
	}
}
