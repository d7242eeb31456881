// Package export writes scenes out as triangle meshes for use outside the engine.
package export

import (
	"errors"
	"fmt"

	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/Carmen-Shannon/oxy-desk/common"
	"github.com/Carmen-Shannon/oxy-desk/engine/object"
	"github.com/Carmen-Shannon/oxy-desk/engine/scene"
)

// ErrEmptyScene is returned by SaveSTL when the scene has no triangles.
var ErrEmptyScene = errors.New("export: scene has no triangles")

// ObjectTriangles returns the triangles of obj in world space, in index-stream order.
// Vertices are mapped through the object model matrix.
func ObjectTriangles(obj object.Object) []*sdf.Triangle3 {
	m := obj.ModelMatrix()
	var positions []v3.Vec
	for v := range obj.RenderVertices() {
		p := common.TransformPoint(m, common.PointFromVec(v.Position))
		positions = append(positions, v3.Vec{X: float64(p.X), Y: float64(p.Y), Z: float64(p.Z)})
	}

	indices := obj.IndexBuffer()
	out := make([]*sdf.Triangle3, 0, len(indices)/3)
	for i := 0; i+2 < len(indices); i += 3 {
		out = append(out, &sdf.Triangle3{positions[indices[i]], positions[indices[i+1]], positions[indices[i+2]]})
	}
	return out
}

// Triangles returns every triangle of s in world space, object by object.
func Triangles(s scene.Scene) []*sdf.Triangle3 {
	var out []*sdf.Triangle3
	for _, obj := range s.Objects() {
		out = append(out, ObjectTriangles(obj)...)
	}
	return out
}

// SaveSTL writes every triangle of s to a binary STL file at path.
//
// Parameters:
//   - path: the output file
//   - s: the scene to export
//
// Returns:
//   - int: the number of triangles written
//   - error: ErrEmptyScene when there is nothing to write, or the write error
func SaveSTL(path string, s scene.Scene) (int, error) {
	tris := Triangles(s)
	if len(tris) == 0 {
		return 0, ErrEmptyScene
	}
	if err := render.SaveSTL(path, tris); err != nil {
		return 0, fmt.Errorf("failed to write %s: %w", path, err)
	}
	return len(tris), nil
}
