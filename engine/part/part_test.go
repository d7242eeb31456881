package part

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Carmen-Shannon/oxy-desk/common"
	"github.com/Carmen-Shannon/oxy-desk/engine/mesh"
)

func TestNewPartDefaults(t *testing.T) {
	p := NewPart("empty")
	assert.Equal(t, "empty", p.Name())
	assert.Equal(t, common.Origin, p.Centroid())
	assert.Equal(t, common.White, p.Color())
	assert.Equal(t, common.IdentityTransform(), p.Transform())
	assert.Zero(t, p.FaceCount())
	assert.Zero(t, p.VertexCount())
}

func TestPartCentroidIsVertexWeighted(t *testing.T) {
	// three vertices around x=0 and one far-away single-vertex face
	tri := mesh.NewFace(mesh.WithVertices(
		common.NewPoint(0, 0, 0),
		common.NewPoint(0, 3, 0),
		common.NewPoint(0, 0, 3),
	))
	lone := mesh.NewFace(mesh.WithVertices(common.NewPoint(8, 0, 0)))

	p := NewPart("mixed")
	p.AddFace(tri)
	assert.True(t, common.NewPoint(0, 1, 1).ApproxEqual(p.Centroid(), 1e-6))

	p.AddFace(lone)
	// (0+0+0+8)/4, (0+3+0+0)/4, (0+0+3+0)/4
	assert.True(t, common.NewPoint(2, 0.75, 0.75).ApproxEqual(p.Centroid(), 1e-6), "got %v", p.Centroid())

	faceMean := common.Centroid([]common.Point{tri.Centroid(), lone.Centroid()})
	assert.False(t, faceMean.ApproxEqual(p.Centroid(), 1e-3), "part centroid must not be the mean of face centroids")
}

func TestPartAddFacesBatch(t *testing.T) {
	faces, err := mesh.GenerateCuboid(common.NewPoint(1, 2, 3), common.NewPoint(1, 1, 1))
	require.NoError(t, err)

	p := NewPart("box")
	p.AddFaces(faces...)
	assert.Equal(t, 6, p.FaceCount())
	assert.Equal(t, 24, p.VertexCount())
	assert.True(t, common.NewPoint(1, 2, 3).ApproxEqual(p.Centroid(), 1e-5))
}

func TestNewCuboidPart(t *testing.T) {
	offset := common.NewPoint(0, -0.85, 0.1)
	size := common.NewPoint(0.6, 0.08, 0.4)
	color := common.NewColor(0.2, 0.2, 0.2)

	p, err := NewCuboidPart("BaseMonitor", offset, size, color)
	require.NoError(t, err)

	assert.Equal(t, "BaseMonitor", p.Name())
	assert.Equal(t, 6, p.FaceCount())
	assert.Equal(t, offset.Vec(), p.Position())
	assert.Equal(t, size, p.Size())
	assert.Equal(t, color, p.Color())
	assert.True(t, offset.ApproxEqual(p.Centroid(), 1e-5))
}

func TestPartTransformSetters(t *testing.T) {
	p := NewPart("t", WithRotation(0, 0, 0), WithScale(2, 2, 2))
	p.SetPosition(1, 2, 3)
	p.SetRotation(0, 0, 0)
	p.SetScale(1, 1, 1)
	p.SetColor(common.NewColor(0.5, 0, 0))

	m := p.ModelMatrix()
	assert.Equal(t, float32(1), m[12])
	assert.Equal(t, float32(2), m[13])
	assert.Equal(t, float32(3), m[14])
	assert.Equal(t, common.NewColor(0.5, 0, 0), p.Color())

	moved := common.TransformPoint(m, common.NewPoint(1, 1, 1))
	assert.True(t, common.NewPoint(2, 3, 4).ApproxEqual(moved, 1e-6))
}
