package builder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Carmen-Shannon/oxy-desk/common"
	"github.com/Carmen-Shannon/oxy-desk/engine/mesh"
)

func TestBuilderBuild(t *testing.T) {
	base := common.NewColor(0.2, 0.2, 0.2)
	b := NewBuilder("Lamp", common.NewPoint(1, 2, 3), base).
		AddPart("Foot", common.Origin, common.NewPoint(0.4, 0.05, 0.4), common.White).
		AddPart("Arm", common.NewPoint(0, 0.5, 0), common.NewPoint(0.05, 1, 0.05), common.NewColor(0.9, 0.9, 0.1)).
		WithScale([3]float32{2, 2, 2})

	require.Len(t, b.Definitions(), 2)
	assert.Equal(t, "Lamp", b.Name())

	obj, err := b.Build()
	require.NoError(t, err)

	assert.Equal(t, "Lamp", obj.Name())
	assert.Equal(t, [3]float32{1, 2, 3}, obj.Position())
	assert.Equal(t, [3]float32{2, 2, 2}, obj.Transform().Scale)
	assert.Equal(t, base, obj.BaseColor())

	parts := obj.Parts()
	require.Len(t, parts, 2)
	assert.Equal(t, "Foot", parts[0].Name())
	assert.Equal(t, "Arm", parts[1].Name())
	for _, p := range parts {
		assert.Equal(t, 6, p.FaceCount())
		assert.Equal(t, 24, p.VertexCount())
	}

	assert.Equal(t, base, obj.PartColor("Foot"))
	assert.Equal(t, common.NewColor(0.9, 0.9, 0.1), obj.PartColor("Arm"))
	assert.True(t, common.NewPoint(0, 0.25, 0).ApproxEqual(obj.Centroid(), 1e-5), "got %v", obj.Centroid())
}

func TestBuilderDefinitionsAreCopied(t *testing.T) {
	b := NewBuilder("x", common.Origin, common.White).
		AddParts(PartDefinition{Name: "a", Size: common.NewPoint(1, 1, 1)})
	defs := b.Definitions()
	defs[0].Name = "changed"
	assert.Equal(t, "a", b.Definitions()[0].Name)
}

func TestBuilderForwardsCuboidOptions(t *testing.T) {
	obj, err := NewBuilder("cw", common.Origin, common.White).
		AddPart("box", common.Origin, common.NewPoint(2, 2, 2), common.White).
		WithCuboidOptions(mesh.WithAllWindings(mesh.WindingClockwise)).
		Build()
	require.NoError(t, err)

	faces := obj.Parts()[0].Faces()
	// clockwise loops flip every normal inward
	front := faces[mesh.SideFront].Normal()
	assert.True(t, common.NewPoint(0, 0, -1).ApproxEqual(front, 1e-5), "got %v", front)
}

func TestBuilderEmpty(t *testing.T) {
	obj, err := NewBuilder("empty", common.Origin, common.White).Build()
	require.NoError(t, err)
	assert.Empty(t, obj.Parts())
	assert.Equal(t, common.Origin, obj.Centroid())
}
