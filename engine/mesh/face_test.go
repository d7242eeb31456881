package mesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Carmen-Shannon/oxy-desk/common"
)

func TestFaceCentroidIsMeanOfVertices(t *testing.T) {
	f := NewFace()
	assert.Equal(t, common.Origin, f.Centroid())

	pts := []common.Point{
		{X: 1, Y: 2, Z: 3},
		{X: -1, Y: 0, Z: 5},
		{X: 3, Y: 4, Z: -2},
		{X: 1, Y: -2, Z: 2},
	}
	var sum common.Point
	for i, p := range pts {
		f.AddVertex(p)
		sum = sum.Add(p)
		want := sum.Scale(1 / float32(i+1))
		assert.True(t, want.ApproxEqual(f.Centroid(), 1e-6), "after %d vertices: want %v got %v", i+1, want, f.Centroid())
	}
}

func TestFaceAddIndexBounds(t *testing.T) {
	f := NewFace(WithVertices(common.Point{}, common.Point{X: 1}, common.Point{Y: 1}))

	require.NoError(t, f.AddIndex(0))
	require.NoError(t, f.AddIndex(2))

	err := f.AddIndex(3)
	require.ErrorIs(t, err, ErrIndexOutOfRange)
	assert.Equal(t, []uint32{0, 2}, f.Indices())

	f.AddVertex(common.Point{Z: 1})
	require.NoError(t, f.AddIndex(3))
	assert.Equal(t, []uint32{0, 2, 3}, f.Indices())
}

func TestFaceAddIndicesRejectsWholeBatch(t *testing.T) {
	f := NewFace(WithVertices(common.Point{}, common.Point{X: 1}))

	err := f.AddIndices(0, 1, 2)
	require.ErrorIs(t, err, ErrIndexOutOfRange)
	assert.Empty(t, f.Indices())

	require.NoError(t, f.AddIndices(1, 0, 1))
	assert.Equal(t, []uint32{1, 0, 1}, f.Indices())
}

func TestNewQuad(t *testing.T) {
	p0 := common.NewPoint(0, 0, 0)
	p1 := common.NewPoint(1, 0, 0)
	p2 := common.NewPoint(1, 1, 0)
	p3 := common.NewPoint(0, 1, 0)

	cases := []struct {
		name       string
		a, b, c, d *common.Point
	}{
		{"first nil", nil, &p1, &p2, &p3},
		{"second nil", &p0, nil, &p2, &p3},
		{"third nil", &p0, &p1, nil, &p3},
		{"fourth nil", &p0, &p1, &p2, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f, err := NewQuad(tc.a, tc.b, tc.c, tc.d)
			require.ErrorIs(t, err, ErrNilPoint)
			assert.Nil(t, f)
		})
	}

	f, err := NewQuad(&p0, &p1, &p2, &p3)
	require.NoError(t, err)
	assert.Equal(t, []common.Point{p0, p1, p2, p3}, f.Vertices())
	assert.Equal(t, []uint32{0, 1, 2, 2, 3, 0}, f.Indices())
	assert.Equal(t, common.NewPoint(0.5, 0.5, 0), f.Centroid())
	assert.Equal(t, common.NewPoint(0, 0, 1), f.Normal())
}

func TestFaceNormalFallbacks(t *testing.T) {
	f := NewFace()
	assert.Equal(t, common.UnitY, f.Normal())

	f.AddVertex(common.NewPoint(0, 0, 0))
	f.AddVertex(common.NewPoint(1, 0, 0))
	assert.Equal(t, common.UnitY, f.Normal())

	// collinear
	f.AddVertex(common.NewPoint(2, 0, 0))
	n := f.Normal()
	assert.Equal(t, common.UnitY, n)
	assert.False(t, n.X != n.X || n.Y != n.Y || n.Z != n.Z, "normal must not be NaN")

	coincident := NewFace(WithVertices(common.Point{X: 1}, common.Point{X: 1}, common.Point{X: 1}))
	assert.Equal(t, common.UnitY, coincident.Normal())
}

func TestFaceNormalFollowsGeometry(t *testing.T) {
	f := NewFace(WithVertices(
		common.NewPoint(0, 0, 0),
		common.NewPoint(0, 0, 2),
		common.NewPoint(2, 0, 0),
	))
	assert.True(t, common.UnitY.ApproxEqual(f.Normal(), 1e-6))

	f.Clear()
	assert.Equal(t, 0, f.VertexCount())
	assert.Empty(t, f.Indices())
	assert.Equal(t, common.Origin, f.Centroid())

	f.AddVertex(common.NewPoint(0, 0, 0))
	f.AddVertex(common.NewPoint(2, 0, 0))
	f.AddVertex(common.NewPoint(0, 0, 2))
	assert.True(t, common.NewPoint(0, -1, 0).ApproxEqual(f.Normal(), 1e-6))
}

func TestFaceVerticesReturnsCopy(t *testing.T) {
	f := NewFace(WithVertices(common.NewPoint(1, 1, 1)))
	vs := f.Vertices()
	vs[0] = common.Origin
	assert.Equal(t, common.NewPoint(1, 1, 1), f.Vertices()[0])
}

func TestFaceCapacityKeepsSeededVertices(t *testing.T) {
	seed := []common.Point{{}, {X: 2}, {X: 2, Y: 2}, {Y: 2}}

	for name, f := range map[string]Face{
		"capacity after vertices":  NewFace(WithVertices(seed...), WithCapacity(8)),
		"capacity before vertices": NewFace(WithCapacity(8), WithVertices(seed...)),
		"capacity below count":     NewFace(WithVertices(seed...), WithCapacity(2)),
	} {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, seed, f.Vertices())
			assert.True(t, common.NewPoint(1, 1, 0).ApproxEqual(f.Centroid(), 1e-6))
			require.NoError(t, f.AddIndices(0, 1, 2, 2, 3, 0))
		})
	}
}
