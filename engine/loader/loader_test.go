package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Carmen-Shannon/oxy-desk/common"
	"github.com/Carmen-Shannon/oxy-desk/engine/builder"
	"github.com/Carmen-Shannon/oxy-desk/engine/scene"
)

func deskScene(t *testing.T) scene.Scene {
	t.Helper()
	objs, err := builder.BuildLayout(builder.DefaultDeskLayout()...)
	require.NoError(t, err)
	s := scene.NewScene("desk", scene.WithObjects(objs...), scene.WithComputeWorkers(1))
	t.Cleanup(s.Close)
	return s
}

func TestFromScene(t *testing.T) {
	s := deskScene(t)
	data := FromScene(s)

	_, err := uuid.Parse(data.ID)
	require.NoError(t, err)
	assert.NotEqual(t, data.ID, FromScene(s).ID)

	assert.Equal(t, "desk", data.Name)
	assert.Equal(t, [3]float32{3, 2, 4}, data.CameraPosition)
	assert.Equal(t, float32(45), data.CameraFOV)
	assert.Equal(t, float32(100), data.CameraFar)
	assert.Equal(t, [3]float32{1, 1, 1}, data.LightColor)
	assert.Equal(t, float32(64), data.LightShininess)
	require.Len(t, data.Objects, 5)

	monitor := data.Objects[0]
	assert.Equal(t, "Monitor", monitor.Name)
	assert.Equal(t, [3]float32{0, -0.3, -0.3}, monitor.Position)
	assert.Equal(t, [3]float32{1, 1, 1}, monitor.Scale)
	require.Len(t, monitor.Parts, 4)
	assert.Equal(t, PartData{
		Name:     "Screen",
		Position: [3]float32{0, 0, 0},
		Size:     [3]float32{2.4, 1.5, 0.06},
		Color:    [3]float32{0.02, 0.02, 0.05},
	}, monitor.Parts[0])
}

func TestValidate(t *testing.T) {
	assert.NoError(t, SceneData{}.Validate())

	err := SceneData{Objects: []ObjectData{{}}}.Validate()
	assert.ErrorIs(t, err, ErrMalformedScene)

	err = SceneData{Objects: []ObjectData{{Name: "o", Parts: []PartData{{Name: "p"}, {}}}}}.Validate()
	assert.ErrorIs(t, err, ErrMalformedScene)
	assert.Contains(t, err.Error(), "part 1")
}

func TestToSceneRoundTrip(t *testing.T) {
	src := deskScene(t)
	data := FromScene(src)

	got, err := ToScene(data, scene.WithComputeWorkers(1))
	require.NoError(t, err)
	t.Cleanup(got.Close)

	assert.Equal(t, src.Name(), got.Name())
	assert.Equal(t, src.View(), got.View())
	assert.Equal(t, src.Stats().Vertices, got.Stats().Vertices)
	assert.True(t, src.Centroid().ApproxEqual(got.Centroid(), 1e-5))

	for i, obj := range got.Objects() {
		want := src.Objects()[i]
		assert.Equal(t, want.Name(), obj.Name())
		assert.Equal(t, want.VertexBuffer(), obj.VertexBuffer())
		assert.Equal(t, want.IndexBuffer(), obj.IndexBuffer())
	}
}

func TestToSceneDefaults(t *testing.T) {
	data := SceneData{
		Name: "bare",
		Objects: []ObjectData{{
			Name:      "crate",
			BaseColor: common.White,
			Parts:     []PartData{{Name: "box", Position: [3]float32{0, 1, 0}, Color: common.White}},
		}},
	}
	s, err := ToScene(data)
	require.NoError(t, err)
	t.Cleanup(s.Close)

	obj, ok := s.FindObject("crate")
	require.True(t, ok)
	assert.Equal(t, [3]float32{1, 1, 1}, obj.Transform().Scale)

	box, ok := obj.FindPart("box")
	require.True(t, ok)
	assert.Equal(t, common.PointFromVec(DefaultPartSize), box.Size())
	assert.True(t, common.NewPoint(0, 1, 0).ApproxEqual(box.Centroid(), 1e-5))

	view := s.View()
	assert.Equal(t, common.Origin, view.CameraPosition, "positions are kept as saved")
	assert.Equal(t, float32(45), view.CameraFOV)
	assert.Equal(t, float32(0.4), view.LightAmbient)

	_, err = ToScene(SceneData{Objects: []ObjectData{{Name: ""}}})
	assert.ErrorIs(t, err, ErrMalformedScene)
}

func TestLoaderSaveLoadList(t *testing.T) {
	for _, format := range []LoaderBackendType{BackendTypeJSON, BackendTypeTOML} {
		t.Run(format.String(), func(t *testing.T) {
			dir := filepath.Join(t.TempDir(), "saves")
			l := NewLoader(format, WithDir(dir))
			assert.Equal(t, dir, l.Dir())
			assert.Equal(t, format, l.Format())

			names, err := l.List()
			require.NoError(t, err)
			assert.Empty(t, names)

			data := FromScene(deskScene(t))
			path, err := l.Save("office", data)
			require.NoError(t, err)
			assert.FileExists(t, path)
			assert.Equal(t, "."+format.String(), filepath.Ext(path))

			_, err = l.Save("attic", SceneData{Name: "attic"})
			require.NoError(t, err)
			require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))

			names, err = l.List()
			require.NoError(t, err)
			assert.Equal(t, []string{"attic", "office"}, names)

			// a fresh loader has an empty cache and must decode from disk
			fresh := NewLoader(format, WithDir(dir))
			got, err := fresh.Load("office" + "." + format.String())
			require.NoError(t, err)
			assert.Equal(t, data, got)
		})
	}
}

func TestLoaderErrors(t *testing.T) {
	dir := t.TempDir()
	l := NewLoader(BackendTypeJSON, WithDir(dir))

	_, err := l.Load("missing")
	assert.ErrorIs(t, err, ErrSceneNotFound)

	for _, name := range []string{"", "  ", "../escape", `a\b`, ".json"} {
		_, err = l.Save(name, SceneData{})
		assert.ErrorIs(t, err, ErrInvalidName, "name %q", name)
	}

	_, err = l.Save("bad", SceneData{Objects: []ObjectData{{}}})
	assert.ErrorIs(t, err, ErrMalformedScene)
	assert.NoFileExists(t, filepath.Join(dir, "bad.json"))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "corrupt.json"), []byte("{not json"), 0o644))
	_, err = l.Load("corrupt")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrSceneNotFound)
}

func TestLoaderSnapshotCache(t *testing.T) {
	data := SceneData{Name: "cached"}
	l := NewLoader(BackendTypeTOML, WithDir(t.TempDir()), WithSnapshot("cached", data))

	got, err := l.Load("cached")
	require.NoError(t, err)
	assert.Equal(t, data, got)
}

func TestLoaderCacheIsIsolatedFromCallers(t *testing.T) {
	dir := t.TempDir()
	l := NewLoader(BackendTypeJSON, WithDir(dir))
	data := FromScene(deskScene(t))

	_, err := l.Save("desk", data)
	require.NoError(t, err)
	data.Objects[0].Name = ""
	data.Objects[0].Parts[0].Name = "edited"

	got, err := l.Load("desk")
	require.NoError(t, err)
	require.NoError(t, got.Validate())
	assert.Equal(t, "Monitor", got.Objects[0].Name)
	assert.Equal(t, "Screen", got.Objects[0].Parts[0].Name)

	got.Objects[0].Parts[0].Name = "mutated"
	got.Objects = got.Objects[:1]

	again, err := l.Load("desk")
	require.NoError(t, err)
	assert.Equal(t, "Screen", again.Objects[0].Parts[0].Name)
	require.Len(t, again.Objects, 5)

	fromFile, err := NewLoader(BackendTypeJSON, WithDir(dir)).Load("desk")
	require.NoError(t, err)
	assert.Equal(t, fromFile, again)
}

func TestLoaderSnapshotOptionCopiesData(t *testing.T) {
	data := SceneData{Name: "cached", Objects: []ObjectData{{Name: "Box", Parts: []PartData{{Name: "Lid"}}}}}
	l := NewLoader(BackendTypeTOML, WithDir(t.TempDir()), WithSnapshot("cached", data))
	data.Objects[0].Parts[0].Name = ""

	got, err := l.Load("cached")
	require.NoError(t, err)
	assert.Equal(t, "Lid", got.Objects[0].Parts[0].Name)
}

func TestParseBackendType(t *testing.T) {
	got, err := ParseBackendType("TOML")
	require.NoError(t, err)
	assert.Equal(t, BackendTypeTOML, got)

	_, err = ParseBackendType("yaml")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}
