package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Carmen-Shannon/oxy-desk/common"
	"github.com/Carmen-Shannon/oxy-desk/engine/builder"
)

func TestDefault(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())

	assert.Equal(t, "DeskScene", c.Scene)
	assert.Equal(t, "SavedScenes", c.SaveDir)
	assert.Equal(t, "json", c.Format)
	assert.Equal(t, [3]float32{3, 2, 4}, c.Camera.Position)
	assert.Equal(t, float32(45), c.Camera.FOV)
	assert.Equal(t, float32(64), c.Light.Shininess)

	require.Len(t, c.Objects, 5)
	assert.Equal(t, "Monitor", c.Objects[0].Preset)
	assert.Equal(t, [3]float32{0, -0.3, -0.3}, c.Objects[0].Position)
	assert.Equal(t, "Desk", c.Objects[4].Preset)

	lvl, err := c.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, lvl)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
}

func TestLoadFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "oxydesk.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
scene = "Office"
format = "toml"
compute_workers = 3

[camera]
fov = 60

[[objects]]
preset = "keyboard"
position = [0, -1, 1]

[[objects]]
preset = "Mouse"
position = [1, -1, 1]
base_color = [1, 0, 0]
hidden = true
`), 0o644))

	t.Setenv("OXYDESK_SAVE_DIR", "/tmp/desks")
	t.Setenv("OXYDESK_LOG_LEVEL", "debug")
	t.Setenv("OXYDESK_COMPUTE_WORKERS", "5")

	c, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Office", c.Scene)
	assert.Equal(t, "toml", c.Format)
	assert.Equal(t, "/tmp/desks", c.SaveDir)
	assert.Equal(t, "debug", c.LogLevel)
	assert.Equal(t, 5, c.ComputeWorkers)
	assert.Equal(t, float32(60), c.Camera.FOV)
	assert.Equal(t, float32(0.1), c.Camera.Near, "unset fields keep their defaults")

	require.Len(t, c.Objects, 2)
	assert.Equal(t, [3]float32{1, 1, 1}, c.Objects[0].Scale)

	pls, err := c.Placements()
	require.NoError(t, err)
	require.Len(t, pls, 2)
	assert.Equal(t, builder.PresetKeyboard, pls[0].Kind)
	assert.Nil(t, pls[0].BaseColor)
	assert.True(t, pls[1].Hidden)
	require.NotNil(t, pls[1].BaseColor)
	assert.Equal(t, common.NewColor(1, 0, 0), *pls[1].BaseColor)
}

func TestLoadRejectsInvalid(t *testing.T) {
	dir := t.TempDir()
	cases := map[string]string{
		"format":  `format = "yaml"`,
		"level":   `log_level = "loud"`,
		"workers": `compute_workers = -1`,
		"planes":  "[camera]\nnear = 5\nfar = 1",
		"preset":  "[[objects]]\npreset = \"printer\"",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name+".toml")
			require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
			_, err := Load(path)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}

	path := filepath.Join(dir, "broken.toml")
	require.NoError(t, os.WriteFile(path, []byte("scene = "), 0o644))
	_, err := Load(path)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidConfig)
}

func TestSaveRoundTrip(t *testing.T) {
	c := Default()
	c.Scene = "Saved"
	red := [3]float32{1, 0, 0}
	c.Objects[1].BaseColor = &red

	path := filepath.Join(t.TempDir(), "nested", "oxydesk.toml")
	require.NoError(t, c.Save(path))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, c, got)
}
