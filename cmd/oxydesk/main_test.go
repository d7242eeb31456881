package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, cfgPath string, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd(&out, &errOut)
	cmd.SetArgs(append([]string{"--config", cfgPath}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func writeConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "oxydesk.toml")
	body := "save_dir = \"" + filepath.ToSlash(filepath.Join(dir, "saves")) + "\"\ncompute_workers = 1\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestStatsCommand(t *testing.T) {
	out, err := run(t, writeConfig(t), "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "Objects: 5")
	assert.Contains(t, out, "Monitor - 4 parts")
}

func TestSaveListLoadCommands(t *testing.T) {
	cfg := writeConfig(t)

	out, err := run(t, cfg, "save", "office")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(strings.TrimSpace(out), "office.json"), out)

	out, err = run(t, cfg, "list")
	require.NoError(t, err)
	assert.Equal(t, "office\n", out)

	out, err = run(t, cfg, "load", "office")
	require.NoError(t, err)
	assert.Contains(t, out, "Objects: 5")

	_, err = run(t, cfg, "load", "nope")
	assert.Error(t, err)
}

func TestExportCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "desk.stl")
	out, err := run(t, writeConfig(t), "export", path)
	require.NoError(t, err)
	assert.Contains(t, out, "triangles written")
	assert.FileExists(t, path)
}

func TestArgsValidation(t *testing.T) {
	_, err := run(t, writeConfig(t), "save")
	assert.Error(t, err)
}
