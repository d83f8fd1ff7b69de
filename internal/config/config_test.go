package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gurvan/go-joydrive"
)

// TestLoad_EmptyPath verifies an empty path yields the stock pad.
func TestLoad_EmptyPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, joydrive.DefaultGeometry(), cfg.PadGeometry())
	assert.Equal(t, "info", cfg.LogLevel)
}

// TestDecode_Overrides verifies keys present in the file replace the defaults.
func TestDecode_Overrides(t *testing.T) {
	cfg, err := Decode(strings.NewReader(`
geometry:
  radius: 50
  length: 30
  width: 40
show_modules: true
replay:
  - {x: 300, y: 100}
  - {x: 200, y: 200}
log_level: debug
`))
	require.NoError(t, err)

	g := cfg.PadGeometry()
	assert.Equal(t, 200, g.CenterX)
	assert.Equal(t, 50.0, g.Radius)
	assert.Equal(t, 30.0, g.Length)
	assert.Equal(t, 40.0, g.Width)
	assert.True(t, cfg.ShowModules)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 400, cfg.Window.Width)
	assert.Equal(t, "Joystick Drive Visualizer", cfg.Window.Title)
	assert.Equal(t, []joydrive.Pointer{{X: 300, Y: 100}, {X: 200, Y: 200}}, cfg.ReplayPointers())
}

// TestDecode_Empty verifies an empty document is accepted.
func TestDecode_Empty(t *testing.T) {
	cfg, err := Decode(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

// TestDecode_Invalid verifies bad geometry and unknown keys are rejected.
func TestDecode_Invalid(t *testing.T) {
	for name, doc := range map[string]string{
		"zero radius":   "geometry: {radius: 0}",
		"negative len":  "geometry: {length: -1}",
		"negative wide": "geometry: {width: -1}",
		"zero window":   "window: {width: 0}",
		"unknown key":   "speed: 3",
		"not yaml":      "geometry: [",
	} {
		_, err := Decode(strings.NewReader(doc))
		assert.Error(t, err, name)
	}
}

// TestLoad_File verifies Load reads from disk and reports missing files.
func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("window: {title: test}\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "test", cfg.Window.Title)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
