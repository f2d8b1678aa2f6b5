package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"muscle-overlay/internal/muscle"
	"muscle-overlay/pkg/colorutil"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultValues(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	path := filepath.Join(dir, "muscle-overlay.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{}\n"), 0644))

	require.NoError(t, Load(path))
	s, err := Current()
	require.NoError(t, err)

	assert.Equal(t, "info", s.LogLevel)
	assert.Equal(t, "sidecar", s.Landmarks.Provider)
	assert.Equal(t, ".landmarks.json", s.Landmarks.SidecarSuffix)
	assert.Equal(t, []string{"python3", "detect_landmarks.py"}, s.Landmarks.Command)
	assert.Equal(t, 60*time.Second, s.Landmarks.Timeout)
	assert.Equal(t, "muscle_points.yaml", s.Picker.Output)
	assert.Equal(t, muscle.DefaultGroups, s.Picker.Groups)
	assert.Equal(t, 900, s.Picker.WindowWidth)
	assert.Equal(t, 1200, s.Picker.WindowHeight)
	assert.Equal(t, "muscles.yaml", s.Render.Definition)
	assert.Equal(t, "output.jpg", s.Render.Output)
	assert.Equal(t, 18, s.Render.Thickness)
	assert.Equal(t, 0.45, s.Render.Alpha)
	assert.True(t, s.Render.Show)
	assert.Empty(t, s.Convert.Colors)
	assert.Equal(t, path, Used())
}

func TestLoad_WithValidConfigFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	cfg := `
logLevel: debug
landmarks:
  provider: command
  command: ["python3", "mesh.py", "--static"]
  timeout: 5s
picker:
  groups: [masseter_origin, masseter_insertion]
render:
  thickness: 20
  show: false
convert:
  colors:
    masseter: [10, 20, 30]
    Frontalis: [40, 50, 60]
`
	require.NoError(t, os.WriteFile(path, []byte(cfg), 0644))

	require.NoError(t, Load(path))
	s, err := Current()
	require.NoError(t, err)

	assert.Equal(t, "debug", s.LogLevel)
	assert.Equal(t, "command", s.Landmarks.Provider)
	assert.Equal(t, []string{"python3", "mesh.py", "--static"}, s.Landmarks.Command)
	assert.Equal(t, 5*time.Second, s.Landmarks.Timeout)
	assert.Equal(t, []string{"masseter_origin", "masseter_insertion"}, s.Picker.Groups)
	assert.Equal(t, 20, s.Render.Thickness)
	assert.False(t, s.Render.Show)
	assert.Equal(t, map[string]colorutil.RGB{
		"masseter":  {R: 10, G: 20, B: 30},
		"frontalis": {R: 40, G: 50, B: 60},
	}, s.Convert.Colors)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Cleanup(viper.Reset)
	t.Setenv("MUSCLE_PICKER_OUTPUT", "session.yaml")
	t.Setenv("MUSCLE_RENDER_ALPHA", "0.6")

	path := filepath.Join(t.TempDir(), "c.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{}\n"), 0644))
	require.NoError(t, Load(path))

	s, err := Current()
	require.NoError(t, err)
	assert.Equal(t, "session.yaml", s.Picker.Output)
	assert.Equal(t, 0.6, s.Render.Alpha)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	t.Cleanup(viper.Reset)
	err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestCurrent_InvalidColor(t *testing.T) {
	t.Cleanup(viper.Reset)

	path := filepath.Join(t.TempDir(), "c.yaml")
	require.NoError(t, os.WriteFile(path, []byte("convert:\n  colors:\n    a: [1, 2]\n"), 0644))
	require.NoError(t, Load(path))

	_, err := Current()
	assert.Error(t, err)
}
