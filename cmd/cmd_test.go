package cmd

import (
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"muscle-overlay/internal/config"
	imgio "muscle-overlay/internal/image"
	"muscle-overlay/internal/landmark"
	"muscle-overlay/internal/muscle"
	"muscle-overlay/internal/picker"
	"muscle-overlay/pkg/geometry"

	"github.com/rs/zerolog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverlayName(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"face.jpg", "face_overlay.jpg"},
		{"photos/session 1/face.PNG", "face_overlay.PNG"},
		{"archive.tar.gz", "archive.tar_overlay.gz"},
		{"noext", "noext_overlay"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, OverlayName(tt.path))
		})
	}
}

func TestNewProvider(t *testing.T) {
	t.Run("sidecar by default", func(t *testing.T) {
		p, err := newProvider(config.LandmarkSettings{SidecarSuffix: ".json"})
		require.NoError(t, err)
		sidecar, ok := p.(*landmark.SidecarProvider)
		require.True(t, ok)
		assert.Equal(t, "face.jpg.json", sidecar.Path("face.jpg"))
	})

	t.Run("command", func(t *testing.T) {
		p, err := newProvider(config.LandmarkSettings{
			Provider: "command",
			Command:  []string{"detect", "--json"},
			Timeout:  time.Second,
		})
		require.NoError(t, err)
		command, ok := p.(*landmark.CommandProvider)
		require.True(t, ok)
		assert.Equal(t, []string{"detect", "--json"}, command.Args)
	})

	t.Run("empty command", func(t *testing.T) {
		_, err := newProvider(config.LandmarkSettings{Provider: "command"})
		assert.Error(t, err)
	})

	t.Run("unknown provider", func(t *testing.T) {
		_, err := newProvider(config.LandmarkSettings{Provider: "mediapipe"})
		assert.ErrorContains(t, err, "unknown landmark provider")
	})
}

func TestOpenStore_UntouchedSessionKeepsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "muscle_points.yaml")
	previous := []byte("frontalis_origin: [10, 109]\nfrontalis_insertion: [105]\n")
	require.NoError(t, os.WriteFile(path, previous, 0644))

	store, err := openStore(path, muscle.DefaultGroups, false)
	require.NoError(t, err)
	assert.Equal(t, 0, store.Mapping().Len())

	s := picker.NewSession(landmark.Set{geometry.Pt(5, 5)}, store, picker.NewKeymap(muscle.DefaultGroups))
	c := picker.NewController(nil, zerolog.Nop())
	require.NoError(t, c.Handle(s, picker.Key('1')))
	require.NoError(t, c.Handle(s, picker.Key('q')))
	require.True(t, s.Done())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, previous, data)
}

func TestOpenStore_Resume(t *testing.T) {
	path := filepath.Join(t.TempDir(), "muscle_points.yaml")
	require.NoError(t, os.WriteFile(path, []byte("masseter_origin: [3, 4]\n"), 0644))

	store, err := openStore(path, []string{"masseter_origin"}, true)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 4}, store.Mapping().Indices("masseter_origin"))
}

func TestRenderSingle_ImageFailsFirst(t *testing.T) {
	dir := t.TempDir()
	rs := config.RenderSettings{Definition: filepath.Join(dir, "missing.yaml")}

	err := renderSingle(context.Background(), rs, config.LandmarkSettings{Provider: "bogus"}, filepath.Join(dir, "missing.jpg"))
	assert.True(t, errors.Is(err, imgio.ErrLoad), "got %v", err)

	imgPath := filepath.Join(dir, "face.png")
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	img.Set(1, 1, color.RGBA{R: 255, A: 255})
	f, err := os.Create(imgPath)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())

	err = renderSingle(context.Background(), rs, config.LandmarkSettings{}, imgPath)
	require.Error(t, err)
	assert.False(t, errors.Is(err, imgio.ErrLoad))
}
