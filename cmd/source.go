package cmd

import (
	"context"
	"errors"
	"fmt"
	"image"

	"muscle-overlay/internal/config"
	imgio "muscle-overlay/internal/image"
	"muscle-overlay/internal/landmark"
)

// newProvider builds the landmark provider selected in the settings.
func newProvider(s config.LandmarkSettings) (landmark.Provider, error) {
	switch s.Provider {
	case "", "sidecar":
		return landmark.NewSidecarProvider(s.SidecarSuffix), nil
	case "command":
		p, err := landmark.NewCommandProvider(s.Command, s.Timeout)
		if err != nil {
			return nil, err
		}
		return p, nil
	default:
		return nil, fmt.Errorf("unknown landmark provider %q (want sidecar or command)", s.Provider)
	}
}

// resolveLandmarks asks provider for the landmarks of the image at path with
// the given bounds.
func resolveLandmarks(ctx context.Context, provider landmark.Provider, path string, bounds image.Rectangle) (landmark.Set, error) {
	frame := landmark.Frame{Path: path, Width: bounds.Dx(), Height: bounds.Dy()}
	lm, err := provider.Landmarks(ctx, frame)
	if err != nil {
		if errors.Is(err, landmark.ErrNoFace) {
			log.Error().Str("image", path).Msg("No face detected")
		}
		return nil, err
	}
	log.Debug().Str("image", path).Int("landmarks", lm.Len()).Msg("Resolved landmarks")
	return lm, nil
}

// loadFace decodes the image at path and resolves its landmarks.
func loadFace(ctx context.Context, path string) (image.Image, landmark.Set, error) {
	provider, err := newProvider(settings.Landmarks)
	if err != nil {
		return nil, nil, err
	}

	img, err := imgio.Load(path)
	if err != nil {
		return nil, nil, err
	}

	lm, err := resolveLandmarks(ctx, provider, path, img.Bounds())
	if err != nil {
		return nil, nil, err
	}
	return img, lm, nil
}
