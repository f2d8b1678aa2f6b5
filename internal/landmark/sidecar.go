package landmark

import (
	"context"
	"fmt"
	"os"
)

// DefaultSidecarSuffix is appended to the image path to find precomputed landmarks.
const DefaultSidecarSuffix = ".landmarks.json"

// SidecarProvider reads landmarks that an external detector wrote next to
// the image, e.g. face.jpg.landmarks.json.
type SidecarProvider struct {
	Suffix string
}

// NewSidecarProvider creates a SidecarProvider. An empty suffix selects
// DefaultSidecarSuffix.
func NewSidecarProvider(suffix string) *SidecarProvider {
	if suffix == "" {
		suffix = DefaultSidecarSuffix
	}
	return &SidecarProvider{Suffix: suffix}
}

// Path returns the sidecar file path for an image.
func (p *SidecarProvider) Path(imagePath string) string {
	return imagePath + p.Suffix
}

// Landmarks implements Provider.
func (p *SidecarProvider) Landmarks(ctx context.Context, frame Frame) (Set, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(p.Path(frame.Path))
	if err != nil {
		return nil, fmt.Errorf("failed to read landmarks: %w", err)
	}
	return Decode(data, frame.Width, frame.Height)
}
