package landmark

import (
	"encoding/json"
	"fmt"

	"muscle-overlay/pkg/geometry"
)

// Detection is the JSON document exchanged with external detectors.
//
//	{"normalized": true, "faces": [{"landmarks": [{"x": 0.41, "y": 0.37, "z": -0.02}, ...]}]}
//
// Normalized coordinates are fractions of the image size (MediaPipe output);
// otherwise they are pixels.
type Detection struct {
	Normalized bool   `json:"normalized"`
	Faces      []Face `json:"faces"`
}

// Face holds the landmarks of one detected face.
type Face struct {
	Landmarks []Point3D `json:"landmarks"`
}

// Point3D is a raw detector point. Z is carried but ignored.
type Point3D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z,omitempty"`
}

// Decode parses a detection document and converts the first face into pixel
// coordinates for a frame of the given size.
func Decode(data []byte, width, height int) (Set, error) {
	var det Detection
	if err := json.Unmarshal(data, &det); err != nil {
		return nil, fmt.Errorf("failed to parse detection: %w", err)
	}
	return det.PixelSet(width, height)
}

// PixelSet converts the first face to a Set. Only one face is supported, any
// others are ignored.
func (d Detection) PixelSet(width, height int) (Set, error) {
	if len(d.Faces) == 0 || len(d.Faces[0].Landmarks) == 0 {
		return nil, ErrNoFace
	}
	if d.Normalized && (width <= 0 || height <= 0) {
		return nil, fmt.Errorf("normalized landmarks need frame size, got %dx%d", width, height)
	}

	raw := d.Faces[0].Landmarks
	set := make(Set, len(raw))
	for i, p := range raw {
		x, y := p.X, p.Y
		if d.Normalized {
			x *= float64(width)
			y *= float64(height)
		}
		set[i] = geometry.NewPoint2D(x, y).Trunc()
	}
	return set, nil
}

// Encode produces a pixel-space detection document for a set.
func Encode(s Set) ([]byte, error) {
	det := Detection{Faces: []Face{{Landmarks: make([]Point3D, len(s))}}}
	for i, p := range s {
		det.Faces[0].Landmarks[i] = Point3D{X: float64(p.X), Y: float64(p.Y)}
	}
	return json.MarshalIndent(det, "", "  ")
}
