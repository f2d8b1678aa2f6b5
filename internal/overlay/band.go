// Package overlay computes muscle bands from landmarks and composites them
// over a photo.
package overlay

import (
	"errors"
	"fmt"
	"image/color"

	"muscle-overlay/internal/landmark"
	"muscle-overlay/internal/muscle"
	"muscle-overlay/pkg/geometry"
)

var (
	// ErrEmptyIndexSet is returned when a muscle role has no landmark indices.
	ErrEmptyIndexSet = errors.New("empty landmark index set")

	// ErrIndexOutOfRange is returned when an index does not exist in the
	// landmark set, usually a definition captured against another topology.
	ErrIndexOutOfRange = errors.New("landmark index out of range")
)

// Band is the drawable segment between a muscle's origin and insertion
// centroids.
type Band struct {
	Name      string
	From      geometry.PointInt
	To        geometry.PointInt
	Color     color.RGBA
	Thickness int
}

// CapRadius returns the radius of the rounded end caps.
func (b Band) CapRadius() int {
	return b.Thickness / 2
}

// Centroid returns the mean of the referenced landmarks truncated to integer
// pixels.
func Centroid(lm landmark.Set, indices []int) (geometry.PointInt, error) {
	if len(indices) == 0 {
		return geometry.PointInt{}, ErrEmptyIndexSet
	}

	points := make([]geometry.PointInt, len(indices))
	for i, idx := range indices {
		p, ok := lm.At(idx)
		if !ok {
			return geometry.PointInt{}, fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, idx, lm.Len())
		}
		points[i] = p
	}

	c, _ := geometry.CentroidInt(points)
	return c, nil
}

// ComputeBand returns the band for m.
func ComputeBand(lm landmark.Set, m muscle.Muscle, thickness int) (Band, error) {
	from, err := Centroid(lm, m.Origin)
	if err != nil {
		return Band{}, fmt.Errorf("muscle %q origin: %w", m.Name, err)
	}
	to, err := Centroid(lm, m.Insertion)
	if err != nil {
		return Band{}, fmt.Errorf("muscle %q insertion: %w", m.Name, err)
	}

	return Band{
		Name:      m.Name,
		From:      from,
		To:        to,
		Color:     m.Color.RGBA(),
		Thickness: thickness,
	}, nil
}
