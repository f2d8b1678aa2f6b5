// Package landmark defines the facial landmark boundary: the ordered point set
// produced by an external detector and nearest-landmark lookup over it.
package landmark

import (
	"context"
	"errors"

	"muscle-overlay/pkg/geometry"
)

// FaceMeshSize is the number of points in the MediaPipe face mesh topology.
const FaceMeshSize = 468

// NoIndex is returned by Nearest when the set is empty.
const NoIndex = -1

// ErrNoFace is returned by providers when no face was detected.
var ErrNoFace = errors.New("no face detected")

// Set is an ordered sequence of landmark pixel coordinates. The index of a
// point is its identity and is stable for a given detector topology.
type Set []geometry.PointInt

// Len returns the number of landmarks.
func (s Set) Len() int {
	return len(s)
}

// At returns the landmark at index i and whether i is in range.
func (s Set) At(i int) (geometry.PointInt, bool) {
	if i < 0 || i >= len(s) {
		return geometry.PointInt{}, false
	}
	return s[i], true
}

// Nearest returns the index of the landmark closest to p by squared
// Euclidean distance. On ties the lowest index wins. Returns NoIndex for an
// empty set.
func (s Set) Nearest(p geometry.PointInt) int {
	best := NoIndex
	bestDist := 0
	for i, lm := range s {
		d := lm.DistanceSq(p)
		if best == NoIndex || d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best
}

// Frame describes the image a provider should detect landmarks on.
type Frame struct {
	Path   string
	Width  int
	Height int
}

// Provider detects the landmarks of the first face in a frame.
type Provider interface {
	Landmarks(ctx context.Context, frame Frame) (Set, error)
}
