// Package geometry provides basic geometric types used throughout the application.
package geometry

import (
	"image"

	"gonum.org/v1/gonum/stat"
)

// Point2D represents a 2D point with floating-point coordinates.
type Point2D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// NewPoint2D creates a new Point2D.
func NewPoint2D(x, y float64) Point2D {
	return Point2D{X: x, Y: y}
}

// Trunc converts to integer pixel coordinates, truncating toward zero.
func (p Point2D) Trunc() PointInt {
	return PointInt{X: int(p.X), Y: int(p.Y)}
}

// PointInt represents a 2D point with integer coordinates.
type PointInt struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Pt is shorthand for PointInt{X: x, Y: y}.
func Pt(x, y int) PointInt {
	return PointInt{X: x, Y: y}
}

// ToFloat converts to Point2D.
func (p PointInt) ToFloat() Point2D {
	return Point2D{X: float64(p.X), Y: float64(p.Y)}
}

// Image converts to an image.Point for drawing APIs.
func (p PointInt) Image() image.Point {
	return image.Point{X: p.X, Y: p.Y}
}

// DistanceSq returns the squared Euclidean distance to another point.
func (p PointInt) DistanceSq(other PointInt) int {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return dx*dx + dy*dy
}

// Centroid computes the centroid (average position) of a set of points.
func Centroid(points []Point2D) Point2D {
	if len(points) == 0 {
		return Point2D{}
	}
	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	for i, p := range points {
		xs[i] = p.X
		ys[i] = p.Y
	}
	return Point2D{X: stat.Mean(xs, nil), Y: stat.Mean(ys, nil)}
}

// CentroidInt computes the mean of integer points and truncates the result
// toward zero. It reports false for an empty slice.
func CentroidInt(points []PointInt) (PointInt, bool) {
	if len(points) == 0 {
		return PointInt{}, false
	}
	fp := make([]Point2D, len(points))
	for i, p := range points {
		fp[i] = p.ToFloat()
	}
	return Centroid(fp).Trunc(), true
}
