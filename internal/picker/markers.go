package picker

import (
	"image"
	"image/color"
	"image/draw"

	"muscle-overlay/internal/landmark"
	"muscle-overlay/pkg/colorutil"
)

// MarkerStyle configures how landmarks and picked points are drawn.
type MarkerStyle struct {
	DotRadius      int
	DotColor       color.RGBA
	RingRadius     int
	RingWidth      int
	RingColor      color.RGBA
	CurrentColor   color.RGBA // rings of the selected group
	HighlightColor color.RGBA
}

// DefaultMarkerStyle returns green landmark dots and red rings around
// picked points.
func DefaultMarkerStyle() MarkerStyle {
	return MarkerStyle{
		DotRadius:      2,
		DotColor:       colorutil.Green,
		RingRadius:     6,
		RingWidth:      2,
		RingColor:      colorutil.Red,
		CurrentColor:   colorutil.Yellow,
		HighlightColor: colorutil.Red,
	}
}

// Markers selects what RenderMarkers draws beyond the landmark dots.
type Markers struct {
	Picked    []int
	Current   []int
	Highlight int // landmark.NoIndex for none
}

// SessionMarkers collects the picked indices of s.
func SessionMarkers(s *Session) Markers {
	m := s.Store.Mapping()
	var mk Markers
	for _, g := range m.Groups() {
		mk.Picked = append(mk.Picked, m.Indices(g)...)
	}
	if s.current != "" {
		mk.Current = m.Indices(s.current)
	}
	mk.Highlight = landmark.NoIndex
	return mk
}

// RenderMarkers draws the markers over a copy of base. Indices outside the
// landmark set are ignored.
func RenderMarkers(base image.Image, lm landmark.Set, mk Markers, style MarkerStyle) *image.RGBA {
	b := base.Bounds()
	img := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(img, img.Bounds(), base, b.Min, draw.Src)

	ring := func(idx int, c color.RGBA) {
		p, ok := lm.At(idx)
		if !ok {
			return
		}
		for w := 0; w < style.RingWidth; w++ {
			drawCircle(img, p.X, p.Y, style.RingRadius-w, c)
		}
	}

	for _, idx := range mk.Picked {
		ring(idx, style.RingColor)
	}
	for _, idx := range mk.Current {
		ring(idx, style.CurrentColor)
	}
	if mk.Highlight != landmark.NoIndex {
		ring(mk.Highlight, style.HighlightColor)
	}

	for _, p := range lm {
		fillCircle(img, p.X, p.Y, style.DotRadius, style.DotColor)
	}

	return img
}

// fillCircle fills a circle with the given color.
func fillCircle(img *image.RGBA, cx, cy, r int, c color.RGBA) {
	bounds := img.Bounds()

	for y := cy - r; y <= cy+r; y++ {
		if y < bounds.Min.Y || y >= bounds.Max.Y {
			continue
		}
		for x := cx - r; x <= cx+r; x++ {
			if x < bounds.Min.X || x >= bounds.Max.X {
				continue
			}
			dx, dy := x-cx, y-cy
			if dx*dx+dy*dy <= r*r {
				img.SetRGBA(x, y, c)
			}
		}
	}
}

// drawCircle draws a circle outline using the midpoint algorithm.
func drawCircle(img *image.RGBA, cx, cy, r int, c color.RGBA) {
	if r <= 0 {
		return
	}
	bounds := img.Bounds()

	setPixel := func(x, y int) {
		if x >= bounds.Min.X && x < bounds.Max.X && y >= bounds.Min.Y && y < bounds.Max.Y {
			img.SetRGBA(x, y, c)
		}
	}

	x := r
	y := 0
	err := 0

	for x >= y {
		setPixel(cx+x, cy+y)
		setPixel(cx+y, cy+x)
		setPixel(cx-y, cy+x)
		setPixel(cx-x, cy+y)
		setPixel(cx-x, cy-y)
		setPixel(cx-y, cy-x)
		setPixel(cx+y, cy-x)
		setPixel(cx+x, cy-y)

		y++
		if err <= 0 {
			err += 2*y + 1
		}
		if err > 0 {
			x--
			err -= 2*x + 1
		}
	}
}
