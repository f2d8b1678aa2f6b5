// Package canvas provides a zoomable image canvas that reports clicks in
// image coordinates.
package canvas

import (
	"image"
	"image/draw"

	"fyne.io/fyne/v2"
	fynecanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
	xdraw "golang.org/x/image/draw"
)

const (
	minZoom = 0.05
	maxZoom = 10.0
)

// ImageCanvas displays an image scaled by a zoom factor.
type ImageCanvas struct {
	widget.BaseWidget

	img     image.Image
	raster  *fynecanvas.Raster
	content *tappableContent
	zoom    float64
	imgSize fyne.Size

	// Last scaled output, reused while neither size nor image change
	lastOutput *image.RGBA

	onLeftClick func(x, y float64) // Left click at image coordinates
}

// tappableContent wraps the raster to receive mouse events.
type tappableContent struct {
	widget.BaseWidget
	canvas *ImageCanvas
	raster *fynecanvas.Raster
}

func newTappableContent(ic *ImageCanvas, raster *fynecanvas.Raster) *tappableContent {
	tc := &tappableContent{
		canvas: ic,
		raster: raster,
	}
	tc.ExtendBaseWidget(tc)
	return tc
}

func (tc *tappableContent) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(tc.raster)
}

func (tc *tappableContent) MinSize() fyne.Size {
	return tc.raster.MinSize()
}

// Tapped handles left-click events.
func (tc *tappableContent) Tapped(ev *fyne.PointEvent) {
	if tc.canvas.onLeftClick == nil || tc.canvas.img == nil {
		return
	}

	// Reject clicks outside the drawn image
	size := tc.canvas.imgSize
	if ev.Position.X < 0 || ev.Position.Y < 0 ||
		ev.Position.X >= size.Width || ev.Position.Y >= size.Height {
		return
	}

	// Convert from canvas (zoomed) to image coordinates
	imgX := float64(ev.Position.X) / tc.canvas.zoom
	imgY := float64(ev.Position.Y) / tc.canvas.zoom

	tc.canvas.onLeftClick(imgX, imgY)
}

// NewImageCanvas creates a new image canvas.
func NewImageCanvas() *ImageCanvas {
	ic := &ImageCanvas{
		zoom:    1.0,
		imgSize: fyne.NewSize(400, 300),
	}

	ic.raster = fynecanvas.NewRaster(ic.draw)
	ic.raster.ScaleMode = fynecanvas.ImageScalePixels
	ic.raster.SetMinSize(ic.imgSize)

	ic.content = newTappableContent(ic, ic.raster)

	ic.ExtendBaseWidget(ic)
	return ic
}

// CreateRenderer implements fyne.Widget.
func (ic *ImageCanvas) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(ic.content)
}

// SetImage replaces the displayed image.
func (ic *ImageCanvas) SetImage(img image.Image) {
	ic.img = img
	ic.lastOutput = nil
	ic.updateContentSize()
}

// GetImage returns the displayed image.
func (ic *ImageCanvas) GetImage() image.Image {
	return ic.img
}

// SetZoom sets the zoom level.
func (ic *ImageCanvas) SetZoom(zoom float64) {
	if zoom < minZoom {
		zoom = minZoom
	}
	if zoom > maxZoom {
		zoom = maxZoom
	}
	ic.zoom = zoom
	ic.lastOutput = nil
	ic.updateContentSize()
}

// GetZoom returns the current zoom level.
func (ic *ImageCanvas) GetZoom() float64 {
	return ic.zoom
}

// FitTo picks the largest zoom, at most 1, that shows the whole image within
// width x height.
func (ic *ImageCanvas) FitTo(width, height float32) {
	if ic.img == nil || width <= 0 || height <= 0 {
		return
	}
	bounds := ic.img.Bounds()
	zoom := FitZoom(bounds.Dx(), bounds.Dy(), float64(width), float64(height))
	ic.SetZoom(zoom)
}

// FitZoom returns the zoom that fits a w x h image into the view, capped at 1.
func FitZoom(w, h int, viewW, viewH float64) float64 {
	if w <= 0 || h <= 0 {
		return 1.0
	}
	zoomX := viewW / float64(w)
	zoomY := viewH / float64(h)
	zoom := zoomX
	if zoomY < zoom {
		zoom = zoomY
	}
	if zoom > 1.0 {
		zoom = 1.0
	}
	return zoom
}

// OnLeftClick sets a callback for left-click events.
// Coordinates are in image space (not zoomed).
func (ic *ImageCanvas) OnLeftClick(callback func(x, y float64)) {
	ic.onLeftClick = callback
}

// Refresh refreshes the canvas display.
func (ic *ImageCanvas) Refresh() {
	ic.raster.Refresh()
}

// updateContentSize updates the content size based on image and zoom.
func (ic *ImageCanvas) updateContentSize() {
	if ic.img == nil {
		ic.imgSize = fyne.NewSize(400, 300)
	} else {
		bounds := ic.img.Bounds()
		width := float32(float64(bounds.Dx()) * ic.zoom)
		height := float32(float64(bounds.Dy()) * ic.zoom)
		ic.imgSize = fyne.NewSize(width, height)
	}

	ic.raster.SetMinSize(ic.imgSize)
	ic.raster.Resize(ic.imgSize)
	ic.content.Resize(ic.imgSize)
	ic.content.Refresh()
	ic.raster.Refresh()
}

// draw is the raster drawing function.
func (ic *ImageCanvas) draw(w, h int) image.Image {
	if ic.lastOutput != nil && ic.lastOutput.Bounds().Dx() == w && ic.lastOutput.Bounds().Dy() == h {
		return ic.lastOutput
	}

	output := image.NewRGBA(image.Rect(0, 0, w, h))
	if ic.img != nil && w > 0 && h > 0 {
		xdraw.ApproxBiLinear.Scale(output, output.Bounds(), ic.img, ic.img.Bounds(), draw.Src, nil)
	}

	ic.lastOutput = output
	return output
}
