// Package image provides image loading, saving and conversion between Go
// images and OpenCV matrices.
package image

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"gocv.io/x/gocv"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ErrLoad is returned when a source image cannot be read or decoded.
var ErrLoad = errors.New("failed to load image")

// Load decodes the image at path. JPEG, PNG, TIFF, WebP and BMP are supported.
func Load(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %v", ErrLoad, path, err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %v", ErrLoad, path, err)
	}
	return img, nil
}

// ToRGBA returns img as *image.RGBA with a zero origin, copying if needed.
func ToRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Bounds().Min == (image.Point{}) {
		return rgba
	}
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	return rgba
}

// ToMat converts a Go image to a BGR matrix. The caller must Close it.
func ToMat(img image.Image) (gocv.Mat, error) {
	rgba := ToRGBA(img)
	b := rgba.Bounds()

	mat, err := gocv.NewMatFromBytes(b.Dy(), b.Dx(), gocv.MatTypeCV8UC4, rgba.Pix)
	if err != nil {
		return gocv.NewMat(), fmt.Errorf("failed to create matrix: %w", err)
	}
	defer mat.Close()

	bgr := gocv.NewMat()
	gocv.CvtColor(mat, &bgr, gocv.ColorRGBAToBGR)
	return bgr, nil
}

// FromMat converts a BGR matrix to an RGBA image.
func FromMat(m gocv.Mat) (*image.RGBA, error) {
	if m.Empty() {
		return nil, errors.New("matrix is empty")
	}
	img, err := m.ToImage()
	if err != nil {
		return nil, fmt.Errorf("failed to convert matrix: %w", err)
	}
	return ToRGBA(img), nil
}

// LoadMat loads path through Load and converts it to a BGR matrix, so pixel
// coordinates match what the picker displayed for the same file.
func LoadMat(path string) (gocv.Mat, image.Rectangle, error) {
	img, err := Load(path)
	if err != nil {
		return gocv.NewMat(), image.Rectangle{}, err
	}
	mat, err := ToMat(img)
	if err != nil {
		return gocv.NewMat(), image.Rectangle{}, fmt.Errorf("%w %s: %v", ErrLoad, path, err)
	}
	return mat, img.Bounds(), nil
}

// Save writes m to path; the format follows the file extension.
func Save(path string, m gocv.Mat) error {
	if !gocv.IMWrite(path, m) {
		return fmt.Errorf("failed to write image %s", path)
	}
	return nil
}

// Show displays m in a window until a key is pressed.
func Show(title string, m gocv.Mat) {
	window := gocv.NewWindow(title)
	defer window.Close()

	window.IMShow(m)
	window.WaitKey(0)
}
