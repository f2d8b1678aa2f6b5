// Package colorutil provides shared color utilities for overlay rendering.
package colorutil

import (
	"fmt"
	"image/color"

	"gopkg.in/yaml.v3"
)

// Common overlay colors used throughout the application.
var (
	Black   = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	White   = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Red     = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Cyan    = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	Magenta = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	Blue    = color.RGBA{R: 0, G: 0, B: 255, A: 255}
	Green   = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Yellow  = color.RGBA{R: 255, G: 255, B: 0, A: 255}
)

// RGB is an opaque color stored as an [r, g, b] triple in definition files.
type RGB struct {
	R, G, B uint8
}

// FromRGBA drops the alpha channel of c.
func FromRGBA(c color.RGBA) RGB {
	return RGB{R: c.R, G: c.G, B: c.B}
}

// RGBA returns the fully opaque color.RGBA.
func (c RGB) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

func (c RGB) String() string {
	return fmt.Sprintf("(%d,%d,%d)", c.R, c.G, c.B)
}

// MarshalYAML encodes the color as a flow sequence.
func (c RGB) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, v := range []uint8{c.R, c.G, c.B} {
		node.Content = append(node.Content, &yaml.Node{
			Kind:  yaml.ScalarNode,
			Tag:   "!!int",
			Value: fmt.Sprintf("%d", v),
		})
	}
	return node, nil
}

// UnmarshalYAML decodes an [r, g, b] sequence with components in 0-255.
func (c *RGB) UnmarshalYAML(value *yaml.Node) error {
	var parts []int
	if err := value.Decode(&parts); err != nil {
		return fmt.Errorf("color at line %d: %w", value.Line, err)
	}
	rgb, err := FromInts(parts)
	if err != nil {
		return fmt.Errorf("color at line %d: %w", value.Line, err)
	}
	*c = rgb
	return nil
}

// FromInts builds an RGB from three integer components.
func FromInts(parts []int) (RGB, error) {
	if len(parts) != 3 {
		return RGB{}, fmt.Errorf("expected 3 components, got %d", len(parts))
	}
	for _, v := range parts {
		if v < 0 || v > 255 {
			return RGB{}, fmt.Errorf("component %d out of range 0-255", v)
		}
	}
	return RGB{R: uint8(parts[0]), G: uint8(parts[1]), B: uint8(parts[2])}, nil
}

// Palette is the default color cycle for muscles without an explicit color.
var Palette = []RGB{
	FromRGBA(Red),
	FromRGBA(Blue),
	FromRGBA(Green),
	FromRGBA(Magenta),
	FromRGBA(Yellow),
	FromRGBA(Cyan),
}

// PaletteAt returns the i-th palette color, wrapping around.
func PaletteAt(i int) RGB {
	if i < 0 {
		i = -i
	}
	return Palette[i%len(Palette)]
}
