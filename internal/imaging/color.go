package imaging

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"

	"github.com/ironsheep/color-analysis-mcp/internal/colorspace"
)

// PixelSample describes one pixel in every supported color model.
type PixelSample struct {
	X int `json:"x"` // X coordinate that was sampled
	Y int `json:"y"` // Y coordinate that was sampled

	// Hex is the color as "#RRGGBB" (alpha excluded).
	Hex string `json:"hex"`

	RGB colorspace.RGB `json:"rgb"`
	HSI colorspace.HSI `json:"hsi"`
	Lab colorspace.Lab `json:"lab"`

	// VegetationIndex is the combined vegetation index, or nil when it is
	// undefined for this pixel (red or blue channel is 0).
	VegetationIndex *float64 `json:"vegetation_index"`

	// Vegetation reports whether the pixel is classified as vegetation.
	Vegetation bool `json:"vegetation"`
}

// SamplePixel reads the pixel at (x, y) and reports it in RGB, HSI and Lab
// along with its vegetation classification.
//
// Coordinates are 0-based with origin at top-left. Returns an error if (x, y)
// is outside the image.
func SamplePixel(img *Image[colorspace.RGB], x, y int) (*PixelSample, error) {
	if x < 0 || x >= img.Width() || y < 0 || y >= img.Height() {
		return nil, fmt.Errorf("coordinates (%d,%d) outside image bounds", x, y)
	}

	p := img.Pixel(x, y)
	sample := &PixelSample{
		X:          x,
		Y:          y,
		Hex:        hexString(p),
		RGB:        p,
		HSI:        p.ToHSI(),
		Lab:        p.ToLab(),
		Vegetation: IsVegetation(p),
	}
	if idx, ok := VegetationIndex(p); ok {
		sample.VegetationIndex = &idx
	}
	return sample, nil
}

// hexString formats the color channels of p as "#RRGGBB".
func hexString(p colorspace.RGB) string {
	c, _ := colorful.MakeColor(color.NRGBA{R: p.Red, G: p.Green, B: p.Blue, A: 255})
	return strings.ToUpper(c.Hex())
}

// ParseColor parses an opaque color given as "#RRGGBB" or an SVG
// color name such as "black" or "magenta".
func ParseColor(s string) (colorspace.RGB, error) {
	s = strings.TrimSpace(s)
	if named, ok := colornames.Map[strings.ToLower(s)]; ok {
		return colorspace.RGB{Red: named.R, Green: named.G, Blue: named.B, Alpha: 255}, nil
	}

	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return colorspace.RGB{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return colorspace.RGB{Red: r, Green: g, Blue: b, Alpha: 255}, nil
}
