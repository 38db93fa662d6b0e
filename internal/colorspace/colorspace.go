package colorspace

import (
	"image/color"
	"math"
)

// Pixel is implemented by every color model in this package.
//
// The three conversion methods are total: they return a valid pixel for any
// input, including out-of-range or degenerate values. Converting to the
// receiver's own model returns a copy.
type Pixel interface {
	color.Color

	ToRGB() RGB
	ToHSI() HSI
	ToLab() Lab
}

// Color models converting arbitrary colors into each pixel type.
var (
	RGBModel color.Model = color.ModelFunc(rgbModel)
	HSIModel color.Model = color.ModelFunc(hsiModel)
	LabModel color.Model = color.ModelFunc(labModel)
)

// FromColor converts any color.Color into a straight-alpha RGB pixel.
func FromColor(c color.Color) RGB {
	if p, ok := c.(Pixel); ok {
		return p.ToRGB()
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGB{Red: n.R, Green: n.G, Blue: n.B, Alpha: n.A}
}

func rgbModel(c color.Color) color.Color {
	return FromColor(c)
}

func hsiModel(c color.Color) color.Color {
	if p, ok := c.(HSI); ok {
		return p
	}
	return FromColor(c).ToHSI()
}

func labModel(c color.Color) color.Color {
	if p, ok := c.(Lab); ok {
		return p
	}
	return FromColor(c).ToLab()
}

// clamp01 limits v to [0, 1]. NaN maps to 0.
func clamp01(v float64) float64 {
	switch {
	case math.IsNaN(v), v <= 0:
		return 0
	case v >= 1:
		return 1
	}
	return v
}

// to8 scales a [0, 1] value to 0-255, saturating at the bounds.
func to8(v float64) uint8 {
	return uint8(math.Round(clamp01(v) * 255))
}

// finite replaces NaN and infinities with 0.
func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
