package imaging

import (
	"math"

	"github.com/ironsheep/color-analysis-mcp/internal/colorspace"
)

// VegetationThreshold is the index above which a pixel counts as vegetation.
const VegetationThreshold = 0.03

// Weights of the combined index.
const (
	exgWeight  = 0.36
	civeWeight = 0.47
	vegWeight  = 0.17
)

// Opaque black, used for masked-out pixels.
var maskBlack = colorspace.RGB{Red: 0, Green: 0, Blue: 0, Alpha: 255}

// VegetationIndex computes the combined vegetation index of a pixel.
//
// The channels are reduced to chromatic coordinates r, g, b (r+g+b = 1) and
// three indices are combined:
//
//	ExG  = 2g - r - b
//	CIVE = 0.441r - 0.811g + 0.385b
//	VEG  = g / (r^0.667 * b^0.333) - 1
//	index = 0.36*ExG + 0.47*CIVE + 0.17*VEG
//
// VEG is undefined when the red or blue channel is 0. In that case the second
// return value is false and the pixel must be treated as non-vegetation.
func VegetationIndex(p colorspace.RGB) (float64, bool) {
	if p.Red == 0 || p.Blue == 0 {
		return 0, false
	}

	sum := float64(p.Red) + float64(p.Green) + float64(p.Blue)
	r := float64(p.Red) / sum
	g := float64(p.Green) / sum
	b := float64(p.Blue) / sum

	exg := 2*g - r - b
	cive := 0.441*r - 0.811*g + 0.385*b
	veg := g/(math.Pow(r, 0.667)*math.Pow(b, 0.333)) - 1

	return exgWeight*exg + civeWeight*cive + vegWeight*veg, true
}

// IsVegetation reports whether p is classified as vegetation.
func IsVegetation(p colorspace.RGB) bool {
	idx, ok := VegetationIndex(p)
	return ok && idx > VegetationThreshold
}

// GreeneryResult summarizes vegetation coverage of an image.
type GreeneryResult struct {
	// Percentage is the fraction of vegetation pixels, in [0, 1].
	Percentage float64 `json:"percentage"`

	// VegetationPixels is the number of pixels classified as vegetation.
	VegetationPixels int `json:"vegetation_pixels"`

	// TotalPixels is the number of pixels in the image.
	TotalPixels int `json:"total_pixels"`
}

// MeasureGreenery classifies every pixel of img and reports the coverage.
// An empty image has a coverage of 0.
func MeasureGreenery(img *Image[colorspace.RGB]) GreeneryResult {
	counts := countBins(img.Len(), 1, func(i int, bins [][]int) {
		if IsVegetation(img.data[i]) {
			bins[0][1]++
		}
	})

	result := GreeneryResult{
		VegetationPixels: counts[0][1],
		TotalPixels:      img.Len(),
	}
	if result.TotalPixels > 0 {
		result.Percentage = float64(result.VegetationPixels) / float64(result.TotalPixels)
	}
	return result
}

// GreeneryPercentage returns the fraction of vegetation pixels in img.
func GreeneryPercentage(img *Image[colorspace.RGB]) float64 {
	return MeasureGreenery(img).Percentage
}

// MaskVegetation returns a copy of img where every non-vegetation pixel is
// replaced by opaque black. Vegetation pixels are passed through unchanged.
func MaskVegetation(img *Image[colorspace.RGB]) *Image[colorspace.RGB] {
	return MaskVegetationWith(img, maskBlack)
}

// MaskVegetationWith is MaskVegetation with a caller-chosen fill color.
func MaskVegetationWith(img *Image[colorspace.RGB], fill colorspace.RGB) *Image[colorspace.RGB] {
	return mapPixels(img, func(p colorspace.RGB) colorspace.RGB {
		if IsVegetation(p) {
			return p
		}
		return fill
	})
}
