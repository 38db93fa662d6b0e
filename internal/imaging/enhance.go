package imaging

import (
	"math"

	"github.com/anthonynsimon/bild/histogram"

	"github.com/ironsheep/color-analysis-mcp/internal/colorspace"
)

// ContrastStretch linearly remaps each RGB channel so that its observed range
// [min, max] covers the full 0-255 range:
//
//	v' = round(255 * (v-min) / (max-min))
//
// min and max are the lowest and highest values present in that channel.
// A channel that is constant across the image is passed through unchanged.
// Alpha is never modified.
func ContrastStretch(img *Image[colorspace.RGB]) *Image[colorspace.RGB] {
	hist := ChannelHistogram(img)
	red := stretchTable(hist.Red)
	green := stretchTable(hist.Green)
	blue := stretchTable(hist.Blue)

	return mapPixels(img, func(p colorspace.RGB) colorspace.RGB {
		return colorspace.RGB{
			Red:   red[p.Red],
			Green: green[p.Green],
			Blue:  blue[p.Blue],
			Alpha: p.Alpha,
		}
	})
}

// stretchTable builds the per-value lookup table for one channel.
func stretchTable(h histogram.Histogram) [HistogramBins]uint8 {
	var table [HistogramBins]uint8
	lo, hi, _ := MinMax(h)

	for v := range table {
		if hi == lo {
			// Constant channel: no range to stretch.
			table[v] = uint8(v)
			continue
		}
		scaled := math.Round(255 * float64(v-lo) / float64(hi-lo))
		table[v] = uint8(math.Max(0, math.Min(255, scaled)))
	}
	return table
}

// EqualizeIntensity flattens the intensity distribution of an HSI image.
//
// The intensity histogram's cumulative distribution (CDF) is used as the
// mapping:
//
//	i' = (CDF[bin(i)] - CDF[lo]) / (N - CDF[lo])
//
// where bin(i) = floor(i*255), lo is the lowest occupied bin and N is the
// pixel count. The CDF is non-decreasing, so pixels never swap intensity
// order, and every result is in [0, 1]. Hue, saturation and alpha are kept.
//
// The offset is the count CDF[lo], not the bin index lo. Subtracting the
// index would push images whose darkest pixels sit above bin 0 outside
// [0, 1]; with CDF[lo] the darkest pixels always map to 0 and the brightest
// to 1.
//
// If every pixel falls in the same bin there is nothing to spread
// (N == CDF[lo]) and the intensities are returned unchanged instead of
// being mapped to 1.
func EqualizeIntensity(img *Image[colorspace.HSI]) *Image[colorspace.HSI] {
	hist := IntensityHistogram(img)
	lo, _, ok := MinMax(hist)
	if !ok {
		return mapPixels(img, func(p colorspace.HSI) colorspace.HSI { return p })
	}

	cdf := hist.Cumulative()
	offset := cdf.Bins[lo]
	span := img.Len() - offset
	if span <= 0 {
		return mapPixels(img, func(p colorspace.HSI) colorspace.HSI { return p })
	}

	return mapPixels(img, func(p colorspace.HSI) colorspace.HSI {
		p.Intensity = float64(cdf.Bins[intensityBin(p.Intensity)]-offset) / float64(span)
		return p
	})
}
