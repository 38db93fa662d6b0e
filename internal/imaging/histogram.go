package imaging

import (
	"math"
	"sync"

	"github.com/anthonynsimon/bild/histogram"
	"github.com/anthonynsimon/bild/parallel"

	"github.com/ironsheep/color-analysis-mcp/internal/colorspace"
)

// HistogramBins is the number of bins in every histogram built by this package.
const HistogramBins = 256

// RGBHistogram holds one 256-bin frequency table per color channel.
type RGBHistogram struct {
	Red   histogram.Histogram
	Green histogram.Histogram
	Blue  histogram.Histogram
}

// ChannelHistogram counts the exact 8-bit value of each RGB channel across
// all pixels of img. Alpha is ignored.
func ChannelHistogram(img *Image[colorspace.RGB]) RGBHistogram {
	tables := countBins(img.Len(), 3, func(i int, bins [][]int) {
		p := img.data[i]
		bins[0][p.Red]++
		bins[1][p.Green]++
		bins[2][p.Blue]++
	})

	return RGBHistogram{
		Red:   histogram.Histogram{Bins: tables[0]},
		Green: histogram.Histogram{Bins: tables[1]},
		Blue:  histogram.Histogram{Bins: tables[2]},
	}
}

// IntensityHistogram counts HSI pixels by floor(intensity*255).
func IntensityHistogram(img *Image[colorspace.HSI]) histogram.Histogram {
	tables := countBins(img.Len(), 1, func(i int, bins [][]int) {
		bins[0][intensityBin(img.data[i].Intensity)]++
	})
	return histogram.Histogram{Bins: tables[0]}
}

// AHistogram counts Lab pixels by floor(a+128), recentering the signed a axis
// onto 0-255.
func AHistogram(img *Image[colorspace.Lab]) histogram.Histogram {
	tables := countBins(img.Len(), 1, func(i int, bins [][]int) {
		bins[0][clampBin(math.Floor(img.data[i].A+128))]++
	})
	return histogram.Histogram{Bins: tables[0]}
}

// MinMax returns the lowest and highest bin index with a nonzero count.
// For an empty histogram it returns 0, 0, false.
func MinMax(h histogram.Histogram) (lo, hi int, ok bool) {
	lo = -1
	for i, n := range h.Bins {
		if n == 0 {
			continue
		}
		if lo < 0 {
			lo = i
		}
		hi = i
	}
	if lo < 0 {
		return 0, 0, false
	}
	return lo, hi, true
}

// Total returns the sum of all bin counts.
func Total(h histogram.Histogram) int {
	total := 0
	for _, n := range h.Bins {
		total += n
	}
	return total
}

func intensityBin(v float64) int {
	return clampBin(math.Floor(v * 255))
}

// clampBin maps a bin position into [0, HistogramBins). NaN maps to 0.
func clampBin(v float64) int {
	switch {
	case math.IsNaN(v), v <= 0:
		return 0
	case v >= HistogramBins-1:
		return HistogramBins - 1
	}
	return int(v)
}

// countBins builds `tables` histograms over n pixels. Each parallel stripe
// tallies into private tables which are summed into the result.
func countBins(n, tables int, tally func(i int, bins [][]int)) [][]int {
	result := newTables(tables)

	var mu sync.Mutex
	parallel.Line(n, func(start, end int) {
		part := newTables(tables)
		for i := start; i < end; i++ {
			tally(i, part)
		}

		mu.Lock()
		defer mu.Unlock()
		for t := range part {
			for b, c := range part[t] {
				result[t][b] += c
			}
		}
	})
	return result
}

func newTables(n int) [][]int {
	tables := make([][]int, n)
	for i := range tables {
		tables[i] = make([]int, HistogramBins)
	}
	return tables
}
