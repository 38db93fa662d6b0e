package imaging

import (
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"testing"

	"github.com/ironsheep/color-analysis-mcp/internal/colorspace"
)

// newSolidImage creates an in-memory RGB image filled with a single pixel value.
func newSolidImage(t *testing.T, width, height int, p colorspace.RGB) *Image[colorspace.RGB] {
	t.Helper()
	data := make([]colorspace.RGB, width*height)
	for i := range data {
		data[i] = p
	}
	img, err := NewImage(width, height, data)
	if err != nil {
		t.Fatalf("NewImage failed: %v", err)
	}
	return img
}

// newGradientImage creates an image whose channels vary across the image,
// with red in [20,200], green in [50,100], blue in [0,255].
func newGradientImage(t *testing.T, width, height int) *Image[colorspace.RGB] {
	t.Helper()
	data := make([]colorspace.RGB, 0, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			data = append(data, colorspace.RGB{
				Red:   uint8(20 + 180*x/max(width-1, 1)),
				Green: uint8(50 + 50*y/max(height-1, 1)),
				Blue:  uint8(255 * (x + y) / max(width+height-2, 1)),
				Alpha: uint8(100 + x%100),
			})
		}
	}
	img, err := NewImage(width, height, data)
	if err != nil {
		t.Fatalf("NewImage failed: %v", err)
	}
	return img
}

// createTestImageFile writes an image to a temporary PNG file and returns its
// path. The caller is responsible for removing the file.
func createTestImageFile(t *testing.T, width, height int, c color.Color) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}

	tmpFile, err := os.CreateTemp("", "test-image-*.png")
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	defer tmpFile.Close()

	if err := png.Encode(tmpFile, img); err != nil {
		os.Remove(tmpFile.Name())
		t.Fatalf("failed to encode image: %v", err)
	}

	return tmpFile.Name()
}

func approxEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}
