package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/histogram"
	"github.com/disintegration/imaging"

	"github.com/ironsheep/color-analysis-mcp/internal/colorspace"
)

// RenderResult contains an output image encoded as base64 PNG.
type RenderResult struct {
	// Width of the output image in pixels.
	Width int `json:"width"`

	// Height of the output image in pixels.
	Height int `json:"height"`

	// ImageBase64 is the image encoded as base64 PNG.
	ImageBase64 string `json:"image_base64"`

	// MimeType is always "image/png".
	MimeType string `json:"mime_type"`
}

// EncodePNG renders img as a base64 PNG. Non-RGB images are converted to RGB
// first.
func EncodePNG[T colorspace.Pixel](img *Image[T]) (*RenderResult, error) {
	return encodeImage(NRGBA(ToRGB(img)))
}

// RenderHistogram draws h as a square grayscale bar chart, one column per bin,
// with bar heights scaled to the fullest bin.
func RenderHistogram(h histogram.Histogram) (*RenderResult, error) {
	return encodeImage(h.Image())
}

func encodeImage(img image.Image) (*RenderResult, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}

	bounds := img.Bounds()
	return &RenderResult{
		Width:       bounds.Dx(),
		Height:      bounds.Dy(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}
