package imaging

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/color-analysis-mcp/internal/colorspace"
)

// RegionNames lists the named regions accepted by NamedRegion.
var RegionNames = []string{
	"full",
	"top-left", "top-right", "bottom-left", "bottom-right",
	"top-half", "bottom-half", "left-half", "right-half",
	"center",
}

// NamedRegion resolves a region name to a rectangle within a width x height
// image. "center" is the middle 50% in each dimension.
func NamedRegion(width, height int, name string) (image.Rectangle, error) {
	midX := width / 2
	midY := height / 2

	switch name {
	case "", "full":
		return image.Rect(0, 0, width, height), nil
	case "top-left":
		return image.Rect(0, 0, midX, midY), nil
	case "top-right":
		return image.Rect(midX, 0, width, midY), nil
	case "bottom-left":
		return image.Rect(0, midY, midX, height), nil
	case "bottom-right":
		return image.Rect(midX, midY, width, height), nil
	case "top-half":
		return image.Rect(0, 0, width, midY), nil
	case "bottom-half":
		return image.Rect(0, midY, width, height), nil
	case "left-half":
		return image.Rect(0, 0, midX, height), nil
	case "right-half":
		return image.Rect(midX, 0, width, height), nil
	case "center":
		qW := width / 4
		qH := height / 4
		return image.Rect(qW, qH, width-qW, height-qH), nil
	default:
		return image.Rectangle{}, fmt.Errorf("unknown region: %s", name)
	}
}

// Crop returns a new image holding the pixels of img inside r.
//
// r must lie within the image and be non-empty.
func Crop(img *Image[colorspace.RGB], r image.Rectangle) (*Image[colorspace.RGB], error) {
	bounds := img.Bounds()
	if !r.In(bounds) {
		return nil, fmt.Errorf("crop region %v outside image bounds %v", r, bounds)
	}
	if r.Empty() {
		return nil, fmt.Errorf("invalid crop region %v: must be non-empty", r)
	}
	if r == bounds {
		return ToRGB(img), nil
	}

	return FromImage(imaging.Crop(NRGBA(img), r)), nil
}

// CropNamed is Crop with a region from NamedRegion.
func CropNamed(img *Image[colorspace.RGB], name string) (*Image[colorspace.RGB], error) {
	r, err := NamedRegion(img.Width(), img.Height(), name)
	if err != nil {
		return nil, err
	}
	return Crop(img, r)
}
