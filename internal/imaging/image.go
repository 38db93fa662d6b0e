package imaging

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/anthonynsimon/bild/parallel"
	"github.com/disintegration/imaging"

	"github.com/ironsheep/color-analysis-mcp/internal/colorspace"
)

var (
	// ErrShapeMismatch is returned when a pixel buffer does not hold exactly
	// width*height pixels.
	ErrShapeMismatch = errors.New("pixel buffer does not match image dimensions")

	// ErrDecodeFailure is returned when input bytes cannot be decoded as an image.
	ErrDecodeFailure = errors.New("cannot decode image")
)

// Image is a fixed-size, row-major buffer of pixels in a single color model.
//
// The pixel at (x, y) is stored at index y*width + x. The shape of an Image
// never changes after construction, and every transform in this package
// returns a new Image that does not share storage with its input.
//
// Image implements image.Image, so any variant can be passed directly to an
// encoder.
type Image[T colorspace.Pixel] struct {
	data   []T
	width  int
	height int
}

// NewImage builds an image from a copy of data.
//
// Returns ErrShapeMismatch if either dimension is negative or if
// len(data) != width*height.
func NewImage[T colorspace.Pixel](width, height int, data []T) (*Image[T], error) {
	if !validShape(width, height, 1) || len(data) != width*height {
		return nil, fmt.Errorf("%w: %d pixels for %dx%d", ErrShapeMismatch, len(data), width, height)
	}

	img := allocImage[T](width, height)
	copy(img.data, data)
	return img, nil
}

// NewRGBImage builds an RGB image from an 8-bit RGBA buffer.
//
// Parameters:
//   - buf: Straight-alpha RGBA bytes, row-major, 4 bytes per pixel.
//   - width, height: Image dimensions in pixels.
//
// Returns ErrShapeMismatch if len(buf) != width*height*4.
func NewRGBImage(buf []byte, width, height int) (*Image[colorspace.RGB], error) {
	if !validShape(width, height, 4) || len(buf) != width*height*4 {
		return nil, fmt.Errorf("%w: %d bytes for %dx%d RGBA", ErrShapeMismatch, len(buf), width, height)
	}

	img := allocImage[colorspace.RGB](width, height)
	parallel.Line(len(img.data), func(start, end int) {
		for i := start; i < end; i++ {
			p := buf[i*4 : i*4+4 : i*4+4]
			img.data[i] = colorspace.RGB{Red: p[0], Green: p[1], Blue: p[2], Alpha: p[3]}
		}
	})
	return img, nil
}

// FromImage converts a decoded image.Image into an RGB image.
//
// The source is first normalized to straight-alpha NRGBA so that partially
// transparent pixels keep their unpremultiplied channel values.
func FromImage(src image.Image) *Image[colorspace.RGB] {
	nrgba := imaging.Clone(src)
	w, h := nrgba.Rect.Dx(), nrgba.Rect.Dy()

	img := allocImage[colorspace.RGB](w, h)
	parallel.Line(h, func(start, end int) {
		for y := start; y < end; y++ {
			row := nrgba.Pix[y*nrgba.Stride : y*nrgba.Stride+w*4]
			for x := 0; x < w; x++ {
				p := row[x*4 : x*4+4 : x*4+4]
				img.data[y*w+x] = colorspace.RGB{Red: p[0], Green: p[1], Blue: p[2], Alpha: p[3]}
			}
		}
	})
	return img
}

// validShape reports whether width*height*unit is non-negative and fits in
// an int.
func validShape(width, height, unit int) bool {
	if width < 0 || height < 0 {
		return false
	}
	return width == 0 || height <= math.MaxInt/unit/width
}

func allocImage[T colorspace.Pixel](width, height int) *Image[T] {
	return &Image[T]{
		data:   make([]T, width*height),
		width:  width,
		height: height,
	}
}

// Width returns the image width in pixels.
func (img *Image[T]) Width() int {
	return img.width
}

// Height returns the image height in pixels.
func (img *Image[T]) Height() int {
	return img.height
}

// Len returns the number of pixels, always Width()*Height().
func (img *Image[T]) Len() int {
	return len(img.data)
}

// Pixel returns the pixel at (x, y), or the zero pixel when (x, y) is outside
// the image.
func (img *Image[T]) Pixel(x, y int) T {
	if x < 0 || x >= img.width || y < 0 || y >= img.height {
		var zero T
		return zero
	}
	return img.data[y*img.width+x]
}

// Pixels returns a copy of the pixels in row-major order.
func (img *Image[T]) Pixels() []T {
	out := make([]T, len(img.data))
	copy(out, img.data)
	return out
}

// ColorModel implements image.Image.
func (img *Image[T]) ColorModel() color.Model {
	var zero T
	switch any(zero).(type) {
	case colorspace.HSI:
		return colorspace.HSIModel
	case colorspace.Lab:
		return colorspace.LabModel
	}
	return colorspace.RGBModel
}

// Bounds implements image.Image. The origin is always (0, 0).
func (img *Image[T]) Bounds() image.Rectangle {
	return image.Rect(0, 0, img.width, img.height)
}

// At implements image.Image.
func (img *Image[T]) At(x, y int) color.Color {
	return img.Pixel(x, y)
}

// Bitmap flattens an RGB image into straight-alpha RGBA bytes, row-major,
// 4 bytes per pixel.
func Bitmap(img *Image[colorspace.RGB]) []byte {
	buf := make([]byte, len(img.data)*4)
	parallel.Line(len(img.data), func(start, end int) {
		for i := start; i < end; i++ {
			p := img.data[i]
			buf[i*4+0] = p.Red
			buf[i*4+1] = p.Green
			buf[i*4+2] = p.Blue
			buf[i*4+3] = p.Alpha
		}
	})
	return buf
}

// NRGBA wraps the bitmap of img in an *image.NRGBA.
func NRGBA(img *Image[colorspace.RGB]) *image.NRGBA {
	return &image.NRGBA{
		Pix:    Bitmap(img),
		Stride: img.width * 4,
		Rect:   img.Bounds(),
	}
}

// mapPixels applies fn to every pixel of src, in parallel, and returns the
// results as a new image of the same shape.
func mapPixels[S, D colorspace.Pixel](src *Image[S], fn func(S) D) *Image[D] {
	dst := allocImage[D](src.width, src.height)
	parallel.Line(len(src.data), func(start, end int) {
		for i := start; i < end; i++ {
			dst.data[i] = fn(src.data[i])
		}
	})
	return dst
}
