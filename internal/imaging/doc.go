// Package imaging provides whole-image color analysis for the MCP server.
//
// The central type is Image, a fixed-size row-major pixel buffer
// parameterized by its color model (colorspace.RGB, colorspace.HSI or
// colorspace.Lab). On top of it the package implements:
//
//   - Conversion between models (ToRGB, ToHSI, ToLab)
//   - Histograms: per-channel RGB, HSI intensity and Lab a-axis
//   - Contrast stretching of RGB images
//   - Histogram equalization of HSI intensity
//   - Vegetation ("greenery") classification and masking
//   - Cropping to a rectangle or a named region (quadrant, half, center)
//   - Decoding from files or bytes, and rendering to base64 PNG
//
// # Coordinate System
//
// All pixel coordinates are 0-based with (0,0) at the top-left corner,
// X increasing rightward and Y increasing downward. The pixel at (x, y) is
// stored at index y*width + x.
//
// # Immutability and Thread Safety
//
// Images are never modified after construction. Every transform returns a new
// Image with the same width and height, one output pixel per input pixel in
// the same order. Per-pixel work is split across goroutines; the results do
// not depend on the degree of parallelism. ImageCache is safe for concurrent
// use.
//
// # Error Handling
//
// Only construction and I/O can fail:
//   - ErrShapeMismatch: a pixel buffer does not hold width*height pixels
//   - ErrDecodeFailure: input bytes are not a supported image format
//
// Numeric edge cases (a constant channel during stretching, gray pixels in
// RGB -> HSI, a zero red or blue channel in the vegetation index) have fixed
// fallback results and never produce errors, NaN or infinity.
package imaging
