// Package colorspace implements the per-pixel color models used by the
// analysis tools: 8-bit RGB, HSI (hue, saturation, intensity) and CIE-Lab.
//
// Every model implements the Pixel interface, so any pixel can be converted to
// any of the three models. Conversions are pure functions of the source pixel's
// fields. There is no direct HSI <-> Lab formula; those conversions go through
// RGB.
//
// # Value Ranges
//
//   - RGB: Red, Green, Blue, Alpha in 0-255
//   - HSI: Hue in [0, 360) degrees, Saturation, Intensity and Alpha in [0, 1]
//   - Lab: L in [0, 100], A and B signed (nominally -128 to 127), Alpha in [0, 1]
//
// Alpha is carried through every conversion, rescaled between the 0-255 and
// 0-1 domains. Chromatic channels are recomputed and lose precision when they
// pass through the 8-bit RGB model.
//
// # Degenerate Inputs
//
// Some formulas have undefined points. They are resolved to fixed values
// instead of producing NaN or infinity:
//
//   - RGB -> HSI with Red == Green == Blue: hue is 0 (and saturation is 0)
//   - Any conversion into RGB saturates out-of-range values to 0 or 255
//
// # Interop
//
// All pixel types implement image/color.Color, and RGBModel, HSIModel and
// LabModel convert arbitrary colors into each model.
package colorspace
