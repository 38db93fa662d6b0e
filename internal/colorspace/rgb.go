package colorspace

import (
	"image/color"
	"math"
)

// RGB is a straight (non-premultiplied) 8-bit RGBA pixel.
type RGB struct {
	Red   uint8 `json:"red"`   // Red component (0-255)
	Green uint8 `json:"green"` // Green component (0-255)
	Blue  uint8 `json:"blue"`  // Blue component (0-255)
	Alpha uint8 `json:"alpha"` // Opacity (0 = transparent, 255 = opaque)
}

// RGBA implements color.Color.
func (c RGB) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.Red, G: c.Green, B: c.Blue, A: c.Alpha}.RGBA()
}

// ToRGB returns a copy of c.
func (c RGB) ToRGB() RGB {
	return c
}

// ToHSI converts c to the HSI model.
//
// The channels are normalized by their sum into chromatic coordinates r, g, b
// (r+g+b = 1) and the hue angle is
//
//	θ = acos(0.5*((r-g)+(r-b)) / sqrt((r-g)² + (r-b)(g-b)))
//
// taken as θ when b <= g and 360-θ otherwise. Saturation is 1 - 3*min(r,g,b)
// and intensity is the channel mean over 0-255.
//
// When all three channels are equal (gray, black, white) the hue is undefined;
// it is reported as 0 with saturation 0.
func (c RGB) ToHSI() HSI {
	sum := float64(c.Red) + float64(c.Green) + float64(c.Blue)
	hsi := HSI{
		Intensity: sum / (3 * 255),
		Alpha:     float64(c.Alpha) / 255,
	}
	if c.Red == c.Green && c.Green == c.Blue {
		return hsi
	}

	r := float64(c.Red) / sum
	g := float64(c.Green) / sum
	b := float64(c.Blue) / sum

	num := 0.5 * ((r - g) + (r - b))
	den := math.Sqrt((r-g)*(r-g) + (r-b)*(g-b))
	// Rounding can push the ratio a hair outside acos's domain.
	ratio := math.Max(-1, math.Min(1, num/den))
	theta := math.Acos(ratio) * 180 / math.Pi

	hue := theta
	if b > g {
		hue = 360 - theta
	}
	if hue >= 360 {
		hue -= 360
	}

	hsi.Hue = hue
	hsi.Saturation = 1 - 3*math.Min(r, math.Min(g, b))
	return hsi
}

// ToLab converts c to CIE-Lab through linear XYZ using the package reference
// white. No gamma linearization is applied to the RGB channels.
func (c RGB) ToLab() Lab {
	r := float64(c.Red) / 255
	g := float64(c.Green) / 255
	b := float64(c.Blue) / 255

	x := (0.412453*r + 0.357580*g + 0.180423*b) / refX
	y := (0.212671*r + 0.715160*g + 0.072169*b) / refY
	z := (0.019334*r + 0.119193*g + 0.950227*b) / refZ

	fx, fy, fz := labCompress(x), labCompress(y), labCompress(z)

	return Lab{
		L:     116*fy - 16,
		A:     500 * (fx - fy),
		B:     200 * (fy - fz),
		Alpha: float64(c.Alpha) / 255,
	}
}
