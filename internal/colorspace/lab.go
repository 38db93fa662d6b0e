package colorspace

import "math"

// Reference white (D65-like) used by the XYZ normalization.
const (
	refX = 0.950456
	refY = 1.0
	refZ = 1.088754
)

const (
	labEpsilon        = 0.008856 // linear/cube-root boundary in XYZ
	labInverseEpsilon = 0.206893 // the same boundary in the f(t) domain
	labSlope          = 7.787
	labOffset         = 16.0 / 116.0
)

// Lab is a CIE-Lab pixel.
type Lab struct {
	L     float64 `json:"l"`     // Lightness in [0, 100]
	A     float64 `json:"a"`     // Green (-) to red (+)
	B     float64 `json:"b"`     // Blue (-) to yellow (+)
	Alpha float64 `json:"alpha"` // Opacity in [0, 1]
}

// RGBA implements color.Color.
func (c Lab) RGBA() (r, g, b, a uint32) {
	return c.ToRGB().RGBA()
}

// ToRGB inverts RGB.ToLab. Channels that fall outside the RGB gamut saturate
// at 0 or 255.
func (c Lab) ToRGB() RGB {
	fy := (finite(c.L) + 16) / 116
	fx := finite(c.A)/500 + fy
	fz := fy - finite(c.B)/200

	x := refX * labExpand(fx)
	y := refY * labExpand(fy)
	z := refZ * labExpand(fz)

	r := 3.240479*x - 1.537150*y - 0.498535*z
	g := -0.969256*x + 1.875992*y + 0.041556*z
	b := 0.055648*x - 0.204043*y + 1.057311*z

	return RGB{
		Red:   to8(r),
		Green: to8(g),
		Blue:  to8(b),
		Alpha: to8(c.Alpha),
	}
}

// ToHSI converts c to HSI through RGB.
func (c Lab) ToHSI() HSI {
	return c.ToRGB().ToHSI()
}

// ToLab returns a copy of c.
func (c Lab) ToLab() Lab {
	return c
}

func labCompress(t float64) float64 {
	if t > labEpsilon {
		return math.Cbrt(t)
	}
	return labSlope*t + labOffset
}

func labExpand(f float64) float64 {
	if f > labInverseEpsilon {
		return f * f * f
	}
	return (f - labOffset) / labSlope
}
