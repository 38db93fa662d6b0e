package colorspace

import "math"

// HSI is a hue/saturation/intensity pixel.
type HSI struct {
	Hue        float64 `json:"hue"`        // Degrees in [0, 360)
	Saturation float64 `json:"saturation"` // 0 (gray) to 1 (fully saturated)
	Intensity  float64 `json:"intensity"`  // Mean channel value in [0, 1]
	Alpha      float64 `json:"alpha"`      // Opacity in [0, 1]
}

// RGBA implements color.Color.
func (c HSI) RGBA() (r, g, b, a uint32) {
	return c.ToRGB().RGBA()
}

// ToRGB converts c back to 8-bit RGB using the sector decomposition of the
// hue circle. Within a sector the hue is measured from the sector start h0:
//
//	x = i(1-s)
//	y = i(1 + s*cos(h-h0)/cos(60°-(h-h0)))
//	z = 3i - (x+y)
//
// and assigned to the channels as
//
//	[0°, 120°)    R=y G=z B=x
//	[120°, 240°)  R=x G=y B=z
//	[240°, 360°)  R=z G=x B=y
//
// Channel values outside [0, 1] saturate.
func (c HSI) ToRGB() RGB {
	h := math.Mod(finite(c.Hue), 360)
	if h < 0 {
		h += 360
	}
	s := finite(c.Saturation)
	i := finite(c.Intensity)

	sector := int(h / 120)
	if sector > 2 {
		sector = 2
	}
	rad := (h - float64(sector)*120) * math.Pi / 180

	x := i * (1 - s)
	y := i * (1 + s*math.Cos(rad)/math.Cos(math.Pi/3-rad))
	z := 3*i - (x + y)

	var r, g, b float64
	switch sector {
	case 0:
		r, g, b = y, z, x
	case 1:
		r, g, b = x, y, z
	default:
		r, g, b = z, x, y
	}

	return RGB{
		Red:   to8(r),
		Green: to8(g),
		Blue:  to8(b),
		Alpha: to8(c.Alpha),
	}
}

// ToHSI returns a copy of c.
func (c HSI) ToHSI() HSI {
	return c
}

// ToLab converts c to Lab through RGB.
func (c HSI) ToLab() Lab {
	return c.ToRGB().ToLab()
}
