package imaging

import "github.com/ironsheep/color-analysis-mcp/internal/colorspace"

// ToRGB converts every pixel of img to RGB. Converting an RGB image returns
// a copy.
func ToRGB[T colorspace.Pixel](img *Image[T]) *Image[colorspace.RGB] {
	return mapPixels(img, func(p T) colorspace.RGB { return p.ToRGB() })
}

// ToHSI converts every pixel of img to HSI.
func ToHSI[T colorspace.Pixel](img *Image[T]) *Image[colorspace.HSI] {
	return mapPixels(img, func(p T) colorspace.HSI { return p.ToHSI() })
}

// ToLab converts every pixel of img to Lab.
func ToLab[T colorspace.Pixel](img *Image[T]) *Image[colorspace.Lab] {
	return mapPixels(img, func(p T) colorspace.Lab { return p.ToLab() })
}
