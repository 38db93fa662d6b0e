package imaging

import (
	"math"
	"testing"

	"github.com/ironsheep/color-analysis-mcp/internal/colorspace"
)

var (
	forestGreen = colorspace.RGB{Red: 34, Green: 139, Blue: 34, Alpha: 255}
	midGray     = colorspace.RGB{Red: 128, Green: 128, Blue: 128, Alpha: 255}
)

func TestVegetationIndex_ForestGreen(t *testing.T) {
	idx, ok := VegetationIndex(forestGreen)
	if !ok {
		t.Fatal("index should be defined for forest green")
	}
	if !approxEqual(idx, 0.70, 0.01) {
		t.Errorf("index: got %f, want ~0.70", idx)
	}
	if !IsVegetation(forestGreen) {
		t.Error("forest green should be classified as vegetation")
	}
}

func TestVegetationIndex_Gray(t *testing.T) {
	idx, ok := VegetationIndex(midGray)
	if !ok {
		t.Fatal("index should be defined for gray")
	}
	if idx > VegetationThreshold {
		t.Errorf("gray index %f should not exceed threshold", idx)
	}
	if IsVegetation(midGray) {
		t.Error("gray should not be classified as vegetation")
	}
}

func TestVegetationIndex_ZeroChannel(t *testing.T) {
	tests := []struct {
		name string
		p    colorspace.RGB
	}{
		{"pure green", colorspace.RGB{Red: 0, Green: 255, Blue: 0, Alpha: 255}},
		{"zero red", colorspace.RGB{Red: 0, Green: 200, Blue: 40, Alpha: 255}},
		{"zero blue", colorspace.RGB{Red: 40, Green: 200, Blue: 0, Alpha: 255}},
		{"black", colorspace.RGB{Red: 0, Green: 0, Blue: 0, Alpha: 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx, ok := VegetationIndex(tt.p)
			if ok {
				t.Errorf("index should be undefined, got %f", idx)
			}
			if math.IsNaN(idx) || math.IsInf(idx, 0) {
				t.Errorf("index must be finite, got %f", idx)
			}
			if IsVegetation(tt.p) {
				t.Error("pixel with undefined index must not be vegetation")
			}
		})
	}
}

func TestMaskVegetation(t *testing.T) {
	data := []colorspace.RGB{forestGreen, midGray, {Red: 0, Green: 255, Blue: 0, Alpha: 255}, {Red: 34, Green: 139, Blue: 34, Alpha: 77}}
	img, err := NewImage(2, 2, data)
	if err != nil {
		t.Fatalf("NewImage failed: %v", err)
	}

	out := MaskVegetation(img)
	black := colorspace.RGB{Red: 0, Green: 0, Blue: 0, Alpha: 255}
	want := []colorspace.RGB{forestGreen, black, black, {Red: 34, Green: 139, Blue: 34, Alpha: 77}}

	for i, w := range want {
		if got := out.Pixel(i%2, i/2); got != w {
			t.Errorf("pixel %d: got %+v, want %+v", i, got, w)
		}
	}
	if img.Pixel(1, 0) != midGray {
		t.Error("MaskVegetation modified its input")
	}
}

func TestMaskVegetationWith(t *testing.T) {
	img := newSolidImage(t, 3, 1, midGray)
	fill := colorspace.RGB{Red: 255, Green: 0, Blue: 255, Alpha: 255}
	out := MaskVegetationWith(img, fill)

	for x := 0; x < 3; x++ {
		if got := out.Pixel(x, 0); got != fill {
			t.Errorf("pixel %d: got %+v, want %+v", x, got, fill)
		}
	}
}

func TestMeasureGreenery(t *testing.T) {
	data := []colorspace.RGB{forestGreen, forestGreen, forestGreen, midGray}
	img, err := NewImage(4, 1, data)
	if err != nil {
		t.Fatalf("NewImage failed: %v", err)
	}

	res := MeasureGreenery(img)
	if res.VegetationPixels != 3 || res.TotalPixels != 4 {
		t.Errorf("counts: got %d/%d, want 3/4", res.VegetationPixels, res.TotalPixels)
	}
	if res.Percentage != 0.75 {
		t.Errorf("percentage: got %f, want 0.75", res.Percentage)
	}
	if GreeneryPercentage(img) != 0.75 {
		t.Errorf("GreeneryPercentage: got %f, want 0.75", GreeneryPercentage(img))
	}
}

func TestGreeneryPercentage_Bounds(t *testing.T) {
	tests := []struct {
		name string
		img  *Image[colorspace.RGB]
	}{
		{"all green", newSolidImage(t, 10, 10, forestGreen)},
		{"all gray", newSolidImage(t, 10, 10, midGray)},
		{"gradient", newGradientImage(t, 50, 50)},
		{"empty", newSolidImage(t, 0, 0, midGray)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pct := GreeneryPercentage(tt.img)
			if pct < 0 || pct > 1 || math.IsNaN(pct) {
				t.Errorf("percentage %f outside [0,1]", pct)
			}
		})
	}

	if got := GreeneryPercentage(newSolidImage(t, 3, 3, forestGreen)); got != 1 {
		t.Errorf("all green: got %f, want 1", got)
	}
}
