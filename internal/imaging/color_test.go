package imaging

import (
	"image"
	"image/color"
	"math"
	"testing"
)

// createInMemoryImage creates a uniformly colored in-memory test image
func createInMemoryImage(width, height int, c color.Color) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

// createPatternImage creates an image with different colors in each quadrant
func createPatternImage(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var c color.Color
			if x < width/2 && y < height/2 {
				c = color.RGBA{255, 0, 0, 255} // Red top-left
			} else if x >= width/2 && y < height/2 {
				c = color.RGBA{0, 255, 0, 255} // Green top-right
			} else if x < width/2 && y >= height/2 {
				c = color.RGBA{0, 0, 255, 255} // Blue bottom-left
			} else {
				c = color.RGBA{255, 255, 255, 255} // White bottom-right
			}
			img.Set(x, y, c)
		}
	}
	return img
}

func TestDescribeRGB(t *testing.T) {
	result := DescribeRGB(255, 255, 0)

	if result.Hex != "#FFFF00" {
		t.Errorf("Hex: got %s, want #FFFF00", result.Hex)
	}
	if result.RGB.R != 255 || result.RGB.G != 255 || result.RGB.B != 0 {
		t.Errorf("RGB: got (%d,%d,%d), want (255,255,0)", result.RGB.R, result.RGB.G, result.RGB.B)
	}
	if result.RGBA.A != 255 {
		t.Errorf("RGBA.A: got %d, want 255", result.RGBA.A)
	}
	if math.Abs(result.HSL.H-60) > 0.5 {
		t.Errorf("HSL.H: got %v, want ~60", result.HSL.H)
	}
	if math.Abs(result.HSL.S-1.0) > 0.01 {
		t.Errorf("HSL.S: got %v, want 1.0", result.HSL.S)
	}
	if math.Abs(result.HSL.L-0.5) > 0.01 {
		t.Errorf("HSL.L: got %v, want 0.5", result.HSL.L)
	}
}

func TestSampleColor(t *testing.T) {
	img := createInMemoryImage(100, 100, color.RGBA{255, 128, 64, 255})

	result, err := SampleColor(img, 50, 50)
	if err != nil {
		t.Fatalf("SampleColor failed: %v", err)
	}

	if result.Hex != "#FF8040" {
		t.Errorf("Hex: got %s, want #FF8040", result.Hex)
	}
	if result.RGB.R != 255 || result.RGB.G != 128 || result.RGB.B != 64 {
		t.Errorf("RGB: got (%d,%d,%d), want (255,128,64)", result.RGB.R, result.RGB.G, result.RGB.B)
	}
	if result.RGBA.A != 255 {
		t.Errorf("RGBA.A: got %d, want 255", result.RGBA.A)
	}
}

func TestSampleColor_HSLValues(t *testing.T) {
	tests := []struct {
		name  string
		color color.RGBA
		wantH float64
		wantS float64
		wantL float64
	}{
		{"pure red", color.RGBA{255, 0, 0, 255}, 0, 1, 0.5},
		{"pure green", color.RGBA{0, 255, 0, 255}, 120, 1, 0.5},
		{"pure blue", color.RGBA{0, 0, 255, 255}, 240, 1, 0.5},
		{"white", color.RGBA{255, 255, 255, 255}, 0, 0, 1},
		{"black", color.RGBA{0, 0, 0, 255}, 0, 0, 0},
		{"gray", color.RGBA{128, 128, 128, 255}, 0, 0, 128.0 / 255.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := createInMemoryImage(10, 10, tt.color)
			result, err := SampleColor(img, 5, 5)
			if err != nil {
				t.Fatalf("SampleColor failed: %v", err)
			}

			if math.Abs(result.HSL.H-tt.wantH) > 0.5 {
				t.Errorf("H: got %v, want %v", result.HSL.H, tt.wantH)
			}
			if math.Abs(result.HSL.S-tt.wantS) > 0.01 {
				t.Errorf("S: got %v, want %v", result.HSL.S, tt.wantS)
			}
			if math.Abs(result.HSL.L-tt.wantL) > 0.01 {
				t.Errorf("L: got %v, want %v", result.HSL.L, tt.wantL)
			}
		})
	}
}

func TestSampleColor_OutOfBounds(t *testing.T) {
	img := createInMemoryImage(100, 100, color.RGBA{255, 0, 0, 255})

	tests := []struct {
		name string
		x, y int
	}{
		{"negative x", -1, 50},
		{"negative y", 50, -1},
		{"x too large", 100, 50},
		{"y too large", 50, 100},
		{"both too large", 100, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := SampleColor(img, tt.x, tt.y)
			if err == nil {
				t.Error("SampleColor should fail for out-of-bounds coordinates")
			}
		})
	}
}

func TestSampleColorsMulti(t *testing.T) {
	img := createPatternImage(100, 100)

	points := []LabeledPoint{
		{X: 25, Y: 25, Label: "top-left"},
		{X: 75, Y: 25, Label: "top-right"},
		{X: 25, Y: 75}, // no label
		{X: 75, Y: 75, Label: "bottom-right"},
	}

	result, err := SampleColorsMulti(img, points)
	if err != nil {
		t.Fatalf("SampleColorsMulti failed: %v", err)
	}

	if len(result.Samples) != 4 {
		t.Fatalf("got %d samples, want 4", len(result.Samples))
	}

	wantHex := []string{"#FF0000", "#00FF00", "#0000FF", "#FFFFFF"}
	for i, want := range wantHex {
		if result.Samples[i].Color.Hex != want {
			t.Errorf("sample %d: got %s, want %s", i, result.Samples[i].Color.Hex, want)
		}
	}

	if result.Samples[0].Label != "top-left" {
		t.Errorf("sample 0 label: got %q, want top-left", result.Samples[0].Label)
	}
	if result.Samples[2].Label != "" {
		t.Errorf("sample 2 label: got %q, want empty", result.Samples[2].Label)
	}
}

func TestSampleColorsMulti_FailsAtomically(t *testing.T) {
	img := createPatternImage(100, 100)

	points := []LabeledPoint{
		{X: 25, Y: 25},
		{X: 500, Y: 500}, // out of bounds
	}

	result, err := SampleColorsMulti(img, points)
	if err == nil {
		t.Error("SampleColorsMulti should fail when any point is out of bounds")
	}
	if result != nil {
		t.Error("no partial results should be returned on failure")
	}
}
