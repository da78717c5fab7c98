package imaging

import (
	"fmt"
	"image"

	"github.com/ironsheep/color-tools-mcp/internal/hsl"
)

// RGBColor holds the three 8-bit channels of an RGB color.
type RGBColor struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
}

// RGBAColor is RGBColor plus an 8-bit alpha channel
// (0 = fully transparent, 255 = fully opaque).
type RGBAColor struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
	A uint8 `json:"a"`
}

// ColorResult carries one color in every representation the server reports:
//   - Hex: "#RRGGBB" for CSS/web usage (alpha excluded)
//   - RGB/RGBA: 8-bit components
//   - HSL: hue in degrees, saturation and lightness as fractions
type ColorResult struct {
	Hex  string    `json:"hex"`
	RGB  RGBColor  `json:"rgb"`
	RGBA RGBAColor `json:"rgba"`
	HSL  hsl.HSL   `json:"hsl"`
}

// DescribeRGB builds the multi-representation view of an opaque RGB color.
// This backs the color_rgb_to_hsl and color_hsl_to_rgb tools as well as
// pixel sampling.
func DescribeRGB(r, g, b uint8) *ColorResult {
	return &ColorResult{
		Hex:  fmt.Sprintf("#%02X%02X%02X", r, g, b),
		RGB:  RGBColor{R: r, G: g, B: b},
		RGBA: RGBAColor{R: r, G: g, B: b, A: 255},
		HSL:  hsl.FromRGB(r, g, b),
	}
}

// SampleColor extracts the color at pixel (x, y).
//
// Coordinates are 0-based with the origin at the top-left. For 16-bit
// images, channel values are scaled down to 8 bits. Returns an error when
// the coordinates fall outside the image bounds.
func SampleColor(img image.Image, x, y int) (*ColorResult, error) {
	bounds := img.Bounds()
	if x < bounds.Min.X || x >= bounds.Max.X || y < bounds.Min.Y || y >= bounds.Max.Y {
		return nil, fmt.Errorf("coordinates (%d,%d) outside image bounds", x, y)
	}

	r, g, b, a := img.At(x, y).RGBA()
	result := DescribeRGB(uint8(r>>8), uint8(g>>8), uint8(b>>8))
	result.RGBA.A = uint8(a >> 8)
	return result, nil
}

// LabeledPoint is a pixel coordinate with an optional caller-supplied label,
// used to identify individual samples in batch results.
type LabeledPoint struct {
	X     int
	Y     int
	Label string
}

// LabeledColorResult pairs a sampled color with the point it came from.
type LabeledColorResult struct {
	Label string      `json:"label,omitempty"`
	X     int         `json:"x"`
	Y     int         `json:"y"`
	Color ColorResult `json:"color"`
}

// MultiColorResult contains batch samples in input order.
type MultiColorResult struct {
	Samples []LabeledColorResult `json:"samples"`
}

// SampleColorsMulti samples several pixel coordinates in one pass.
//
// Any out-of-bounds point fails the whole call; no partial results are
// returned.
func SampleColorsMulti(img image.Image, points []LabeledPoint) (*MultiColorResult, error) {
	results := make([]LabeledColorResult, 0, len(points))

	for _, p := range points {
		c, err := SampleColor(img, p.X, p.Y)
		if err != nil {
			return nil, fmt.Errorf("failed to sample point (%d,%d): %w", p.X, p.Y, err)
		}
		results = append(results, LabeledColorResult{
			Label: p.Label,
			X:     p.X,
			Y:     p.Y,
			Color: *c,
		})
	}

	return &MultiColorResult{Samples: results}, nil
}
