package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
	"math"

	"github.com/anthonynsimon/bild/parallel"
	"github.com/disintegration/imaging"

	"github.com/ironsheep/color-tools-mcp/internal/hsl"
)

// AdjustResult contains the adjusted image as base64-encoded PNG.
type AdjustResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// AdjustHSL recolors an image in HSL space.
//
// Every pixel is converted to HSL, transformed, and converted back:
//   - hueShift rotates the hue by that many degrees (wraps around 360)
//   - satScale multiplies saturation (result clamped to [0,1])
//   - lightScale multiplies lightness (result clamped to [0,1])
//
// Grays stay gray under any hue shift since their saturation is zero. The
// alpha channel passes through untouched. A scale factor other than 1
// resizes the output, which keeps response payloads small for previews.
func AdjustHSL(img image.Image, hueShift, satScale, lightScale, scale float64) (*AdjustResult, error) {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	out := image.NewRGBA(image.Rect(0, 0, w, h))

	// Rows are independent, so split them across the available cores.
	parallel.Line(h, func(start, end int) {
		for y := start; y < end; y++ {
			for x := 0; x < w; x++ {
				r16, g16, b16, a16 := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()

				c := hsl.FromRGB(uint8(r16>>8), uint8(g16>>8), uint8(b16>>8))
				c.H = math.Mod(c.H+hueShift, 360)
				if c.H < 0 {
					c.H += 360
				}
				c.S = clamp01(c.S * satScale)
				c.L = clamp01(c.L * lightScale)
				r, g, b := c.ToRGB()

				i := out.PixOffset(x, y)
				out.Pix[i+0] = r
				out.Pix[i+1] = g
				out.Pix[i+2] = b
				out.Pix[i+3] = uint8(a16 >> 8)
			}
		}
	})

	var result image.Image = out
	if scale != 1.0 && scale > 0 {
		newW := int(float64(w) * scale)
		newH := int(float64(h) * scale)
		if newW < 1 || newH < 1 {
			return nil, fmt.Errorf("scale %v collapses %dx%d image to zero size", scale, w, h)
		}
		result = imaging.Resize(out, newW, newH, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, result); err != nil {
		return nil, fmt.Errorf("failed to encode adjusted image: %w", err)
	}

	return &AdjustResult{
		Width:       result.Bounds().Dx(),
		Height:      result.Bounds().Dy(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}

func clamp01(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
