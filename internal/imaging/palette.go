package imaging

import (
	"image"
	"sort"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/color-tools-mcp/internal/hsl"
)

// quantizeStep groups channel values into buckets of this width before
// counting, so that colors within a few units of each other land in the
// same bucket.
const quantizeStep = 16

// paletteMergeDistance is the CIE Lab distance below which two quantized
// buckets are considered the same palette entry. 0.1 is roughly "same color
// under slightly different lighting".
const paletteMergeDistance = 0.1

// Region is a rectangle within an image: (X1,Y1) inclusive top-left,
// (X2,Y2) exclusive bottom-right.
type Region struct {
	X1 int
	Y1 int
	X2 int
	Y2 int
}

// ColorFrequency is one palette entry with its share of the analyzed pixels.
type ColorFrequency struct {
	Hex        string   `json:"hex"`
	Percentage float64  `json:"percentage"` // share of pixels, 0-100
	RGB        RGBColor `json:"rgb"`
	HSL        hsl.HSL  `json:"hsl"`
}

// DominantColorsResult holds the extracted palette, most common color first.
type DominantColorsResult struct {
	Colors []ColorFrequency `json:"colors"`
}

// DominantColors extracts the up-to-count most common colors from an image
// or a region of it.
//
// Pixels are first quantized (see quantizeStep) and counted, then buckets
// that are perceptually close are merged using the CIE Lab distance, so a
// photo's sky does not fill the whole palette with near-identical blues.
// When region is nil the entire image is analyzed.
func DominantColors(img image.Image, count int, region *Region) (*DominantColorsResult, error) {
	bounds := img.Bounds()
	if region != nil {
		bounds = image.Rect(region.X1, region.Y1, region.X2, region.Y2)
	}

	counts := make(map[RGBColor]int)
	totalPixels := 0

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			key := RGBColor{
				R: uint8(r>>8) / quantizeStep * quantizeStep,
				G: uint8(g>>8) / quantizeStep * quantizeStep,
				B: uint8(b>>8) / quantizeStep * quantizeStep,
			}
			counts[key]++
			totalPixels++
		}
	}

	merged := mergeBuckets(counts)

	sort.Slice(merged, func(i, j int) bool {
		if merged[i].count != merged[j].count {
			return merged[i].count > merged[j].count
		}
		// Deterministic order for equal counts.
		return lessRGB(merged[i].rgb, merged[j].rgb)
	})

	// Non-positive counts request an unbounded palette rather than a slice
	// panic; the tool layer applies its own default.
	if count > 0 && len(merged) > count {
		merged = merged[:count]
	}

	colors := make([]ColorFrequency, 0, len(merged))
	for _, b := range merged {
		c := DescribeRGB(b.rgb.R, b.rgb.G, b.rgb.B)
		colors = append(colors, ColorFrequency{
			Hex:        c.Hex,
			Percentage: float64(b.count) / float64(totalPixels) * 100,
			RGB:        c.RGB,
			HSL:        c.HSL,
		})
	}

	return &DominantColorsResult{Colors: colors}, nil
}

type paletteBucket struct {
	rgb   RGBColor
	count int
}

// mergeBuckets folds perceptually close quantized buckets into single
// entries, keeping the more frequent bucket's color as the representative.
func mergeBuckets(counts map[RGBColor]int) []paletteBucket {
	buckets := make([]paletteBucket, 0, len(counts))
	for rgb, n := range counts {
		buckets = append(buckets, paletteBucket{rgb: rgb, count: n})
	}

	// Most frequent first, so representatives absorb their neighbors.
	sort.Slice(buckets, func(i, j int) bool {
		if buckets[i].count != buckets[j].count {
			return buckets[i].count > buckets[j].count
		}
		return lessRGB(buckets[i].rgb, buckets[j].rgb)
	})

	merged := make([]paletteBucket, 0, len(buckets))
	labs := make([]colorful.Color, 0, len(buckets))

	for _, b := range buckets {
		c := toColorful(b.rgb)

		absorbed := false
		for i := range merged {
			if c.DistanceLab(labs[i]) < paletteMergeDistance {
				merged[i].count += b.count
				absorbed = true
				break
			}
		}
		if !absorbed {
			merged = append(merged, b)
			labs = append(labs, c)
		}
	}

	return merged
}

func toColorful(c RGBColor) colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}

func lessRGB(a, b RGBColor) bool {
	if a.R != b.R {
		return a.R < b.R
	}
	if a.G != b.G {
		return a.G < b.G
	}
	return a.B < b.B
}
