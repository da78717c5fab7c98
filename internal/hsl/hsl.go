package hsl

import "math"

// HSL represents a color in HSL color space.
//
// The fields are plain values so callers (pipelines, tool handlers) can
// construct and inspect colors directly.
type HSL struct {
	H float64 `json:"h"` // Hue in degrees, [0,360). 0 when achromatic.
	S float64 `json:"s"` // Saturation fraction, 0 (gray) to 1 (fully saturated).
	L float64 `json:"l"` // Lightness fraction, 0 (black) to 1 (white).
}

// FromRGB converts 8-bit RGB channel values to HSL.
//
// Lightness is the mean of the largest and smallest normalized channels,
// saturation the chroma relative to lightness, and hue the angle found via
// the standard sector method. Hue is rounded to the nearest 1/100 degree to
// keep floating-point noise out of reported values.
func FromRGB(r, g, b uint8) HSL {
	rf := float64(r) / 255.0
	gf := float64(g) / 255.0
	bf := float64(b) / 255.0

	max := math.Max(rf, math.Max(gf, bf))
	min := math.Min(rf, math.Min(gf, bf))

	l := (max + min) / 2.0

	delta := max - min
	if delta == 0 {
		// Achromatic. Exact comparison is safe here: max and min are the
		// same channel value, produced by the same division.
		return HSL{H: 0, S: 0, L: l}
	}

	var s float64
	if l < 0.5 {
		s = delta / (max + min)
	} else {
		s = delta / (2.0 - max - min)
	}

	// Per-channel offsets feeding the sector formulas below.
	r2 := ((max-rf)/6.0 + delta/2.0) / delta
	g2 := ((max-gf)/6.0 + delta/2.0) / delta
	b2 := ((max-bf)/6.0 + delta/2.0) / delta

	// Which channel holds the max decides the sector. Case order gives the
	// red, green, blue tie-break.
	var h float64
	switch max {
	case rf:
		h = b2 - g2
	case gf:
		h = 1.0/3.0 + r2 - b2
	default:
		h = 2.0/3.0 + g2 - r2
	}

	// Single-step wraparound; the sector formulas never leave [-1,2).
	if h < 0 {
		h++
	} else if h > 1 {
		h--
	}

	return HSL{
		H: math.Round(h*360.0*100.0) / 100.0,
		S: s,
		L: l,
	}
}

// ToRGB converts the color to 8-bit RGB channel values.
//
// Inputs are not validated: hue wraps around the circle, and channel
// fractions are clamped to [0,1] before byte conversion, so any HSL triple
// produces a defined result.
func (c HSL) ToRGB() (r, g, b uint8) {
	if c.S == 0 {
		// Achromatic: hue is irrelevant, all channels carry the lightness.
		v := toByte(c.L)
		return v, v, v
	}

	h := c.H / 360.0

	var q float64
	if c.L < 0.5 {
		q = c.L * (1.0 + c.S)
	} else {
		q = c.L + c.S - c.L*c.S
	}
	p := 2.0*c.L - q

	return toByte(hueToRGB(p, q, h+1.0/3.0)),
		toByte(hueToRGB(p, q, h)),
		toByte(hueToRGB(p, q, h-1.0/3.0))
}

// hueToRGB computes one channel's intensity from the chroma bounds p and q
// and a hue fraction t. The piecewise form is the exact inverse of the
// sector formulas in FromRGB, which is what keeps round trips within
// rounding error.
func hueToRGB(p, q, t float64) float64 {
	// t arrives offset by up to 1/3, so one wrap step is enough.
	if t < 0 {
		t++
	} else if t > 1 {
		t--
	}

	switch {
	case t < 1.0/6.0:
		return p + (q-p)*6.0*t
	case t < 1.0/2.0:
		return q
	case t < 2.0/3.0:
		return p + (q-p)*(2.0/3.0-t)*6.0
	default:
		return p
	}
}

// toByte maps a channel fraction to an 8-bit value, rounding to nearest and
// saturating outside [0,1].
func toByte(f float64) uint8 {
	if f <= 0 {
		return 0
	}
	if f >= 1 {
		return 255
	}
	return uint8(math.Round(f * 255.0))
}
