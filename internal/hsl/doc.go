// Package hsl implements conversion between 24-bit RGB and the HSL
// (Hue, Saturation, Lightness) color space.
//
// HSL is a cylindrical view of the RGB cube: hue is the angle around the
// color wheel in degrees, saturation is the fraction of chromatic intensity,
// and lightness runs from black (0) to white (1). This makes it the natural
// space for palette extraction and color adjustments, where "rotate the hue"
// or "wash out the saturation" are single-field operations.
//
// # Conversions
//
// FromRGB converts three 8-bit channel values to an HSL value. Hue is
// reported to centi-degree precision; grays (including black and white)
// always come back as H=0, S=0.
//
// HSL.ToRGB converts back to three 8-bit channel values. The two directions
// are exact inverses up to rounding: a round trip stays within 2 units on
// every channel.
//
// # Error Handling
//
// There are no error conditions. Every 3-byte input is a valid RGB color,
// and ToRGB accepts any HSL triple: hue wraps around the circle and
// out-of-range saturation or lightness produce defined (clamped) output
// rather than a failure.
//
// # Thread Safety
//
// Both conversions are pure functions over value types and are safe for
// unrestricted concurrent use.
package hsl
