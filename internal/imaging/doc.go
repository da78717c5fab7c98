// Package imaging applies the HSL conversion core to whole images: pixel
// sampling, palette extraction and HSL-space recoloring, plus the image
// loading and caching that backs them.
//
// # Coordinate System
//
// All pixel coordinates are 0-based with the origin at the top-left corner;
// X increases rightward and Y downward. Regions use an inclusive top-left
// corner and an exclusive bottom-right corner.
//
// # Color Representation
//
// Sampled colors are reported in several formats at once (see ColorResult):
// hex "#RRGGBB", 8-bit RGB and RGBA components, and HSL with hue in degrees
// and saturation/lightness as fractions. 16-bit source images are scaled
// down to 8 bits per channel before conversion.
//
// # Thread Safety
//
// ImageCache is safe for concurrent use. The analysis functions are
// stateless and can run concurrently on different images; AdjustHSL
// internally processes rows in parallel.
package imaging
