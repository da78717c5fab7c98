// Package server implements the MCP (Model Context Protocol) server for
// color conversion and image color analysis tools.
//
// The server speaks JSON-RPC 2.0 over stdio: one request per line on stdin,
// one response per line on stdout. Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Conversion:
//   - color_rgb_to_hsl: RGB bytes to HSL (hue in degrees, fractions for S/L)
//   - color_hsl_to_rgb: HSL back to RGB bytes
//
// Image information:
//   - image_load: Load an image and report its metadata
//
// Sampling:
//   - image_sample_color: Color at a pixel
//   - image_sample_colors_multi: Colors at several pixels
//
// Analysis and recoloring:
//   - image_dominant_colors: Palette extraction with perceptual merging
//   - image_adjust_hsl: Hue rotation and saturation/lightness scaling
//
// # Image Caching
//
// Loaded images are cached in memory by path and reused across tool calls
// for the lifetime of the server process.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with code
// -32000 and the Go error string as data; malformed parameters produce
// -32602 and unknown methods -32601. The pure color conversions themselves
// never fail: validation only guards values JSON cannot express as bytes.
package server
