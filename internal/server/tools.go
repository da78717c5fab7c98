package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Conversion
		{
			Name:        "color_rgb_to_hsl",
			Description: "Convert an RGB color (three 0-255 channels) to HSL. Returns the color in hex, RGB, RGBA and HSL representations.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"r": map[string]interface{}{
						"type":        "integer",
						"description": "Red channel (0-255)",
					},
					"g": map[string]interface{}{
						"type":        "integer",
						"description": "Green channel (0-255)",
					},
					"b": map[string]interface{}{
						"type":        "integer",
						"description": "Blue channel (0-255)",
					},
				},
				"required": []string{"r", "g", "b"},
			},
		},
		{
			Name:        "color_hsl_to_rgb",
			Description: "Convert an HSL color to RGB. Hue outside [0,360) wraps around the circle; saturation and lightness outside [0,1] are clamped.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"h": map[string]interface{}{
						"type":        "number",
						"description": "Hue in degrees (nominally 0-360)",
					},
					"s": map[string]interface{}{
						"type":        "number",
						"description": "Saturation fraction (0-1)",
					},
					"l": map[string]interface{}{
						"type":        "number",
						"description": "Lightness fraction (0-1)",
					},
				},
				"required": []string{"h", "s", "l"},
			},
		},

		// Image Information
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions, format, color depth, alpha presence and file size. Caches the image for subsequent operations.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
				},
				"required": []string{"path"},
			},
		},

		// Sampling
		{
			Name:        "image_sample_color",
			Description: "Get the exact color at a specific pixel coordinate, in hex, RGB, RGBA and HSL representations.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "X coordinate (0-based, from left)",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Y coordinate (0-based, from top)",
					},
				},
				"required": []string{"path", "x", "y"},
			},
		},
		{
			Name:        "image_sample_colors_multi",
			Description: "Get color values at multiple pixel coordinates in a single call.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"points": map[string]interface{}{
						"type": "array",
						"items": map[string]interface{}{
							"type": "object",
							"properties": map[string]interface{}{
								"x":     map[string]interface{}{"type": "integer"},
								"y":     map[string]interface{}{"type": "integer"},
								"label": map[string]interface{}{"type": "string", "description": "Optional label for this point"},
							},
							"required": []string{"x", "y"},
						},
						"description": "Array of points to sample",
					},
				},
				"required": []string{"path", "points"},
			},
		},

		// Analysis and Recoloring
		{
			Name:        "image_dominant_colors",
			Description: "Extract the N most dominant colors from an image. Perceptually similar shades are merged into one palette entry; each entry carries hex, RGB and HSL plus its pixel share.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"count": map[string]interface{}{
						"type":        "integer",
						"description": "Number of dominant colors to return (default 5)",
						"default":     5,
					},
					"region": map[string]interface{}{
						"type": "object",
						"properties": map[string]interface{}{
							"x1": map[string]interface{}{"type": "integer"},
							"y1": map[string]interface{}{"type": "integer"},
							"x2": map[string]interface{}{"type": "integer"},
							"y2": map[string]interface{}{"type": "integer"},
						},
						"description": "Optional region to analyze. If omitted, analyzes entire image.",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_adjust_hsl",
			Description: "Recolor an image in HSL space: rotate hue and scale saturation/lightness. Returns the result as base64-encoded PNG.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"hue_shift": map[string]interface{}{
						"type":        "number",
						"description": "Degrees to rotate the hue (wraps around 360). Default 0",
						"default":     0,
					},
					"saturation_scale": map[string]interface{}{
						"type":        "number",
						"description": "Saturation multiplier; result clamps to [0,1]. 0 means unset (default 1.0); use a tiny value like 0.001 to desaturate fully",
						"default":     1.0,
					},
					"lightness_scale": map[string]interface{}{
						"type":        "number",
						"description": "Lightness multiplier; result clamps to [0,1]. 0 means unset (default 1.0)",
						"default":     1.0,
					},
					"scale": map[string]interface{}{
						"type":        "number",
						"description": "Optional output size factor (e.g., 0.25 for a small preview). Default 1.0",
						"default":     1.0,
					},
				},
				"required": []string{"path"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
