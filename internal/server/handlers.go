package server

import (
	"encoding/json"
	"fmt"

	"github.com/ironsheep/color-tools-mcp/internal/hsl"
	"github.com/ironsheep/color-tools-mcp/internal/imaging"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "color_rgb_to_hsl").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified
// tool. The result is wrapped in MCP's content format:
//
//	{"content": [{"type": "text", "text": "<JSON result>"}]}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Conversion
	case "color_rgb_to_hsl":
		return s.handleColorRGBToHSL(args)
	case "color_hsl_to_rgb":
		return s.handleColorHSLToRGB(args)

	// Image Information
	case "image_load":
		return s.handleImageLoad(args)

	// Sampling
	case "image_sample_color":
		return s.handleImageSampleColor(args)
	case "image_sample_colors_multi":
		return s.handleImageSampleColorsMulti(args)

	// Analysis and Recoloring
	case "image_dominant_colors":
		return s.handleImageDominantColors(args)
	case "image_adjust_hsl":
		return s.handleImageAdjustHSL(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// On marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// === Conversion Handlers ===

type colorRGBToHSLArgs struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

func (s *Server) handleColorRGBToHSL(args json.RawMessage) (interface{}, error) {
	var a colorRGBToHSLArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	// The conversion itself accepts any byte; JSON just has no way to say
	// "byte", so guard the integer range here.
	for _, ch := range []struct {
		name  string
		value int
	}{{"r", a.R}, {"g", a.G}, {"b", a.B}} {
		if ch.value < 0 || ch.value > 255 {
			return nil, fmt.Errorf("channel %s=%d out of range [0,255]", ch.name, ch.value)
		}
	}
	return imaging.DescribeRGB(uint8(a.R), uint8(a.G), uint8(a.B)), nil
}

type colorHSLToRGBArgs struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	L float64 `json:"l"`
}

func (s *Server) handleColorHSLToRGB(args json.RawMessage) (interface{}, error) {
	var a colorHSLToRGBArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	// Any triple converts; out-of-range hue wraps and saturation/lightness
	// clamp, mirroring the conversion core.
	r, g, b := hsl.HSL{H: a.H, S: a.S, L: a.L}.ToRGB()
	return imaging.DescribeRGB(r, g, b), nil
}

// === Image Information Handlers ===

type imageLoadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}

// === Sampling Handlers ===

type imageSampleColorArgs struct {
	Path string `json:"path"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
}

func (s *Server) handleImageSampleColor(args json.RawMessage) (interface{}, error) {
	var a imageSampleColorArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.SampleColor(img, a.X, a.Y)
}

type imageSampleColorsMultiArgs struct {
	Path   string `json:"path"`
	Points []struct {
		X     int    `json:"x"`
		Y     int    `json:"y"`
		Label string `json:"label,omitempty"`
	} `json:"points"`
}

func (s *Server) handleImageSampleColorsMulti(args json.RawMessage) (interface{}, error) {
	var a imageSampleColorsMultiArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	points := make([]imaging.LabeledPoint, len(a.Points))
	for i, p := range a.Points {
		points[i] = imaging.LabeledPoint{X: p.X, Y: p.Y, Label: p.Label}
	}
	return imaging.SampleColorsMulti(img, points)
}

// === Analysis and Recoloring Handlers ===

type imageDominantColorsArgs struct {
	Path   string `json:"path"`
	Count  int    `json:"count"`
	Region *struct {
		X1 int `json:"x1"`
		Y1 int `json:"y1"`
		X2 int `json:"x2"`
		Y2 int `json:"y2"`
	} `json:"region,omitempty"`
}

func (s *Server) handleImageDominantColors(args json.RawMessage) (interface{}, error) {
	var a imageDominantColorsArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Count <= 0 {
		a.Count = 5
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	var region *imaging.Region
	if a.Region != nil {
		region = &imaging.Region{X1: a.Region.X1, Y1: a.Region.Y1, X2: a.Region.X2, Y2: a.Region.Y2}
	}
	return imaging.DominantColors(img, a.Count, region)
}

type imageAdjustHSLArgs struct {
	Path            string  `json:"path"`
	HueShift        float64 `json:"hue_shift"`
	SaturationScale float64 `json:"saturation_scale"`
	LightnessScale  float64 `json:"lightness_scale"`
	Scale           float64 `json:"scale"`
}

func (s *Server) handleImageAdjustHSL(args json.RawMessage) (interface{}, error) {
	var a imageAdjustHSLArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.SaturationScale == 0 {
		a.SaturationScale = 1.0
	}
	if a.LightnessScale == 0 {
		a.LightnessScale = 1.0
	}
	if a.Scale == 0 {
		a.Scale = 1.0
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.AdjustHSL(img, a.HueShift, a.SaturationScale, a.LightnessScale, a.Scale)
}
