package server

import (
	"encoding/json"
	"fmt"

	"github.com/anthonynsimon/bild/histogram"

	"github.com/ironsheep/color-analysis-mcp/internal/colorspace"
	"github.com/ironsheep/color-analysis-mcp/internal/imaging"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_load", "image_greenery").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
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
//
// Each tool handler:
//  1. Unmarshals arguments from JSON
//  2. Applies default values for optional parameters
//  3. Loads the RGB image from cache
//  4. Calls the appropriate imaging function
//  5. Returns the result or error
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Basic Image Information
	case "image_load":
		return s.handleImageLoad(args)
	case "image_dimensions":
		return s.handleImageDimensions(args)

	// Color Operations
	case "image_sample_pixel":
		return s.handleImageSamplePixel(args)
	case "image_histogram":
		return s.handleImageHistogram(args)

	// Enhancement
	case "image_contrast_stretch":
		return s.handleImageContrastStretch(args)
	case "image_equalize_intensity":
		return s.handleImageEqualizeIntensity(args)

	// Vegetation Analysis
	case "image_greenery":
		return s.handleImageGreenery(args)
	case "image_vegetation_mask":
		return s.handleImageVegetationMask(args)

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

// loadRegion loads an image from the cache and crops it to a named region.
// An empty region selects the whole image.
func (s *Server) loadRegion(path, region string) (*imaging.Image[colorspace.RGB], error) {
	img, err := s.cache.Load(path)
	if err != nil {
		return nil, err
	}
	if region == "" || region == "full" {
		return img, nil
	}
	return imaging.CropNamed(img, region)
}

// === Basic Image Information Handlers ===

type imagePathArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imagePathArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}

func (s *Server) handleImageDimensions(args json.RawMessage) (interface{}, error) {
	var a imagePathArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.GetDimensions(s.cache, a.Path)
}

// === Color Operation Handlers ===

type imageSamplePixelArgs struct {
	Path string `json:"path"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
}

func (s *Server) handleImageSamplePixel(args json.RawMessage) (interface{}, error) {
	var a imageSamplePixelArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.SamplePixel(img, a.X, a.Y)
}

type imageHistogramArgs struct {
	Path    string `json:"path"`
	Channel string `json:"channel"`
	Region  string `json:"region"`
	Render  bool   `json:"render"`
}

// HistogramChannel is one table of an image_histogram result.
type HistogramChannel struct {
	Name string `json:"name"`
	Bins []int  `json:"bins"`

	// Min and Max are the lowest and highest occupied bins (0 when empty).
	Min int `json:"min"`
	Max int `json:"max"`

	// Chart is a rendered bar chart of Bins, present when requested.
	Chart *imaging.RenderResult `json:"chart,omitempty"`
}

// HistogramResult is the result of the image_histogram tool.
type HistogramResult struct {
	Channel     string             `json:"channel"`
	Region      string             `json:"region,omitempty"`
	TotalPixels int                `json:"total_pixels"`
	Channels    []HistogramChannel `json:"channels"`
}

func (s *Server) handleImageHistogram(args json.RawMessage) (interface{}, error) {
	var a imageHistogramArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Channel == "" {
		a.Channel = "rgb"
	}
	img, err := s.loadRegion(a.Path, a.Region)
	if err != nil {
		return nil, err
	}

	var tables []HistogramChannel
	switch a.Channel {
	case "rgb":
		h := imaging.ChannelHistogram(img)
		tables = []HistogramChannel{
			newHistogramChannel("red", h.Red),
			newHistogramChannel("green", h.Green),
			newHistogramChannel("blue", h.Blue),
		}
	case "intensity":
		h := imaging.IntensityHistogram(imaging.ToHSI(img))
		tables = []HistogramChannel{newHistogramChannel("intensity", h)}
	case "lab_a":
		h := imaging.AHistogram(imaging.ToLab(img))
		tables = []HistogramChannel{newHistogramChannel("a", h)}
	default:
		return nil, fmt.Errorf("unknown channel: %s", a.Channel)
	}

	if a.Render {
		for i := range tables {
			chart, err := imaging.RenderHistogram(histogram.Histogram{Bins: tables[i].Bins})
			if err != nil {
				return nil, err
			}
			tables[i].Chart = chart
		}
	}

	return &HistogramResult{
		Channel:     a.Channel,
		Region:      a.Region,
		TotalPixels: img.Len(),
		Channels:    tables,
	}, nil
}

func newHistogramChannel(name string, h histogram.Histogram) HistogramChannel {
	lo, hi, _ := imaging.MinMax(h)
	return HistogramChannel{
		Name: name,
		Bins: h.Bins,
		Min:  lo,
		Max:  hi,
	}
}

// === Enhancement Handlers ===

func (s *Server) handleImageContrastStretch(args json.RawMessage) (interface{}, error) {
	var a imagePathArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.EncodePNG(imaging.ContrastStretch(img))
}

func (s *Server) handleImageEqualizeIntensity(args json.RawMessage) (interface{}, error) {
	var a imagePathArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.EncodePNG(imaging.EqualizeIntensity(imaging.ToHSI(img)))
}

// === Vegetation Analysis Handlers ===

type imageGreeneryArgs struct {
	Path   string `json:"path"`
	Region string `json:"region"`
}

func (s *Server) handleImageGreenery(args json.RawMessage) (interface{}, error) {
	var a imageGreeneryArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.loadRegion(a.Path, a.Region)
	if err != nil {
		return nil, err
	}
	result := imaging.MeasureGreenery(img)
	return &result, nil
}

type imageVegetationMaskArgs struct {
	Path      string `json:"path"`
	MaskColor string `json:"mask_color"`
}

// VegetationMaskResult is the result of the image_vegetation_mask tool.
type VegetationMaskResult struct {
	imaging.RenderResult
	Greenery imaging.GreeneryResult `json:"greenery"`
}

func (s *Server) handleImageVegetationMask(args json.RawMessage) (interface{}, error) {
	var a imageVegetationMaskArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.MaskColor == "" {
		a.MaskColor = "#000000"
	}
	fill, err := imaging.ParseColor(a.MaskColor)
	if err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	rendered, err := imaging.EncodePNG(imaging.MaskVegetationWith(img, fill))
	if err != nil {
		return nil, err
	}
	return &VegetationMaskResult{
		RenderResult: *rendered,
		Greenery:     imaging.MeasureGreenery(img),
	}, nil
}
