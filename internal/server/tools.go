package server

import "github.com/ironsheep/color-analysis-mcp/internal/imaging"

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// pathProperty is the schema entry shared by every tool's path argument.
func pathProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Absolute path to the image file",
	}
}

// pathOnlySchema is the input schema for tools that take nothing but a path.
func pathOnlySchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"path": pathProperty(),
		},
		"required": []string{"path"},
	}
}

// regionProperty is the schema entry for the optional named-region argument.
func regionProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"enum":        imaging.RegionNames,
		"description": "Restrict the analysis to a named part of the image",
		"default":     "full",
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Basic Image Information
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions, format, transparency and file size. The decoded pixels are cached for subsequent operations.",
			InputSchema: pathOnlySchema(),
		},
		{
			Name:        "image_dimensions",
			Description: "Get the width and height of an image file.",
			InputSchema: pathOnlySchema(),
		},

		// Color Operations
		{
			Name:        "image_sample_pixel",
			Description: "Read one pixel and report it as hex, RGB, HSI and CIE L*a*b*, together with its vegetation index and classification.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
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
			Name:        "image_histogram",
			Description: "Compute 256-bin histograms of an image. 'rgb' returns one table per channel, 'intensity' bins HSI intensity scaled to 0-255, 'lab_a' bins the L*a*b* a component offset by 128.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"channel": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"rgb", "intensity", "lab_a"},
						"description": "Which histogram to compute",
						"default":     "rgb",
					},
					"region": regionProperty(),
					"render": map[string]interface{}{
						"type":        "boolean",
						"description": "Also return each table as a base64-encoded PNG bar chart",
						"default":     false,
					},
				},
				"required": []string{"path"},
			},
		},

		// Enhancement
		{
			Name:        "image_contrast_stretch",
			Description: "Stretch each RGB channel independently so its occupied range spans 0-255. Returns the result as base64-encoded PNG.",
			InputSchema: pathOnlySchema(),
		},
		{
			Name:        "image_equalize_intensity",
			Description: "Equalize the HSI intensity histogram while preserving hue and saturation. Returns the result as base64-encoded PNG.",
			InputSchema: pathOnlySchema(),
		},

		// Vegetation Analysis
		{
			Name:        "image_greenery",
			Description: "Classify every pixel with the weighted log-ratio vegetation index and report the percentage of vegetation pixels.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":   pathProperty(),
					"region": regionProperty(),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_vegetation_mask",
			Description: "Replace every non-vegetation pixel with a mask color, keep vegetation pixels unchanged, and return the masked image as base64-encoded PNG along with greenery statistics.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"mask_color": map[string]interface{}{
						"type":        "string",
						"description": "Fill color as hex (#RRGGBB) or a CSS color name",
						"default":     "#000000",
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
