package server

import (
	"testing"
)

func TestGetToolDefinitions(t *testing.T) {
	tools := GetToolDefinitions()

	if len(tools) == 0 {
		t.Fatal("GetToolDefinitions returned empty slice")
	}

	expectedTools := []string{
		"image_load",
		"image_dimensions",
		"image_sample_pixel",
		"image_histogram",
		"image_contrast_stretch",
		"image_equalize_intensity",
		"image_greenery",
		"image_vegetation_mask",
	}

	toolMap := make(map[string]Tool)
	for _, tool := range tools {
		toolMap[tool.Name] = tool
	}

	// Check all expected tools exist
	for _, name := range expectedTools {
		if _, ok := toolMap[name]; !ok {
			t.Errorf("Expected tool %s not found", name)
		}
	}
}

func TestToolDefinitions_Structure(t *testing.T) {
	tools := GetToolDefinitions()

	for _, tool := range tools {
		t.Run(tool.Name, func(t *testing.T) {
			// Name should not be empty
			if tool.Name == "" {
				t.Error("Tool name is empty")
			}

			// Description should not be empty
			if tool.Description == "" {
				t.Error("Tool description is empty")
			}

			// InputSchema should exist
			if tool.InputSchema == nil {
				t.Error("Tool InputSchema is nil")
			}

			// InputSchema should be an object type
			schemaType, ok := tool.InputSchema["type"]
			if !ok {
				t.Error("InputSchema missing 'type' field")
			}
			if schemaType != "object" {
				t.Errorf("InputSchema type: got %v, want 'object'", schemaType)
			}

			// InputSchema should have properties
			props, ok := tool.InputSchema["properties"]
			if !ok {
				t.Error("InputSchema missing 'properties' field")
			}
			if props == nil {
				t.Error("InputSchema properties is nil")
			}
		})
	}
}

func TestToolDefinitions_RequiredPath(t *testing.T) {
	// Every tool operates on an image file
	toolsRequiringPath := []string{
		"image_load",
		"image_dimensions",
		"image_sample_pixel",
		"image_histogram",
		"image_contrast_stretch",
		"image_equalize_intensity",
		"image_greenery",
		"image_vegetation_mask",
	}

	tools := GetToolDefinitions()
	toolMap := make(map[string]Tool)
	for _, tool := range tools {
		toolMap[tool.Name] = tool
	}

	for _, name := range toolsRequiringPath {
		tool, ok := toolMap[name]
		if !ok {
			t.Errorf("Tool %s not found", name)
			continue
		}

		t.Run(name, func(t *testing.T) {
			required, ok := tool.InputSchema["required"]
			if !ok {
				t.Error("InputSchema missing 'required' field")
				return
			}

			requiredList, ok := required.([]string)
			if !ok {
				t.Error("'required' should be a string slice")
				return
			}

			hasPath := false
			for _, r := range requiredList {
				if r == "path" {
					hasPath = true
					break
				}
			}

			if !hasPath {
				t.Error("Tool should require 'path' parameter")
			}
		})
	}
}

func TestToolDefinitions_SamplePixelCoordinates(t *testing.T) {
	tools := GetToolDefinitions()

	var sampleTool Tool
	for _, tool := range tools {
		if tool.Name == "image_sample_pixel" {
			sampleTool = tool
			break
		}
	}

	if sampleTool.Name == "" {
		t.Fatal("image_sample_pixel tool not found")
	}

	required, ok := sampleTool.InputSchema["required"].([]string)
	if !ok {
		t.Fatal("required should be a string slice")
	}

	expectedRequired := map[string]bool{
		"path": true,
		"x":    true,
		"y":    true,
	}

	for _, r := range required {
		delete(expectedRequired, r)
	}

	for missing := range expectedRequired {
		t.Errorf("image_sample_pixel should require '%s' parameter", missing)
	}
}

func TestToolDefinitions_HistogramChannels(t *testing.T) {
	tools := GetToolDefinitions()

	var tool Tool
	for _, tt := range tools {
		if tt.Name == "image_histogram" {
			tool = tt
			break
		}
	}

	if tool.Name == "" {
		t.Fatal("image_histogram tool not found")
	}

	props, ok := tool.InputSchema["properties"].(map[string]interface{})
	if !ok {
		t.Fatal("properties should be a map")
	}

	channelProp, ok := props["channel"].(map[string]interface{})
	if !ok {
		t.Fatal("channel property should exist and be a map")
	}

	enum, ok := channelProp["enum"].([]string)
	if !ok {
		t.Fatal("channel should have enum")
	}

	enumMap := make(map[string]bool)
	for _, e := range enum {
		enumMap[e] = true
	}

	for _, channel := range []string{"rgb", "intensity", "lab_a"} {
		if !enumMap[channel] {
			t.Errorf("Expected channel '%s' not in enum", channel)
		}
	}
}

func TestToolDefinitions_OptionalDefaults(t *testing.T) {
	tools := GetToolDefinitions()

	// Tools with optional parameters that should have defaults
	toolDefaults := map[string]map[string]interface{}{
		"image_histogram":       {"channel": "rgb", "render": false, "region": "full"},
		"image_greenery":        {"region": "full"},
		"image_vegetation_mask": {"mask_color": "#000000"},
	}

	toolMap := make(map[string]Tool)
	for _, tool := range tools {
		toolMap[tool.Name] = tool
	}

	for toolName, expectedDefaults := range toolDefaults {
		tool, ok := toolMap[toolName]
		if !ok {
			t.Errorf("Tool %s not found", toolName)
			continue
		}

		props, ok := tool.InputSchema["properties"].(map[string]interface{})
		if !ok {
			t.Errorf("%s: properties should be a map", toolName)
			continue
		}

		for paramName, expectedDefault := range expectedDefaults {
			param, ok := props[paramName].(map[string]interface{})
			if !ok {
				t.Errorf("%s.%s: parameter not found or not a map", toolName, paramName)
				continue
			}

			actualDefault, ok := param["default"]
			if !ok {
				t.Errorf("%s.%s: missing default value", toolName, paramName)
				continue
			}

			// Compare defaults (handle type differences)
			switch expected := expectedDefault.(type) {
			case float64:
				actual, ok := actualDefault.(float64)
				if !ok || actual != expected {
					t.Errorf("%s.%s: default got %v, want %v", toolName, paramName, actualDefault, expected)
				}
			case int:
				// JSON numbers are float64
				actual, ok := actualDefault.(int)
				if !ok {
					actualFloat, ok := actualDefault.(float64)
					if !ok || int(actualFloat) != expected {
						t.Errorf("%s.%s: default got %v, want %v", toolName, paramName, actualDefault, expected)
					}
				} else if actual != expected {
					t.Errorf("%s.%s: default got %v, want %v", toolName, paramName, actualDefault, expected)
				}
			case string:
				actual, ok := actualDefault.(string)
				if !ok || actual != expected {
					t.Errorf("%s.%s: default got %v, want %v", toolName, paramName, actualDefault, expected)
				}
			case bool:
				actual, ok := actualDefault.(bool)
				if !ok || actual != expected {
					t.Errorf("%s.%s: default got %v, want %v", toolName, paramName, actualDefault, expected)
				}
			}
		}
	}
}

func TestHandleToolsList(t *testing.T) {
	s := New()
	req := &MCPRequest{
		JSONRPC: "2.0",
		ID:      1,
	}

	resp := s.handleToolsList(req)

	if resp == nil {
		t.Fatal("handleToolsList returned nil")
	}
	if resp.Error != nil {
		t.Fatalf("Unexpected error: %v", resp.Error)
	}

	result, ok := resp.Result.(map[string]interface{})
	if !ok {
		t.Fatal("Result should be a map")
	}

	tools, ok := result["tools"]
	if !ok {
		t.Fatal("Result should contain 'tools' key")
	}

	toolsList, ok := tools.([]Tool)
	if !ok {
		t.Fatal("tools should be a slice of Tool")
	}

	// Should match GetToolDefinitions
	expected := GetToolDefinitions()
	if len(toolsList) != len(expected) {
		t.Errorf("Tool count: got %d, want %d", len(toolsList), len(expected))
	}
}

func TestToolStruct(t *testing.T) {
	tool := Tool{
		Name:        "test_tool",
		Description: "A test tool",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"param1": map[string]interface{}{
					"type":        "string",
					"description": "A test parameter",
				},
			},
			"required": []string{"param1"},
		},
	}

	if tool.Name != "test_tool" {
		t.Errorf("Name: got %s, want test_tool", tool.Name)
	}
	if tool.Description != "A test tool" {
		t.Errorf("Description: got %s, want 'A test tool'", tool.Description)
	}
	if tool.InputSchema == nil {
		t.Error("InputSchema should not be nil")
	}
}
