// Package server implements the MCP (Model Context Protocol) server for color
// analysis tools.
//
// This package provides a JSON-RPC 2.0 server that exposes the colorspace and
// imaging packages through the MCP protocol, so that MCP clients can reason
// about image color numerically: histograms, contrast enhancement and
// vegetation coverage.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Basic Image Information:
//   - image_load: Load image and get metadata
//   - image_dimensions: Get width and height
//
// Color Operations:
//   - image_sample_pixel: Pixel value in RGB, HSI and Lab with vegetation index
//   - image_histogram: RGB channel, HSI intensity or Lab a-axis histogram
//
// Enhancement:
//   - image_contrast_stretch: Per-channel linear stretch to 0-255
//   - image_equalize_intensity: HSI intensity histogram equalization
//
// Vegetation Analysis:
//   - image_greenery: Fraction of vegetation pixels
//   - image_vegetation_mask: Image with non-vegetation pixels masked out
//
// image_histogram and image_greenery accept an optional region (top-left,
// left-half, center, ...) restricting the analysis to part of the image.
// Output images are returned as base64-encoded PNG.
//
// # Image Caching
//
// The server maintains an in-memory cache of decoded images keyed by path.
// The cache persists for the lifetime of the server process.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
//
// # Usage
//
//	srv := server.New()
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
