// Package tools implements the MCP tool facade: five tools mapping the
// host protocol onto the config/extract/store layers. Each tool is a
// struct with a Definition for registration and a Handle method; the
// active configuration is re-resolved inside every Handle so path
// changes between calls take effect immediately.
package tools

import (
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
)

// jsonResult marshals a result payload as pretty-printed JSON text,
// the shape MCP clients render back to the user.
func jsonResult(v any) *mcp.CallToolResult {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(err.Error())
	}
	return mcp.NewToolResultText(string(b))
}

// errResult reports a failure as a tool error result. Protocol errors
// are reserved for transport problems; operational failures (missing
// file, bad argument, unavailable storage) surface here as renderable
// text, never swallowed.
func errResult(err error) *mcp.CallToolResult {
	return mcp.NewToolResultError(err.Error())
}
