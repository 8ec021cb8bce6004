// tools_util.go provides helper functions for MCP tool parameter extraction.
//
// Separated to centralise the boilerplate of extracting typed parameters
// from MCP's generic argument map.

package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// requireString extracts a required string parameter from the MCP request.
// A missing or non-string value reads as absent; the caller decides the
// error message, keeping feedback specific to the tool. An empty string is
// present, not absent: "" is valid write content and a name the validator
// must be allowed to judge.
func requireString(req mcp.CallToolRequest, name string) (string, bool) {
	v, err := req.RequireString(name)
	if err != nil {
		return "", false
	}
	return v, true
}
