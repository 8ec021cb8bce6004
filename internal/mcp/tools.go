// tools.go implements the MCP tool handlers.
//
// Separated from server.go to keep registration and behaviour apart. The
// tools mirror the CLI commands but return structured JSON for LLM
// consumption rather than human-readable text.
//
// Design: Errors return MCP tool error results rather than Go errors. This
// ensures the LLM receives actionable feedback it can parse and potentially
// act on (e.g. "parent_not_found" suggests calling pathfs_mkdirp), rather
// than causing the entire tool call to fail at the protocol level.

package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jpl-au/pathfs/internal/log"
	"github.com/jpl-au/pathfs/internal/tree"
	"github.com/jpl-au/pathfs/internal/validate"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolError renders an operation failure with its structured kind when one
// exists, so the client can branch on "file_exists" vs "parent_not_found"
// instead of parsing prose.
func toolError(err error) *mcp.CallToolResult {
	var op *tree.OpError
	if errors.As(err, &op) {
		return mcp.NewToolResultError(fmt.Sprintf("%s: %s", op.Kind, op.Error()))
	}
	return mcp.NewToolResultError(err.Error())
}

// checkName handles pathfs_check tool calls.
func (h *handlers) checkName(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, ok := requireString(req, "name")
	if !ok {
		return mcp.NewToolResultError("name is required"), nil
	}

	findings := validate.Name(name)
	log.Event("mcp:pathfs_check", "validate").Author("mcp").Path(name).
		Detail("findings", len(findings)).Write(nil)

	if len(findings) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf("%q is valid", name)), nil
	}

	type finding struct {
		Kind    string `json:"kind"`
		Message string `json:"message"`
	}
	out := make([]finding, len(findings))
	for i, f := range findings {
		out[i] = finding{Kind: f.Kind.String(), Message: f.Message()}
	}
	b, err := json.Marshal(map[string]any{"name": name, "valid": false, "findings": out})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(b)), nil
}

// dirExists handles pathfs_exists tool calls.
func (h *handlers) dirExists(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, ok := requireString(req, "path")
	if !ok {
		return mcp.NewToolResultError("path is required"), nil
	}

	dir, err := tree.Build(path)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	exists, err := dir.Exists(h.fsys)
	log.Event("mcp:pathfs_exists", "exists").Author("mcp").Path(path).Write(err)
	if err != nil {
		return toolError(err), nil
	}
	if exists {
		return mcp.NewToolResultText(fmt.Sprintf("%s exists", path)), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("%s does not exist", path)), nil
}

// mkdirp handles pathfs_mkdirp tool calls.
func (h *handlers) mkdirp(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, ok := requireString(req, "path")
	if !ok {
		return mcp.NewToolResultError("path is required"), nil
	}

	dir, err := tree.Build(path)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	created, err := dir.Mkdirp(h.fsys)
	log.Event("mcp:pathfs_mkdirp", "mkdirp").Author("mcp").Path(path).Created(created).Write(err)
	if err != nil {
		return toolError(err), nil
	}
	if created {
		return mcp.NewToolResultText(fmt.Sprintf("created %s", path)), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("%s already existed", path)), nil
}

// readFile handles pathfs_read tool calls.
func (h *handlers) readFile(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, ok := requireString(req, "path")
	if !ok {
		return mcp.NewToolResultError("path is required"), nil
	}

	file, err := tree.BuildFile(path)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	content, err := file.Read(h.fsys)
	log.Event("mcp:pathfs_read", "read").Author("mcp").Path(path).Write(err)
	if err != nil {
		return toolError(err), nil
	}
	return mcp.NewToolResultText(content), nil
}

// writeFile handles pathfs_write tool calls.
func (h *handlers) writeFile(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, ok := requireString(req, "path")
	if !ok {
		return mcp.NewToolResultError("path is required"), nil
	}
	content, ok := requireString(req, "content")
	if !ok {
		return mcp.NewToolResultError("content is required"), nil
	}

	file, err := tree.BuildFile(path)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	err = file.Write(h.fsys, content)
	log.Event("mcp:pathfs_write", "write").Author("mcp").Path(path).
		Detail("bytes", len(content)).Write(err)
	if err != nil {
		return toolError(err), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("wrote %s", path)), nil
}
