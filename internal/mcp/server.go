// Package mcp implements the Model Context Protocol server, exposing pathfs
// operations to LLMs. This enables AI assistants to validate names, probe
// directories and read or write files through a standardised protocol.
package mcp

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/jpl-au/pathfs/internal/osfs"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Version is advertised to clients for capability negotiation.
const Version = "1.0.0"

// Serve starts the MCP server over stdio, enabling LLM integration.
// Uses stdio transport for compatibility with Claude Desktop and other MCP
// clients. The given filesystem backs every tool; the CLI passes the real
// one, tests pass a MemFS.
func Serve(fsys osfs.FS) error {
	// Log to stderr; stdout is reserved for MCP JSON-RPC messages
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	h := &handlers{fsys: fsys}

	s := server.NewMCPServer(
		"pathfs",
		Version,
		server.WithToolCapabilities(true),
	)

	registerTools(s, h)

	slog.Info("pathfs MCP server ready", "version", Version, "transport", "stdio")

	err := server.ServeStdio(s)
	if errors.Is(err, context.Canceled) {
		slog.Info("server stopped")
		return nil
	}
	return err
}

// handlers provides MCP request handlers with access to the filesystem.
type handlers struct {
	fsys osfs.FS
}

// registerTools exposes pathfs operations as MCP tools for LLM invocation.
func registerTools(s *server.MCPServer, h *handlers) {
	// Validate a name
	s.AddTool(
		mcp.NewTool("pathfs_check",
			mcp.WithDescription("Validate a file or directory name for cross-filesystem safety. Reports every violated rule, not just the first."),
			mcp.WithString("name", mcp.Required(), mcp.Description("A single path component (no slashes)")),
		),
		h.checkName,
	)

	// Directory existence
	s.AddTool(
		mcp.NewTool("pathfs_exists",
			mcp.WithDescription("Report whether a directory exists at an absolute POSIX path. A file occupying the path is an error, not 'absent'."),
			mcp.WithString("path", mcp.Required(), mcp.Description("Absolute directory path")),
		),
		h.dirExists,
	)

	// Recursive create
	s.AddTool(
		mcp.NewTool("pathfs_mkdirp",
			mcp.WithDescription("Ensure a directory and all its ancestors exist. Returns whether the leaf was newly created; an existing directory is not an error."),
			mcp.WithString("path", mcp.Required(), mcp.Description("Absolute directory path")),
		),
		h.mkdirp,
	)

	// Read file
	s.AddTool(
		mcp.NewTool("pathfs_read",
			mcp.WithDescription("Read a file's content from an absolute POSIX path"),
			mcp.WithString("path", mcp.Required(), mcp.Description("Absolute file path")),
		),
		h.readFile,
	)

	// Write file
	s.AddTool(
		mcp.NewTool("pathfs_write",
			mcp.WithDescription("Write content to a file at an absolute POSIX path, creating or truncating it. The parent directory must exist (use pathfs_mkdirp first)."),
			mcp.WithString("path", mcp.Required(), mcp.Description("Absolute file path")),
			mcp.WithString("content", mcp.Required(), mcp.Description("File content")),
		),
		h.writeFile,
	)
}
