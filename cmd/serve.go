// serve.go implements the "pathfs serve" command for MCP integration.

package cmd

import (
	"github.com/jpl-au/pathfs/internal/mcp"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start MCP server",
		Long: `Start an MCP (Model Context Protocol) server over stdio for LLM
integration. Tools expose name validation and the path operations
(exists, mkdirp, read, write) against the same filesystem backend the
CLI uses.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return mcp.Serve(fsys)
		},
	}
}
