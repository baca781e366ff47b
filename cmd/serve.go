// serve.go implements the "pathcheck serve" command for MCP operation.
//
// Design: unlike the other commands, serve blocks indefinitely handling
// MCP requests over stdio. It reuses the same converter and rule config
// as the CLI, so an LLM validating a path gets the exact verdict a shell
// script would.

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/jpl-au/pathcheck/internal/mcp"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start MCP server",
	Long: `Start an MCP (Model Context Protocol) server over stdio for LLM integration.

Exposes pathcheck_check, pathcheck_rules and pathcheck_guide tools.`,
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcp.Serve()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
