// Package mcp implements the Model Context Protocol server, exposing
// pathcheck operations to LLMs. This lets AI assistants validate paths
// against a project's rule profiles through a standardised protocol,
// using the same converter and config the CLI uses.
package mcp

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Version is advertised to clients for capability negotiation.
const Version = "1.0.0"

// Serve starts the MCP server over stdio, enabling LLM integration.
// Uses stdio transport for compatibility with Claude Desktop and other
// MCP clients.
func Serve() error {
	// Log to stderr; stdout is reserved for MCP JSON-RPC messages
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	h := &handlers{}

	s := server.NewMCPServer(
		"pathcheck",
		Version,
		server.WithToolCapabilities(true),
	)

	registerTools(s, h)

	slog.Info("pathcheck MCP server ready", "version", Version, "transport", "stdio")

	err := server.ServeStdio(s)
	if errors.Is(err, context.Canceled) {
		slog.Info("server stopped")
		return nil
	}
	return err
}

// handlers provides MCP request handlers. The rule config is loaded per
// call so the server picks up config edits without a restart.
type handlers struct{}

// registerTools exposes pathcheck operations as MCP tools for LLM invocation.
func registerTools(s *server.MCPServer, h *handlers) {
	s.AddTool(
		mcp.NewTool("pathcheck_check",
			mcp.WithDescription("Validate a filesystem path: existence, permissions and patterns. Returns the checked path or the reason it was rejected."),
			mcp.WithString("path", mcp.Required(), mcp.Description("Path to validate")),
			mcp.WithString("rule", mcp.Description("Named rule profile from the pathcheck config")),
			mcp.WithBoolean("exists", mcp.Description("Require the path to exist")),
			mcp.WithBoolean("not_exists", mcp.Description("Require the path to not exist")),
			mcp.WithBoolean("parent_exists", mcp.Description("Require the parent directory to exist")),
			mcp.WithBoolean("creatable", mcp.Description("Require write permission on the parent directory")),
			mcp.WithBoolean("writable_or_creatable", mcp.Description("Require an existing writable path, or a missing creatable one")),
			mcp.WithBoolean("readable", mcp.Description("Require read permission (implies exists)")),
			mcp.WithBoolean("writable", mcp.Description("Require write permission (implies exists)")),
			mcp.WithBoolean("executable", mcp.Description("Require execute permission (implies exists)")),
			mcp.WithString("name_re", mcp.Description("Regular expression the file name must match")),
			mcp.WithString("name_glob", mcp.Description("Glob the file name must match")),
			mcp.WithString("path_re", mcp.Description("Regular expression the absolute path must match")),
			mcp.WithString("path_glob", mcp.Description("Glob the absolute path must match (** spans segments)")),
		),
		h.checkPath,
	)

	s.AddTool(
		mcp.NewTool("pathcheck_rules",
			mcp.WithDescription("List the rule profiles configured for this project"),
		),
		h.listRules,
	)

	s.AddTool(
		mcp.NewTool("pathcheck_guide",
			mcp.WithDescription("Get pathcheck documentation"),
			mcp.WithString("topic", mcp.Description("Guide topic (default: main guide)")),
		),
		h.getGuide,
	)
}
