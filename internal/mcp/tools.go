// tools.go implements the MCP tool handlers.
//
// Separated from server.go to keep tool registration (the catalogue an
// LLM sees) apart from the behaviour behind it.
//
// Design: parameter extraction is permissive - an LLM omitting an
// optional parameter gets the default rather than a cryptic type error.
// Validation failures are returned as tool error results with the same
// message the CLI would print, so the LLM can relay it or fix the path.

package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/jpl-au/pathcheck/guide"
	"github.com/jpl-au/pathcheck/internal/config"
	"github.com/jpl-au/pathcheck/internal/log"
	"github.com/jpl-au/pathcheck/pathtype"
)

// checkPath handles pathcheck_check tool calls.
func (h *handlers) checkPath(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) { //nolint:revive // ctx unused, checks are synchronous
	raw, err := req.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError("path is required"), nil
	}

	var opts []pathtype.Option
	ruleName := getString(req, "rule", "")
	if ruleName != "" {
		cfg, err := config.Load()
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		rule, err := cfg.Rule(ruleName)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		opts = rule.Options()
	}

	if getBool(req, "exists", false) {
		opts = append(opts, pathtype.Exists())
	}
	if getBool(req, "not_exists", false) {
		opts = append(opts, pathtype.NotExists())
	}
	if getBool(req, "parent_exists", false) {
		opts = append(opts, pathtype.ParentExists())
	}
	if getBool(req, "creatable", false) {
		opts = append(opts, pathtype.Creatable())
	}
	if getBool(req, "writable_or_creatable", false) {
		opts = append(opts, pathtype.WritableOrCreatable())
	}
	if getBool(req, "readable", false) {
		opts = append(opts, pathtype.Readable())
	}
	if getBool(req, "writable", false) {
		opts = append(opts, pathtype.Writable())
	}
	if getBool(req, "executable", false) {
		opts = append(opts, pathtype.Executable())
	}
	if v := getString(req, "name_re", ""); v != "" {
		opts = append(opts, pathtype.NameMatchesRe(v))
	}
	if v := getString(req, "name_glob", ""); v != "" {
		opts = append(opts, pathtype.NameMatchesGlob(v))
	}
	if v := getString(req, "path_re", ""); v != "" {
		opts = append(opts, pathtype.PathMatchesRe(v))
	}
	if v := getString(req, "path_glob", ""); v != "" {
		opts = append(opts, pathtype.PathMatchesGlob(v))
	}

	t, err := pathtype.New(opts...)
	if err != nil {
		log.Event("mcp:pathcheck_check", "check").Path(raw).Rule(ruleName).Write(err)
		return mcp.NewToolResultError(fmt.Sprintf("invalid check configuration: %v", err)), nil
	}

	path, err := t.Convert(raw)
	log.Event("mcp:pathcheck_check", "check").Path(raw).Rule(ruleName).Resolved(path).Write(err)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return jsonResult(map[string]any{"ok": true, "path": path})
}

// listRules handles pathcheck_rules tool calls.
func (h *handlers) listRules(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) { //nolint:revive // ctx unused
	cfg, err := config.Load()

	log.Event("mcp:pathcheck_rules", "rules").Write(err)

	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return jsonResult(map[string]any{
		"config": cfg.Path(),
		"rules":  cfg.Rules,
	})
}

// getGuide handles pathcheck_guide tool calls.
func (h *handlers) getGuide(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) { //nolint:revive // ctx unused
	topic := getString(req, "topic", "")

	content, err := guide.Get(topic)

	log.Event("mcp:pathcheck_guide", "guide").Detail("topic", topic).Write(err)

	if err != nil {
		// If topic not found, return list of available topics
		topics, listErr := guide.List()
		if listErr != nil {
			return nil, fmt.Errorf("listing guides: %w", listErr)
		}
		return jsonResult(map[string]any{
			"error":            err.Error(),
			"available_topics": topics,
		})
	}

	return mcp.NewToolResultText(content), nil
}

// getString extracts a string parameter, returning the default if the
// parameter is missing or not a string.
func getString(req mcp.CallToolRequest, name, def string) string {
	if v, err := req.RequireString(name); err == nil {
		return v
	}
	return def
}

// getBool extracts a boolean parameter from the raw argument map. JSON
// booleans decode as Go bool, so a type assertion suffices; anything
// else (including "true" as a string) falls back to the default.
func getBool(req mcp.CallToolRequest, name string, def bool) bool {
	args, ok := req.Params.Arguments.(map[string]any)
	if !ok {
		return def
	}
	if v, ok := args[name].(bool); ok {
		return v
	}
	return def
}

// jsonResult serialises v as indented JSON wrapped in an MCP text
// result. Marshal errors become MCP error results so all failures reach
// the LLM through the same channel.
func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
