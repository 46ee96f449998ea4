package mcp

import "github.com/mark3labs/mcp-go/mcp"

func resolveTokensTool() mcp.Tool {
	return mcp.NewTool("resolve_tokens",
		mcp.WithDescription("Resolve the loaded token tree into a flat path-to-value map, substituting all {path} references. Returns the resolved map plus a debug summary."),
		mcp.WithString("theme",
			mcp.Description("Theme id or name selecting which token sets participate. Omit to resolve all sets."),
		),
	)
}

func listThemesTool() mcp.Tool {
	return mcp.NewTool("list_themes",
		mcp.WithDescription("List the themes defined in the token tree's $themes metadata."),
	)
}

func matchValuesTool() mcp.Tool {
	return mcp.NewTool("match_values",
		mcp.WithDescription("Match observed hardcoded design values against the resolved tokens. Returns ranked token recommendations and the values no token could cover."),
		mcp.WithString("values",
			mcp.Required(),
			mcp.Description(`JSON array of observed values: [{"type":"border-radius","value":"8px","count":3}]. Type is one of fill, stroke, spacing, padding, typography, border-radius.`),
		),
		mcp.WithString("theme",
			mcp.Description("Theme id or name to resolve under before matching."),
		),
	)
}

func auditValuesTool() mcp.Tool {
	return mcp.NewTool("audit_values",
		mcp.WithDescription("Full audit: resolve the token tree, match the observed values, and return a report with instance counts and coverage."),
		mcp.WithString("values",
			mcp.Required(),
			mcp.Description("JSON array of observed values, same shape as match_values."),
		),
		mcp.WithString("theme",
			mcp.Description("Theme id or name to resolve under before matching."),
		),
	)
}

func cleanNameTool() mcp.Tool {
	return mcp.NewTool("clean_name",
		mcp.WithDescription("Strip the leading set-name segment from a full token path for display."),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Full token path, e.g. \"01 Base.radius.md\"."),
		),
	)
}
