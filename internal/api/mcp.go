package api

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/eshfaq-ux/foliochat/internal/composer"
	"github.com/eshfaq-ux/foliochat/internal/knowledge"
	"github.com/eshfaq-ux/foliochat/internal/pipeline"
	"github.com/eshfaq-ux/foliochat/internal/profile"
	"github.com/eshfaq-ux/foliochat/internal/session"
)

// MCPDeps holds dependencies for the MCP server.
type MCPDeps struct {
	Assistant *pipeline.Assistant
	Profile   *profile.Profile
	Index     *knowledge.Index
}

// NewMCPServer creates an MCP server exposing the portfolio assistant as
// tools: ask a question, search the knowledge index, and fetch contact info.
func NewMCPServer(deps MCPDeps) *server.MCPServer {
	s := server.NewMCPServer(
		"foliochat",
		"1.0.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, true),
		server.WithInstructions("foliochat — portfolio assistant for asking about the owner's skills, projects, and experience."),
		server.WithRecovery(),
	)

	s.AddTool(
		mcp.NewTool("ask",
			mcp.WithDescription("Ask the portfolio assistant a question and get a grounded answer."),
			mcp.WithString("question", mcp.Description("The question to ask"), mcp.Required()),
		),
		mcpAsk(deps),
	)

	s.AddTool(
		mcp.NewTool("search_portfolio",
			mcp.WithDescription("Keyword-search the portfolio knowledge entries (skills, projects, experience)."),
			mcp.WithString("query", mcp.Description("Search query"), mcp.Required()),
			mcp.WithNumber("limit", mcp.Description("Maximum number of results (default 3)")),
		),
		mcpSearch(deps),
	)

	s.AddTool(
		mcp.NewTool("contact_info",
			mcp.WithDescription("Return the owner's contact details as JSON."),
		),
		mcpContactInfo(deps),
	)

	s.AddResource(
		mcp.NewResource(
			"portfolio://profile",
			"Owner Profile",
			mcp.WithResourceDescription("Full portfolio profile as JSON"),
			mcp.WithMIMEType("application/json"),
		),
		mcpResourceProfile(deps),
	)

	return s
}

func mcpAsk(deps MCPDeps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		question, err := req.RequireString("question")
		if err != nil {
			return mcpError("question is required"), nil
		}

		history := []composer.Turn{{Role: composer.RoleUser, Content: question}}
		reply := deps.Assistant.Respond(ctx, session.New(), history)

		return mcpText(reply.Message), nil
	}
}

func mcpSearch(deps MCPDeps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query, err := req.RequireString("query")
		if err != nil {
			return mcpError("query is required"), nil
		}

		limit := req.GetInt("limit", 3)
		if limit <= 0 {
			limit = 3
		}
		if limit > 20 {
			limit = 20
		}

		results := deps.Index.Search(query, limit)
		if len(results) == 0 {
			return mcpText("[]"), nil
		}

		b, err := json.Marshal(results)
		if err != nil {
			return mcpError(fmt.Sprintf("failed to marshal results: %v", err)), nil
		}
		return mcpText(string(b)), nil
	}
}

func mcpContactInfo(deps MCPDeps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		contact := map[string]string{
			"name":     deps.Profile.Personal.Name,
			"email":    deps.Profile.Personal.Email,
			"phone":    deps.Profile.Personal.Phone,
			"linkedin": deps.Profile.Personal.LinkedIn,
			"github":   deps.Profile.Personal.GitHub,
			"telegram": deps.Profile.Personal.Telegram,
		}
		b, err := json.Marshal(contact)
		if err != nil {
			return mcpError(fmt.Sprintf("failed to marshal contact info: %v", err)), nil
		}
		return mcpText(string(b)), nil
	}
}

func mcpResourceProfile(deps MCPDeps) server.ResourceHandlerFunc {
	return func(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		b, err := json.Marshal(deps.Profile)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal profile: %w", err)
		}

		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      req.Params.URI,
				MIMEType: "application/json",
				Text:     string(b),
			},
		}, nil
	}
}

func mcpText(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{Type: "text", Text: text},
		},
	}
}

func mcpError(msg string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{Type: "text", Text: msg},
		},
		IsError: true,
	}
}
