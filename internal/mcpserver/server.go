// Package mcpserver provides an MCP (Model Context Protocol) server
// that exposes raido's routing tools for LLM integration via stdio
// transport.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/nordhagen/raido/internal/pane"
	"github.com/nordhagen/raido/internal/router"
	"github.com/nordhagen/raido/internal/routeservice"
)

// Server wraps the MCP server with raido tools.
type Server struct {
	mcp *server.MCPServer
	svc *routeservice.Service
}

// New creates a new MCP server with all raido tools registered.
func New(svc *routeservice.Service) *Server {
	s := &Server{svc: svc}

	s.mcp = server.NewMCPServer(
		"Raido",
		"1.0.0",
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
	)

	s.mcp.AddTool(mcp.NewTool("route_link",
		mcp.WithDescription("Compute the pane routing decision for one link navigation. "+
			"Pass the current pane snapshot as a JSON array so the decision reflects "+
			"what is actually open. Read the contract first via the get_routing_contract "+
			"tool or the raido://routing-contract resource."),
		mcp.WithString("link_text", mcp.Required(), mcp.Description("Raw link text as clicked (may carry a #fragment)")),
		mcp.WithString("source_path", mcp.Description("Vault path of the note the link was clicked in")),
		mcp.WithString("panes", mcp.Description(`Pane snapshot as a JSON array, e.g. [{"id":"p1","view_type":"markdown","file_path":"a.md"}]`)),
		mcp.WithString("new_pane", mcp.Description("Caller's requested new-pane flag: true or false (omit when the caller has no preference)")),
	), s.routeLink)

	s.mcp.AddTool(mcp.NewTool("resolve_link",
		mcp.WithDescription("Resolve raw link text to the vault path of the note it refers to."),
		mcp.WithString("link", mcp.Required(), mcp.Description("Link text, with or without the .md extension")),
	), s.resolveLink)

	s.mcp.AddTool(mcp.NewTool("search_notes",
		mcp.WithDescription("Full-text search through notes content and titles."),
		mcp.WithString("query", mcp.Required(), mcp.Description("Search query string")),
	), s.searchNotes)

	s.mcp.AddTool(mcp.NewTool("open_daily_note",
		mcp.WithDescription("Create today's daily note if it does not exist yet and return its vault path."),
	), s.openDailyNote)

	s.mcp.AddTool(mcp.NewTool("get_routing_contract",
		mcp.WithDescription("Returns the canonical raido routing contract: how link and "+
			"click decisions are computed over a pane snapshot."),
	), s.getRoutingContract)

	// Resource: routing contract.
	s.mcp.AddResource(
		mcp.NewResource("raido://routing-contract", "Routing Contract",
			mcp.WithResourceDescription("How raido decides pane reuse, activation, and new-pane opens."),
			mcp.WithMIMEType("text/markdown"),
		),
		s.readRoutingContractResource,
	)

	return s
}

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

// MCPServer returns the underlying server for testing.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

func (s *Server) routeLink(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	linkText, err := req.RequireString("link_text")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	intent := router.LinkIntent{LinkText: linkText}
	if sp, err := req.RequireString("source_path"); err == nil {
		intent.SourcePath = sp
	}
	if raw, err := req.RequireString("new_pane"); err == nil && raw != "" {
		v, convErr := strconv.ParseBool(raw)
		if convErr != nil {
			return mcp.NewToolResultError(fmt.Sprintf("new_pane must be true or false, got %q", raw)), nil
		}
		intent.NewPane = &v
	}

	var snap pane.Snapshot
	if raw, err := req.RequireString("panes"); err == nil && raw != "" {
		if jsonErr := json.Unmarshal([]byte(raw), &snap.Panes); jsonErr != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid panes JSON: %v", jsonErr)), nil
		}
	}

	out := s.svc.RouteLink(ctx, intent, snap)
	data, _ := json.MarshalIndent(out, "", "  ")
	return mcp.NewToolResultText(string(data)), nil
}

func (s *Server) resolveLink(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	link, err := req.RequireString("link")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	path, err := s.svc.ResolveLink(ctx, link)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("not found: %s", link)), nil
	}
	return mcp.NewToolResultText(path), nil
}

func (s *Server) searchNotes(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := req.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	results, err := s.svc.Search(ctx, query, 20)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	out, _ := json.MarshalIndent(results, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) openDailyNote(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, created, err := s.svc.EnsureDailyNote(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if created {
		return mcp.NewToolResultText(fmt.Sprintf("created: %s", path)), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("exists: %s", path)), nil
}

func (s *Server) getRoutingContract(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(RoutingContract), nil
}

func (s *Server) readRoutingContractResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      "raido://routing-contract",
			MIMEType: "text/markdown",
			Text:     RoutingContract,
		},
	}, nil
}
