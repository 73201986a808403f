// Package mcpserver exposes the OctoFit collections as Model Context Protocol
// tools, one list tool per resource, so assistants can read the same data the
// terminal UI shows.
package mcpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"octofit/internal/api"
	"octofit/internal/record"
	"octofit/internal/resource"
	"octofit/internal/viewer"
	"octofit/pkg/logging"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const (
	subsystem  = "MCP"
	serverName = "octofit"

	// ToolPrefix is prepended to the resource name to form the list tool name.
	ToolPrefix = "list_"
	// EndpointsTool reports the API base URL and collection endpoints.
	EndpointsTool = "api_endpoints"
)

// Server wraps an MCP server backed by an API client.
type Server struct {
	client api.Client
	server *server.MCPServer
	tools  []mcp.Tool
}

// New creates the server and registers all tools.
func New(client api.Client, version string) *Server {
	s := &Server{
		client: client,
		server: server.NewMCPServer(
			serverName,
			version,
			server.WithToolCapabilities(true),
		),
	}

	var serverTools []server.ServerTool
	for _, def := range resource.All() {
		serverTools = append(serverTools, s.createListTool(def))
	}
	serverTools = append(serverTools, server.ServerTool{
		Tool:    mcp.NewTool(EndpointsTool, mcp.WithDescription("Show the OctoFit API base URL and the endpoint of every collection")),
		Handler: s.handleEndpoints,
	})

	for _, st := range serverTools {
		s.tools = append(s.tools, st.Tool)
	}
	s.server.AddTools(serverTools...)
	return s
}

// Tools returns the registered tool definitions.
func (s *Server) Tools() []mcp.Tool {
	out := make([]mcp.Tool, len(s.tools))
	copy(out, s.tools)
	return out
}

// MCPServer returns the underlying mcp-go server.
func (s *Server) MCPServer() *server.MCPServer {
	return s.server
}

// Serve speaks MCP over the given streams until ctx is cancelled or in is
// exhausted.
func (s *Server) Serve(ctx context.Context, in io.Reader, out io.Writer) error {
	logging.Info(subsystem, "serving %d tools over stdio for %s", len(s.tools), s.client.BaseURL())
	return server.NewStdioServer(s.server).Listen(ctx, in, out)
}

func (s *Server) createListTool(def resource.Definition) server.ServerTool {
	tool := mcp.NewTool(ToolPrefix+def.Name,
		mcp.WithDescription(fmt.Sprintf("List %s from the OctoFit API (GET /api/%s/)", def.Name, def.Name)),
		mcp.WithString("filter",
			mcp.Description("Case-insensitive text; only records with a matching column value are returned"),
		),
	)
	return server.ServerTool{
		Tool: tool,
		Handler: func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return s.handleList(ctx, def, request)
		},
	}
}

func (s *Server) handleList(ctx context.Context, def resource.Definition, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	filter, _ := request.GetArguments()["filter"].(string)

	st := viewer.New(def)
	if err := st.Load(ctx, s.client); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("%s %v", def.ErrorMessage(), err)), nil
	}
	st.SetFilter(filter)

	visible := st.Visible()
	if len(visible) == 0 && filter == "" {
		return mcp.NewToolResultText(def.EmptyMessage()), nil
	}

	text, err := indentRecords(visible)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to format %s: %v", def.Name, err)), nil
	}
	logging.Debug(subsystem, "%s%s: %d of %d records", ToolPrefix, def.Name, len(visible), len(st.Records))
	return mcp.NewToolResultText(text), nil
}

func (s *Server) handleEndpoints(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var doc record.Record
	doc.Set("baseUrl", record.StringValue(s.client.BaseURL()))
	for _, def := range resource.All() {
		doc.Set(def.Name, record.StringValue(s.client.Endpoint(def)))
	}
	return mcp.NewToolResultText(doc.Pretty()), nil
}

func indentRecords(records []record.Record) (string, error) {
	data, err := record.MarshalRecords(records)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", "  "); err != nil {
		return "", err
	}
	return buf.String(), nil
}
