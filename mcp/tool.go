package mcp

import (
	"context"

	"github.com/viant/jsonrpc"
	mcpschema "github.com/viant/mcp-protocol/schema"
	serverproto "github.com/viant/mcp-protocol/server"
	"github.com/viant/npmdocs-mcp/internal/conv"
)

const (
	// ToolName is the only tool the server advertises.
	ToolName = "get_package_docs"

	// ToolDescription is shown to MCP clients in tools/list.
	ToolDescription = "Get documentation for an npm package"

	// PackageArgument is the required input property.
	PackageArgument = "package"
)

// Tool returns the static tool definition.
func Tool() mcpschema.Tool {
	return mcpschema.Tool{
		Name:        ToolName,
		Description: conv.Pointer(ToolDescription),
		InputSchema: mcpschema.ToolInputSchema{
			Type: "object",
			Properties: map[string]map[string]interface{}{
				PackageArgument: {
					"type":        "string",
					"description": "Package name",
				},
			},
			Required: []string{PackageArgument},
		},
	}
}

// Tools returns the tool catalog; it always holds exactly one entry.
func (s *Service) Tools() serverproto.Tools {
	entry := &serverproto.ToolEntry{
		Metadata: Tool(),
		Handler: func(ctx context.Context, request *mcpschema.CallToolRequest) (*mcpschema.CallToolResult, *jsonrpc.Error) {
			return s.CallTool(ctx, request.Params.Name, request.Params.Arguments)
		},
	}
	return serverproto.Tools{entry}
}

// ToolMetadata returns description and input schema for a named tool when
// present. The last return value is false when the tool does not exist.
func (s *Service) ToolMetadata(name string) (string, mcpschema.ToolInputSchema, bool) {
	if name != ToolName {
		return "", mcpschema.ToolInputSchema{}, false
	}
	tool := Tool()
	return conv.Dereference(tool.Description), tool.InputSchema, true
}
