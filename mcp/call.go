package mcp

import (
	"context"
	"fmt"

	"github.com/viant/jsonrpc"
	mcpschema "github.com/viant/mcp-protocol/schema"
	"github.com/viant/npmdocs-mcp/docs"
	"github.com/viant/npmdocs-mcp/internal/conv"
	"github.com/viant/npmdocs-mcp/registry"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// CallTool validates a tool call and, when valid, returns the rendered
// documentation.  Protocol faults (unknown tool, bad arguments) and local
// failures are returned as *jsonrpc.Error; registry failures are reported
// as an error-flagged result.
func (s *Service) CallTool(ctx context.Context, name string, args map[string]interface{}) (*mcpschema.CallToolResult, *jsonrpc.Error) {
	// Over a connection the handler registry rejects unregistered names first
	// ("tool X not found"); this branch serves direct callers.
	if name != ToolName {
		return nil, jsonrpc.NewError(jsonrpc.MethodNotFound, fmt.Sprintf("Unknown tool: %s", name), nil)
	}
	if args == nil {
		return nil, jsonrpc.NewError(jsonrpc.InvalidParams, "Arguments are required", nil)
	}
	packageName, ok := args[PackageArgument].(string)
	if !ok {
		return nil, jsonrpc.NewError(jsonrpc.InvalidParams, "Package name must be a string", nil)
	}

	ctx, span := s.tracer.Start(ctx, "tool.invoke", trace.WithAttributes(
		attribute.String("tool_name", name),
		attribute.String("npm.package", packageName),
	))
	defer span.End()

	s.logger.Debug("tool call", "tool", name, "package", packageName)
	result, err := s.packageDocs(ctx, packageName)
	if err != nil {
		s.logger.Error("[MCP Error]", "tool", name, "package", packageName, "err", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, jsonrpc.NewError(jsonrpc.InternalError, err.Error(), nil)
	}
	if conv.IsTrue(result.IsError) {
		span.SetStatus(codes.Error, "reported")
	} else {
		span.SetStatus(codes.Ok, "")
	}
	return result, nil
}

// packageDocs fetches and formats one package.  Registry errors become
// error-flagged results; any other error is returned to the caller.
func (s *Service) packageDocs(ctx context.Context, packageName string) (*mcpschema.CallToolResult, error) {
	pkg, err := s.fetcher.Fetch(ctx, packageName)
	if err != nil {
		regErr, ok := registry.AsError(err)
		if !ok {
			return nil, err
		}
		if regErr.NotFound() {
			s.logger.Debug("package not found", "package", packageName)
			return textResult(fmt.Sprintf("Package %q not found on npm registry", packageName), true), nil
		}
		s.logger.Warn("registry failure", "package", packageName, "err", regErr)
		return textResult("npm registry error: "+regErr.Error(), true), nil
	}
	return textResult(docs.Format(pkg), false), nil
}

func textResult(text string, isError bool) *mcpschema.CallToolResult {
	result := &mcpschema.CallToolResult{
		Content: []mcpschema.CallToolResultContentElem{{
			Type: "text",
			Text: text,
		}},
	}
	if isError {
		result.IsError = conv.Pointer(true)
	}
	return result
}
