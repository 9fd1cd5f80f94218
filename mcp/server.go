package mcp

import (
	"context"

	"github.com/viant/jsonrpc/transport"
	protocolclient "github.com/viant/mcp-protocol/client"
	"github.com/viant/mcp-protocol/logger"
	serverproto "github.com/viant/mcp-protocol/server"
)

// NewHandler returns an MCP handler exposing the service tool catalog.  It
// matches serverproto.NewHandler so it can be passed to mcp.NewServer; every
// connection gets its own handler backed by the shared Service.
func (s *Service) NewHandler(ctx context.Context, notifier transport.Notifier, l logger.Logger, cli protocolclient.Operations) (serverproto.Handler, error) {
	impl := serverproto.NewDefaultHandler(notifier, l, cli)
	for _, tool := range s.Tools() {
		impl.RegisterTool(tool)
	}
	return impl, nil
}
