package cmd

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/viant/mcp"
)

// ServeCmd launches the MCP server.  Stdio is the default transport; --http
// exposes the same handler over HTTP instead.  Server options (auth, ...)
// are taken from the "server" section of the config file.
type ServeCmd struct {
	HTTP string `long:"http" description:"serve over HTTP on this address (e.g. :5000) instead of stdio"`
}

func (c *ServeCmd) Execute(_ []string) error {
	svc, err := serviceSingleton()
	if err != nil {
		return err
	}
	logger := svc.Logger()

	mcpServer, err := mcp.NewServer(svc.NewHandler, svc.Config().Server)
	if err != nil {
		return err
	}

	// SIGINT/SIGTERM cancel ctx, which releases the transport.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if c.HTTP != "" {
		httpSrv := mcpServer.HTTP(ctx, c.HTTP)
		errs := make(chan error, 1)
		go func() { errs <- httpSrv.ListenAndServe() }()
		logger.Info("npm docs MCP server listening", "addr", httpSrv.Addr)
		select {
		case <-ctx.Done():
			logger.Info("shutting down")
			return httpSrv.Close()
		case err := <-errs:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			logger.Error("[MCP Error]", "err", err)
			return err
		}
	}

	stdio := mcpServer.Stdio(ctx)
	errs := make(chan error, 1)
	go func() { errs <- stdio.ListenAndServe() }()
	logger.Info("npm docs MCP server running on stdio")
	select {
	case <-ctx.Done():
		logger.Info("shutting down")
		return nil
	case err := <-errs:
		if err == nil || errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
			return nil
		}
		logger.Error("[MCP Error]", "err", err)
		return err
	}
}
