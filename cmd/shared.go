package cmd

import (
	"context"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/viant/npmdocs-mcp/mcp"
	mcpconfig "github.com/viant/npmdocs-mcp/mcp/config"
)

var (
	cfgPath string

	// logOutput is stderr; stdout belongs to the stdio transport.
	logOutput io.Writer = os.Stderr

	svcOnce sync.Once
	svcInst *mcp.Service
	svcErr  error
)

// setConfigPath remembers the CLI-level -f/--config parameter so that the
// service singleton can be created lazily by whichever sub-command is executed
// first.
func setConfigPath(p string) { cfgPath = p }

// serviceSingleton initialises an mcp.Service only once and reuses the instance
// across sub-commands within the same CLI invocation.
func serviceSingleton() (*mcp.Service, error) {
	svcOnce.Do(func() {
		cfg := &mcpconfig.Config{}
		if cfgPath != "" {
			if cfg, svcErr = mcpconfig.Load(context.Background(), cfgPath); svcErr != nil {
				return
			}
		}
		cfg.Init()
		logger := newLogger(logOutput, cfg.LogLevel())
		svcInst, svcErr = mcp.New(mcp.WithConfig(cfg), mcp.WithLogger(logger))
	})
	return svcInst, svcErr
}

// newLogger creates a timestamped logger writing to w at the given level.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
		Prefix:          "npmdocs",
	})
}
