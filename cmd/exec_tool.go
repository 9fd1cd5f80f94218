package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/viant/mcp"
	mcpschema "github.com/viant/mcp-protocol/schema"
	"github.com/viant/npmdocs-mcp/internal/conv"
	npmdocs "github.com/viant/npmdocs-mcp/mcp"
)

// ExecCmd runs get_package_docs through an in-process MCP client, exercising
// the same request path a remote client would take.
type ExecCmd struct {
	Package    string `short:"p" long:"package" positional-arg-name:"package" description:"npm package name" required:"yes"`
	TimeoutSec int    `long:"timeout" description:"Seconds to wait for completion" default:"60"`
	JSON       bool   `long:"json" description:"Print the raw tool result as JSON"`
}

func (c *ExecCmd) Execute(_ []string) error {
	svc, err := serviceSingleton()
	if err != nil {
		return err
	}
	mcpServer, err := mcp.NewServer(svc.NewHandler, svc.Config().Server)
	if err != nil {
		return err
	}

	timeout := time.Duration(c.TimeoutSec) * time.Second
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	cli := mcpServer.AsClient(ctx)
	if _, err := cli.Initialize(ctx); err != nil {
		return err
	}
	res, err := cli.CallTool(ctx, &mcpschema.CallToolRequestParams{
		Name:      npmdocs.ToolName,
		Arguments: mcpschema.CallToolRequestParamsArguments{npmdocs.PackageArgument: c.Package},
	})
	if err != nil {
		return err
	}

	if c.JSON {
		data, _ := json.MarshalIndent(res, "", "  ")
		fmt.Println(string(data))
		return nil
	}

	texts := make([]string, 0, len(res.Content))
	for _, elem := range res.Content {
		texts = append(texts, elem.Text)
	}
	text := strings.Join(texts, "\n")
	if conv.IsTrue(res.IsError) {
		return errors.New(text)
	}
	fmt.Println(text)
	return nil
}
