package cmd

import (
	"encoding/json"
	"fmt"

	npmdocs "github.com/viant/npmdocs-mcp/mcp"
)

// ToolCmd prints metadata & input schema for a single tool.
type ToolCmd struct {
	Name string `short:"n" long:"name" description:"tool name" default:"get_package_docs"`
	JSON bool   `long:"json" description:"print result as JSON"`
}

type toolInfo struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	InputSchema interface{} `json:"inputSchema"`
}

func (c *ToolCmd) Execute(_ []string) error {
	svc, err := serviceSingleton()
	if err != nil {
		return err
	}

	name := c.Name
	if name == "" {
		name = npmdocs.ToolName
	}
	description, schema, ok := svc.ToolMetadata(name)
	if !ok {
		return fmt.Errorf("tool %q not found", name)
	}
	info := toolInfo{Name: name, Description: description, InputSchema: schema}

	if c.JSON {
		data, _ := json.MarshalIndent(info, "", "  ")
		fmt.Println(string(data))
		return nil
	}
	fmt.Printf("Name : %s\n", info.Name)
	fmt.Printf("Desc : %s\n", info.Description)
	js, _ := json.MarshalIndent(info.InputSchema, "", "  ")
	fmt.Printf("InputSchema:\n%s\n", string(js))
	return nil
}
