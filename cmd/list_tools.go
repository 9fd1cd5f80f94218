package cmd

import (
	"fmt"

	"github.com/viant/npmdocs-mcp/internal/conv"
)

// ListToolsCmd prints every advertised tool with its description.
type ListToolsCmd struct{}

func (c *ListToolsCmd) Execute(_ []string) error {
	svc, err := serviceSingleton()
	if err != nil {
		return err
	}
	for _, t := range svc.Tools() {
		fmt.Printf("%s\t%s\n", t.Metadata.Name, conv.Dereference(t.Metadata.Description))
	}
	return nil
}
