package main

import (
	"os"

	"github.com/viant/npmdocs-mcp/cmd"
)

func main() {
	cmd.Run(os.Args[1:])
}
