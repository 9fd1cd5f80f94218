package cmd

// Options is the root for the CLI.  Struct tags are interpreted by
// github.com/jessevdk/go-flags.
type Options struct {
	Config string `short:"f" long:"config" description:"configuration YAML/JSON location (path or afs URL)"`

	Serve     *ServeCmd     `command:"serve"      description:"Start the MCP server (stdio by default)"`
	Exec      *ExecCmd      `command:"exec"       description:"Run get_package_docs for one package and print the result"`
	ListTools *ListToolsCmd `command:"list-tools" description:"List the tools the server advertises"`
	Tool      *ToolCmd      `command:"tool"       description:"Show metadata and input schema of a tool"`
}

// Init instantiates the sub-command referenced by the first positional argument
// so that go-flags can populate its fields.
func (o *Options) Init(firstArg string) {
	switch firstArg {
	case "serve":
		o.Serve = &ServeCmd{}
	case "exec":
		o.Exec = &ExecCmd{}
	case "list-tools":
		o.ListTools = &ListToolsCmd{}
	case "tool":
		o.Tool = &ToolCmd{}
	}
}
