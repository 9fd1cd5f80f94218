package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/jessevdk/go-flags"
)

// defaultCommand runs when no sub-command is given, so the binary can be
// registered directly as a stdio MCP server.
const defaultCommand = "serve"

// Run is the entry point for the CLI.  The function is separated from the
// main package to keep the command usable from tests as well.
func Run(args []string) {
	if err := run(args); err != nil {
		log.Fatal(err)
	}
}

func run(args []string) error {
	args = withDefaultCommand(args)
	setConfigPath(extractConfigPath(args))

	opts := &Options{}
	opts.Init(args[0])

	parser := flags.NewParser(opts, flags.HelpFlag|flags.PassDoubleDash)
	if _, err := parser.ParseArgs(args); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			fmt.Fprintln(os.Stdout, flagsErr.Message)
			return nil
		}
		return err
	}
	return nil
}

// withDefaultCommand prepends the default sub-command when args is empty or
// starts with an option rather than a command name.
func withDefaultCommand(args []string) []string {
	if len(args) == 0 {
		return []string{defaultCommand}
	}
	switch first := args[0]; {
	case first == "-h", first == "--help":
		return args
	case strings.HasPrefix(first, "-"):
		return append([]string{defaultCommand}, args...)
	}
	return args
}

// extractConfigPath searches the raw argument list for the -f/--config option
// before the full flags parsing is performed so that sub-commands can load the
// config early from a deterministic location.
func extractConfigPath(args []string) string {
	for i, a := range args {
		switch a {
		case "-f", "--config":
			if i+1 < len(args) {
				return args[i+1]
			}
		default:
			if strings.HasPrefix(a, "--config=") {
				return strings.TrimPrefix(a, "--config=")
			}
		}
	}
	return ""
}
