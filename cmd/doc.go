// Package cmd implements the sub-commands of the npmdocs-mcp command-line
// interface.  Each file in this directory registers a single sub-command
// (serve, exec, list-tools, tool).  Configuration loading and service
// initialisation shared between commands live in shared.go.
package cmd
