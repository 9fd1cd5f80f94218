// Package config defines the YAML/JSON configuration model of the npm docs
// MCP server together with helpers to load, default and validate it.
package config
