// Package conv provides small generic helpers for the optional (pointer)
// fields used throughout the MCP schema types.
package conv
