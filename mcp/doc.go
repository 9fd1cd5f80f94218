// Package mcp exposes npm package documentation as an MCP tool.  Its central
// Service type owns the static tool catalog (a single get_package_docs
// entry), validates incoming tool calls, fetches registry metadata and
// renders it with the docs package.  NewHandler plugs the service into a
// viant/mcp server.
package mcp
