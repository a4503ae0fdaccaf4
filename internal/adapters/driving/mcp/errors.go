// Package mcp provides an MCP (Model Context Protocol) server adapter
// for sqlfan. It enables AI assistants like Claude to preview CSV
// targets and generate fan-out scripts.
package mcp

import "errors"

// ErrMissingGeneratorService is returned when the generator service is
// not provided.
var ErrMissingGeneratorService = errors.New("mcp: generator service is required")
