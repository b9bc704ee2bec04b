// Package mcp provides an MCP (Model Context Protocol) server adapter for Docent.
// It lets AI assistants ask questions against the locally indexed corpus.
package mcp

import "errors"

// ErrMissingAssistantService is returned when the assistant service is not provided.
var ErrMissingAssistantService = errors.New("mcp: assistant service is required")
