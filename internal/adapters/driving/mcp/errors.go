// Package mcp provides an MCP (Model Context Protocol) server adapter for radar.
// It lets AI assistants request verdicts, normalise text and extract entities.
package mcp

import "errors"

// ErrMissingAnalysisService is returned when the analysis service is not provided.
var ErrMissingAnalysisService = errors.New("mcp: analysis service is required")

// ErrMissingNormaliser is returned when the text normaliser is not provided.
var ErrMissingNormaliser = errors.New("mcp: text normaliser is required")
