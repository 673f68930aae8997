package mcp

import (
	"github.com/custodia-labs/radar/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
type Ports struct {
	// Analysis produces verdicts.
	Analysis driving.AnalysisService

	// Normaliser cleans slang and extracts entities.
	Normaliser driving.TextNormaliser
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Analysis == nil {
		return ErrMissingAnalysisService
	}
	if p.Normaliser == nil {
		return ErrMissingNormaliser
	}
	return nil
}
