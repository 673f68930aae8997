package httpapi

import (
	"github.com/custodia-labs/radar/internal/core/ports/driving"
)

// Ports aggregates the driving ports the API calls into.
type Ports struct {
	Analysis   driving.AnalysisService
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
