package mcp

import (
	"github.com/datamill-labs/sqlfan-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP
// server. This provides a single injection point for dependency
// injection.
type Ports struct {
	// Generator provides CSV parsing and script assembly.
	Generator driving.GeneratorService

	// History records generation runs. Optional; runs are simply not
	// recorded when nil.
	History driving.HistoryService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Generator == nil {
		return ErrMissingGeneratorService
	}
	return nil
}
