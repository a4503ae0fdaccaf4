package services

import (
	"github.com/datamill-labs/sqlfan-cli/internal/core/ports/driving"
)

// Ensure GeneratorService implements the interface.
var _ driving.GeneratorService = (*GeneratorService)(nil)

// GeneratorService is the generation core: it parses the target CSV
// and assembles the SQLCMD fan-out document. It is stateless and
// performs no I/O; both operations are pure functions of their inputs,
// so concurrent use needs no coordination.
type GeneratorService struct{}

// NewGeneratorService creates a new generator service.
func NewGeneratorService() *GeneratorService {
	return &GeneratorService{}
}
