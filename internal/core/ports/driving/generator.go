package driving

import (
	"io"
	"time"

	"github.com/datamill-labs/sqlfan-cli/internal/core/domain"
)

// GeneratorService is the pure generation core: CSV parsing on one
// side, SQLCMD document assembly on the other. It performs no file
// I/O itself; callers open the CSV and write the result.
type GeneratorService interface {
	// ReadTargets parses (server, database) pairs from CSV data.
	// The input must have a header row with "server" and "database"
	// columns (case-sensitive, any order). Row order is preserved
	// exactly and ordinals run 1..N over valid data rows.
	//
	// Returns domain.ErrNoTargets when there are no usable data rows
	// and *domain.FormatError for structural problems.
	ReadTargets(r io.Reader) ([]domain.Target, error)

	// Generate assembles the SQLCMD document for the request.
	// The output is a deterministic function of (req, now): the
	// content is byte-identical across calls with equal arguments and
	// the suggested filename depends on now alone.
	Generate(req domain.GenerationRequest, now time.Time) (*domain.GeneratedScript, error)
}
