package driving

import (
	"context"

	"github.com/datamill-labs/sqlfan-cli/internal/core/domain"
)

// HistoryService records completed generation runs and lists them.
type HistoryService interface {
	// Record persists a run. A missing ID is assigned.
	// Returns the stored run.
	Record(ctx context.Context, run domain.Run) (domain.Run, error)

	// List returns the most recent runs, newest first.
	// limit <= 0 applies the default limit.
	List(ctx context.Context, limit int) ([]domain.Run, error)

	// Get returns a single run by ID.
	// Returns domain.ErrNotFound if it does not exist.
	Get(ctx context.Context, id string) (*domain.Run, error)
}
