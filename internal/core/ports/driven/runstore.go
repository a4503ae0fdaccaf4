package driven

import (
	"context"

	"github.com/datamill-labs/sqlfan-cli/internal/core/domain"
)

// RunStore persists generation history.
type RunStore interface {
	// Save stores a run. The run's ID must be set.
	Save(ctx context.Context, run domain.Run) error

	// List returns up to limit runs ordered by GeneratedAt descending.
	List(ctx context.Context, limit int) ([]domain.Run, error)

	// Get returns the run with the given ID.
	// Returns domain.ErrNotFound if it does not exist.
	Get(ctx context.Context, id string) (*domain.Run, error)
}
