package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/datamill-labs/sqlfan-cli/internal/core/domain"
	"github.com/datamill-labs/sqlfan-cli/internal/core/ports/driven"
	"github.com/datamill-labs/sqlfan-cli/internal/core/ports/driving"
)

// Ensure HistoryService implements the interface.
var _ driving.HistoryService = (*HistoryService)(nil)

// defaultHistoryLimit is used when List is called with limit <= 0.
const defaultHistoryLimit = 20

// HistoryService records generation runs.
type HistoryService struct {
	runStore driven.RunStore
}

// NewHistoryService creates a new history service.
func NewHistoryService(runStore driven.RunStore) *HistoryService {
	return &HistoryService{runStore: runStore}
}

// Record persists a run, assigning an ID when missing.
func (s *HistoryService) Record(ctx context.Context, run domain.Run) (domain.Run, error) {
	if run.ID == "" {
		run.ID = uuid.NewString()
	}
	if err := s.runStore.Save(ctx, run); err != nil {
		return domain.Run{}, fmt.Errorf("saving run: %w", err)
	}
	return run, nil
}

// List returns the most recent runs, newest first.
func (s *HistoryService) List(ctx context.Context, limit int) ([]domain.Run, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	runs, err := s.runStore.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("listing runs: %w", err)
	}
	return runs, nil
}

// Get returns a single run by ID.
func (s *HistoryService) Get(ctx context.Context, id string) (*domain.Run, error) {
	run, err := s.runStore.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("getting run %s: %w", id, err)
	}
	return run, nil
}
