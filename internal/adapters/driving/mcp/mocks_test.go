package mcp

import (
	"context"
	"io"
	"time"

	"github.com/datamill-labs/sqlfan-cli/internal/core/domain"
)

// mockGeneratorService is a mock implementation of
// driving.GeneratorService.
type mockGeneratorService struct {
	targets []domain.Target
	script  *domain.GeneratedScript
	err     error
}

func (m *mockGeneratorService) ReadTargets(_ io.Reader) ([]domain.Target, error) {
	return m.targets, m.err
}

func (m *mockGeneratorService) Generate(
	_ domain.GenerationRequest,
	_ time.Time,
) (*domain.GeneratedScript, error) {
	return m.script, m.err
}

// mockHistoryService is a mock implementation of driving.HistoryService.
type mockHistoryService struct {
	recorded []domain.Run
	runs     []domain.Run
	err      error
}

func (m *mockHistoryService) Record(_ context.Context, run domain.Run) (domain.Run, error) {
	if m.err != nil {
		return domain.Run{}, m.err
	}
	m.recorded = append(m.recorded, run)
	return run, nil
}

func (m *mockHistoryService) List(_ context.Context, _ int) ([]domain.Run, error) {
	return m.runs, m.err
}

func (m *mockHistoryService) Get(_ context.Context, _ string) (*domain.Run, error) {
	if len(m.runs) == 0 {
		return nil, domain.ErrNotFound
	}
	return &m.runs[0], m.err
}
