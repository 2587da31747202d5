package handlers

import (
	"context"

	"github.com/J-Stoned/fantasy-ai-ultimate/internal/models"
)

// MockIngestQueue
type MockIngestQueue struct {
	EnqueueFunc    func(line models.PlayerStatLine) bool
	QueueDepthFunc func() int
}

func (m *MockIngestQueue) Enqueue(line models.PlayerStatLine) bool {
	if m.EnqueueFunc != nil {
		return m.EnqueueFunc(line)
	}
	return true
}

func (m *MockIngestQueue) QueueDepth() int {
	if m.QueueDepthFunc != nil {
		return m.QueueDepthFunc()
	}
	return 0
}

// MockDatasetService
type MockDatasetService struct {
	BuildFunc  func(ctx context.Context) (*models.DatasetSummary, error)
	LatestFunc func() *models.DatasetSummary
}

func (m *MockDatasetService) Build(ctx context.Context) (*models.DatasetSummary, error) {
	if m.BuildFunc != nil {
		return m.BuildFunc(ctx)
	}
	return &models.DatasetSummary{}, nil
}

func (m *MockDatasetService) Latest() *models.DatasetSummary {
	if m.LatestFunc != nil {
		return m.LatestFunc()
	}
	return nil
}

// MockFormSource
type MockFormSource struct {
	GetFunc func(ctx context.Context, teamID string) (*models.TeamForm, error)
}

func (m *MockFormSource) Get(ctx context.Context, teamID string) (*models.TeamForm, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, teamID)
	}
	return &models.TeamForm{TeamID: teamID}, nil
}
