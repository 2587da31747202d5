package pipeline

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/J-Stoned/fantasy-ai-ultimate/internal/features"
	"github.com/J-Stoned/fantasy-ai-ultimate/internal/models"
)

// TableLoader fetches the five input tables from backing storage.
type TableLoader interface {
	LoadTables(ctx context.Context) (Tables, error)
}

// FormPublisher receives the final rolling team states after a build.
type FormPublisher interface {
	Publish(ctx context.Context, forms map[string]models.TeamForm) error
}

// Service wires storage, the pipeline, and the form cache into the dataset
// build operation exposed over HTTP.
type Service struct {
	loader    TableLoader
	publisher FormPublisher
	params    Params
	logger    *zap.SugaredLogger

	mu   sync.Mutex
	last *models.DatasetSummary
}

// NewService builds the dataset service. publisher may be nil when no cache
// is configured.
func NewService(loader TableLoader, publisher FormPublisher, params Params, logger *zap.SugaredLogger) *Service {
	return &Service{
		loader:    loader,
		publisher: publisher,
		params:    params,
		logger:    logger,
	}
}

// Build loads the tables, runs the pipeline, publishes team forms, and
// returns a summary. The heavy arrays are not returned over the API; callers
// that need them use Run directly.
func (s *Service) Build(ctx context.Context) (*models.DatasetSummary, error) {
	start := time.Now()

	tables, err := s.loader.LoadTables(ctx)
	if err != nil {
		return nil, err
	}

	res, err := Run(ctx, tables, s.params, s.logger)
	if err != nil {
		return nil, err
	}

	if s.publisher != nil {
		if err := s.publisher.Publish(ctx, res.Forms); err != nil {
			// The dataset itself is fine; a stale form cache is not
			// worth failing the build over.
			s.logger.Warnw("Failed to publish team forms", "error", err)
		}
	}

	summary := &models.DatasetSummary{
		Games:        len(tables.Games),
		PlayerStats:  len(tables.PlayerStats),
		Injuries:     len(tables.Injuries),
		Weather:      len(tables.Weather),
		Sentiment:    len(tables.Sentiment),
		Samples:      res.Stats.Emitted,
		FeatureCount: features.FeatureCount,
		TrainSize:    len(res.TrainY),
		ValSize:      len(res.ValY),
		TestSize:     len(res.TestY),
		Teams:        res.Stats.TeamsSeen,
		BuildTime:    time.Since(start),
	}

	s.mu.Lock()
	s.last = summary
	s.mu.Unlock()

	return summary, nil
}

// Latest returns the summary of the most recent successful build, or nil if
// no build has completed since startup.
func (s *Service) Latest() *models.DatasetSummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}
