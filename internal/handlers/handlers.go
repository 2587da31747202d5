package handlers

import (
	"context"

	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/J-Stoned/fantasy-ai-ultimate/internal/models"
)

// MaxBodySize limits the size of request bodies to 1MB
const MaxBodySize = 1048576

// IngestQueue defines the interface for the stat-line ingestion worker pool
type IngestQueue interface {
	Enqueue(line models.PlayerStatLine) bool
	QueueDepth() int
}

// DatasetService builds the training dataset and reports a summary.
type DatasetService interface {
	Build(ctx context.Context) (*models.DatasetSummary, error)
	Latest() *models.DatasetSummary
}

// FormSource serves cached team form snapshots.
type FormSource interface {
	Get(ctx context.Context, teamID string) (*models.TeamForm, error)
}

type Config struct {
	WorkerPool IngestQueue
	Postgres   *pgxpool.Pool
	ClickHouse driver.Conn
	Redis      *redis.Client
	Logger     *zap.Logger
	// Services
	Dataset DatasetService
	Forms   FormSource
}

type Handler struct {
	pool      IngestQueue
	pg        *pgxpool.Pool
	ch        driver.Conn
	redis     *redis.Client
	logger    *zap.SugaredLogger
	validator *validator.Validate
	dataset   DatasetService
	forms     FormSource
}

func New(cfg Config) *Handler {
	return &Handler{
		pool:      cfg.WorkerPool,
		pg:        cfg.Postgres,
		ch:        cfg.ClickHouse,
		redis:     cfg.Redis,
		logger:    cfg.Logger.Sugar(),
		validator: validator.New(),
		dataset:   cfg.Dataset,
		forms:     cfg.Forms,
	}
}
