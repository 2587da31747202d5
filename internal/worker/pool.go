// Package worker implements the buffered worker pool for async stat-line
// ingestion. This decouples HTTP request handling from database writes,
// providing batch inserts for efficient ClickHouse writes and graceful
// shutdown with flush guarantees.
package worker

import (
	"context"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"

	"github.com/J-Stoned/fantasy-ai-ultimate/internal/models"
)

// Prometheus metrics
var (
	linesIngested = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fantasy_stat_lines_ingested_total",
		Help: "Total number of stat lines accepted for ingestion",
	})

	linesProcessed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fantasy_stat_lines_processed_total",
		Help: "Total number of stat lines written by workers",
	})

	linesFailed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fantasy_stat_lines_failed_total",
		Help: "Total number of stat lines that failed processing",
	})

	linesDropped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fantasy_stat_lines_dropped_total",
		Help: "Total number of stat lines dropped because the pool was stopping",
	})

	queueDepth = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "fantasy_ingest_queue_depth",
		Help: "Current depth of the ingest queue",
	})

	batchInsertDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "fantasy_batch_insert_duration_seconds",
		Help:    "Duration of batch inserts to ClickHouse",
		Buckets: prometheus.DefBuckets,
	})
)

// StatLineWriter lands a batch of stat lines in storage.
type StatLineWriter interface {
	InsertStatLines(ctx context.Context, lines []models.PlayerStatLine) error
}

// PoolConfig configures the worker pool
type PoolConfig struct {
	WorkerCount   int
	QueueSize     int
	BatchSize     int
	FlushInterval time.Duration
	Writer        StatLineWriter
	Logger        *zap.Logger
}

// Pool manages a pool of workers batching stat lines into storage.
type Pool struct {
	config   PoolConfig
	jobQueue chan models.PlayerStatLine
	wg       sync.WaitGroup
	ctx      context.Context
	cancel   context.CancelFunc
	logger   *zap.SugaredLogger
}

// NewPool creates a new worker pool
func NewPool(cfg PoolConfig) *Pool {
	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = 4
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 10000
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 500
	}
	if cfg.FlushInterval <= 0 {
		cfg.FlushInterval = time.Second
	}

	return &Pool{
		config:   cfg,
		jobQueue: make(chan models.PlayerStatLine, cfg.QueueSize),
		logger:   cfg.Logger.Sugar(),
	}
}

// Start launches the worker goroutines
func (p *Pool) Start(ctx context.Context) {
	p.ctx, p.cancel = context.WithCancel(ctx)

	for i := 0; i < p.config.WorkerCount; i++ {
		p.wg.Add(1)
		go p.worker(i)
	}

	go p.reportQueueDepth()

	p.logger.Infow("Worker pool started",
		"workers", p.config.WorkerCount,
		"queueSize", p.config.QueueSize,
		"batchSize", p.config.BatchSize,
	)
}

// Stop gracefully shuts down the worker pool, flushing pending batches.
func (p *Pool) Stop() {
	p.logger.Info("Stopping worker pool...")
	p.cancel()
	close(p.jobQueue)
	p.wg.Wait()
	p.logger.Info("Worker pool stopped")
}

// Enqueue adds a stat line to the queue. Returns false without blocking when
// the queue is full or the pool is stopping.
func (p *Pool) Enqueue(line models.PlayerStatLine) bool {
	// Protect against sending on closed channel
	defer func() {
		if r := recover(); r != nil {
			p.logger.Warnw("Failed to enqueue stat line (pool stopped)", "error", r)
		}
	}()

	select {
	case p.jobQueue <- line:
		linesIngested.Inc()
		return true
	case <-p.ctx.Done():
		p.logger.Warn("Worker pool context canceled, dropping stat line")
		linesDropped.Inc()
		return false
	default:
		linesDropped.Inc()
		return false
	}
}

// QueueDepth returns current queue size
func (p *Pool) QueueDepth() int {
	return len(p.jobQueue)
}

// worker drains the queue into size- and time-bounded batches.
func (p *Pool) worker(id int) {
	defer p.wg.Done()

	batch := make([]models.PlayerStatLine, 0, p.config.BatchSize)
	ticker := time.NewTicker(p.config.FlushInterval)
	defer ticker.Stop()

	flush := func() {
		if len(batch) == 0 {
			return
		}

		start := time.Now()
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		err := p.config.Writer.InsertStatLines(ctx, batch)
		cancel()

		if err != nil {
			p.logger.Errorw("Batch insert failed",
				"worker", id,
				"batchSize", len(batch),
				"error", err,
			)
			linesFailed.Add(float64(len(batch)))
		} else {
			linesProcessed.Add(float64(len(batch)))
		}
		batchInsertDuration.Observe(time.Since(start).Seconds())

		batch = batch[:0]
	}

	for {
		select {
		case line, ok := <-p.jobQueue:
			if !ok {
				flush()
				return
			}
			batch = append(batch, line)
			if len(batch) >= p.config.BatchSize {
				flush()
			}

		case <-ticker.C:
			flush()

		case <-p.ctx.Done():
			flush()
			return
		}
	}
}

func (p *Pool) reportQueueDepth() {
	ticker := time.NewTicker(5 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			queueDepth.Set(float64(len(p.jobQueue)))
		case <-p.ctx.Done():
			return
		}
	}
}
