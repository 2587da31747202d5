// The trainer runs one dataset build end to end: load the five input
// tables, run the feature pipeline, publish team forms, and report the
// split sizes. Downstream model training consumes the arrays it produces.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/J-Stoned/fantasy-ai-ultimate/internal/cache"
	"github.com/J-Stoned/fantasy-ai-ultimate/internal/config"
	"github.com/J-Stoned/fantasy-ai-ultimate/internal/features"
	"github.com/J-Stoned/fantasy-ai-ultimate/internal/pipeline"
	"github.com/J-Stoned/fantasy-ai-ultimate/internal/store"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		return fmt.Errorf("building logger: %w", err)
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	pg, err := pgxpool.New(ctx, cfg.PostgresURL)
	if err != nil {
		return fmt.Errorf("connecting to postgres: %w", err)
	}
	defer pg.Close()

	chOpts, err := clickhouse.ParseDSN(cfg.ClickHouseURL)
	if err != nil {
		return fmt.Errorf("parsing clickhouse url: %w", err)
	}
	ch, err := clickhouse.Open(chOpts)
	if err != nil {
		return fmt.Errorf("connecting to clickhouse: %w", err)
	}
	defer ch.Close()

	redisOpts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return fmt.Errorf("parsing redis url: %w", err)
	}
	rdb := redis.NewClient(redisOpts)
	defer rdb.Close()

	loader := store.NewLoader(store.NewPostgresStore(pg), store.NewStatLineStore(ch))
	tables, err := loader.LoadTables(ctx)
	if err != nil {
		return err
	}

	params := pipeline.Params{
		MinTeamGames:    cfg.MinTeamGames,
		HoldoutFraction: cfg.HoldoutFraction,
		Seed:            cfg.SplitSeed,
	}
	res, err := pipeline.Run(ctx, tables, params, sugar)
	if err != nil {
		return err
	}

	if err := cache.NewFormCache(rdb).Publish(ctx, res.Forms); err != nil {
		sugar.Warnw("Failed to publish team forms", "error", err)
	}

	sugar.Infow("Training dataset built",
		"samples", res.Stats.Emitted,
		"features", features.FeatureCount,
		"train", len(res.TrainY),
		"val", len(res.ValY),
		"test", len(res.TestY),
		"teams", res.Stats.TeamsSeen,
	)
	return nil
}
