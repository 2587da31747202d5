// Package pipeline assembles the training dataset: it builds the auxiliary
// lookups, runs the sequential feature-engineering pass, splits the result
// 70/15/15 stratified by label, and standardizes each split with a scaler
// fitted on train only.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/J-Stoned/fantasy-ai-ultimate/internal/features"
	"github.com/J-Stoned/fantasy-ai-ultimate/internal/lookup"
	"github.com/J-Stoned/fantasy-ai-ultimate/internal/models"
)

// ErrNoSamples reports that the pass over the games table emitted zero
// (vector, label) pairs. This stops the pipeline before splitting or scaling
// can run on empty arrays.
var ErrNoSamples = errors.New("no training samples produced")

// Tables is the input boundary: the five already-loaded tabular datasets.
// Games are assumed to be in chronological order.
type Tables struct {
	Games       []models.Game
	PlayerStats []models.PlayerStatLine
	Injuries    []models.InjuryReport
	Weather     []models.WeatherRecord
	Sentiment   []models.SentimentRecord
}

// Params tunes a pipeline run.
type Params struct {
	MinTeamGames    int     // warm-up gate, default features.DefaultMinGames
	HoldoutFraction float64 // combined val+test share, default 0.30
	Seed            int64   // split shuffle seed, default 42
}

// DefaultParams returns the parameters the production model was trained with.
func DefaultParams() Params {
	return Params{
		MinTeamGames:    features.DefaultMinGames,
		HoldoutFraction: 0.30,
		Seed:            42,
	}
}

// Result carries the six output arrays, the fitted scaler, and the final
// rolling team states.
type Result struct {
	TrainX [][]float64
	ValX   [][]float64
	TestX  [][]float64
	TrainY []int
	ValY   []int
	TestY  []int

	Scaler *Scaler
	Forms  map[string]models.TeamForm
	Stats  features.Stats
}

// Run executes the full pipeline over already-loaded tables. Row counts and
// split sizes are logged before any fatal error so a caller can diagnose
// which stage starved the pipeline.
func Run(ctx context.Context, t Tables, p Params, logger *zap.SugaredLogger) (*Result, error) {
	start := time.Now()

	if p.MinTeamGames <= 0 {
		p.MinTeamGames = features.DefaultMinGames
	}
	if p.HoldoutFraction <= 0 {
		p.HoldoutFraction = 0.30
	}

	logger.Infow("Engineering features",
		"games", len(t.Games),
		"playerStats", len(t.PlayerStats),
		"injuries", len(t.Injuries),
		"weather", len(t.Weather),
		"sentiment", len(t.Sentiment),
	)

	lk, err := lookup.Build(ctx, t.PlayerStats, t.Injuries, t.Weather, t.Sentiment)
	if err != nil {
		return nil, fmt.Errorf("lookup build failed: %w", err)
	}

	proc := features.NewProcessor(lk, p.MinTeamGames)
	X, y, stats := proc.ProcessAll(t.Games)

	gamesProcessed.Add(float64(stats.Games))
	gamesNoResult.Add(float64(stats.NoResult))
	gamesGated.Add(float64(stats.Gated))
	samplesEmitted.Add(float64(stats.Emitted))

	logger.Infow("Feature pass complete",
		"samples", stats.Emitted,
		"features", features.FeatureCount,
		"noResult", stats.NoResult,
		"warmupGated", stats.Gated,
		"teams", stats.TeamsSeen,
	)

	if len(X) == 0 {
		return nil, fmt.Errorf("%w: games=%d, gated=%d, noResult=%d (empty input or insufficient warm-up history)",
			ErrNoSamples, stats.Games, stats.Gated, stats.NoResult)
	}

	split, err := StratifiedSplit(y, p.HoldoutFraction, p.Seed)
	if err != nil {
		return nil, fmt.Errorf("splitting %d samples: %w", len(X), err)
	}

	scaler, err := FitScaler(Take(X, split.Train))
	if err != nil {
		return nil, fmt.Errorf("fitting scaler: %w", err)
	}

	res := &Result{
		TrainX: scaler.Transform(Take(X, split.Train)),
		ValX:   scaler.Transform(Take(X, split.Val)),
		TestX:  scaler.Transform(Take(X, split.Test)),
		TrainY: TakeLabels(y, split.Train),
		ValY:   TakeLabels(y, split.Val),
		TestY:  TakeLabels(y, split.Test),
		Scaler: scaler,
		Forms:  proc.Store().Snapshot(),
		Stats:  stats,
	}

	buildDuration.Observe(time.Since(start).Seconds())
	logger.Infow("Dataset ready",
		"train", len(res.TrainY),
		"val", len(res.ValY),
		"test", len(res.TestY),
		"duration", time.Since(start),
	)

	return res, nil
}
