package pipeline

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	gamesProcessed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fantasy_games_processed_total",
		Help: "Total number of input games walked by the feature pipeline",
	})

	gamesNoResult = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fantasy_games_no_result_total",
		Help: "Games skipped because one or both final scores were missing",
	})

	gamesGated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fantasy_games_warmup_gated_total",
		Help: "Scored games that updated state but emitted no sample due to the warm-up gate",
	})

	samplesEmitted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fantasy_samples_emitted_total",
		Help: "Feature/label pairs emitted into training datasets",
	})

	buildDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "fantasy_dataset_build_duration_seconds",
		Help:    "Duration of full dataset builds",
		Buckets: prometheus.DefBuckets,
	})
)
