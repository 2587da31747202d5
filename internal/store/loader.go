package store

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/J-Stoned/fantasy-ai-ultimate/internal/pipeline"
)

// Loader fetches all five tables, Postgres and ClickHouse in parallel.
// It implements pipeline.TableLoader.
type Loader struct {
	pg *PostgresStore
	ch *StatLineStore
}

func NewLoader(pg *PostgresStore, ch *StatLineStore) *Loader {
	return &Loader{pg: pg, ch: ch}
}

// LoadTables loads the five inputs concurrently. Any single failure fails
// the load; the pipeline cannot run on a partial set of tables.
func (l *Loader) LoadTables(ctx context.Context) (pipeline.Tables, error) {
	var t pipeline.Tables

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		t.Games, err = l.pg.LoadGames(gctx)
		return err
	})
	g.Go(func() (err error) {
		t.PlayerStats, err = l.ch.LoadPlayerStats(gctx)
		return err
	})
	g.Go(func() (err error) {
		t.Injuries, err = l.pg.LoadInjuries(gctx)
		return err
	})
	g.Go(func() (err error) {
		t.Weather, err = l.pg.LoadWeather(gctx)
		return err
	})
	g.Go(func() (err error) {
		t.Sentiment, err = l.pg.LoadSentiment(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return pipeline.Tables{}, fmt.Errorf("loading input tables: %w", err)
	}
	return t, nil
}
