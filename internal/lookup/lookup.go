// Package lookup converts the four auxiliary tables into constant-time
// lookup structures consumed by the feature pipeline. Builders are pure and
// tolerate missing or malformed optional columns by producing "no data for
// this key" rather than failing the build.
package lookup

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/J-Stoned/fantasy-ai-ultimate/internal/models"
)

// Lookups holds the four immutable lookup structures. Built once before the
// game loop and never mutated during it.
type Lookups struct {
	StatsByGame     map[string]models.GameStatAggregate
	InjuriesByTeam  map[string]int
	WeatherByGame   map[string]models.WeatherRecord
	SentimentByTeam map[string]float64
}

// Build constructs all four lookups. The builders have no cross-row
// dependencies, so they run concurrently.
func Build(ctx context.Context, stats []models.PlayerStatLine, injuries []models.InjuryReport,
	weather []models.WeatherRecord, sentiment []models.SentimentRecord) (*Lookups, error) {

	lk := &Lookups{}

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		lk.StatsByGame = StatsByGame(stats)
		return nil
	})
	g.Go(func() error {
		lk.InjuriesByTeam = InjuriesByTeam(injuries)
		return nil
	})
	g.Go(func() error {
		lk.WeatherByGame = WeatherByGame(weather)
		return nil
	})
	g.Go(func() error {
		lk.SentimentByTeam = SentimentByTeam(sentiment)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return lk, nil
}

// columnAccum accumulates one stat column for one game.
type columnAccum struct {
	sum   float64
	max   float64
	count int
}

func (a *columnAccum) add(v float64) {
	if a.count == 0 || v > a.max {
		a.max = v
	}
	a.sum += v
	a.count++
}

func (a *columnAccum) summary() *models.StatSummary {
	if a.count == 0 {
		return nil
	}
	return &models.StatSummary{
		Mean: a.sum / float64(a.count),
		Sum:  a.sum,
		Max:  a.max,
	}
}

// StatsByGame groups player stat lines by game and aggregates mean/sum/max
// for each column present in the input. Rows without a game id are skipped;
// an empty table yields an empty map.
func StatsByGame(lines []models.PlayerStatLine) map[string]models.GameStatAggregate {
	type gameAccum struct {
		points, rebounds, assists, turnovers, minutes columnAccum
	}

	accums := make(map[string]*gameAccum)

	for _, line := range lines {
		if line.GameID == "" {
			continue
		}
		acc, ok := accums[line.GameID]
		if !ok {
			acc = &gameAccum{}
			accums[line.GameID] = acc
		}
		if line.Points != nil {
			acc.points.add(*line.Points)
		}
		if line.Rebounds != nil {
			acc.rebounds.add(*line.Rebounds)
		}
		if line.Assists != nil {
			acc.assists.add(*line.Assists)
		}
		if line.Turnovers != nil {
			acc.turnovers.add(*line.Turnovers)
		}
		if line.Minutes != nil {
			acc.minutes.add(*line.Minutes)
		}
	}

	out := make(map[string]models.GameStatAggregate, len(accums))
	for gameID, acc := range accums {
		out[gameID] = models.GameStatAggregate{
			Points:    acc.points.summary(),
			Rebounds:  acc.rebounds.summary(),
			Assists:   acc.assists.summary(),
			Turnovers: acc.turnovers.summary(),
			Minutes:   acc.minutes.summary(),
		}
	}
	return out
}

// InjuriesByTeam counts active injury reports per team.
func InjuriesByTeam(injuries []models.InjuryReport) map[string]int {
	out := make(map[string]int, len(injuries))
	for _, inj := range injuries {
		if inj.TeamID == "" {
			continue
		}
		out[inj.TeamID]++
	}
	return out
}

// WeatherByGame maps each weather row to its game. Rows without a usable
// game id are skipped; a later row for the same game wins.
func WeatherByGame(records []models.WeatherRecord) map[string]models.WeatherRecord {
	out := make(map[string]models.WeatherRecord, len(records))
	for _, rec := range records {
		if rec.GameID == "" {
			continue
		}
		out[rec.GameID] = rec
	}
	return out
}

// SentimentByTeam averages sentiment scores per team. Rows missing a team id
// or a score are skipped.
func SentimentByTeam(records []models.SentimentRecord) map[string]float64 {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, rec := range records {
		if rec.TeamID == "" || rec.Score == nil {
			continue
		}
		sums[rec.TeamID] += *rec.Score
		counts[rec.TeamID]++
	}

	out := make(map[string]float64, len(sums))
	for teamID, sum := range sums {
		out[teamID] = sum / float64(counts[teamID])
	}
	return out
}
