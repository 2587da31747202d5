package features

import (
	"math"
	"time"

	"github.com/J-Stoned/fantasy-ai-ultimate/internal/lookup"
	"github.com/J-Stoned/fantasy-ai-ultimate/internal/models"
)

// FeatureCount is the fixed width of every feature vector. The trailing
// home-advantage column is currently a constant 1.0; it stays because the
// 23-column shape is load-bearing for models trained against earlier runs.
const FeatureCount = 23

// Normalization constants. Player-stat and environment features are scaled
// to roughly [0,1] so no single column dominates before standardization.
const (
	playerMeanScale = 20.0
	playerSumScale  = 200.0
	injuryCap       = 5.0
	tempScale       = 100.0
	windScale       = 30.0
	defaultTemp     = 72.0
	defaultWind     = 5.0
)

// deriveVector computes the 23-element feature vector for a game from both
// teams' pre-game rolling state and the auxiliary lookups. It must only read
// state accumulated from strictly earlier games.
func deriveVector(g models.Game, home, away *TeamState, lk *lookup.Lookups) []float64 {
	v := make([]float64, 0, FeatureCount)

	// 1-2: win rates
	v = append(v, home.WinRate(), away.WinRate())

	// 3-4: average points scored
	v = append(v, home.AvgPointsFor(), away.AvgPointsFor())

	// 5-6: average points allowed
	v = append(v, home.AvgPointsAgainst(), away.AvgPointsAgainst())

	// 7-8: recent form over the last 5 outcomes
	v = append(v, home.FormMean(), away.FormMean())

	// 9: win-rate differential
	v = append(v, home.WinRate()-away.WinRate())

	// 10-11: point differential per game
	v = append(v, home.PointDiffPerGame(), away.PointDiffPerGame())

	// 12-13: player points aggregates for this game, 0 when the stats
	// table had no points column or no rows for the game
	var pointsMean, pointsSum float64
	if agg, ok := lk.StatsByGame[g.ID]; ok && agg.Points != nil {
		pointsMean = agg.Points.Mean
		pointsSum = agg.Points.Sum
	}
	v = append(v, pointsMean/playerMeanScale, pointsSum/playerSumScale)

	// 14-15: injury counts, capped and scaled to [0,1]
	v = append(v,
		math.Min(float64(lk.InjuriesByTeam[g.HomeTeamID])/injuryCap, 1.0),
		math.Min(float64(lk.InjuriesByTeam[g.AwayTeamID])/injuryCap, 1.0),
	)

	// 16-17: weather, with league-typical defaults when no record exists
	temp, wind := defaultTemp, defaultWind
	if w, ok := lk.WeatherByGame[g.ID]; ok {
		if w.Temperature != nil {
			temp = *w.Temperature
		}
		if w.WindSpeed != nil {
			wind = *w.WindSpeed
		}
	}
	v = append(v, temp/tempScale, wind/windScale)

	// 18-19: squashed team sentiment; an absent team reads as tanh(0)=0
	v = append(v,
		math.Tanh(lk.SentimentByTeam[g.HomeTeamID]),
		math.Tanh(lk.SentimentByTeam[g.AwayTeamID]),
	)

	// 20-22: time-of-game features
	v = append(v,
		float64(g.CreatedAt.Hour())/24.0,
		float64(mondayIndexedWeekday(g.CreatedAt))/7.0,
		float64(g.CreatedAt.Month())/12.0,
	)

	// 23: home-advantage indicator
	v = append(v, 1.0)

	return v
}

// mondayIndexedWeekday maps time.Weekday (Sunday=0) to Monday=0..Sunday=6,
// the convention the feature was trained with.
func mondayIndexedWeekday(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}
