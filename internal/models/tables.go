package models

import "time"

// Game is a single scheduled or completed game. Scores are nil for games
// that have not been played (or were cancelled); those games contribute
// nothing to training data.
type Game struct {
	ID         string    `json:"id"`
	HomeTeamID string    `json:"home_team_id"`
	AwayTeamID string    `json:"away_team_id"`
	HomeScore  *int      `json:"home_score"`
	AwayScore  *int      `json:"away_score"`
	CreatedAt  time.Time `json:"created_at"`
}

// HasResult reports whether both final scores are recorded.
func (g Game) HasResult() bool {
	return g.HomeScore != nil && g.AwayScore != nil
}

// HomeWon applies the label rule: strictly home_score > away_score.
// An equal score counts as an away win; the source domain (basketball with
// overtime) should never produce one, but the rule is pinned down anyway.
func (g Game) HomeWon() bool {
	return g.HasResult() && *g.HomeScore > *g.AwayScore
}

// PlayerStatLine is one player's box-score line for one game. Individual
// stat columns are nil when the upstream feed did not carry that column.
type PlayerStatLine struct {
	GameID    string   `json:"game_id"`
	Points    *float64 `json:"points"`
	Rebounds  *float64 `json:"rebounds"`
	Assists   *float64 `json:"assists"`
	Turnovers *float64 `json:"turnovers"`
	Minutes   *float64 `json:"minutes"`
}

// InjuryReport is a single active injury. Only presence matters for the
// feature set; severity is kept for the API surface.
type InjuryReport struct {
	TeamID   string `json:"team_id"`
	Severity string `json:"severity"`
}

// WeatherRecord holds game-day conditions keyed by game.
type WeatherRecord struct {
	GameID      string   `json:"game_id"`
	Temperature *float64 `json:"temperature"`
	WindSpeed   *float64 `json:"wind_speed"`
}

// SentimentRecord is one fan-sentiment reading for a team.
type SentimentRecord struct {
	TeamID string   `json:"team_id"`
	Score  *float64 `json:"sentiment_score"`
}
