package models

import "time"

// TeamForm is the rolling-state snapshot published to Redis after a pipeline
// run so the API can serve a team's current form without recomputing.
type TeamForm struct {
	TeamID        string    `json:"team_id"`
	GamesPlayed   int       `json:"games_played"`
	Wins          int       `json:"wins"`
	Losses        int       `json:"losses"`
	WinRate       float64   `json:"win_rate"`
	PointsFor     int       `json:"points_for"`
	PointsAgainst int       `json:"points_against"`
	RecentForm    []int     `json:"recent_form"`
	Streak        int       `json:"streak"`
	HomeGames     int       `json:"home_games"`
	HomeWins      int       `json:"home_wins"`
	AwayGames     int       `json:"away_games"`
	AwayWins      int       `json:"away_wins"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// DatasetSummary describes the outcome of a dataset build for API consumers.
type DatasetSummary struct {
	Games        int           `json:"games"`
	PlayerStats  int           `json:"player_stats"`
	Injuries     int           `json:"injuries"`
	Weather      int           `json:"weather"`
	Sentiment    int           `json:"sentiment"`
	Samples      int           `json:"samples"`
	FeatureCount int           `json:"feature_count"`
	TrainSize    int           `json:"train_size"`
	ValSize      int           `json:"val_size"`
	TestSize     int           `json:"test_size"`
	Teams        int           `json:"teams"`
	BuildTime    time.Duration `json:"build_time"`
}
