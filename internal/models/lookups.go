package models

// StatSummary aggregates one box-score column across every player line of a
// game. A nil *StatSummary on GameStatAggregate means the column was absent
// from the input, which is a different thing from a summary of zeros.
type StatSummary struct {
	Mean float64 `json:"mean"`
	Sum  float64 `json:"sum"`
	Max  float64 `json:"max"`
}

// GameStatAggregate holds the per-game player-stat aggregates for whichever
// columns the stats table actually carried.
type GameStatAggregate struct {
	Points    *StatSummary `json:"points,omitempty"`
	Rebounds  *StatSummary `json:"rebounds,omitempty"`
	Assists   *StatSummary `json:"assists,omitempty"`
	Turnovers *StatSummary `json:"turnovers,omitempty"`
	Minutes   *StatSummary `json:"minutes,omitempty"`
}
