// Package features implements the sequential, stateful feature-engineering
// pass: per-team rolling aggregates updated across a time-ordered game
// sequence, and a leakage-free 23-element feature vector derived from both
// teams' state before each game's outcome is revealed.
package features

import (
	"github.com/J-Stoned/fantasy-ai-ultimate/internal/models"
)

const (
	// FormWindow bounds the recent-form sliding window.
	FormWindow = 10
	// formLookback is how many of the most recent outcomes feed the
	// recent-form feature.
	formLookback = 5
)

// TeamState holds one team's rolling statistics. All mutation funnels
// through StateStore.Record so the happens-before ordering between games is
// enforced in one place.
type TeamState struct {
	GamesPlayed   int
	Wins          int
	Losses        int
	PointsFor     int
	PointsAgainst int

	// RecentForm holds the last FormWindow outcomes, 1 for a win and 0
	// for a loss, oldest first.
	RecentForm []int

	// Streak is positive for consecutive wins, negative for consecutive
	// losses.
	Streak int

	// Home/away splits are not part of the minimal feature set but are
	// exposed on the team-form API.
	HomeGames int
	HomeWins  int
	AwayGames int
	AwayWins  int
}

// WinRate returns wins over games played, 0 for a team with no history.
func (s *TeamState) WinRate() float64 {
	if s.GamesPlayed == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.GamesPlayed)
}

// AvgPointsFor returns points scored per game played.
func (s *TeamState) AvgPointsFor() float64 {
	if s.GamesPlayed == 0 {
		return 0
	}
	return float64(s.PointsFor) / float64(s.GamesPlayed)
}

// AvgPointsAgainst returns points conceded per game played.
func (s *TeamState) AvgPointsAgainst() float64 {
	if s.GamesPlayed == 0 {
		return 0
	}
	return float64(s.PointsAgainst) / float64(s.GamesPlayed)
}

// PointDiffPerGame returns (points for - points against) per game played.
func (s *TeamState) PointDiffPerGame() float64 {
	if s.GamesPlayed == 0 {
		return 0
	}
	return float64(s.PointsFor-s.PointsAgainst) / float64(s.GamesPlayed)
}

// FormMean averages the last formLookback recent-form entries. A team with
// no recorded form gets 0.5, a neutral prior.
func (s *TeamState) FormMean() float64 {
	form := s.RecentForm
	if len(form) > formLookback {
		form = form[len(form)-formLookback:]
	}
	if len(form) == 0 {
		return 0.5
	}
	sum := 0
	for _, v := range form {
		sum += v
	}
	return float64(sum) / float64(len(form))
}

// recordResult applies one game outcome. won is 1/0, scored/conceded are
// this team's points for and against.
func (s *TeamState) recordResult(won bool, scored, conceded int, home bool) {
	s.GamesPlayed++
	s.PointsFor += scored
	s.PointsAgainst += conceded

	if home {
		s.HomeGames++
	} else {
		s.AwayGames++
	}

	if won {
		s.Wins++
		s.RecentForm = append(s.RecentForm, 1)
		if home {
			s.HomeWins++
		} else {
			s.AwayWins++
		}
		if s.Streak > 0 {
			s.Streak++
		} else {
			s.Streak = 1
		}
	} else {
		s.Losses++
		s.RecentForm = append(s.RecentForm, 0)
		if s.Streak < 0 {
			s.Streak--
		} else {
			s.Streak = -1
		}
	}

	if len(s.RecentForm) > FormWindow {
		s.RecentForm = s.RecentForm[len(s.RecentForm)-FormWindow:]
	}
}

// StateStore maps team ids to their mutable rolling state. It is owned and
// mutated exclusively by the single sequential game-processing loop.
type StateStore struct {
	states map[string]*TeamState
}

// NewStateStore returns an empty store.
func NewStateStore() *StateStore {
	return &StateStore{states: make(map[string]*TeamState)}
}

// Get returns the state for a team, creating an all-zero entry on first
// encounter.
func (st *StateStore) Get(teamID string) *TeamState {
	s, ok := st.states[teamID]
	if !ok {
		s = &TeamState{}
		st.states[teamID] = s
	}
	return s
}

// Record applies a completed game's result to both participants. Games
// without both scores must not reach here.
func (st *StateStore) Record(g models.Game) {
	home := st.Get(g.HomeTeamID)
	away := st.Get(g.AwayTeamID)

	homeWon := g.HomeWon()
	home.recordResult(homeWon, *g.HomeScore, *g.AwayScore, true)
	away.recordResult(!homeWon, *g.AwayScore, *g.HomeScore, false)
}

// Len returns the number of teams seen so far.
func (st *StateStore) Len() int {
	return len(st.states)
}

// Snapshot exports every team's state as API-facing form records. RecentForm
// slices are copied so later processing cannot alias store memory.
func (st *StateStore) Snapshot() map[string]models.TeamForm {
	out := make(map[string]models.TeamForm, len(st.states))
	for teamID, s := range st.states {
		form := make([]int, len(s.RecentForm))
		copy(form, s.RecentForm)
		out[teamID] = models.TeamForm{
			TeamID:        teamID,
			GamesPlayed:   s.GamesPlayed,
			Wins:          s.Wins,
			Losses:        s.Losses,
			WinRate:       s.WinRate(),
			PointsFor:     s.PointsFor,
			PointsAgainst: s.PointsAgainst,
			RecentForm:    form,
			Streak:        s.Streak,
			HomeGames:     s.HomeGames,
			HomeWins:      s.HomeWins,
			AwayGames:     s.AwayGames,
			AwayWins:      s.AwayWins,
		}
	}
	return out
}
