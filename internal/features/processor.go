package features

import (
	"github.com/J-Stoned/fantasy-ai-ultimate/internal/lookup"
	"github.com/J-Stoned/fantasy-ai-ultimate/internal/models"
)

// DefaultMinGames is the warm-up gate: a game only emits a training sample
// once both teams have at least this many prior games. It is a hard
// minimum-sample policy, not a smoothing.
const DefaultMinGames = 5

// Stats counts what happened to each input game during a processing pass.
type Stats struct {
	Games     int // input games seen
	NoResult  int // skipped entirely: one or both scores missing
	Gated     int // scored games below the warm-up gate (state still updated)
	Emitted   int // (vector, label) pairs produced
	TeamsSeen int
}

// Processor runs the single sequential feature-engineering pass. It owns the
// state store for the duration of one pass; lookups are read-only.
type Processor struct {
	store    *StateStore
	lookups  *lookup.Lookups
	minGames int
}

// NewProcessor builds a processor with a fresh state store. minGames <= 0
// falls back to DefaultMinGames.
func NewProcessor(lk *lookup.Lookups, minGames int) *Processor {
	if minGames <= 0 {
		minGames = DefaultMinGames
	}
	return &Processor{
		store:    NewStateStore(),
		lookups:  lk,
		minGames: minGames,
	}
}

// Store exposes the state store, for snapshotting after a pass.
func (p *Processor) Store() *StateStore {
	return p.store
}

// ProcessAll walks games in input order (assumed chronological) and returns
// the emitted feature vectors and labels. The state update for game N
// happens before feature derivation for game N+1, so every vector reflects
// only information available strictly before its game's outcome.
func (p *Processor) ProcessAll(games []models.Game) ([][]float64, []int, Stats) {
	var (
		vectors [][]float64
		labels  []int
		stats   Stats
	)
	stats.Games = len(games)

	for _, g := range games {
		// Teams exist from their first appearance even if the game
		// itself carries no result yet.
		home := p.store.Get(g.HomeTeamID)
		away := p.store.Get(g.AwayTeamID)

		if !g.HasResult() {
			stats.NoResult++
			continue
		}

		// Gate on strictly pre-game state.
		if home.GamesPlayed >= p.minGames && away.GamesPlayed >= p.minGames {
			vectors = append(vectors, deriveVector(g, home, away, p.lookups))
			label := 0
			if g.HomeWon() {
				label = 1
			}
			labels = append(labels, label)
			stats.Emitted++
		} else {
			stats.Gated++
		}

		// The update always runs for a scored game, gate or not.
		p.store.Record(g)
	}

	stats.TeamsSeen = p.store.Len()
	return vectors, labels, stats
}
