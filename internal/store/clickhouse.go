package store

import (
	"context"
	"fmt"

	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
	"github.com/google/uuid"

	"github.com/J-Stoned/fantasy-ai-ultimate/internal/models"
)

// StatLineStore reads and writes per-player box-score lines in ClickHouse.
// Stat lines are the one event-scale table, so they live next to the batch
// ingest path rather than in Postgres.
type StatLineStore struct {
	ch driver.Conn
}

func NewStatLineStore(ch driver.Conn) *StatLineStore {
	return &StatLineStore{ch: ch}
}

// LoadPlayerStats returns every stat line. Stat columns come back nil when
// the ingested row did not carry them.
func (s *StatLineStore) LoadPlayerStats(ctx context.Context) ([]models.PlayerStatLine, error) {
	rows, err := s.ch.Query(ctx, `
		SELECT toString(game_id), points, rebounds, assists, turnovers, minutes
		FROM fantasy_stats.player_stat_lines
	`)
	if err != nil {
		return nil, fmt.Errorf("player stats query failed: %w", err)
	}
	defer rows.Close()

	var lines []models.PlayerStatLine
	for rows.Next() {
		var line models.PlayerStatLine
		if err := rows.Scan(&line.GameID, &line.Points, &line.Rebounds, &line.Assists, &line.Turnovers, &line.Minutes); err != nil {
			return nil, fmt.Errorf("failed to scan stat line: %w", err)
		}
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("stat line row iteration failed: %w", err)
	}
	return lines, nil
}

// InsertStatLines lands a batch of stat lines. Game ids are normalized to
// UUIDs so ingested rows always join against the games table.
func (s *StatLineStore) InsertStatLines(ctx context.Context, lines []models.PlayerStatLine) error {
	if len(lines) == 0 {
		return nil
	}

	batch, err := s.ch.PrepareBatch(ctx, `
		INSERT INTO fantasy_stats.player_stat_lines (
			game_id, points, rebounds, assists, turnovers, minutes
		)
	`)
	if err != nil {
		return fmt.Errorf("prepare batch failed: %w", err)
	}

	for _, line := range lines {
		err := batch.Append(
			NormalizeID(line.GameID),
			line.Points,
			line.Rebounds,
			line.Assists,
			line.Turnovers,
			line.Minutes,
		)
		if err != nil {
			return fmt.Errorf("append stat line failed: %w", err)
		}
	}

	if err := batch.Send(); err != nil {
		return fmt.Errorf("send batch failed: %w", err)
	}
	return nil
}

// NormalizeID canonicalizes an identifier to UUID form. Non-UUID ids map to
// a deterministic UUID so the same external id always lands on the same key.
func NormalizeID(s string) string {
	if id, err := uuid.Parse(s); err == nil {
		return id.String()
	}
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(s)).String()
}
