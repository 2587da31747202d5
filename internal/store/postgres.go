// Package store loads the five input tables from backing storage: games,
// injuries, weather and sentiment from Postgres, and the high-volume
// per-player stat lines from ClickHouse.
package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/J-Stoned/fantasy-ai-ultimate/internal/models"
)

// PgPool defines the interface for the PostgreSQL connection pool.
type PgPool interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

type PostgresStore struct {
	pg PgPool
}

func NewPostgresStore(pg PgPool) *PostgresStore {
	return &PostgresStore{pg: pg}
}

// LoadGames returns all games ordered by creation time, the chronological
// order the feature pipeline depends on.
func (s *PostgresStore) LoadGames(ctx context.Context) ([]models.Game, error) {
	rows, err := s.pg.Query(ctx, `
		SELECT id::text, home_team_id::text, away_team_id::text,
		       home_score, away_score, created_at
		FROM games
		ORDER BY created_at, id
	`)
	if err != nil {
		return nil, fmt.Errorf("games query failed: %w", err)
	}
	defer rows.Close()

	var games []models.Game
	for rows.Next() {
		var g models.Game
		if err := rows.Scan(&g.ID, &g.HomeTeamID, &g.AwayTeamID, &g.HomeScore, &g.AwayScore, &g.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan game: %w", err)
		}
		games = append(games, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("games row iteration failed: %w", err)
	}
	return games, nil
}

func (s *PostgresStore) LoadInjuries(ctx context.Context) ([]models.InjuryReport, error) {
	rows, err := s.pg.Query(ctx, `
		SELECT team_id::text, COALESCE(severity, '')
		FROM injuries
	`)
	if err != nil {
		return nil, fmt.Errorf("injuries query failed: %w", err)
	}
	defer rows.Close()

	var injuries []models.InjuryReport
	for rows.Next() {
		var inj models.InjuryReport
		if err := rows.Scan(&inj.TeamID, &inj.Severity); err != nil {
			return nil, fmt.Errorf("failed to scan injury: %w", err)
		}
		injuries = append(injuries, inj)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("injuries row iteration failed: %w", err)
	}
	return injuries, nil
}

func (s *PostgresStore) LoadWeather(ctx context.Context) ([]models.WeatherRecord, error) {
	rows, err := s.pg.Query(ctx, `
		SELECT COALESCE(game_id::text, ''), temperature, wind_speed
		FROM weather
	`)
	if err != nil {
		return nil, fmt.Errorf("weather query failed: %w", err)
	}
	defer rows.Close()

	var records []models.WeatherRecord
	for rows.Next() {
		var rec models.WeatherRecord
		if err := rows.Scan(&rec.GameID, &rec.Temperature, &rec.WindSpeed); err != nil {
			return nil, fmt.Errorf("failed to scan weather record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("weather row iteration failed: %w", err)
	}
	return records, nil
}

func (s *PostgresStore) LoadSentiment(ctx context.Context) ([]models.SentimentRecord, error) {
	rows, err := s.pg.Query(ctx, `
		SELECT team_id::text, sentiment_score
		FROM sentiment
	`)
	if err != nil {
		return nil, fmt.Errorf("sentiment query failed: %w", err)
	}
	defer rows.Close()

	var records []models.SentimentRecord
	for rows.Next() {
		var rec models.SentimentRecord
		if err := rows.Scan(&rec.TeamID, &rec.Score); err != nil {
			return nil, fmt.Errorf("failed to scan sentiment record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sentiment row iteration failed: %w", err)
	}
	return records, nil
}
