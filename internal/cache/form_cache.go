// Package cache publishes post-build team form snapshots to Redis so the
// API can answer team-form queries without recomputing the pipeline.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/J-Stoned/fantasy-ai-ultimate/internal/models"
)

const formKey = "team_forms"

// ErrFormNotFound reports that no form snapshot exists for a team, either
// because the team is unknown or because no build has run yet.
var ErrFormNotFound = errors.New("team form not found")

type FormCache struct {
	rdb *redis.Client
}

func NewFormCache(rdb *redis.Client) *FormCache {
	return &FormCache{rdb: rdb}
}

// Publish replaces the cached snapshot for every team in one pipeline
// round-trip.
func (c *FormCache) Publish(ctx context.Context, forms map[string]models.TeamForm) error {
	if len(forms) == 0 {
		return nil
	}

	pipe := c.rdb.Pipeline()
	for teamID, form := range forms {
		data, err := json.Marshal(form)
		if err != nil {
			return fmt.Errorf("marshaling form for team %s: %w", teamID, err)
		}
		pipe.HSet(ctx, formKey, teamID, data)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("publishing team forms: %w", err)
	}
	return nil
}

// Get returns one team's cached form.
func (c *FormCache) Get(ctx context.Context, teamID string) (*models.TeamForm, error) {
	data, err := c.rdb.HGet(ctx, formKey, teamID).Bytes()
	if err == redis.Nil {
		return nil, ErrFormNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("fetching team form: %w", err)
	}

	var form models.TeamForm
	if err := json.Unmarshal(data, &form); err != nil {
		return nil, fmt.Errorf("decoding team form: %w", err)
	}
	return &form, nil
}
