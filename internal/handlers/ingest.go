package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/J-Stoned/fantasy-ai-ultimate/internal/models"
)

// statLinePayload wraps the wire format so required fields can be validated
// before a row reaches the queue.
type statLinePayload struct {
	GameID    string   `json:"game_id" validate:"required"`
	Points    *float64 `json:"points"`
	Rebounds  *float64 `json:"rebounds"`
	Assists   *float64 `json:"assists"`
	Turnovers *float64 `json:"turnovers"`
	Minutes   *float64 `json:"minutes"`
}

// IngestStatLines handles POST /api/v1/ingest/stats
// @Summary Ingest Player Stat Lines
// @Description Accepts newline-separated JSON stat lines from data feeds
// @Tags Ingestion
// @Accept json
// @Produce json
// @Param body body []models.PlayerStatLine true "Stat lines"
// @Success 202 {object} map[string]int "Accepted"
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /ingest/stats [post]
func (h *Handler) IngestStatLines(w http.ResponseWriter, r *http.Request) {
	// Limit request body to 1MB to prevent DoS
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodySize)
	body, err := io.ReadAll(r.Body)
	if err != nil {
		h.errorResponse(w, http.StatusRequestEntityTooLarge, "Request body too large")
		return
	}
	defer r.Body.Close()

	lines := strings.Split(string(body), "\n")
	accepted := 0
	rejected := 0
	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		var payload statLinePayload
		if err := json.Unmarshal([]byte(line), &payload); err != nil {
			h.logger.Warnw("Skipping malformed stat line", "lineNum", i, "error", err)
			rejected++
			continue
		}
		if err := h.validator.Struct(payload); err != nil {
			h.logger.Warnw("Skipping invalid stat line", "lineNum", i, "error", err)
			rejected++
			continue
		}

		ok := h.pool.Enqueue(models.PlayerStatLine{
			GameID:    payload.GameID,
			Points:    payload.Points,
			Rebounds:  payload.Rebounds,
			Assists:   payload.Assists,
			Turnovers: payload.Turnovers,
			Minutes:   payload.Minutes,
		})
		if !ok {
			h.errorResponse(w, http.StatusServiceUnavailable,
				fmt.Sprintf("Ingest queue full after %d lines", accepted))
			return
		}
		accepted++
	}

	if accepted == 0 && rejected > 0 {
		h.errorResponse(w, http.StatusBadRequest, "No valid stat lines in body")
		return
	}

	h.jsonResponse(w, http.StatusAccepted, map[string]int{
		"accepted": accepted,
		"rejected": rejected,
	})
}
