package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/J-Stoned/fantasy-ai-ultimate/internal/cache"
)

// GetTeamForm handles GET /api/v1/teams/{teamID}/form
// @Summary Team Rolling Form
// @Description Get a team's rolling record, scoring, recent form and streak from the last dataset build
// @Tags Teams
// @Produce json
// @Param teamID path string true "Team ID"
// @Success 200 {object} models.TeamForm
// @Failure 404 {object} map[string]string "Unknown team or no build yet"
// @Router /teams/{teamID}/form [get]
func (h *Handler) GetTeamForm(w http.ResponseWriter, r *http.Request) {
	teamID := chi.URLParam(r, "teamID")
	if teamID == "" {
		h.errorResponse(w, http.StatusBadRequest, "Missing team ID")
		return
	}

	form, err := h.forms.Get(r.Context(), teamID)
	if err != nil {
		if errors.Is(err, cache.ErrFormNotFound) {
			h.errorResponse(w, http.StatusNotFound, "No form snapshot for team")
			return
		}
		h.logger.Errorw("Failed to fetch team form", "team", teamID, "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Failed to fetch team form")
		return
	}

	h.jsonResponse(w, http.StatusOK, form)
}
