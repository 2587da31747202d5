package handlers

import (
	"errors"
	"net/http"

	"github.com/J-Stoned/fantasy-ai-ultimate/internal/pipeline"
)

// BuildDataset handles POST /api/v1/datasets/build
// @Summary Build Training Dataset
// @Description Loads the five input tables, runs the feature pipeline, and returns a build summary
// @Tags Datasets
// @Produce json
// @Success 200 {object} models.DatasetSummary
// @Failure 422 {object} map[string]string "No samples produced"
// @Failure 500 {object} map[string]string "Internal Error"
// @Router /datasets/build [post]
func (h *Handler) BuildDataset(w http.ResponseWriter, r *http.Request) {
	summary, err := h.dataset.Build(r.Context())
	if err != nil {
		if errors.Is(err, pipeline.ErrNoSamples) || errors.Is(err, pipeline.ErrStratify) {
			h.logger.Warnw("Dataset build produced no usable dataset", "error", err)
			h.errorResponse(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		h.logger.Errorw("Dataset build failed", "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Failed to build dataset")
		return
	}

	h.jsonResponse(w, http.StatusOK, summary)
}

// GetLatestDataset handles GET /api/v1/datasets/latest
// @Summary Latest Build Summary
// @Description Returns the summary of the most recent successful dataset build
// @Tags Datasets
// @Produce json
// @Success 200 {object} models.DatasetSummary
// @Failure 404 {object} map[string]string "No build since startup"
// @Router /datasets/latest [get]
func (h *Handler) GetLatestDataset(w http.ResponseWriter, r *http.Request) {
	summary := h.dataset.Latest()
	if summary == nil {
		h.errorResponse(w, http.StatusNotFound, "No dataset built yet")
		return
	}
	h.jsonResponse(w, http.StatusOK, summary)
}
