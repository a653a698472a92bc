package handlers

import (
	"net/http"

	"github.com/Silver0524/MatPredict/internal/models"
)

// ListSeasons returns all known seasons, most recent first
// @Summary List Seasons
// @Tags Seasons
// @Produce json
// @Success 200 {array} models.Season
// @Router /seasons [get]
func (h *Handler) ListSeasons(w http.ResponseWriter, r *http.Request) {
	seasons, err := h.catalog.ListSeasons(r.Context())
	if err != nil {
		h.logger.Errorw("Failed to list seasons", "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Failed to list seasons")
		return
	}
	if seasons == nil {
		seasons = []models.Season{}
	}
	h.jsonResponse(w, http.StatusOK, seasons)
}

// ListWeightClasses returns the weight class catalog ordered by weight
// @Summary List Weight Classes
// @Tags Seasons
// @Produce json
// @Success 200 {array} models.WeightClass
// @Router /weight-classes [get]
func (h *Handler) ListWeightClasses(w http.ResponseWriter, r *http.Request) {
	classes, err := h.catalog.ListWeightClasses(r.Context())
	if err != nil {
		h.logger.Errorw("Failed to list weight classes", "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Failed to list weight classes")
		return
	}
	if classes == nil {
		classes = []models.WeightClass{}
	}
	h.jsonResponse(w, http.StatusOK, classes)
}
