package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Silver0524/MatPredict/internal/models"
	"github.com/Silver0524/MatPredict/internal/store"
)

// ListWrestlers returns a paged list of wrestlers
// @Summary List Wrestlers
// @Tags Wrestlers
// @Produce json
// @Param limit query int false "Limit" default(50)
// @Param page query int false "Page" default(1)
// @Success 200 {array} models.Wrestler
// @Router /wrestlers [get]
func (h *Handler) ListWrestlers(w http.ResponseWriter, r *http.Request) {
	limit := 50
	page := 1
	if l := r.URL.Query().Get("limit"); l != "" {
		if parsed, err := strconv.Atoi(l); err == nil && parsed > 0 && parsed <= 100 {
			limit = parsed
		}
	}
	if p := r.URL.Query().Get("page"); p != "" {
		if parsed, err := strconv.Atoi(p); err == nil && parsed > 0 {
			page = parsed
		}
	}

	wrestlers, err := h.catalog.ListWrestlers(r.Context(), limit, (page-1)*limit)
	if err != nil {
		h.logger.Errorw("Failed to list wrestlers", "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Failed to list wrestlers")
		return
	}
	if wrestlers == nil {
		wrestlers = []models.Wrestler{}
	}
	h.jsonResponse(w, http.StatusOK, wrestlers)
}

// GetWrestler returns one wrestler by ID
// @Summary Get Wrestler
// @Tags Wrestlers
// @Produce json
// @Param wrestlerId path int true "Wrestler ID"
// @Success 200 {object} models.Wrestler
// @Failure 404 {object} map[string]string "Not Found"
// @Router /wrestlers/{wrestlerId} [get]
func (h *Handler) GetWrestler(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(chi.URLParam(r, "wrestlerId"))
	if !ok {
		h.errorResponse(w, http.StatusBadRequest, "Invalid wrestler ID")
		return
	}

	wrestler, err := h.catalog.GetWrestler(r.Context(), id)
	if err != nil {
		h.wrestlerLookupError(w, err, id)
		return
	}
	h.jsonResponse(w, http.StatusOK, wrestler)
}

// SearchWrestlers finds wrestlers by name fragment
// @Summary Search Wrestlers
// @Tags Wrestlers
// @Produce json
// @Param q query string true "Name fragment"
// @Success 200 {array} models.Wrestler
// @Router /wrestlers/search [get]
func (h *Handler) SearchWrestlers(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		h.errorResponse(w, http.StatusBadRequest, "Query parameter q is required")
		return
	}

	wrestlers, err := h.catalog.SearchWrestlers(r.Context(), query)
	if err != nil {
		h.logger.Errorw("Failed to search wrestlers", "error", err, "query", query)
		h.errorResponse(w, http.StatusInternalServerError, "Failed to search wrestlers")
		return
	}
	if wrestlers == nil {
		wrestlers = []models.Wrestler{}
	}
	h.jsonResponse(w, http.StatusOK, wrestlers)
}

// GetWrestlerMatches returns a wrestler's most recent matches
// @Summary Get Wrestler Match History
// @Tags Wrestlers
// @Produce json
// @Param wrestlerId path int true "Wrestler ID"
// @Param season_id query int false "Season filter"
// @Param limit query int false "Limit" default(20)
// @Success 200 {array} models.Match
// @Failure 404 {object} map[string]string "Not Found"
// @Router /wrestlers/{wrestlerId}/matches [get]
func (h *Handler) GetWrestlerMatches(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := parseID(chi.URLParam(r, "wrestlerId"))
	if !ok {
		h.errorResponse(w, http.StatusBadRequest, "Invalid wrestler ID")
		return
	}
	if _, err := h.catalog.GetWrestler(ctx, id); err != nil {
		h.wrestlerLookupError(w, err, id)
		return
	}

	seasonID, ok := optionalID(r.URL.Query().Get("season_id"))
	if !ok {
		h.errorResponse(w, http.StatusBadRequest, "Invalid season_id")
		return
	}
	limit := 20
	if l := r.URL.Query().Get("limit"); l != "" {
		if parsed, err := strconv.Atoi(l); err == nil && parsed > 0 && parsed <= 100 {
			limit = parsed
		}
	}

	matches, err := h.catalog.FetchMatches(ctx, id, store.MatchFilter{SeasonID: seasonID, Limit: limit})
	if err != nil {
		h.logger.Errorw("Failed to fetch matches", "error", err, "wrestlerID", id)
		h.errorResponse(w, http.StatusInternalServerError, "Failed to fetch matches")
		return
	}
	if matches == nil {
		matches = []models.Match{}
	}
	h.jsonResponse(w, http.StatusOK, matches)
}

// GetWrestlerFeatures returns a wrestler's live-computed feature profile
// @Summary Get Wrestler Features
// @Tags Wrestlers
// @Produce json
// @Param wrestlerId path int true "Wrestler ID"
// @Param season_id query int false "Season filter"
// @Param weight_class_id query int false "Weight class filter"
// @Success 200 {object} models.WrestlerFeatures
// @Failure 404 {object} map[string]string "Not Found"
// @Router /wrestlers/{wrestlerId}/features [get]
func (h *Handler) GetWrestlerFeatures(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := parseID(chi.URLParam(r, "wrestlerId"))
	if !ok {
		h.errorResponse(w, http.StatusBadRequest, "Invalid wrestler ID")
		return
	}
	if _, err := h.catalog.GetWrestler(ctx, id); err != nil {
		h.wrestlerLookupError(w, err, id)
		return
	}

	seasonID, ok := optionalID(r.URL.Query().Get("season_id"))
	if !ok {
		h.errorResponse(w, http.StatusBadRequest, "Invalid season_id")
		return
	}
	weightClassID, ok := optionalID(r.URL.Query().Get("weight_class_id"))
	if !ok {
		h.errorResponse(w, http.StatusBadRequest, "Invalid weight_class_id")
		return
	}

	features, err := h.features.ComputeWrestlerFeatures(ctx, id, seasonID, weightClassID, time.Now())
	if errors.Is(err, store.ErrNoData) {
		if h.snapshots != nil {
			if cached, cacheErr := h.snapshots.GetFeatures(ctx, id, seasonID, weightClassID); cacheErr == nil && cached != nil {
				h.logger.Warnw("Serving cached feature snapshot", "wrestlerID", id)
				h.jsonResponse(w, http.StatusOK, cached)
				return
			}
		}
		h.errorResponse(w, http.StatusNotFound, "No recorded matches for wrestler")
		return
	}
	if err != nil {
		h.logger.Errorw("Failed to compute features", "error", err, "wrestlerID", id)
		h.errorResponse(w, http.StatusInternalServerError, "Failed to compute features")
		return
	}
	h.jsonResponse(w, http.StatusOK, features)
}
