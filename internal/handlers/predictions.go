package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Silver0524/MatPredict/internal/ml"
	"github.com/Silver0524/MatPredict/internal/models"
	"github.com/Silver0524/MatPredict/internal/store"
)

// PredictMatch forecasts the outcome of a matchup between two wrestlers
// @Summary Predict Match Outcome
// @Tags Predictions
// @Accept json
// @Produce json
// @Param body body models.PredictionRequest true "Matchup"
// @Success 200 {object} models.PredictionResponse
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /predictions [post]
func (h *Handler) PredictMatch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	r.Body = http.MaxBytesReader(w, r.Body, MaxBodySize)
	var req models.PredictionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validator.Struct(&req); err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Invalid prediction request: "+err.Error())
		return
	}

	wrestler1, err := h.catalog.GetWrestler(ctx, req.Wrestler1ID)
	if err != nil {
		h.wrestlerLookupError(w, err, req.Wrestler1ID)
		return
	}
	wrestler2, err := h.catalog.GetWrestler(ctx, req.Wrestler2ID)
	if err != nil {
		h.wrestlerLookupError(w, err, req.Wrestler2ID)
		return
	}

	if req.SeasonID != nil {
		if _, err := h.catalog.FetchSeason(ctx, *req.SeasonID); err != nil {
			if errors.Is(err, store.ErrNoData) {
				h.errorResponse(w, http.StatusNotFound, "Season not found")
				return
			}
			h.logger.Errorw("Failed to look up season", "error", err, "seasonID", *req.SeasonID)
			h.errorResponse(w, http.StatusInternalServerError, "Failed to look up season")
			return
		}
	} else if current, err := h.catalog.FetchCurrentSeason(ctx); err == nil {
		req.SeasonID = &current.ID
	}

	if req.WeightClassID != nil {
		if _, err := h.catalog.GetWeightClass(ctx, *req.WeightClassID); err != nil {
			if errors.Is(err, store.ErrNoData) {
				h.errorResponse(w, http.StatusNotFound, "Weight class not found")
				return
			}
			h.logger.Errorw("Failed to look up weight class", "error", err, "weightClassID", *req.WeightClassID)
			h.errorResponse(w, http.StatusInternalServerError, "Failed to look up weight class")
			return
		}
	}

	pred, err := h.prediction.Predict(ctx, &req)
	if err != nil {
		var missing *ml.MissingFeatureError
		if errors.As(err, &missing) {
			h.logger.Errorw("Model schema mismatch", "error", err)
			h.errorResponse(w, http.StatusBadRequest, "Feature computation error: "+missing.Error())
			return
		}
		if errors.Is(err, store.ErrNoData) {
			h.errorResponse(w, http.StatusNotFound, "No recorded matches for wrestler")
			return
		}
		h.logger.Errorw("Failed to predict match", "error", err,
			"wrestler1ID", req.Wrestler1ID, "wrestler2ID", req.Wrestler2ID)
		h.errorResponse(w, http.StatusInternalServerError, "Failed to make prediction")
		return
	}

	pred.Wrestler1Name = wrestler1.Name
	pred.Wrestler2Name = wrestler2.Name
	h.jsonResponse(w, http.StatusOK, pred)
}

// CompareWrestlers returns a side-by-side statistical comparison
// @Summary Compare Two Wrestlers
// @Tags Predictions
// @Produce json
// @Param wrestler1Id path int true "First wrestler ID"
// @Param wrestler2Id path int true "Second wrestler ID"
// @Param season_id query int false "Season filter"
// @Success 200 {object} models.ComparisonResponse
// @Failure 404 {object} map[string]string "Not Found"
// @Router /compare/{wrestler1Id}/{wrestler2Id} [get]
func (h *Handler) CompareWrestlers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id1, ok1 := parseID(chi.URLParam(r, "wrestler1Id"))
	id2, ok2 := parseID(chi.URLParam(r, "wrestler2Id"))
	if !ok1 || !ok2 || id1 == id2 {
		h.errorResponse(w, http.StatusBadRequest, "Two distinct wrestler IDs are required")
		return
	}
	seasonID, ok := optionalID(r.URL.Query().Get("season_id"))
	if !ok {
		h.errorResponse(w, http.StatusBadRequest, "Invalid season_id")
		return
	}
	if seasonID != nil {
		if _, err := h.catalog.FetchSeason(ctx, *seasonID); err != nil {
			if errors.Is(err, store.ErrNoData) {
				h.errorResponse(w, http.StatusNotFound, "Season not found")
				return
			}
			h.logger.Errorw("Failed to look up season", "error", err, "seasonID", *seasonID)
			h.errorResponse(w, http.StatusInternalServerError, "Failed to look up season")
			return
		}
	}

	wrestler1, err := h.catalog.GetWrestler(ctx, id1)
	if err != nil {
		h.wrestlerLookupError(w, err, id1)
		return
	}
	wrestler2, err := h.catalog.GetWrestler(ctx, id2)
	if err != nil {
		h.wrestlerLookupError(w, err, id2)
		return
	}

	cmp, err := h.prediction.Compare(ctx, id1, id2, seasonID)
	if err != nil {
		if errors.Is(err, store.ErrNoData) {
			h.errorResponse(w, http.StatusNotFound, "No recorded matches for wrestler")
			return
		}
		h.logger.Errorw("Failed to compare wrestlers", "error", err, "wrestler1ID", id1, "wrestler2ID", id2)
		h.errorResponse(w, http.StatusInternalServerError, "Failed to compare wrestlers")
		return
	}

	cmp.Wrestler1 = wrestler1
	cmp.Wrestler2 = wrestler2
	h.jsonResponse(w, http.StatusOK, cmp)
}

func (h *Handler) wrestlerLookupError(w http.ResponseWriter, err error, wrestlerID int64) {
	if errors.Is(err, store.ErrNoData) {
		h.errorResponse(w, http.StatusNotFound, "Wrestler not found")
		return
	}
	h.logger.Errorw("Failed to look up wrestler", "error", err, "wrestlerID", wrestlerID)
	h.errorResponse(w, http.StatusInternalServerError, "Failed to look up wrestler")
}
