package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/Silver0524/MatPredict/internal/models"
)

// IngestMatches accepts a batch of match results for asynchronous insertion
// @Summary Ingest Match Results
// @Description Validates each record and enqueues it for batched insertion. Invalid records are rejected individually; the rest are accepted.
// @Tags Ingest
// @Accept json
// @Produce json
// @Param records body []models.MatchUpsert true "Match records"
// @Success 202 {object} map[string]int "Accepted and rejected counts"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 503 {object} map[string]string "Queue Full"
// @Router /ingest/matches [post]
func (h *Handler) IngestMatches(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodySize)

	var records []models.MatchUpsert
	if err := json.NewDecoder(r.Body).Decode(&records); err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if len(records) == 0 {
		h.errorResponse(w, http.StatusBadRequest, "Empty batch")
		return
	}

	accepted := 0
	rejected := 0
	for i := range records {
		if err := h.validator.Struct(&records[i]); err != nil {
			rejected++
			continue
		}
		if !records[i].ValidWinner() {
			rejected++
			continue
		}
		if !h.pool.Enqueue(records[i]) {
			// Queue is full; report backpressure rather than dropping
			// the remainder silently.
			h.logger.Warnw("Ingest queue full", "accepted", accepted, "remaining", len(records)-i)
			h.jsonResponse(w, http.StatusServiceUnavailable, map[string]int{
				"accepted": accepted,
				"rejected": rejected,
				"dropped":  len(records) - i,
			})
			return
		}
		accepted++
	}

	h.jsonResponse(w, http.StatusAccepted, map[string]int{
		"accepted": accepted,
		"rejected": rejected,
	})
}
