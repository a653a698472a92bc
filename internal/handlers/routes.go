package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Routes assembles the HTTP router: operational endpoints at the root and
// the API surface under /api/v1.
func (h *Handler) Routes(allowedOrigins []string) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(h.RequestLogger)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/wrestlers", func(r chi.Router) {
			r.Get("/", h.ListWrestlers)
			r.Get("/search", h.SearchWrestlers)
			r.Get("/{wrestlerId}", h.GetWrestler)
			r.Get("/{wrestlerId}/matches", h.GetWrestlerMatches)
			r.Get("/{wrestlerId}/features", h.GetWrestlerFeatures)
		})

		r.Get("/seasons", h.ListSeasons)
		r.Get("/weight-classes", h.ListWeightClasses)

		r.Post("/predictions", h.PredictMatch)
		r.Get("/compare/{wrestler1Id}/{wrestler2Id}", h.CompareWrestlers)

		r.Post("/ingest/matches", h.IngestMatches)
	})

	return r
}
