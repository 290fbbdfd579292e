package server

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/swaggest/swgui/v5emb"

	"github.com/turfwars/api/internal/geocode"
	"github.com/turfwars/api/internal/journal"
	"github.com/turfwars/api/internal/overlay"
)

func addRoutes(r chi.Router, logger *slog.Logger, sessions *Registry, jr *journal.Journal,
	geo geocode.Client, predictor overlay.Client, spaDir string) {

	broker := NewBroker()

	r.Get("/openapi.json", handleOpenAPI())
	r.Mount("/docs", v5emb.New("Turf Wars API", "/openapi.json", "/docs"))
	r.Get("/healthz", handleHealth(logger, jr))

	r.Get("/api/places", handlePlaces(geo))

	// Game routes. {session} is resolved by sessionMiddleware.
	r.Route("/api/{session}", func(r chi.Router) {
		r.Use(sessionMiddleware(sessions))
		r.Post("/location", handleLocation(broker, jr))
		r.Post("/color", handleColor(broker))
		r.Post("/path", handlePath(jr))
		r.Post("/claim", handleClaim(broker, jr))
		r.Get("/state", handleState())
		r.Get("/leaderboard", handleLeaderboard())
		r.Get("/claims", handleRecentClaims(jr))
		r.Post("/overlay", handleOverlay(logger, broker, jr, predictor))
		r.Get("/events", handleEvents(broker))
		r.Get("/ws", handleWS(logger, broker))
	})

	if spaDir != "" {
		if info, err := os.Stat(spaDir); err == nil && info.IsDir() {
			logger.Info("serving SPA", "dir", spaDir)
			r.NotFound(handleSPA(spaDir))
		}
	}
}
