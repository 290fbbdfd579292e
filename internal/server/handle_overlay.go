package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/turfwars/api/internal/journal"
	"github.com/turfwars/api/internal/overlay"
)

type OverlayRequest struct {
	TerritoryMapData string         `json:"territoryMapData"`
	Bounds           overlay.Bounds `json:"bounds"`
}

// handleOverlay kicks off a route prediction and returns immediately:
// the call must never stall map interaction. The result (or failure)
// comes back over the event stream, and a newer request supersedes any
// in-flight one. Stale results are dropped on arrival.
func handleOverlay(logger *slog.Logger, broker *Broker, jr *journal.Journal, predictor overlay.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req OverlayRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if req.TerritoryMapData == "" {
			writeError(w, http.StatusBadRequest, "territoryMapData is required")
			return
		}

		sess := sessionFrom(r)
		slug := slugFrom(r)
		gen := sess.BeginOverlay()

		patterns, err := jr.MovementPatterns(r.Context(), slug)
		if err != nil {
			logger.Error("assembling movement patterns", "session", slug, "error", err)
			patterns = "{}"
		}

		// Detached from the request context: the 202 goes out before
		// the prediction finishes.
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
			defer cancel()

			resp, err := predictor.Predict(ctx, overlay.Request{
				TerritoryMapData:     req.TerritoryMapData,
				UserMovementPatterns: patterns,
				Bounds:               req.Bounds,
			})
			if err != nil {
				logger.Warn("route prediction failed", "session", slug, "error", err)
				if sess.FailOverlay(gen) {
					broker.Publish(slug, Event{Type: eventOverlayFailed})
				}
				return
			}

			if sess.CompleteOverlay(gen, resp.PredictedRoutesOverlay) {
				broker.Publish(slug, Event{Type: eventOverlayReady})
			} else {
				logger.Debug("dropping superseded overlay result", "session", slug, "generation", gen)
			}
		}()

		writeJSON(w, http.StatusAccepted, map[string]string{"status": "pending"})
	}
}
