package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/turfwars/api/internal/journal"
)

type HealthResponse map[string]struct {
	Status string `json:"status"`
}

func handleHealth(logger *slog.Logger, jr *journal.Journal) http.HandlerFunc {
	type result struct {
		Status string `json:"status"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
		defer cancel()

		checks := map[string]result{
			"journal": {Status: "ok"},
		}
		status := http.StatusOK

		if err := jr.Check(ctx); err != nil {
			logger.Error("health check failed", "name", "journal", "error", err)
			checks["journal"] = result{Status: "error"}
			status = http.StatusServiceUnavailable
		}

		writeJSON(w, status, checks)
	}
}
