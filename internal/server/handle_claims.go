package server

import (
	"net/http"
	"strconv"

	"github.com/turfwars/api/internal/journal"
)

type RecentClaimsResponse struct {
	Claims []journal.ClaimRecord `json:"claims"`
}

func handleRecentClaims(jr *journal.Journal) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := 20
		if raw := r.URL.Query().Get("limit"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n < 1 {
				writeError(w, http.StatusBadRequest, "limit must be a positive integer")
				return
			}
			limit = n
		}
		if limit > 100 {
			limit = 100
		}

		claims, err := jr.RecentClaims(r.Context(), slugFrom(r), limit)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		writeJSON(w, http.StatusOK, RecentClaimsResponse{Claims: claims})
	}
}
