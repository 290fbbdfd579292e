package server

import (
	"net/http"

	"github.com/turfwars/api/internal/journal"
	"github.com/turfwars/api/internal/turfwar"
)

type PathRequest struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type PathResponse struct {
	Vertices int `json:"vertices"`
}

func handlePath(jr *journal.Journal) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req PathRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		coord := turfwar.Coordinate{Lat: req.Lat, Lng: req.Lng}
		if !coord.Valid() {
			writeError(w, http.StatusBadRequest, "coordinate out of WGS84 range")
			return
		}

		sess := sessionFrom(r)
		if !sess.RecordInteraction(coord) {
			writeError(w, http.StatusConflict, "set a starting location first")
			return
		}

		// Best-effort journal write; tracing never fails on it.
		_ = jr.RecordMovement(r.Context(), slugFrom(r), sess.ActivePlayerID(), journal.KindTrace, coord)

		writeJSON(w, http.StatusOK, PathResponse{Vertices: len(sess.Snapshot().ActivePath)})
	}
}
