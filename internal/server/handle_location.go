package server

import (
	"net/http"
	"strings"

	"github.com/turfwars/api/internal/journal"
	"github.com/turfwars/api/internal/turfwar"
)

type LocationRequest struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
}

type LocationResponse struct {
	LocationName string             `json:"locationName"`
	Position     turfwar.Coordinate `json:"position"`
}

func handleLocation(broker *Broker, jr *journal.Journal) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LocationRequest
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
		name := strings.TrimSpace(req.Name)
		sess.SetLocation(name, coord)

		playerID := sess.ActivePlayerID()
		if err := jr.RecordMovement(r.Context(), slugFrom(r), playerID, journal.KindLocation, coord); err != nil {
			// The journal feeds diagnostics and predictions, not game
			// state; a write failure must not fail the move.
			writeJSON(w, http.StatusOK, LocationResponse{LocationName: name, Position: coord})
			return
		}

		broker.Publish(slugFrom(r), Event{
			Type:     eventLocationSet,
			PlayerID: playerID,
			Location: name,
		})

		writeJSON(w, http.StatusOK, LocationResponse{LocationName: name, Position: coord})
	}
}
