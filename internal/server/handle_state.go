package server

import (
	"net/http"

	"github.com/turfwars/api/internal/turfwar"
)

// StateResponse is the renderer's view of the session: every player
// with their territory, the active trace, the current position, and
// the overlay if one is installed.
type StateResponse struct {
	Players      []turfwar.Player    `json:"players"`
	ActivePath   turfwar.Path        `json:"activePath"`
	Position     *turfwar.Coordinate `json:"position"`
	LocationName string              `json:"locationName,omitempty"`
	Overlay      string              `json:"overlay,omitempty"`
}

func handleState() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap := sessionFrom(r).Snapshot()

		resp := StateResponse{
			Players:      snap.Players,
			ActivePath:   snap.ActivePath,
			Position:     snap.Position,
			LocationName: snap.LocationName,
			Overlay:      snap.Overlay,
		}
		if resp.ActivePath == nil {
			resp.ActivePath = turfwar.Path{}
		}

		writeJSON(w, http.StatusOK, resp)
	}
}
