package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/turfwars/api/internal/turfwar"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func readJSON(r *http.Request, v any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeDomainError maps the game's error kinds onto HTTP statuses.
// Everything the core reports is recoverable, so nothing here is a 500.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, turfwar.ErrInvalidPath):
		writeError(w, http.StatusUnprocessableEntity, "path needs at least 3 vertices to claim")
	case errors.Is(err, turfwar.ErrUnknownPlayer):
		writeError(w, http.StatusNotFound, "player not found")
	case errors.Is(err, turfwar.ErrLocationUnavailable):
		writeError(w, http.StatusConflict, "set a starting location first")
	case errors.Is(err, turfwar.ErrOverlayRequest):
		writeError(w, http.StatusBadGateway, "route prediction failed")
	default:
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}
