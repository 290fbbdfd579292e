package server

import (
	"net/http"
	"regexp"
)

type ColorRequest struct {
	Color string `json:"color"`
}

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

func handleColor(broker *Broker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ColorRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if !hexColor.MatchString(req.Color) {
			writeError(w, http.StatusBadRequest, "color must be a #RRGGBB hex value")
			return
		}

		sess := sessionFrom(r)
		playerID := sess.ActivePlayerID()
		if err := sess.SetColor(playerID, req.Color); err != nil {
			writeDomainError(w, err)
			return
		}

		broker.Publish(slugFrom(r), Event{
			Type:     eventColorChanged,
			PlayerID: playerID,
			Color:    req.Color,
		})

		writeJSON(w, http.StatusOK, map[string]string{"color": req.Color})
	}
}
