package server

import (
	"net/http"
	"strings"

	"github.com/turfwars/api/internal/geocode"
)

type PlacesResponse struct {
	Places []geocode.Place `json:"places"`
}

func handlePlaces(geo geocode.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := strings.TrimSpace(r.URL.Query().Get("q"))
		if query == "" {
			writeError(w, http.StatusBadRequest, "q query parameter required")
			return
		}

		places, err := geo.Lookup(r.Context(), query)
		if err != nil {
			writeError(w, http.StatusBadGateway, "place lookup failed")
			return
		}
		if places == nil {
			places = []geocode.Place{}
		}

		writeJSON(w, http.StatusOK, PlacesResponse{Places: places})
	}
}
