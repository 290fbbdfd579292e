package server

import (
	"net/http"

	"github.com/turfwars/api/internal/journal"
	"github.com/turfwars/api/internal/turfwar"
)

type ClaimResponse struct {
	Player    turfwar.Player `json:"player"`
	Committed turfwar.Path   `json:"committed"`
	AreaM2    int            `json:"areaM2"`
}

func handleClaim(broker *Broker, jr *journal.Journal) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := sessionFrom(r)

		res, err := sess.ClaimActiveTerritory()
		if err != nil {
			writeDomainError(w, err)
			return
		}

		_ = jr.RecordClaim(r.Context(), slugFrom(r), res.Player.ID, res.AreaM2, len(res.Committed))

		broker.Publish(slugFrom(r), Event{
			Type:       eventClaimCommitted,
			PlayerID:   res.Player.ID,
			PlayerName: res.Player.Name,
			AreaM2:     res.AreaM2,
			Score:      res.Player.Score,
		})

		writeJSON(w, http.StatusOK, ClaimResponse{
			Player:    res.Player,
			Committed: res.Committed,
			AreaM2:    res.AreaM2,
		})
	}
}
