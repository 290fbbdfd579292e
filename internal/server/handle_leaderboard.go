package server

import (
	"net/http"

	"github.com/turfwars/api/internal/turfwar"
)

type LeaderboardEntry struct {
	Rank     int            `json:"rank"`
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	Color    string         `json:"color"`
	Score    int            `json:"score"`
	Status   turfwar.Status `json:"status"`
	Progress float64        `json:"progress"`
}

type LeaderboardResponse struct {
	Entries []LeaderboardEntry `json:"entries"`
}

func handleLeaderboard() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ranked, progress := sessionFrom(r).Leaderboard()

		entries := make([]LeaderboardEntry, 0, len(ranked))
		for i, p := range ranked {
			entries = append(entries, LeaderboardEntry{
				Rank:     i + 1,
				ID:       p.ID,
				Name:     p.Name,
				Color:    p.Color,
				Score:    p.Score,
				Status:   p.Status,
				Progress: progress[p.ID],
			})
		}

		writeJSON(w, http.StatusOK, LeaderboardResponse{Entries: entries})
	}
}
