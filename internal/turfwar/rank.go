package turfwar

import "sort"

// Rank orders players by score descending. Ties keep the incoming
// (registry insertion) order, so the result is deterministic for
// identical inputs.
func Rank(players []Player) []Player {
	out := make([]Player, len(players))
	copy(out, players)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	return out
}

// DeriveStatus maps each player id to its display status: everyone at
// the top score is winning, everyone at the bottom score is losing,
// the rest are neutral. A single-player registry and an all-tied
// registry have no meaningful rivalry, so everyone is neutral.
func DeriveStatus(players []Player) map[string]Status {
	statuses := make(map[string]Status, len(players))
	if len(players) == 0 {
		return statuses
	}

	top, bottom := players[0].Score, players[0].Score
	for _, p := range players[1:] {
		if p.Score > top {
			top = p.Score
		}
		if p.Score < bottom {
			bottom = p.Score
		}
	}

	for _, p := range players {
		switch {
		case top == bottom:
			statuses[p.ID] = StatusNeutral
		case p.Score == top:
			statuses[p.ID] = StatusWinning
		case p.Score == bottom:
			statuses[p.ID] = StatusLosing
		default:
			statuses[p.ID] = StatusNeutral
		}
	}
	return statuses
}

// RelativeProgress is the player's score as a fraction of the top
// score, in [0,1]. The divisor is floored at 1 so an all-zero
// scoreboard does not divide by zero.
func RelativeProgress(player Player, players []Player) float64 {
	top := 0
	for _, p := range players {
		if p.Score > top {
			top = p.Score
		}
	}
	if top < 1 {
		top = 1
	}
	return float64(player.Score) / float64(top)
}
