package turfwar

import "math"

// Claim validates a traced path and commits it into the claimant's
// territory: the polygon is appended, the score grows by the enclosed
// area in whole square meters, and every player's status is rederived.
// On any error nothing is mutated.
//
// The path is treated as implicitly closed; the first and last vertex
// need not coincide.
func (r *Registry) Claim(playerID string, path Path) (ClaimResult, error) {
	if len(path) < 3 {
		return ClaimResult{}, ErrInvalidPath
	}
	p, ok := r.get(playerID)
	if !ok {
		return ClaimResult{}, ErrUnknownPlayer
	}

	committed := path.clone()
	area := int(math.Round(PlanarAreaM2(committed)))

	p.Territory.Paths = append(p.Territory.Paths, committed)
	p.Score += area
	r.refreshStatuses()

	return ClaimResult{
		Player:    p.clone(),
		Committed: committed.clone(),
		AreaM2:    area,
	}, nil
}
