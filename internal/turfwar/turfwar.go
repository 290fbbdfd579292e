// Package turfwar defines the core game state and claim protocol.
// It has no dependencies outside the standard library.
package turfwar

// Coordinate is a WGS84 position in degrees.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Valid reports whether the coordinate is inside the WGS84 range.
func (c Coordinate) Valid() bool {
	return c.Lat >= -90 && c.Lat <= 90 && c.Lng >= -180 && c.Lng <= 180
}

// Path is an ordered vertex sequence. It is open while the player is
// tracing and treated as an implicitly closed polygon once claimed.
type Path []Coordinate

// Territory holds the polygons a player has claimed, in claim order.
// Polygons from different players may overlap; there is no exclusion.
type Territory struct {
	Paths []Path `json:"paths"`
}

// Status is a derived ranking label. It is recomputed from scores on
// every registry mutation and is never authoritative state.
type Status string

const (
	StatusWinning Status = "winning"
	StatusLosing  Status = "losing"
	StatusNeutral Status = "neutral"
)

type Player struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	Score     int       `json:"score"`
	Status    Status    `json:"status"`
	Territory Territory `json:"territory"`
}

// ClaimResult is returned by a successful claim: the claimant after the
// mutation and the polygon that was committed.
type ClaimResult struct {
	Player    Player `json:"player"`
	Committed Path   `json:"committed"`
	AreaM2    int    `json:"areaM2"`
}

// Snapshots and claim results must never alias the session's internal
// slices, hence the clone helpers below.

func (p Path) clone() Path {
	if p == nil {
		return nil
	}
	out := make(Path, len(p))
	copy(out, p)
	return out
}

func (t Territory) clone() Territory {
	if t.Paths == nil {
		return Territory{}
	}
	paths := make([]Path, len(t.Paths))
	for i, p := range t.Paths {
		paths[i] = p.clone()
	}
	return Territory{Paths: paths}
}

func (p Player) clone() Player {
	p.Territory = p.Territory.clone()
	return p
}
