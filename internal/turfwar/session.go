package turfwar

import "sync"

// Session is the single mutable root for one game: it owns the player
// registry, the active player's path tracker, and the current
// coordinate. All mutation goes through it under one lock, so a claim
// is atomic (read registry, validate, mutate, rederive statuses).
type Session struct {
	mu sync.Mutex

	registry *Registry
	tracker  Tracker
	activeID string

	position     *Coordinate
	locationName string

	// Route-prediction overlay. A new request supersedes any in-flight
	// one: results carry the generation they were requested under and
	// stale ones are dropped.
	overlayGen int
	overlayRef string
}

// Snapshot is an immutable point-in-time copy of session state for
// rendering and overlay consumers. It shares no memory with the
// session.
type Snapshot struct {
	Players      []Player    `json:"players"`
	ActivePath   Path        `json:"activePath"`
	Position     *Coordinate `json:"position"`
	LocationName string      `json:"locationName,omitempty"`
	Overlay      string      `json:"overlay,omitempty"`
}

// NewSession creates a session over the given roster. The active
// player is the one all mutating operations act for; everyone else is
// read-only. Statuses are derived immediately so the roster never
// carries hand-set ones.
func NewSession(roster []Player, activeID string) *Session {
	reg := NewRegistry()
	for _, p := range roster {
		reg.Add(p)
	}
	reg.refreshStatuses()
	return &Session{registry: reg, activeID: activeID}
}

func (s *Session) ActivePlayerID() string {
	return s.activeID
}

// SetLocation establishes the current real-world coordinate. The first
// call starts the session proper: the path tracker is reseeded at the
// chosen spot.
func (s *Session) SetLocation(name string, c Coordinate) {
	s.mu.Lock()
	defer s.mu.Unlock()

	first := s.position == nil
	pos := c
	s.position = &pos
	s.locationName = name
	if first {
		s.tracker.Reset(c)
	}
}

// SetColor updates a player's display color. Attribute-only: score and
// status are untouched.
func (s *Session) SetColor(playerID, color string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.registry.get(playerID)
	if !ok {
		return ErrUnknownPlayer
	}
	p.Color = color
	return nil
}

// RecordInteraction appends a map tap to the active path and reports
// whether it was recorded. Taps before a location is set are dropped,
// mirroring the tracing UI.
func (s *Session) RecordInteraction(c Coordinate) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.position == nil {
		return false
	}
	s.tracker.Append(c)
	return true
}

// ClaimActiveTerritory commits the active path as the active player's
// newest polygon. On success the path resets to the current
// coordinate; on failure nothing changes and the error says why.
func (s *Session) ClaimActiveTerritory() (ClaimResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.position == nil {
		return ClaimResult{}, ErrLocationUnavailable
	}

	res, err := s.registry.Claim(s.activeID, s.tracker.Path())
	if err != nil {
		return ClaimResult{}, err
	}
	s.tracker.Reset(*s.position)
	return res, nil
}

// Leaderboard returns the ranked players plus each one's relative
// progress against the top score, both derived on the fly.
func (s *Session) Leaderboard() ([]Player, map[string]float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	players := s.registry.Players()
	ranked := Rank(players)
	progress := make(map[string]float64, len(ranked))
	for _, p := range ranked {
		progress[p.ID] = RelativeProgress(p, players)
	}
	return ranked, progress
}

// Snapshot copies the session state for external consumers.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	var pos *Coordinate
	if s.position != nil {
		p := *s.position
		pos = &p
	}
	return Snapshot{
		Players:      s.registry.Players(),
		ActivePath:   s.tracker.Path(),
		Position:     pos,
		LocationName: s.locationName,
		Overlay:      s.overlayRef,
	}
}

// BeginOverlay marks a new in-flight overlay request and returns its
// generation. Any previous request is superseded from this point on.
func (s *Session) BeginOverlay() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.overlayGen++
	return s.overlayGen
}

// CompleteOverlay installs the overlay produced by request gen.
// Reports false if a newer request has superseded it, in which case
// the result is dropped.
func (s *Session) CompleteOverlay(gen int, ref string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.overlayGen {
		return false
	}
	s.overlayRef = ref
	return true
}

// FailOverlay clears the overlay if request gen is still current. The
// session stays fully usable; a missing overlay is the only effect.
func (s *Session) FailOverlay(gen int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.overlayGen {
		return false
	}
	s.overlayRef = ""
	return true
}
