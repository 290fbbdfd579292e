package server

import (
	"sync"

	"github.com/turfwars/api/internal/turfwar"
)

// Registry holds the live game sessions, keyed by slug. Sessions are
// created lazily on first use, seeded with the demo roster, and live
// for the process lifetime. There is no on-disk state behind them.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*turfwar.Session
}

func NewRegistry() *Registry {
	return &Registry{sessions: make(map[string]*turfwar.Session)}
}

func (r *Registry) Get(slug string) *turfwar.Session {
	r.mu.RLock()
	s, ok := r.sessions[slug]
	r.mu.RUnlock()
	if ok {
		return s
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Double-check after acquiring write lock.
	if s, ok := r.sessions[slug]; ok {
		return s
	}

	s = turfwar.NewSession(turfwar.DemoRoster(), turfwar.DemoActivePlayerID)
	r.sessions[slug] = s
	return s
}

// Slugs returns the active session keys, for diagnostics.
func (r *Registry) Slugs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, 0, len(r.sessions))
	for slug := range r.sessions {
		out = append(out, slug)
	}
	return out
}
