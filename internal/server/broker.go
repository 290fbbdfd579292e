package server

import (
	"encoding/json"
	"sync"
)

// Event is the payload published to session subscribers over SSE and
// the websocket feed.
type Event struct {
	Type       string `json:"type"`
	PlayerID   string `json:"playerId,omitempty"`
	PlayerName string `json:"playerName,omitempty"`
	Color      string `json:"color,omitempty"`
	AreaM2     int    `json:"areaM2,omitempty"`
	Score      int    `json:"score,omitempty"`
	Location   string `json:"location,omitempty"`
}

// Event types.
const (
	eventClaimCommitted = "claim_committed"
	eventColorChanged   = "color_changed"
	eventLocationSet    = "location_set"
	eventOverlayReady   = "overlay_ready"
	eventOverlayFailed  = "overlay_failed"
)

// Broker is an in-process pub/sub for session events, keyed by
// session slug.
type Broker struct {
	mu   sync.RWMutex
	subs map[string]map[chan []byte]struct{}
}

func NewBroker() *Broker {
	return &Broker{
		subs: make(map[string]map[chan []byte]struct{}),
	}
}

// Subscribe returns a channel that receives JSON-encoded events for
// the given session.
func (b *Broker) Subscribe(slug string) chan []byte {
	ch := make(chan []byte, 16)
	b.mu.Lock()
	if b.subs[slug] == nil {
		b.subs[slug] = make(map[chan []byte]struct{})
	}
	b.subs[slug][ch] = struct{}{}
	b.mu.Unlock()
	return ch
}

// Unsubscribe removes a channel from the session's subscribers.
func (b *Broker) Unsubscribe(slug string, ch chan []byte) {
	b.mu.Lock()
	delete(b.subs[slug], ch)
	if len(b.subs[slug]) == 0 {
		delete(b.subs, slug)
	}
	b.mu.Unlock()
}

// Publish sends an event to all subscribers of the given session.
func (b *Broker) Publish(slug string, event Event) {
	data, _ := json.Marshal(event)
	b.mu.RLock()
	for ch := range b.subs[slug] {
		select {
		case ch <- data:
		default:
			// Drop if subscriber is slow.
		}
	}
	b.mu.RUnlock()
}
