package turfwar

// Registry maps player id to player, remembering insertion order.
// Insertion order is what breaks score ties in the leaderboard, so it
// must be stable for the lifetime of the session.
type Registry struct {
	order   []string
	players map[string]*Player
}

func NewRegistry() *Registry {
	return &Registry{players: make(map[string]*Player)}
}

// Add registers a player. A second add with the same id is ignored:
// ids are unique and stable for the session.
func (r *Registry) Add(p Player) {
	if _, ok := r.players[p.ID]; ok {
		return
	}
	r.order = append(r.order, p.ID)
	cp := p.clone()
	r.players[p.ID] = &cp
}

func (r *Registry) get(id string) (*Player, bool) {
	p, ok := r.players[id]
	return p, ok
}

// Players returns deep copies of all players in insertion order.
func (r *Registry) Players() []Player {
	out := make([]Player, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.players[id].clone())
	}
	return out
}

func (r *Registry) Len() int {
	return len(r.order)
}

// refreshStatuses rewrites every player's derived status from the
// current scores. Status is never set anywhere else.
func (r *Registry) refreshStatuses() {
	statuses := DeriveStatus(r.Players())
	for id, p := range r.players {
		p.Status = statuses[id]
	}
}
