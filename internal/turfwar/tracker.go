package turfwar

// Tracker accumulates the active player's movement into an ordered,
// append-only coordinate sequence. Purely synchronous; callers provide
// their own locking (the Session wraps it).
type Tracker struct {
	path Path
}

// Append adds one coordinate to the end of the active path.
func (t *Tracker) Append(c Coordinate) {
	t.path = append(t.path, c)
}

// Reset replaces the active path with the given seed vertices. Called
// with the current position right after a claim, or with the chosen
// starting coordinate when the player sets their location.
func (t *Tracker) Reset(seed ...Coordinate) {
	t.path = append(Path(nil), seed...)
}

// Path returns a copy of the active path.
func (t *Tracker) Path() Path {
	return t.path.clone()
}

// Len reports the number of vertices traced so far.
func (t *Tracker) Len() int {
	return len(t.path)
}
