package turfwar

import (
	"errors"
	"reflect"
	"testing"
)

func newTestRegistry() *Registry {
	r := NewRegistry()
	for _, p := range rosterABC() {
		r.Add(p)
	}
	r.refreshStatuses()
	return r
}

var validTriangle = Path{
	{Lat: 37.77, Lng: -122.42},
	{Lat: 37.78, Lng: -122.42},
	{Lat: 37.77, Lng: -122.41},
}

func TestClaimCommitsPolygonAndScore(t *testing.T) {
	r := newTestRegistry()
	before, _ := r.get("C")
	beforeScore := before.Score

	res, err := r.Claim("C", validTriangle)
	if err != nil {
		t.Fatalf("claim: %v", err)
	}

	if res.AreaM2 <= 0 {
		t.Errorf("area = %d, want > 0", res.AreaM2)
	}
	if res.Player.Score != beforeScore+res.AreaM2 {
		t.Errorf("score = %d, want %d", res.Player.Score, beforeScore+res.AreaM2)
	}
	if len(res.Player.Territory.Paths) != 1 {
		t.Fatalf("territory has %d polygons, want 1", len(res.Player.Territory.Paths))
	}
	if !reflect.DeepEqual(res.Committed, validTriangle) {
		t.Errorf("committed path = %v, want %v", res.Committed, validTriangle)
	}
}

func TestClaimRecomputesStatuses(t *testing.T) {
	r := newTestRegistry()

	// C claims a polygon big enough to take the lead (the triangle is
	// roughly half a square kilometer, far beyond the seeded scores).
	if _, err := r.Claim("C", validTriangle); err != nil {
		t.Fatalf("claim: %v", err)
	}

	statuses := DeriveStatus(r.Players())
	if statuses["C"] != StatusWinning {
		t.Errorf("C status = %s, want winning", statuses["C"])
	}
	for _, p := range r.Players() {
		got := p.Status
		if got != statuses[p.ID] {
			t.Errorf("%s stored status %s diverges from derived %s", p.ID, got, statuses[p.ID])
		}
	}
}

func TestClaimTooFewVertices(t *testing.T) {
	tests := []struct {
		name string
		path Path
	}{
		{"empty", nil},
		{"single point", Path{{Lat: 37.77, Lng: -122.41}}},
		{"two points", Path{{Lat: 37.77, Lng: -122.41}, {Lat: 37.78, Lng: -122.41}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRegistry()
			before := r.Players()

			_, err := r.Claim("A", tt.path)
			if !errors.Is(err, ErrInvalidPath) {
				t.Fatalf("err = %v, want ErrInvalidPath", err)
			}
			if !reflect.DeepEqual(r.Players(), before) {
				t.Error("failed claim mutated the registry")
			}
		})
	}
}

func TestClaimUnknownPlayer(t *testing.T) {
	r := newTestRegistry()
	before := r.Players()

	_, err := r.Claim("nobody", validTriangle)
	if !errors.Is(err, ErrUnknownPlayer) {
		t.Fatalf("err = %v, want ErrUnknownPlayer", err)
	}
	if !reflect.DeepEqual(r.Players(), before) {
		t.Error("failed claim mutated the registry")
	}
}

func TestClaimScoreMonotonic(t *testing.T) {
	r := newTestRegistry()

	last := 0
	for i := 0; i < 5; i++ {
		res, err := r.Claim("A", validTriangle)
		if err != nil {
			t.Fatalf("claim %d: %v", i, err)
		}
		if res.Player.Score < last {
			t.Fatalf("claim %d decreased score: %d -> %d", i, last, res.Player.Score)
		}
		last = res.Player.Score
	}

	p, _ := r.get("A")
	if len(p.Territory.Paths) != 5 {
		t.Errorf("territory has %d polygons, want 5", len(p.Territory.Paths))
	}
}

func TestClaimResultDoesNotAliasRegistry(t *testing.T) {
	r := newTestRegistry()

	res, err := r.Claim("A", validTriangle)
	if err != nil {
		t.Fatalf("claim: %v", err)
	}

	// Scribbling on the result must not reach the registry.
	res.Player.Score = -1
	res.Player.Territory.Paths[0][0] = Coordinate{Lat: 0, Lng: 0}
	res.Committed[0] = Coordinate{Lat: 0, Lng: 0}

	p, _ := r.get("A")
	if p.Score < 0 {
		t.Error("result player aliases registry player")
	}
	if p.Territory.Paths[0][0] != validTriangle[0] {
		t.Error("result territory aliases registry territory")
	}
}
