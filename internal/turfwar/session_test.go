package turfwar

import (
	"errors"
	"reflect"
	"testing"
)

var startingPoint = Coordinate{Lat: 37.77, Lng: -122.41}

func newTestSession() *Session {
	return NewSession(DemoRoster(), DemoActivePlayerID)
}

func TestSessionSeedsDerivedStatuses(t *testing.T) {
	snap := newTestSession().Snapshot()

	want := map[string]Status{
		"user_1": StatusWinning, // 1250
		"user_2": StatusNeutral, // 980
		"user_3": StatusNeutral, // 1100
		"user_4": StatusLosing,  // 750
	}
	for _, p := range snap.Players {
		if p.Status != want[p.ID] {
			t.Errorf("%s status = %s, want %s", p.ID, p.Status, want[p.ID])
		}
	}
}

func TestSetLocationSeedsPath(t *testing.T) {
	s := newTestSession()

	s.SetLocation("Hayes Valley, San Francisco", startingPoint)

	snap := s.Snapshot()
	if snap.Position == nil || *snap.Position != startingPoint {
		t.Fatalf("position = %v, want %v", snap.Position, startingPoint)
	}
	if snap.LocationName != "Hayes Valley, San Francisco" {
		t.Errorf("location name = %q", snap.LocationName)
	}
	if len(snap.ActivePath) != 1 || snap.ActivePath[0] != startingPoint {
		t.Errorf("active path = %v, want seeded with %v", snap.ActivePath, startingPoint)
	}

	// Re-setting the location later moves the marker but does not
	// wipe an in-progress trace.
	s.RecordInteraction(Coordinate{Lat: 37.78, Lng: -122.41})
	s.SetLocation("elsewhere", Coordinate{Lat: 40, Lng: -74})
	if got := len(s.Snapshot().ActivePath); got != 2 {
		t.Errorf("path length after relocating = %d, want 2", got)
	}
}

func TestInteractionBeforeLocationIsDropped(t *testing.T) {
	s := newTestSession()

	s.RecordInteraction(startingPoint)

	if got := len(s.Snapshot().ActivePath); got != 0 {
		t.Errorf("path length = %d, want 0 before location is set", got)
	}
}

func TestClaimWithoutLocation(t *testing.T) {
	s := newTestSession()

	_, err := s.ClaimActiveTerritory()
	if !errors.Is(err, ErrLocationUnavailable) {
		t.Fatalf("err = %v, want ErrLocationUnavailable", err)
	}
}

func TestClaimSeededPathTooShort(t *testing.T) {
	s := newTestSession()
	s.SetLocation("start", startingPoint)

	// No interactions: the path is just the seed coordinate.
	_, err := s.ClaimActiveTerritory()
	if !errors.Is(err, ErrInvalidPath) {
		t.Fatalf("err = %v, want ErrInvalidPath", err)
	}
}

func TestFailedClaimLeavesSnapshotIdentical(t *testing.T) {
	s := newTestSession()
	s.SetLocation("start", startingPoint)
	s.RecordInteraction(Coordinate{Lat: 37.78, Lng: -122.41})

	before := s.Snapshot()
	if _, err := s.ClaimActiveTerritory(); !errors.Is(err, ErrInvalidPath) {
		t.Fatalf("err = %v, want ErrInvalidPath", err)
	}
	after := s.Snapshot()

	if !reflect.DeepEqual(before, after) {
		t.Errorf("failed claim changed the snapshot:\nbefore %+v\nafter  %+v", before, after)
	}
}

func TestClaimFlowResetsPath(t *testing.T) {
	s := newTestSession()
	s.SetLocation("start", startingPoint)
	s.RecordInteraction(Coordinate{Lat: 37.78, Lng: -122.41})
	s.RecordInteraction(Coordinate{Lat: 37.78, Lng: -122.42})

	res, err := s.ClaimActiveTerritory()
	if err != nil {
		t.Fatalf("claim: %v", err)
	}
	if res.Player.ID != DemoActivePlayerID {
		t.Errorf("claimant = %s, want %s", res.Player.ID, DemoActivePlayerID)
	}
	if len(res.Committed) != 3 {
		t.Errorf("committed %d vertices, want 3", len(res.Committed))
	}

	snap := s.Snapshot()
	if len(snap.ActivePath) != 1 || snap.ActivePath[0] != startingPoint {
		t.Errorf("path after claim = %v, want reset to [%v]", snap.ActivePath, startingPoint)
	}

	for _, p := range snap.Players {
		if p.ID == DemoActivePlayerID && len(p.Territory.Paths) != 2 {
			t.Errorf("active territory has %d polygons, want 2 (seed + claim)", len(p.Territory.Paths))
		}
	}
}

func TestSetColorIsAttributeOnly(t *testing.T) {
	s := newTestSession()
	before := s.Snapshot()

	if err := s.SetColor("user_2", "#F3FF33"); err != nil {
		t.Fatalf("set color: %v", err)
	}
	if err := s.SetColor("nobody", "#000000"); !errors.Is(err, ErrUnknownPlayer) {
		t.Fatalf("err = %v, want ErrUnknownPlayer", err)
	}

	after := s.Snapshot()
	for i, p := range after.Players {
		was := before.Players[i]
		if p.ID == "user_2" {
			if p.Color != "#F3FF33" {
				t.Errorf("color = %s, want #F3FF33", p.Color)
			}
		} else if p.Color != was.Color {
			t.Errorf("%s color changed unexpectedly", p.ID)
		}
		if p.Score != was.Score || p.Status != was.Status {
			t.Errorf("%s score/status changed on color update", p.ID)
		}
	}
}

func TestSnapshotDoesNotAliasSession(t *testing.T) {
	s := newTestSession()
	s.SetLocation("start", startingPoint)

	snap := s.Snapshot()
	snap.Players[0].Score = -1
	snap.Players[0].Territory.Paths[0][0] = Coordinate{}
	snap.ActivePath[0] = Coordinate{Lat: 1, Lng: 1}
	snap.Position.Lat = 0

	fresh := s.Snapshot()
	if fresh.Players[0].Score == -1 {
		t.Error("snapshot players alias session state")
	}
	if fresh.Players[0].Territory.Paths[0][0] == (Coordinate{}) {
		t.Error("snapshot territory aliases session state")
	}
	if fresh.ActivePath[0] != startingPoint {
		t.Error("snapshot path aliases session state")
	}
	if fresh.Position.Lat != startingPoint.Lat {
		t.Error("snapshot position aliases session state")
	}
}

func TestLeaderboard(t *testing.T) {
	ranked, progress := newTestSession().Leaderboard()

	want := []string{"user_1", "user_3", "user_2", "user_4"}
	if !reflect.DeepEqual(ids(ranked), want) {
		t.Fatalf("order = %v, want %v", ids(ranked), want)
	}
	if progress["user_1"] != 1.0 {
		t.Errorf("top progress = %v, want 1.0", progress["user_1"])
	}
	if got := progress["user_4"]; got != 750.0/1250.0 {
		t.Errorf("bottom progress = %v, want 0.6", got)
	}
}

func TestOverlayLastRequestWins(t *testing.T) {
	s := newTestSession()

	first := s.BeginOverlay()
	second := s.BeginOverlay()

	// The superseded result is dropped.
	if s.CompleteOverlay(first, "data:image/png;base64,stale") {
		t.Error("stale overlay result was accepted")
	}
	if got := s.Snapshot().Overlay; got != "" {
		t.Errorf("overlay = %q, want empty after stale completion", got)
	}

	if !s.CompleteOverlay(second, "data:image/png;base64,fresh") {
		t.Error("current overlay result was rejected")
	}
	if got := s.Snapshot().Overlay; got != "data:image/png;base64,fresh" {
		t.Errorf("overlay = %q", got)
	}

	// A stale failure must not clear the installed overlay either.
	if s.FailOverlay(first) {
		t.Error("stale overlay failure was accepted")
	}
	third := s.BeginOverlay()
	if !s.FailOverlay(third) {
		t.Error("current overlay failure was rejected")
	}
	if got := s.Snapshot().Overlay; got != "" {
		t.Errorf("overlay = %q, want cleared after failure", got)
	}
}

func TestCoordinateValid(t *testing.T) {
	tests := []struct {
		c    Coordinate
		want bool
	}{
		{Coordinate{Lat: 37.77, Lng: -122.41}, true},
		{Coordinate{Lat: 90, Lng: 180}, true},
		{Coordinate{Lat: -90, Lng: -180}, true},
		{Coordinate{Lat: 90.01, Lng: 0}, false},
		{Coordinate{Lat: 0, Lng: -180.5}, false},
	}
	for _, tt := range tests {
		if got := tt.c.Valid(); got != tt.want {
			t.Errorf("Valid(%v) = %v, want %v", tt.c, got, tt.want)
		}
	}
}
