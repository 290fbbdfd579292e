// Package journal is the in-process activity log: location updates,
// trace points, and committed claims, indexed in an in-memory SQLite
// database. It feeds the movement-pattern payload for route
// prediction and the recent-claims feed. Nothing here survives a
// restart, matching the process-lifetime scope of a game session.
package journal

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/turfwars/api/internal/database"
	"github.com/turfwars/api/internal/migrations"
	"github.com/turfwars/api/internal/turfwar"
)

// Movement kinds.
const (
	KindLocation = "location" // player (re)set their position
	KindTrace    = "trace"    // a map tap extending the active path
)

type Journal struct {
	db *sql.DB
}

// ClaimRecord is one committed claim in the activity feed.
type ClaimRecord struct {
	PlayerID   string `json:"playerId"`
	AreaM2     int    `json:"areaM2"`
	Vertices   int    `json:"vertices"`
	RecordedAt string `json:"recordedAt"`
}

// movementPoint matches the shape the route-prediction flow expects
// for userMovementPatterns entries.
type movementPoint struct {
	Lat       float64 `json:"lat"`
	Lng       float64 `json:"lng"`
	Timestamp string  `json:"timestamp"`
}

// Open creates the journal over a fresh in-memory database and
// applies the schema.
func Open(ctx context.Context) (*Journal, error) {
	db, err := database.OpenMemory(ctx)
	if err != nil {
		return nil, err
	}
	if err := migrations.Run(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrating journal: %w", err)
	}
	return &Journal{db: db}, nil
}

func (j *Journal) Close() error {
	return j.db.Close()
}

// Check pings the backing database, for health reporting.
func (j *Journal) Check(ctx context.Context) error {
	return j.db.PingContext(ctx)
}

func (j *Journal) RecordMovement(ctx context.Context, session, playerID, kind string, c turfwar.Coordinate) error {
	_, err := j.db.ExecContext(ctx,
		`INSERT INTO movements (session, player_id, kind, lat, lng, recorded_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		session, playerID, kind, c.Lat, c.Lng, now())
	if err != nil {
		return fmt.Errorf("recording movement: %w", err)
	}
	return nil
}

func (j *Journal) RecordClaim(ctx context.Context, session, playerID string, areaM2, vertices int) error {
	_, err := j.db.ExecContext(ctx,
		`INSERT INTO claims (session, player_id, area_m2, vertices, recorded_at)
		 VALUES (?, ?, ?, ?, ?)`,
		session, playerID, areaM2, vertices, now())
	if err != nil {
		return fmt.Errorf("recording claim: %w", err)
	}
	return nil
}

// MovementPatterns assembles the session's movement history as a JSON
// object keyed by player id, each value an ordered list of timestamped
// points. This is the userMovementPatterns payload of an overlay
// request.
func (j *Journal) MovementPatterns(ctx context.Context, session string) (string, error) {
	rows, err := j.db.QueryContext(ctx,
		`SELECT player_id, lat, lng, recorded_at
		 FROM movements WHERE session = ? ORDER BY id`,
		session)
	if err != nil {
		return "", fmt.Errorf("querying movements: %w", err)
	}
	defer rows.Close()

	patterns := make(map[string][]movementPoint)
	for rows.Next() {
		var playerID string
		var pt movementPoint
		if err := rows.Scan(&playerID, &pt.Lat, &pt.Lng, &pt.Timestamp); err != nil {
			return "", fmt.Errorf("scanning movement: %w", err)
		}
		patterns[playerID] = append(patterns[playerID], pt)
	}
	if err := rows.Err(); err != nil {
		return "", fmt.Errorf("reading movements: %w", err)
	}

	data, err := json.Marshal(patterns)
	if err != nil {
		return "", fmt.Errorf("encoding patterns: %w", err)
	}
	return string(data), nil
}

// RecentClaims returns the session's newest claims, newest first.
func (j *Journal) RecentClaims(ctx context.Context, session string, limit int) ([]ClaimRecord, error) {
	rows, err := j.db.QueryContext(ctx,
		`SELECT player_id, area_m2, vertices, recorded_at
		 FROM claims WHERE session = ? ORDER BY id DESC LIMIT ?`,
		session, limit)
	if err != nil {
		return nil, fmt.Errorf("querying claims: %w", err)
	}
	defer rows.Close()

	claims := []ClaimRecord{}
	for rows.Next() {
		var c ClaimRecord
		if err := rows.Scan(&c.PlayerID, &c.AreaM2, &c.Vertices, &c.RecordedAt); err != nil {
			return nil, fmt.Errorf("scanning claim: %w", err)
		}
		claims = append(claims, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading claims: %w", err)
	}
	return claims, nil
}

func now() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}
