package turfwar

import "errors"

var (
	// ErrInvalidPath means the path has fewer than the three vertices
	// needed to form a polygon.
	ErrInvalidPath = errors.New("path needs at least 3 vertices")

	// ErrUnknownPlayer means the claimant id is not in the registry.
	ErrUnknownPlayer = errors.New("unknown player")

	// ErrOverlayRequest means the route-prediction call failed.
	ErrOverlayRequest = errors.New("overlay request failed")

	// ErrLocationUnavailable means no starting coordinate has been
	// established for the session yet.
	ErrLocationUnavailable = errors.New("location unavailable")
)
