package server

import (
	"encoding/json"
	"net/http"

	openapi "github.com/swaggest/openapi-go"
	"github.com/swaggest/openapi-go/openapi3"
)

// ErrorResponse is returned for all error responses.
type ErrorResponse struct {
	Error string `json:"error"`
}

func newOpenAPISpec() *openapi3.Spec {
	r := openapi3.NewReflector()
	r.Spec.Info.Title = "Turf Wars API"
	r.Spec.Info.Version = "0.1.0"
	r.Spec.Info.WithDescription("Backend API for the Turf Wars territory-claiming game.")

	// GET /healthz
	getHealthz, _ := r.NewOperationContext(http.MethodGet, "/healthz")
	getHealthz.SetSummary("Health check")
	getHealthz.SetDescription("Returns the health status of backend dependencies.")
	getHealthz.AddRespStructure(HealthResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	getHealthz.AddRespStructure(HealthResponse{}, openapi.WithHTTPStatus(http.StatusServiceUnavailable))
	_ = r.AddOperation(getHealthz)

	// GET /api/places
	getPlaces, _ := r.NewOperationContext(http.MethodGet, "/api/places")
	getPlaces.SetSummary("Place lookup")
	getPlaces.SetDescription("Resolves a free-text query (?q=) to candidate places with coordinates.")
	getPlaces.AddRespStructure(PlacesResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	getPlaces.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	getPlaces.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadGateway))
	_ = r.AddOperation(getPlaces)

	// POST /api/{session}/location
	postLocation, _ := r.NewOperationContext(http.MethodPost, "/api/{session}/location")
	postLocation.SetSummary("Set starting location")
	postLocation.SetDescription("Sets the active player's position. The first call seeds the trace at that spot.")
	postLocation.AddReqStructure(LocationRequest{})
	postLocation.AddRespStructure(LocationResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postLocation.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	_ = r.AddOperation(postLocation)

	// POST /api/{session}/color
	postColor, _ := r.NewOperationContext(http.MethodPost, "/api/{session}/color")
	postColor.SetSummary("Change player color")
	postColor.SetDescription("Updates the active player's display color. Score and status are untouched.")
	postColor.AddReqStructure(ColorRequest{})
	postColor.AddRespStructure(map[string]string{}, openapi.WithHTTPStatus(http.StatusOK))
	postColor.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	_ = r.AddOperation(postColor)

	// POST /api/{session}/path
	postPath, _ := r.NewOperationContext(http.MethodPost, "/api/{session}/path")
	postPath.SetSummary("Extend trace")
	postPath.SetDescription("Appends a map tap to the active path. Requires a starting location.")
	postPath.AddReqStructure(PathRequest{})
	postPath.AddRespStructure(PathResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postPath.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	postPath.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusConflict))
	_ = r.AddOperation(postPath)

	// POST /api/{session}/claim
	postClaim, _ := r.NewOperationContext(http.MethodPost, "/api/{session}/claim")
	postClaim.SetSummary("Claim territory")
	postClaim.SetDescription("Commits the active path as a polygon and scores it by enclosed area. Failed claims mutate nothing.")
	postClaim.AddRespStructure(ClaimResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postClaim.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnprocessableEntity))
	postClaim.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusConflict))
	postClaim.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(postClaim)

	// GET /api/{session}/state
	getState, _ := r.NewOperationContext(http.MethodGet, "/api/{session}/state")
	getState.SetSummary("Get session state")
	getState.SetDescription("Returns a point-in-time snapshot: players, territories, active trace, position, overlay.")
	getState.AddRespStructure(StateResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(getState)

	// GET /api/{session}/leaderboard
	getLeaderboard, _ := r.NewOperationContext(http.MethodGet, "/api/{session}/leaderboard")
	getLeaderboard.SetSummary("Get leaderboard")
	getLeaderboard.SetDescription("Returns players ranked by score with derived status and relative progress.")
	getLeaderboard.AddRespStructure(LeaderboardResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(getLeaderboard)

	// GET /api/{session}/claims
	getClaims, _ := r.NewOperationContext(http.MethodGet, "/api/{session}/claims")
	getClaims.SetSummary("Recent claims")
	getClaims.SetDescription("Returns the newest committed claims for the session, newest first.")
	getClaims.AddRespStructure(RecentClaimsResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	getClaims.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	_ = r.AddOperation(getClaims)

	// POST /api/{session}/overlay
	postOverlay, _ := r.NewOperationContext(http.MethodPost, "/api/{session}/overlay")
	postOverlay.SetSummary("Request route prediction overlay")
	postOverlay.SetDescription("Starts an asynchronous contested-route prediction. Completion arrives on the event stream; a newer request supersedes an in-flight one.")
	postOverlay.AddReqStructure(OverlayRequest{})
	postOverlay.AddRespStructure(map[string]string{}, openapi.WithHTTPStatus(http.StatusAccepted))
	postOverlay.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	_ = r.AddOperation(postOverlay)

	// GET /api/{session}/events
	getEvents, _ := r.NewOperationContext(http.MethodGet, "/api/{session}/events")
	getEvents.SetSummary("SSE event stream")
	getEvents.SetDescription("Server-Sent Events stream of claims, color changes, location updates, and overlay results.")
	getEvents.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusOK),
		openapi.WithContentType("text/event-stream"))
	_ = r.AddOperation(getEvents)

	// GET /api/{session}/ws
	getWS, _ := r.NewOperationContext(http.MethodGet, "/api/{session}/ws")
	getWS.SetSummary("Snapshot websocket")
	getWS.SetDescription("Upgrades to a WebSocket that pushes a fresh session snapshot on every game event.")
	getWS.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusSwitchingProtocols),
		openapi.WithContentType("text/plain"))
	_ = r.AddOperation(getWS)

	return r.Spec
}

func handleOpenAPI() http.HandlerFunc {
	spec := newOpenAPISpec()
	data, _ := json.MarshalIndent(spec, "", "  ")

	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
	}
}
