// Package overlay calls the generative route-prediction service: a
// territory map image plus movement patterns in, a raster overlay of
// likely contested routes out. Both images travel as data URIs; the
// core treats them as opaque references.
package overlay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/turfwars/api/internal/turfwar"
)

// Bounds is the box the overlay raster should be drawn into.
type Bounds struct {
	SouthWest turfwar.Coordinate `json:"southWest"`
	NorthEast turfwar.Coordinate `json:"northEast"`
}

type Request struct {
	TerritoryMapData     string `json:"territoryMapData"`
	UserMovementPatterns string `json:"userMovementPatterns"`
	Bounds               Bounds `json:"bounds"`
}

type Response struct {
	PredictedRoutesOverlay string `json:"predictedRoutesOverlay"`
}

type Client interface {
	Predict(ctx context.Context, req Request) (Response, error)
}

// HTTPClient posts prediction requests to the configured flow
// endpoint.
type HTTPClient struct {
	url    string
	client *http.Client
}

func NewHTTPClient(url string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

func (c *HTTPClient) Predict(ctx context.Context, req Request) (Response, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return Response{}, fmt.Errorf("encoding overlay request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return Response{}, fmt.Errorf("building overlay request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return Response{}, fmt.Errorf("%w: %v", turfwar.ErrOverlayRequest, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Response{}, fmt.Errorf("%w: unexpected status %d", turfwar.ErrOverlayRequest, resp.StatusCode)
	}

	var out Response
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return Response{}, fmt.Errorf("%w: decoding response: %v", turfwar.ErrOverlayRequest, err)
	}
	if out.PredictedRoutesOverlay == "" {
		return Response{}, fmt.Errorf("%w: no overlay data returned", turfwar.ErrOverlayRequest)
	}
	return out, nil
}
