// Package geocode resolves free-text place queries to coordinates.
// The wire shape is Mapbox forward geocoding; callers only ever see
// the provider-agnostic Place type, so swapping providers stays a
// one-package change.
package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/turfwars/api/internal/turfwar"
)

// Place is one candidate for a query: a display label and where it is.
type Place struct {
	Name  string             `json:"name"`
	Coord turfwar.Coordinate `json:"coord"`
}

type Client interface {
	Lookup(ctx context.Context, query string) ([]Place, error)
}

// HTTPClient talks to a Mapbox-compatible geocoding endpoint.
type HTTPClient struct {
	baseURL string
	token   string
	client  *http.Client
}

func NewHTTPClient(baseURL, token string) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		token:   token,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// mapboxResponse is the subset of the provider payload we read.
// Centers are [lng, lat].
type mapboxResponse struct {
	Features []struct {
		PlaceName string     `json:"place_name"`
		Center    [2]float64 `json:"center"`
	} `json:"features"`
}

func (c *HTTPClient) Lookup(ctx context.Context, query string) ([]Place, error) {
	u := fmt.Sprintf("%s/%s.json?access_token=%s&autocomplete=true",
		c.baseURL, url.PathEscape(query), url.QueryEscape(c.token))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("building geocode request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geocode request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocode request: unexpected status %d", resp.StatusCode)
	}

	var body mapboxResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decoding geocode response: %w", err)
	}

	places := make([]Place, 0, len(body.Features))
	for _, f := range body.Features {
		places = append(places, Place{
			Name:  f.PlaceName,
			Coord: turfwar.Coordinate{Lat: f.Center[1], Lng: f.Center[0]},
		})
	}
	return places, nil
}
