package geo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

var (
	// ErrNotConfigured means no mapping-provider key was supplied; distance
	// queries degrade to this instead of failing at startup.
	ErrNotConfigured = errors.New("mapping provider is not configured")

	ErrNoRoute = errors.New("no route between origin and destination")
)

const distanceMatrixURL = "https://maps.googleapis.com/maps/api/distancematrix/json"

// Distance is a driving distance/duration between two points.
type Distance struct {
	Km   float64
	Mins float64
}

// DistanceClient queries the mapping provider's distance-matrix API.
type DistanceClient struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

func NewDistanceClient(apiKey string) *DistanceClient {
	return &DistanceClient{
		apiKey:  apiKey,
		baseURL: distanceMatrixURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// Driving returns the driving distance and duration from origin to
// destination.
func (c *DistanceClient) Driving(ctx context.Context, originLat, originLng, destLat, destLng float64) (Distance, error) {
	if c == nil || c.apiKey == "" {
		return Distance{}, ErrNotConfigured
	}

	params := url.Values{}
	params.Set("origins", fmt.Sprintf("%v,%v", originLat, originLng))
	params.Set("destinations", fmt.Sprintf("%v,%v", destLat, destLng))
	params.Set("mode", "driving")
	params.Set("key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return Distance{}, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return Distance{}, fmt.Errorf("distance matrix request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Distance{}, fmt.Errorf("distance matrix request: unexpected status %d", resp.StatusCode)
	}

	var body struct {
		Status string `json:"status"`
		Rows   []struct {
			Elements []struct {
				Status   string `json:"status"`
				Distance struct {
					Value float64 `json:"value"` // meters
				} `json:"distance"`
				Duration struct {
					Value float64 `json:"value"` // seconds
				} `json:"duration"`
			} `json:"elements"`
		} `json:"rows"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Distance{}, fmt.Errorf("distance matrix response: %w", err)
	}

	if body.Status != "OK" || len(body.Rows) == 0 || len(body.Rows[0].Elements) == 0 {
		return Distance{}, ErrNoRoute
	}
	el := body.Rows[0].Elements[0]
	if el.Status != "OK" || el.Distance.Value == 0 {
		return Distance{}, ErrNoRoute
	}

	return Distance{
		Km:   el.Distance.Value / 1000,
		Mins: el.Duration.Value / 60,
	}, nil
}
