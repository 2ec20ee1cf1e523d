package geo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func matrixServer(t *testing.T, body string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "driving", r.URL.Query().Get("mode"))
		assert.NotEmpty(t, r.URL.Query().Get("key"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}))
}

func TestDrivingParsesDistanceAndDuration(t *testing.T) {
	srv := matrixServer(t, `{
		"status": "OK",
		"rows": [{"elements": [{
			"status": "OK",
			"distance": {"value": 12500},
			"duration": {"value": 1500}
		}]}]
	}`)
	defer srv.Close()

	c := NewDistanceClient("test-key")
	c.baseURL = srv.URL

	dist, err := c.Driving(context.Background(), -1.29, 36.82, -1.47, 36.96)
	require.NoError(t, err)
	assert.InDelta(t, 12.5, dist.Km, 0.001)
	assert.InDelta(t, 25.0, dist.Mins, 0.001)
}

func TestDrivingNoRoute(t *testing.T) {
	srv := matrixServer(t, `{
		"status": "OK",
		"rows": [{"elements": [{"status": "ZERO_RESULTS"}]}]
	}`)
	defer srv.Close()

	c := NewDistanceClient("test-key")
	c.baseURL = srv.URL

	_, err := c.Driving(context.Background(), -1.29, 36.82, 40.71, -74.0)
	assert.ErrorIs(t, err, ErrNoRoute)
}

func TestDrivingNotConfigured(t *testing.T) {
	_, err := NewDistanceClient("").Driving(context.Background(), 0, 0, 1, 1)
	assert.ErrorIs(t, err, ErrNotConfigured)

	var nilClient *DistanceClient
	_, err = nilClient.Driving(context.Background(), 0, 0, 1, 1)
	assert.ErrorIs(t, err, ErrNotConfigured)
}
