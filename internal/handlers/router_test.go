package handlers

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealth(t *testing.T) {
	tests := []struct {
		name     string
		fail     bool
		database string
	}{
		{name: "store reachable", database: "connected"},
		{name: "store down still answers", fail: true, database: "unavailable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(t, false)
			if tt.fail {
				srv.faulty.Fail(errors.New("down"))
			}

			w := srv.do(t, http.MethodGet, "/health", nil)
			require.Equal(t, http.StatusOK, w.Code)

			body := decode[HealthResponse](t, w)
			assert.Equal(t, "OK", body.Status)
			assert.Equal(t, "Server is running", body.Message)
			assert.Equal(t, tt.database, body.Database)
			assert.WithinDuration(t, time.Now(), body.Timestamp, time.Minute)
		})
	}
}

func TestGetStats(t *testing.T) {
	srv := newTestServer(t, false)

	w := srv.do(t, http.MethodGet, "/api/stats", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decode[struct {
		Success bool `json:"success"`
		Stats   struct {
			Users       int       `json:"users"`
			Products    int       `json:"products"`
			Orders      int       `json:"orders"`
			Categories  int       `json:"categories"`
			LastUpdated time.Time `json:"lastUpdated"`
		} `json:"stats"`
	}](t, w)
	assert.True(t, body.Success)
	assert.Equal(t, 2, body.Stats.Users)
	assert.Equal(t, 8, body.Stats.Products)
	assert.Equal(t, 0, body.Stats.Orders)
	assert.Equal(t, 3, body.Stats.Categories)
	assert.False(t, body.Stats.LastUpdated.IsZero())
}

func TestUnknownRoutes(t *testing.T) {
	srv := newTestServer(t, false)

	tests := []struct {
		name            string
		method          string
		target          string
		expectedStatus  int
		expectedMessage string
	}{
		{name: "unknown path", method: http.MethodGet, target: "/api/nothing", expectedStatus: http.StatusNotFound, expectedMessage: "Route /api/nothing not found"},
		{name: "unknown root path", method: http.MethodGet, target: "/admin", expectedStatus: http.StatusNotFound, expectedMessage: "Route /admin not found"},
		{name: "wrong method", method: http.MethodDelete, target: "/api/products", expectedStatus: http.StatusMethodNotAllowed, expectedMessage: "Method DELETE not allowed on /api/products"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := srv.do(t, tt.method, tt.target, nil)
			assert.Equal(t, tt.expectedStatus, w.Code)

			body := decode[routeErrorResponse](t, w)
			assert.False(t, body.Success)
			assert.Equal(t, tt.expectedMessage, body.Message)
			assert.Equal(t, AvailableRoutes, body.AvailableRoutes)
		})
	}
}

func TestCORS(t *testing.T) {
	srv := newTestServer(t, false)

	w := srv.do(t, http.MethodOptions, "/api/products", nil,
		"Origin", "http://localhost:5173",
		"Access-Control-Request-Method", "GET",
	)
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))

	other := srv.do(t, http.MethodGet, "/api/products", nil, "Origin", "https://evil.example")
	assert.Empty(t, other.Header().Get("Access-Control-Allow-Origin"))
}
