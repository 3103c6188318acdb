package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type loginBody struct {
	Success   bool   `json:"success"`
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expiresIn"`
	User      struct {
		Email string `json:"email"`
		Role  string `json:"role"`
	} `json:"user"`
}

func TestLogin(t *testing.T) {
	srv := newTestServer(t, false)

	w := srv.do(t, http.MethodPost, "/api/auth/login", map[string]string{
		"email":    "admin@ecommerce.com",
		"password": "admin123",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.NotContains(t, w.Body.String(), "password")

	body := decode[loginBody](t, w)
	assert.True(t, body.Success)
	assert.NotEmpty(t, body.Token)
	assert.Equal(t, int64(3600), body.ExpiresIn)
	assert.Equal(t, "ADMIN", body.User.Role)

	me := srv.do(t, http.MethodGet, "/api/auth/me", nil, "Authorization", "Bearer "+body.Token)
	require.Equal(t, http.StatusOK, me.Code)

	meBody := decode[struct {
		Success bool `json:"success"`
		User    struct {
			Email string `json:"email"`
			Role  string `json:"role"`
		} `json:"user"`
	}](t, me)
	assert.Equal(t, "admin@ecommerce.com", meBody.User.Email)
	assert.Equal(t, "ADMIN", meBody.User.Role)
}

func TestLogin_Rejected(t *testing.T) {
	srv := newTestServer(t, false)

	tests := []struct {
		name            string
		body            any
		expectedStatus  int
		expectedMessage string
	}{
		{name: "malformed json", body: "{", expectedStatus: http.StatusBadRequest, expectedMessage: "Invalid request body"},
		{name: "missing fields", body: map[string]string{}, expectedStatus: http.StatusBadRequest, expectedMessage: "Email and password are required"},
		{name: "wrong password", body: map[string]string{"email": "admin@ecommerce.com", "password": "nope"}, expectedStatus: http.StatusUnauthorized, expectedMessage: "Invalid credentials"},
		{name: "customer account", body: map[string]string{"email": "customer@test.com", "password": "customer123"}, expectedStatus: http.StatusUnauthorized, expectedMessage: "Invalid credentials"},
		{name: "unknown account", body: map[string]string{"email": "ghost@test.com", "password": "x"}, expectedStatus: http.StatusUnauthorized, expectedMessage: "Invalid credentials"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := srv.do(t, http.MethodPost, "/api/auth/login", tt.body)
			assert.Equal(t, tt.expectedStatus, w.Code)

			body := decode[ErrorResponse](t, w)
			assert.Equal(t, tt.expectedMessage, body.Message)
		})
	}
}

func TestMe_RequiresToken(t *testing.T) {
	srv := newTestServer(t, false)

	w := srv.do(t, http.MethodGet, "/api/auth/me", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
