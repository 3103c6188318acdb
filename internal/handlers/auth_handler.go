package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Lixing-Zhang/storefront-api/internal/middleware"
	"github.com/Lixing-Zhang/storefront-api/internal/models"
	"github.com/Lixing-Zhang/storefront-api/internal/service"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Success   bool         `json:"success"`
	Token     string       `json:"token"`
	ExpiresIn int64        `json:"expiresIn"`
	User      *models.User `json:"user"`
}

type meResponse struct {
	Success bool      `json:"success"`
	User    adminUser `json:"user"`
}

type adminUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// AuthHandler serves admin login and the current-admin lookup
type AuthHandler struct {
	service *service.AuthService
	Responder
}

func NewAuthHandler(service *service.AuthService, rs Responder) *AuthHandler {
	return &AuthHandler{service: service, Responder: rs}
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			h.Error(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		h.Fail(w, r, err, "Login failed")
		return
	}

	h.JSON(w, http.StatusOK, loginResponse{
		Success:   true,
		Token:     result.Token,
		ExpiresIn: result.ExpiresIn,
		User:      result.User,
	})
}

// Me handles GET /api/auth/me behind middleware.RequireAdmin
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		h.Error(w, http.StatusUnauthorized, "Access token required")
		return
	}

	h.JSON(w, http.StatusOK, meResponse{
		Success: true,
		User:    adminUser{ID: claims.UserID, Email: claims.Email, Role: claims.Role},
	})
}
