package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/Lixing-Zhang/storefront-api/internal/apperror"
	"github.com/Lixing-Zhang/storefront-api/internal/auth"
	"github.com/Lixing-Zhang/storefront-api/internal/models"
	"github.com/Lixing-Zhang/storefront-api/internal/repository"
)

var (
	ErrMissingCredentials = apperror.Validation("Email and password are required")
	// ErrInvalidCredentials covers unknown emails, wrong passwords and
	// non-admin accounts alike.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// LoginResult is an issued access token and the admin it belongs to
type LoginResult struct {
	Token     string
	ExpiresIn int64
	User      *models.User
}

// AuthService authenticates admin users
type AuthService struct {
	users  repository.UserRepository
	hasher *auth.PasswordHasher
	tokens *auth.TokenManager
	log    *slog.Logger
}

func NewAuthService(users repository.UserRepository, hasher *auth.PasswordHasher, tokens *auth.TokenManager, log *slog.Logger) *AuthService {
	return &AuthService{
		users:  users,
		hasher: hasher,
		tokens: tokens,
		log:    log,
	}
}

// Login verifies an admin's password and issues an access token
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, ErrMissingCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !user.IsActive || user.Role != models.RoleAdmin || !s.hasher.Verify(password, user.PasswordHash) {
		s.log.Warn("rejected admin login", "email", email)
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, err
	}

	return &LoginResult{Token: token, ExpiresIn: s.tokens.TTLSeconds(), User: user}, nil
}
