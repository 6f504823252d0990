package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/avieira/taskdeck-be/internal/auth"
	"github.com/avieira/taskdeck-be/internal/models"
)

// AuthServiceProvider defines the interface for authentication.
type AuthServiceProvider interface {
	Login(ctx context.Context, email, password string) (string, models.User, error)
}

// AuthService orchestrates login: user lookup, password verification, token
// issuance.
type AuthService struct {
	users *UserService
	codec *auth.Codec
}

// NewAuthService creates a new AuthService.
func NewAuthService(users *UserService, codec *auth.Codec) *AuthService {
	return &AuthService{users: users, codec: codec}
}

// Login verifies the credentials and returns a signed token alongside the
// stored user record. The two failure modes, ErrUserNotFound and
// ErrInvalidCredentials, stay distinct here so callers can log them, but
// they must be presented identically to clients.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, models.User, error) {
	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return "", models.User{}, fmt.Errorf("login failed: %w", ErrUserNotFound)
		}
		return "", models.User{}, err
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		return "", models.User{}, fmt.Errorf("login failed: %w", ErrInvalidCredentials)
	}

	token, err := s.codec.Issue(user.Name, user.Email, user.Role, 0)
	if err != nil {
		return "", models.User{}, fmt.Errorf("failed to issue token: %w", err)
	}
	return token, user, nil
}
