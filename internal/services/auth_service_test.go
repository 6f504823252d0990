package services

import (
	"context"
	"testing"
	"time"

	"github.com/avieira/taskdeck-be/internal/auth"
	"github.com/stretchr/testify/require"
)

const testJWTSecret = "auth-service-test-secret-0123456789"

func newTestAuthService(t *testing.T) (*AuthService, *UserService, *auth.Codec) {
	t.Helper()
	users, _ := newTestServices(t)
	codec := auth.NewCodec(testJWTSecret, time.Hour)
	return NewAuthService(users, codec), users, codec
}

func TestLoginIssuesTokenWithStoredRole(t *testing.T) {
	svc, users, codec := newTestAuthService(t)
	ctx := context.Background()

	mustCreateUser(t, users, "Alice", "admin", "a@x.com", "secret")

	token, user, err := svc.Login(ctx, "a@x.com", "secret")
	require.NoError(t, err)
	require.Equal(t, "Alice", user.Name)

	claims, err := codec.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "admin", claims.Role)
	require.Equal(t, "a@x.com", claims.Email)
	require.Equal(t, "Alice", claims.Name)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc, _, _ := newTestAuthService(t)

	_, _, err := svc.Login(context.Background(), "nobody@x.com", "secret")
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, users, _ := newTestAuthService(t)

	mustCreateUser(t, users, "Alice", "admin", "a@x.com", "secret")

	_, _, err := svc.Login(context.Background(), "a@x.com", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginWithDuplicateEmailUsesLowestID(t *testing.T) {
	svc, users, _ := newTestAuthService(t)
	ctx := context.Background()

	mustCreateUser(t, users, "Alice", "admin", "dup@x.com", "first-pw")
	mustCreateUser(t, users, "Alias", "user", "dup@x.com", "second-pw")

	_, user, err := svc.Login(ctx, "dup@x.com", "first-pw")
	require.NoError(t, err)
	require.Equal(t, "Alice", user.Name)

	// The later duplicate's password does not match the row login resolves.
	_, _, err = svc.Login(ctx, "dup@x.com", "second-pw")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}
