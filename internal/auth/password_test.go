package auth

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashPasswordIsSalted(t *testing.T) {
	first, err := HashPassword("secret")
	require.NoError(t, err)
	second, err := HashPassword("secret")
	require.NoError(t, err)

	require.NotEqual(t, "secret", first)
	// Each call salts independently, so equal inputs never collide.
	require.NotEqual(t, first, second)

	require.True(t, CheckPassword("secret", first))
	require.True(t, CheckPassword("secret", second))
}

func TestCheckPasswordRejectsWrongPassword(t *testing.T) {
	hash, err := HashPassword("secret")
	require.NoError(t, err)

	require.False(t, CheckPassword("not-secret", hash))
	require.False(t, CheckPassword("", hash))
	require.False(t, CheckPassword("secret", "not-a-bcrypt-hash"))
}
