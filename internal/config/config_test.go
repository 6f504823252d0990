package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	require.Error(t, err)
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 8080, cfg.ServerPort)
	require.Equal(t, 7*24*time.Hour, cfg.TokenTTL)
	require.Equal(t, 10, cfg.DBMaxOpenConns)
	require.Equal(t, 5*time.Second, cfg.DBQueryTimeout)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("PORT", "9090")
	t.Setenv("TOKEN_TTL", "1h")
	t.Setenv("DB_QUERY_TIMEOUT", "250ms")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 9090, cfg.ServerPort)
	require.Equal(t, time.Hour, cfg.TokenTTL)
	require.Equal(t, 250*time.Millisecond, cfg.DBQueryTimeout)
}

func TestGetDurationBadValueFallsBack(t *testing.T) {
	t.Setenv("TOKEN_TTL", "not-a-duration")
	require.Equal(t, time.Minute, getDuration("TOKEN_TTL", time.Minute))
}
