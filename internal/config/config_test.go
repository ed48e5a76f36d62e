package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ACCESS_TOKEN_SECRET", "access")
	t.Setenv("REFRESH_TOKEN_SECRET", "refresh")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "4000", cfg.Server.Port)
	assert.False(t, cfg.Server.Production())
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.Server.AllowedOrigins)
	assert.Nil(t, cfg.Server.TrustedProxies)
	assert.Equal(t, "access", cfg.Auth.AccessTokenSecret)
	assert.Equal(t, "refresh", cfg.Auth.RefreshTokenSecret)
	assert.Equal(t, 15*time.Minute, cfg.Auth.AccessTokenTTL)
	assert.Equal(t, 7*24*time.Hour, cfg.Auth.RefreshTokenTTL)
	assert.Equal(t, 10, cfg.RateLimit.LoginLimit)
	assert.Equal(t, time.Minute, cfg.RateLimit.LoginWindow)
	assert.Equal(t, []string{"general"}, cfg.Seed.Communities)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "prd")
	t.Setenv("PORT", "8080")
	t.Setenv("ACCESS_TOKEN_TTL", "1m")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example ,")
	t.Setenv("SEED_COMMUNITIES", "go,rust")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("TRUSTED_PROXIES", "10.0.0.0/8, 192.168.1.5")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.Server.Production())
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, time.Minute, cfg.Auth.AccessTokenTTL)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, []string{"go", "rust"}, cfg.Seed.Communities)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, 2, cfg.Redis.DB)
	assert.Equal(t, []string{"10.0.0.0/8", "192.168.1.5"}, cfg.Server.TrustedProxies)
}

func TestLoadRejectsBadDuration(t *testing.T) {
	t.Setenv("REFRESH_TOKEN_TTL", "seven days")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "REFRESH_TOKEN_TTL")
}
