package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("SERVER_PORT", "")
	t.Setenv("SESSION_MAX_AGE", "")
	t.Setenv("ACCESS_TOKEN_DURATION", "")

	cfg := LoadConfig()

	assert.Equal(t, 8080, cfg.ServerPort)
	assert.Equal(t, "sessionid", cfg.Session.CookieName)
	assert.Equal(t, 16*time.Hour, cfg.Session.MaxAge)
	assert.Equal(t, 2*time.Hour, cfg.AccessTokenDuration)
	assert.Equal(t, "migrations/001_create_tables.sql", cfg.MigrationsPath)
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DB_NAME", "news_test")
	t.Setenv("SESSION_SECRET_KEY", "session-secret")
	t.Setenv("SESSION_MAX_AGE", "30m")
	t.Setenv("SESSION_SECURE", "true")
	t.Setenv("JWT_SECRET_KEY", "jwt-secret")
	t.Setenv("ACCESS_TOKEN_DURATION", "15m")

	cfg := LoadConfig()

	assert.Equal(t, 9090, cfg.ServerPort)
	assert.Equal(t, "news_test", cfg.DB.DbNAME)
	assert.Equal(t, "session-secret", cfg.Session.SecretKey)
	assert.Equal(t, 30*time.Minute, cfg.Session.MaxAge)
	assert.True(t, cfg.Session.Secure)
	assert.Equal(t, "jwt-secret", cfg.JWTSecretKey)
	assert.Equal(t, 15*time.Minute, cfg.AccessTokenDuration)
}

func TestParseDuration_Fallback(t *testing.T) {
	assert.Equal(t, time.Hour, parseDuration("7d", time.Hour))
	assert.Equal(t, 3*time.Second, parseDuration("3s", time.Hour))
}
