package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Setenv("ENV", "local")
	t.Setenv("DB_SERVER", "localhost:3306")
	t.Setenv("DB_NAME", "grab")
	t.Setenv("DB_USER", "grab")
	t.Setenv("DB_PASSWORD", "grab")
	t.Setenv("AUTH_CODE_SALT", "salt")
	t.Setenv("JWT_SIGNING_KEY", "secret")
	t.Setenv("REDIS_TYPE", "redis")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 720*time.Hour, cfg.Auth.JWT.TokenTTL)
	assert.Equal(t, "GrabSimulator", cfg.Auth.JWT.Issuer)
	assert.Equal(t, "GrabSimulatorClient", cfg.Auth.JWT.Audience)
	assert.Equal(t, 5*time.Minute, cfg.Auth.CodeTTL)
	assert.Equal(t, "redis", cfg.Auth.Lock.Provider)
	assert.Equal(t, "smtp", cfg.Email.Provider)
	assert.Equal(t, "shipments_income", cfg.Leaderboard.Metric)
	assert.Equal(t, int64(1), cfg.Snowflake.NodeID)
}

func TestLoad_MissingSigningKey(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("JWT_SIGNING_KEY", "")
	require.NoError(t, os.Unsetenv("JWT_SIGNING_KEY"))

	_, err := Load()
	assert.Error(t, err)
}
