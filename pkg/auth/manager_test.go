package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/grab-simulator/backend/internal/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() config.JWTConfig {
	return config.JWTConfig{
		SigningKey: "secret",
		Issuer:     "GrabSimulator",
		Audience:   "GrabSimulatorClient",
		TokenTTL:   30 * 24 * time.Hour,
	}
}

func TestNewManager_EmptySigningKey(t *testing.T) {
	cfg := testConfig()
	cfg.SigningKey = ""

	_, err := NewManager(cfg)
	assert.Error(t, err)
}

func TestManager_RoundTrip(t *testing.T) {
	m, err := NewManager(testConfig())
	require.NoError(t, err)

	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	m.now = func() time.Time { return now }

	token, expiresAt, err := m.NewJWT(42, "u@x.com")
	require.NoError(t, err)
	assert.Equal(t, now.Add(30*24*time.Hour), expiresAt)
	assert.Len(t, strings.Split(token, "."), 3)

	claims, err := m.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "u@x.com", claims.Email)
	assert.NotEmpty(t, claims.TokenID)
	assert.True(t, expiresAt.Equal(claims.ExpiresAt))
}

func TestManager_UniqueTokenID(t *testing.T) {
	m, err := NewManager(testConfig())
	require.NoError(t, err)

	first, _, err := m.NewJWT(1, "u@x.com")
	require.NoError(t, err)
	second, _, err := m.NewJWT(1, "u@x.com")
	require.NoError(t, err)
	assert.NotEqual(t, first, second)

	c1, err := m.Parse(first)
	require.NoError(t, err)
	c2, err := m.Parse(second)
	require.NoError(t, err)
	assert.NotEqual(t, c1.TokenID, c2.TokenID)
}

func TestManager_Expired(t *testing.T) {
	m, err := NewManager(testConfig())
	require.NoError(t, err)

	issued := time.Now().Add(-31 * 24 * time.Hour)
	m.now = func() time.Time { return issued }
	token, _, err := m.NewJWT(1, "u@x.com")
	require.NoError(t, err)

	m.now = time.Now
	_, err = m.Parse(token)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestManager_RejectsForeignTokens(t *testing.T) {
	m, err := NewManager(testConfig())
	require.NoError(t, err)

	tests := []struct {
		name string
		cfg  func(c *config.JWTConfig)
	}{
		{"other key", func(c *config.JWTConfig) { c.SigningKey = "other" }},
		{"other issuer", func(c *config.JWTConfig) { c.Issuer = "Someone" }},
		{"other audience", func(c *config.JWTConfig) { c.Audience = "SomeoneElse" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			tt.cfg(&cfg)
			other, err := NewManager(cfg)
			require.NoError(t, err)

			token, _, err := other.NewJWT(1, "u@x.com")
			require.NoError(t, err)

			_, err = m.Parse(token)
			assert.Error(t, err)
		})
	}
}

func TestManager_RejectsGarbage(t *testing.T) {
	m, err := NewManager(testConfig())
	require.NoError(t, err)

	_, err = m.Parse("not.a.token")
	assert.Error(t, err)
}
