package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/genaicorelab/iam-backend/internal/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() config.JWTConfig {
	return config.JWTConfig{
		SigningKey:               "test-signing-key",
		Algorithm:                "HS256",
		AccessTokenExpireMinutes: 30,
	}
}

func TestNewManager(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *config.JWTConfig)
		wantErr bool
	}{
		{name: "valid", mutate: func(c *config.JWTConfig) {}},
		{name: "hs512", mutate: func(c *config.JWTConfig) { c.Algorithm = "HS512" }},
		{name: "empty key", mutate: func(c *config.JWTConfig) { c.SigningKey = "" }, wantErr: true},
		{name: "asymmetric alg", mutate: func(c *config.JWTConfig) { c.Algorithm = "RS256" }, wantErr: true},
		{name: "none alg", mutate: func(c *config.JWTConfig) { c.Algorithm = "none" }, wantErr: true},
		{name: "zero ttl", mutate: func(c *config.JWTConfig) { c.AccessTokenExpireMinutes = 0 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			tt.mutate(&cfg)

			m, err := NewManager(cfg)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, m)
				return
			}
			assert.NoError(t, err)
			assert.NotNil(t, m)
		})
	}
}

func TestManager_NewJWTClaims(t *testing.T) {
	m, err := NewManager(testConfig())
	require.NoError(t, err)

	issued := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	m.now = func() time.Time { return issued }

	token, ttl, err := m.NewJWT("alice@x.com")
	require.NoError(t, err)
	assert.Equal(t, 30*time.Minute, ttl)
	assert.Len(t, strings.Split(token, "."), 3)

	claims := jwt.MapClaims{}
	_, _, err = jwt.NewParser().ParseUnverified(token, claims)
	require.NoError(t, err)

	assert.Equal(t, "alice@x.com", claims["sub"])
	assert.EqualValues(t, issued.Add(30*time.Minute).Unix(), claims["exp"])
}

func TestManager_ParseRoundTrip(t *testing.T) {
	m, err := NewManager(testConfig())
	require.NoError(t, err)

	token, _, err := m.NewJWT("alice@x.com")
	require.NoError(t, err)

	subject, err := m.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "alice@x.com", subject)
}

func TestManager_ParseExpired(t *testing.T) {
	m, err := NewManager(testConfig())
	require.NoError(t, err)

	m.now = func() time.Time { return time.Now().Add(-time.Hour) }
	token, _, err := m.NewJWT("alice@x.com")
	require.NoError(t, err)

	m.now = time.Now
	_, err = m.Parse(token)
	assert.ErrorIs(t, err, ErrAccessTokenExpired)
}

func TestManager_ParseRejectsForeignTokens(t *testing.T) {
	m, err := NewManager(testConfig())
	require.NoError(t, err)

	otherCfg := testConfig()
	otherCfg.SigningKey = "another-key"
	other, err := NewManager(otherCfg)
	require.NoError(t, err)

	foreign, _, err := other.NewJWT("alice@x.com")
	require.NoError(t, err)
	_, err = m.Parse(foreign)
	assert.Error(t, err)

	hs512Cfg := testConfig()
	hs512Cfg.Algorithm = "HS512"
	hs512, err := NewManager(hs512Cfg)
	require.NoError(t, err)

	wrongAlg, _, err := hs512.NewJWT("alice@x.com")
	require.NoError(t, err)
	_, err = m.Parse(wrongAlg)
	assert.Error(t, err)

	_, err = m.Parse("not-a-token")
	assert.Error(t, err)
}
