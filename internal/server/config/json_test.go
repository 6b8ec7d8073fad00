package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, data map[string]any) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cfg.json")
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	path := writeTempJSON(t, map[string]any{
		"endpoint_addr_http":              ":7070",
		"database_dsn":                    "postgres://example/accounts",
		"secret_key":                      "json-secret",
		"session_token_validity_duration": "48h",
		"environment":                     "production",
		"bcrypt_cost":                     12,
	})

	t.Run("loads from json", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", path}

		cfg := &Config{}
		cfg.LoadDefaults()
		require.NoError(t, parseJson(cfg))

		assert.Equal(t, ":7070", cfg.EndpointAddrHTTP)
		assert.Equal(t, "postgres://example/accounts", cfg.DatabaseDSN)
		assert.Equal(t, "json-secret", cfg.SecretKey)
		assert.Equal(t, 48*time.Hour, cfg.SessionTokenValidityDuration)
		assert.Equal(t, "production", cfg.Environment)
		assert.Equal(t, 12, cfg.BcryptCost)
	})

	t.Run("missing fields keep defaults", func(t *testing.T) {
		partial := writeTempJSON(t, map[string]any{"secret_key": "only-secret"})
		os.Args = []string{"testbin", "-c", partial}

		cfg := &Config{}
		cfg.LoadDefaults()
		require.NoError(t, parseJson(cfg))

		assert.Equal(t, "only-secret", cfg.SecretKey)
		assert.Equal(t, ":8080", cfg.EndpointAddrHTTP)
		assert.Equal(t, 30*24*time.Hour, cfg.SessionTokenValidityDuration)
	})

	t.Run("no flag means no file", func(t *testing.T) {
		os.Args = []string{"testbin"}

		cfg := &Config{}
		cfg.LoadDefaults()
		require.NoError(t, parseJson(cfg))
		assert.Empty(t, cfg.SecretKey)
	})

	t.Run("unreadable file is an error", func(t *testing.T) {
		os.Args = []string{"testbin", "-c", filepath.Join(t.TempDir(), "missing.json")}

		cfg := &Config{}
		cfg.LoadDefaults()
		require.Error(t, parseJson(cfg))
	})
}

func Test_parseEnv(t *testing.T) {
	t.Setenv("ADDRESS", ":6060")
	t.Setenv("SECRET_KEY", "env-secret")
	t.Setenv("SESSION_TOKEN_VALIDITY", "72h")
	t.Setenv("ENVIRONMENT", "staging")
	t.Setenv("BCRYPT_COST", "11")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, ":6060", cfg.EndpointAddrHTTP)
	assert.Equal(t, "env-secret", cfg.SecretKey)
	assert.Equal(t, 72*time.Hour, cfg.SessionTokenValidityDuration)
	assert.Equal(t, "staging", cfg.Environment)
	assert.Equal(t, 11, cfg.BcryptCost)
}
