package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeTempConfig(t, `{"port": 9090, "database_url": "postgres://localhost/placement", "log_json": true}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "postgres://localhost/placement", cfg.DatabaseURL)
	assert.True(t, cfg.LogJSON)
	assert.False(t, cfg.Debug)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadConfig_BadJSON(t *testing.T) {
	path := writeTempConfig(t, `{"port": `)

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	assert.NoError(t, (&Config{Port: 8080}).Validate())
	assert.Error(t, (&Config{Port: -1}).Validate())
	assert.Error(t, (&Config{Port: 70000}).Validate())
	assert.Error(t, (&Config{Port: 8080, CatalogPath: "/does/not/exist.json"}).Validate())
}

func TestConfig_MergeWithDefaults(t *testing.T) {
	cfg := Config{Port: 9090}
	merged := cfg.MergeWithDefaults(Config{
		Port:        8080,
		DatabaseURL: "postgres://localhost/placement",
		CatalogPath: "catalog.json",
	})

	assert.Equal(t, 9090, merged.Port, "explicit values win")
	assert.Equal(t, "postgres://localhost/placement", merged.DatabaseURL)
	assert.Equal(t, "catalog.json", merged.CatalogPath)
}

func TestNewPasswordConfig_Defaults(t *testing.T) {
	t.Setenv("BCRYPT_COST", "")

	cfg, err := NewPasswordConfig()
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.BcryptCost)
}

func TestNewPasswordConfig_OutOfRange(t *testing.T) {
	t.Setenv("BCRYPT_COST", "4")
	_, err := NewPasswordConfig()
	assert.Error(t, err)

	t.Setenv("BCRYPT_COST", "20")
	_, err = NewPasswordConfig()
	assert.Error(t, err)

	t.Setenv("BCRYPT_COST", "banana")
	_, err = NewPasswordConfig()
	assert.Error(t, err)
}

func TestPasswordConfig_HashAndVerify(t *testing.T) {
	cfg := &PasswordConfig{BcryptCost: 10}

	hash, err := cfg.HashPassword("correct horse battery")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery", hash)

	assert.True(t, cfg.VerifyPassword("correct horse battery", hash))
	assert.False(t, cfg.VerifyPassword("wrong", hash))
}

func TestPasswordConfig_HashesDiffer(t *testing.T) {
	cfg := &PasswordConfig{BcryptCost: 10}

	hash1, err := cfg.HashPassword("same password")
	require.NoError(t, err)
	hash2, err := cfg.HashPassword("same password")
	require.NoError(t, err)

	assert.NotEqual(t, hash1, hash2, "bcrypt salts every hash")
}

func TestNewJWTConfig(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-key-for-jwt-signing-minimum-32-bytes")
	t.Setenv("JWT_EXPIRATION_HOURS", "")

	cfg, err := NewJWTConfig()
	require.NoError(t, err)
	assert.Equal(t, 24, cfg.ExpirationHours)
}

func TestNewJWTConfig_MissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := NewJWTConfig()
	assert.Error(t, err)
}

func TestNewJWTConfig_BadExpiration(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-key-for-jwt-signing-minimum-32-bytes")

	t.Setenv("JWT_EXPIRATION_HOURS", "0")
	_, err := NewJWTConfig()
	assert.Error(t, err)

	t.Setenv("JWT_EXPIRATION_HOURS", "soon")
	_, err = NewJWTConfig()
	assert.Error(t, err)
}
