package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDevDefaults(t *testing.T) {
	t.Setenv("ENV", "development")
	t.Setenv("SECRETS_DIR", t.TempDir())

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, "zeuskitchen", cfg.DBName)
	assert.NotEmpty(t, cfg.JWTSecret)
}

func TestLoadConfigEnvOverridesDefaults(t *testing.T) {
	t.Setenv("ENV", "development")
	t.Setenv("SECRETS_DIR", t.TempDir())
	t.Setenv("SERVER_PORT", "9999")
	t.Setenv("DB_NAME", "custom")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "9999", cfg.ServerPort)
	assert.Equal(t, "custom", cfg.DBName)
}

func TestValidateConfigMissingValues(t *testing.T) {
	t.Setenv("ENV", "test")

	err := ValidateConfig(&Config{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestValidateConfigRejectsDevSecretInProduction(t *testing.T) {
	t.Setenv("ENV", "production")

	cfg := &Config{
		ServerPort: "8080",
		DBHost:     "db",
		DBPort:     "5432",
		DBUser:     "app",
		DBPassword: "pw",
		DBName:     "zeuskitchen",
		RedisHost:  "redis",
		RedisPort:  "6379",
		JWTSecret:  "dev-secret-change-me",
	}
	err := ValidateConfig(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "development default")
}
