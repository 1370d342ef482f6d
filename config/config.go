package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerPort string
	ServerHost string

	// Database configuration
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Redis configuration
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	RedisURL      string

	// JWT configuration
	JWTSecret string
}

// LoadConfig reads configuration from environment variables, falling back to
// Docker secrets for sensitive values outside CI. In development, missing
// values get local defaults.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		ServerPort:    getValue("SERVER_PORT", "server_port"),
		ServerHost:    getValue("SERVER_HOST", "server_host"),
		DBHost:        getValue("DB_HOST", "db_host"),
		DBPort:        getValue("DB_PORT", "db_port"),
		DBUser:        getValue("DB_USER", "db_user"),
		DBPassword:    getValue("DB_PASSWORD", "db_password"),
		DBName:        getValue("DB_NAME", "db_name"),
		DBSSLMode:     getValue("DB_SSL_MODE", "db_ssl_mode"),
		RedisHost:     getValue("REDIS_HOST", "redis_host"),
		RedisPort:     getValue("REDIS_PORT", "redis_port"),
		RedisPassword: getValue("REDIS_PASSWORD", "redis_password"),
		RedisURL:      getValue("REDIS_URL", "redis_url"),
		JWTSecret:     getValue("JWT_SECRET", "jwt_secret"),
	}

	if GetEnvironment() == Development {
		applyDevDefaults(cfg)
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

func applyDevDefaults(cfg *Config) {
	defaults := map[*string]string{
		&cfg.ServerPort: "8080",
		&cfg.ServerHost: "0.0.0.0",
		&cfg.DBHost:     "localhost",
		&cfg.DBPort:     "5432",
		&cfg.DBUser:     "postgres",
		&cfg.DBName:     "zeuskitchen",
		&cfg.DBSSLMode:  "disable",
		&cfg.RedisHost:  "localhost",
		&cfg.RedisPort:  "6379",
		&cfg.JWTSecret:  "dev-secret-change-me",
	}
	for field, value := range defaults {
		if *field == "" {
			*field = value
		}
	}
}

// getValue reads an environment variable, then a Docker secret of the given
// name when the variable is unset.
func getValue(envVar, secretName string) string {
	if value := os.Getenv(envVar); value != "" {
		return value
	}
	return readSecret(secretName)
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = "/run/secrets"
	}
	if data, err := os.ReadFile(filepath.Join(secretsDir, name)); err == nil {
		return strings.TrimSpace(string(data))
	}
	return ""
}
