package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig checks that every value the server cannot run without is
// present. Production additionally refuses the development JWT secret.
func ValidateConfig(cfg *Config) error {
	required := map[string]string{
		"SERVER_PORT": cfg.ServerPort,
		"DB_HOST":     cfg.DBHost,
		"DB_PORT":     cfg.DBPort,
		"DB_USER":     cfg.DBUser,
		"DB_NAME":     cfg.DBName,
		"REDIS_HOST":  cfg.RedisHost,
		"REDIS_PORT":  cfg.RedisPort,
		"JWT_SECRET":  cfg.JWTSecret,
	}

	var errors []string
	for name, value := range required {
		if value == "" {
			errors = append(errors, fmt.Sprintf("required configuration %s is not set", name))
		}
	}

	if IsProduction() {
		if cfg.DBPassword == "" {
			errors = append(errors, "DB_PASSWORD is required in production")
		}
		if cfg.JWTSecret == "dev-secret-change-me" {
			errors = append(errors, "JWT_SECRET must not use the development default in production")
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("%s", strings.Join(errors, "\n"))
	}
	return nil
}
