package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validConfig() *Config {
	return &Config{
		Port:      "8460",
		JWTSecret: "a-reasonably-long-development-secret",
		MaxRating: DefaultMaxRating,
		Env:       "development",
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	t.Run("valid development config", func(t *testing.T) {
		assert.NoError(t, validConfig().Validate())
	})

	t.Run("missing port", func(t *testing.T) {
		cfg := validConfig()
		cfg.Port = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("missing jwt secret", func(t *testing.T) {
		cfg := validConfig()
		cfg.JWTSecret = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("zero max rating", func(t *testing.T) {
		cfg := validConfig()
		cfg.MaxRating = 0
		assert.Error(t, cfg.Validate())
	})

	t.Run("production default secret rejected", func(t *testing.T) {
		cfg := validConfig()
		cfg.Env = "production"
		cfg.JWTSecret = "your-secret-key-change-in-production"
		assert.Error(t, cfg.Validate())
	})

	t.Run("production short secret rejected", func(t *testing.T) {
		cfg := validConfig()
		cfg.Env = "production"
		cfg.JWTSecret = "too-short"
		cfg.DBPassword = "str0ng-enough-for-tests"
		assert.Error(t, cfg.Validate())
	})

	t.Run("production weak db password rejected", func(t *testing.T) {
		cfg := validConfig()
		cfg.Env = "production"
		cfg.JWTSecret = "this-secret-is-at-least-32-characters!"
		cfg.DBPassword = "password"
		assert.Error(t, cfg.Validate())
	})

	t.Run("production valid", func(t *testing.T) {
		cfg := validConfig()
		cfg.Env = "production"
		cfg.JWTSecret = "this-secret-is-at-least-32-characters!"
		cfg.DBPassword = "str0ng-enough-for-tests"
		cfg.DBSSLMode = "require"
		assert.NoError(t, cfg.Validate())
	})
}
