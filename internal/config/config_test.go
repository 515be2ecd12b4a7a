package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "Harvest Export", cfg.App.Name)
	assert.Equal(t, 8080, cfg.App.Port)
	assert.Equal(t, "en", cfg.App.DefaultLanguage)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "local", cfg.Storage.Mode)
	assert.Equal(t, int64(10), cfg.Storage.MaxUploadSizeMB)
	assert.Equal(t, 5, cfg.RateLimit.ContactPerHour)
	assert.Equal(t, 8*time.Hour, cfg.Auth.TokenTTLDuration())
	assert.Equal(t, 365*24*time.Hour, cfg.Jobs.MessageRetention())
	assert.Contains(t, cfg.RateLimit.WhitelistPaths, "/health")
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("DATABASE_DRIVER", "sqlite")
	t.Setenv("JWT_SECRET", "from-env")
	t.Setenv("ADMIN_API_KEY", "key-123")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.App.Port)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "from-env", cfg.Auth.JWTSecret)
	assert.Equal(t, "key-123", cfg.ApiKey.Value)
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{
			App:      AppConfig{Environment: "development", DefaultLanguage: "en"},
			Database: DatabaseConfig{Driver: "postgres"},
		}
	}

	t.Run("development gets a fallback secret", func(t *testing.T) {
		cfg := base()
		require.NoError(t, cfg.Validate())
		assert.Equal(t, devJWTSecret, cfg.Auth.JWTSecret)
	})

	t.Run("production requires a secret", func(t *testing.T) {
		cfg := base()
		cfg.App.Environment = "production"
		assert.Error(t, cfg.Validate())

		cfg.Auth.JWTSecret = devJWTSecret
		assert.Error(t, cfg.Validate())

		cfg.Auth.JWTSecret = "a-real-secret"
		assert.NoError(t, cfg.Validate())
	})

	t.Run("unknown driver", func(t *testing.T) {
		cfg := base()
		cfg.Database.Driver = "mysql"
		assert.Error(t, cfg.Validate())
	})

	t.Run("unknown default language", func(t *testing.T) {
		cfg := base()
		cfg.App.DefaultLanguage = "fr"
		assert.Error(t, cfg.Validate())
	})
}

func TestDatabaseConfig_ConnectionString(t *testing.T) {
	d := DatabaseConfig{Host: "db", Port: 5433, User: "u", Password: "p", Name: "n", SSLMode: "require"}
	assert.Equal(t, "host=db port=5433 user=u password=p dbname=n sslmode=require", d.ConnectionString())
}
