package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := LoadWithPath("does-not-exist.env")
	require.NoError(t, err)

	assert.Equal(t, "agenta-api", cfg.App.Name)
	assert.Equal(t, "development", cfg.App.Environment)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 24*time.Hour, cfg.JWT.TokenTTL)
	assert.Equal(t, DevJWTSecret, cfg.JWT.Secret)
	assert.False(t, cfg.Kafka.Enabled)
	assert.Equal(t, 10*time.Minute, cfg.Redis.CatalogTTL)
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		cfg, err := LoadWithPath("does-not-exist.env")
		require.NoError(t, err)
		return cfg
	}

	t.Run("production refuses the dev secret", func(t *testing.T) {
		cfg := base()
		cfg.App.Environment = "production"
		assert.Error(t, cfg.Validate())

		cfg.JWT.Secret = "a-real-secret"
		assert.NoError(t, cfg.Validate())
	})

	t.Run("token TTL must be positive", func(t *testing.T) {
		cfg := base()
		cfg.JWT.TokenTTL = 0
		assert.Error(t, cfg.Validate())
	})

	t.Run("port bounds", func(t *testing.T) {
		cfg := base()
		cfg.Server.Port = 70000
		assert.Error(t, cfg.Validate())
	})
}

func TestDSN(t *testing.T) {
	d := &DatabaseConfig{
		Host: "db", Port: 5432, User: "u", Password: "p", DBName: "agenta", SSLMode: "disable",
	}
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=agenta sslmode=disable", d.DSN())
}
