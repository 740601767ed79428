package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFrom_Defaults(t *testing.T) {
	cfg, err := loadFrom(viper.New())

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 1024, cfg.DraftCacheSize)
	assert.False(t, cfg.AllowNetLines)
	assert.Equal(t, "file://migrations", cfg.MigrationsPath)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, defaultJWTSecret, cfg.JWTSecret)
}

func TestLoadFrom_Environment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("LEDGER_ALLOW_NET_LINES", "true")
	t.Setenv("DRAFT_CACHE_SIZE", "16")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://erp.example.com, https://admin.example.com ,")
	t.Setenv("JWT_SECRET", "s3cret")

	cfg, err := loadFrom(viper.New())

	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.True(t, cfg.AllowNetLines)
	assert.Equal(t, 16, cfg.DraftCacheSize)
	assert.Equal(t, []string{"https://erp.example.com", "https://admin.example.com"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, "s3cret", cfg.JWTSecret)
}

func TestLoadFrom_ProductionRequiresSecret(t *testing.T) {
	t.Setenv("IS_PRODUCTION", "true")
	t.Setenv("JWT_SECRET", "")

	_, err := loadFrom(viper.New())

	assert.Error(t, err)
}

func TestLoadFrom_InvalidCacheSizeFallsBack(t *testing.T) {
	t.Setenv("DRAFT_CACHE_SIZE", "-3")

	cfg, err := loadFrom(viper.New())

	require.NoError(t, err)
	assert.Equal(t, 1024, cfg.DraftCacheSize)
}
