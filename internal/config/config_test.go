package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURI)
	assert.Equal(t, "userapi", cfg.MongoDB)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, []string{"http://localhost:5173", "http://localhost:3000"}, cfg.AllowedOrigins)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("MONGO_URI", "mongodb://db:27017")
	t.Setenv("MONGO_DB", "prod")
	t.Setenv("ALLOWED_ORIGINS", "https://example.com, https://app.example.com")
	t.Setenv("LOG_LEVEL", "debug")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "mongodb://db:27017", cfg.MongoURI)
	assert.Equal(t, "prod", cfg.MongoDB)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, []string{"https://example.com", "https://app.example.com"}, cfg.AllowedOrigins)
}
