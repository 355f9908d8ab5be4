package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DB_PATH", "")
	t.Setenv("SERVER_PORT", "")

	cfg := Load()
	assert.Equal(t, "app.db", cfg.DBPath)
	assert.Equal(t, "5555", cfg.ServerPort)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("DB_PATH", "/tmp/camp.db")
	t.Setenv("SERVER_PORT", "8080")

	cfg := Load()
	assert.Equal(t, "/tmp/camp.db", cfg.DBPath)
	assert.Equal(t, "8080", cfg.ServerPort)
}
