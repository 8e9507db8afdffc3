package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	assert.Equal(t, DefaultDatabasePath, cfg.Database.Path)
	assert.Empty(t, cfg.Dataset.Path)
	assert.True(t, cfg.Dataset.ReseedOnStart)
	assert.Equal(t, DefaultTheme, cfg.UI.Theme)
	assert.Equal(t, DefaultLogFile, cfg.Log.File)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
}

func TestNewConfig_Environment(t *testing.T) {
	t.Setenv("QURAN_DATABASE_PATH", "/tmp/q.db")
	t.Setenv("QURAN_DATASET_PATH", "/data/quran.zip")
	t.Setenv("QURAN_RESEED_ON_START", "false")
	t.Setenv("QURAN_THEME", "parchment")
	t.Setenv("QURAN_LOG_LEVEL", "debug")

	cfg := NewConfig()

	assert.Equal(t, "/tmp/q.db", cfg.Database.Path)
	assert.Equal(t, "/data/quran.zip", cfg.Dataset.Path)
	assert.False(t, cfg.Dataset.ReseedOnStart)
	assert.Equal(t, "parchment", cfg.UI.Theme)
	assert.Equal(t, "debug", cfg.Log.Level)
}
