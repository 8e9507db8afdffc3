package config

import (
	"github.com/spf13/viper"
)

type (
	Config struct {
		Database
		Dataset
		UI
		Log
	}

	Database struct {
		Path string
	}
	Dataset struct {
		Path          string // Empty selects the embedded sample
		ReseedOnStart bool   // Drop and re-insert chapters and verses at launch
	}
	UI struct {
		Theme        string
		SettingsPath string // Empty selects the user config directory
	}
	Log struct {
		File   string
		Level  string
		Format string // "text" or "json"
	}
)

func NewConfig() *Config {
	return newConfig(viper.New())
}

func newConfig(v *viper.Viper) *Config {
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetDefault("database_path", DefaultDatabasePath)
	v.SetDefault("dataset_path", "")
	v.SetDefault("reseed_on_start", true)
	v.SetDefault("theme", DefaultTheme)
	v.SetDefault("settings_path", "")
	v.SetDefault("log_file", DefaultLogFile)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")

	return &Config{
		Database: Database{
			Path: v.GetString("DATABASE_PATH"),
		},
		Dataset: Dataset{
			Path:          v.GetString("DATASET_PATH"),
			ReseedOnStart: v.GetBool("RESEED_ON_START"),
		},
		UI: UI{
			Theme:        v.GetString("THEME"),
			SettingsPath: v.GetString("SETTINGS_PATH"),
		},
		Log: Log{
			File:   v.GetString("LOG_FILE"),
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
		},
	}
}
