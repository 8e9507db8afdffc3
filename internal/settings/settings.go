package settings

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Settings are the reader preferences kept between launches.
type Settings struct {
	Theme       string  `json:"theme"`
	Scale       float64 `json:"scale"`
	LastChapter int     `json:"last_chapter"`
}

// DefaultPath is config.json under the user config directory.
func DefaultPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "quran-tui", "config.json"), nil
}

func Load(path string) (Settings, error) {
	var s Settings

	data, err := os.ReadFile(path)
	if err != nil {
		// No config = just return zero value, no error
		if os.IsNotExist(err) {
			return s, nil
		}
		return s, err
	}

	if err := json.Unmarshal(data, &s); err != nil {
		return Settings{}, err
	}

	return s, nil
}

func Save(path string, s Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}
