// ABOUTME: Application settings persistence
// ABOUTME: Explicit settings struct loaded at startup and written back on exit
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Settings holds the persistent user state. Passed into the session at
// startup and written back on exit; there is no process-wide singleton.
type Settings struct {
	LastDir  string  `json:"last_dir"`
	LastRate float64 `json:"last_rate"`
	Zoom     float64 `json:"zoom"`
	Volume   int     `json:"volume"`
}

// Defaults returns the settings used when no file exists yet
func Defaults() Settings {
	return Settings{
		LastRate: 1.0,
		Zoom:     1.0,
		Volume:   70,
	}
}

// DefaultPath returns the settings file location in the user config dir
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate config dir: %w", err)
	}
	return filepath.Join(dir, "audinux", "settings.json"), nil
}

// Load reads settings from path, falling back to defaults when the file is
// missing or unreadable
func Load(path string) Settings {
	s := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return s
	}
	if err := json.Unmarshal(data, &s); err != nil {
		return Defaults()
	}

	if s.LastRate <= 0 {
		s.LastRate = 1.0
	}
	if s.Zoom <= 0 {
		s.Zoom = 1.0
	}
	if s.Volume < 0 || s.Volume > 100 {
		s.Volume = 70
	}
	return s
}

// Save writes settings to path, creating parent directories as needed
func Save(path string, s Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}
	return nil
}
