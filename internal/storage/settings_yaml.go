package storage

import (
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"thyme/internal/ui/preferences"
)

const settingsFileName = "settings.yaml"

type yamlSettings struct {
	StartKey       string  `yaml:"start_key,omitempty"`
	PauseKey       string  `yaml:"pause_key,omitempty"`
	Separator      string  `yaml:"separator,omitempty"`
	TextSize       float32 `yaml:"text_size,omitempty"`
	AutoStart      *bool   `yaml:"auto_start,omitempty"`
	LaunchAtLogin  bool    `yaml:"launch_at_login"`
	TickIntervalMs int     `yaml:"tick_interval_ms,omitempty"`
}

// SettingsPath returns the settings file location under the XDG config home.
func SettingsPath(appName string) string {
	return filepath.Join(xdg.ConfigHome, appName, settingsFileName)
}

// LoadSettings reads user preferences from YAML.
// If the file does not exist, default settings are returned. Values that fail
// validation fall back to their defaults.
func LoadSettings(path string) (preferences.Settings, error) {
	settings := preferences.DefaultSettings()

	rawData, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, errors.Wrap(err, "read settings file")
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, errors.Wrap(err, "parse settings yaml")
	}

	return applyYamlSettings(settings, fileData), nil
}

// SaveSettings writes user preferences to YAML.
func SaveSettings(path string, settings preferences.Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(err, "create config directory")
	}

	autoStart := settings.AutoStart
	fileData := yamlSettings{
		StartKey:       settings.StartKey,
		PauseKey:       settings.PauseKey,
		Separator:      settings.Separator,
		TextSize:       settings.TextSize,
		AutoStart:      &autoStart,
		LaunchAtLogin:  settings.LaunchAtLogin,
		TickIntervalMs: int(settings.TickInterval / time.Millisecond),
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return errors.Wrap(err, "marshal settings yaml")
	}

	if err := os.WriteFile(path, serialized, 0o644); err != nil {
		return errors.Wrap(err, "write settings file")
	}

	return nil
}

func applyYamlSettings(settings preferences.Settings, fileData yamlSettings) preferences.Settings {
	defaults := settings

	if fileData.StartKey != "" {
		settings.StartKey = fileData.StartKey
	}
	if fileData.PauseKey != "" {
		settings.PauseKey = fileData.PauseKey
	}
	if fileData.Separator != "" {
		settings.Separator = fileData.Separator
	}
	if fileData.TextSize >= preferences.MinTextSize && fileData.TextSize <= preferences.MaxTextSize {
		settings.TextSize = fileData.TextSize
	}
	if fileData.AutoStart != nil {
		settings.AutoStart = *fileData.AutoStart
	}
	if fileData.TickIntervalMs > 0 {
		settings.TickInterval = time.Duration(fileData.TickIntervalMs) * time.Millisecond
	}
	settings.LaunchAtLogin = fileData.LaunchAtLogin

	if settings.Validate() != nil {
		settings.StartKey = defaults.StartKey
		settings.PauseKey = defaults.PauseKey
	}
	return settings
}
