package preferences

import (
	"time"

	"github.com/pkg/errors"

	"thyme/internal/core/model"
	"thyme/internal/core/stopwatch"
	"thyme/internal/ui/window"
)

const (
	MinTextSize = float32(16)
	MaxTextSize = float32(128)
)

// Settings defines editable user preferences.
type Settings struct {
	StartKey      string
	PauseKey      string
	Separator     string
	TextSize      float32
	AutoStart     bool
	LaunchAtLogin bool
	TickInterval  time.Duration
}

// DefaultSettings returns default settings for Thyme.
func DefaultSettings() Settings {
	return Settings{
		StartKey:      "F1",
		PauseKey:      "F2",
		Separator:     window.DefaultSeparator,
		TextSize:      48,
		AutoStart:     true,
		LaunchAtLogin: false,
		TickInterval:  stopwatch.DefaultTickInterval,
	}
}

// Validate reports the first setting the application cannot apply.
func (settings Settings) Validate() error {
	start, err := window.ParseKey(settings.StartKey)
	if err != nil {
		return errors.Wrap(err, "start key")
	}
	pause, err := window.ParseKey(settings.PauseKey)
	if err != nil {
		return errors.Wrap(err, "pause key")
	}
	if start == pause {
		return errors.Wrapf(window.ErrConflictingBindings, "both bound to %s", start)
	}
	if settings.Separator == "" {
		return errors.New("separator is empty")
	}
	if settings.TextSize < MinTextSize || settings.TextSize > MaxTextSize {
		return errors.Errorf("text size %.0f outside %.0f-%.0f", settings.TextSize, MinTextSize, MaxTextSize)
	}
	if settings.TickInterval <= 0 {
		return errors.Errorf("tick interval %s must be positive", settings.TickInterval)
	}
	return nil
}

// TimerConfig converts settings to the stopwatch configuration.
func (settings Settings) TimerConfig() model.TimerConfig {
	return model.TimerConfig{TickInterval: settings.TickInterval}
}

// KeyBindings converts settings to window key bindings.
func (settings Settings) KeyBindings() model.KeyBindings {
	return model.KeyBindings{
		Start: settings.StartKey,
		Pause: settings.PauseKey,
	}
}

// DisplayConfig converts settings to the label configuration.
func (settings Settings) DisplayConfig() model.DisplayConfig {
	return model.DisplayConfig{
		Separator: settings.Separator,
		TextSize:  settings.TextSize,
		AutoStart: settings.AutoStart,
	}
}
