package model

import "time"

// TimerConfig contains runtime settings for the stopwatch timer.
type TimerConfig struct {
	TickInterval time.Duration
}

// KeyBindings maps host key names to stopwatch commands.
type KeyBindings struct {
	Start string
	Pause string
}

// DisplayConfig controls how elapsed time is rendered.
type DisplayConfig struct {
	Separator string
	TextSize  float32
	AutoStart bool
}
