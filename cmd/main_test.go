package main

import (
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"thyme/internal/ui/preferences"
)

func TestTickFlagOverridesTimerConfigOnly(t *testing.T) {
	opts := &options{}
	flags := pflag.NewFlagSet(appName, pflag.ContinueOnError)
	bindFlags(flags, opts)
	require.NoError(t, flags.Parse([]string{"--tick", "250ms"}))

	settings := preferences.DefaultSettings()
	assert.Equal(t, 250*time.Millisecond, opts.timerConfig(settings).TickInterval)
	assert.Equal(t, preferences.DefaultSettings().TickInterval, settings.TickInterval)

	reloaded := settings
	reloaded.TickInterval = time.Second
	assert.Equal(t, 250*time.Millisecond, opts.timerConfig(reloaded).TickInterval)
}

func TestTimerConfigWithoutOverrideFollowsSettings(t *testing.T) {
	opts := &options{}
	flags := pflag.NewFlagSet(appName, pflag.ContinueOnError)
	bindFlags(flags, opts)
	require.NoError(t, flags.Parse(nil))

	settings := preferences.DefaultSettings()
	settings.TickInterval = time.Second
	assert.Equal(t, time.Second, opts.timerConfig(settings).TickInterval)
}
