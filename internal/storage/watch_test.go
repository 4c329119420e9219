package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"thyme/internal/ui/preferences"
)

func TestWatchSettingsReloadsOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "thyme", settingsFileName)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reloaded := make(chan preferences.Settings, 8)
	require.NoError(t, WatchSettings(ctx, path, logrus.New(), func(settings preferences.Settings) {
		reloaded <- settings
	}))

	want := preferences.DefaultSettings()
	want.Separator = "·"
	require.NoError(t, SaveSettings(path, want))

	deadline := time.After(5 * time.Second)
	for {
		select {
		case got := <-reloaded:
			if got.Separator == "·" {
				assert.Equal(t, want, got)
				return
			}
		case <-deadline:
			t.Fatal("settings change was not observed")
		}
	}
}
