package storage

import (
	"context"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"thyme/internal/ui/preferences"
)

// WatchSettings reloads the settings file whenever it is written and hands the
// result to onChange from the watcher goroutine. The parent directory is
// watched so editors that replace the file are picked up as well. Watching
// stops when ctx is done.
func WatchSettings(ctx context.Context, path string, log logrus.FieldLogger, onChange func(preferences.Settings)) error {
	path = filepath.Clean(path)
	dir := filepath.Dir(path)

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrap(err, "create config directory")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "create settings watcher")
	}
	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return errors.Wrapf(err, "watch settings directory %s", dir)
	}

	log = log.WithFields(logrus.Fields{
		"component": "settings-watcher",
		"path":      path,
	})

	go func() {
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != path || event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				settings, err := LoadSettings(path)
				if err != nil {
					log.WithError(err).Warn("Ignoring unreadable settings file")
					continue
				}
				log.Debug("Settings reloaded")
				onChange(settings)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.WithError(err).Warn("Settings watcher error")
			}
		}
	}()

	return nil
}
