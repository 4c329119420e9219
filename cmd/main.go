package main

import (
	"context"
	"os"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"k8s.io/utils/clock"

	"thyme/internal/core/model"
	"thyme/internal/core/stopwatch"
	"thyme/internal/platform"
	"thyme/internal/storage"
	"thyme/internal/ui/preferences"
	"thyme/internal/ui/tray"
	"thyme/internal/ui/window"
	"thyme/resources"
)

const (
	appName = "thyme"
	appID   = "org.chompa.thyme"
)

type options struct {
	configPath string
	logLevel   string
	tick       time.Duration
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := &options{}
	command := &cobra.Command{
		Use:          appName,
		Short:        "A desktop stopwatch: F1 starts, F2 pauses",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			return run(opts)
		},
	}
	bindFlags(command.Flags(), opts)
	return command
}

func bindFlags(flags *pflag.FlagSet, opts *options) {
	flags.StringVar(&opts.configPath, "config", storage.SettingsPath(appName), "settings file")
	flags.StringVar(&opts.logLevel, "log-level", logrus.InfoLevel.String(), "log level (trace, debug, info, warn, error)")
	flags.DurationVar(&opts.tick, "tick", 0, "override the tick interval from the settings file")
}

// timerConfig layers command-line overrides over the saved settings. The
// overrides are never written back to the settings file.
func (opts *options) timerConfig(settings preferences.Settings) model.TimerConfig {
	config := settings.TimerConfig()
	if opts.tick > 0 {
		config.TickInterval = opts.tick
	}
	return config
}

func newLogger(level string) (*logrus.Logger, error) {
	logger := logrus.New()
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, errors.Wrap(err, "parse log level")
	}
	logger.SetLevel(parsed)
	return logger, nil
}

func run(opts *options) error {
	logger, err := newLogger(opts.logLevel)
	if err != nil {
		return err
	}
	log := logger.WithField("app", appName)

	guard, err := platform.AcquireSingleInstance(appID)
	if err != nil {
		if errors.Is(err, platform.ErrAlreadyRunning) {
			log.WithError(err).Info("Another instance is running")
			return nil
		}
		return err
	}
	defer func() {
		_ = guard.Release()
	}()

	settings, err := storage.LoadSettings(opts.configPath)
	if err != nil {
		log.WithError(err).Warn("Using default settings")
	}

	fyneApp := app.NewWithID(appID)
	fyneApp.SetIcon(resources.MustIcon("thyme.svg"))

	realClock := clock.RealClock{}
	scheduler := stopwatch.NewTickerScheduler(realClock, fyne.DoAndWait, logger)
	timer := stopwatch.New(opts.timerConfig(settings), stopwatch.Options{
		Clock:     realClock,
		Scheduler: scheduler,
		Logger:    logger,
	})

	mainWindow, err := window.New(fyneApp, timer, settings.DisplayConfig(), settings.KeyBindings(), logger)
	if err != nil {
		return errors.Wrap(err, "create stopwatch window")
	}

	login := &loginReconciler{
		items:      platform.NewLoginItems(appName),
		executable: os.Executable,
	}
	if err := login.apply(settings.LaunchAtLogin); err != nil {
		log.WithError(err).Warn("Could not update launch at login")
	}

	var trayManager *tray.Manager
	applySettings := func(updated preferences.Settings) {
		if err := mainWindow.SetBindings(updated.KeyBindings()); err != nil {
			log.WithError(err).Warn("Keeping previous key bindings")
		}
		mainWindow.SetDisplay(updated.DisplayConfig())
		timer.UpdateConfig(opts.timerConfig(updated))
		if err := login.apply(updated.LaunchAtLogin); err != nil {
			log.WithError(err).Warn("Could not update launch at login")
		}
		settings = updated
	}

	prefsWindow := preferences.New(fyneApp, settings, func(updated preferences.Settings) {
		applySettings(updated)
		if err := storage.SaveSettings(opts.configPath, updated); err != nil {
			log.WithError(err).Error("Could not save settings")
		}
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	err = storage.WatchSettings(ctx, opts.configPath, logger, func(updated preferences.Settings) {
		fyne.Do(func() {
			if updated == settings {
				return
			}
			applySettings(updated)
			prefsWindow.UpdateSettings(updated)
		})
	})
	if err != nil {
		log.WithError(err).Warn("Settings file changes will not be picked up")
	}

	shutdown := func() {
		cancel()
		scheduler.Stop()
	}
	fyneApp.Lifecycle().SetOnStopped(shutdown)

	if desktopApp, ok := fyneApp.(desktop.App); ok {
		trayManager = tray.New(desktopApp, mainWindow.Text(), tray.Callbacks{
			OnStart: func() {
				timer.Start()
				trayManager.SetPaused(false)
			},
			OnPause: func() {
				timer.Pause()
				trayManager.SetPaused(true)
			},
			OnPreferences: prefsWindow.Show,
			OnQuit: func() {
				shutdown()
				fyneApp.Quit()
			},
		})
		desktopApp.SetSystemTrayIcon(fyneApp.Icon())
		mainWindow.OnLabelChange(trayManager.SetElapsed)
		mainWindow.OnCommand(func(command window.Command) {
			trayManager.SetPaused(command == window.CommandPause)
		})
	} else {
		log.Debug("System tray unsupported on this platform")
	}

	mainWindow.Show()
	if trayManager != nil {
		trayManager.SetPaused(!timer.Running())
	}
	log.WithFields(logrus.Fields{
		"config": opts.configPath,
		"tick":   opts.timerConfig(settings).TickInterval,
	}).Info("Stopwatch ready")

	fyneApp.Run()
	return nil
}
