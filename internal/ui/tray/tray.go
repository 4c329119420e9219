package tray

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnStart       func()
	OnPause       func()
	OnPreferences func()
	OnQuit        func()
}

// Manager handles system tray state.
type Manager struct {
	app        desktop.App
	callbacks  Callbacks
	statusItem *fyne.MenuItem
	startItem  *fyne.MenuItem
	pauseItem  *fyne.MenuItem
	elapsed    string
	paused     bool
}

// New creates a tray manager with the provided callbacks.
func New(app desktop.App, elapsed string, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:       app,
		callbacks: callbacks,
		elapsed:   elapsed,
		paused:    true,
	}

	manager.statusItem = fyne.NewMenuItem("", nil)
	manager.statusItem.Disabled = true
	manager.startItem = fyne.NewMenuItem("Start", invoke(&manager.callbacks.OnStart))
	manager.pauseItem = fyne.NewMenuItem("Pause", invoke(&manager.callbacks.OnPause))

	manager.refresh()
	return manager
}

// SetElapsed updates the elapsed label shown in the status item.
func (manager *Manager) SetElapsed(elapsed string) {
	if elapsed == manager.elapsed {
		return
	}
	manager.elapsed = elapsed
	manager.refresh()
}

// SetPaused updates pause state.
func (manager *Manager) SetPaused(paused bool) {
	manager.paused = paused
	manager.refresh()
}

func (manager *Manager) refresh() {
	manager.statusItem.Label = statusText(manager.elapsed, manager.paused)
	manager.startItem.Label = startLabel(manager.paused)
	manager.pauseItem.Disabled = manager.paused

	if manager.app == nil {
		return
	}
	manager.app.SetSystemTrayMenu(fyne.NewMenu("Thyme",
		manager.statusItem,
		manager.startItem,
		manager.pauseItem,
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Settings", invoke(&manager.callbacks.OnPreferences)),
		fyne.NewMenuItem("Quit", invoke(&manager.callbacks.OnQuit)),
	))
}

func statusText(elapsed string, paused bool) string {
	status := fmt.Sprintf("Elapsed: %s", elapsed)
	if paused {
		status += " (paused)"
	}
	return status
}

func startLabel(paused bool) string {
	if paused {
		return "Start"
	}
	return "Restart"
}

func invoke(callback *func()) func() {
	return func() {
		if *callback != nil {
			(*callback)()
		}
	}
}
