package window

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"github.com/sirupsen/logrus"

	"thyme/internal/core/model"
	"thyme/internal/core/stopwatch"
)

const (
	windowTitle     = "Thyme"
	defaultTextSize = float32(48)
)

// Window shows the stopwatch label and turns key presses into timer commands.
type Window struct {
	window    fyne.Window
	timer     *stopwatch.Timer
	label     *canvas.Text
	log       logrus.FieldLogger
	display   model.DisplayConfig
	keys      keymap
	listeners []func(string)
	commands  []func(Command)
	hours     uint32
	minutes   uint32
}

// New creates the stopwatch window and subscribes it to timer updates.
func New(app fyne.App, timer *stopwatch.Timer, display model.DisplayConfig, bindings model.KeyBindings, log logrus.FieldLogger) (*Window, error) {
	keys, err := newKeymap(bindings)
	if err != nil {
		return nil, err
	}
	display = normalizeDisplay(display)

	window := app.NewWindow(windowTitle)
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}

	label := canvas.NewText("", theme.Color(theme.ColorNameForeground))
	label.Alignment = fyne.TextAlignCenter
	label.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}
	label.TextSize = display.TextSize

	window.SetContent(container.NewPadded(container.NewCenter(label)))
	window.SetMaster()

	stopwatchWindow := &Window{
		window:  window,
		timer:   timer,
		label:   label,
		log:     log.WithField("component", "window"),
		display: display,
		keys:    keys,
	}
	stopwatchWindow.render()

	window.Canvas().SetOnTypedKey(stopwatchWindow.handleKey)
	timer.ConnectUpdate(stopwatchWindow.update)

	return stopwatchWindow, nil
}

// Show presents the window and starts the timer when auto start is enabled.
func (stopwatchWindow *Window) Show() {
	stopwatchWindow.window.Show()
	if stopwatchWindow.display.AutoStart {
		stopwatchWindow.timer.Start()
	}
}

// Text returns the label currently displayed.
func (stopwatchWindow *Window) Text() string {
	return stopwatchWindow.label.Text
}

// OnLabelChange registers a listener called whenever the label text changes.
func (stopwatchWindow *Window) OnLabelChange(listener func(string)) {
	stopwatchWindow.listeners = append(stopwatchWindow.listeners, listener)
}

// OnCommand registers a listener called after a key command reached the timer.
func (stopwatchWindow *Window) OnCommand(listener func(Command)) {
	stopwatchWindow.commands = append(stopwatchWindow.commands, listener)
}

// SetBindings replaces the key bindings. Invalid bindings leave the current ones in place.
func (stopwatchWindow *Window) SetBindings(bindings model.KeyBindings) error {
	keys, err := newKeymap(bindings)
	if err != nil {
		return err
	}
	stopwatchWindow.keys = keys
	return nil
}

// SetDisplay updates separator and text size and re-renders the label.
func (stopwatchWindow *Window) SetDisplay(display model.DisplayConfig) {
	stopwatchWindow.display = normalizeDisplay(display)
	stopwatchWindow.label.TextSize = stopwatchWindow.display.TextSize
	stopwatchWindow.render()
}

func (stopwatchWindow *Window) handleKey(event *fyne.KeyEvent) {
	command := stopwatchWindow.keys.lookup(event.Name)
	switch command {
	case CommandStart:
		stopwatchWindow.log.WithField("key", event.Name).Debug("Start requested")
		stopwatchWindow.timer.Start()
	case CommandPause:
		stopwatchWindow.log.WithField("key", event.Name).Debug("Pause requested")
		stopwatchWindow.timer.Pause()
	default:
		return
	}
	for _, listener := range stopwatchWindow.commands {
		listener(command)
	}
}

func (stopwatchWindow *Window) update(_ *stopwatch.Timer, hours, minutes uint32) {
	stopwatchWindow.hours = hours
	stopwatchWindow.minutes = minutes
	stopwatchWindow.render()
}

func (stopwatchWindow *Window) render() {
	text := FormatElapsed(stopwatchWindow.hours, stopwatchWindow.minutes, stopwatchWindow.display.Separator)
	if text == stopwatchWindow.label.Text {
		return
	}
	stopwatchWindow.label.Text = text
	stopwatchWindow.label.Refresh()
	for _, listener := range stopwatchWindow.listeners {
		listener(text)
	}
}

func normalizeDisplay(display model.DisplayConfig) model.DisplayConfig {
	if display.Separator == "" {
		display.Separator = DefaultSeparator
	}
	if display.TextSize <= 0 {
		display.TextSize = defaultTextSize
	}
	return display
}
