package window

import (
	"sync"
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/theme"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	clocktesting "k8s.io/utils/clock/testing"

	"thyme/internal/core/model"
	"thyme/internal/core/stopwatch"
)

type fixture struct {
	window *Window
	timer  *stopwatch.Timer
	clock  *clocktesting.FakeClock
	ui     *sync.Mutex
}

func newFixture(t *testing.T, display model.DisplayConfig) fixture {
	t.Helper()
	app := test.NewTempApp(t)
	// The label uses bold monospace, which only the default theme ships.
	app.Settings().SetTheme(theme.DefaultTheme())
	logger := logrus.New()

	ui := &sync.Mutex{}
	dispatch := func(fn func()) {
		ui.Lock()
		defer ui.Unlock()
		fn()
	}

	fakeClock := clocktesting.NewFakeClock(time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC))
	scheduler := stopwatch.NewTickerScheduler(fakeClock, dispatch, logger)
	t.Cleanup(scheduler.Stop)
	timer := stopwatch.New(model.TimerConfig{}, stopwatch.Options{
		Clock:     fakeClock,
		Scheduler: scheduler,
		Logger:    logger,
	})

	window, err := New(app, timer, display, model.KeyBindings{Start: "F1", Pause: "F2"}, logger)
	require.NoError(t, err)
	return fixture{window: window, timer: timer, clock: fakeClock, ui: ui}
}

func (f fixture) text() string {
	f.ui.Lock()
	defer f.ui.Unlock()
	return f.window.Text()
}

func TestFormatElapsed(t *testing.T) {
	assert.Equal(t, "00∶00", FormatElapsed(0, 0, DefaultSeparator))
	assert.Equal(t, "01∶02", FormatElapsed(1, 2, DefaultSeparator))
	assert.Equal(t, "123:59", FormatElapsed(123, 59, ":"))
}

func TestWindowInitialLabel(t *testing.T) {
	f := newFixture(t, model.DisplayConfig{AutoStart: true})

	assert.Equal(t, "00∶00", f.window.Text())
	assert.False(t, f.timer.Running())
}

func TestWindowShowAutoStarts(t *testing.T) {
	f := newFixture(t, model.DisplayConfig{AutoStart: true})
	f.window.Show()
	assert.True(t, f.timer.Running())

	manual := newFixture(t, model.DisplayConfig{AutoStart: false})
	manual.window.Show()
	assert.False(t, manual.timer.Running())
}

func TestWindowKeyCommands(t *testing.T) {
	f := newFixture(t, model.DisplayConfig{})
	var commands []Command
	f.window.OnCommand(func(command Command) {
		commands = append(commands, command)
	})
	onTypedKey := f.window.window.Canvas().OnTypedKey()
	require.NotNil(t, onTypedKey)

	onTypedKey(&fyne.KeyEvent{Name: fyne.KeyF1})
	assert.True(t, f.timer.Running())

	onTypedKey(&fyne.KeyEvent{Name: fyne.KeyF3})
	assert.True(t, f.timer.Running())

	onTypedKey(&fyne.KeyEvent{Name: fyne.KeyF2})
	assert.False(t, f.timer.Running())
	assert.Equal(t, []Command{CommandStart, CommandPause}, commands)
}

func TestWindowRendersHoursThenMinutes(t *testing.T) {
	f := newFixture(t, model.DisplayConfig{AutoStart: true})
	f.window.Show()

	f.clock.Step(3725 * time.Second)
	require.Eventually(t, func() bool {
		return f.text() == "01∶02"
	}, 2*time.Second, 5*time.Millisecond)
}

func TestWindowLabelListeners(t *testing.T) {
	f := newFixture(t, model.DisplayConfig{})

	var seen []string
	f.window.OnLabelChange(func(text string) {
		seen = append(seen, text)
	})

	f.window.update(f.timer, 0, 5)
	f.window.update(f.timer, 0, 5)
	f.window.SetDisplay(model.DisplayConfig{Separator: ":", TextSize: 30})

	assert.Equal(t, []string{"00∶05", "00:05"}, seen)
	assert.Equal(t, float32(30), f.window.label.TextSize)
}

func TestWindowSetBindings(t *testing.T) {
	f := newFixture(t, model.DisplayConfig{})

	err := f.window.SetBindings(model.KeyBindings{Start: "F5", Pause: "F5"})
	assert.True(t, errors.Is(err, ErrConflictingBindings))
	f.window.handleKey(&fyne.KeyEvent{Name: fyne.KeyF1})
	assert.True(t, f.timer.Running())

	require.NoError(t, f.window.SetBindings(model.KeyBindings{Start: "space", Pause: "P"}))
	f.window.handleKey(&fyne.KeyEvent{Name: fyne.KeyP})
	assert.False(t, f.timer.Running())
	f.window.handleKey(&fyne.KeyEvent{Name: fyne.KeySpace})
	assert.True(t, f.timer.Running())
}
