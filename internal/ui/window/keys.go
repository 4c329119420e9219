package window

import (
	"strings"

	"fyne.io/fyne/v2"
	"github.com/pkg/errors"

	"thyme/internal/core/model"
)

// Command is a stopwatch action bound to a key.
type Command int

const (
	CommandNone Command = iota
	CommandStart
	CommandPause
)

var (
	// ErrUnknownKey indicates a key name the window cannot bind.
	ErrUnknownKey = errors.New("unknown key name")
	// ErrConflictingBindings indicates start and pause share a key.
	ErrConflictingBindings = errors.New("start and pause keys must differ")
)

var bindableKeys = func() map[string]fyne.KeyName {
	keys := []fyne.KeyName{
		fyne.KeyF1, fyne.KeyF2, fyne.KeyF3, fyne.KeyF4, fyne.KeyF5, fyne.KeyF6,
		fyne.KeyF7, fyne.KeyF8, fyne.KeyF9, fyne.KeyF10, fyne.KeyF11, fyne.KeyF12,
		fyne.KeySpace, fyne.KeyReturn, fyne.KeyEnter, fyne.KeyEscape, fyne.KeyTab,
		fyne.KeyBackspace, fyne.KeyInsert, fyne.KeyDelete, fyne.KeyHome, fyne.KeyEnd,
		fyne.KeyPageUp, fyne.KeyPageDown, fyne.KeyUp, fyne.KeyDown, fyne.KeyLeft, fyne.KeyRight,
		fyne.Key0, fyne.Key1, fyne.Key2, fyne.Key3, fyne.Key4,
		fyne.Key5, fyne.Key6, fyne.Key7, fyne.Key8, fyne.Key9,
		fyne.KeyA, fyne.KeyB, fyne.KeyC, fyne.KeyD, fyne.KeyE, fyne.KeyF, fyne.KeyG,
		fyne.KeyH, fyne.KeyI, fyne.KeyJ, fyne.KeyK, fyne.KeyL, fyne.KeyM, fyne.KeyN,
		fyne.KeyO, fyne.KeyP, fyne.KeyQ, fyne.KeyR, fyne.KeyS, fyne.KeyT, fyne.KeyU,
		fyne.KeyV, fyne.KeyW, fyne.KeyX, fyne.KeyY, fyne.KeyZ,
	}
	byName := make(map[string]fyne.KeyName, len(keys))
	for _, key := range keys {
		byName[strings.ToLower(string(key))] = key
	}
	return byName
}()

// ParseKey resolves a case-insensitive key name such as "F1" or "space".
func ParseKey(name string) (fyne.KeyName, error) {
	key, ok := bindableKeys[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return "", errors.Wrapf(ErrUnknownKey, "parse key %q", name)
	}
	return key, nil
}

type keymap struct {
	start fyne.KeyName
	pause fyne.KeyName
}

func newKeymap(bindings model.KeyBindings) (keymap, error) {
	start, err := ParseKey(bindings.Start)
	if err != nil {
		return keymap{}, errors.Wrap(err, "start binding")
	}
	pause, err := ParseKey(bindings.Pause)
	if err != nil {
		return keymap{}, errors.Wrap(err, "pause binding")
	}
	if start == pause {
		return keymap{}, errors.Wrapf(ErrConflictingBindings, "both bound to %s", start)
	}
	return keymap{start: start, pause: pause}, nil
}

func (keys keymap) lookup(key fyne.KeyName) Command {
	switch key {
	case keys.start:
		return CommandStart
	case keys.pause:
		return CommandPause
	default:
		return CommandNone
	}
}
