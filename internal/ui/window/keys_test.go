package window

import (
	"testing"

	"fyne.io/fyne/v2"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"thyme/internal/core/model"
)

func TestParseKey(t *testing.T) {
	tests := []struct {
		name string
		want fyne.KeyName
	}{
		{name: "F1", want: fyne.KeyF1},
		{name: "f12", want: fyne.KeyF12},
		{name: " space ", want: fyne.KeySpace},
		{name: "p", want: fyne.KeyP},
		{name: "7", want: fyne.Key7},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseKey(tc.name)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseKeyRejectsUnknown(t *testing.T) {
	for _, name := range []string{"", "F13", "ctrl+p", "??"} {
		_, err := ParseKey(name)
		assert.True(t, errors.Is(err, ErrUnknownKey), "key %q", name)
	}
}

func TestKeymapLookup(t *testing.T) {
	keys, err := newKeymap(model.KeyBindings{Start: "F1", Pause: "F2"})
	require.NoError(t, err)

	assert.Equal(t, CommandStart, keys.lookup(fyne.KeyF1))
	assert.Equal(t, CommandPause, keys.lookup(fyne.KeyF2))
	assert.Equal(t, CommandNone, keys.lookup(fyne.KeyF3))
}

func TestKeymapRejectsConflicts(t *testing.T) {
	_, err := newKeymap(model.KeyBindings{Start: "space", Pause: "Space"})
	assert.True(t, errors.Is(err, ErrConflictingBindings))

	_, err = newKeymap(model.KeyBindings{Start: "F1", Pause: "nope"})
	assert.True(t, errors.Is(err, ErrUnknownKey))
}
