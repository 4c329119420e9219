package main

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingLoginItems struct {
	calls []string
	err   error
}

func (items *recordingLoginItems) Enable(execPath string) error {
	items.calls = append(items.calls, "enable "+execPath)
	return items.err
}

func (items *recordingLoginItems) Disable() error {
	items.calls = append(items.calls, "disable")
	return items.err
}

func newReconciler(items *recordingLoginItems) *loginReconciler {
	return &loginReconciler{
		items: items,
		executable: func() (string, error) {
			return "/usr/bin/thyme", nil
		},
	}
}

func TestLoginReconcilerWritesEnabledEntryAtStartup(t *testing.T) {
	items := &recordingLoginItems{}
	login := newReconciler(items)

	require.NoError(t, login.apply(true))
	require.NoError(t, login.apply(true))
	require.NoError(t, login.apply(false))
	require.NoError(t, login.apply(false))

	assert.Equal(t, []string{"enable /usr/bin/thyme", "disable"}, items.calls)
}

func TestLoginReconcilerLeavesDisabledStartupAlone(t *testing.T) {
	items := &recordingLoginItems{}
	login := newReconciler(items)

	require.NoError(t, login.apply(false))
	assert.Empty(t, items.calls)

	require.NoError(t, login.apply(true))
	assert.Equal(t, []string{"enable /usr/bin/thyme"}, items.calls)
}

func TestLoginReconcilerRetriesAfterFailure(t *testing.T) {
	items := &recordingLoginItems{err: errors.New("read-only home")}
	login := newReconciler(items)

	assert.Error(t, login.apply(true))
	items.err = nil
	require.NoError(t, login.apply(true))

	assert.Equal(t, []string{"enable /usr/bin/thyme", "enable /usr/bin/thyme"}, items.calls)
}
