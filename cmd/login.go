package main

import (
	"github.com/pkg/errors"

	"thyme/internal/platform"
)

// loginReconciler keeps the login entry in line with the launch-at-login
// setting. The first enabled call always writes the entry so a settings file
// edited by hand takes effect at startup.
type loginReconciler struct {
	items      platform.LoginItems
	executable func() (string, error)
	applied    bool
	enabled    bool
}

func (login *loginReconciler) apply(enabled bool) error {
	if login.applied && login.enabled == enabled {
		return nil
	}
	if !login.applied && !enabled {
		login.applied = true
		return nil
	}

	execPath, err := login.executable()
	if err != nil {
		return errors.Wrap(err, "resolve executable path")
	}
	if err := platform.SetLaunchAtLogin(login.items, enabled, execPath); err != nil {
		return err
	}
	login.applied = true
	login.enabled = enabled
	return nil
}
