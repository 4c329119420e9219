package platform

import (
	"strings"

	"github.com/pkg/errors"
)

// LoginItems registers the application to launch when the user logs in.
type LoginItems interface {
	Enable(execPath string) error
	Disable() error
}

type loginItems struct {
	appName string
	// configHome overrides the per-user configuration root on Linux.
	configHome string
}

// NewLoginItems returns the platform-specific login registration for appName.
func NewLoginItems(appName string) LoginItems {
	return &loginItems{appName: appName}
}

// SetLaunchAtLogin enables or disables the login entry.
func SetLaunchAtLogin(items LoginItems, enabled bool, execPath string) error {
	if enabled {
		return items.Enable(execPath)
	}
	return items.Disable()
}

func (items *loginItems) validate(execPath string, needExec bool) error {
	if strings.TrimSpace(items.appName) == "" {
		return errors.New("app name is empty")
	}
	if needExec && execPath == "" {
		return errors.New("exec path is empty")
	}
	return nil
}

func slug(appName string) string {
	name := strings.ToLower(strings.TrimSpace(appName))
	return strings.ReplaceAll(name, " ", "-")
}
