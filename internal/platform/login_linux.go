//go:build linux

package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/pkg/errors"
)

func (items *loginItems) Enable(execPath string) error {
	if err := items.validate(execPath, true); err != nil {
		return errors.Wrap(err, "enable launch at login")
	}

	autostartDir := items.autostartDir()
	if err := os.MkdirAll(autostartDir, 0o755); err != nil {
		return errors.Wrap(err, "enable launch at login: create autostart dir")
	}

	desktopFilePath := filepath.Join(autostartDir, slug(items.appName)+".desktop")
	if err := os.WriteFile(desktopFilePath, []byte(buildDesktopEntry(items.appName, execPath)), 0o644); err != nil {
		return errors.Wrap(err, "enable launch at login: write desktop entry")
	}
	return nil
}

func (items *loginItems) Disable() error {
	if err := items.validate("", false); err != nil {
		return errors.Wrap(err, "disable launch at login")
	}

	desktopFilePath := filepath.Join(items.autostartDir(), slug(items.appName)+".desktop")
	if err := os.Remove(desktopFilePath); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "disable launch at login: remove desktop entry")
	}
	return nil
}

func (items *loginItems) autostartDir() string {
	configHome := items.configHome
	if configHome == "" {
		configHome = xdg.ConfigHome
	}
	return filepath.Join(configHome, "autostart")
}

func buildDesktopEntry(appName, execPath string) string {
	execLine := execPath
	if strings.Contains(execLine, " ") && !strings.HasPrefix(execLine, `"`) {
		execLine = `"` + execLine + `"`
	}

	return fmt.Sprintf(
		`[Desktop Entry]
Type=Application
Name=%s
Comment=Desktop stopwatch
Exec=%s
X-GNOME-Autostart-enabled=true
Terminal=false
`,
		appName,
		execLine,
	)
}
