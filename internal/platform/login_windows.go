//go:build windows

package platform

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/pkg/errors"
)

const registryRunKey = `HKCU\Software\Microsoft\Windows\CurrentVersion\Run`

func (items *loginItems) Enable(execPath string) error {
	if err := items.validate(execPath, true); err != nil {
		return errors.Wrap(err, "enable launch at login")
	}

	quotedPath := fmt.Sprintf(`"%s"`, strings.Trim(execPath, `"`))
	output, err := exec.Command("reg", "add", registryRunKey, "/v", items.appName, "/t", "REG_SZ", "/d", quotedPath, "/f").CombinedOutput()
	if err != nil {
		return errors.Wrapf(err, "enable launch at login: reg add: %s", strings.TrimSpace(string(output)))
	}
	return nil
}

func (items *loginItems) Disable() error {
	if err := items.validate("", false); err != nil {
		return errors.Wrap(err, "disable launch at login")
	}

	output, err := exec.Command("reg", "delete", registryRunKey, "/v", items.appName, "/f").CombinedOutput()
	if err != nil && !strings.Contains(string(output), "unable to find") {
		return errors.Wrapf(err, "disable launch at login: reg delete: %s", strings.TrimSpace(string(output)))
	}
	return nil
}
