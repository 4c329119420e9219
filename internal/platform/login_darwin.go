//go:build darwin

package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

func (items *loginItems) Enable(execPath string) error {
	if err := items.validate(execPath, true); err != nil {
		return errors.Wrap(err, "enable launch at login")
	}

	launchAgentsDir, err := launchAgentsDir()
	if err != nil {
		return errors.Wrap(err, "enable launch at login")
	}
	if err := os.MkdirAll(launchAgentsDir, 0o755); err != nil {
		return errors.Wrap(err, "enable launch at login: create LaunchAgents dir")
	}

	label := launchAgentLabel(items.appName)
	plistPath := filepath.Join(launchAgentsDir, label+".plist")
	if err := os.WriteFile(plistPath, []byte(buildLaunchAgentPlist(label, execPath)), 0o644); err != nil {
		return errors.Wrap(err, "enable launch at login: write plist")
	}
	return nil
}

func (items *loginItems) Disable() error {
	if err := items.validate("", false); err != nil {
		return errors.Wrap(err, "disable launch at login")
	}

	launchAgentsDir, err := launchAgentsDir()
	if err != nil {
		return errors.Wrap(err, "disable launch at login")
	}
	plistPath := filepath.Join(launchAgentsDir, launchAgentLabel(items.appName)+".plist")
	if err := os.Remove(plistPath); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "disable launch at login: remove plist")
	}
	return nil
}

func launchAgentsDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "get home dir")
	}
	return filepath.Join(homeDir, "Library", "LaunchAgents"), nil
}

func launchAgentLabel(appName string) string {
	return "org.chompa." + slug(appName)
}

func buildLaunchAgentPlist(label, execPath string) string {
	return fmt.Sprintf(
		`<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
	<key>Label</key>
	<string>%s</string>
	<key>ProgramArguments</key>
	<array>
		<string>%s</string>
	</array>
	<key>RunAtLoad</key>
	<true/>
</dict>
</plist>
`,
		xmlEscape(label),
		xmlEscape(execPath),
	)
}

func xmlEscape(value string) string {
	replacer := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&apos;",
	)
	return replacer.Replace(value)
}
