package preferences

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// Window handles the preferences UI.
type Window struct {
	window        fyne.Window
	settings      Settings
	onSave        func(Settings)
	startKey      *widget.Entry
	pauseKey      *widget.Entry
	separator     *widget.Entry
	textSize      *widget.Slider
	textSizeLabel *widget.Label
	autoStart     *widget.Check
	launchAtLogin *widget.Check
}

// New creates a preferences window.
func New(app fyne.App, settings Settings, onSave func(Settings)) *Window {
	window := app.NewWindow("Thyme Settings")

	startKey := widget.NewEntry()
	pauseKey := widget.NewEntry()
	separator := widget.NewEntry()
	textSizeLabel := widget.NewLabel("")
	textSize := widget.NewSlider(float64(MinTextSize), float64(MaxTextSize))
	textSize.Step = 1
	textSize.OnChanged = func(value float64) {
		textSizeLabel.SetText(fmt.Sprintf("%.0f pt", value))
	}
	autoStart := widget.NewCheck("Start counting when the window opens", nil)
	launchAtLogin := widget.NewCheck("Launch at login", nil)

	form := container.NewVBox(
		widget.NewLabelWithStyle("Keys", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewGridWithColumns(2, widget.NewLabel("Start"), startKey),
		container.NewGridWithColumns(2, widget.NewLabel("Pause"), pauseKey),
		widget.NewLabelWithStyle("Display", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewGridWithColumns(2, widget.NewLabel("Separator"), separator),
		container.NewBorder(nil, nil, widget.NewLabel("Text size"), textSizeLabel, textSize),
		autoStart,
		launchAtLogin,
	)

	saveButton := widget.NewButton("Save", nil)
	cancelButton := widget.NewButton("Cancel", nil)
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), cancelButton)

	window.SetContent(container.NewBorder(nil, buttons, nil, nil, form))
	window.Resize(fyne.NewSize(360, 320))
	window.SetCloseIntercept(func() {
		window.Hide()
	})

	prefs := &Window{
		window:        window,
		onSave:        onSave,
		startKey:      startKey,
		pauseKey:      pauseKey,
		separator:     separator,
		textSize:      textSize,
		textSizeLabel: textSizeLabel,
		autoStart:     autoStart,
		launchAtLogin: launchAtLogin,
	}
	prefs.UpdateSettings(settings)

	saveButton.OnTapped = prefs.handleSave
	cancelButton.OnTapped = func() {
		prefs.UpdateSettings(prefs.settings)
		window.Hide()
	}

	return prefs
}

// Show displays the preferences window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// UpdateSettings replaces window values.
func (prefs *Window) UpdateSettings(settings Settings) {
	prefs.settings = settings
	prefs.startKey.SetText(settings.StartKey)
	prefs.pauseKey.SetText(settings.PauseKey)
	prefs.separator.SetText(settings.Separator)
	prefs.textSize.SetValue(float64(settings.TextSize))
	prefs.textSizeLabel.SetText(fmt.Sprintf("%.0f pt", settings.TextSize))
	prefs.autoStart.SetChecked(settings.AutoStart)
	prefs.launchAtLogin.SetChecked(settings.LaunchAtLogin)
}

func (prefs *Window) handleSave() {
	settings := prefs.settings
	settings.StartKey = prefs.startKey.Text
	settings.PauseKey = prefs.pauseKey.Text
	settings.Separator = prefs.separator.Text
	settings.TextSize = float32(prefs.textSize.Value)
	settings.AutoStart = prefs.autoStart.Checked
	settings.LaunchAtLogin = prefs.launchAtLogin.Checked

	if err := settings.Validate(); err != nil {
		dialog.ShowError(err, prefs.window)
		return
	}

	prefs.settings = settings
	if prefs.onSave != nil {
		prefs.onSave(settings)
	}
	prefs.window.Hide()
}
